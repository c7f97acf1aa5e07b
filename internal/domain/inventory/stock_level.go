package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlertSeverity classifies how urgently a stock level needs attention.
type AlertSeverity string

const (
	SeverityNone       AlertSeverity = "none"
	SeverityWarning    AlertSeverity = "warning"
	SeverityCritical   AlertSeverity = "critical"
	SeverityOutOfStock AlertSeverity = "out_of_stock"
)

// StockLevel is the per-product, per-location inventory snapshot consumed by
// the alert classifier.
type StockLevel struct {
	ProductID         uuid.UUID `json:"product_id"`
	ProductName       string    `json:"product_name"`
	SKU               string    `json:"sku"`
	Location          string    `json:"location"`
	QuantityAvailable int64     `json:"quantity_available"`
	QuantityReserved  int64     `json:"quantity_reserved"`
	ReorderLevel      int64     `json:"reorder_level"`
}

// StockPercentage returns available quantity as a percentage of the reorder
// level, rounded to 2 decimals, and 0 when the reorder level is not positive.
func (l StockLevel) StockPercentage() decimal.Decimal {
	if l.ReorderLevel <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(l.QuantityAvailable).
		Div(decimal.NewFromInt(l.ReorderLevel)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

// Classify maps a stock level to an alert severity. Levels without a positive
// reorder level are never alertable. Thresholds are evaluated in priority
// order: empty stock, then ≤25% of reorder level, then ≤50%.
func (l StockLevel) Classify() AlertSeverity {
	if l.ReorderLevel <= 0 {
		return SeverityNone
	}
	switch {
	case l.QuantityAvailable == 0:
		return SeverityOutOfStock
	case l.QuantityAvailable*4 <= l.ReorderLevel:
		return SeverityCritical
	case l.QuantityAvailable*2 <= l.ReorderLevel:
		return SeverityWarning
	default:
		return SeverityNone
	}
}

// BelowReorderLevel reports whether the level qualifies for the legacy
// low-stock listing, which includes the reorder-level boundary itself.
func (l StockLevel) BelowReorderLevel() bool {
	return l.QuantityAvailable <= l.ReorderLevel
}
