package inventory

import (
	"time"

	"github.com/backoffice/server/internal/domain/inventory"
)

// AlertItemResponse is one low-stock alert row.
type AlertItemResponse struct {
	ProductName       string  `json:"product_name"`
	QuantityAvailable int64   `json:"quantity_available"`
	ReorderLevel      int64   `json:"reorder_level"`
	Location          string  `json:"location"`
	StockPercentage   float64 `json:"stock_percentage"`
}

// AlertsResponse is the legacy low-stock listing: every item at or below its
// reorder level, most severe first.
type AlertsResponse struct {
	Items           []AlertItemResponse `json:"items"`
	LowStockCount   int64               `json:"low_stock_count"`
	OutOfStockCount int64               `json:"out_of_stock_count"`
}

// ThresholdAlerts buckets alert items by severity tier.
type ThresholdAlerts struct {
	CriticalStock []AlertItemResponse `json:"critical_stock"`
	LowStock      []AlertItemResponse `json:"low_stock"`
	OutOfStock    []AlertItemResponse `json:"out_of_stock"`
}

// ThresholdSummary carries per-tier counts.
type ThresholdSummary struct {
	CriticalCount   int64 `json:"critical_count"`
	LowStockCount   int64 `json:"low_stock_count"`
	OutOfStockCount int64 `json:"out_of_stock_count"`
	TotalAlerts     int64 `json:"total_alerts"`
}

// ThresholdAlertsResponse is the tiered low-stock detection result.
type ThresholdAlertsResponse struct {
	Alerts  ThresholdAlerts  `json:"alerts"`
	Summary ThresholdSummary `json:"summary"`
}

// AlertFilter narrows threshold detection. A nil Location means all
// locations.
type AlertFilter struct {
	Location *string `json:"location,omitempty"`
}

// MovementResponse is one movement in API responses.
type MovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	MovementType string    `json:"movement_type"`
	Quantity     int64     `json:"quantity"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// MovementGroupResponse is one transaction-level movement group.
type MovementGroupResponse struct {
	Primary        MovementResponse   `json:"primary"`
	TransactionRef *string            `json:"transaction_ref"`
	Related        []MovementResponse `json:"related"`
}

func toAlertItem(l inventory.StockLevel) AlertItemResponse {
	pct, _ := l.StockPercentage().Float64()
	return AlertItemResponse{
		ProductName:       l.ProductName,
		QuantityAvailable: l.QuantityAvailable,
		ReorderLevel:      l.ReorderLevel,
		Location:          l.Location,
		StockPercentage:   pct,
	}
}

func toMovementResponse(m inventory.Movement) MovementResponse {
	return MovementResponse{
		ID:           m.ID.String(),
		ProductID:    m.ProductID.String(),
		MovementType: string(m.Type),
		Quantity:     m.Quantity,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
	}
}
