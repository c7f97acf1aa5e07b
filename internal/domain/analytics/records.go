package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order as persisted by the
// order-placement workflow. Aggregators only ever read a snapshot.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus is the settlement state of an order.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Channel is the order acquisition type.
type Channel string

const (
	ChannelWalkIn Channel = "walk_in"
	ChannelOnline Channel = "online"
)

// OrderRecord is the order snapshot consumed by the aggregators.
type OrderRecord struct {
	ID            uuid.UUID       `json:"id"`
	Status        OrderStatus     `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	Channel       Channel         `json:"order_type"`
	PaymentMethod string          `json:"payment_method"`
	Location      string          `json:"location"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleLine is an order item of a completed order joined to its product,
// category and brand. CostPrice is nil when the product has no recorded cost
// basis; such lines are excluded from profit aggregation entirely.
type SaleLine struct {
	OrderID      uuid.UUID        `json:"order_id"`
	ProductID    uuid.UUID        `json:"product_id"`
	ProductName  string           `json:"product_name"`
	CategoryID   *uuid.UUID       `json:"category_id,omitempty"`
	CategoryName string           `json:"category_name,omitempty"`
	BrandID      *uuid.UUID       `json:"brand_id,omitempty"`
	BrandName    string           `json:"brand_name,omitempty"`
	Quantity     int64            `json:"quantity"`
	UnitPrice    decimal.Decimal  `json:"unit_price"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
}

// Revenue returns quantity × unit price for the line.
func (l SaleLine) Revenue() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}
