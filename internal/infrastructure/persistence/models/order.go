package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/backoffice/server/internal/domain/analytics"
)

// OrderModel is the persistence model for order snapshots.
type OrderModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key"`
	OrderNumber   string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	Status        string           `gorm:"type:varchar(20);not null;index"`
	PaymentStatus string           `gorm:"type:varchar(20);not null;index"`
	OrderType     string           `gorm:"type:varchar(20);not null;default:''"`
	PaymentMethod string           `gorm:"type:varchar(50);not null;default:''"`
	Location      string           `gorm:"type:varchar(100);not null;default:'';index"`
	TotalAmount   decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	Items         []OrderItemModel `gorm:"foreignKey:OrderID;references:ID"`
	CreatedAt     time.Time        `gorm:"not null;index"`
	UpdatedAt     time.Time        `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToRecord converts the persistence model to an order snapshot.
func (m *OrderModel) ToRecord() analytics.OrderRecord {
	return analytics.OrderRecord{
		ID:            m.ID,
		Status:        analytics.OrderStatus(m.Status),
		PaymentStatus: analytics.PaymentStatus(m.PaymentStatus),
		Channel:       analytics.Channel(m.OrderType),
		PaymentMethod: m.PaymentMethod,
		Location:      m.Location,
		TotalAmount:   m.TotalAmount,
		CreatedAt:     m.CreatedAt,
	}
}

// OrderItemModel is the persistence model for order line items.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int64           `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}
