package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/backoffice/server/internal/domain/inventory"
)

// InventoryLevelModel is the persistence model for per-product, per-location
// stock levels.
type InventoryLevelModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	ProductID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_level_product_location,priority:1"`
	Location          string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_inventory_level_product_location,priority:2"`
	QuantityAvailable int64     `gorm:"not null;default:0"`
	QuantityReserved  int64     `gorm:"not null;default:0"`
	ReorderLevel      int64     `gorm:"not null;default:0"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InventoryLevelModel) TableName() string {
	return "inventory_levels"
}

// InventoryMovementModel is the persistence model for inventory movements.
// Reference is nullable: legacy rows carry the transaction token embedded in
// Notes instead.
type InventoryMovementModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MovementType string    `gorm:"type:varchar(20);not null"`
	Quantity     int64     `gorm:"not null"`
	Reference    *string   `gorm:"type:varchar(100);index"`
	Notes        string    `gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (InventoryMovementModel) TableName() string {
	return "inventory_movements"
}

// ToDomain converts the persistence model to a domain Movement.
func (m *InventoryMovementModel) ToDomain() inventory.Movement {
	return inventory.Movement{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      inventory.MovementType(m.MovementType),
		Quantity:  m.Quantity,
		Reference: m.Reference,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}
