package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for products. CostPrice is nullable:
// products imported without a cost basis keep it NULL, and profit aggregation
// skips their sale lines.
type ProductModel struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key"`
	Name       string           `gorm:"type:varchar(200);not null"`
	SKU        string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	CategoryID *uuid.UUID       `gorm:"type:uuid;index"`
	BrandID    *uuid.UUID       `gorm:"type:uuid;index"`
	UnitPrice  decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	CostPrice  *decimal.Decimal `gorm:"type:decimal(18,4)"`
	CreatedAt  time.Time        `gorm:"not null"`
	UpdatedAt  time.Time        `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel is the persistence model for product categories.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// BrandModel is the persistence model for product brands.
type BrandModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BrandModel) TableName() string {
	return "brands"
}
