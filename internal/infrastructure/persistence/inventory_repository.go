package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/backoffice/server/internal/domain/inventory"
	"github.com/backoffice/server/internal/infrastructure/persistence/models"
)

// GormInventoryRepository implements the inventory read interfaces using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// stockLevelRow is the scan target for the level-product join.
type stockLevelRow struct {
	ProductID         uuid.UUID
	ProductName       string
	SKU               string
	Location          string
	QuantityAvailable int64
	QuantityReserved  int64
	ReorderLevel      int64
}

// StockLevels returns stock levels joined to their products, optionally
// narrowed to one location.
func (r *GormInventoryRepository) StockLevels(ctx context.Context, filter inventory.LevelFilter) ([]inventory.StockLevel, error) {
	query := r.db.WithContext(ctx).
		Table("inventory_levels il").
		Select(`
			il.product_id,
			p.name AS product_name,
			p.sku,
			il.location,
			il.quantity_available,
			il.quantity_reserved,
			il.reorder_level
		`).
		Joins("JOIN products p ON p.id = il.product_id").
		Order("p.name, il.location")

	if filter.Location != nil {
		query = query.Where("il.location = ?", *filter.Location)
	}

	var rows []stockLevelRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	levels := make([]inventory.StockLevel, len(rows))
	for i, row := range rows {
		levels[i] = inventory.StockLevel{
			ProductID:         row.ProductID,
			ProductName:       row.ProductName,
			SKU:               row.SKU,
			Location:          row.Location,
			QuantityAvailable: row.QuantityAvailable,
			QuantityReserved:  row.QuantityReserved,
			ReorderLevel:      row.ReorderLevel,
		}
	}
	return levels, nil
}

// MovementsForProduct returns the product's most recent movements, newest
// first, capped at limit when limit > 0.
func (r *GormInventoryRepository) MovementsForProduct(ctx context.Context, productID uuid.UUID, limit int) ([]inventory.Movement, error) {
	query := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []models.InventoryMovementModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	movements := make([]inventory.Movement, len(rows))
	for i := range rows {
		movements[i] = rows[i].ToDomain()
	}
	return movements, nil
}

var (
	_ inventory.StockReader    = (*GormInventoryRepository)(nil)
	_ inventory.MovementReader = (*GormInventoryRepository)(nil)
)
