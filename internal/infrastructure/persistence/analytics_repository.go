package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/backoffice/server/internal/domain/analytics"
	"github.com/backoffice/server/internal/infrastructure/persistence/models"
)

// GormAnalyticsRepository implements the analytics read interfaces using GORM
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewGormAnalyticsRepository creates a new GormAnalyticsRepository
func NewGormAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

// OrdersInPeriod returns all orders created within the window, regardless of
// status.
func (r *GormAnalyticsRepository) OrdersInPeriod(ctx context.Context, p analytics.Period) ([]analytics.OrderRecord, error) {
	var rows []models.OrderModel
	err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", p.Start, p.End).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]analytics.OrderRecord, len(rows))
	for i := range rows {
		records[i] = rows[i].ToRecord()
	}
	return records, nil
}

// saleLineRow is the scan target for the completed-lines join.
type saleLineRow struct {
	OrderID      uuid.UUID
	ProductID    uuid.UUID
	ProductName  string
	CategoryID   *uuid.UUID
	CategoryName *string
	BrandID      *uuid.UUID
	BrandName    *string
	Quantity     int64
	UnitPrice    decimal.Decimal
	CostPrice    *decimal.Decimal
}

// CompletedSaleLines returns line items of completed orders in the window,
// joined to product, category and brand.
func (r *GormAnalyticsRepository) CompletedSaleLines(ctx context.Context, p analytics.Period) ([]analytics.SaleLine, error) {
	var rows []saleLineRow
	err := r.db.WithContext(ctx).
		Table("order_items oi").
		Select(`
			oi.order_id,
			oi.product_id,
			p.name AS product_name,
			p.category_id,
			c.name AS category_name,
			p.brand_id,
			b.name AS brand_name,
			oi.quantity,
			oi.unit_price,
			p.cost_price
		`).
		Joins("JOIN orders o ON o.id = oi.order_id").
		Joins("JOIN products p ON p.id = oi.product_id").
		Joins("LEFT JOIN categories c ON c.id = p.category_id").
		Joins("LEFT JOIN brands b ON b.id = p.brand_id").
		Where("o.status = ?", string(analytics.OrderStatusCompleted)).
		Where("o.created_at BETWEEN ? AND ?", p.Start, p.End).
		Order("o.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	lines := make([]analytics.SaleLine, len(rows))
	for i, row := range rows {
		line := analytics.SaleLine{
			OrderID:     row.OrderID,
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			CategoryID:  row.CategoryID,
			BrandID:     row.BrandID,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
			CostPrice:   row.CostPrice,
		}
		if row.CategoryName != nil {
			line.CategoryName = *row.CategoryName
		}
		if row.BrandName != nil {
			line.BrandName = *row.BrandName
		}
		lines[i] = line
	}
	return lines, nil
}

var (
	_ analytics.OrderReader    = (*GormAnalyticsRepository)(nil)
	_ analytics.SaleLineReader = (*GormAnalyticsRepository)(nil)
)
