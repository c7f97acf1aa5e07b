package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/backoffice/server/internal/domain/analytics"
	"github.com/backoffice/server/internal/domain/inventory"
)

// newMockDB creates a GORM connection backed by sqlmock with the postgres
// dialector, so generated SQL matches production.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormAnalyticsRepository_QueryErrors(t *testing.T) {
	period := analytics.Period{
		Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC),
	}

	t.Run("OrdersInPeriod propagates query failure", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormAnalyticsRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "orders"`).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.OrdersInPeriod(context.Background(), period)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CompletedSaleLines queries the order_items join", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormAnalyticsRepository(db)

		mock.ExpectQuery(`FROM order_items oi JOIN orders o`).
			WillReturnRows(sqlmock.NewRows([]string{
				"order_id", "product_id", "product_name",
				"category_id", "category_name", "brand_id", "brand_name",
				"quantity", "unit_price", "cost_price",
			}))

		lines, err := repo.CompletedSaleLines(context.Background(), period)
		require.NoError(t, err)
		assert.Empty(t, lines)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryRepository_QueryErrors(t *testing.T) {
	t.Run("StockLevels propagates query failure", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryRepository(db)

		mock.ExpectQuery(`FROM inventory_levels il JOIN products p`).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.StockLevels(context.Background(), inventory.LevelFilter{})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MovementsForProduct propagates query failure", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "inventory_movements"`).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.MovementsForProduct(context.Background(), uuid.New(), 10)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
