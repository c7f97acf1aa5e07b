package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/backoffice/server/internal/domain/inventory"
	"github.com/backoffice/server/internal/infrastructure/persistence/models"
)

func seedLevel(t *testing.T, db *gorm.DB, productID uuid.UUID, location string, available, reorder int64) {
	t.Helper()
	level := models.InventoryLevelModel{
		ID:                uuid.New(),
		ProductID:         productID,
		Location:          location,
		QuantityAvailable: available,
		ReorderLevel:      reorder,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	require.NoError(t, db.Create(&level).Error)
}

func seedMovement(t *testing.T, db *gorm.DB, productID uuid.UUID, movementType string, reference *string, notes string, createdAt time.Time) {
	t.Helper()
	movement := models.InventoryMovementModel{
		ID:           uuid.New(),
		ProductID:    productID,
		MovementType: movementType,
		Quantity:     -1,
		Reference:    reference,
		Notes:        notes,
		CreatedAt:    createdAt,
	}
	require.NoError(t, db.Create(&movement).Error)
}

func TestGormInventoryRepository_StockLevels(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInventoryRepository(db)
	ctx := context.Background()

	cola := seedProduct(t, db, "Cola", nil, nil, nil)
	chips := seedProduct(t, db, "Chips", nil, nil, nil)
	seedLevel(t, db, cola.ID, "main", 12, 50)
	seedLevel(t, db, cola.ID, "warehouse-2", 80, 50)
	seedLevel(t, db, chips.ID, "main", 5, 20)

	t.Run("returns all levels joined to products", func(t *testing.T) {
		levels, err := repo.StockLevels(ctx, inventory.LevelFilter{})
		require.NoError(t, err)
		require.Len(t, levels, 3)

		assert.Equal(t, "Chips", levels[0].ProductName)
		assert.Equal(t, chips.SKU, levels[0].SKU)
		assert.Equal(t, int64(5), levels[0].QuantityAvailable)
		assert.Equal(t, int64(20), levels[0].ReorderLevel)
	})

	t.Run("location filter narrows the result", func(t *testing.T) {
		loc := "warehouse-2"
		levels, err := repo.StockLevels(ctx, inventory.LevelFilter{Location: &loc})
		require.NoError(t, err)
		require.Len(t, levels, 1)
		assert.Equal(t, cola.ID, levels[0].ProductID)
		assert.Equal(t, int64(80), levels[0].QuantityAvailable)
	})
}

func TestGormInventoryRepository_MovementsForProduct(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInventoryRepository(db)
	ctx := context.Background()

	productID := uuid.New()
	otherID := uuid.New()
	ref := "ORD-1001"
	base := time.Date(2026, 3, 18, 10, 0, 0, 0, time.UTC)

	seedMovement(t, db, productID, "sale", &ref, "", base)
	seedMovement(t, db, productID, "reservation", nil, "Reserved for ORD-1001", base.Add(-time.Minute))
	seedMovement(t, db, productID, "purchase", nil, "Restock PO-77", base.Add(time.Hour))
	seedMovement(t, db, otherID, "sale", nil, "", base)

	t.Run("returns newest first for the product only", func(t *testing.T) {
		movements, err := repo.MovementsForProduct(ctx, productID, 10)
		require.NoError(t, err)
		require.Len(t, movements, 3)

		assert.Equal(t, inventory.MovementPurchase, movements[0].Type)
		assert.Equal(t, inventory.MovementSale, movements[1].Type)
		require.NotNil(t, movements[1].Reference)
		assert.Equal(t, "ORD-1001", *movements[1].Reference)
		assert.Nil(t, movements[2].Reference)
		assert.Equal(t, "Reserved for ORD-1001", movements[2].Notes)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		movements, err := repo.MovementsForProduct(ctx, productID, 1)
		require.NoError(t, err)
		require.Len(t, movements, 1)
		assert.Equal(t, inventory.MovementPurchase, movements[0].Type)
	})

	t.Run("unknown product yields empty history", func(t *testing.T) {
		movements, err := repo.MovementsForProduct(ctx, uuid.New(), 10)
		require.NoError(t, err)
		assert.Empty(t, movements)
	})
}
