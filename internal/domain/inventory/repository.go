package inventory

import (
	"context"

	"github.com/google/uuid"
)

// LevelFilter narrows stock-level queries. A nil Location means all
// locations; a set Location matches exactly.
type LevelFilter struct {
	Location *string
}

// StockReader returns inventory snapshots. Each call must return a single
// read-consistent result set.
type StockReader interface {
	StockLevels(ctx context.Context, filter LevelFilter) ([]StockLevel, error)
}

// MovementReader returns inventory movement history.
type MovementReader interface {
	// MovementsForProduct returns the most recent movements for a
	// product, newest first, capped at limit when limit > 0.
	MovementsForProduct(ctx context.Context, productID uuid.UUID, limit int) ([]Movement, error)
}
