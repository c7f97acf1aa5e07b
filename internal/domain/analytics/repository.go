package analytics

import "context"

// OrderReader returns order snapshots for a period. Implementations must
// return a single read-consistent result set per call; the aggregators never
// re-query mid-computation.
type OrderReader interface {
	// OrdersInPeriod returns all orders created within the window,
	// regardless of status.
	OrdersInPeriod(ctx context.Context, p Period) ([]OrderRecord, error)
}

// SaleLineReader returns line items of completed orders for a period, joined
// to product, category and brand.
type SaleLineReader interface {
	CompletedSaleLines(ctx context.Context, p Period) ([]SaleLine, error)
}
