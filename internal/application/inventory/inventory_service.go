package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/backoffice/server/internal/domain/inventory"
)

// InventoryService answers stock-alert and movement-history queries.
type InventoryService struct {
	stock     inventory.StockReader
	movements inventory.MovementReader
	logger    *zap.Logger
}

func NewInventoryService(stock inventory.StockReader, movements inventory.MovementReader, logger *zap.Logger) *InventoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryService{stock: stock, movements: movements, logger: logger}
}

// GetInventoryAlerts returns the legacy low-stock view: every level whose
// available quantity is at or below its reorder level, sorted with the most
// depleted items first.
func (s *InventoryService) GetInventoryAlerts(ctx context.Context) (*AlertsResponse, error) {
	levels, err := s.stock.StockLevels(ctx, inventory.LevelFilter{})
	if err != nil {
		return nil, fmt.Errorf("fetch stock levels: %w", err)
	}

	resp := &AlertsResponse{Items: []AlertItemResponse{}}
	for _, l := range levels {
		if !l.BelowReorderLevel() {
			continue
		}
		resp.Items = append(resp.Items, toAlertItem(l))
		resp.LowStockCount++
		if l.QuantityAvailable <= 0 {
			resp.OutOfStockCount++
		}
	}

	sort.SliceStable(resp.Items, func(i, j int) bool {
		return resp.Items[i].StockPercentage < resp.Items[j].StockPercentage
	})

	s.logger.Debug("inventory alerts computed",
		zap.Int64("low_stock", resp.LowStockCount),
		zap.Int64("out_of_stock", resp.OutOfStockCount))
	return resp, nil
}

// DetectLowStockWithThresholds classifies stock levels into severity tiers
// and returns the bucketed alerts with per-tier counts.
func (s *InventoryService) DetectLowStockWithThresholds(ctx context.Context, filter AlertFilter) (*ThresholdAlertsResponse, error) {
	levels, err := s.stock.StockLevels(ctx, inventory.LevelFilter{Location: filter.Location})
	if err != nil {
		return nil, fmt.Errorf("fetch stock levels: %w", err)
	}

	resp := &ThresholdAlertsResponse{Alerts: ThresholdAlerts{
		CriticalStock: []AlertItemResponse{},
		LowStock:      []AlertItemResponse{},
		OutOfStock:    []AlertItemResponse{},
	}}
	for _, l := range levels {
		item := toAlertItem(l)
		switch l.Classify() {
		case inventory.SeverityOutOfStock:
			resp.Alerts.OutOfStock = append(resp.Alerts.OutOfStock, item)
			resp.Summary.OutOfStockCount++
		case inventory.SeverityCritical:
			resp.Alerts.CriticalStock = append(resp.Alerts.CriticalStock, item)
			resp.Summary.CriticalCount++
		case inventory.SeverityWarning:
			resp.Alerts.LowStock = append(resp.Alerts.LowStock, item)
			resp.Summary.LowStockCount++
		}
	}
	resp.Summary.TotalAlerts = resp.Summary.CriticalCount + resp.Summary.LowStockCount + resp.Summary.OutOfStockCount
	return resp, nil
}

// GroupProductMovements returns the product's recent movement history grouped
// by originating transaction, newest transactions first.
func (s *InventoryService) GroupProductMovements(ctx context.Context, productID uuid.UUID, limit int) ([]MovementGroupResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	movements, err := s.movements.MovementsForProduct(ctx, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch movements: %w", err)
	}

	groups := inventory.GroupRelatedMovements(movements)
	out := make([]MovementGroupResponse, 0, len(groups))
	for _, g := range groups {
		gr := MovementGroupResponse{
			Primary:        toMovementResponse(g.Primary),
			TransactionRef: g.TransactionRef,
			Related:        make([]MovementResponse, 0, len(g.Related)),
		}
		for _, m := range g.Related {
			gr.Related = append(gr.Related, toMovementResponse(m))
		}
		out = append(out, gr)
	}
	return out, nil
}
