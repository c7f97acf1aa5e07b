package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/backoffice/server/internal/domain/analytics"
	"go.uber.org/zap"
)

// AnalyticsService resolves reporting periods, fetches record snapshots and
// delegates the arithmetic to the domain folds. It holds no mutable state, so
// concurrent callers do not interfere.
type AnalyticsService struct {
	orders analytics.OrderReader
	lines  analytics.SaleLineReader
	logger *zap.Logger
	clock  func() time.Time
}

// NewAnalyticsService creates an AnalyticsService reading from the given
// repositories.
func NewAnalyticsService(orders analytics.OrderReader, lines analytics.SaleLineReader, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{
		orders: orders,
		lines:  lines,
		logger: logger,
		clock:  time.Now,
	}
}

// WithClock overrides the reference-instant source. Tests use this to pin
// period resolution to a deterministic instant.
func (s *AnalyticsService) WithClock(clock func() time.Time) *AnalyticsService {
	s.clock = clock
	return s
}

// ResolvePeriod exposes period resolution against the service clock.
func (s *AnalyticsService) ResolvePeriod(name string, start, end *time.Time) analytics.Period {
	return analytics.ResolvePeriod(name, s.clock(), start, end)
}

// GetOrderMetrics returns order counts, channel breakdown and average order
// value for the window.
func (s *AnalyticsService) GetOrderMetrics(ctx context.Context, start, end time.Time) (*OrderMetricsResponse, error) {
	orders, err := s.orders.OrdersInPeriod(ctx, analytics.Period{Start: start, End: end})
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	m := analytics.ComputeOrderMetrics(orders)
	s.logger.Debug("order metrics computed",
		zap.Int64("total_orders", m.TotalOrders),
		zap.Int64("walk_in", m.WalkInOrders),
		zap.Int64("online", m.OnlineOrders))
	return &OrderMetricsResponse{
		TotalOrders:   m.TotalOrders,
		WalkInOrders:  m.WalkInOrders,
		OnlineOrders:  m.OnlineOrders,
		AvgOrderValue: toFloat64(m.AvgOrderValue),
	}, nil
}

// CalculateRevenue returns paid completed-order revenue for the window and
// the change against the preceding equal-length window.
func (s *AnalyticsService) CalculateRevenue(ctx context.Context, start, end time.Time) (*RevenueResponse, error) {
	period := analytics.Period{Start: start, End: end}

	current, err := s.orders.OrdersInPeriod(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("fetch current period orders: %w", err)
	}
	previous, err := s.orders.OrdersInPeriod(ctx, analytics.PreviousPeriod(period))
	if err != nil {
		return nil, fmt.Errorf("fetch previous period orders: %w", err)
	}

	currentTotal := analytics.PaidRevenue(current)
	previousTotal := analytics.PaidRevenue(previous)

	return &RevenueResponse{
		Total:         toFloat64(currentTotal),
		ChangePercent: toFloat64(analytics.ChangePercent(currentTotal, previousTotal)),
	}, nil
}

// GetProfitMetrics aggregates revenue, cost and gross profit over completed
// orders in the named period, excluding lines without a cost basis.
func (s *AnalyticsService) GetProfitMetrics(ctx context.Context, period string, start, end *time.Time) (*ProfitResponse, error) {
	p := s.ResolvePeriod(period, start, end)

	lines, err := s.lines.CompletedSaleLines(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("fetch sale lines: %w", err)
	}

	m := analytics.ComputeProfitMetrics(lines)
	return &ProfitResponse{
		PeriodStart:  p.Start,
		PeriodEnd:    p.End,
		TotalRevenue: toFloat64(m.TotalRevenue),
		TotalCost:    toFloat64(m.TotalCost),
		GrossProfit:  toFloat64(m.GrossProfit),
		ProfitMargin: toFloat64(m.ProfitMargin),
	}, nil
}

// GetSalesByCategory returns the category revenue distribution for the named
// period.
func (s *AnalyticsService) GetSalesByCategory(ctx context.Context, period string) ([]RevenueShareResponse, error) {
	lines, err := s.completedLines(ctx, period)
	if err != nil {
		return nil, err
	}
	return toShareResponses(analytics.SalesByCategory(lines)), nil
}

// GetSalesByBrand returns the brand revenue distribution for the named
// period.
func (s *AnalyticsService) GetSalesByBrand(ctx context.Context, period string) ([]RevenueShareResponse, error) {
	lines, err := s.completedLines(ctx, period)
	if err != nil {
		return nil, err
	}
	return toShareResponses(analytics.SalesByBrand(lines)), nil
}

// GetTopSellingProducts ranks products by quantity sold across completed
// orders in the named period.
func (s *AnalyticsService) GetTopSellingProducts(ctx context.Context, limit int, period string) ([]TopProductResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	lines, err := s.completedLines(ctx, period)
	if err != nil {
		return nil, err
	}
	return toTopProductResponses(analytics.TopProductsByQuantity(lines, limit)), nil
}

// GetPaymentMethodDistribution returns paid revenue share per payment method.
func (s *AnalyticsService) GetPaymentMethodDistribution(ctx context.Context, period string) ([]RevenueShareResponse, error) {
	orders, err := s.ordersForPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	return toShareResponses(analytics.PaymentMethodShares(orders)), nil
}

// GetRevenueByLocation returns paid revenue share per store location.
func (s *AnalyticsService) GetRevenueByLocation(ctx context.Context, period string) ([]RevenueShareResponse, error) {
	orders, err := s.ordersForPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	return toShareResponses(analytics.RevenueByLocation(orders)), nil
}

func (s *AnalyticsService) completedLines(ctx context.Context, period string) ([]analytics.SaleLine, error) {
	p := s.ResolvePeriod(period, nil, nil)
	lines, err := s.lines.CompletedSaleLines(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("fetch sale lines: %w", err)
	}
	return lines, nil
}

func (s *AnalyticsService) ordersForPeriod(ctx context.Context, period string) ([]analytics.OrderRecord, error) {
	p := s.ResolvePeriod(period, nil, nil)
	orders, err := s.orders.OrdersInPeriod(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return orders, nil
}
