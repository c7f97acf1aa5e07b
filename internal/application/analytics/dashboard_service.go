package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DashboardCache stores rendered dashboard snapshots keyed by period.
// Implementations live in infrastructure/cache (Redis and in-memory).
type DashboardCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// DashboardService composes every analytics block for a period into one
// snapshot and caches the result.
type DashboardService struct {
	analytics *AnalyticsService
	cache     DashboardCache
	ttl       time.Duration
	logger    *zap.Logger
}

// NewDashboardService creates a DashboardService. A nil cache disables
// caching.
func NewDashboardService(analytics *AnalyticsService, cache DashboardCache, ttl time.Duration, logger *zap.Logger) *DashboardService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		analytics: analytics,
		cache:     cache,
		ttl:       ttl,
		logger:    logger,
	}
}

// GetDashboard returns the assembled dashboard for the named period, serving
// from cache when a fresh snapshot exists.
func (s *DashboardService) GetDashboard(ctx context.Context, period string) (*DashboardResponse, error) {
	p := s.analytics.ResolvePeriod(period, nil, nil)
	key := fmt.Sprintf("dashboard:%s:%d:%d", period, p.Start.Unix(), p.End.Unix())

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key); err == nil && raw != nil {
			var cached DashboardResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
			s.logger.Warn("Discarding undecodable dashboard cache entry", zap.String("key", key))
		}
	}

	dashboard, err := s.compute(ctx, period, p.Start, p.End)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		raw, err := json.Marshal(dashboard)
		if err == nil {
			if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
				s.logger.Warn("Failed to cache dashboard snapshot",
					zap.String("key", key),
					zap.Error(err),
				)
			}
		}
	}

	return dashboard, nil
}

func (s *DashboardService) compute(ctx context.Context, period string, start, end time.Time) (*DashboardResponse, error) {
	orders, err := s.analytics.GetOrderMetrics(ctx, start, end)
	if err != nil {
		return nil, err
	}
	revenue, err := s.analytics.CalculateRevenue(ctx, start, end)
	if err != nil {
		return nil, err
	}
	profit, err := s.analytics.GetProfitMetrics(ctx, period, nil, nil)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.analytics.GetSalesByCategory(ctx, period)
	if err != nil {
		return nil, err
	}
	byBrand, err := s.analytics.GetSalesByBrand(ctx, period)
	if err != nil {
		return nil, err
	}
	topProducts, err := s.analytics.GetTopSellingProducts(ctx, 10, period)
	if err != nil {
		return nil, err
	}
	paymentMethods, err := s.analytics.GetPaymentMethodDistribution(ctx, period)
	if err != nil {
		return nil, err
	}
	locations, err := s.analytics.GetRevenueByLocation(ctx, period)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		Period:          period,
		PeriodStart:     start,
		PeriodEnd:       end,
		Orders:          *orders,
		Revenue:         *revenue,
		Profit:          *profit,
		SalesByCategory: byCategory,
		SalesByBrand:    byBrand,
		TopProducts:     topProducts,
		PaymentMethods:  paymentMethods,
		Locations:       locations,
	}, nil
}
