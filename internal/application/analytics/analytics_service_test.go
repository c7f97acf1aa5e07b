package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/backoffice/server/internal/domain/analytics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubOrderReader struct {
	byPeriod func(p domain.Period) []domain.OrderRecord
	err      error
}

func (s *stubOrderReader) OrdersInPeriod(_ context.Context, p domain.Period) ([]domain.OrderRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.byPeriod == nil {
		return nil, nil
	}
	return s.byPeriod(p), nil
}

type stubLineReader struct {
	lines []domain.SaleLine
	err   error
}

func (s *stubLineReader) CompletedSaleLines(context.Context, domain.Period) ([]domain.SaleLine, error) {
	return s.lines, s.err
}

func fixedClock() time.Time {
	return time.Date(2026, time.March, 18, 12, 0, 0, 0, time.UTC)
}

func newService(orders *stubOrderReader, lines *stubLineReader) *AnalyticsService {
	return NewAnalyticsService(orders, lines, zap.NewNop()).WithClock(fixedClock)
}

func completedPaid(amount float64) domain.OrderRecord {
	return domain.OrderRecord{
		ID:            uuid.New(),
		Status:        domain.OrderStatusCompleted,
		PaymentStatus: domain.PaymentStatusPaid,
		Channel:       domain.ChannelOnline,
		TotalAmount:   decimal.NewFromFloat(amount),
	}
}

func TestAnalyticsService_GetOrderMetrics(t *testing.T) {
	orders := &stubOrderReader{byPeriod: func(domain.Period) []domain.OrderRecord {
		return []domain.OrderRecord{
			completedPaid(100),
			completedPaid(200),
			{ID: uuid.New(), Status: domain.OrderStatusCancelled, Channel: domain.ChannelWalkIn, TotalAmount: decimal.NewFromInt(999)},
		}
	}}
	svc := newService(orders, &stubLineReader{})

	m, err := svc.GetOrderMetrics(context.Background(), fixedClock().AddDate(0, 0, -7), fixedClock())
	require.NoError(t, err)
	assert.Equal(t, int64(2), m.TotalOrders)
	assert.Equal(t, int64(2), m.OnlineOrders)
	assert.InDelta(t, 150.0, m.AvgOrderValue, 0.001)
}

func TestAnalyticsService_CalculateRevenue(t *testing.T) {
	current := domain.Period{
		Start: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC),
	}

	t.Run("compares against the preceding window", func(t *testing.T) {
		orders := &stubOrderReader{byPeriod: func(p domain.Period) []domain.OrderRecord {
			if p == current {
				return []domain.OrderRecord{completedPaid(150)}
			}
			// Previous window must end the day before the current start.
			wantPrev := domain.PreviousPeriod(current)
			if p != wantPrev {
				return nil
			}
			return []domain.OrderRecord{completedPaid(100)}
		}}
		svc := newService(orders, &stubLineReader{})

		r, err := svc.CalculateRevenue(context.Background(), current.Start, current.End)
		require.NoError(t, err)
		assert.InDelta(t, 150.0, r.Total, 0.001)
		assert.InDelta(t, 50.0, r.ChangePercent, 0.001)
	})

	t.Run("empty both periods yields zero change", func(t *testing.T) {
		svc := newService(&stubOrderReader{}, &stubLineReader{})
		r, err := svc.CalculateRevenue(context.Background(), current.Start, current.End)
		require.NoError(t, err)
		assert.Zero(t, r.Total)
		assert.Zero(t, r.ChangePercent)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		svc := newService(&stubOrderReader{err: errors.New("connection reset")}, &stubLineReader{})
		_, err := svc.CalculateRevenue(context.Background(), current.Start, current.End)
		require.Error(t, err)
	})
}

func TestAnalyticsService_GetProfitMetrics(t *testing.T) {
	cost := decimal.NewFromInt(50)
	lines := &stubLineReader{lines: []domain.SaleLine{
		{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromInt(100), CostPrice: &cost},
		{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromInt(100), CostPrice: nil},
	}}
	svc := newService(&stubOrderReader{}, lines)

	p, err := svc.GetProfitMetrics(context.Background(), "month", nil, nil)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, p.TotalRevenue, 0.001)
	assert.InDelta(t, 50.0, p.GrossProfit, 0.001)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), p.PeriodStart)
	assert.Equal(t, time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC), p.PeriodEnd)
}

func TestAnalyticsService_Distributions(t *testing.T) {
	catA := uuid.New()
	catB := uuid.New()
	lines := &stubLineReader{lines: []domain.SaleLine{
		{ProductID: uuid.New(), ProductName: "Widget", CategoryID: &catA, CategoryName: "Tools", Quantity: 3, UnitPrice: decimal.NewFromInt(100)},
		{ProductID: uuid.New(), ProductName: "Gadget", CategoryID: &catB, CategoryName: "Toys", Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
	}}
	svc := newService(&stubOrderReader{}, lines)

	t.Run("sales by category", func(t *testing.T) {
		rows, err := svc.GetSalesByCategory(context.Background(), "month")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Tools", rows[0].GroupName)
		assert.InDelta(t, 75.0, rows[0].Percentage, 0.001)
	})

	t.Run("top products default limit", func(t *testing.T) {
		rows, err := svc.GetTopSellingProducts(context.Background(), 0, "month")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Widget", rows[0].ProductName)
		assert.Equal(t, int64(3), rows[0].QuantitySold)
	})

	t.Run("empty input yields empty distributions", func(t *testing.T) {
		svc := newService(&stubOrderReader{}, &stubLineReader{})
		rows, err := svc.GetSalesByBrand(context.Background(), "week")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestAnalyticsService_Idempotence(t *testing.T) {
	orders := &stubOrderReader{byPeriod: func(domain.Period) []domain.OrderRecord {
		o := completedPaid(123.45)
		o.ID = uuid.Nil // fixed identity keeps the snapshots identical
		return []domain.OrderRecord{o}
	}}
	svc := newService(orders, &stubLineReader{})

	first, err := svc.GetOrderMetrics(context.Background(), fixedClock().AddDate(0, 0, -1), fixedClock())
	require.NoError(t, err)
	second, err := svc.GetOrderMetrics(context.Background(), fixedClock().AddDate(0, 0, -1), fixedClock())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
