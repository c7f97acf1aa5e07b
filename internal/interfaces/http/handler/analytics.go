package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	analyticsapp "github.com/backoffice/server/internal/application/analytics"
	"github.com/backoffice/server/internal/infrastructure/logger"
)

const dateLayout = "2006-01-02"

// AnalyticsHandler handles analytics API endpoints
type AnalyticsHandler struct {
	BaseHandler
	analyticsService *analyticsapp.AnalyticsService
	dashboardService *analyticsapp.DashboardService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *analyticsapp.AnalyticsService, dashboardService *analyticsapp.DashboardService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		dashboardService: dashboardService,
	}
}

// RegisterRoutes registers analytics routes on the API group
func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	{
		analytics.GET("/dashboard", h.GetDashboard)
		analytics.GET("/orders", h.GetOrderMetrics)
		analytics.GET("/revenue", h.GetRevenue)
		analytics.GET("/profit", h.GetProfit)
		analytics.GET("/sales-by-category", h.GetSalesByCategory)
		analytics.GET("/sales-by-brand", h.GetSalesByBrand)
		analytics.GET("/top-products", h.GetTopProducts)
		analytics.GET("/payment-methods", h.GetPaymentMethodDistribution)
		analytics.GET("/revenue-by-location", h.GetRevenueByLocation)
	}
}

// PeriodQuery defines the period selection query parameters shared by the
// analytics endpoints.
type PeriodQuery struct {
	Period    string `form:"period" example:"month"`
	StartDate string `form:"start_date" example:"2026-03-01"`
	EndDate   string `form:"end_date" example:"2026-03-31"`
}

// bounds parses the optional custom date bounds. start_date is taken at the
// start of its day and end_date at the end of its day.
func (q PeriodQuery) bounds() (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if q.StartDate != "" {
		t, err := time.Parse(dateLayout, q.StartDate)
		if err != nil {
			return nil, nil, err
		}
		start = &t
	}
	if q.EndDate != "" {
		t, err := time.Parse(dateLayout, q.EndDate)
		if err != nil {
			return nil, nil, err
		}
		eod := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
		end = &eod
	}
	return start, end, nil
}

func (h *AnalyticsHandler) periodQuery(c *gin.Context) (PeriodQuery, *time.Time, *time.Time, bool) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "invalid query parameters")
		return q, nil, nil, false
	}
	if q.Period == "" {
		q.Period = "month"
	}
	start, end, err := q.bounds()
	if err != nil {
		h.BadRequest(c, "dates must use YYYY-MM-DD")
		return q, nil, nil, false
	}
	return q, start, end, true
}

// GetDashboard returns the full dashboard snapshot for a period
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	q, _, _, ok := h.periodQuery(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), q.Period)
	if err != nil {
		logger.GetGinLogger(c).Error("dashboard query failed", zap.Error(err))
		h.InternalError(c, "failed to load dashboard")
		return
	}
	h.Success(c, dashboard)
}

// GetOrderMetrics returns order counts and the average order value
func (h *AnalyticsHandler) GetOrderMetrics(c *gin.Context) {
	q, start, end, ok := h.periodQuery(c)
	if !ok {
		return
	}

	p := h.analyticsService.ResolvePeriod(q.Period, start, end)
	metrics, err := h.analyticsService.GetOrderMetrics(c.Request.Context(), p.Start, p.End)
	if err != nil {
		logger.GetGinLogger(c).Error("order metrics query failed", zap.Error(err))
		h.InternalError(c, "failed to compute order metrics")
		return
	}
	h.Success(c, metrics)
}

// GetRevenue returns paid revenue with change against the previous period
func (h *AnalyticsHandler) GetRevenue(c *gin.Context) {
	q, start, end, ok := h.periodQuery(c)
	if !ok {
		return
	}

	p := h.analyticsService.ResolvePeriod(q.Period, start, end)
	revenue, err := h.analyticsService.CalculateRevenue(c.Request.Context(), p.Start, p.End)
	if err != nil {
		logger.GetGinLogger(c).Error("revenue query failed", zap.Error(err))
		h.InternalError(c, "failed to compute revenue")
		return
	}
	h.Success(c, revenue)
}

// GetProfit returns profit metrics for the period
func (h *AnalyticsHandler) GetProfit(c *gin.Context) {
	q, start, end, ok := h.periodQuery(c)
	if !ok {
		return
	}

	profit, err := h.analyticsService.GetProfitMetrics(c.Request.Context(), q.Period, start, end)
	if err != nil {
		logger.GetGinLogger(c).Error("profit query failed", zap.Error(err))
		h.InternalError(c, "failed to compute profit metrics")
		return
	}
	h.Success(c, profit)
}

// GetSalesByCategory returns the revenue distribution across categories
func (h *AnalyticsHandler) GetSalesByCategory(c *gin.Context) {
	q, _, _, ok := h.periodQuery(c)
	if !ok {
		return
	}

	shares, err := h.analyticsService.GetSalesByCategory(c.Request.Context(), q.Period)
	if err != nil {
		logger.GetGinLogger(c).Error("category distribution query failed", zap.Error(err))
		h.InternalError(c, "failed to compute category distribution")
		return
	}
	h.Success(c, shares)
}

// GetSalesByBrand returns the revenue distribution across brands
func (h *AnalyticsHandler) GetSalesByBrand(c *gin.Context) {
	q, _, _, ok := h.periodQuery(c)
	if !ok {
		return
	}

	shares, err := h.analyticsService.GetSalesByBrand(c.Request.Context(), q.Period)
	if err != nil {
		logger.GetGinLogger(c).Error("brand distribution query failed", zap.Error(err))
		h.InternalError(c, "failed to compute brand distribution")
		return
	}
	h.Success(c, shares)
}

// GetTopProducts returns the best selling products ranked by quantity
func (h *AnalyticsHandler) GetTopProducts(c *gin.Context) {
	q, _, _, ok := h.periodQuery(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.BadRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	products, err := h.analyticsService.GetTopSellingProducts(c.Request.Context(), limit, q.Period)
	if err != nil {
		logger.GetGinLogger(c).Error("top products query failed", zap.Error(err))
		h.InternalError(c, "failed to compute top products")
		return
	}
	h.Success(c, products)
}

// GetPaymentMethodDistribution returns revenue shares per payment method
func (h *AnalyticsHandler) GetPaymentMethodDistribution(c *gin.Context) {
	q, _, _, ok := h.periodQuery(c)
	if !ok {
		return
	}

	shares, err := h.analyticsService.GetPaymentMethodDistribution(c.Request.Context(), q.Period)
	if err != nil {
		logger.GetGinLogger(c).Error("payment method distribution query failed", zap.Error(err))
		h.InternalError(c, "failed to compute payment method distribution")
		return
	}
	h.Success(c, shares)
}

// GetRevenueByLocation returns revenue shares per store location
func (h *AnalyticsHandler) GetRevenueByLocation(c *gin.Context) {
	q, _, _, ok := h.periodQuery(c)
	if !ok {
		return
	}

	shares, err := h.analyticsService.GetRevenueByLocation(c.Request.Context(), q.Period)
	if err != nil {
		logger.GetGinLogger(c).Error("location distribution query failed", zap.Error(err))
		h.InternalError(c, "failed to compute location distribution")
		return
	}
	h.Success(c, shares)
}
