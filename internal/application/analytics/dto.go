package analytics

import (
	"time"

	"github.com/backoffice/server/internal/domain/analytics"
	"github.com/shopspring/decimal"
)

// OrderMetricsResponse summarizes order activity for a window.
type OrderMetricsResponse struct {
	TotalOrders   int64   `json:"total_orders"`
	WalkInOrders  int64   `json:"walk_in_orders"`
	OnlineOrders  int64   `json:"online_orders"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

// RevenueResponse is paid revenue with period-over-period change.
type RevenueResponse struct {
	Total         float64 `json:"total"`
	ChangePercent float64 `json:"change_percent"`
}

// ProfitResponse carries profit aggregation results for a period.
type ProfitResponse struct {
	PeriodStart  time.Time `json:"period_start"`
	PeriodEnd    time.Time `json:"period_end"`
	TotalRevenue float64   `json:"total_revenue"`
	TotalCost    float64   `json:"total_cost"`
	GrossProfit  float64   `json:"gross_profit"`
	ProfitMargin float64   `json:"profit_margin"`
}

// RevenueShareResponse is one row of a revenue distribution.
type RevenueShareResponse struct {
	GroupID      string  `json:"group_id"`
	GroupName    string  `json:"group_name"`
	TotalRevenue float64 `json:"total_revenue"`
	Percentage   float64 `json:"percentage"`
}

// TopProductResponse is one row of the top-selling products ranking.
type TopProductResponse struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	QuantitySold int64   `json:"quantity_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

// DashboardResponse assembles every analytics block for one period.
type DashboardResponse struct {
	Period          string                 `json:"period"`
	PeriodStart     time.Time              `json:"period_start"`
	PeriodEnd       time.Time              `json:"period_end"`
	Orders          OrderMetricsResponse   `json:"orders"`
	Revenue         RevenueResponse        `json:"revenue"`
	Profit          ProfitResponse         `json:"profit"`
	SalesByCategory []RevenueShareResponse `json:"sales_by_category"`
	SalesByBrand    []RevenueShareResponse `json:"sales_by_brand"`
	TopProducts     []TopProductResponse   `json:"top_products"`
	PaymentMethods  []RevenueShareResponse `json:"payment_methods"`
	Locations       []RevenueShareResponse `json:"revenue_by_location"`
}

func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func toShareResponses(rows []analytics.RevenueShare) []RevenueShareResponse {
	responses := make([]RevenueShareResponse, len(rows))
	for i, r := range rows {
		responses[i] = RevenueShareResponse{
			GroupID:      r.GroupID,
			GroupName:    r.GroupName,
			TotalRevenue: toFloat64(r.TotalRevenue),
			Percentage:   toFloat64(r.Percentage),
		}
	}
	return responses
}

func toTopProductResponses(rows []analytics.ProductSales) []TopProductResponse {
	responses := make([]TopProductResponse, len(rows))
	for i, r := range rows {
		responses[i] = TopProductResponse{
			ProductID:    r.ProductID.String(),
			ProductName:  r.ProductName,
			QuantitySold: r.QuantitySold,
			TotalRevenue: toFloat64(r.TotalRevenue),
		}
	}
	return responses
}
