package analytics

import "github.com/shopspring/decimal"

// ProfitMetrics aggregates revenue, cost and profit over sale lines whose
// product has a known cost basis. Lines with a nil cost price are absent from
// every field, not zero-valued.
type ProfitMetrics struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	GrossProfit  decimal.Decimal `json:"gross_profit"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
}

// ComputeProfitMetrics folds completed-order sale lines into profit figures.
// The margin is 0 when revenue is 0.
func ComputeProfitMetrics(lines []SaleLine) ProfitMetrics {
	revenue := decimal.Zero
	cost := decimal.Zero

	for _, l := range lines {
		if l.CostPrice == nil {
			continue
		}
		qty := decimal.NewFromInt(l.Quantity)
		revenue = revenue.Add(l.UnitPrice.Mul(qty))
		cost = cost.Add(l.CostPrice.Mul(qty))
	}

	profit := revenue.Sub(cost)
	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = profit.Div(revenue).Mul(hundred).Round(2)
	}

	return ProfitMetrics{
		TotalRevenue: revenue,
		TotalCost:    cost,
		GrossProfit:  profit,
		ProfitMargin: margin,
	}
}
