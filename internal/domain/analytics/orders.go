package analytics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// OrderMetrics summarizes order activity in a window. Channel counts
// partition the same non-cancelled order set, so WalkInOrders + OnlineOrders
// always equals TotalOrders.
type OrderMetrics struct {
	TotalOrders   int64           `json:"total_orders"`
	WalkInOrders  int64           `json:"walk_in_orders"`
	OnlineOrders  int64           `json:"online_orders"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

// Revenue is paid completed-order revenue with the change against the
// preceding equal-length window.
type Revenue struct {
	Total         decimal.Decimal `json:"total"`
	ChangePercent decimal.Decimal `json:"change_percent"`
}

// ComputeOrderMetrics folds an order snapshot into counts and average order
// value. Cancelled orders contribute to no counter. The average uses the
// narrower completed-order set and is 0 when that set is empty.
func ComputeOrderMetrics(orders []OrderRecord) OrderMetrics {
	var m OrderMetrics
	var completedCount int64
	completedTotal := decimal.Zero

	for _, o := range orders {
		if o.Status == OrderStatusCancelled {
			continue
		}
		m.TotalOrders++
		switch o.Channel {
		case ChannelOnline:
			m.OnlineOrders++
		default:
			// Legacy rows without a channel are point-of-sale orders;
			// counting them as walk-in keeps the channel partition exact.
			m.WalkInOrders++
		}
		if o.Status == OrderStatusCompleted {
			completedCount++
			completedTotal = completedTotal.Add(o.TotalAmount)
		}
	}

	m.AvgOrderValue = decimal.Zero
	if completedCount > 0 {
		m.AvgOrderValue = completedTotal.Div(decimal.NewFromInt(completedCount)).Round(2)
	}
	return m
}

// PaidRevenue sums total_amount over completed, paid orders.
func PaidRevenue(orders []OrderRecord) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if o.Status == OrderStatusCompleted && o.PaymentStatus == PaymentStatusPaid {
			total = total.Add(o.TotalAmount)
		}
	}
	return total
}

// ChangePercent computes the period-over-period change. A zero previous
// period yields 0 when the current period is also zero and 100 otherwise;
// division by zero never occurs.
func ChangePercent(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}
