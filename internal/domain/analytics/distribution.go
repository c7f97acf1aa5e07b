package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RevenueShare is one row of a revenue distribution: a group, its revenue and
// its share of the grand total. Lists are sorted descending by revenue and
// shares sum to 100 (within rounding) whenever the grand total is nonzero.
type RevenueShare struct {
	GroupID      string          `json:"group_id"`
	GroupName    string          `json:"group_name"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	Percentage   decimal.Decimal `json:"percentage"`
}

// ProductSales is one row of the top-selling-products ranking, ordered by
// quantity sold.
type ProductSales struct {
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int64           `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// SalesByCategory groups sale-line revenue by product category. Lines whose
// product has no category are not part of any group.
func SalesByCategory(lines []SaleLine) []RevenueShare {
	return shareLines(lines, func(l SaleLine) (string, string, bool) {
		if l.CategoryID == nil {
			return "", "", false
		}
		return l.CategoryID.String(), l.CategoryName, true
	})
}

// SalesByBrand groups sale-line revenue by product brand.
func SalesByBrand(lines []SaleLine) []RevenueShare {
	return shareLines(lines, func(l SaleLine) (string, string, bool) {
		if l.BrandID == nil {
			return "", "", false
		}
		return l.BrandID.String(), l.BrandName, true
	})
}

// PaymentMethodShares distributes paid completed-order revenue across
// payment methods.
func PaymentMethodShares(orders []OrderRecord) []RevenueShare {
	return shareOrders(orders, func(o OrderRecord) string { return o.PaymentMethod })
}

// RevenueByLocation distributes paid completed-order revenue across store
// locations.
func RevenueByLocation(orders []OrderRecord) []RevenueShare {
	return shareOrders(orders, func(o OrderRecord) string { return o.Location })
}

// TopProductsByQuantity ranks products by summed quantity across the given
// completed-order lines, descending, truncated to limit. Products with no
// sales never appear.
func TopProductsByQuantity(lines []SaleLine, limit int) []ProductSales {
	type accum struct {
		name     string
		quantity int64
		revenue  decimal.Decimal
	}
	totals := make(map[uuid.UUID]*accum)
	order := make([]uuid.UUID, 0)

	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		a, ok := totals[l.ProductID]
		if !ok {
			a = &accum{name: l.ProductName, revenue: decimal.Zero}
			totals[l.ProductID] = a
			order = append(order, l.ProductID)
		}
		a.quantity += l.Quantity
		a.revenue = a.revenue.Add(l.Revenue())
	}

	ranking := make([]ProductSales, 0, len(order))
	for _, id := range order {
		a := totals[id]
		ranking = append(ranking, ProductSales{
			ProductID:    id,
			ProductName:  a.name,
			QuantitySold: a.quantity,
			TotalRevenue: a.revenue,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].QuantitySold > ranking[j].QuantitySold
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}

func shareLines(lines []SaleLine, key func(SaleLine) (id, name string, ok bool)) []RevenueShare {
	grouped := make(map[string]*RevenueShare)
	order := make([]string, 0)

	for _, l := range lines {
		id, name, ok := key(l)
		if !ok {
			continue
		}
		row, exists := grouped[id]
		if !exists {
			row = &RevenueShare{GroupID: id, GroupName: name, TotalRevenue: decimal.Zero}
			grouped[id] = row
			order = append(order, id)
		}
		row.TotalRevenue = row.TotalRevenue.Add(l.Revenue())
	}

	return finishShares(grouped, order)
}

func shareOrders(orders []OrderRecord, key func(OrderRecord) string) []RevenueShare {
	grouped := make(map[string]*RevenueShare)
	order := make([]string, 0)

	for _, o := range orders {
		if o.Status != OrderStatusCompleted || o.PaymentStatus != PaymentStatusPaid {
			continue
		}
		id := key(o)
		row, exists := grouped[id]
		if !exists {
			row = &RevenueShare{GroupID: id, GroupName: id, TotalRevenue: decimal.Zero}
			grouped[id] = row
			order = append(order, id)
		}
		row.TotalRevenue = row.TotalRevenue.Add(o.TotalAmount)
	}

	return finishShares(grouped, order)
}

// finishShares drops zero-revenue groups, computes percentage of the grand
// total and sorts descending by revenue.
func finishShares(grouped map[string]*RevenueShare, order []string) []RevenueShare {
	grand := decimal.Zero
	for _, id := range order {
		grand = grand.Add(grouped[id].TotalRevenue)
	}

	rows := make([]RevenueShare, 0, len(order))
	for _, id := range order {
		row := grouped[id]
		if row.TotalRevenue.IsZero() {
			continue
		}
		if grand.IsPositive() {
			row.Percentage = row.TotalRevenue.Div(grand).Mul(hundred).Round(2)
		} else {
			row.Percentage = decimal.Zero
		}
		rows = append(rows, *row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenue.GreaterThan(rows[j].TotalRevenue)
	})
	return rows
}
