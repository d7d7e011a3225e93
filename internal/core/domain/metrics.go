package domain

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Metrics summarises all campaigns for the dashboard. Averages are per
// customer, not per campaign.
type Metrics struct {
	Count                int             `json:"count"`
	TotalProfit          decimal.Decimal `json:"total_profit"`
	TotalSales           decimal.Decimal `json:"total_sales"`
	TotalCustomers       int64           `json:"total_customers"`
	AvgSalePerCustomer   decimal.Decimal `json:"avg_sale_per_customer"`
	AvgProfitPerCustomer decimal.Decimal `json:"avg_profit_per_customer"`
}

// AggregateMetrics reduces records into Metrics. With no customers the
// averages are zero.
func AggregateMetrics(records []Campaign) Metrics {
	m := Metrics{
		Count:                len(records),
		TotalProfit:          decimal.Zero,
		TotalSales:           decimal.Zero,
		AvgSalePerCustomer:   decimal.Zero,
		AvgProfitPerCustomer: decimal.Zero,
	}
	for _, c := range records {
		m.TotalProfit = m.TotalProfit.Add(c.ProfitAmount)
		m.TotalSales = m.TotalSales.Add(c.SaleAmount)
		m.TotalCustomers += c.CustomerCount
	}
	if m.TotalCustomers > 0 {
		customers := decimal.NewFromInt(m.TotalCustomers)
		m.AvgSalePerCustomer = m.TotalSales.Div(customers)
		m.AvgProfitPerCustomer = m.TotalProfit.Div(customers)
	}
	return m
}

// SeriesPoint is one campaign on the dashboard timeline.
type SeriesPoint struct {
	Name      string          `json:"name"`
	StartDate string          `json:"start_date"`
	Profit    decimal.Decimal `json:"profit"`
	Sale      decimal.Decimal `json:"sale"`
	Purchase  decimal.Decimal `json:"purchase"`
}

// ProfitSeries orders campaigns by start date, oldest first, for the profit
// evolution and purchase-versus-sale charts.
func ProfitSeries(records []Campaign) []SeriesPoint {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Campaign) int {
		return strings.Compare(a.StartDate, b.StartDate)
	})

	points := make([]SeriesPoint, 0, len(sorted))
	for _, c := range sorted {
		points = append(points, SeriesPoint{
			Name:      c.Name,
			StartDate: c.StartDate,
			Profit:    c.ProfitAmount,
			Sale:      c.SaleAmount,
			Purchase:  c.PurchaseAmount,
		})
	}
	return points
}
