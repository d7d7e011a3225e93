package httpadapter

import (
	"net/http"
	"strconv"

	"campaign-tracker/internal/core/domain"
)

type dashboardResponse struct {
	Metrics   domain.Metrics   `json:"metrics"`
	Formatted formattedMetrics `json:"formatted"`
	Series    []seriesView     `json:"series"`
}

type formattedMetrics struct {
	Count                string `json:"count"`
	TotalProfit          string `json:"total_profit"`
	TotalSales           string `json:"total_sales"`
	TotalCustomers       string `json:"total_customers"`
	AvgSalePerCustomer   string `json:"avg_sale_per_customer"`
	AvgProfitPerCustomer string `json:"avg_profit_per_customer"`
}

// seriesView is one chart point with its axis label.
type seriesView struct {
	domain.SeriesPoint
	Label string `json:"label"`
}

// handleDashboard returns the summary metrics over every stored campaign
// and the chart series ordered by start date.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.svc.Dashboard(r.Context())
	if err != nil {
		h.writeError(w, r, "dashboard", err)
		return
	}

	m := dash.Metrics
	resp := dashboardResponse{
		Metrics: m,
		Formatted: formattedMetrics{
			Count:                strconv.Itoa(m.Count),
			TotalProfit:          domain.FormatCurrency(m.TotalProfit),
			TotalSales:           domain.FormatCurrency(m.TotalSales),
			TotalCustomers:       strconv.FormatInt(m.TotalCustomers, 10),
			AvgSalePerCustomer:   domain.FormatCurrency(m.AvgSalePerCustomer),
			AvgProfitPerCustomer: domain.FormatCurrency(m.AvgProfitPerCustomer),
		},
		Series: make([]seriesView, 0, len(dash.Series)),
	}
	for _, p := range dash.Series {
		resp.Series = append(resp.Series, seriesView{SeriesPoint: p, Label: domain.FormatDisplayDate(p.StartDate)})
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}
