package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-tracker/internal/core/domain"
)

// campaignView is a stored campaign plus its pt-BR display strings.
type campaignView struct {
	domain.Campaign
	Display campaignDisplay `json:"display"`
}

type campaignDisplay struct {
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	SaleAmount     string `json:"sale_amount"`
	PurchaseAmount string `json:"purchase_amount"`
	ProfitAmount   string `json:"profit_amount"`
	ProfitPercent  string `json:"profit_percent"`
}

func newCampaignView(c domain.Campaign) campaignView {
	return campaignView{
		Campaign: c,
		Display: campaignDisplay{
			StartDate:      domain.FormatDisplayDate(c.StartDate),
			EndDate:        domain.FormatDisplayDate(c.EndDate),
			SaleAmount:     domain.FormatCurrency(c.SaleAmount),
			PurchaseAmount: domain.FormatCurrency(c.PurchaseAmount),
			ProfitAmount:   domain.FormatCurrency(c.ProfitAmount),
			ProfitPercent:  domain.FormatPercent(c.ProfitPercent),
		},
	}
}

type listResponse struct {
	Campaigns []campaignView `json:"campaigns"`
}

type campaignResponse struct {
	campaignView
	// Form is the campaign as the edit form expects it.
	Form domain.CampaignForm `json:"form"`
}

type previewRequest struct {
	SaleAmount     string `json:"sale_amount"`
	PurchaseAmount string `json:"purchase_amount"`
}

type previewResponse struct {
	Ready         bool           `json:"ready"`
	Profit        *domain.Profit `json:"profit,omitempty"`
	ProfitAmount  string         `json:"profit_amount_display,omitempty"`
	ProfitPercent string         `json:"profit_percent_display,omitempty"`
}

// handleListCampaigns returns the filtered and sorted campaign list. Invalid
// sort, direction or date parameters result in HTTP 400.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r.URL.Query())
	if err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}
	campaigns, err := h.svc.Query(r.Context(), q)
	if err != nil {
		h.writeError(w, r, "list campaigns", err)
		return
	}
	resp := listResponse{Campaigns: make([]campaignView, 0, len(campaigns))}
	for _, c := range campaigns {
		resp.Campaigns = append(resp.Campaigns, newCampaignView(c))
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "get campaign", err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, campaignResponse{
		campaignView: newCampaignView(*c),
		Form:         domain.FormFromCampaign(*c),
	})
}

// handleCreateCampaign stores a new campaign from the submitted form. Any id
// in the body is ignored.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var form domain.CampaignForm
	if err := decodeJSON(w, r, &form); err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, "invalid JSON")
		return
	}
	form.ID = ""
	h.saveForm(w, r, form, http.StatusCreated)
}

// handleUpdateCampaign saves the form under the id from the path. An id that
// is not stored yet creates the campaign under that id.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var form domain.CampaignForm
	if err := decodeJSON(w, r, &form); err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, "invalid JSON")
		return
	}
	form.ID = chi.URLParam(r, "id")
	h.saveForm(w, r, form, http.StatusOK)
}

func (h *Handler) saveForm(w http.ResponseWriter, r *http.Request, form domain.CampaignForm, status int) {
	in, err := form.Parse()
	if err != nil {
		h.writeError(w, r, "parse form", err)
		return
	}
	saved, err := h.svc.Save(r.Context(), in)
	if err != nil {
		h.writeError(w, r, "save campaign", err)
		return
	}
	h.writeJSON(w, r, status, newCampaignView(saved))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, "delete campaign", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDuplicateCampaign(w http.ResponseWriter, r *http.Request) {
	cp, err := h.svc.Duplicate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "duplicate campaign", err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, newCampaignView(*cp))
}

// handlePreview computes the profit for partially filled form amounts.
// ready is false while either amount does not parse yet.
func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, "invalid JSON")
		return
	}
	p, ok := domain.PreviewProfit(req.SaleAmount, req.PurchaseAmount)
	if !ok {
		h.writeJSON(w, r, http.StatusOK, previewResponse{})
		return
	}
	h.writeJSON(w, r, http.StatusOK, previewResponse{
		Ready:         true,
		Profit:        &p,
		ProfitAmount:  domain.FormatCurrency(p.Amount),
		ProfitPercent: domain.FormatPercent(p.Percent),
	})
}
