package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CampaignForm is the create/edit form exactly as the user typed it. Dates
// are DD/MM/YYYY text and numbers are free text.
type CampaignForm struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	CustomerCount  string `json:"customer_count"`
	SaleAmount     string `json:"sale_amount"`
	PurchaseAmount string `json:"purchase_amount"`
	Notes          string `json:"notes"`
}

// Parse validates the form and converts it into a CampaignInput. Failures
// are *ValidationError values whose message can be shown to the user as is.
func (f CampaignForm) Parse() (CampaignInput, error) {
	start, startErr := ParseUserDate(strings.TrimSpace(f.StartDate))
	end, endErr := ParseUserDate(strings.TrimSpace(f.EndDate))

	name := strings.TrimSpace(f.Name)
	missing := name == "" || strings.TrimSpace(f.SaleAmount) == "" || strings.TrimSpace(f.PurchaseAmount) == ""
	if startErr != nil || endErr != nil {
		return CampaignInput{}, NewValidationError(MsgInvalidDates)
	}
	if missing {
		return CampaignInput{}, NewValidationError(MsgRequiredFields)
	}
	if end < start {
		return CampaignInput{}, NewValidationError(MsgDateRange)
	}

	sale, err := parseAmount(f.SaleAmount)
	if err != nil {
		return CampaignInput{}, err
	}
	purchase, err := parseAmount(f.PurchaseAmount)
	if err != nil {
		return CampaignInput{}, err
	}

	customers, err := parseCustomers(f.CustomerCount)
	if err != nil {
		return CampaignInput{}, err
	}

	return CampaignInput{
		ID:             strings.TrimSpace(f.ID),
		Name:           name,
		StartDate:      start,
		EndDate:        end,
		CustomerCount:  customers,
		SaleAmount:     sale,
		PurchaseAmount: purchase,
		Notes:          f.Notes,
	}, nil
}

// FormFromCampaign fills the edit form with a stored campaign.
func FormFromCampaign(c Campaign) CampaignForm {
	return CampaignForm{
		ID:             c.ID,
		Name:           c.Name,
		StartDate:      FormatUserDate(c.StartDate),
		EndDate:        FormatUserDate(c.EndDate),
		CustomerCount:  strconv.FormatInt(c.CustomerCount, 10),
		SaleAmount:     c.SaleAmount.String(),
		PurchaseAmount: c.PurchaseAmount.String(),
		Notes:          c.Notes,
	}
}

// PreviewProfit computes the profit shown next to the form while the user is
// still typing. ok is false until both amounts parse.
func PreviewProfit(sale, purchase string) (Profit, bool) {
	s, err := parseAmount(sale)
	if err != nil {
		return Profit{}, false
	}
	p, err := parseAmount(purchase)
	if err != nil {
		return Profit{}, false
	}
	return ComputeProfit(s, p), true
}

// parseAmount accepts both "12.34" and "12,34".
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, NewValidationError(MsgInvalidAmounts)
	}
	return d, nil
}

// parseCustomers treats blank or non-numeric text as zero customers.
func parseCustomers(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, nil
	}
	if n < 0 {
		return 0, NewValidationError(MsgNegativeCustomers)
	}
	return n, nil
}
