package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CopySuffix is appended to the name of a duplicated campaign.
const CopySuffix = " (Copy)"

// Campaign represents one recorded marketing campaign.
// Dates are sortable keys (YYYY-MM-DD). ProfitAmount and ProfitPercent are
// derived from the amounts and are recomputed before every persist.
type Campaign struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	CustomerCount  int64           `json:"customer_count"`
	SaleAmount     decimal.Decimal `json:"sale_amount"`
	PurchaseAmount decimal.Decimal `json:"purchase_amount"`
	ProfitAmount   decimal.Decimal `json:"profit_amount"`
	ProfitPercent  decimal.Decimal `json:"profit_percent"`
	Notes          string          `json:"notes,omitempty"`
}

// CampaignInput carries the user-editable fields of a campaign. An empty ID
// means the campaign has not been persisted yet.
type CampaignInput struct {
	ID             string
	Name           string
	StartDate      string
	EndDate        string
	CustomerCount  int64
	SaleAmount     decimal.Decimal
	PurchaseAmount decimal.Decimal
	Notes          string
}

// Validate checks the invariants every persisted campaign must hold.
func (in CampaignInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewValidationError(MsgRequiredFields)
	}
	if !IsDateKey(in.StartDate) || !IsDateKey(in.EndDate) {
		return NewValidationError(MsgInvalidDates)
	}
	if in.EndDate < in.StartDate {
		return NewValidationError(MsgDateRange)
	}
	if in.CustomerCount < 0 {
		return NewValidationError(MsgNegativeCustomers)
	}
	if in.SaleAmount.IsNegative() || in.PurchaseAmount.IsNegative() {
		return NewValidationError(MsgInvalidAmounts)
	}
	return nil
}

// Build turns the input into a campaign with the given id and freshly
// computed profit fields.
func (in CampaignInput) Build(id string) Campaign {
	c := Campaign{
		ID:             id,
		Name:           in.Name,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		CustomerCount:  in.CustomerCount,
		SaleAmount:     in.SaleAmount,
		PurchaseAmount: in.PurchaseAmount,
		Notes:          in.Notes,
	}
	c.Recompute()
	return c
}

// Input returns the editable part of the campaign.
func (c Campaign) Input() CampaignInput {
	return CampaignInput{
		ID:             c.ID,
		Name:           c.Name,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		CustomerCount:  c.CustomerCount,
		SaleAmount:     c.SaleAmount,
		PurchaseAmount: c.PurchaseAmount,
		Notes:          c.Notes,
	}
}

// Recompute refreshes the derived profit fields from the amounts.
func (c *Campaign) Recompute() {
	p := ComputeProfit(c.SaleAmount, c.PurchaseAmount)
	c.ProfitAmount = p.Amount
	c.ProfitPercent = p.Percent
}

// Duplicate clones the campaign under a new id, marking the name as a copy.
func (c Campaign) Duplicate(id string) Campaign {
	cp := c
	cp.ID = id
	cp.Name = c.Name + CopySuffix
	cp.Recompute()
	return cp
}
