package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Profit holds the derived figures of a campaign.
type Profit struct {
	Amount  decimal.Decimal `json:"profit_amount"`
	Percent decimal.Decimal `json:"profit_percent"`
}

// ComputeProfit returns sale minus purchase and the margin over purchase as a
// percentage. The margin is zero when there was no purchase.
func ComputeProfit(sale, purchase decimal.Decimal) Profit {
	amount := sale.Sub(purchase)
	percent := decimal.Zero
	if purchase.IsPositive() {
		percent = amount.Div(purchase).Mul(hundred)
	}
	return Profit{Amount: amount, Percent: percent}
}
