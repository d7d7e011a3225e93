package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount in Brazilian reais, e.g. "R$ 1.234,56".
func FormatCurrency(d decimal.Decimal) string {
	s := "R$ " + groupPtBR(d.Abs().StringFixed(2))
	if d.Round(2).IsNegative() {
		return "-" + s
	}
	return s
}

// FormatPercent renders a percentage with two decimals, e.g. "12,50%".
func FormatPercent(p decimal.Decimal) string {
	s := groupPtBR(p.Abs().StringFixed(2)) + "%"
	if p.Round(2).IsNegative() {
		return "-" + s
	}
	return s
}

// groupPtBR turns "1234567.89" into "1.234.567,89".
func groupPtBR(fixed string) string {
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	if frac != "" {
		b.WriteByte(',')
		b.WriteString(frac)
	}
	return b.String()
}
