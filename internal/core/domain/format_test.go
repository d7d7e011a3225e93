package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[string]string{
		"0":           "R$ 0,00",
		"5":           "R$ 5,00",
		"1234.5":      "R$ 1.234,50",
		"1234567.891": "R$ 1.234.567,89",
		"-20":         "-R$ 20,00",
		"-0.001":      "R$ 0,00",
		"999.995":     "R$ 1.000,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCurrency(dec(in)), in)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50,00%", FormatPercent(dec("50")))
	assert.Equal(t, "-20,00%", FormatPercent(dec("-20")))
	assert.Equal(t, "33,33%", FormatPercent(dec("33.333333")))
	assert.Equal(t, "1.200,00%", FormatPercent(dec("1200")))
}
