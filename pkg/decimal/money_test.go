package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"small", "999", "₹999.00"},
		{"thousand", "1000", "₹1,000.00"},
		{"lakh", "123456.789", "₹1,23,456.79"},
		{"crore", "12345678", "₹1,23,45,678.00"},
		{"negative", "-150000", "-₹1,50,000.00"},
		{"zero", "0", "₹0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(decimal.RequireFromString(tt.value)))
		})
	}
}

func TestPaise(t *testing.T) {
	assert.Equal(t, "10.13", Paise(10.125).StringFixed(2))
	assert.Equal(t, "1234.57", Paise(1234.5678).StringFixed(2))
	assert.True(t, Paise(0.004).IsZero())
}

func TestPaiseUp(t *testing.T) {
	assert.Equal(t, "0.01", PaiseUp(1.0/360).StringFixed(2))
	assert.Equal(t, "10.13", PaiseUp(10.121).StringFixed(2))
	assert.Equal(t, "10.12", PaiseUp(10.12).StringFixed(2))
}

func TestRupees(t *testing.T) {
	assert.Equal(t, "11", Rupees(decimal.RequireFromString("10.5")).String())
	assert.Equal(t, "12500", Rupees(decimal.RequireFromString("12499.6")).String())
	assert.Equal(t, "70950", Rupees(decimal.RequireFromString("70950.4")).String())
}
