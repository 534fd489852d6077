package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Paise rounds a float amount to the nearest paisa (two decimal places).
func Paise(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(2)
}

// PaiseUp rounds a float amount up to the next whole paisa.
func PaiseUp(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).RoundCeil(2)
}

// Rupees rounds an amount to whole rupees.
func Rupees(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// FormatINR renders d rounded to paise with lakh/crore grouping.
func FormatINR(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var grouped string
	if len(intPart) <= 3 {
		grouped = intPart
	} else {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		grouped = strings.Join(parts, ",") + "," + tail
	}

	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
	}
	return sign + "₹" + grouped + "." + frac
}
