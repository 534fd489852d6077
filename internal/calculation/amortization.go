package calculation

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/fincalc/internal/domain"
	fdecimal "github.com/rgehrsitz/fincalc/pkg/decimal"
	"github.com/shopspring/decimal"
)

// AMORTIZATION ROUNDING:
//
// Every posted cash flow (interest, principal, payment) is rounded to the
// paisa when it is posted, and all totals are exact decimal sums of posted
// amounts. The final month pays off whatever balance remains, so principal
// components always sum to the original principal and the last ending
// balance is exactly zero.

// EMI returns the fixed monthly installment for a loan.
func EMI(principal, annualRatePercent float64, months int) (float64, error) {
	if err := positive("principal", principal); err != nil {
		return 0, err
	}
	if err := rate("annualRatePercent", annualRatePercent); err != nil {
		return 0, err
	}
	if err := tenure("tenureMonths", months, MaxMonths); err != nil {
		return 0, err
	}
	r := MonthlyRate(annualRatePercent)
	if r == 0 {
		return principal / float64(months), nil
	}
	growth := math.Pow(1+r, float64(months))
	return finite("monthlyPayment", principal*r*growth/(growth-1))
}

// BuildSchedule computes the EMI and simulates the loan month by month,
// grouping months into years of up to twelve entries each.
func BuildSchedule(in LoanInput) (*domain.LoanSchedule, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	months := in.Months()
	emiValue, err := EMI(in.Principal, in.AnnualRatePercent, months)
	if err != nil {
		return nil, fmt.Errorf("emi: %w", err)
	}

	// At a zero rate, or when the installment is under half a paisa, rounding
	// to nearest would leave the final month carrying most of the principal.
	emi := fdecimal.Paise(emiValue)
	if in.AnnualRatePercent == 0 || emi.IsZero() {
		emi = fdecimal.PaiseUp(emiValue)
	}
	monthlyRate := decimal.NewFromFloat(MonthlyRate(in.AnnualRatePercent))
	balance := fdecimal.Paise(in.Principal)

	schedule := &domain.LoanSchedule{
		Principal:      balance,
		MonthlyPayment: emi,
	}

	var year *domain.AmortizationYear
	for m := 1; m <= months && balance.IsPositive(); m++ {
		interest := balance.Mul(monthlyRate).Round(2)
		principal := emi.Sub(interest)
		if principal.IsNegative() {
			return nil, domain.InvalidInput("annualRatePercent", "installment does not cover interest in month %d", m)
		}
		if m == months || principal.GreaterThanOrEqual(balance) {
			principal = balance
		}
		payment := principal.Add(interest)
		balance = balance.Sub(principal)

		period := domain.AmortizationPeriod{
			Month:         m,
			Principal:     principal,
			Interest:      interest,
			Payment:       payment,
			EndingBalance: balance,
		}

		if year == nil || len(year.Months) == 12 {
			schedule.Years = append(schedule.Years, domain.AmortizationYear{Year: (m-1)/12 + 1})
			year = &schedule.Years[len(schedule.Years)-1]
		}
		year.Principal = year.Principal.Add(principal)
		year.Interest = year.Interest.Add(interest)
		year.Payment = year.Payment.Add(payment)
		year.EndingBalance = balance
		year.Months = append(year.Months, period)

		schedule.TotalInterest = schedule.TotalInterest.Add(interest)
		schedule.TotalPayment = schedule.TotalPayment.Add(payment)
	}

	return schedule, nil
}
