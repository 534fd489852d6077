package calculation

import (
	"math"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// ANNUITY MATH
//
// All rates here are periodic fractions (0.01 for 1% per period), not
// percentages. Callers convert annual percentages with MonthlyRate.
// A periodic rate of exactly zero is a valid input and is special-cased;
// it is never treated as an error.

// MonthlyRate converts an annual nominal percentage into a monthly periodic rate.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 12 / 100
}

// FutureValueOfAnnuityDue is the value after numPeriods of a fixed payment
// made at the start of every period.
func FutureValueOfAnnuityDue(periodicAmount, periodicRate float64, numPeriods int) (float64, error) {
	if err := checkAnnuityArgs("periodicAmount", periodicAmount, periodicRate, numPeriods); err != nil {
		return 0, err
	}
	if periodicRate == 0 {
		return periodicAmount * float64(numPeriods), nil
	}
	growth := math.Pow(1+periodicRate, float64(numPeriods))
	return finite("futureValue", periodicAmount*((growth-1)/periodicRate)*(1+periodicRate))
}

// RequiredPaymentForFutureValue inverts FutureValueOfAnnuityDue: the
// start-of-period payment needed to reach targetFV after numPeriods.
func RequiredPaymentForFutureValue(targetFV, periodicRate float64, numPeriods int) (float64, error) {
	if err := checkAnnuityArgs("targetFV", targetFV, periodicRate, numPeriods); err != nil {
		return 0, err
	}
	if periodicRate == 0 {
		return targetFV / float64(numPeriods), nil
	}
	growth := math.Pow(1+periodicRate, float64(numPeriods))
	factor := ((growth - 1) / periodicRate) * (1 + periodicRate)
	if factor == 0 {
		return 0, domain.InvalidInput("periodicRate", "annuity factor collapsed to zero")
	}
	return finite("payment", targetFV/factor)
}

// PresentValueOfAnnuityDue is the amount needed today to fund numPeriods
// start-of-period payments while the remainder earns periodicRate.
func PresentValueOfAnnuityDue(periodicAmount, periodicRate float64, numPeriods int) (float64, error) {
	if err := checkAnnuityArgs("periodicAmount", periodicAmount, periodicRate, numPeriods); err != nil {
		return 0, err
	}
	if periodicRate == 0 {
		return periodicAmount * float64(numPeriods), nil
	}
	discount := math.Pow(1+periodicRate, -float64(numPeriods))
	return finite("presentValue", periodicAmount*((1-discount)/periodicRate)*(1+periodicRate))
}

func checkAnnuityArgs(amountField string, amount, rate float64, n int) error {
	if n <= 0 {
		return domain.InvalidInput("numPeriods", "must be positive, got %d", n)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return domain.InvalidInput(amountField, "must be a non-negative number, got %v", amount)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= -1 {
		return domain.InvalidInput("periodicRate", "must be greater than -100%%, got %v", rate)
	}
	return nil
}

// finite rejects NaN and Inf so they never leave the engine.
func finite(field string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domain.InvalidInput(field, "result is not a finite number")
	}
	return v, nil
}
