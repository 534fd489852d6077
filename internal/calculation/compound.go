package calculation

import (
	"math"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// FutureValueOfLumpsum compounds principal once per period for numPeriods.
func FutureValueOfLumpsum(principal, periodicRate float64, numPeriods int) (float64, error) {
	if err := checkAnnuityArgs("principal", principal, periodicRate, numPeriods); err != nil {
		return 0, err
	}
	return finite("futureValue", principal*math.Pow(1+periodicRate, float64(numPeriods)))
}

// FutureValueOfCompoundedPrincipal compounds principal at annualRate
// (a fraction) compoundingsPerYear times a year for years.
func FutureValueOfCompoundedPrincipal(principal, annualRate float64, compoundingsPerYear int, years float64) (float64, error) {
	if compoundingsPerYear <= 0 {
		return 0, domain.InvalidInput("compoundingsPerYear", "must be positive, got %d", compoundingsPerYear)
	}
	if years <= 0 || math.IsNaN(years) || math.IsInf(years, 0) {
		return 0, domain.InvalidInput("years", "must be positive, got %v", years)
	}
	if math.IsNaN(principal) || math.IsInf(principal, 0) || principal < 0 {
		return 0, domain.InvalidInput("principal", "must be a non-negative number, got %v", principal)
	}
	periodic := annualRate / float64(compoundingsPerYear)
	if math.IsNaN(periodic) || periodic <= -1 {
		return 0, domain.InvalidInput("annualRate", "must be greater than -100%% per period, got %v", annualRate)
	}
	return finite("futureValue", principal*math.Pow(1+periodic, float64(compoundingsPerYear)*years))
}

// DiscountLumpsum is the present value of an amount due after numPeriods.
func DiscountLumpsum(amount, periodicRate float64, numPeriods int) (float64, error) {
	growth, err := FutureValueOfLumpsum(1, periodicRate, numPeriods)
	if err != nil {
		return 0, err
	}
	if amount < 0 {
		return 0, domain.InvalidInput("amount", "must be non-negative, got %v", amount)
	}
	return finite("presentValue", amount/growth)
}
