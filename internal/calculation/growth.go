package calculation

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/fincalc/internal/domain"
	fdecimal "github.com/rgehrsitz/fincalc/pkg/decimal"
)

// DefaultFDCompounding is quarterly, the usual bank convention.
const DefaultFDCompounding = 4

// SIP computes the maturity value of a monthly SIP. Contributions are made
// at the start of each month.
func SIP(in SIPInput) (domain.GrowthResult, error) {
	if err := in.Validate(); err != nil {
		return domain.GrowthResult{}, err
	}
	months := in.Years * 12
	fv, err := FutureValueOfAnnuityDue(in.MonthlyAmount, MonthlyRate(in.AnnualRatePercent), months)
	if err != nil {
		return domain.GrowthResult{}, fmt.Errorf("sip: %w", err)
	}
	return domain.NewGrowthResult(in.MonthlyAmount*float64(months), fv), nil
}

// Lumpsum compounds a one-time investment annually.
func Lumpsum(in LumpsumInput) (domain.GrowthResult, error) {
	if err := in.Validate(); err != nil {
		return domain.GrowthResult{}, err
	}
	fv, err := FutureValueOfLumpsum(in.Principal, in.AnnualRatePercent/100, in.Years)
	if err != nil {
		return domain.GrowthResult{}, fmt.Errorf("lumpsum: %w", err)
	}
	return domain.NewGrowthResult(in.Principal, fv), nil
}

// StepUpSIP computes a SIP whose monthly amount rises by StepUpPercent at the
// start of every year. Each year's twelve contributions are valued as an
// annuity due at the monthly rate, then compounded at the annual rate for
// the years left to maturity. Geometric contributions compounded monthly then
// annually have no closed form, so this stays a loop.
func StepUpSIP(in StepUpSIPInput) (domain.StepUpResult, error) {
	if err := in.Validate(); err != nil {
		return domain.StepUpResult{}, err
	}
	monthly := MonthlyRate(in.AnnualRatePercent)
	annual := in.AnnualRatePercent / 100
	step := in.StepUpPercent / 100

	var invested, total float64
	years := make([]domain.StepUpYear, 0, in.Years)
	for y := 1; y <= in.Years; y++ {
		contribution := in.MonthlyAmount * math.Pow(1+step, float64(y-1))
		yearEnd, err := FutureValueOfAnnuityDue(contribution, monthly, 12)
		if err != nil {
			return domain.StepUpResult{}, fmt.Errorf("step-up sip year %d: %w", y, err)
		}
		atMaturity := yearEnd * math.Pow(1+annual, float64(in.Years-y))
		if math.IsInf(atMaturity, 0) || math.IsNaN(atMaturity) {
			return domain.StepUpResult{}, domain.InvalidInput("years", "value overflows at year %d", y)
		}
		invested += contribution * 12
		total += atMaturity
		years = append(years, domain.StepUpYear{
			Year:                y,
			MonthlyContribution: fdecimal.Paise(contribution),
			Invested:            fdecimal.Paise(contribution * 12),
			ValueAtMaturity:     fdecimal.Paise(atMaturity),
		})
	}

	return domain.StepUpResult{
		GrowthResult: domain.NewGrowthResult(invested, total),
		Years:        years,
	}, nil
}

// GoalSIP finds the monthly SIP needed to reach a target amount, plus the
// equivalent one-time investment today.
func GoalSIP(in GoalSIPInput) (domain.GoalSIPResult, error) {
	if err := in.Validate(); err != nil {
		return domain.GoalSIPResult{}, err
	}
	months := in.Years * 12
	r := MonthlyRate(in.AnnualRatePercent)
	payment, err := RequiredPaymentForFutureValue(in.TargetAmount, r, months)
	if err != nil {
		return domain.GoalSIPResult{}, fmt.Errorf("goal sip: %w", err)
	}
	today, err := DiscountLumpsum(in.TargetAmount, r, months)
	if err != nil {
		return domain.GoalSIPResult{}, fmt.Errorf("goal sip: %w", err)
	}

	target := fdecimal.Paise(in.TargetAmount)
	invested := fdecimal.Paise(payment * float64(months))
	return domain.GoalSIPResult{
		TargetAmount:  target,
		MonthlySIP:    fdecimal.Paise(payment),
		LumpsumToday:  fdecimal.Paise(today),
		TotalInvested: invested,
		TotalReturns:  target.Sub(invested),
		Months:        months,
	}, nil
}

// FixedDeposit compounds a deposit CompoundingPerYear times a year.
func FixedDeposit(in FDInput) (domain.GrowthResult, error) {
	if err := in.Validate(); err != nil {
		return domain.GrowthResult{}, err
	}
	freq := in.CompoundingPerYear
	if freq == 0 {
		freq = DefaultFDCompounding
	}
	fv, err := FutureValueOfCompoundedPrincipal(in.Principal, in.AnnualRatePercent/100, freq, float64(in.TenureMonths)/12)
	if err != nil {
		return domain.GrowthResult{}, fmt.Errorf("fixed deposit: %w", err)
	}
	return domain.NewGrowthResult(in.Principal, fv), nil
}

// RecurringDeposit values monthly deposits made at the start of each month.
func RecurringDeposit(in RDInput) (domain.GrowthResult, error) {
	if err := in.Validate(); err != nil {
		return domain.GrowthResult{}, err
	}
	fv, err := FutureValueOfAnnuityDue(in.MonthlyDeposit, MonthlyRate(in.AnnualRatePercent), in.TenureMonths)
	if err != nil {
		return domain.GrowthResult{}, fmt.Errorf("recurring deposit: %w", err)
	}
	return domain.NewGrowthResult(in.MonthlyDeposit*float64(in.TenureMonths), fv), nil
}
