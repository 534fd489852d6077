package calculation

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/fincalc/internal/domain"
	fdecimal "github.com/rgehrsitz/fincalc/pkg/decimal"
)

// EducationGoal inflates today's education cost to the year it is needed,
// credits the growth of existing savings, and sizes the monthly SIP and
// one-time investment that cover the shortfall.
func EducationGoal(in EducationGoalInput) (domain.EducationGoalResult, error) {
	if err := in.Validate(); err != nil {
		return domain.EducationGoalResult{}, err
	}
	annualReturn := in.ExpectedReturnPercent / 100

	futureCost, err := FutureValueOfLumpsum(in.CurrentCost, in.InflationPercent/100, in.YearsToGoal)
	if err != nil {
		return domain.EducationGoalResult{}, fmt.Errorf("education goal: %w", err)
	}
	savings, err := FutureValueOfLumpsum(in.CurrentSavings, annualReturn, in.YearsToGoal)
	if err != nil {
		return domain.EducationGoalResult{}, fmt.Errorf("education goal: %w", err)
	}

	shortfall := math.Max(0, futureCost-savings)
	sip, err := RequiredPaymentForFutureValue(shortfall, MonthlyRate(in.ExpectedReturnPercent), in.YearsToGoal*12)
	if err != nil {
		return domain.EducationGoalResult{}, fmt.Errorf("education goal: %w", err)
	}
	today, err := DiscountLumpsum(shortfall, annualReturn, in.YearsToGoal)
	if err != nil {
		return domain.EducationGoalResult{}, fmt.Errorf("education goal: %w", err)
	}

	return domain.EducationGoalResult{
		FutureCost:         fdecimal.Paise(futureCost),
		SavingsFutureValue: fdecimal.Paise(savings),
		Shortfall:          fdecimal.Paise(shortfall),
		MonthlySIP:         fdecimal.Paise(sip),
		LumpsumToday:       fdecimal.Paise(today),
		YearsToGoal:        in.YearsToGoal,
	}, nil
}

// Retirement sizes the corpus needed at retirement to pay inflation-linked
// expenses until life expectancy, and the monthly SIP that builds it.
//
// Expenses are drawn at the start of each retirement year and grow with
// inflation, so the corpus is an annuity-due present value at the real rate
// (1+post)/(1+inflation)-1.
func Retirement(in RetirementInput) (domain.RetirementResult, error) {
	if err := in.Validate(); err != nil {
		return domain.RetirementResult{}, err
	}
	yearsTo := in.RetirementAge - in.CurrentAge
	yearsIn := in.LifeExpectancy - in.RetirementAge
	inflation := in.InflationPercent / 100

	monthlyAtStart, err := FutureValueOfLumpsum(in.MonthlyExpenses, inflation, yearsTo)
	if err != nil {
		return domain.RetirementResult{}, fmt.Errorf("retirement: %w", err)
	}

	realRate := (1+in.PostRetirementReturnPercent/100)/(1+inflation) - 1
	if math.Abs(realRate) < 1e-12 {
		realRate = 0
	}
	corpus, err := PresentValueOfAnnuityDue(monthlyAtStart*12, realRate, yearsIn)
	if err != nil {
		return domain.RetirementResult{}, fmt.Errorf("retirement: %w", err)
	}

	savings, err := FutureValueOfLumpsum(in.CurrentSavings, in.PreRetirementReturnPercent/100, yearsTo)
	if err != nil {
		return domain.RetirementResult{}, fmt.Errorf("retirement: %w", err)
	}
	shortfall := math.Max(0, corpus-savings)
	sip, err := RequiredPaymentForFutureValue(shortfall, MonthlyRate(in.PreRetirementReturnPercent), yearsTo*12)
	if err != nil {
		return domain.RetirementResult{}, fmt.Errorf("retirement: %w", err)
	}

	return domain.RetirementResult{
		YearsToRetirement:     yearsTo,
		YearsInRetirement:     yearsIn,
		MonthlyExpenseAtStart: fdecimal.Paise(monthlyAtStart),
		CorpusRequired:        fdecimal.Paise(corpus),
		SavingsFutureValue:    fdecimal.Paise(savings),
		Shortfall:             fdecimal.Paise(shortfall),
		MonthlySIP:            fdecimal.Paise(sip),
	}, nil
}
