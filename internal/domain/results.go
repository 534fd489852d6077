package domain

import (
	"github.com/shopspring/decimal"

	fdecimal "github.com/rgehrsitz/fincalc/pkg/decimal"
)

// GrowthResult is the common output of the accumulation calculators.
// FutureValue always equals TotalInvested + TotalReturns.
type GrowthResult struct {
	TotalInvested decimal.Decimal `json:"totalInvested"`
	TotalReturns  decimal.Decimal `json:"totalReturns"`
	FutureValue   decimal.Decimal `json:"futureValue"`
}

// NewGrowthResult rounds invested and future value to paise and derives the
// returns by subtraction so the identity holds exactly.
func NewGrowthResult(invested, futureValue float64) GrowthResult {
	inv := fdecimal.Paise(invested)
	fv := fdecimal.Paise(futureValue)
	return GrowthResult{
		TotalInvested: inv,
		TotalReturns:  fv.Sub(inv),
		FutureValue:   fv,
	}
}

// StepUpYear is one row of the step-up SIP breakdown.
type StepUpYear struct {
	Year                int             `json:"year"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
	Invested            decimal.Decimal `json:"invested"`
	ValueAtMaturity     decimal.Decimal `json:"valueAtMaturity"`
}

// StepUpResult is the output of the step-up SIP calculator.
type StepUpResult struct {
	GrowthResult
	Years []StepUpYear `json:"years"`
}

// GoalSIPResult is the output of the goal-based SIP calculator.
type GoalSIPResult struct {
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	MonthlySIP    decimal.Decimal `json:"monthlySip"`
	LumpsumToday  decimal.Decimal `json:"lumpsumToday"`
	TotalInvested decimal.Decimal `json:"totalInvested"`
	TotalReturns  decimal.Decimal `json:"totalReturns"`
	Months        int             `json:"months"`
}

// AmortizationPeriod is a single month of a loan schedule.
type AmortizationPeriod struct {
	Month         int             `json:"month"`
	Principal     decimal.Decimal `json:"principal"`
	Interest      decimal.Decimal `json:"interest"`
	Payment       decimal.Decimal `json:"payment"`
	EndingBalance decimal.Decimal `json:"endingBalance"`
}

// AmortizationYear aggregates up to twelve months of a schedule.
type AmortizationYear struct {
	Year          int                  `json:"year"`
	Principal     decimal.Decimal      `json:"principal"`
	Interest      decimal.Decimal      `json:"interest"`
	Payment       decimal.Decimal      `json:"payment"`
	EndingBalance decimal.Decimal      `json:"endingBalance"`
	Months        []AmortizationPeriod `json:"months"`
}

// LoanSchedule is the output of the amortization engine.
type LoanSchedule struct {
	Principal      decimal.Decimal    `json:"principal"`
	MonthlyPayment decimal.Decimal    `json:"monthlyPayment"`
	TotalInterest  decimal.Decimal    `json:"totalInterest"`
	TotalPayment   decimal.Decimal    `json:"totalPayment"`
	Years          []AmortizationYear `json:"years"`
}

// Months flattens the yearly buckets into a single ordered slice.
func (s *LoanSchedule) Months() []AmortizationPeriod {
	var out []AmortizationPeriod
	for _, y := range s.Years {
		out = append(out, y.Months...)
	}
	return out
}

// DepletionResult is the output of the SWP solver. When SustainsForever is
// set the remaining fields are zero.
type DepletionResult struct {
	SustainsForever bool            `json:"sustainsForever"`
	Months          int             `json:"months,omitempty"`
	TotalWithdrawn  decimal.Decimal `json:"totalWithdrawn"`
	TotalInterest   decimal.Decimal `json:"totalInterest"`
	FinalBalance    decimal.Decimal `json:"finalBalance"`
}

// Years is the number of whole years the corpus lasts.
func (r DepletionResult) Years() int { return r.Months / 12 }

// RemainderMonths is the months left over after whole years.
func (r DepletionResult) RemainderMonths() int { return r.Months % 12 }

// EducationGoalResult is the output of the child-education planner.
type EducationGoalResult struct {
	FutureCost         decimal.Decimal `json:"futureCost"`
	SavingsFutureValue decimal.Decimal `json:"savingsFutureValue"`
	Shortfall          decimal.Decimal `json:"shortfall"`
	MonthlySIP         decimal.Decimal `json:"monthlySip"`
	LumpsumToday       decimal.Decimal `json:"lumpsumToday"`
	YearsToGoal        int             `json:"yearsToGoal"`
}

// RetirementResult is the output of the retirement corpus planner.
type RetirementResult struct {
	YearsToRetirement     int             `json:"yearsToRetirement"`
	YearsInRetirement     int             `json:"yearsInRetirement"`
	MonthlyExpenseAtStart decimal.Decimal `json:"monthlyExpenseAtStart"`
	CorpusRequired        decimal.Decimal `json:"corpusRequired"`
	SavingsFutureValue    decimal.Decimal `json:"savingsFutureValue"`
	Shortfall             decimal.Decimal `json:"shortfall"`
	MonthlySIP            decimal.Decimal `json:"monthlySip"`
}
