package calculation

import (
	"math"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// Rates are annual nominal percentages (12 means 12% a year) unless the
// field name says otherwise.

// Tenure limits. Every calculator loops or allocates per period, so year and
// month counts are capped.
const (
	MaxYears  = 100
	MaxMonths = MaxYears * 12
	MaxAge    = 120
)

// SIPInput describes a fixed monthly investment.
type SIPInput struct {
	MonthlyAmount     float64 `json:"monthlyAmount" yaml:"monthly_amount"`
	AnnualRatePercent float64 `json:"annualRatePercent" yaml:"annual_rate_percent"`
	Years             int     `json:"years" yaml:"years"`
}

// StepUpSIPInput is a SIP whose monthly amount grows once a year.
type StepUpSIPInput struct {
	SIPInput      `yaml:",inline"`
	StepUpPercent float64 `json:"stepUpPercent" yaml:"step_up_percent"`
}

// GoalSIPInput describes a target corpus to reach by monthly investment.
type GoalSIPInput struct {
	TargetAmount      float64 `json:"targetAmount" yaml:"target_amount"`
	AnnualRatePercent float64 `json:"annualRatePercent" yaml:"annual_rate_percent"`
	Years             int     `json:"years" yaml:"years"`
}

// LumpsumInput is a one-time investment compounded annually.
type LumpsumInput struct {
	Principal         float64 `json:"principal" yaml:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent" yaml:"annual_rate_percent"`
	Years             int     `json:"years" yaml:"years"`
}

// FDInput is a fixed deposit. CompoundingPerYear defaults to quarterly.
type FDInput struct {
	Principal          float64 `json:"principal" yaml:"principal"`
	AnnualRatePercent  float64 `json:"annualRatePercent" yaml:"annual_rate_percent"`
	TenureMonths       int     `json:"tenureMonths" yaml:"tenure_months"`
	CompoundingPerYear int     `json:"compoundingPerYear" yaml:"compounding_per_year"`
}

// RDInput is a recurring deposit paid at the start of every month.
type RDInput struct {
	MonthlyDeposit    float64 `json:"monthlyDeposit" yaml:"monthly_deposit"`
	AnnualRatePercent float64 `json:"annualRatePercent" yaml:"annual_rate_percent"`
	TenureMonths      int     `json:"tenureMonths" yaml:"tenure_months"`
}

// LoanInput describes a fixed-rate amortizing loan. TenureMonths, when
// positive, overrides TenureYears.
type LoanInput struct {
	Principal         float64 `json:"principal" yaml:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent" yaml:"annual_rate_percent"`
	TenureYears       int     `json:"tenureYears" yaml:"tenure_years"`
	TenureMonths      int     `json:"tenureMonths,omitempty" yaml:"tenure_months"`
}

// SWPInput describes a fixed monthly withdrawal from a corpus.
type SWPInput struct {
	Corpus            float64 `json:"corpus" yaml:"corpus"`
	MonthlyWithdrawal float64 `json:"monthlyWithdrawal" yaml:"monthly_withdrawal"`
	AnnualRatePercent float64 `json:"annualRatePercent" yaml:"annual_rate_percent"`
}

// EducationGoalInput plans for a child's education expense.
type EducationGoalInput struct {
	CurrentCost           float64 `json:"currentCost" yaml:"current_cost"`
	YearsToGoal           int     `json:"yearsToGoal" yaml:"years_to_goal"`
	InflationPercent      float64 `json:"inflationPercent" yaml:"inflation_percent"`
	ExpectedReturnPercent float64 `json:"expectedReturnPercent" yaml:"expected_return_percent"`
	CurrentSavings        float64 `json:"currentSavings" yaml:"current_savings"`
}

// RetirementInput plans the corpus needed to fund retirement expenses.
type RetirementInput struct {
	CurrentAge                  int     `json:"currentAge" yaml:"current_age"`
	RetirementAge               int     `json:"retirementAge" yaml:"retirement_age"`
	LifeExpectancy              int     `json:"lifeExpectancy" yaml:"life_expectancy"`
	MonthlyExpenses             float64 `json:"monthlyExpenses" yaml:"monthly_expenses"`
	InflationPercent            float64 `json:"inflationPercent" yaml:"inflation_percent"`
	PreRetirementReturnPercent  float64 `json:"preRetirementReturnPercent" yaml:"pre_retirement_return_percent"`
	PostRetirementReturnPercent float64 `json:"postRetirementReturnPercent" yaml:"post_retirement_return_percent"`
	CurrentSavings              float64 `json:"currentSavings" yaml:"current_savings"`
}

// Validate checks the SIP input.
func (in SIPInput) Validate() error {
	if err := positive("monthlyAmount", in.MonthlyAmount); err != nil {
		return err
	}
	if err := rate("annualRatePercent", in.AnnualRatePercent); err != nil {
		return err
	}
	return tenure("years", in.Years, MaxYears)
}

// Validate checks the step-up SIP input.
func (in StepUpSIPInput) Validate() error {
	if err := in.SIPInput.Validate(); err != nil {
		return err
	}
	return rate("stepUpPercent", in.StepUpPercent)
}

// Validate checks the goal SIP input.
func (in GoalSIPInput) Validate() error {
	if err := positive("targetAmount", in.TargetAmount); err != nil {
		return err
	}
	if err := rate("annualRatePercent", in.AnnualRatePercent); err != nil {
		return err
	}
	return tenure("years", in.Years, MaxYears)
}

// Validate checks the lumpsum input.
func (in LumpsumInput) Validate() error {
	if err := positive("principal", in.Principal); err != nil {
		return err
	}
	if err := rate("annualRatePercent", in.AnnualRatePercent); err != nil {
		return err
	}
	return tenure("years", in.Years, MaxYears)
}

// Validate checks the fixed deposit input.
func (in FDInput) Validate() error {
	if err := positive("principal", in.Principal); err != nil {
		return err
	}
	if err := rate("annualRatePercent", in.AnnualRatePercent); err != nil {
		return err
	}
	if err := tenure("tenureMonths", in.TenureMonths, MaxMonths); err != nil {
		return err
	}
	switch in.CompoundingPerYear {
	case 0, 1, 2, 4, 12:
		return nil
	}
	return domain.InvalidInput("compoundingPerYear", "must be one of 1, 2, 4 or 12, got %d", in.CompoundingPerYear)
}

// Validate checks the recurring deposit input.
func (in RDInput) Validate() error {
	if err := positive("monthlyDeposit", in.MonthlyDeposit); err != nil {
		return err
	}
	if err := rate("annualRatePercent", in.AnnualRatePercent); err != nil {
		return err
	}
	return tenure("tenureMonths", in.TenureMonths, MaxMonths)
}

// Validate checks the loan input.
func (in LoanInput) Validate() error {
	if err := positive("principal", in.Principal); err != nil {
		return err
	}
	if err := rate("annualRatePercent", in.AnnualRatePercent); err != nil {
		return err
	}
	if in.TenureMonths > 0 {
		return tenure("tenureMonths", in.TenureMonths, MaxMonths)
	}
	return tenure("tenureYears", in.TenureYears, MaxYears)
}

// Months returns the loan tenure in months.
func (in LoanInput) Months() int {
	if in.TenureMonths > 0 {
		return in.TenureMonths
	}
	return in.TenureYears * 12
}

// Validate checks the SWP input.
func (in SWPInput) Validate() error {
	if err := positive("corpus", in.Corpus); err != nil {
		return err
	}
	if err := positive("monthlyWithdrawal", in.MonthlyWithdrawal); err != nil {
		return err
	}
	if math.IsNaN(in.AnnualRatePercent) || math.IsInf(in.AnnualRatePercent, 0) || in.AnnualRatePercent <= -1200 {
		return domain.InvalidInput("annualRatePercent", "must be a finite rate above -1200%%, got %v", in.AnnualRatePercent)
	}
	return nil
}

// Validate checks the education goal input.
func (in EducationGoalInput) Validate() error {
	if err := positive("currentCost", in.CurrentCost); err != nil {
		return err
	}
	if err := tenure("yearsToGoal", in.YearsToGoal, MaxYears); err != nil {
		return err
	}
	if err := rate("inflationPercent", in.InflationPercent); err != nil {
		return err
	}
	if err := rate("expectedReturnPercent", in.ExpectedReturnPercent); err != nil {
		return err
	}
	return nonNegative("currentSavings", in.CurrentSavings)
}

// Validate checks the retirement input.
func (in RetirementInput) Validate() error {
	if err := tenure("currentAge", in.CurrentAge, MaxAge); err != nil {
		return err
	}
	if in.RetirementAge <= in.CurrentAge {
		return domain.InvalidInput("retirementAge", "must be after current age %d, got %d", in.CurrentAge, in.RetirementAge)
	}
	if in.LifeExpectancy <= in.RetirementAge {
		return domain.InvalidInput("lifeExpectancy", "must be after retirement age %d, got %d", in.RetirementAge, in.LifeExpectancy)
	}
	if in.LifeExpectancy > MaxAge {
		return domain.InvalidInput("lifeExpectancy", "must be at most %d, got %d", MaxAge, in.LifeExpectancy)
	}
	if err := positive("monthlyExpenses", in.MonthlyExpenses); err != nil {
		return err
	}
	for _, r := range []struct {
		field string
		v     float64
	}{
		{"inflationPercent", in.InflationPercent},
		{"preRetirementReturnPercent", in.PreRetirementReturnPercent},
		{"postRetirementReturnPercent", in.PostRetirementReturnPercent},
	} {
		if err := rate(r.field, r.v); err != nil {
			return err
		}
	}
	return nonNegative("currentSavings", in.CurrentSavings)
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return domain.InvalidInput(field, "must be greater than zero, got %v", v)
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return domain.InvalidInput(field, "must not be negative, got %v", v)
	}
	return nil
}

// tenure accepts 1 through max.
func tenure(field string, v, max int) error {
	if v <= 0 {
		return domain.InvalidInput(field, "must be at least 1, got %d", v)
	}
	if v > max {
		return domain.InvalidInput(field, "must be at most %d, got %d", max, v)
	}
	return nil
}

// rate accepts 0 through 100 percent.
func rate(field string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 100 {
		return domain.InvalidInput(field, "must be between 0 and 100 percent, got %v", v)
	}
	return nil
}
