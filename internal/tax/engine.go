package tax

import (
	"fmt"

	"github.com/rgehrsitz/fincalc/internal/domain"
	fdecimal "github.com/rgehrsitz/fincalc/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ROUNDING: slab tax, surcharge and cess are carried unrounded through the
// pipeline and each is rounded to whole rupees once at the end. TotalTax is
// the sum of the three rounded parts.

// Deductions are the itemized amounts a taxpayer claims. Only the old regime
// honours them; each is capped by the regime's DeductionLimits.
type Deductions struct {
	Section80C       decimal.Decimal `yaml:"section_80c" json:"section80c"`
	Section80D       decimal.Decimal `yaml:"section_80d" json:"section80d"`
	Section80CCD1B   decimal.Decimal `yaml:"section_80ccd_1b" json:"section80ccd1b"`
	HomeLoanInterest decimal.Decimal `yaml:"home_loan_interest" json:"homeLoanInterest"`
	HRAExemption     decimal.Decimal `yaml:"hra_exemption" json:"hraExemption"`
	Other            decimal.Decimal `yaml:"other" json:"other"`
}

// Input is a taxpayer's gross income, age and claimed deductions.
type Input struct {
	GrossIncome decimal.Decimal `yaml:"gross_income" json:"grossIncome"`
	Age         int             `yaml:"age" json:"age"`
	Deductions  Deductions      `yaml:"deductions" json:"deductions"`
}

// Rules are the non-slab parts of a regime that ComputeTax needs.
type Rules struct {
	RebateThreshold decimal.Decimal
	Surcharge       SurchargeRules
	CessRate        decimal.Decimal
}

// Result is the tax owed under one regime.
type Result struct {
	Regime          Regime          `json:"regime"`
	GrossIncome     decimal.Decimal `json:"grossIncome"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	TaxableIncome   decimal.Decimal `json:"taxableIncome"`
	BaseTax         decimal.Decimal `json:"baseTax"`
	Rebate          decimal.Decimal `json:"rebate"`
	SurchargeRate   decimal.Decimal `json:"surchargeRate"`
	Surcharge       decimal.Decimal `json:"surcharge"`
	Cess            decimal.Decimal `json:"cess"`
	TotalTax        decimal.Decimal `json:"totalTax"`
}

// Comparison is the outcome of running both regimes on the same input.
type Comparison struct {
	Old         Result          `json:"old"`
	New         Result          `json:"new"`
	Recommended Regime          `json:"recommended"`
	Savings     decimal.Decimal `json:"savings"`
}

// Tax walks the slabs and returns the unrounded progressive tax on income.
func (t SlabTable) Tax(income decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	lower := decimal.Zero
	for _, s := range t {
		if income.LessThanOrEqual(lower) {
			break
		}
		upper := income
		if !s.UpTo.IsZero() {
			upper = decimal.Min(income, s.UpTo)
		}
		total = total.Add(upper.Sub(lower).Mul(s.Rate))
		if s.UpTo.IsZero() {
			break
		}
		lower = s.UpTo
	}
	return total
}

// MarginalRate returns the rate applied to the next rupee above income.
func (t SlabTable) MarginalRate(income decimal.Decimal) decimal.Decimal {
	for _, s := range t {
		if s.UpTo.IsZero() || income.LessThan(s.UpTo) {
			return s.Rate
		}
	}
	return decimal.Zero
}

// Rate returns the surcharge rate for the highest tier income exceeds.
func (r SurchargeRules) Rate(income decimal.Decimal) decimal.Decimal {
	rate := decimal.Zero
	for _, tier := range r {
		if income.GreaterThan(tier.Above) {
			rate = tier.Rate
		}
	}
	return rate
}

// ComputeTax taxes an already-reduced taxable income. totalDeductions is
// carried into the result for reporting only.
func ComputeTax(taxable decimal.Decimal, table SlabTable, rules Rules, totalDeductions decimal.Decimal) Result {
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	res := Result{
		GrossIncome:     taxable.Add(totalDeductions),
		TotalDeductions: totalDeductions,
		TaxableIncome:   taxable,
		BaseTax:         decimal.Zero,
		Rebate:          decimal.Zero,
		SurchargeRate:   decimal.Zero,
		Surcharge:       decimal.Zero,
		Cess:            decimal.Zero,
		TotalTax:        decimal.Zero,
	}

	base := table.Tax(taxable)
	if taxable.LessThanOrEqual(rules.RebateThreshold) {
		res.Rebate = fdecimal.Rupees(base)
		return res
	}

	res.SurchargeRate = rules.Surcharge.Rate(taxable)
	surcharge := base.Mul(res.SurchargeRate)
	cess := base.Add(surcharge).Mul(rules.CessRate)

	res.BaseTax = fdecimal.Rupees(base)
	res.Surcharge = fdecimal.Rupees(surcharge)
	res.Cess = fdecimal.Rupees(cess)
	res.TotalTax = res.BaseTax.Add(res.Surcharge).Add(res.Cess)
	return res
}

// Calculator applies a Policy to taxpayer inputs.
type Calculator struct {
	policy *Policy
}

// NewCalculator validates policy and returns a calculator for it.
func NewCalculator(policy *Policy) (*Calculator, error) {
	if policy == nil {
		policy = DefaultPolicy()
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tax policy: %w", err)
	}
	return &Calculator{policy: policy}, nil
}

// Policy returns the policy the calculator applies.
func (c *Calculator) Policy() *Policy { return c.policy }

// Deductions returns the total deduction regime r allows for in.
func (c *Calculator) Deductions(r Regime, in Input) (decimal.Decimal, error) {
	rp, ok := c.policy.Regimes[r]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown regime %q", r)
	}
	total := rp.StandardDeduction
	if !rp.ItemizedDeductions {
		return total, nil
	}

	lim := rp.DeductionLimits
	limit80D := lim.Section80D
	if in.Age >= 60 && !lim.Section80DSenior.IsZero() {
		limit80D = lim.Section80DSenior
	}
	ded := in.Deductions
	total = total.
		Add(capped(ded.Section80C, lim.Section80C)).
		Add(capped(ded.Section80D, limit80D)).
		Add(capped(ded.Section80CCD1B, lim.Section80CCD1B)).
		Add(capped(ded.HomeLoanInterest, lim.HomeLoanInterest)).
		Add(nonNegative(ded.HRAExemption)).
		Add(nonNegative(ded.Other))
	return total, nil
}

// capped limits v to [0, limit]; a zero limit means no cap.
func capped(v, limit decimal.Decimal) decimal.Decimal {
	v = nonNegative(v)
	if limit.IsZero() {
		return v
	}
	return decimal.Min(v, limit)
}

func nonNegative(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// Compute taxes in under regime r.
func (c *Calculator) Compute(r Regime, in Input) (Result, error) {
	if in.GrossIncome.IsNegative() {
		return Result{}, domain.InvalidInput("grossIncome", "must not be negative, got %s", in.GrossIncome)
	}
	if in.Age < 0 {
		return Result{}, domain.InvalidInput("age", "must not be negative, got %d", in.Age)
	}
	table, err := c.policy.Table(RegimeKey{Regime: r, AgeGroup: AgeGroupFor(in.Age)})
	if err != nil {
		return Result{}, err
	}
	deductions, err := c.Deductions(r, in)
	if err != nil {
		return Result{}, err
	}
	deductions = decimal.Min(deductions, in.GrossIncome)
	rp := c.policy.Regimes[r]

	res := ComputeTax(in.GrossIncome.Sub(deductions), table, Rules{
		RebateThreshold: rp.RebateThreshold,
		Surcharge:       rp.Surcharge,
		CessRate:        c.policy.CessRate,
	}, deductions)
	res.Regime = r
	return res, nil
}

// Compare runs both regimes and recommends the one with the lower total tax.
// Ties go to the new regime, which is the default when no choice is made.
func (c *Calculator) Compare(in Input) (Comparison, error) {
	oldRes, err := c.Compute(RegimeOld, in)
	if err != nil {
		return Comparison{}, fmt.Errorf("old regime: %w", err)
	}
	newRes, err := c.Compute(RegimeNew, in)
	if err != nil {
		return Comparison{}, fmt.Errorf("new regime: %w", err)
	}

	cmp := Comparison{Old: oldRes, New: newRes, Recommended: RegimeNew}
	if oldRes.TotalTax.LessThan(newRes.TotalTax) {
		cmp.Recommended = RegimeOld
	}
	cmp.Savings = oldRes.TotalTax.Sub(newRes.TotalTax).Abs()
	return cmp, nil
}
