package tax

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// TAX POLICY ASSUMPTIONS:
//
// 1. Slabs follow the FY 2023-24 Indian income-tax schedule. They are
//    illustrative and not indexed to any later year.
// 2. Old regime slabs vary by age (below 60, 60-79, 80+); new regime slabs
//    do not.
// 3. The section 87A rebate is modelled as a cliff: at or below the regime
//    threshold the tax is zero, one rupee above it the full slab tax applies.
//    Marginal relief is not modelled.
// 4. Surcharge is a step function of taxable income applied to the slab tax.
//    The new regime caps the top step at 25%.
// 5. Health and education cess is 4% of slab tax plus surcharge.

// Regime identifies an income-tax regime.
type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// AgeGroup selects an age-banded slab table.
type AgeGroup string

const (
	AgeBelow60     AgeGroup = "below_60"
	AgeSenior      AgeGroup = "senior"
	AgeSuperSenior AgeGroup = "super_senior"

	// AgeAny marks a table that applies to every age group.
	AgeAny AgeGroup = "any"
)

// AgeGroupFor maps an age in years to its slab age group.
func AgeGroupFor(age int) AgeGroup {
	switch {
	case age >= 80:
		return AgeSuperSenior
	case age >= 60:
		return AgeSenior
	default:
		return AgeBelow60
	}
}

// RegimeKey is the tagged variant that resolves to exactly one slab table.
type RegimeKey struct {
	Regime   Regime
	AgeGroup AgeGroup
}

// Slab is one bracket of a progressive schedule. Income up to UpTo (and
// above the previous slab's UpTo) is taxed at Rate. A zero UpTo on the last
// slab means the bracket is unbounded.
type Slab struct {
	UpTo decimal.Decimal `yaml:"up_to" json:"upTo"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// SlabTable is an ordered progressive schedule.
type SlabTable []Slab

// SurchargeTier applies Rate to the slab tax when taxable income exceeds Above.
type SurchargeTier struct {
	Above decimal.Decimal `yaml:"above" json:"above"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// SurchargeRules is a list of tiers in ascending order of Above.
type SurchargeRules []SurchargeTier

// DeductionLimits caps the itemized deductions a regime accepts.
type DeductionLimits struct {
	Section80C       decimal.Decimal `yaml:"section_80c" json:"section80c"`
	Section80D       decimal.Decimal `yaml:"section_80d" json:"section80d"`
	Section80DSenior decimal.Decimal `yaml:"section_80d_senior" json:"section80dSenior"`
	Section80CCD1B   decimal.Decimal `yaml:"section_80ccd_1b" json:"section80ccd1b"`
	HomeLoanInterest decimal.Decimal `yaml:"home_loan_interest" json:"homeLoanInterest"`
}

// RegimePolicy holds everything needed to tax income under one regime.
type RegimePolicy struct {
	StandardDeduction  decimal.Decimal        `yaml:"standard_deduction" json:"standardDeduction"`
	RebateThreshold    decimal.Decimal        `yaml:"rebate_threshold" json:"rebateThreshold"`
	ItemizedDeductions bool                   `yaml:"itemized_deductions" json:"itemizedDeductions"`
	DeductionLimits    DeductionLimits        `yaml:"deduction_limits" json:"deductionLimits"`
	Surcharge          SurchargeRules         `yaml:"surcharge" json:"surcharge"`
	Slabs              map[AgeGroup]SlabTable `yaml:"slabs" json:"slabs"`
}

// Policy is the complete tax configuration for both regimes.
type Policy struct {
	CessRate decimal.Decimal         `yaml:"cess_rate" json:"cessRate"`
	Regimes  map[Regime]RegimePolicy `yaml:"regimes" json:"regimes"`
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func pct(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// DefaultPolicy returns the built-in FY 2023-24 policy.
func DefaultPolicy() *Policy {
	oldSurcharge := SurchargeRules{
		{Above: d(5000000), Rate: pct("0.10")},
		{Above: d(10000000), Rate: pct("0.15")},
		{Above: d(20000000), Rate: pct("0.25")},
		{Above: d(50000000), Rate: pct("0.37")},
	}
	newSurcharge := SurchargeRules{
		{Above: d(5000000), Rate: pct("0.10")},
		{Above: d(10000000), Rate: pct("0.15")},
		{Above: d(20000000), Rate: pct("0.25")},
		{Above: d(50000000), Rate: pct("0.25")},
	}

	return &Policy{
		CessRate: pct("0.04"),
		Regimes: map[Regime]RegimePolicy{
			RegimeOld: {
				StandardDeduction:  d(50000),
				RebateThreshold:    d(500000),
				ItemizedDeductions: true,
				DeductionLimits: DeductionLimits{
					Section80C:       d(150000),
					Section80D:       d(25000),
					Section80DSenior: d(50000),
					Section80CCD1B:   d(50000),
					HomeLoanInterest: d(200000),
				},
				Surcharge: oldSurcharge,
				Slabs: map[AgeGroup]SlabTable{
					AgeBelow60: {
						{UpTo: d(250000), Rate: decimal.Zero},
						{UpTo: d(500000), Rate: pct("0.05")},
						{UpTo: d(1000000), Rate: pct("0.20")},
						{Rate: pct("0.30")},
					},
					AgeSenior: {
						{UpTo: d(300000), Rate: decimal.Zero},
						{UpTo: d(500000), Rate: pct("0.05")},
						{UpTo: d(1000000), Rate: pct("0.20")},
						{Rate: pct("0.30")},
					},
					AgeSuperSenior: {
						{UpTo: d(500000), Rate: decimal.Zero},
						{UpTo: d(1000000), Rate: pct("0.20")},
						{Rate: pct("0.30")},
					},
				},
			},
			RegimeNew: {
				StandardDeduction: d(50000),
				RebateThreshold:   d(700000),
				Surcharge:         newSurcharge,
				Slabs: map[AgeGroup]SlabTable{
					AgeAny: {
						{UpTo: d(300000), Rate: decimal.Zero},
						{UpTo: d(600000), Rate: pct("0.05")},
						{UpTo: d(900000), Rate: pct("0.10")},
						{UpTo: d(1200000), Rate: pct("0.15")},
						{UpTo: d(1500000), Rate: pct("0.20")},
						{Rate: pct("0.30")},
					},
				},
			},
		},
	}
}

// Table resolves a regime key to its slab table, falling back to the
// regime's AgeAny table when there is no age-specific one.
func (p *Policy) Table(key RegimeKey) (SlabTable, error) {
	rp, ok := p.Regimes[key.Regime]
	if !ok {
		return nil, fmt.Errorf("unknown regime %q", key.Regime)
	}
	if t, ok := rp.Slabs[key.AgeGroup]; ok {
		return t, nil
	}
	if t, ok := rp.Slabs[AgeAny]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("regime %q has no slab table for age group %q", key.Regime, key.AgeGroup)
}

// Validate checks the structural rules every policy must satisfy. A failure
// here is a configuration bug, not a user-input problem.
func (p *Policy) Validate() error {
	if p.CessRate.IsNegative() || p.CessRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("cess rate must be in [0, 1), got %s", p.CessRate)
	}
	for _, r := range []Regime{RegimeOld, RegimeNew} {
		rp, ok := p.Regimes[r]
		if !ok {
			return fmt.Errorf("regime %q is missing", r)
		}
		if err := rp.validate(); err != nil {
			return fmt.Errorf("regime %q: %w", r, err)
		}
	}
	return nil
}

func (rp RegimePolicy) validate() error {
	if rp.StandardDeduction.IsNegative() {
		return fmt.Errorf("standard deduction must not be negative")
	}
	if rp.RebateThreshold.IsNegative() {
		return fmt.Errorf("rebate threshold must not be negative")
	}
	if len(rp.Slabs) == 0 {
		return fmt.Errorf("no slab tables")
	}
	groups := make([]string, 0, len(rp.Slabs))
	for g := range rp.Slabs {
		groups = append(groups, string(g))
	}
	sort.Strings(groups)
	for _, g := range groups {
		if err := rp.Slabs[AgeGroup(g)].Validate(); err != nil {
			return fmt.Errorf("slabs %s: %w", g, err)
		}
	}
	return rp.Surcharge.Validate()
}

// Validate checks bounds are strictly increasing, rates are in [0, 1] and
// only the last slab is unbounded.
func (t SlabTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("slab table is empty")
	}
	prev := decimal.Zero
	for i, s := range t {
		if s.Rate.IsNegative() || s.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("slab %d: rate must be in [0, 1], got %s", i, s.Rate)
		}
		last := i == len(t)-1
		if last {
			if !s.UpTo.IsZero() {
				return fmt.Errorf("slab %d: last slab must be unbounded", i)
			}
			break
		}
		if s.UpTo.LessThanOrEqual(prev) {
			return fmt.Errorf("slab %d: upper bound %s must exceed %s", i, s.UpTo, prev)
		}
		prev = s.UpTo
	}
	return nil
}

// Validate checks tiers are in strictly ascending order with sane rates.
func (r SurchargeRules) Validate() error {
	for i, tier := range r {
		if tier.Rate.IsNegative() || tier.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("surcharge tier %d: rate must be in [0, 1], got %s", i, tier.Rate)
		}
		if i > 0 && tier.Above.LessThanOrEqual(r[i-1].Above) {
			return fmt.Errorf("surcharge tier %d: threshold %s is not above %s", i, tier.Above, r[i-1].Above)
		}
	}
	return nil
}

// MustValidate panics if the policy is malformed.
func (p *Policy) MustValidate() *Policy {
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("tax policy: %v", err))
	}
	return p
}
