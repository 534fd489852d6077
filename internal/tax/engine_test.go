package tax

import (
	"testing"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oldBelow60(t *testing.T) SlabTable {
	t.Helper()
	table, err := DefaultPolicy().Table(RegimeKey{Regime: RegimeOld, AgeGroup: AgeBelow60})
	require.NoError(t, err)
	return table
}

func oldRules() Rules {
	p := DefaultPolicy()
	rp := p.Regimes[RegimeOld]
	return Rules{RebateThreshold: rp.RebateThreshold, Surcharge: rp.Surcharge, CessRate: p.CessRate}
}

func TestSlabTableTax(t *testing.T) {
	table := oldBelow60(t)

	tests := []struct {
		income   int64
		expected string
	}{
		{0, "0"},
		{250000, "0"},
		{500000, "12500"},
		{1000000, "112500"},
		{1500000, "262500"},
	}
	for _, tt := range tests {
		got := table.Tax(d(tt.income))
		assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "income %d: got %s", tt.income, got)
	}
}

func TestSlabTableIsContinuous(t *testing.T) {
	table := oldBelow60(t)

	below := table.Tax(d(999999))
	at := table.Tax(d(1000000))
	above := table.Tax(d(1000001))

	assert.Equal(t, "0.2", at.Sub(below).String())
	assert.Equal(t, "0.3", above.Sub(at).String())

	rules := oldRules()
	r1 := ComputeTax(d(999999), table, rules, decimal.Zero)
	r2 := ComputeTax(d(1000000), table, rules, decimal.Zero)
	assert.True(t, r2.TotalTax.Sub(r1.TotalTax).Abs().LessThanOrEqual(decimal.NewFromInt(1)))
}

func TestSlabTableMarginalRate(t *testing.T) {
	table := oldBelow60(t)
	assert.Equal(t, "0", table.MarginalRate(d(100000)).String())
	assert.Equal(t, "0.2", table.MarginalRate(d(999999)).String())
	assert.Equal(t, "0.3", table.MarginalRate(d(1000000)).String())
}

func TestComputeTaxRebateCliff(t *testing.T) {
	table := oldBelow60(t)
	rules := oldRules()

	at := ComputeTax(d(500000), table, rules, decimal.Zero)
	assert.True(t, at.TotalTax.IsZero())
	assert.Equal(t, "12500", at.Rebate.String())

	over := ComputeTax(d(500001), table, rules, decimal.Zero)
	assert.Equal(t, "12500", over.BaseTax.String())
	assert.Equal(t, "500", over.Cess.String())
	assert.True(t, over.Surcharge.IsZero())
	assert.Equal(t, "13000", over.TotalTax.String())
	assert.True(t, over.Rebate.IsZero())
}

func TestComputeTaxSurcharge(t *testing.T) {
	table := oldBelow60(t)
	res := ComputeTax(d(6000000), table, oldRules(), decimal.Zero)

	assert.Equal(t, "1612500", res.BaseTax.String())
	assert.Equal(t, "0.1", res.SurchargeRate.String())
	assert.Equal(t, "161250", res.Surcharge.String())
	assert.Equal(t, "70950", res.Cess.String())
	assert.Equal(t, "1844700", res.TotalTax.String())
	assert.True(t, res.TotalTax.Equal(res.BaseTax.Add(res.Surcharge).Add(res.Cess)))
}

func TestSurchargeRulesRate(t *testing.T) {
	p := DefaultPolicy()
	oldRules := p.Regimes[RegimeOld].Surcharge
	newRules := p.Regimes[RegimeNew].Surcharge

	tests := []struct {
		income int64
		old    string
		new    string
	}{
		{5000000, "0", "0"},
		{5000001, "0.1", "0.1"},
		{10000001, "0.15", "0.15"},
		{20000001, "0.25", "0.25"},
		{50000001, "0.37", "0.25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.old, oldRules.Rate(d(tt.income)).String(), "old %d", tt.income)
		assert.Equal(t, tt.new, newRules.Rate(d(tt.income)).String(), "new %d", tt.income)
	}
}

func TestCalculatorNewRegimeRebate(t *testing.T) {
	calc, err := NewCalculator(nil)
	require.NoError(t, err)

	at, err := calc.Compute(RegimeNew, Input{GrossIncome: d(750000), Age: 35})
	require.NoError(t, err)
	assert.Equal(t, "700000", at.TaxableIncome.String())
	assert.True(t, at.TotalTax.IsZero())
	assert.Equal(t, "25000", at.Rebate.String())

	over, err := calc.Compute(RegimeNew, Input{GrossIncome: d(750001), Age: 35})
	require.NoError(t, err)
	assert.Equal(t, "26000", over.TotalTax.String())
}

func TestCalculatorDeductions(t *testing.T) {
	calc, err := NewCalculator(DefaultPolicy())
	require.NoError(t, err)

	in := Input{
		GrossIncome: d(1500000),
		Age:         40,
		Deductions: Deductions{
			Section80C:       d(300000),
			Section80D:       d(60000),
			Section80CCD1B:   d(50000),
			HomeLoanInterest: d(250000),
			HRAExemption:     d(120000),
		},
	}

	old, err := calc.Deductions(RegimeOld, in)
	require.NoError(t, err)
	// 50k standard + 150k + 25k + 50k + 200k + 120k uncapped HRA
	assert.Equal(t, "595000", old.String())

	newDed, err := calc.Deductions(RegimeNew, in)
	require.NoError(t, err)
	assert.Equal(t, "50000", newDed.String())

	in.Age = 65
	senior, err := calc.Deductions(RegimeOld, in)
	require.NoError(t, err)
	assert.Equal(t, "620000", senior.String())
}

func TestCalculatorDeductionsExceedIncome(t *testing.T) {
	calc, err := NewCalculator(nil)
	require.NoError(t, err)

	res, err := calc.Compute(RegimeOld, Input{GrossIncome: d(40000), Deductions: Deductions{Section80C: d(100000)}})
	require.NoError(t, err)
	assert.True(t, res.TaxableIncome.IsZero())
	assert.True(t, res.TotalTax.IsZero())
	assert.Equal(t, "40000", res.TotalDeductions.String())
}

func TestCalculatorInvalidInput(t *testing.T) {
	calc, err := NewCalculator(nil)
	require.NoError(t, err)

	_, err = calc.Compute(RegimeOld, Input{GrossIncome: d(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = calc.Compute(RegimeOld, Input{GrossIncome: d(100), Age: -3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = calc.Compare(Input{GrossIncome: d(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompare(t *testing.T) {
	calc, err := NewCalculator(nil)
	require.NoError(t, err)

	tests := []struct {
		name        string
		in          Input
		oldTotal    string
		newTotal    string
		recommended Regime
		savings     string
	}{
		{
			name: "heavy deductions favour old",
			in: Input{GrossIncome: d(1500000), Age: 30, Deductions: Deductions{
				Section80C:       d(150000),
				Section80D:       d(25000),
				Section80CCD1B:   d(50000),
				HomeLoanInterest: d(200000),
			}},
			oldTotal:    "124800",
			newTotal:    "145600",
			recommended: RegimeOld,
			savings:     "20800",
		},
		{
			name:        "no deductions favour new",
			in:          Input{GrossIncome: d(1500000), Age: 30},
			oldTotal:    "257400",
			newTotal:    "145600",
			recommended: RegimeNew,
			savings:     "111800",
		},
		{
			name:        "tie goes to new",
			in:          Input{GrossIncome: d(300000), Age: 30},
			oldTotal:    "0",
			newTotal:    "0",
			recommended: RegimeNew,
			savings:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, err := calc.Compare(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.oldTotal, cmp.Old.TotalTax.String())
			assert.Equal(t, tt.newTotal, cmp.New.TotalTax.String())
			assert.Equal(t, tt.recommended, cmp.Recommended)
			assert.Equal(t, tt.savings, cmp.Savings.String())
			assert.Equal(t, RegimeOld, cmp.Old.Regime)
			assert.Equal(t, RegimeNew, cmp.New.Regime)
		})
	}
}

func TestCompareIsIdempotent(t *testing.T) {
	calc, err := NewCalculator(nil)
	require.NoError(t, err)
	in := Input{GrossIncome: d(2750000), Age: 62, Deductions: Deductions{Section80C: d(150000)}}

	a, err := calc.Compare(in)
	require.NoError(t, err)
	b, err := calc.Compare(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
