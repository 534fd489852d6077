package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicyIsValid(t *testing.T) {
	assert.NoError(t, DefaultPolicy().Validate())
	assert.NotPanics(t, func() { DefaultPolicy().MustValidate() })
}

func TestAgeGroupFor(t *testing.T) {
	assert.Equal(t, AgeBelow60, AgeGroupFor(0))
	assert.Equal(t, AgeBelow60, AgeGroupFor(59))
	assert.Equal(t, AgeSenior, AgeGroupFor(60))
	assert.Equal(t, AgeSenior, AgeGroupFor(79))
	assert.Equal(t, AgeSuperSenior, AgeGroupFor(80))
}

func TestPolicyTable(t *testing.T) {
	p := DefaultPolicy()

	superSenior, err := p.Table(RegimeKey{Regime: RegimeOld, AgeGroup: AgeSuperSenior})
	require.NoError(t, err)
	assert.True(t, superSenior.Tax(d(500000)).IsZero())

	// The new regime has one table for every age.
	senior, err := p.Table(RegimeKey{Regime: RegimeNew, AgeGroup: AgeSenior})
	require.NoError(t, err)
	anyAge, err := p.Table(RegimeKey{Regime: RegimeNew, AgeGroup: AgeAny})
	require.NoError(t, err)
	assert.Equal(t, anyAge, senior)

	_, err = p.Table(RegimeKey{Regime: "flat", AgeGroup: AgeAny})
	assert.Error(t, err)

	delete(p.Regimes[RegimeOld].Slabs, AgeSenior)
	_, err = p.Table(RegimeKey{Regime: RegimeOld, AgeGroup: AgeSenior})
	assert.ErrorContains(t, err, "no slab table")
}

func TestPolicyValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Policy)
		wantErr string
	}{
		{
			name:    "cess rate out of range",
			mutate:  func(p *Policy) { p.CessRate = decimal.NewFromInt(1) },
			wantErr: "cess rate",
		},
		{
			name:    "missing regime",
			mutate:  func(p *Policy) { delete(p.Regimes, RegimeNew) },
			wantErr: `regime "new" is missing`,
		},
		{
			name: "bounds not increasing",
			mutate: func(p *Policy) {
				p.Regimes[RegimeOld].Slabs[AgeBelow60][2].UpTo = d(400000)
			},
			wantErr: "must exceed",
		},
		{
			name: "last slab bounded",
			mutate: func(p *Policy) {
				p.Regimes[RegimeNew].Slabs[AgeAny] = SlabTable{{UpTo: d(300000), Rate: decimal.Zero}}
			},
			wantErr: "unbounded",
		},
		{
			name: "rate above one",
			mutate: func(p *Policy) {
				p.Regimes[RegimeOld].Slabs[AgeSenior][1].Rate = decimal.NewFromInt(2)
			},
			wantErr: "rate must be in",
		},
		{
			name: "surcharge out of order",
			mutate: func(p *Policy) {
				rp := p.Regimes[RegimeOld]
				rp.Surcharge = SurchargeRules{{Above: d(100), Rate: pct("0.1")}, {Above: d(50), Rate: pct("0.2")}}
				p.Regimes[RegimeOld] = rp
			},
			wantErr: "not above",
		},
		{
			name: "empty slab table",
			mutate: func(p *Policy) {
				p.Regimes[RegimeNew].Slabs[AgeAny] = SlabTable{}
			},
			wantErr: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPolicy()
			tt.mutate(p)
			err := p.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Panics(t, func() { p.MustValidate() })

			_, err = NewCalculator(p)
			assert.ErrorContains(t, err, "invalid tax policy")
		})
	}
}
