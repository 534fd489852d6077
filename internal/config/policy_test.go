package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/fincalc/internal/riskprofile"
	"github.com/rgehrsitz/fincalc/internal/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPolicyFromFile(t *testing.T) {
	p, err := NewPolicyParser().LoadFromFile(filepath.Join("testdata", "policy.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "75000", p.Tax.Regimes[tax.RegimeNew].StandardDeduction.String())
	require.Len(t, p.RiskProfile.Questions, 3)
	assert.Equal(t, 2.0, p.RiskProfile.Questions[0].Weight)

	calc, err := tax.NewCalculator(p.Tax)
	require.NoError(t, err)
	res, err := calc.Compute(tax.RegimeNew, tax.Input{GrossIncome: decimal.NewFromInt(1000000), Age: 40})
	require.NoError(t, err)
	assert.Equal(t, "925000", res.TaxableIncome.String())
	assert.Equal(t, "65000", res.TotalTax.String())

	quiz, err := riskprofile.NewQuiz(p.RiskProfile)
	require.NoError(t, err)
	require.NoError(t, quiz.Start())
	for _, q := range p.RiskProfile.Questions {
		require.NoError(t, quiz.Select(len(q.Options)-1))
		if quiz.Step() < len(p.RiskProfile.Questions)-1 {
			require.NoError(t, quiz.Next())
		}
	}
	result, err := quiz.Submit()
	require.NoError(t, err)
	assert.Equal(t, 14, result.NormalizedScore)
	assert.Equal(t, "Growth", result.Tier)
}

func TestLoadPolicyDefaults(t *testing.T) {
	pp := NewPolicyParser()

	p, err := pp.LoadFromFile("")
	require.NoError(t, err)
	assert.Equal(t, tax.DefaultPolicy(), p.Tax)
	assert.Equal(t, riskprofile.DefaultQuestionnaire(), p.RiskProfile)

	onlyCess, err := pp.Parse([]byte("risk_profile:\n"))
	require.NoError(t, err)
	assert.NotNil(t, onlyCess.Tax)
	assert.NotNil(t, onlyCess.RiskProfile)
}

func TestPolicyRoundTrip(t *testing.T) {
	pp := NewPolicyParser()
	out, err := pp.Marshal(DefaultPolicy())
	require.NoError(t, err)

	back, err := pp.Parse(out)
	require.NoError(t, err)

	calc, err := tax.NewCalculator(back.Tax)
	require.NoError(t, err)
	res, err := calc.Compute(tax.RegimeOld, tax.Input{GrossIncome: decimal.NewFromInt(1500000)})
	require.NoError(t, err)
	assert.Equal(t, "257400", res.TotalTax.String())
	assert.Len(t, back.RiskProfile.Questions, 7)
}

func TestLoadPolicyErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "tax: [unclosed",
			wantErr: "failed to parse YAML",
		},
		{
			name: "negative weight",
			content: `risk_profile:
  questions:
    - id: q1
      weight: -1
      options:
        - {label: a, score: 1}
  tiers:
    - name: All
      allocation:
        - {asset_class: Equity, percent: 100}
`,
			wantErr: "weight must be positive",
		},
		{
			name: "unordered slabs",
			content: `tax:
  cess_rate: "0.04"
  regimes:
    old:
      slabs:
        any:
          - {up_to: "500000", rate: "0"}
          - {up_to: "400000", rate: "0.1"}
          - {rate: "0.3"}
    new:
      slabs:
        any:
          - {rate: "0.1"}
`,
			wantErr: "must exceed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := NewPolicyParser().LoadFromFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := NewPolicyParser().LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read file")
}
