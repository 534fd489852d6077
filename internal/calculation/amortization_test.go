package calculation

import (
	"testing"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildScheduleZeroRate(t *testing.T) {
	s, err := BuildSchedule(LoanInput{Principal: 1200000, AnnualRatePercent: 0, TenureYears: 10})
	require.NoError(t, err)

	assert.Equal(t, "10000", s.MonthlyPayment.String())
	assert.True(t, s.TotalInterest.IsZero())
	assert.Equal(t, "1200000", s.TotalPayment.String())
	require.Len(t, s.Years, 10)
	for _, y := range s.Years {
		assert.Len(t, y.Months, 12)
		assert.Equal(t, "120000", y.Principal.String())
		for _, m := range y.Months {
			assert.True(t, m.Interest.IsZero())
		}
	}
}

func TestBuildScheduleTinyZeroRateLoan(t *testing.T) {
	s, err := BuildSchedule(LoanInput{Principal: 1, AnnualRatePercent: 0, TenureYears: 30})
	require.NoError(t, err)

	assert.Equal(t, "0.01", s.MonthlyPayment.StringFixed(2))
	months := s.Months()
	require.Len(t, months, 100)
	assert.Equal(t, "0.01", months[0].Payment.StringFixed(2))
	assert.Equal(t, "0.01", months[len(months)-1].Payment.StringFixed(2))
	assert.True(t, months[len(months)-1].EndingBalance.IsZero())
	assert.Equal(t, "1", s.TotalPayment.String())
}

func TestBuildScheduleAtTenureCap(t *testing.T) {
	s, err := BuildSchedule(LoanInput{Principal: 1200000, AnnualRatePercent: 0, TenureYears: MaxYears})
	require.NoError(t, err)
	assert.Len(t, s.Years, MaxYears)
	assert.Len(t, s.Months(), MaxMonths)
}

func TestEMIRejectsTenureAboveCap(t *testing.T) {
	_, err := EMI(100000, 9, MaxMonths+1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildScheduleInvariants(t *testing.T) {
	loans := []LoanInput{
		{Principal: 500000, AnnualRatePercent: 9, TenureYears: 5},
		{Principal: 2500000, AnnualRatePercent: 8.75, TenureYears: 20},
		{Principal: 333333.33, AnnualRatePercent: 13.4, TenureYears: 3},
		{Principal: 99999, AnnualRatePercent: 0, TenureYears: 7},
		{Principal: 1500000, AnnualRatePercent: 10.5, TenureMonths: 18},
	}

	for _, loan := range loans {
		s, err := BuildSchedule(loan)
		require.NoError(t, err)

		months := s.Months()
		require.NotEmpty(t, months)

		principalSum := decimal.Zero
		prev := s.Principal
		for _, m := range months {
			principalSum = principalSum.Add(m.Principal)
			assert.True(t, m.EndingBalance.LessThanOrEqual(prev), "balance rose in month %d", m.Month)
			assert.False(t, m.EndingBalance.IsNegative())
			assert.True(t, m.Payment.Equal(m.Principal.Add(m.Interest)))
			prev = m.EndingBalance
		}

		assert.True(t, principalSum.Equal(s.Principal), "principal sum %s != %s", principalSum, s.Principal)
		assert.True(t, months[len(months)-1].EndingBalance.IsZero())
		assert.True(t, s.TotalPayment.Equal(s.Principal.Add(s.TotalInterest)))
		assert.Equal(t, loan.Months(), len(months))
	}
}

func TestBuildScheduleKnownEMI(t *testing.T) {
	s, err := BuildSchedule(LoanInput{Principal: 500000, AnnualRatePercent: 9, TenureYears: 5})
	require.NoError(t, err)
	assert.Equal(t, "10379.18", s.MonthlyPayment.StringFixed(2))

	first := s.Years[0].Months[0]
	assert.Equal(t, "3750", first.Interest.String())
	assert.Equal(t, "6629.18", first.Principal.String())
}

func TestBuildSchedulePartialFinalYear(t *testing.T) {
	s, err := BuildSchedule(LoanInput{Principal: 1500000, AnnualRatePercent: 10.5, TenureMonths: 18})
	require.NoError(t, err)

	require.Len(t, s.Years, 2)
	assert.Len(t, s.Years[0].Months, 12)
	assert.Len(t, s.Years[1].Months, 6)
	assert.Equal(t, 2, s.Years[1].Year)
	assert.True(t, s.Years[1].EndingBalance.IsZero())
	assert.Equal(t, 13, s.Years[1].Months[0].Month)
}

func TestBuildScheduleInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   LoanInput
	}{
		{"zero principal", LoanInput{Principal: 0, AnnualRatePercent: 9, TenureYears: 5}},
		{"negative principal", LoanInput{Principal: -10, AnnualRatePercent: 9, TenureYears: 5}},
		{"negative rate", LoanInput{Principal: 100000, AnnualRatePercent: -0.5, TenureYears: 5}},
		{"zero tenure", LoanInput{Principal: 100000, AnnualRatePercent: 9}},
		{"tenure years above cap", LoanInput{Principal: 100000, AnnualRatePercent: 0, TenureYears: 100000}},
		{"tenure months above cap", LoanInput{Principal: 100000, AnnualRatePercent: 9, TenureMonths: MaxMonths + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := BuildSchedule(tt.in)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
