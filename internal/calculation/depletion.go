package calculation

import (
	"math"

	"github.com/rgehrsitz/fincalc/internal/domain"
	fdecimal "github.com/rgehrsitz/fincalc/pkg/decimal"
)

// maxSimulationMonths bounds SimulateDepletion; 100 years of withdrawals.
const maxSimulationMonths = MaxMonths

// SolveDepletion determines how long a corpus survives a fixed withdrawal
// taken at the end of every month while the balance earns the monthly rate.
//
// If the withdrawal never exceeds the interest earned the corpus lasts
// forever. Otherwise the number of completed months is the floor of
// ln(W/(W-C*i)) / ln(1+i) and the residual balance comes from the
// annuity-withdrawal formula.
func SolveDepletion(in SWPInput) (domain.DepletionResult, error) {
	if err := in.Validate(); err != nil {
		return domain.DepletionResult{}, err
	}
	c, w := in.Corpus, in.MonthlyWithdrawal
	i := MonthlyRate(in.AnnualRatePercent)

	if i > 0 && w <= c*i {
		return domain.DepletionResult{SustainsForever: true}, nil
	}

	var n, residual float64
	if i == 0 {
		n = math.Floor(c / w)
		residual = c - w*n
	} else {
		raw := math.Log(w/(w-c*i)) / math.Log(1+i)
		if math.IsNaN(raw) || math.IsInf(raw, 0) || raw <= 0 {
			return domain.DepletionResult{}, domain.Unsustainable("no finite withdrawal period for corpus %.2f at %.2f a month", c, w)
		}
		n = math.Floor(raw)
		growth := math.Pow(1+i, n)
		residual = c*growth - w*(growth-1)/i
	}
	if n < 1 {
		return domain.DepletionResult{}, domain.Unsustainable("corpus %.2f cannot fund a single withdrawal of %.2f", c, w)
	}
	residual = math.Max(0, residual)

	withdrawn := fdecimal.Paise(w * n)
	final := fdecimal.Paise(residual)
	corpus := fdecimal.Paise(c)
	return domain.DepletionResult{
		Months:         int(n),
		TotalWithdrawn: withdrawn,
		FinalBalance:   final,
		TotalInterest:  withdrawn.Add(final).Sub(corpus),
	}, nil
}

// SimulateDepletion walks the corpus month by month and counts the
// withdrawals it can fully pay. It reports ok=false when the corpus is still
// funded after maxSimulationMonths.
func SimulateDepletion(in SWPInput) (months int, ok bool) {
	balance := in.Corpus
	i := MonthlyRate(in.AnnualRatePercent)
	for months < maxSimulationMonths {
		next := balance*(1+i) - in.MonthlyWithdrawal
		if next < 0 {
			return months, true
		}
		balance = next
		months++
	}
	return months, false
}
