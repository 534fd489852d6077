package riskprofile

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// Answers maps a question id to the chosen option score.
type Answers map[string]int

// Result is an immutable profile classification.
type Result struct {
	Tier            string       `json:"tier"`
	NormalizedScore int          `json:"normalizedScore"`
	MaxScore        int          `json:"maxScore"`
	Advice          string       `json:"advice"`
	Allocation      []Allocation `json:"allocation"`
}

// Score computes round((sum of score*weight / sum of weight) * N). Every
// question must have an answer.
func (q *Questionnaire) Score(answers Answers) (int, error) {
	var weighted, weights float64
	var missing []string
	for _, question := range q.Questions {
		score, ok := answers[question.ID]
		if !ok {
			missing = append(missing, question.ID)
			continue
		}
		if score < MinOptionScore || score > MaxOptionScore {
			return 0, domain.InvalidInput(question.ID, "score must be between %d and %d, got %d", MinOptionScore, MaxOptionScore, score)
		}
		w := question.EffectiveWeight()
		weighted += float64(score) * w
		weights += w
	}
	if len(missing) > 0 {
		return 0, domain.NewReasonError(domain.ReasonIncompleteAnswers, "%d of %d questions unanswered: %v", len(missing), len(q.Questions), missing)
	}
	return int(math.Round(weighted / weights * float64(len(q.Questions)))), nil
}

// Classify returns the first tier whose MaxScore is at least score. The last
// tier catches everything above.
func (q *Questionnaire) Classify(score int) Tier {
	for i, tier := range q.Tiers {
		if i == len(q.Tiers)-1 || score <= tier.MaxScore {
			return tier
		}
	}
	return Tier{}
}

// Evaluate scores a complete answer set and classifies it.
func (q *Questionnaire) Evaluate(answers Answers) (Result, error) {
	score, err := q.Score(answers)
	if err != nil {
		return Result{}, err
	}
	tier := q.Classify(score)
	allocation := make([]Allocation, len(tier.Allocation))
	copy(allocation, tier.Allocation)
	return Result{
		Tier:            tier.Name,
		NormalizedScore: score,
		MaxScore:        q.MaxScore(),
		Advice:          tier.Advice,
		Allocation:      allocation,
	}, nil
}

func (r Result) String() string {
	return fmt.Sprintf("%s (%d/%d)", r.Tier, r.NormalizedScore, r.MaxScore)
}
