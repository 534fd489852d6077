// Package riskprofile scores an investor risk questionnaire and maps the
// score to a profile tier with a recommended asset allocation.
package riskprofile

import (
	"fmt"
	"math"
)

const (
	MinOptionScore = 1
	MaxOptionScore = 5
)

// Option is one answer choice for a question.
type Option struct {
	Label string `yaml:"label" json:"label"`
	Score int    `yaml:"score" json:"score"`
}

// Question is a single quiz step. A zero Weight is treated as 1.
type Question struct {
	ID      string   `yaml:"id" json:"id"`
	Prompt  string   `yaml:"prompt" json:"prompt"`
	Options []Option `yaml:"options" json:"options"`
	Weight  float64  `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// EffectiveWeight returns the question's weight with the default applied.
func (q Question) EffectiveWeight() float64 {
	if q.Weight == 0 {
		return 1
	}
	return q.Weight
}

// Allocation is one slice of a recommended portfolio.
type Allocation struct {
	AssetClass string  `yaml:"asset_class" json:"assetClass"`
	Percent    float64 `yaml:"percent" json:"percent"`
}

// Tier is a profile classification. Scores up to and including MaxScore
// fall into the tier; a zero MaxScore on the last tier means unbounded.
type Tier struct {
	Name       string       `yaml:"name" json:"name"`
	MaxScore   int          `yaml:"max_score" json:"maxScore"`
	Allocation []Allocation `yaml:"allocation" json:"allocation"`
	Advice     string       `yaml:"advice" json:"advice"`
}

// Questionnaire is the full quiz policy: questions in order and tiers in
// ascending order of MaxScore.
type Questionnaire struct {
	Questions []Question `yaml:"questions" json:"questions"`
	Tiers     []Tier     `yaml:"tiers" json:"tiers"`
}

// Validate rejects malformed questionnaires. Errors here are configuration
// bugs rather than user mistakes.
func (q *Questionnaire) Validate() error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("questionnaire has no questions")
	}
	seen := make(map[string]bool, len(q.Questions))
	for i, question := range q.Questions {
		if question.ID == "" {
			return fmt.Errorf("question %d: id is required", i)
		}
		if seen[question.ID] {
			return fmt.Errorf("question %d: duplicate id %q", i, question.ID)
		}
		seen[question.ID] = true
		if question.Weight < 0 || math.IsNaN(question.Weight) || math.IsInf(question.Weight, 0) {
			return fmt.Errorf("question %q: weight must be positive, got %v", question.ID, question.Weight)
		}
		if len(question.Options) == 0 {
			return fmt.Errorf("question %q: at least one option is required", question.ID)
		}
		for j, opt := range question.Options {
			if opt.Score < MinOptionScore || opt.Score > MaxOptionScore {
				return fmt.Errorf("question %q option %d: score must be between %d and %d, got %d",
					question.ID, j, MinOptionScore, MaxOptionScore, opt.Score)
			}
		}
	}

	if len(q.Tiers) == 0 {
		return fmt.Errorf("questionnaire has no tiers")
	}
	for i, tier := range q.Tiers {
		if tier.Name == "" {
			return fmt.Errorf("tier %d: name is required", i)
		}
		last := i == len(q.Tiers)-1
		if !last {
			if tier.MaxScore <= 0 {
				return fmt.Errorf("tier %q: max score must be positive", tier.Name)
			}
			if i > 0 && tier.MaxScore <= q.Tiers[i-1].MaxScore {
				return fmt.Errorf("tier %q: max score %d must exceed %d", tier.Name, tier.MaxScore, q.Tiers[i-1].MaxScore)
			}
		}
		total := 0.0
		for _, a := range tier.Allocation {
			if a.Percent < 0 {
				return fmt.Errorf("tier %q: %s allocation is negative", tier.Name, a.AssetClass)
			}
			total += a.Percent
		}
		if math.Abs(total-100) > 1e-9 {
			return fmt.Errorf("tier %q: allocation sums to %v, want 100", tier.Name, total)
		}
	}
	return nil
}

// MustValidate panics if the questionnaire is malformed.
func (q *Questionnaire) MustValidate() *Questionnaire {
	if err := q.Validate(); err != nil {
		panic(fmt.Sprintf("risk questionnaire: %v", err))
	}
	return q
}

// Question returns the question with the given id.
func (q *Questionnaire) Question(id string) (Question, bool) {
	for _, question := range q.Questions {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}

// MaxScore is the highest normalized score the questionnaire can produce.
func (q *Questionnaire) MaxScore() int {
	return MaxOptionScore * len(q.Questions)
}

func options(labels ...string) []Option {
	opts := make([]Option, len(labels))
	for i, l := range labels {
		opts[i] = Option{Label: l, Score: i + 1}
	}
	return opts
}

// DefaultQuestionnaire returns the built-in seven question quiz.
func DefaultQuestionnaire() *Questionnaire {
	return &Questionnaire{
		Questions: []Question{
			{
				ID:     "age",
				Prompt: "What is your age?",
				Options: options(
					"Above 60",
					"50 to 60",
					"40 to 50",
					"30 to 40",
					"Below 30",
				),
			},
			{
				ID:     "horizon",
				Prompt: "How long do you plan to stay invested?",
				Weight: 1.25,
				Options: options(
					"Less than 1 year",
					"1 to 3 years",
					"3 to 5 years",
					"5 to 10 years",
					"More than 10 years",
				),
			},
			{
				ID:     "income",
				Prompt: "How stable is your income?",
				Options: options(
					"No regular income",
					"Irregular income",
					"Stable but may change",
					"Stable and growing slowly",
					"Stable and growing fast",
				),
			},
			{
				ID:     "reaction",
				Prompt: "Your portfolio falls 20% in a month. What do you do?",
				Weight: 1.5,
				Options: options(
					"Sell everything",
					"Sell some to limit losses",
					"Hold and wait",
					"Buy a little more",
					"Invest significantly more",
				),
			},
			{
				ID:     "experience",
				Prompt: "How much investing experience do you have?",
				Options: options(
					"None",
					"Bank deposits only",
					"Some mutual funds",
					"Equity funds and stocks",
					"Active in equities and derivatives",
				),
			},
			{
				ID:     "goal",
				Prompt: "What is your main investment goal?",
				Weight: 1.5,
				Options: options(
					"Protect my capital",
					"Earn regular income",
					"Balance income and growth",
					"Grow wealth steadily",
					"Maximise long-term growth",
				),
			},
			{
				ID:     "emergency",
				Prompt: "How many months of expenses do you hold as an emergency fund?",
				Options: options(
					"None",
					"Less than 3 months",
					"3 to 6 months",
					"6 to 12 months",
					"More than 12 months",
				),
			},
		},
		Tiers: []Tier{
			{
				Name:     "Conservative",
				MaxScore: 14,
				Allocation: []Allocation{
					{AssetClass: "Debt", Percent: 80},
					{AssetClass: "Equity", Percent: 10},
					{AssetClass: "Gold", Percent: 10},
				},
				Advice: "Prioritise capital protection with high-quality debt funds and deposits.",
			},
			{
				Name:     "Moderately Conservative",
				MaxScore: 19,
				Allocation: []Allocation{
					{AssetClass: "Debt", Percent: 65},
					{AssetClass: "Equity", Percent: 25},
					{AssetClass: "Gold", Percent: 10},
				},
				Advice: "Keep debt as the core and add a measured equity sleeve through hybrid funds.",
			},
			{
				Name:     "Moderate",
				MaxScore: 24,
				Allocation: []Allocation{
					{AssetClass: "Equity", Percent: 50},
					{AssetClass: "Debt", Percent: 40},
					{AssetClass: "Gold", Percent: 10},
				},
				Advice: "Balance growth and stability with a mix of large-cap equity and debt.",
			},
			{
				Name:     "Moderately Aggressive",
				MaxScore: 29,
				Allocation: []Allocation{
					{AssetClass: "Equity", Percent: 70},
					{AssetClass: "Debt", Percent: 25},
					{AssetClass: "Gold", Percent: 5},
				},
				Advice: "Lean on diversified equity for growth and keep debt for rebalancing.",
			},
			{
				Name: "Aggressive",
				Allocation: []Allocation{
					{AssetClass: "Equity", Percent: 85},
					{AssetClass: "Debt", Percent: 10},
					{AssetClass: "Gold", Percent: 5},
				},
				Advice: "Favour equity including mid and small caps and stay invested through volatility.",
			},
		},
	}
}
