package main

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/fincalc/internal/config"
	"github.com/rgehrsitz/fincalc/internal/output"
	"github.com/rgehrsitz/fincalc/internal/riskprofile"
	"github.com/rgehrsitz/fincalc/internal/tui"
)

func quizCmd(a *app) *cobra.Command {
	var answers map[string]int
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take the risk-profile quiz",
		Long: "Take the risk-profile quiz interactively, or score a set of answers with " +
			"--answers id=score,... (run `fincalc policy` to see question ids and scores).",
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			quiz, err := riskprofile.NewQuiz(a.policy.RiskProfile)
			if err != nil {
				return err
			}

			var res riskprofile.Result
			if len(answers) > 0 {
				res, err = a.scoreAnswers(quiz, answers)
				if err != nil {
					return err
				}
				a.recordProfile(res)
			} else {
				var ok bool
				res, ok, err = a.runQuizTUI(quiz)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}
			return a.render(cmd.OutOrStdout(), output.RiskReport(res))
		}),
	}
	cmd.Flags().StringToIntVar(&answers, "answers", nil, "Answers as question-id=score pairs")
	return cmd
}

// scoreAnswers drives the quiz non-interactively in question order.
func (a *app) scoreAnswers(quiz *riskprofile.Quiz, answers map[string]int) (riskprofile.Result, error) {
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if err := quiz.Start(); err != nil {
		return riskprofile.Result{}, err
	}
	for _, id := range ids {
		if err := quiz.Answer(id, answers[id]); err != nil {
			return riskprofile.Result{}, fmt.Errorf("answer %s: %w", id, err)
		}
	}
	return quiz.Submit()
}

func (a *app) recordProfile(res riskprofile.Result) {
	a.metrics.ObserveRiskProfile(res.Tier)
	a.logger.Infow("risk profile completed", "tier", res.Tier, "score", res.NormalizedScore)
}

// runQuizTUI reports ok=false when the user quits before finishing.
func (a *app) runQuizTUI(quiz *riskprofile.Quiz) (riskprofile.Result, bool, error) {
	model := tui.NewModel(quiz).WithResultHook(a.recordProfile)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return riskprofile.Result{}, false, fmt.Errorf("error running quiz: %w", err)
	}
	m, ok := final.(tui.Model)
	if !ok {
		return riskprofile.Result{}, false, nil
	}
	res, ok := m.LastResult()
	return res, ok, nil
}

func policyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Print the tax and risk-profile policy in effect as YAML",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			data, err := config.NewPolicyParser().Marshal(a.policy)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}),
	}
}
