package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/fincalc/internal/output"
	"github.com/rgehrsitz/fincalc/internal/tax"
)

type taxFlags struct {
	gross      float64
	age        int
	section80C float64
	section80D float64
	nps        float64
	homeLoan   float64
	hra        float64
	other      float64
}

func (f taxFlags) input() tax.Input {
	return tax.Input{
		GrossIncome: decimal.NewFromFloat(f.gross),
		Age:         f.age,
		Deductions: tax.Deductions{
			Section80C:       decimal.NewFromFloat(f.section80C),
			Section80D:       decimal.NewFromFloat(f.section80D),
			Section80CCD1B:   decimal.NewFromFloat(f.nps),
			HomeLoanInterest: decimal.NewFromFloat(f.homeLoan),
			HRAExemption:     decimal.NewFromFloat(f.hra),
			Other:            decimal.NewFromFloat(f.other),
		},
	}
}

func taxCmd(a *app) *cobra.Command {
	var f taxFlags
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Compare income tax under the old and new regimes",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			calc, err := tax.NewCalculator(a.policy.Tax)
			if err != nil {
				return err
			}
			in := f.input()
			cmp, err := calc.Compare(in)
			a.metrics.Observe("tax", err)
			if err != nil {
				a.logger.Warnw("tax comparison rejected", "error", err)
				return err
			}
			a.logger.Debugw("tax compared",
				"recommended", cmp.Recommended,
				"old", cmp.Old.TotalTax.String(),
				"new", cmp.New.TotalTax.String(),
			)
			return a.render(cmd.OutOrStdout(), output.TaxReport(in, cmp))
		}),
	}
	cmd.Flags().Float64VarP(&f.gross, "income", "i", 0, "Gross annual income")
	cmd.Flags().IntVar(&f.age, "age", 30, "Age of the taxpayer")
	cmd.Flags().Float64Var(&f.section80C, "80c", 0, "Section 80C investments")
	cmd.Flags().Float64Var(&f.section80D, "80d", 0, "Section 80D health insurance premium")
	cmd.Flags().Float64Var(&f.nps, "nps", 0, "Section 80CCD(1B) NPS contribution")
	cmd.Flags().Float64Var(&f.homeLoan, "home-loan-interest", 0, "Home loan interest paid")
	cmd.Flags().Float64Var(&f.hra, "hra", 0, "HRA exemption")
	cmd.Flags().Float64Var(&f.other, "other-deductions", 0, "Other deductions")
	return cmd
}
