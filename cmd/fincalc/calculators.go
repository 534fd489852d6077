package main

import (
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/output"
)

func sipCmd(a *app) *cobra.Command {
	var in calculation.SIPInput
	cmd := &cobra.Command{
		Use:   "sip",
		Short: "Future value of a monthly SIP",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			res, err := a.engine.SIP(in)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.GrowthReport("sip", "SIP", in, res))
		}),
	}
	cmd.Flags().Float64VarP(&in.MonthlyAmount, "amount", "a", 0, "Monthly investment")
	cmd.Flags().Float64VarP(&in.AnnualRatePercent, "rate", "r", 12, "Expected annual return (%)")
	cmd.Flags().IntVarP(&in.Years, "years", "y", 10, "Investment period in years")
	return cmd
}

func lumpsumCmd(a *app) *cobra.Command {
	var in calculation.LumpsumInput
	cmd := &cobra.Command{
		Use:   "lumpsum",
		Short: "Future value of a one-time investment",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			res, err := a.engine.Lumpsum(in)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.GrowthReport("lumpsum", "Lumpsum", in, res))
		}),
	}
	cmd.Flags().Float64VarP(&in.Principal, "principal", "p", 0, "Amount invested today")
	cmd.Flags().Float64VarP(&in.AnnualRatePercent, "rate", "r", 12, "Expected annual return (%)")
	cmd.Flags().IntVarP(&in.Years, "years", "y", 10, "Investment period in years")
	return cmd
}

func stepUpCmd(a *app) *cobra.Command {
	var in calculation.StepUpSIPInput
	cmd := &cobra.Command{
		Use:   "stepup",
		Short: "SIP whose monthly amount rises every year",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			res, err := a.engine.StepUpSIP(in)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.StepUpReport(in, res))
		}),
	}
	cmd.Flags().Float64VarP(&in.MonthlyAmount, "amount", "a", 0, "Starting monthly investment")
	cmd.Flags().Float64VarP(&in.AnnualRatePercent, "rate", "r", 12, "Expected annual return (%)")
	cmd.Flags().IntVarP(&in.Years, "years", "y", 10, "Investment period in years")
	cmd.Flags().Float64VarP(&in.StepUpPercent, "step-up", "s", 10, "Yearly increase in the monthly amount (%)")
	return cmd
}

func goalCmd(a *app) *cobra.Command {
	var in calculation.GoalSIPInput
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Monthly SIP needed to reach a target amount",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			res, err := a.engine.GoalSIP(in)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.GoalSIPReport(in, res))
		}),
	}
	cmd.Flags().Float64VarP(&in.TargetAmount, "target", "t", 0, "Target amount")
	cmd.Flags().Float64VarP(&in.AnnualRatePercent, "rate", "r", 12, "Expected annual return (%)")
	cmd.Flags().IntVarP(&in.Years, "years", "y", 10, "Years to the goal")
	return cmd
}

func fdCmd(a *app) *cobra.Command {
	var in calculation.FDInput
	cmd := &cobra.Command{
		Use:   "fd",
		Short: "Maturity value of a fixed deposit",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			res, err := a.engine.FixedDeposit(in)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.GrowthReport("fd", "Fixed deposit", in, res))
		}),
	}
	cmd.Flags().Float64VarP(&in.Principal, "principal", "p", 0, "Deposit amount")
	cmd.Flags().Float64VarP(&in.AnnualRatePercent, "rate", "r", 7, "Annual interest rate (%)")
	cmd.Flags().IntVarP(&in.TenureMonths, "months", "m", 12, "Tenure in months")
	cmd.Flags().IntVar(&in.CompoundingPerYear, "compounding", 4, "Compounding periods per year")
	return cmd
}

func rdCmd(a *app) *cobra.Command {
	var in calculation.RDInput
	cmd := &cobra.Command{
		Use:   "rd",
		Short: "Maturity value of a recurring deposit",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			res, err := a.engine.RecurringDeposit(in)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.GrowthReport("rd", "Recurring deposit", in, res))
		}),
	}
	cmd.Flags().Float64VarP(&in.MonthlyDeposit, "amount", "a", 0, "Monthly deposit")
	cmd.Flags().Float64VarP(&in.AnnualRatePercent, "rate", "r", 7, "Annual interest rate (%)")
	cmd.Flags().IntVarP(&in.TenureMonths, "months", "m", 12, "Tenure in months")
	return cmd
}

func emiCmd(a *app) *cobra.Command {
	var (
		in      calculation.LoanInput
		monthly bool
	)
	cmd := &cobra.Command{
		Use:   "emi",
		Short: "Loan EMI and amortization schedule",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			s, err := a.engine.Loan(in)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.LoanReport(in, s, monthly))
		}),
	}
	cmd.Flags().Float64VarP(&in.Principal, "principal", "p", 0, "Loan amount")
	cmd.Flags().Float64VarP(&in.AnnualRatePercent, "rate", "r", 9, "Annual interest rate (%)")
	cmd.Flags().IntVarP(&in.TenureYears, "years", "y", 0, "Tenure in years")
	cmd.Flags().IntVarP(&in.TenureMonths, "months", "m", 0, "Tenure in months (overrides --years)")
	cmd.Flags().BoolVar(&monthly, "monthly", false, "Show the month-by-month schedule instead of yearly totals")
	return cmd
}

func swpCmd(a *app) *cobra.Command {
	var in calculation.SWPInput
	cmd := &cobra.Command{
		Use:   "swp",
		Short: "How long a corpus lasts under a monthly withdrawal",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			res, err := a.engine.SWP(in)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.DepletionReport(in, res))
		}),
	}
	cmd.Flags().Float64VarP(&in.Corpus, "corpus", "c", 0, "Starting corpus")
	cmd.Flags().Float64VarP(&in.MonthlyWithdrawal, "withdrawal", "w", 0, "Monthly withdrawal")
	cmd.Flags().Float64VarP(&in.AnnualRatePercent, "rate", "r", 8, "Expected annual return (%)")
	return cmd
}

func educationCmd(a *app) *cobra.Command {
	var in calculation.EducationGoalInput
	cmd := &cobra.Command{
		Use:   "education",
		Short: "Plan for a child's education expense",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			res, err := a.engine.EducationGoal(in)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.EducationReport(in, res))
		}),
	}
	cmd.Flags().Float64Var(&in.CurrentCost, "cost", 0, "Cost of the education today")
	cmd.Flags().IntVarP(&in.YearsToGoal, "years", "y", 0, "Years until the money is needed")
	cmd.Flags().Float64Var(&in.InflationPercent, "inflation", 10, "Education inflation (%)")
	cmd.Flags().Float64VarP(&in.ExpectedReturnPercent, "rate", "r", 12, "Expected annual return (%)")
	cmd.Flags().Float64Var(&in.CurrentSavings, "savings", 0, "Amount already saved for the goal")
	return cmd
}

func retirementCmd(a *app) *cobra.Command {
	var in calculation.RetirementInput
	cmd := &cobra.Command{
		Use:   "retirement",
		Short: "Corpus and monthly saving needed for retirement",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			res, err := a.engine.Retirement(in)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.RetirementReport(in, res))
		}),
	}
	cmd.Flags().IntVar(&in.CurrentAge, "age", 30, "Current age")
	cmd.Flags().IntVar(&in.RetirementAge, "retire-at", 60, "Retirement age")
	cmd.Flags().IntVar(&in.LifeExpectancy, "life-expectancy", 85, "Life expectancy")
	cmd.Flags().Float64Var(&in.MonthlyExpenses, "expenses", 0, "Current monthly expenses")
	cmd.Flags().Float64Var(&in.InflationPercent, "inflation", 6, "Inflation (%)")
	cmd.Flags().Float64Var(&in.PreRetirementReturnPercent, "pre-return", 12, "Return before retirement (%)")
	cmd.Flags().Float64Var(&in.PostRetirementReturnPercent, "post-return", 8, "Return after retirement (%)")
	cmd.Flags().Float64Var(&in.CurrentSavings, "savings", 0, "Retirement savings so far")
	return cmd
}
