package output

import (
	"fmt"
	"strconv"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/riskprofile"
	"github.com/rgehrsitz/fincalc/internal/tax"
	fdecimal "github.com/rgehrsitz/fincalc/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Value is a single rendered cell. Display is what the console shows; Raw is
// the machine-friendly form used by CSV.
type Value struct {
	Display string
	Raw     string
}

// Field is a labelled summary value.
type Field struct {
	Label string
	Value Value
}

// Table is an optional breakdown rendered below the summary.
type Table struct {
	Title  string
	Header []string
	Rows   [][]Value
}

// Report is what every formatter renders. Inputs and Result are carried as
// is for structured formats.
type Report struct {
	Calculator string
	Title      string
	Inputs     any
	Result     any
	Summary    []Field
	Tables     []Table
	Notes      []string
}

// FormatCurrency formats a decimal as rupees with Indian digit grouping.
func FormatCurrency(amount decimal.Decimal) string {
	return fdecimal.FormatINR(amount)
}

// FormatPercentage formats a fraction (0.1 = 10%) as a percentage.
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

func money(d decimal.Decimal) Value {
	return Value{Display: FormatCurrency(d), Raw: d.StringFixed(2)}
}

func text(s string) Value { return Value{Display: s, Raw: s} }

func integer(n int) Value { return text(strconv.Itoa(n)) }

func field(label string, v Value) Field { return Field{Label: label, Value: v} }

// GrowthReport renders the SIP, lumpsum, FD and RD calculators.
func GrowthReport(calculator, title string, inputs any, res domain.GrowthResult) Report {
	return Report{
		Calculator: calculator,
		Title:      title,
		Inputs:     inputs,
		Result:     res,
		Summary: []Field{
			field("Total invested", money(res.TotalInvested)),
			field("Estimated returns", money(res.TotalReturns)),
			field("Future value", money(res.FutureValue)),
		},
	}
}

// StepUpReport renders a step-up SIP with its year-by-year breakdown.
func StepUpReport(inputs any, res domain.StepUpResult) Report {
	r := GrowthReport("stepup", "Step-up SIP", inputs, res.GrowthResult)
	r.Result = res
	t := Table{
		Title:  "Year-wise contributions",
		Header: []string{"Year", "Monthly SIP", "Invested", "Value at maturity"},
	}
	for _, y := range res.Years {
		t.Rows = append(t.Rows, []Value{
			integer(y.Year),
			money(y.MonthlyContribution),
			money(y.Invested),
			money(y.ValueAtMaturity),
		})
	}
	r.Tables = []Table{t}
	return r
}

// GoalSIPReport renders the goal-based SIP calculator.
func GoalSIPReport(inputs any, res domain.GoalSIPResult) Report {
	return Report{
		Calculator: "goal",
		Title:      "Goal-based SIP",
		Inputs:     inputs,
		Result:     res,
		Summary: []Field{
			field("Target amount", money(res.TargetAmount)),
			field("Monthly SIP needed", money(res.MonthlySIP)),
			field("Or lumpsum today", money(res.LumpsumToday)),
			field("Total invested", money(res.TotalInvested)),
			field("Estimated returns", money(res.TotalReturns)),
			field("Months", integer(res.Months)),
		},
	}
}

// LoanReport renders an EMI schedule. With monthly set the table lists
// every month instead of yearly totals.
func LoanReport(inputs any, s *domain.LoanSchedule, monthly bool) Report {
	r := Report{
		Calculator: "emi",
		Title:      "Loan EMI",
		Inputs:     inputs,
		Result:     s,
		Summary: []Field{
			field("Loan amount", money(s.Principal)),
			field("Monthly EMI", money(s.MonthlyPayment)),
			field("Total interest", money(s.TotalInterest)),
			field("Total payment", money(s.TotalPayment)),
		},
	}

	if monthly {
		t := Table{
			Title:  "Monthly schedule",
			Header: []string{"Month", "Principal", "Interest", "Payment", "Balance"},
		}
		for _, m := range s.Months() {
			t.Rows = append(t.Rows, []Value{integer(m.Month), money(m.Principal), money(m.Interest), money(m.Payment), money(m.EndingBalance)})
		}
		r.Tables = []Table{t}
		return r
	}

	t := Table{
		Title:  "Yearly schedule",
		Header: []string{"Year", "Principal", "Interest", "Payment", "Balance"},
	}
	for _, y := range s.Years {
		t.Rows = append(t.Rows, []Value{integer(y.Year), money(y.Principal), money(y.Interest), money(y.Payment), money(y.EndingBalance)})
	}
	r.Tables = []Table{t}
	return r
}

// DepletionReport renders an SWP projection.
func DepletionReport(inputs any, res domain.DepletionResult) Report {
	r := Report{
		Calculator: "swp",
		Title:      "Systematic withdrawal plan",
		Inputs:     inputs,
		Result:     res,
	}
	if res.SustainsForever {
		r.Summary = []Field{field("Corpus lasts", text("Forever"))}
		r.Notes = []string{"Monthly withdrawal does not exceed the interest earned, so the corpus never depletes."}
		return r
	}
	r.Summary = []Field{
		field("Corpus lasts", text(fmt.Sprintf("%d years %d months", res.Years(), res.RemainderMonths()))),
		field("Months", integer(res.Months)),
		field("Total withdrawn", money(res.TotalWithdrawn)),
		field("Interest earned", money(res.TotalInterest)),
		field("Final balance", money(res.FinalBalance)),
	}
	return r
}

// EducationReport renders the child-education planner.
func EducationReport(inputs any, res domain.EducationGoalResult) Report {
	return Report{
		Calculator: "education",
		Title:      "Child education goal",
		Inputs:     inputs,
		Result:     res,
		Summary: []Field{
			field("Years to goal", integer(res.YearsToGoal)),
			field("Future cost", money(res.FutureCost)),
			field("Savings will grow to", money(res.SavingsFutureValue)),
			field("Shortfall", money(res.Shortfall)),
			field("Monthly SIP needed", money(res.MonthlySIP)),
			field("Or lumpsum today", money(res.LumpsumToday)),
		},
	}
}

// RetirementReport renders the retirement planner.
func RetirementReport(inputs any, res domain.RetirementResult) Report {
	return Report{
		Calculator: "retirement",
		Title:      "Retirement corpus",
		Inputs:     inputs,
		Result:     res,
		Summary: []Field{
			field("Years to retirement", integer(res.YearsToRetirement)),
			field("Years in retirement", integer(res.YearsInRetirement)),
			field("Monthly expense at retirement", money(res.MonthlyExpenseAtStart)),
			field("Corpus required", money(res.CorpusRequired)),
			field("Savings will grow to", money(res.SavingsFutureValue)),
			field("Shortfall", money(res.Shortfall)),
			field("Monthly SIP needed", money(res.MonthlySIP)),
		},
	}
}

// TaxReport renders an old versus new regime comparison.
func TaxReport(inputs any, cmp tax.Comparison) Report {
	t := Table{
		Title:  "Regime comparison",
		Header: []string{"", "Old regime", "New regime"},
	}
	row := func(label string, get func(tax.Result) decimal.Decimal) {
		t.Rows = append(t.Rows, []Value{text(label), money(get(cmp.Old)), money(get(cmp.New))})
	}
	row("Gross income", func(r tax.Result) decimal.Decimal { return r.GrossIncome })
	row("Deductions", func(r tax.Result) decimal.Decimal { return r.TotalDeductions })
	row("Taxable income", func(r tax.Result) decimal.Decimal { return r.TaxableIncome })
	row("Slab tax", func(r tax.Result) decimal.Decimal { return r.BaseTax })
	row("Rebate (87A)", func(r tax.Result) decimal.Decimal { return r.Rebate })
	row("Surcharge", func(r tax.Result) decimal.Decimal { return r.Surcharge })
	row("Cess", func(r tax.Result) decimal.Decimal { return r.Cess })
	row("Total tax", func(r tax.Result) decimal.Decimal { return r.TotalTax })

	return Report{
		Calculator: "tax",
		Title:      "Income tax: old vs new regime",
		Inputs:     inputs,
		Result:     cmp,
		Summary: []Field{
			field("Recommended", text(string(cmp.Recommended)+" regime")),
			field("You save", money(cmp.Savings)),
		},
		Tables: []Table{t},
	}
}

// RiskReport renders a completed risk profile.
func RiskReport(res riskprofile.Result) Report {
	t := Table{
		Title:  "Suggested allocation",
		Header: []string{"Asset class", "Percent"},
	}
	for _, a := range res.Allocation {
		p := strconv.FormatFloat(a.Percent, 'f', -1, 64)
		t.Rows = append(t.Rows, []Value{text(a.AssetClass), {Display: p + "%", Raw: p}})
	}
	return Report{
		Calculator: "quiz",
		Title:      "Risk profile",
		Result:     res,
		Summary: []Field{
			field("Profile", text(res.Tier)),
			field("Score", text(fmt.Sprintf("%d / %d", res.NormalizedScore, res.MaxScore))),
		},
		Tables: []Table{t},
		Notes:  []string{res.Advice},
	}
}
