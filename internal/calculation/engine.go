package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
)

// Logger is a minimal logging interface for the calculation engine.
// *zap.SugaredLogger satisfies it; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Observer is told about every calculation the Engine runs.
type Observer interface {
	Observe(calculator string, err error)
}

type nopObserver struct{}

func (nopObserver) Observe(string, error) {}

// Engine fronts the pure calculators for the CLI and TUI, adding logging and
// outcome reporting. It holds no calculation state and is safe for
// concurrent use as long as its Logger and Observer are.
type Engine struct {
	logger   Logger
	observer Observer
}

// NewEngine creates an engine with no-op logging and observation.
func NewEngine() *Engine {
	return &Engine{logger: NopLogger{}, observer: nopObserver{}}
}

// SetLogger replaces the engine logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.logger = l
}

// SetObserver replaces the engine observer; nil disables observation.
func (e *Engine) SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	e.observer = o
}

func (e *Engine) done(calculator string, err error) {
	e.observer.Observe(calculator, err)
	if err != nil {
		e.logger.Warnf("%s rejected (%s): %v", calculator, domain.ReasonOf(err), err)
		return
	}
	e.logger.Debugf("%s computed", calculator)
}

// SIP runs the SIP calculator.
func (e *Engine) SIP(in SIPInput) (domain.GrowthResult, error) {
	e.logger.Debugf("sip: amount=%.2f rate=%.2f%% years=%d", in.MonthlyAmount, in.AnnualRatePercent, in.Years)
	res, err := SIP(in)
	e.done("sip", err)
	return res, err
}

// Lumpsum runs the lumpsum calculator.
func (e *Engine) Lumpsum(in LumpsumInput) (domain.GrowthResult, error) {
	e.logger.Debugf("lumpsum: principal=%.2f rate=%.2f%% years=%d", in.Principal, in.AnnualRatePercent, in.Years)
	res, err := Lumpsum(in)
	e.done("lumpsum", err)
	return res, err
}

// StepUpSIP runs the step-up SIP calculator.
func (e *Engine) StepUpSIP(in StepUpSIPInput) (domain.StepUpResult, error) {
	e.logger.Debugf("stepup: amount=%.2f rate=%.2f%% years=%d step=%.2f%%", in.MonthlyAmount, in.AnnualRatePercent, in.Years, in.StepUpPercent)
	res, err := StepUpSIP(in)
	e.done("stepup", err)
	return res, err
}

// GoalSIP runs the goal SIP calculator.
func (e *Engine) GoalSIP(in GoalSIPInput) (domain.GoalSIPResult, error) {
	e.logger.Debugf("goal: target=%.2f rate=%.2f%% years=%d", in.TargetAmount, in.AnnualRatePercent, in.Years)
	res, err := GoalSIP(in)
	e.done("goal", err)
	return res, err
}

// FixedDeposit runs the FD calculator.
func (e *Engine) FixedDeposit(in FDInput) (domain.GrowthResult, error) {
	e.logger.Debugf("fd: principal=%.2f rate=%.2f%% months=%d freq=%d", in.Principal, in.AnnualRatePercent, in.TenureMonths, in.CompoundingPerYear)
	res, err := FixedDeposit(in)
	e.done("fd", err)
	return res, err
}

// RecurringDeposit runs the RD calculator.
func (e *Engine) RecurringDeposit(in RDInput) (domain.GrowthResult, error) {
	e.logger.Debugf("rd: deposit=%.2f rate=%.2f%% months=%d", in.MonthlyDeposit, in.AnnualRatePercent, in.TenureMonths)
	res, err := RecurringDeposit(in)
	e.done("rd", err)
	return res, err
}

// Loan builds an amortization schedule.
func (e *Engine) Loan(in LoanInput) (*domain.LoanSchedule, error) {
	e.logger.Debugf("emi: principal=%.2f rate=%.2f%% months=%d", in.Principal, in.AnnualRatePercent, in.Months())
	res, err := BuildSchedule(in)
	if err == nil {
		e.logger.Debugf("emi: %d years scheduled, total interest %s", len(res.Years), res.TotalInterest.StringFixed(2))
	}
	e.done("emi", err)
	return res, err
}

// SWP runs the depletion solver.
func (e *Engine) SWP(in SWPInput) (domain.DepletionResult, error) {
	e.logger.Debugf("swp: corpus=%.2f withdrawal=%.2f rate=%.2f%%", in.Corpus, in.MonthlyWithdrawal, in.AnnualRatePercent)
	res, err := SolveDepletion(in)
	e.done("swp", err)
	return res, err
}

// EducationGoal runs the child education planner.
func (e *Engine) EducationGoal(in EducationGoalInput) (domain.EducationGoalResult, error) {
	e.logger.Debugf("education: cost=%.2f years=%d inflation=%.2f%%", in.CurrentCost, in.YearsToGoal, in.InflationPercent)
	res, err := EducationGoal(in)
	e.done("education", err)
	return res, err
}

// Retirement runs the retirement corpus planner.
func (e *Engine) Retirement(in RetirementInput) (domain.RetirementResult, error) {
	e.logger.Debugf("retirement: age=%d retire=%d life=%d", in.CurrentAge, in.RetirementAge, in.LifeExpectancy)
	res, err := Retirement(in)
	e.done("retirement", err)
	return res, err
}
