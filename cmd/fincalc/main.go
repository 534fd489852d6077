package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/config"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/metrics"
	"github.com/rgehrsitz/fincalc/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries what every subcommand needs once flags and settings are
// resolved in the root PersistentPreRunE.
type app struct {
	configPath string

	settings  *config.Settings
	policy    *config.Policy
	logger    *zap.SugaredLogger
	engine    *calculation.Engine
	metrics   *metrics.Recorder
	formatter output.Formatter
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "fincalc",
		Short: "Personal finance calculators",
		Long: "SIP, lumpsum, deposit, loan, withdrawal and goal calculators, an old vs new " +
			"regime income-tax comparison and an investor risk-profile quiz.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Settings file (YAML)")
	pf.String("format", "console", "Output format: console, json, csv")
	pf.String("policy", "", "Tax and risk-profile policy file (YAML)")
	pf.String("metrics-file", "", "Write calculation counters to this Prometheus textfile")
	pf.Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		sipCmd(a),
		lumpsumCmd(a),
		stepUpCmd(a),
		goalCmd(a),
		fdCmd(a),
		rdCmd(a),
		emiCmd(a),
		swpCmd(a),
		educationCmd(a),
		retirementCmd(a),
		taxCmd(a),
		quizCmd(a),
		policyCmd(a),
		versionCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.settings = settings

	logger, err := newLogger(settings)
	if err != nil {
		return err
	}
	a.logger = logger.Sugar()

	policy, err := config.NewPolicyParser().LoadFromFile(settings.PolicyFile)
	if err != nil {
		return err
	}
	a.policy = policy

	formatter, err := output.GetFormatterByName(settings.Format)
	if err != nil {
		return err
	}
	a.formatter = formatter

	a.metrics = metrics.NewRecorder()
	a.engine = calculation.NewEngine()
	a.engine.SetLogger(a.logger)
	a.engine.SetObserver(a.metrics)

	a.logger.Debugw("settings loaded",
		"format", settings.Format,
		"policy", settings.PolicyFile,
		"metrics_file", settings.MetricsFile,
	)
	return nil
}

// newLogger builds a development logger under debug and a production one
// otherwise, both at the configured level.
func newLogger(s *config.Settings) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level: %s", s.LogLevel)
	}

	var cfg zap.Config
	if s.Debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// run wraps a subcommand body so counters are flushed whether or not it
// succeeds.
func (a *app) run(fn func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd)
		if flushErr := a.flush(); flushErr != nil && err == nil {
			err = flushErr
		}
		if a.logger != nil {
			_ = a.logger.Sync()
		}
		return err
	}
}

func (a *app) flush() error {
	if a.settings == nil || a.settings.MetricsFile == "" {
		return nil
	}
	if err := a.metrics.WriteToTextfile(a.settings.MetricsFile); err != nil {
		return err
	}
	a.logger.Debugw("metrics written", "path", a.settings.MetricsFile)
	return nil
}

// render formats report and writes it to the command's output.
func (a *app) render(w io.Writer, report output.Report) error {
	data, err := a.formatter.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format %s report: %w", report.Calculator, err)
	}
	_, err = w.Write(data)
	return err
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fincalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if reason := domain.ReasonOf(err); reason != "" {
			fmt.Fprintf(os.Stderr, "Error (%s): %v\n", reason, err)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
