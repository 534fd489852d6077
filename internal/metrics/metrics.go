// Package metrics counts calculator invocations with prometheus collectors.
// The command line tools write the counters to a node_exporter textfile.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rgehrsitz/fincalc/internal/domain"
)

const namespace = "fincalc"

// Recorder owns a private registry so tests and callers never collide on
// the global one.
type Recorder struct {
	registry *prometheus.Registry

	// Calculations counts calls by calculator and status (ok or error).
	Calculations *prometheus.CounterVec
	// CalculationErrors counts failures by calculator and reason code.
	CalculationErrors *prometheus.CounterVec
	// RiskProfiles counts completed quizzes by tier.
	RiskProfiles *prometheus.CounterVec
}

// NewRecorder creates a recorder with its counters registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		Calculations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calculations_total",
				Help:      "Calculator invocations",
			},
			[]string{"calculator", "status"},
		),
		CalculationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calculation_errors_total",
				Help:      "Calculator failures by reason",
			},
			[]string{"calculator", "reason"},
		),
		RiskProfiles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "risk_profiles_total",
				Help:      "Completed risk questionnaires by tier",
			},
			[]string{"tier"},
		),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records one calculator call. It satisfies calculation.Observer.
func (r *Recorder) Observe(calculator string, err error) {
	if err == nil {
		r.Calculations.WithLabelValues(calculator, "ok").Inc()
		return
	}
	r.Calculations.WithLabelValues(calculator, "error").Inc()
	reason := string(domain.ReasonOf(err))
	if reason == "" {
		reason = "internal"
	}
	r.CalculationErrors.WithLabelValues(calculator, reason).Inc()
}

// ObserveRiskProfile records a completed questionnaire.
func (r *Recorder) ObserveRiskProfile(tier string) {
	r.RiskProfiles.WithLabelValues(tier).Inc()
}

// WriteToTextfile writes every collected metric to path in the text
// exposition format.
func (r *Recorder) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
