// Package metrics counts login attempts by outcome for the prometheus
// node_exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/segmentio/aws-cognito/lib/outcome"
)

// Recorder implements attempt.Observer.
type Recorder struct {
	registry *prometheus.Registry

	AttemptsTotal   *prometheus.CounterVec
	AttemptDuration *prometheus.HistogramVec
}

// NewRecorder creates the login metrics and registers them with a private
// registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		AttemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aws_cognito_login_attempts_total",
				Help: "Total number of login attempts by outcome",
			},
			[]string{"outcome"},
		),
		AttemptDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aws_cognito_login_attempt_duration_seconds",
				Help:    "Login attempt duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
	}
	r.registry.MustRegister(r.AttemptsTotal, r.AttemptDuration)
	return r
}

func (r *Recorder) ObserveAttempt(kind outcome.Kind, elapsed time.Duration) {
	label := kind.String()
	r.AttemptsTotal.WithLabelValues(label).Inc()
	r.AttemptDuration.WithLabelValues(label).Observe(elapsed.Seconds())
}

// Gatherer exposes the registry, mostly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the metrics to filename in the text exposition format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, r.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", filename, err)
	}
	return nil
}
