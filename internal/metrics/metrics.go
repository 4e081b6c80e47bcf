// Package metrics records lint run statistics with Prometheus collectors.
//
// Metrics:
//   - adoclint_messages_total: messages emitted, by rule id and severity
//   - adoclint_suppressed_total: messages dropped by suppression
//   - adoclint_documents_total: documents linted, by outcome
//   - adoclint_run_duration_seconds: wall time of a lint run
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/lint"
)

const namespace = "adoclint"

// Recorder implements lint.Recorder.
type Recorder struct {
	registry *prometheus.Registry

	messagesTotal   *prometheus.CounterVec
	suppressedTotal prometheus.Counter
	documentsTotal  *prometheus.CounterVec
	runDuration     prometheus.Histogram
}

var _ lint.Recorder = (*Recorder)(nil)

// NewRecorder creates a Recorder and registers its collectors with registry.
// A nil registry gets a fresh one.
func NewRecorder(registry *prometheus.Registry) *Recorder {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	r := &Recorder{
		registry: registry,
		messagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_total",
				Help:      "Total number of validation messages emitted",
			},
			[]string{"rule_id", "severity"},
		),
		suppressedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "suppressed_total",
				Help:      "Total number of validation messages dropped by suppression",
			},
		),
		documentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "documents_total",
				Help:      "Total number of documents linted",
			},
			[]string{"outcome"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of a lint run in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
			},
		),
	}

	registry.MustRegister(
		r.messagesTotal,
		r.suppressedTotal,
		r.documentsTotal,
		r.runDuration,
	)
	return r
}

// ObserveDocument counts the kept messages and suppressions of one document.
func (r *Recorder) ObserveDocument(msgs []domain.Message, suppressed int) {
	for _, m := range msgs {
		r.messagesTotal.WithLabelValues(m.RuleID, m.Severity.String()).Inc()
	}
	r.suppressedTotal.Add(float64(suppressed))
}

// ObserveRun records per-document outcomes and the run duration.
func (r *Recorder) ObserveRun(result *lint.Result, elapsed time.Duration) {
	if result != nil {
		for _, f := range result.Files {
			r.documentsTotal.WithLabelValues(outcome(f)).Inc()
		}
	}
	r.runDuration.Observe(elapsed.Seconds())
}

func outcome(f lint.FileResult) string {
	switch {
	case f.Err != nil:
		return "failed"
	case len(f.Messages) == 0:
		return "clean"
	}
	return "findings"
}

// WriteTextfile writes the current metrics in the Prometheus text format,
// suitable for the node exporter's textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}
