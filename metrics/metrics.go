package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/syracuse/sequence"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "syracuse"

// Outcome label values.
const (
	OutcomeOK            = "ok"
	OutcomeStepLimit     = "step_limit"
	OutcomeCancelled     = "cancelled"
	OutcomeInvalidConfig = "invalid_config"
	OutcomePanic         = "panic"
	OutcomeError         = "error"
)

// Recorder is a sequence.Recorder backed by Prometheus collectors.
// It is safe for concurrent use.
type Recorder struct {
	walks         *prometheus.CounterVec
	walkSteps     prometheus.Histogram
	batches       *prometheus.CounterVec
	batchSize     prometheus.Histogram
	batchDuration prometheus.Histogram
}

var _ sequence.Recorder = (*Recorder)(nil)

// New registers the collectors on reg and returns the Recorder.
// Registering twice on the same registry panics, as promauto does.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		walks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "walks_total",
			Help:      "Cycle walks by outcome.",
		}, []string{"outcome"}),
		walkSteps: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "walk_steps",
			Help:      "Steps taken by successful cycle walks.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		batches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Batch runs by outcome.",
		}, []string{"outcome"}),
		batchSize: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Initial-terms vectors dispatched per batch.",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 128, 255},
		}),
		batchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Wall time from batch dispatch to join.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}
}

// ObserveWalk implements sequence.Recorder.
func (r *Recorder) ObserveWalk(steps int, err error) {
	r.walks.WithLabelValues(Outcome(err)).Inc()
	if err == nil {
		r.walkSteps.Observe(float64(steps))
	}
}

// ObserveBatch implements sequence.Recorder.
func (r *Recorder) ObserveBatch(size int, elapsed time.Duration, err error) {
	r.batches.WithLabelValues(Outcome(err)).Inc()
	r.batchSize.Observe(float64(size))
	r.batchDuration.Observe(elapsed.Seconds())
}

// Outcome classifies an engine error into an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, sequence.ErrStepLimit):
		return OutcomeStepLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	case errors.Is(err, sequence.ErrInvalidConfig):
		return OutcomeInvalidConfig
	case errors.Is(err, sequence.ErrRelationPanic):
		return OutcomePanic
	default:
		return OutcomeError
	}
}

// WriteText writes every metric family gathered from g in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
