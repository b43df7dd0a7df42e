package metrics_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/syracuse/metrics"
	"github.com/katalvlaran/syracuse/relations"
	"github.com/katalvlaran/syracuse/sequence"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOutcome maps each engine sentinel to its label.
func TestOutcome(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, metrics.OutcomeOK},
		{fmt.Errorf("x: %w", sequence.ErrStepLimit), metrics.OutcomeStepLimit},
		{fmt.Errorf("x: %w", context.Canceled), metrics.OutcomeCancelled},
		{context.DeadlineExceeded, metrics.OutcomeCancelled},
		{sequence.ErrNoTerms, metrics.OutcomeInvalidConfig},
		{sequence.ErrArityMismatch, metrics.OutcomeInvalidConfig},
		{sequence.ErrRelationPanic, metrics.OutcomePanic},
		{sequence.ErrNilRelation, metrics.OutcomeError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, metrics.Outcome(c.err), "%v", c.err)
	}
}

// TestRecorder_BatchRun wires the Recorder into a real batch and checks the
// collected counts.
func TestRecorder_BatchRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)

	seq, err := sequence.New(relations.Collatz, sequence.Terms{6}, sequence.WithRecorder(rec))
	require.NoError(t, err)
	_, err = seq.LoadNUntil(3, 1, 1)
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(reg, "syracuse_walks_total", "syracuse_batches_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one ok series per counter")

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, `syracuse_walks_total{outcome="ok"} 3`)
	assert.Contains(t, out, `syracuse_batches_total{outcome="ok"} 1`)
	assert.Contains(t, out, "syracuse_walk_steps_sum 27")
	assert.Contains(t, out, "syracuse_batch_size_count 1")
}

// TestRecorder_FailedWalk verifies failures skip the steps histogram.
func TestRecorder_FailedWalk(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)

	rec.ObserveWalk(10, sequence.ErrStepLimit)
	rec.ObserveWalk(4, nil)

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))
	assert.Contains(t, buf.String(), `syracuse_walks_total{outcome="step_limit"} 1`)
	assert.Contains(t, buf.String(), "syracuse_walk_steps_count 1")
}

// TestRecorder_PanickingUnit verifies a panicking batch unit lands in the
// panic series next to the units that succeeded.
func TestRecorder_PanickingUnit(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)

	boom := func(w []int64) int64 {
		if w[0] == 7 {
			panic("x")
		}

		return relations.Collatz(w)
	}
	seq, err := sequence.New(boom, sequence.Terms{6}, sequence.WithRecorder(rec))
	require.NoError(t, err)
	_, err = seq.LoadNUntil(2, 1, 1)
	require.ErrorIs(t, err, sequence.ErrRelationPanic)

	n, err := testutil.GatherAndCount(reg, "syracuse_walks_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "ok and panic series")

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, `syracuse_walks_total{outcome="ok"} 1`)
	assert.Contains(t, out, `syracuse_walks_total{outcome="panic"} 1`)
	assert.Contains(t, out, `syracuse_batches_total{outcome="panic"} 1`)
}

// TestNew_DoubleRegistrationPanics mirrors promauto's contract.
func TestNew_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	assert.Panics(t, func() { metrics.New(reg) })
}
