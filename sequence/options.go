// SPDX-License-Identifier: MIT
// Package: syracuse/sequence
//
// options.go: functional options for New.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless input.
//     Operations on a Sequence never panic.
//   • Zero options give the plain behaviour: no arity check, Rolling mode,
//     unbounded walks, one goroutine per batch vector, silent logger.

package sequence

import (
	"time"

	"go.uber.org/zap"
)

// Option customizes a Sequence at construction time.
type Option func(*config)

// Recorder receives engine measurements. Implementations must be safe for
// concurrent use; the Batch Runner calls ObserveWalk from every unit.
// The metrics package provides a Prometheus-backed Recorder.
type Recorder interface {
	// ObserveWalk is called once per cycle walk with the number of steps
	// taken (the cycle length on success) and the walk's error, if any.
	ObserveWalk(steps int, err error)

	// ObserveBatch is called once per batch with the number of vectors
	// dispatched, the wall time until join, and the batch error.
	ObserveBatch(size int, elapsed time.Duration, err error)
}

type noopRecorder struct{}

func (noopRecorder) ObserveWalk(int, error) {}
func (noopRecorder) ObserveBatch(int, time.Duration, error) {}

// config is the resolved option set of a Sequence.
type config struct {
	arity    int // 0 = not declared
	mode     Mode
	maxSteps int // 0 = unbounded
	workers  int // 0 = one goroutine per vector
	logger   *zap.Logger
	recorder Recorder
}

func newConfig(opts ...Option) config {
	c := config{
		mode:     Rolling,
		logger:   zap.NewNop(),
		recorder: noopRecorder{},
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithArity declares the number of terms k the Relation expects.
// Every effective terms vector is then checked against k and a mismatch
// fails with ErrArityMismatch. Panics if k < 1.
func WithArity(k int) Option {
	if k < 1 {
		panic("sequence: WithArity(k<1)")
	}
	return func(c *config) { c.arity = k }
}

// WithMode selects the evaluation strategy (Rolling or Recursive).
// Panics on an unknown Mode.
func WithMode(m Mode) Option {
	if m != Rolling && m != Recursive {
		panic("sequence: WithMode(unknown)")
	}
	return func(c *config) { c.mode = m }
}

// WithMaxSteps bounds cycle walks: after limit steps without reaching the
// target, DoUntil fails with ErrStepLimit. 0 restores the unbounded walk.
// Panics if limit < 0.
func WithMaxSteps(limit int) Option {
	if limit < 0 {
		panic("sequence: WithMaxSteps(limit<0)")
	}
	return func(c *config) { c.maxSteps = limit }
}

// WithWorkers caps the number of goroutines a batch runs at once.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("sequence: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithLogger attaches a zap logger for batch lifecycle events.
// Panics on nil; use zap.NewNop() to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("sequence: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithRecorder attaches a measurement sink. Panics on nil.
func WithRecorder(r Recorder) Option {
	if r == nil {
		panic("sequence: WithRecorder(nil)")
	}
	return func(c *config) { c.recorder = r }
}
