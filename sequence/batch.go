package sequence

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultStep is the increment used by LoadNUntil when step is 0.
const DefaultStep int64 = 1

var tracer = otel.Tracer("github.com/katalvlaran/syracuse/sequence")

// LoadNUntil runs DoUntil concurrently over n initial-terms vectors and
// collects the results keyed by vector.
//
// The first vector is the bound terms; each following vector adds step to
// every component of the previous one (base, base+step, base+2·step, …).
// A step of 0 means "unspecified" and resolves to DefaultStep, so a batch
// never repeats one vector n times; pass n = 1 for a single-key map.
//
// The call blocks until every unit has finished. If any unit fails, the
// first error is returned once all units have been joined; siblings are not
// cancelled early. A unit whose walk never meets target blocks the batch
// forever unless WithMaxSteps is set or LoadNUntilContext is used.
//
// Errors: ErrNoTerms, ErrArityMismatch, ErrStepLimit, ErrRelationPanic.
func (s *Sequence) LoadNUntil(n uint8, target, step int64) (*ResultMap, error) {
	return s.LoadNUntilContext(context.Background(), n, target, step)
}

// LoadNUntilContext is LoadNUntil whose units stop when ctx is done.
func (s *Sequence) LoadNUntilContext(ctx context.Context, n uint8, target, step int64) (_ *ResultMap, err error) {
	base, err := s.effective(MethodLoadNUntil, s.terms)
	if err != nil {
		return nil, err
	}
	if step == 0 {
		step = DefaultStep
	}

	ctx, span := tracer.Start(ctx, "sequence.LoadNUntil", trace.WithAttributes(
		attribute.Int("batch.size", int(n)),
		attribute.Int64("batch.target", target),
		attribute.Int64("batch.step", step),
		attribute.String("batch.base", base.String()),
	))
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		s.cfg.recorder.ObserveBatch(int(n), elapsed, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	// keys[i] = base + i·step; each unit owns keys[i] and results[i].
	keys := make([]Terms, n)
	results := make([]Result, n)
	uz := base.Clone()
	for i := range keys {
		keys[i] = uz
		uz = uz.Shift(step)
	}

	log := s.cfg.logger.With(zap.Int64("target", target), zap.Int64("step", step))
	log.Debug("batch dispatch", zap.Int("size", int(n)), zap.Stringer("base", base), zap.Int("workers", s.cfg.workers))

	var g errgroup.Group
	if s.cfg.workers > 0 {
		g.SetLimit(s.cfg.workers)
	}
	for i := range keys {
		g.Go(func() error {
			res, err := s.runUnit(ctx, target, keys[i])
			if err != nil {
				log.Warn("batch unit failed", zap.Stringer("terms", keys[i]), zap.Error(err))
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	log.Debug("batch joined", zap.Int("size", int(n)), zap.Duration("elapsed", time.Since(start)))

	return newResultMap(keys, results), nil
}

// runUnit is one batch unit: a recorded cycle walk whose panics come back as
// ErrRelationPanic, so a faulty Relation cannot take the process down from a
// goroutine and still shows up in the walk measurements.
func (s *Sequence) runUnit(ctx context.Context, target int64, uz Terms) (Result, error) {
	res, steps, err := s.guardedWalk(ctx, target, uz)
	s.cfg.recorder.ObserveWalk(steps, err)

	return res, err
}

// guardedWalk is walk with a recovered panic turned into ErrRelationPanic.
// The step count of a panicking walk is reported as 0.
func (s *Sequence) guardedWalk(ctx context.Context, target int64, uz Terms) (res Result, steps int, err error) {
	defer func() {
		if p := recover(); p != nil {
			res, steps = Result{}, 0
			err = errorf(MethodLoadNUntil, "terms %v: %w: %v", uz, ErrRelationPanic, p)
		}
	}()

	return s.walk(ctx, MethodLoadNUntil, target, uz)
}
