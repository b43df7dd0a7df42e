package sequence

import "context"

// ctxPollInterval is the number of steps between two context checks in a
// cycle walk.
const ctxPollInterval = 1024

// DoUntil walks the sequence from index 0 with the bound terms until a term
// equals target, and reports the index of that term together with the
// largest term seen (the starting term and the matched term included).
//
// Example (Collatz from 6): 6 3 10 5 16 8 4 2 1 → Result{CycleLength: 8, MaxTerm: 16}.
//
// Without WithMaxSteps the walk is unbounded: a (relation, target) pair that
// never meets the target blocks forever. Choose convergent configurations,
// or bound the walk with WithMaxSteps or DoUntilContext.
//
// Errors: ErrNoTerms, ErrArityMismatch, ErrStepLimit.
func (s *Sequence) DoUntil(target int64) (Result, error) {
	return s.doUntil(context.Background(), MethodDoUntil, target, s.terms)
}

// DoUntilWith is DoUntil against terms instead of the bound vector.
func (s *Sequence) DoUntilWith(target int64, terms Terms) (Result, error) {
	return s.doUntil(context.Background(), MethodDoUntil, target, terms)
}

// DoUntilContext is DoUntilWith that also stops when ctx is done, returning
// the context's error wrapped. A nil terms uses the bound vector.
func (s *Sequence) DoUntilContext(ctx context.Context, target int64, terms Terms) (Result, error) {
	if terms == nil {
		terms = s.terms
	}

	return s.doUntil(ctx, MethodDoUntil, target, terms)
}

func (s *Sequence) doUntil(ctx context.Context, method string, target int64, terms Terms) (Result, error) {
	res, steps, err := s.walk(ctx, method, target, terms)
	s.cfg.recorder.ObserveWalk(steps, err)

	return res, err
}

// walk is the cycle walk proper; steps is the last index reached, whether or
// not the walk succeeded.
func (s *Sequence) walk(ctx context.Context, method string, target int64, terms Terms) (Result, int, error) {
	uz, err := s.effective(method, terms)
	if err != nil {
		return Result{}, 0, err
	}
	done := ctx.Done()

	w := s.newWalker(uz)
	maxTerm := w.current
	for w.current != target {
		if s.cfg.maxSteps > 0 && w.index >= s.cfg.maxSteps {
			return Result{}, w.index, errorf(method, "terms %v, target %d, %d steps: %w", uz, target, w.index, ErrStepLimit)
		}
		if done != nil && w.index%ctxPollInterval == 0 {
			select {
			case <-done:
				return Result{}, w.index, errorf(method, "terms %v: %w", uz, ctx.Err())
			default:
			}
		}
		w.advance()
		maxTerm = max(maxTerm, w.current)
	}

	return Result{CycleLength: w.index, MaxTerm: maxTerm}, w.index, nil
}
