// Package sequence evaluates integer sequences defined by recurrence and
// derives cycle statistics from them, one seed at a time or over a batch of
// seeds in parallel.
//
// 🚀 What is a recurrence?
//
//	A sequence u_0, u_1, … whose first k terms are given (the initial terms)
//	and whose every later term is computed from the k terms before it:
//
//	  u_n = f(u_{n-k}, …, u_{n-1})      for n ≥ k
//
//	With k = 1 and f(x) = x/2 (x even) or 3x+1 (x odd) this is the
//	Syracuse / Collatz sequence; with k = 2 and f(a, b) = a+b it is Fibonacci.
//
// ✨ Three layers, data flows downward only:
//
//   - Term Evaluator: At / AtWith return u_n. For n < k the initial terms act
//     as a lookup table.
//   - Cycle Analyzer: DoUntil walks u_0, u_1, … until a target value shows up
//     and returns Result{CycleLength, MaxTerm}.
//   - Batch Runner: LoadNUntil fans DoUntil out over n seeds derived from
//     the bound terms by a uniform step, joins every goroutine and returns a
//     ResultMap ordered by seed.
//
// ⚙️ Usage:
//
//	collatz := func(w []int64) int64 {
//		if w[0]%2 == 0 {
//			return w[0] / 2
//		}
//		return 3*w[0] + 1
//	}
//
//	seq, err := sequence.New(collatz, sequence.Terms{6})
//	if err != nil {
//		// ErrNilRelation
//	}
//	res, _ := seq.DoUntil(1)             // {8 16}
//	batch, _ := seq.LoadNUntil(3, 1, 1)  // map[[6]:{8 16} [7]:{16 52} [8]:{3 8}]
//
// Evaluation modes:
//
//   - Rolling (default): sliding window of k terms. Time O(n·k), memory O(k).
//   - Recursive: direct recursive definition with no memoization.
//     Time O(k^(n/k)) for k ≥ 2; identical results.
//
// Limits:
//
//   - Arithmetic is int64 with two's-complement wraparound; overflow is
//     neither detected nor reported.
//   - A walk whose target is never produced does not terminate. Bound it with
//     WithMaxSteps (ErrStepLimit) or a context (DoUntilContext,
//     LoadNUntilContext).
//
// Concurrency:
//
//	LoadNUntil runs one goroutine per seed (or WithWorkers(w) at a time)
//	through errgroup. Units share only the Relation, which must be pure.
//	The first unit error is returned after all units are joined.
//
// Errors (sentinel):
//
//	ErrNoTerms, ErrArityMismatch (both match ErrInvalidConfig),
//	ErrNilRelation, ErrNegativeIndex, ErrStepLimit, ErrRelationPanic,
//	ErrUnknownMode.
package sequence
