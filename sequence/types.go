package sequence

import (
	"slices"
	"strconv"
	"strings"
)

// Relation computes the next term of a sequence from a window of the k most
// recent terms, ordered oldest first (window[0] = u_{n-k}, window[k-1] = u_{n-1}).
//
// A Relation MUST be pure: the same window always yields the same value and
// no shared state is touched. The Batch Runner invokes one Relation from many
// goroutines at once. The window slice is owned by the engine and is only
// valid for the duration of the call.
//
// Example (Fibonacci, u_n = u_{n-2} + u_{n-1}):
//
//	fib := sequence.Relation(func(w []int64) int64 { return w[0] + w[1] })
type Relation func(window []int64) int64

// Terms is an ordered vector of initial terms u_0 … u_{k-1}.
//
// Two Terms are the same key when they have the same length and the same
// values in the same order. The natural ordering is lexicographic (see Compare).
type Terms []int64

// Clone returns an independent copy of t. A nil Terms clones to nil.
func (t Terms) Clone() Terms {
	if t == nil {
		return nil
	}

	return slices.Clone(t)
}

// Shift returns a new vector where step has been added to every component.
// Addition wraps on int64 overflow.
func (t Terms) Shift(step int64) Terms {
	out := make(Terms, len(t))
	for i, v := range t {
		out[i] = v + step
	}

	return out
}

// Compare orders two vectors lexicographically: the first differing component
// decides, and a strict prefix sorts before the longer vector.
// It returns -1, 0 or +1.
func (t Terms) Compare(other Terms) int {
	return slices.Compare(t, other)
}

// Equal reports whether t and other hold the same values in the same order.
func (t Terms) Equal(other Terms) bool {
	return slices.Equal(t, other)
}

// String renders the vector as "[u0 u1 …]".
func (t Terms) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(v, 10))
	}
	sb.WriteByte(']')

	return sb.String()
}

// Result holds the statistics of one cycle walk.
//
//   - CycleLength: index of the first term equal to the target, i.e. the number
//     of terms examined strictly before the match.
//   - MaxTerm: largest term seen on indices 0..CycleLength inclusive.
type Result struct {
	CycleLength int
	MaxTerm     int64
}

// String renders the result as "{CycleLength MaxTerm}".
func (r Result) String() string {
	return "{" + strconv.Itoa(r.CycleLength) + " " + strconv.FormatInt(r.MaxTerm, 10) + "}"
}

// Mode selects how the Term Evaluator walks the recurrence.
//
//   - Rolling: iterative evaluation over a k-slot sliding window.
//     Time O(n·k), memory O(k). Default.
//
//   - Recursive: the direct recursive definition, without memoization.
//     Each term u_n re-evaluates its whole window, so time grows as k^(n/k)
//     for k ≥ 2. Kept for fidelity with the textbook definition; results
//     are identical to Rolling.
type Mode int

const (
	// Rolling evaluates with a sliding window of the last k terms.
	Rolling Mode = iota

	// Recursive evaluates each term by recursing into its window.
	Recursive
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Rolling:
		return "rolling"
	case Recursive:
		return "recursive"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode maps "rolling" or "recursive" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rolling":
		return Rolling, nil
	case "recursive":
		return Recursive, nil
	default:
		return 0, errorf("ParseMode", "%q: %w", s, ErrUnknownMode)
	}
}
