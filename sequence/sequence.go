package sequence

// Sequence binds one Relation to an optional vector of initial terms.
//
// A Sequence keeps no evaluation state beyond its bound terms, so one value
// may serve many concurrent queries. Rebinding the terms (WithTerms) while a
// query on the same Sequence is in flight is a caller error; the type does
// not lock internally.
type Sequence struct {
	rel   Relation
	terms Terms
	cfg   config
}

// New builds a Sequence from a Relation and its initial terms.
//
// terms may be nil: the Sequence is then valid but every query needs terms,
// either rebound with WithTerms or passed as an override.
// The terms are copied; later changes to the caller's slice do not leak in.
//
// Errors:
//   - ErrNilRelation   if rel is nil.
//   - ErrArityMismatch if WithArity was given and terms is non-empty with a
//     different length.
func New(rel Relation, terms Terms, opts ...Option) (*Sequence, error) {
	if rel == nil {
		return nil, errorf(MethodNew, "%w", ErrNilRelation)
	}
	s := &Sequence{rel: rel, terms: terms.Clone(), cfg: newConfig(opts...)}
	if len(s.terms) > 0 {
		if _, err := s.effective(MethodNew, s.terms); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// WithTerms rebinds the initial terms and returns the same Sequence so that
// calls chain:
//
//	v, err := seq.WithTerms(sequence.Terms{0, 1}).At(6) // v == 8 for Fibonacci
//
// The vector is copied. Arity is checked at query time, not here.
func (s *Sequence) WithTerms(terms Terms) *Sequence {
	s.terms = terms.Clone()

	return s
}

// Terms returns a copy of the bound initial terms (nil if none are bound).
func (s *Sequence) Terms() Terms {
	return s.terms.Clone()
}

// At returns u_n for the bound initial terms.
//
// For n < k the bound vector is used as a lookup table (u_n = terms[n]);
// otherwise u_n = relation(u_{n-k}, …, u_{n-1}).
//
// Errors: ErrNegativeIndex, ErrNoTerms, ErrArityMismatch.
func (s *Sequence) At(n int) (int64, error) {
	return s.at(n, s.terms)
}

// AtWith is At evaluated against terms instead of the bound vector.
// An empty override fails with ErrNoTerms; it does not fall back to the
// bound terms.
func (s *Sequence) AtWith(n int, terms Terms) (int64, error) {
	return s.at(n, terms)
}

func (s *Sequence) at(n int, terms Terms) (int64, error) {
	if n < 0 {
		return 0, errorf(MethodAt, "n=%d: %w", n, ErrNegativeIndex)
	}
	uz, err := s.effective(MethodAt, terms)
	if err != nil {
		return 0, err
	}
	if s.cfg.mode == Recursive {
		return s.recursive(n, uz), nil
	}
	w := s.newWalker(uz)
	for w.index < n {
		w.advance()
	}

	return w.current, nil
}

// effective validates the terms a query will run against.
func (s *Sequence) effective(method string, terms Terms) (Terms, error) {
	if len(terms) == 0 {
		return nil, errorf(method, "%w", ErrNoTerms)
	}
	if s.cfg.arity > 0 && len(terms) != s.cfg.arity {
		return nil, errorf(method, "got %d terms, want %d: %w", len(terms), s.cfg.arity, ErrArityMismatch)
	}

	return terms, nil
}

// recursive is the direct definition of u_n, with no memoization.
func (s *Sequence) recursive(n int, uz Terms) int64 {
	k := len(uz)
	if n < k {
		return uz[n]
	}
	window := make([]int64, k)
	for j := range window {
		window[j] = s.recursive(n-k+j, uz)
	}

	return s.rel(window)
}

// walker steps through u_0, u_1, … one index at a time.
//
// In Rolling mode window always holds the k terms preceding the next index
// to compute, oldest first; scratch is the copy handed to the Relation so a
// misbehaving Relation cannot corrupt that state. In Recursive mode every
// step re-evaluates u_index from scratch.
type walker struct {
	seq     *Sequence
	seed    Terms
	window  []int64
	scratch []int64
	index   int
	current int64
}

func (s *Sequence) newWalker(uz Terms) *walker {
	w := &walker{seq: s, seed: uz, current: uz[0]}
	if s.cfg.mode == Rolling {
		w.window = uz.Clone()
		w.scratch = make([]int64, len(uz))
	}

	return w
}

// advance moves to the next index and updates current.
func (w *walker) advance() {
	w.index++
	k := len(w.seed)
	switch {
	case w.index < k:
		w.current = w.seed[w.index]
	case w.window == nil:
		w.current = w.seq.recursive(w.index, w.seed)
	default:
		copy(w.scratch, w.window)
		next := w.seq.rel(w.scratch)
		copy(w.window, w.window[1:])
		w.window[k-1] = next
		w.current = next
	}
}
