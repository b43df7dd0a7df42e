package sequence

import (
	"iter"
	"slices"
	"strings"
)

// Entry is one (initial terms, result) pair of a ResultMap.
type Entry struct {
	Terms  Terms
	Result Result
}

// ResultMap maps initial-terms vectors to their Result.
//
// Keys compare structurally (same length, same values, same order) and the
// map iterates in lexicographic key order (Terms.Compare), never in
// submission or completion order. A ResultMap is immutable once returned.
// The zero value and a nil *ResultMap are empty maps.
type ResultMap struct {
	entries []Entry // sorted by Terms.Compare, keys unique
}

// newResultMap sorts the pairs by key. A repeated key keeps the last result,
// as a plain map assignment would.
func newResultMap(keys []Terms, results []Result) *ResultMap {
	entries := make([]Entry, len(keys))
	for i := range keys {
		entries[i] = Entry{Terms: keys[i], Result: results[i]}
	}
	slices.SortStableFunc(entries, func(a, b Entry) int { return a.Terms.Compare(b.Terms) })

	out := entries[:0]
	for _, e := range entries {
		if n := len(out); n > 0 && out[n-1].Terms.Equal(e.Terms) {
			out[n-1] = e
			continue
		}
		out = append(out, e)
	}

	return &ResultMap{entries: out}
}

// Len returns the number of keys.
func (m *ResultMap) Len() int {
	if m == nil {
		return 0
	}

	return len(m.entries)
}

// Get returns the Result stored for terms.
func (m *ResultMap) Get(terms Terms) (Result, bool) {
	if m == nil {
		return Result{}, false
	}
	i, ok := slices.BinarySearchFunc(m.entries, terms, func(e Entry, t Terms) int { return e.Terms.Compare(t) })
	if !ok {
		return Result{}, false
	}

	return m.entries[i].Result, true
}

// Keys returns copies of the keys in iteration order.
func (m *ResultMap) Keys() []Terms {
	keys := make([]Terms, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}

	return keys
}

// Entries returns a copy of the pairs in iteration order.
func (m *ResultMap) Entries() []Entry {
	out := make([]Entry, 0, m.Len())
	for k, r := range m.All() {
		out = append(out, Entry{Terms: k, Result: r})
	}

	return out
}

// All iterates the pairs in key order. Yielded keys are copies.
func (m *ResultMap) All() iter.Seq2[Terms, Result] {
	return func(yield func(Terms, Result) bool) {
		if m == nil {
			return
		}
		for _, e := range m.entries {
			if !yield(e.Terms.Clone(), e.Result) {
				return
			}
		}
	}
}

// String renders the map as "map[[6]:{8 16} [7]:{16 52}]".
func (m *ResultMap) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	i := 0
	for k, r := range m.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k.String())
		sb.WriteByte(':')
		sb.WriteString(r.String())
		i++
	}
	sb.WriteByte(']')

	return sb.String()
}
