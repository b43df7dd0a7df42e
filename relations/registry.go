package relations

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/syracuse/sequence"
)

// ErrUnknownRelation indicates a name the registry does not know.
var ErrUnknownRelation = errors.New("relations: unknown relation")

// linearPrefix introduces an inline linear relation: "linear:c0,c1,…".
const linearPrefix = "linear:"

// Spec describes a named relation.
type Spec struct {
	Name        string
	Arity       int
	Description string
	Relation    sequence.Relation
}

var builtins = []Spec{
	{Name: "collatz", Arity: 1, Description: "x/2 if x even, 3x+1 if x odd", Relation: Collatz},
	{Name: "fibonacci", Arity: 2, Description: "a+b", Relation: Fibonacci},
	{Name: "tribonacci", Arity: 3, Description: "a+b+c", Relation: Tribonacci},
}

var aliases = map[string]string{
	"syracuse": "collatz",
	"fib":      "fibonacci",
}

// Builtins returns the built-in specs sorted by name.
func Builtins() []Spec {
	out := slices.Clone(builtins)
	slices.SortFunc(out, func(a, b Spec) int { return strings.Compare(a.Name, b.Name) })

	return out
}

// Lookup returns the built-in spec registered under name or one of its
// aliases. Matching is case-insensitive.
func Lookup(name string) (Spec, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	for _, s := range builtins {
		if s.Name == key {
			return s, nil
		}
	}

	return Spec{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownRelation)
}

// Parse resolves either a built-in name or an inline linear relation such as
// "linear:1,1" (Fibonacci) or "linear:2,-1" (arithmetic progression).
func Parse(expr string) (Spec, error) {
	trimmed := strings.TrimSpace(expr)
	if !strings.HasPrefix(strings.ToLower(trimmed), linearPrefix) {
		return Lookup(trimmed)
	}

	fields := strings.Split(trimmed[len(linearPrefix):], ",")
	coeffs := make([]int64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		c, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return Spec{}, fmt.Errorf("Parse(%q): coefficient %q: %w", expr, f, err)
		}
		coeffs = append(coeffs, c)
	}
	rel, err := Linear(coeffs...)
	if err != nil {
		return Spec{}, fmt.Errorf("Parse(%q): %w", expr, err)
	}

	return Spec{
		Name:        trimmed,
		Arity:       len(coeffs),
		Description: "linear combination of the previous terms",
		Relation:    rel,
	}, nil
}
