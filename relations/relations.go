package relations

import (
	"errors"

	"github.com/katalvlaran/syracuse/sequence"
)

// ErrBadCoefficients indicates Linear was called without coefficients.
var ErrBadCoefficients = errors.New("relations: linear relation needs at least one coefficient")

// Collatz is the Syracuse step: halve even terms, map odd x to 3x+1.
// Arity 1.
func Collatz(w []int64) int64 {
	x := w[0]
	if x%2 == 0 {
		return x / 2
	}

	return 3*x + 1
}

// Fibonacci adds the two preceding terms. Arity 2.
func Fibonacci(w []int64) int64 {
	return w[0] + w[1]
}

// Tribonacci adds the three preceding terms. Arity 3.
func Tribonacci(w []int64) int64 {
	return w[0] + w[1] + w[2]
}

// Linear returns the order-k linear relation u_n = Σ coeffs[j]·u_{n-k+j},
// with k = len(coeffs) and coefficients listed oldest first.
// The coefficients are copied. A window longer than coeffs only weighs its
// first len(coeffs) terms; bind the relation with WithArity(len(coeffs)) to
// reject such windows up front.
func Linear(coeffs ...int64) (sequence.Relation, error) {
	if len(coeffs) == 0 {
		return nil, ErrBadCoefficients
	}
	c := append([]int64(nil), coeffs...)

	return func(w []int64) int64 {
		var sum int64
		for j := range min(len(w), len(c)) {
			sum += c[j] * w[j]
		}

		return sum
	}, nil
}
