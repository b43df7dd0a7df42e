// SPDX-License-Identifier: MIT
// Package: syracuse/sequence
//
// errors.go: sentinel errors for the sequence package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Operations wrap sentinels with "<Method>: <context>: %w".
//   • ErrNoTerms and ErrArityMismatch are both Invalid Configuration errors:
//     errors.Is(err, ErrInvalidConfig) holds for either of them.
//   • Operations never panic. Option constructors (WithX) panic on meaningless
//     values; a panicking Relation inside a batch surfaces as ErrRelationPanic.

package sequence

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the umbrella class for usage errors caused by the way a
// Sequence was configured (missing or mis-sized initial terms).
var ErrInvalidConfig = errors.New("sequence: invalid configuration")

// ErrNoTerms indicates a term lookup or cycle query with no effective initial
// terms: none bound to the Sequence and no (non-empty) override supplied.
var ErrNoTerms = fmt.Errorf("%w: no initial terms", ErrInvalidConfig)

// ErrArityMismatch indicates a terms vector whose length differs from the
// arity declared with WithArity.
var ErrArityMismatch = fmt.Errorf("%w: terms length does not match relation arity", ErrInvalidConfig)

// ErrNilRelation indicates New was called with a nil Relation.
var ErrNilRelation = errors.New("sequence: relation is nil")

// ErrNegativeIndex indicates a term index below zero.
var ErrNegativeIndex = errors.New("sequence: index must be non-negative")

// ErrStepLimit indicates a cycle walk exceeded the ceiling set by WithMaxSteps
// without producing the target value.
var ErrStepLimit = errors.New("sequence: step limit reached before target")

// ErrRelationPanic indicates the Relation panicked inside a batch unit.
var ErrRelationPanic = errors.New("sequence: relation panicked")

// ErrUnknownMode indicates ParseMode received an unrecognised mode name.
var ErrUnknownMode = errors.New("sequence: unknown evaluation mode")

// Method names used as error prefixes.
const (
	MethodAt         = "At"
	MethodDoUntil    = "DoUntil"
	MethodLoadNUntil = "LoadNUntil"
	MethodNew        = "New"
)

// errorf prefixes a formatted message with the method name.
// Use %w in format to keep the sentinel reachable through errors.Is.
func errorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
