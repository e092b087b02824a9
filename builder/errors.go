// SPDX-License-Identifier: MIT
// Package: gossipsim/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Priority (tie-break when multiple validations fail):
//    • ErrTooFewVertices: size checks first (n).
//    • ErrInvalidRadius: then the connection radius.
//    • ErrInvalidRange: then the placement area.
//    • ErrNeedRandSource: then RNG presence.
//    • ErrConstructFailed: only after all retries are exhausted.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that the vertex count is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidRadius indicates a negative or NaN connection radius.
var ErrInvalidRadius = errors.New("builder: invalid radius")

// ErrInvalidRange indicates a placement area that holds no integer coordinate
// (a range below 1 on either axis).
var ErrInvalidRange = errors.New("builder: invalid coordinate range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// random source. Configure with WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not complete: a nil
// constructor was supplied or every connectivity attempt was exhausted.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a meaningless orchestration parameter
// (e.g. maxAttempts < 1).
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf wraps a sentinel with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>".
//
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
