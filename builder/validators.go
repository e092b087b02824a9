// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a sentinel wrapped via builderErrorf
// when its precondition is violated.
package builder

import "math"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: ErrTooFewVertices" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateRadius enforces r ≥ 0 and rejects NaN.
// A zero radius is legal: only coincident vertices connect.
//
// Complexity: O(1) time and space.
func validateRadius(method string, r float64) error {
	if math.IsNaN(r) || r < 0 {
		return builderErrorf(method, ErrInvalidRadius, "radius must be ≥ 0, got %v", r)
	}

	return nil
}

// validateRange enforces that both axes admit at least one integer coordinate
// and fit an int.
//
// Complexity: O(1) time and space.
func validateRange(method string, xRange, yRange float64) error {
	for _, r := range [2]float64{xRange, yRange} {
		if !(r >= MinCoordinateRange) || r > math.MaxInt32 {
			return builderErrorf(method, ErrInvalidRange,
				"range must be in [%d,%d], got %v×%v", MinCoordinateRange, math.MaxInt32, xRange, yRange)
		}
	}

	return nil
}
