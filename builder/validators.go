// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// validators.go - parameter checks shared by constructors. Each returns a
// context-prefixed error wrapping the matching sentinel, or nil.

package builder

import (
	"fmt"
	"math"
)

// validateMin ensures got ≥ min.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateRange ensures lo ≤ hi.
func validateRange(method string, lo, hi int) error {
	if lo > hi {
		return fmt.Errorf("%s: range [%d,%d] is inverted: %w", method, lo, hi, ErrInvalidRange)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability]; NaN fails.
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%g not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
