// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w:
//       fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrInvalidRange → ErrInvalidProbability → ErrNeedRandSource.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, minN) is below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidRange indicates an inverted size interval, e.g. RandomNetwork
// with minN > maxN.
var ErrInvalidRange = errors.New("builder: invalid range")

// ErrInvalidProbability indicates a probability outside [0,1] or NaN.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed, e.g. a
// nil Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
