// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = nil               (each constructor's own scheme; DefaultIDFn
//                                  "0","1",... for all but RandomNetwork)
//   • rng      = nil               (stochastic constructors require WithSeed/WithRand)
//   • weightFn = DefaultWeightFn   (constant core.DefaultEdgeWeight)
//
// newBuilderConfig applies options in order; later options override earlier ones.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID; nil defers to the constructor.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for every emitted edge.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     nil,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// idScheme returns the configured ID scheme, or fallback when none is set.
func (c builderConfig) idScheme(fallback IDFn) IDFn {
	if c.idFn != nil {
		return c.idFn
	}

	return fallback
}

// nextWeight draws one edge weight from the configured generator.
func (c builderConfig) nextWeight() float64 {
	return c.weightFn(c.rng)
}
