// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// api.go - the orchestrator and the constructor contract.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go, one per file.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/modularity/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors:
//   - validate parameters before touching g and return wrapped sentinels;
//   - never panic;
//   - preserve determinism for the same config and call order.
type Constructor func(g *core.WeightedGraph[string], cfg builderConfig) error

// BuildGraph creates an empty core.WeightedGraph, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Constructors share the graph: node IDs produced by several constructors
// merge, and later edges overwrite earlier weights on the same pair.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately together with a nil graph.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.WeightedGraph[string], error) {
	g := core.NewWeightedGraph[string]()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph with freshly resolved
// options, for callers that extend a graph they already hold.
// It returns the first constructor error, wrapped like BuildGraph; g keeps
// whatever the failing constructor had added before returning.
func Apply(g *core.WeightedGraph[string], bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", MethodBuildGraph, ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return nil
}
