// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// impl_cycle.go - implementation of Cycle(n).
//
// Contract:
//   - n ≥ MinCycleNodes (else ErrTooFewVertices).
//   - Adds vertices in ascending index order (0..n-1).
//   - Emits edges i-(i+1)%n for i = 0..n-1 in increasing i.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges.
//   - Space: O(n) for the ID slice.

package builder

import "github.com/katalvlaran/modularity/core"

// Cycle returns a Constructor that builds an n-vertex ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.WeightedGraph[string], cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		ids := addVertices(g, cfg.idScheme(DefaultIDFn), n)
		for i := 0; i < n; i++ {
			addEdge(g, cfg, ids[i], ids[(i+1)%n])
		}

		return nil
	}
}
