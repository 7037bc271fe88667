// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// impl_complete.go - implementation of Complete(n).
//
// Contract:
//   - n ≥ MinCompleteNodes (else ErrTooFewVertices).
//   - Adds vertices in ascending index order (0..n-1).
//   - Emits each unordered pair {i,j} with i<j exactly once, in
//     lexicographic (i,j) order; weights are drawn in that order.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) edges.
//   - Space: O(n) for the ID slice.

package builder

import "github.com/katalvlaran/modularity/core"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.WeightedGraph[string], cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		ids := addVertices(g, cfg.idScheme(DefaultIDFn), n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				addEdge(g, cfg, ids[i], ids[j])
			}
		}

		return nil
	}
}
