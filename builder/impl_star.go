// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// impl_star.go - implementation of Star(n).
//
// Contract:
//   - n ≥ MinStarNodes (else ErrTooFewVertices).
//   - Hub vertex has the fixed ID CenterVertexID.
//   - Leaves use id(1..n-1) in ascending order; spokes Center-leaf are
//     emitted in the same order.
//
// Complexity: O(n) vertices + O(n-1) edges; O(1) extra space.

package builder

import "github.com/katalvlaran/modularity/core"

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.WeightedGraph[string], cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		g.AddNode(CenterVertexID)
		idFn := cfg.idScheme(DefaultIDFn)
		for i := 1; i < n; i++ {
			addEdge(g, cfg, CenterVertexID, idFn(i))
		}

		return nil
	}
}
