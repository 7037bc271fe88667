// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// impl_pairs.go - implementation of Pairs(n).
//
// Contract:
//   - n ≥ MinPairs (else ErrTooFewVertices).
//   - For i = 0..n-1 emits one edge id(i)+"a" - id(i)+"b", where id is
//     WithIDScheme or DefaultIDFn. The n edges share no endpoint.
//
// Complexity: O(n) vertices and edges.

package builder

import "github.com/katalvlaran/modularity/core"

// Pairs returns a Constructor that builds n disjoint edges, the canonical
// fixture for modularity extremes: one community per pair scores close to 1,
// a single community close to 0.
func Pairs(n int) Constructor {
	return func(g *core.WeightedGraph[string], cfg builderConfig) error {
		if err := validateMin(MethodPairs, "n", n, MinPairs); err != nil {
			return err
		}

		idFn := cfg.idScheme(DefaultIDFn)
		for i := 0; i < n; i++ {
			id := idFn(i)
			addEdge(g, cfg, id+PairLeftSuffix, id+PairRightSuffix)
		}

		return nil
	}
}
