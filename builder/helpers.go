// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// helpers.go - vertex and edge emission shared by constructors.

package builder

import "github.com/katalvlaran/modularity/core"

// addVertices inserts idFn(0..n-1) into g and returns the IDs in index
// order. Re-adding an existing vertex is a no-op in core.WeightedGraph.
// Complexity: O(n) time and space.
func addVertices(g *core.WeightedGraph[string], idFn IDFn, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		g.AddNode(ids[i])
	}

	return ids
}

// addEdge connects u and v with the next configured weight.
func addEdge(g *core.WeightedGraph[string], cfg builderConfig, u, v string) {
	g.AddEdge(u, v, core.WithWeight(cfg.nextWeight()))
}
