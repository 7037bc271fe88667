// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"github.com/katalvlaran/modularity/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeE = "E"
	NodeF = "F"
	NodeX = "X"
)

// floatTolerance bounds accumulated float error in weight sums.
const floatTolerance = 1e-9

// newWeightedPath RETURNS the graph
//
//	A ─0.6─ B ─0.4─ C ─1─ D
//
// which is the weighted fixture used by the weight and degree tests.
func newWeightedPath() *core.WeightedGraph[string] {
	g := core.NewWeightedGraph[string]()
	g.AddEdge(NodeC, NodeB, core.WithWeight(0.4))
	g.AddEdge(NodeC, NodeD)
	g.AddEdge(NodeA, NodeB, core.WithWeight(0.6))

	return g
}

// edgePairs flattens Edges() into [from, to] pairs for compact assertions.
func edgePairs(edges []core.Edge[string]) [][2]string {
	out := make([][2]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, [2]string{e.From, e.To})
	}

	return out
}
