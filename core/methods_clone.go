// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Snapshots and summaries: Clone, Stats.

package core

// Clone returns a deep copy of the graph: node set and edge store.
// Mutating either graph afterwards never affects the other, which makes Clone
// the copy-on-read snapshot to hand to concurrent evaluators.
//
// Complexity: O(V+E).
func (g *WeightedGraph[N]) Clone() *WeightedGraph[N] {
	nodes := make(map[N]struct{}, len(g.nodes))
	for id := range g.nodes {
		nodes[id] = struct{}{}
	}

	return &WeightedGraph[N]{
		nodes: nodes,
		edges: g.edges.Clone(),
	}
}

// Stats computes node, edge and self-loop counts plus the total weight in one
// pass over Edges().
// Complexity: O(E log E).
func (g *WeightedGraph[N]) Stats() GraphStats {
	stats := GraphStats{NodeCount: len(g.nodes)}
	for _, e := range g.Edges() {
		stats.EdgeCount++
		if e.IsLoop() {
			stats.LoopCount++
		}
		stats.TotalWeight += e.Weight
	}

	return stats
}
