// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs sorted ascending.
//
// Totality:
//   - AddNode is idempotent; RemoveNode on an unknown node is a no-op.
//   - NaN IDs (float node types) are ignored: a NaN map key never matches
//     itself, so it could be neither found nor deduplicated.

package core

import "slices"

// AddNode inserts id into the node set if it is not already present.
//
// Implementation:
//   - Stage 1: Check catalog membership.
//   - Stage 2: Register the node when missing.
//
// Behavior highlights:
//   - Idempotent: adding an existing node changes nothing.
//   - A NaN id is ignored.
//   - Adds no edges.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *WeightedGraph[N]) AddNode(id N) {
	if isNaN(id) {
		return
	}
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
}

// HasNode reports whether id is in the node set.
// Complexity: O(1).
func (g *WeightedGraph[N]) HasNode(id N) bool {
	_, ok := g.nodes[id]

	return ok
}

// RemoveNode deletes every edge incident to id (its self-loop included) and
// then removes id from the node set.
//
// Implementation:
//   - Stage 1: Return early when id is unknown.
//   - Stage 2: Delete {id, n} for every adjacent n; the lookup drops both directions.
//   - Stage 3: Remove id from the catalog.
//
// Behavior highlights:
//   - No-op for an unknown id.
//   - After return, Edges() holds no pair involving id.
//
// Complexity:
//   - Time O(d log d) where d = number of distinct neighbors, Space O(d).
func (g *WeightedGraph[N]) RemoveNode(id N) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	for _, n := range g.edges.Adjacent(id) {
		g.edges.Delete(id, n)
	}
	delete(g.nodes, id)
}

// Nodes returns all node IDs sorted ascending, in a freshly allocated slice.
// Complexity: O(V log V).
func (g *WeightedGraph[N]) Nodes() []N {
	out := make([]N, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// isNaN reports whether id is unequal to itself, which only a float NaN is.
func isNaN[N comparable](id N) bool {
	return id != id
}

// NodeCount returns |V|.
func (g *WeightedGraph[N]) NodeCount() int { return len(g.nodes) }
