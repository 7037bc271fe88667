// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeWeight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns each undirected edge once, From <= To, sorted by (From, To) asc.
// Invariants:
//   - Stored weights are strictly positive; a non-positive weight means "no edge".
//   - Endpoints of every stored edge are members of the node set.

package core

// AddEdge stores the undirected edge {a, b}, overwriting any previous weight
// for the pair. The weight is DefaultEdgeWeight unless WithWeight is given.
//
// Steps:
//  1. Resolve options (default weight 1).
//  2. Ensure both endpoints are nodes.
//  3. If the weight is not > 0, delete {a, b} and stop (zero weight ≡ no edge).
//  4. Otherwise store the weight under the canonical pair.
//
// Self-loops (a == b) are legal and stored once. A NaN endpoint makes the
// call a no-op.
// Complexity: O(1) amortized.
func (g *WeightedGraph[N]) AddEdge(a, b N, opts ...EdgeOption) {
	if isNaN(a) || isNaN(b) {
		return
	}
	cfg := edgeConfig{weight: DefaultEdgeWeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	g.AddNode(a)
	g.AddNode(b)

	// !(w > 0) also catches NaN.
	if !(cfg.weight > 0) {
		g.edges.Delete(a, b)
		return
	}
	g.edges.Set(a, b, cfg.weight)
}

// RemoveEdge deletes the edge {a, b} in both directions. Absent edges are a no-op.
// Endpoints stay in the node set.
// Complexity: O(1).
func (g *WeightedGraph[N]) RemoveEdge(a, b N) {
	g.edges.Delete(a, b)
}

// HasEdge reports whether {a, b} is stored. HasEdge(a, b) == HasEdge(b, a).
// Complexity: O(1).
func (g *WeightedGraph[N]) HasEdge(a, b N) bool {
	return g.edges.Has(a, b)
}

// EdgeWeight returns the weight of {a, b}, or 0 when there is no such edge
// (including when either node is unknown).
// Complexity: O(1).
func (g *WeightedGraph[N]) EdgeWeight(a, b N) float64 {
	w, ok := g.edges.Get(a, b)
	if !ok {
		return 0
	}

	return w
}

// Edges returns every undirected edge exactly once, self-loops included.
//
// Determinism:
//   - Each Edge has From <= To; the slice is sorted by (From, To) ascending.
//
// Complexity: O(E log E) time, O(E) space for the fresh slice.
func (g *WeightedGraph[N]) Edges() []Edge[N] {
	keys := g.edges.Keys()
	out := make([]Edge[N], 0, len(keys))
	for _, key := range keys {
		w, _ := g.edges.Get(key.Lo, key.Hi)
		out = append(out, Edge[N]{From: key.Lo, To: key.Hi, Weight: w})
	}

	return out
}

// EdgeCount returns |E|, counting each undirected edge once.
func (g *WeightedGraph[N]) EdgeCount() int { return g.edges.Len() }
