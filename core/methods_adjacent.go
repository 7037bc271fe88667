// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood and weight aggregates: Neighbors, Degree, Weight.
// Determinism:
//   - Neighbors() returns distinct IDs sorted asc.
//   - Degree() and Weight() sum in sorted order, so repeated calls on an
//     unchanged graph return bit-identical floats.
// Loop policy:
//   - A self-loop makes id its own neighbor and contributes its weight once to Degree(id).

package core

// Neighbors returns the distinct nodes sharing an edge with id, sorted
// ascending. A node with a self-loop lists itself. Unknown or isolated nodes
// yield an empty slice.
//
// Complexity: O(d log d).
func (g *WeightedGraph[N]) Neighbors(id N) []N {
	return g.edges.Adjacent(id)
}

// Degree returns the sum of EdgeWeight(id, n) over Neighbors(id): the total
// weight of edges incident to id, a self-loop counted once. Returns 0 for
// unknown or isolated nodes.
//
// Implementation:
//   - Stage 1: Enumerate neighbors in sorted order.
//   - Stage 2: Accumulate the stored weight of each {id, n}.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *WeightedGraph[N]) Degree(id N) float64 {
	var sum float64
	for _, n := range g.edges.Adjacent(id) {
		sum += g.EdgeWeight(id, n)
	}

	return sum
}

// Weight returns the total graph weight m: the sum of EdgeWeight over
// Edges(), each undirected edge (and each self-loop) counted once.
//
// Complexity: O(E log E).
func (g *WeightedGraph[N]) Weight() float64 {
	var m float64
	for _, e := range g.Edges() {
		m += e.Weight
	}

	return m
}
