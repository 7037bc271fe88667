// SPDX-License-Identifier: MIT

// Package core provides WeightedGraph, an in-memory undirected weighted graph
// keyed by ordered node identifiers, and SymmetricLookup, the order-agnostic
// pair map that backs its edge storage.
//
// The graph G = (V,E) has the following shape:
//
//   - Undirected edges only; (a,b) and (b,a) name the same edge.
//   - One edge per unordered pair (no multi-edges); AddEdge is an upsert.
//   - Self-loops are permitted and count once toward their node's degree.
//   - Weights are float64; a weight of 0 (or any non-positive value) means
//     "no edge", so AddEdge(a, b, WithWeight(0)) removes the pair.
//   - Every edge endpoint is a node: AddEdge inserts missing endpoints.
//
// Why a symmetric lookup?
//
//	Edge weights live in a single map keyed by the canonicalised pair
//	{min(a,b), max(a,b)}. There is exactly one stored weight per edge, so the
//	two directions can never drift apart.
//
// Totality:
//
//	Every method is total. Queries on unknown nodes or edges return false, 0
//	or an empty slice; mutations on unknown nodes or edges are no-ops. No
//	method returns an error or panics.
//
// Determinism:
//
//	Nodes(), Edges() and Neighbors() return freshly allocated slices sorted
//	ascending (Edges by (From, To) with From <= To), so enumeration is
//	reproducible across runs regardless of map iteration order.
//
// Concurrency:
//
//	WeightedGraph carries no internal locks. A single writer, or external
//	exclusion, is required for mutation; concurrent readers are safe while no
//	writer is active. Clone() gives an independent snapshot for readers that
//	must not observe later mutations.
//
// Core methods:
//
//	// Nodes
//	AddNode(id)                    // O(1), idempotent
//	RemoveNode(id)                 // O(deg(id))
//	HasNode(id) bool               // O(1)
//	Nodes() []N                    // O(V log V)
//
//	// Edges
//	AddEdge(a, b, opts...)         // O(1), default weight 1
//	RemoveEdge(a, b)               // O(1)
//	HasEdge(a, b) bool             // O(1)
//	EdgeWeight(a, b) float64       // O(1)
//	Edges() []Edge[N]              // O(E log E)
//
//	// Aggregates
//	Neighbors(id) []N              // O(d log d)
//	Degree(id) float64             // O(d log d)
//	Weight() float64               // O(E log E)
//	Stats() GraphStats             // O(E log E)
//	Clone() *WeightedGraph[N]      // O(V+E)
//
// Quick example:
//
//	g := core.NewWeightedGraph[string]()
//	g.AddEdge("A", "B")                       // weight 1
//	g.AddEdge("B", "C", core.WithWeight(0.4)) // weight 0.4
//	g.Degree("B")                             // 1.4
//	g.Weight()                                // 1.4
package core
