// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph read contract and the Communities/Breakdown result types.

package community

import "golang.org/x/exp/constraints"

// Graph is the read-only query surface the evaluator needs.
// *core.WeightedGraph[N] satisfies it.
type Graph[N constraints.Ordered] interface {
	// Nodes returns every node, sorted ascending.
	Nodes() []N
	// EdgeWeight returns the weight of {a, b}, or 0 when absent.
	EdgeWeight(a, b N) float64
	// Degree returns the summed weight of edges incident to n.
	Degree(n N) float64
	// Weight returns the total edge weight, each edge counted once.
	Weight() float64
}

// Group is one community and its members in the graph, as returned by Communities.
type Group[N constraints.Ordered, C comparable] struct {
	Community C
	Members   []N // sorted ascending
}

// Score is one community's share of a Breakdown.
type Score[N constraints.Ordered, C comparable] struct {
	// Community is the label shared by Members.
	Community C

	// Members are the graph nodes assigned to Community, sorted ascending.
	Members []N

	// InternalWeight sums the weight of edges with both endpoints in Members,
	// each edge once. Self-loops are included.
	InternalWeight float64

	// TotalDegree sums Degree over Members.
	TotalDegree float64

	// Contribution is this community's term of the modularity sum, already
	// divided by 2m. Contributions over all scores add up to Result.Modularity.
	Contribution float64
}

// Result is the per-community decomposition returned by Breakdown.
type Result[N constraints.Ordered, C comparable] struct {
	// Modularity equals Evaluate(g, p) for the same inputs.
	Modularity float64

	// TotalWeight is m = g.Weight().
	TotalWeight float64

	// Communities holds one Score per community with at least one member in
	// the graph, ordered by each community's smallest member.
	Communities []Score[N, C]

	// Unassigned lists graph nodes absent from the partition, sorted ascending.
	Unassigned []N
}
