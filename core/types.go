// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, EdgeOption, WeightedGraph, GraphStats and the NewWeightedGraph constructor.

package core

import "golang.org/x/exp/constraints"

// DefaultEdgeWeight is the weight AddEdge stores when no WithWeight option is given.
const DefaultEdgeWeight = 1.0

// Edge is one undirected edge as reported by Edges().
//
// From and To are canonicalised so that From <= To; a self-loop has From == To.
type Edge[N constraints.Ordered] struct {
	// From is the smaller endpoint.
	From N

	// To is the larger endpoint (equal to From for a self-loop).
	To N

	// Weight is the stored, strictly positive edge weight.
	Weight float64
}

// IsLoop reports whether the edge connects a node to itself.
func (e Edge[N]) IsLoop() bool { return e.From == e.To }

// edgeConfig collects per-call AddEdge settings.
type edgeConfig struct {
	weight float64
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

// WithWeight sets the weight stored for the edge.
// Non-positive (and NaN) weights are treated as "no edge": AddEdge then
// removes any existing edge between the pair instead of storing it.
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) { c.weight = w }
}

// WeightedGraph is an undirected weighted graph over ordered node identifiers.
//
// nodes is the node catalog; edges is the symmetric weight store and the only
// place an edge's weight is recorded. Invariant: every key of edges names two
// members of nodes. For float node types, NaN IDs are ignored by AddNode and
// AddEdge.
type WeightedGraph[N constraints.Ordered] struct {
	nodes map[N]struct{}
	edges *SymmetricLookup[N, float64]
}

// GraphStats is a read-only summary of a WeightedGraph.
type GraphStats struct {
	NodeCount   int     // |V|
	EdgeCount   int     // |E|, each undirected edge once
	LoopCount   int     // self-loops among EdgeCount
	TotalWeight float64 // same value as Weight()
}

// NewWeightedGraph returns an empty graph.
// Complexity: O(1).
func NewWeightedGraph[N constraints.Ordered]() *WeightedGraph[N] {
	return &WeightedGraph[N]{
		nodes: make(map[N]struct{}),
		edges: NewSymmetricLookup[N, float64](),
	}
}
