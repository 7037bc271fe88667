// SPDX-License-Identifier: MIT

// Package community scores a community partition of an undirected weighted
// graph with Newman-style weighted modularity.
//
// Given total edge weight m, node degrees k_i and edge weights A_ij, the
// modularity of partition c is
//
//	Q = 1/(2m) · Σ_{i≠j, c(i)=c(j)} ( A_ij − k_i·k_j / (2m) )
//
// where the sum runs over ordered pairs of distinct nodes assigned to the same
// community. Each unordered pair therefore contributes
// twice, which the outer 1/(2m) normalises. Self-pairs (i = j) never
// contribute; a self-loop only enters through the degrees.
//
// Edge cases:
//
//   - m == 0 (empty graph, isolated nodes only): Q = 0.
//   - Nodes missing from the partition belong to no community and match nothing.
//   - Partition entries for nodes outside the graph are ignored.
//   - The result is not clamped to [−1, 1].
//
// The evaluator reads the graph only through the Graph interface
// (Nodes, EdgeWeight, Degree, Weight), which *core.WeightedGraph satisfies.
// Evaluate and Breakdown never mutate their inputs and never fail, so any
// number of evaluations may run concurrently against inputs nobody mutates.
//
// Complexity: O(V²) pair checks plus one Degree call per node.
package community
