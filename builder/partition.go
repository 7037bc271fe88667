// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// partition.go - starting partitions over a built graph.

package builder

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/modularity/community"
	"github.com/katalvlaran/modularity/core"
)

// SingleCommunity assigns every node of g to community 0, the starting point
// of an interactive session.
// Complexity: O(V log V).
func SingleCommunity[N constraints.Ordered](g *core.WeightedGraph[N]) community.Partition[N, int] {
	nodes := g.Nodes()
	p := make(community.Partition[N, int], len(nodes))
	for _, n := range nodes {
		p[n] = 0
	}

	return p
}

// Singletons assigns each node its own community, numbered by the node's
// position in g.Nodes().
// Complexity: O(V log V).
func Singletons[N constraints.Ordered](g *core.WeightedGraph[N]) community.Partition[N, int] {
	nodes := g.Nodes()
	p := make(community.Partition[N, int], len(nodes))
	for i, n := range nodes {
		p[n] = i
	}

	return p
}
