// SPDX-License-Identifier: MIT
// Package core_test verifies WeightedGraph method-level contracts.
//
// Purpose:
//   - Lock in node/edge lifecycle semantics (idempotent upserts, total removals).
//   - Anchor deterministic ordering of Nodes/Edges/Neighbors.
//   - Pin weight and degree accounting, self-loops counted once.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modularity/core"
)

func TestWeightedGraph_Empty(t *testing.T) {
	g := core.NewWeightedGraph[string]()

	assert.Empty(t, g.Nodes())
	assert.Empty(t, g.Edges())
	assert.Zero(t, g.Weight())
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
}

func TestWeightedGraph_AddNode(t *testing.T) {
	g := core.NewWeightedGraph[string]()
	g.AddNode(NodeC)
	g.AddNode(NodeB)
	g.AddNode(NodeA)

	assert.Equal(t, []string{NodeA, NodeB, NodeC}, g.Nodes())
	assert.Empty(t, g.Edges())
}

func TestWeightedGraph_AddNodeIdempotent(t *testing.T) {
	g := core.NewWeightedGraph[string]()
	g.AddNode(NodeC)
	g.AddNode(NodeC)

	assert.Equal(t, []string{NodeC}, g.Nodes())
}

func TestWeightedGraph_NaNNodesIgnored(t *testing.T) {
	g := core.NewWeightedGraph[float64]()
	g.AddNode(math.NaN())
	g.AddNode(math.NaN())
	g.AddEdge(math.NaN(), 1)
	g.AddEdge(2, math.NaN())
	g.AddEdge(1, 2)

	assert.Equal(t, []float64{1, 2}, g.Nodes())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1.0, g.Degree(1))
}

// TestWeightedGraph_AddEdge covers edge insertion between existing, new and mixed endpoints.
func TestWeightedGraph_AddEdge(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *core.WeightedGraph[string])
	}{
		{
			name: "existing nodes",
			setup: func(g *core.WeightedGraph[string]) {
				g.AddNode(NodeA)
				g.AddNode(NodeB)
				g.AddEdge(NodeB, NodeA)
			},
		},
		{
			name: "new nodes",
			setup: func(g *core.WeightedGraph[string]) {
				g.AddEdge(NodeB, NodeA)
			},
		},
		{
			name: "new and existing nodes",
			setup: func(g *core.WeightedGraph[string]) {
				g.AddNode(NodeA)
				g.AddEdge(NodeB, NodeA)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewWeightedGraph[string]()
			tc.setup(g)

			assert.Equal(t, []string{NodeA, NodeB}, g.Nodes())
			assert.Equal(t, [][2]string{{NodeA, NodeB}}, edgePairs(g.Edges()))
		})
	}
}

func TestWeightedGraph_SelfLoop(t *testing.T) {
	g := core.NewWeightedGraph[string]()
	g.AddEdge(NodeA, NodeA)

	assert.Equal(t, []string{NodeA}, g.Nodes())
	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.True(t, edges[0].IsLoop())
	assert.Equal(t, [][2]string{{NodeA, NodeA}}, edgePairs(edges))
	assert.Equal(t, []string{NodeA}, g.Neighbors(NodeA))
}

func TestWeightedGraph_AddEdgeOverwrites(t *testing.T) {
	g := core.NewWeightedGraph[string]()
	g.AddEdge(NodeA, NodeB, core.WithWeight(2))
	g.AddEdge(NodeB, NodeA, core.WithWeight(5))

	assert.Equal(t, 5.0, g.EdgeWeight(NodeA, NodeB))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestWeightedGraph_ZeroWeightRemoves pins "zero weight ≡ no edge"; negative and NaN weights behave the same.
func TestWeightedGraph_ZeroWeightRemoves(t *testing.T) {
	for _, w := range []float64{0, -1, math.NaN()} {
		g := core.NewWeightedGraph[string]()
		g.AddEdge(NodeA, NodeB, core.WithWeight(3))
		g.AddEdge(NodeA, NodeB, core.WithWeight(w))

		assert.False(t, g.HasEdge(NodeA, NodeB), "weight %v must remove the edge", w)
		assert.Equal(t, []string{NodeA, NodeB}, g.Nodes(), "endpoints stay after weight %v", w)
		assert.Empty(t, g.Neighbors(NodeA))
	}

	g := core.NewWeightedGraph[string]()
	g.AddEdge(NodeC, NodeD, core.WithWeight(0))
	assert.True(t, g.HasNode(NodeC))
	assert.True(t, g.HasNode(NodeD))
	assert.Empty(t, g.Edges())
}

func TestWeightedGraph_RemoveEdge(t *testing.T) {
	g := core.NewWeightedGraph[string]()
	g.AddEdge(NodeB, NodeA)
	require.Equal(t, [][2]string{{NodeA, NodeB}}, edgePairs(g.Edges()))

	g.RemoveEdge(NodeB, NodeA)

	assert.Equal(t, []string{NodeA, NodeB}, g.Nodes())
	assert.Empty(t, g.Edges())
	assert.False(t, g.HasEdge(NodeA, NodeB))
}

func TestWeightedGraph_RemoveMissingEdge(t *testing.T) {
	g := core.NewWeightedGraph[string]()
	g.AddEdge(NodeC, NodeD)
	g.AddNode(NodeA)

	g.RemoveEdge(NodeB, NodeA)

	assert.Equal(t, []string{NodeA, NodeC, NodeD}, g.Nodes())
	assert.Equal(t, [][2]string{{NodeC, NodeD}}, edgePairs(g.Edges()))
}

func TestWeightedGraph_RemoveNode(t *testing.T) {
	g := core.NewWeightedGraph[string]()
	g.AddEdge(NodeB, NodeA)
	g.AddEdge(NodeB, NodeC)
	g.AddEdge(NodeA, NodeC)
	g.AddEdge(NodeB, NodeB)
	require.Equal(t, [][2]string{{NodeA, NodeB}, {NodeA, NodeC}, {NodeB, NodeB}, {NodeB, NodeC}}, edgePairs(g.Edges()))

	g.RemoveNode(NodeB)

	assert.Equal(t, []string{NodeA, NodeC}, g.Nodes())
	assert.Equal(t, [][2]string{{NodeA, NodeC}}, edgePairs(g.Edges()))
	assert.False(t, g.HasNode(NodeB))
	assert.Equal(t, []string{NodeC}, g.Neighbors(NodeA))
}

func TestWeightedGraph_RemoveMissingNode(t *testing.T) {
	g := newWeightedPath()
	before := g.Edges()

	g.RemoveNode(NodeX)

	assert.Equal(t, before, g.Edges())
	assert.Equal(t, []string{NodeA, NodeB, NodeC, NodeD}, g.Nodes())
}

func TestWeightedGraph_HasNode(t *testing.T) {
	g := core.NewWeightedGraph[string]()
	g.AddNode(NodeA)

	assert.True(t, g.HasNode(NodeA))
	assert.False(t, g.HasNode(NodeB))
}

func TestWeightedGraph_HasEdgeOrderAgnostic(t *testing.T) {
	g := core.NewWeightedGraph[string]()
	g.AddEdge(NodeA, NodeB)

	assert.True(t, g.HasEdge(NodeA, NodeB))
	assert.True(t, g.HasEdge(NodeB, NodeA))
	assert.False(t, g.HasEdge(NodeA, NodeC))
}

func TestWeightedGraph_Neighbors(t *testing.T) {
	g := core.NewWeightedGraph[string]()
	g.AddEdge(NodeA, NodeB)
	g.AddEdge(NodeB, NodeC)
	g.AddEdge(NodeA, NodeF)

	assert.Equal(t, []string{NodeB, NodeF}, g.Neighbors(NodeA))
	assert.Equal(t, []string{NodeA, NodeC}, g.Neighbors(NodeB))
}

func TestWeightedGraph_NeighborsNone(t *testing.T) {
	g := core.NewWeightedGraph[string]()
	g.AddNode(NodeA)
	g.AddEdge(NodeB, NodeC)

	assert.Empty(t, g.Neighbors(NodeA))
	assert.NotNil(t, g.Neighbors(NodeA))
	assert.Empty(t, g.Neighbors(NodeX))
}

func TestWeightedGraph_EdgeWeight(t *testing.T) {
	t.Run("default weight is 1", func(t *testing.T) {
		g := core.NewWeightedGraph[string]()
		g.AddEdge(NodeB, NodeC)
		assert.Equal(t, 1.0, g.EdgeWeight(NodeC, NodeB))
		assert.Equal(t, 1.0, g.EdgeWeight(NodeB, NodeC))
	})
	t.Run("missing edge between missing nodes", func(t *testing.T) {
		g := core.NewWeightedGraph[string]()
		assert.Zero(t, g.EdgeWeight(NodeC, NodeB))
	})
	t.Run("missing edge between existing nodes", func(t *testing.T) {
		g := core.NewWeightedGraph[string]()
		g.AddNode(NodeC)
		g.AddNode(NodeB)
		assert.Zero(t, g.EdgeWeight(NodeC, NodeB))
	})
	t.Run("weighted edge", func(t *testing.T) {
		g := core.NewWeightedGraph[string]()
		g.AddEdge(NodeC, NodeB, core.WithWeight(0.4))
		assert.Equal(t, 0.4, g.EdgeWeight(NodeC, NodeB))
		assert.Equal(t, 0.4, g.EdgeWeight(NodeB, NodeC))
	})
}

func TestWeightedGraph_Weight(t *testing.T) {
	g := newWeightedPath()
	assert.InDelta(t, 2.0, g.Weight(), floatTolerance)

	// A fresh edge of weight w raises Weight() by exactly w.
	before := g.Weight()
	g.AddEdge(NodeE, NodeF, core.WithWeight(0.25))
	assert.InDelta(t, before+0.25, g.Weight(), floatTolerance)

	// A self-loop counts once.
	g.AddEdge(NodeX, NodeX, core.WithWeight(3))
	assert.InDelta(t, before+3.25, g.Weight(), floatTolerance)
}

func TestWeightedGraph_Degree(t *testing.T) {
	t.Run("isolated node", func(t *testing.T) {
		g := core.NewWeightedGraph[string]()
		g.AddNode(NodeC)
		assert.Zero(t, g.Degree(NodeC))
	})
	t.Run("missing node", func(t *testing.T) {
		g := core.NewWeightedGraph[string]()
		assert.Zero(t, g.Degree(NodeC))
	})
	t.Run("sum of incident weights", func(t *testing.T) {
		g := newWeightedPath()
		assert.InDelta(t, 1.4, g.Degree(NodeC), floatTolerance)
		assert.InDelta(t, 1.0, g.Degree(NodeB), floatTolerance)
	})
	t.Run("self-loop counted once", func(t *testing.T) {
		g := core.NewWeightedGraph[string]()
		g.AddEdge(NodeA, NodeB, core.WithWeight(0.4))
		g.AddEdge(NodeA, NodeA)
		assert.InDelta(t, 1.4, g.Degree(NodeA), floatTolerance)
	})
}

func TestWeightedGraph_EdgesSorted(t *testing.T) {
	g := core.NewWeightedGraph[int]()
	g.AddEdge(9, 1)
	g.AddEdge(3, 2)
	g.AddEdge(1, 2)
	g.AddEdge(5, 5)

	got := g.Edges()
	require.Len(t, got, 4)
	assert.Equal(t, []core.Edge[int]{
		{From: 1, To: 2, Weight: 1},
		{From: 1, To: 9, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 5, To: 5, Weight: 1},
	}, got)
	assert.Equal(t, []int{1, 2, 3, 5, 9}, g.Nodes())
}

// TestWeightedGraph_FreshSlices ensures returned slices never alias internal state.
func TestWeightedGraph_FreshSlices(t *testing.T) {
	g := newWeightedPath()

	nodes := g.Nodes()
	nodes[0] = NodeX
	assert.Equal(t, NodeA, g.Nodes()[0])

	edges := g.Edges()
	edges[0].Weight = 100
	assert.Equal(t, 0.6, g.EdgeWeight(NodeA, NodeB))

	nbs := g.Neighbors(NodeB)
	nbs[0] = NodeX
	assert.Equal(t, []string{NodeA, NodeC}, g.Neighbors(NodeB))
}

func TestWeightedGraph_Clone(t *testing.T) {
	g := newWeightedPath()
	g.AddEdge(NodeA, NodeA, core.WithWeight(2))

	c := g.Clone()
	assert.Equal(t, g.Nodes(), c.Nodes())
	assert.Equal(t, g.Edges(), c.Edges())

	c.RemoveNode(NodeA)
	c.AddEdge(NodeB, NodeD, core.WithWeight(7))

	assert.True(t, g.HasNode(NodeA))
	assert.True(t, g.HasEdge(NodeA, NodeA))
	assert.False(t, g.HasEdge(NodeB, NodeD))
	assert.Equal(t, []string{NodeA, NodeC}, g.Neighbors(NodeB))
	assert.Equal(t, []string{NodeC, NodeD}, c.Neighbors(NodeB))
}

func TestWeightedGraph_Stats(t *testing.T) {
	g := newWeightedPath()
	g.AddEdge(NodeD, NodeD, core.WithWeight(0.5))
	g.AddNode(NodeX)

	stats := g.Stats()
	assert.Equal(t, 5, stats.NodeCount)
	assert.Equal(t, 4, stats.EdgeCount)
	assert.Equal(t, 1, stats.LoopCount)
	assert.InDelta(t, g.Weight(), stats.TotalWeight, floatTolerance)
}
