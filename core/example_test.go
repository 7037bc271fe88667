// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/modularity/core"
)

// ExampleWeightedGraph demonstrates basic creation, mutation, and queries.
func ExampleWeightedGraph() {
	// 1) Create an empty graph keyed by strings:
	g := core.NewWeightedGraph[string]()

	// 2) Add edges (auto-adds nodes A, B, C):
	g.AddEdge("A", "B")
	g.AddEdge("B", "C", core.WithWeight(0.5))
	g.AddEdge("C", "A", core.WithWeight(2))

	// 3) Inspect nodes and edges:
	fmt.Println("Nodes:", g.Nodes())
	fmt.Println("Edge B-A exists?", g.HasEdge("B", "A"))
	fmt.Println("Degree(C):", g.Degree("C"))
	fmt.Println("Weight:", g.Weight())

	// 4) Remove a node and its edges:
	g.RemoveNode("B")
	fmt.Println("After removing B:", g.Nodes(), len(g.Edges()))

	// Output:
	// Nodes: [A B C]
	// Edge B-A exists? true
	// Degree(C): 2.5
	// Weight: 3.5
	// After removing B: [A C] 1
}

// ExampleWeightedGraph_Edges shows canonical, de-duplicated edge enumeration.
func ExampleWeightedGraph_Edges() {
	g := core.NewWeightedGraph[int]()
	g.AddEdge(3, 1)
	g.AddEdge(1, 3, core.WithWeight(4)) // same edge, overwritten
	g.AddEdge(2, 2)                     // self-loop, listed once

	for _, e := range g.Edges() {
		fmt.Println(e.From, e.To, e.Weight)
	}

	// Output:
	// 1 3 4
	// 2 2 1
}
