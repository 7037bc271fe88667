// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/modularity/builder"
	"github.com/katalvlaran/modularity/community"
)

// Disjoint pairs score near 1 when each pair is its own community and near 0
// when everything shares one.
func ExamplePairs() {
	g, err := builder.BuildGraph(nil, builder.Pairs(50))
	if err != nil {
		fmt.Println(err)
		return
	}

	perPair := community.Partition[string, int]{}
	for i, n := range g.Nodes() {
		perPair[n] = i / 2
	}

	fmt.Printf("%.2f\n", community.Evaluate(g, perPair))
	fmt.Printf("%.2f\n", community.Evaluate(g, builder.SingleCommunity(g)))
	// Output:
	// 0.99
	// 0.01
}

func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(0.5)},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Nodes(), g.EdgeCount(), g.Weight())
	// Output:
	// [A B C D] 4 2
}

func ExampleRandomNetwork() {
	_, err := builder.BuildGraph(nil, builder.RandomNetwork(100, 200, 0.9))
	fmt.Println(err)
	// Output:
	// BuildGraph: RandomNetwork: builder: rng is required
}
