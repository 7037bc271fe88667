// SPDX-License-Identifier: MIT

// Package builder assembles core.WeightedGraph[string] fixtures and random
// networks from composable, deterministic constructors.
//
// The package offers:
//
//   - An orchestrator, BuildGraph(bopts, cons...), and Apply for an existing graph.
//   - Constructors: RandomNetwork(minN, maxN, p), Pairs(n), Complete(n),
//     Cycle(n), Star(n).
//   - Configuration via BuilderOption: WithSeed, WithRand, WithIDScheme,
//     WithWeightFn and their shorthands.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     PrefixedIDFn, NetworkIDFn.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn,
//     ConstantWeightFn, UniformWeightFn, ExponentialWeightFn.
//   - Starting partitions: SingleCommunity and Singletons.
//
// Guarantees:
//
//   - Same options, seed and constructor order yield identical graphs.
//   - Option constructors panic on nil functions or RNGs; constructors return
//     wrapped sentinels (ErrTooFewVertices, ErrInvalidRange,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed).
//   - Weight generators yield strictly positive weights.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(1)},
//		builder.RandomNetwork(100, 200, 0.9),
//	)
//	if err != nil {
//		return err
//	}
//	p := builder.SingleCommunity(g)
//	q := community.Evaluate(g, p)
package builder
