// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// impl_random_network.go - implementation of RandomNetwork(minN, maxN, p).
//
// Model:
//   - Draw the node count N uniformly from [minN, maxN].
//   - For each node i in index order, with probability p, connect i to one
//     other node chosen uniformly among the remaining N-1.
//   - Every node has at most one outgoing trial, so the graph has at most N
//     edges; a pair picked from both sides is stored once (last weight wins).
//
// Contract:
//   - minN ≥ MinNetworkNodes (else ErrTooFewVertices).
//   - minN ≤ maxN (else ErrInvalidRange).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng non-nil (else ErrNeedRandSource), even for p ∈ {0,1}: the node
//     count and neighbor choice are random regardless of p.
//   - IDs come from WithIDScheme when set, else NetworkIDFn ("n1".."nN").
//
// Complexity:
//   - Time: O(N) vertices + O(N) trials.
//   - Space: O(N) for the ID slice.
//
// Determinism:
//   - RNG draws happen in a fixed order: N, then per node one Float64 trial
//     and, on success, one Intn neighbor pick followed by one weight draw.

package builder

import (
	"fmt"

	"github.com/katalvlaran/modularity/core"
)

// RandomNetwork returns a Constructor that samples a sparse random network
// whose size is uniform in [minN, maxN] and where each node gains, with
// probability p, an edge to a random other node.
func RandomNetwork(minN, maxN int, p float64) Constructor {
	return func(g *core.WeightedGraph[string], cfg builderConfig) error {
		if err := validateMin(MethodRandomNetwork, "minN", minN, MinNetworkNodes); err != nil {
			return err
		}
		if err := validateRange(MethodRandomNetwork, minN, maxN); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomNetwork, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomNetwork, ErrNeedRandSource)
		}

		n := minN + cfg.rng.Intn(maxN-minN+1)
		ids := addVertices(g, cfg.idScheme(NetworkIDFn), n)

		for i, u := range ids {
			// Float64 is in [0,1): p == 0 never fires, p == 1 always does.
			if cfg.rng.Float64() >= p {
				continue
			}
			j := cfg.rng.Intn(n - 1)
			if j >= i {
				j++ // skip i itself
			}
			addEdge(g, cfg, u, ids[j])
		}

		return nil
	}
}
