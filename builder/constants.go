// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// constants.go - shared method tags, fixed IDs and parameter minima.

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildGraph tags errors raised by the orchestrator itself.
	MethodBuildGraph = "BuildGraph"
	// MethodRandomNetwork is the canonical name for the RandomNetwork constructor.
	MethodRandomNetwork = "RandomNetwork"
	// MethodPairs is the canonical name for the Pairs constructor.
	MethodPairs = "Pairs"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
)

//-----------------------------------------------------------------------------
// Vertex ID Defaults
//-----------------------------------------------------------------------------

// CenterVertexID is the identifier of the hub vertex in Star.
const CenterVertexID = "Center"

// NetworkIDPrefix prefixes RandomNetwork node IDs: "n1", "n2", ...
const NetworkIDPrefix = "n"

// Pair endpoint suffixes: Pairs(n) connects "<id>a" with "<id>b".
const (
	PairLeftSuffix  = "a"
	PairRightSuffix = "b"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest ring that needs neither loops nor repeated pairs.
const MinCycleNodes = 3

// MinStarNodes is one center plus at least one leaf.
const MinStarNodes = 2

// MinCompleteNodes admits K_1, a single isolated vertex.
const MinCompleteNodes = 1

// MinPairs admits a single edge.
const MinPairs = 1

// MinNetworkNodes is the smallest random network: every node must have at
// least one other node to pick as its neighbor.
const MinNetworkNodes = 2

//-----------------------------------------------------------------------------
// RandomNetwork Defaults and Probability Bounds
//-----------------------------------------------------------------------------

// Defaults for RandomNetwork as used by the CLI when no config is given.
const (
	DefaultNetworkMinNodes        = 100
	DefaultNetworkMaxNodes        = 200
	DefaultNetworkEdgeProbability = 0.9
)

// MinProbability and MaxProbability bound edge probabilities, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
