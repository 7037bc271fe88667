// SPDX-License-Identifier: MIT

// Package modularity is an in-memory toolkit for asking one question about a
// weighted graph: how well does a given split of its nodes into communities
// follow the edges?
//
// 🚀 What is in the box?
//
//	• core/      - WeightedGraph: undirected, weighted, self-loops allowed,
//	               symmetric by construction; callers serialize writes
//	• community/ - Partition, Evaluate (Newman modularity), Breakdown and
//	               Communities over any read-only Graph
//	• builder/   - deterministic constructors (Cycle, Star, Complete, Pairs)
//	               and the seeded RandomNetwork generator
//	• cmd/modularity - CLI: one-shot "score" and the interactive "session"
//	• examples/  - a runnable walk-through on a small meeting network
//
// ✨ Guarantees
//
//   - Symmetry: EdgeWeight(a, b) == EdgeWeight(b, a) for every pair.
//   - Determinism: identical inputs give bit-identical modularity values.
//   - Zero-weight graphs score 0 instead of dividing by zero.
//
// Quick ASCII example:
//
//	    A───B       X───Y
//	     \ /         \ /
//	      C───────────Z
//
//	two triangles joined by one bridge; splitting them apart scores high.
//
//	go get github.com/katalvlaran/modularity
package modularity
