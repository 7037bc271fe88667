// SPDX-License-Identifier: MIT
//
// File: partition.go
// Role: Partition mutation helpers and the community-cycling rule used by interactive sessions.

package community

// Partition maps a node to its community label. It need not cover every node:
// unassigned nodes belong to no community.
type Partition[N comparable, C comparable] map[N]C

// Assign puts n into community c, replacing any previous assignment.
func (p Partition[N, C]) Assign(n N, c C) { p[n] = c }

// Unassign removes n from its community. No-op when n is unassigned.
func (p Partition[N, C]) Unassign(n N) { delete(p, n) }

// Lookup returns n's community and whether n is assigned.
func (p Partition[N, C]) Lookup(n N) (C, bool) {
	c, ok := p[n]

	return c, ok
}

// Clone returns an independent copy.
func (p Partition[N, C]) Clone() Partition[N, C] {
	out := make(Partition[N, C], len(p))
	for n, c := range p {
		out[n] = c
	}

	return out
}

// CycleCommunity moves n to the next of k integer communities 0..k-1,
// wrapping from k-1 back to 0, and returns the new label. An unassigned node,
// or one holding a label outside [0, k), restarts at 0. k < 1 is treated as 1.
func CycleCommunity[N comparable](p Partition[N, int], n N, k int) int {
	if k < 1 {
		k = 1
	}
	next := 0
	if c, ok := p[n]; ok && c >= 0 && c < k {
		next = (c + 1) % k
	}
	p[n] = next

	return next
}
