// SPDX-License-Identifier: MIT
//
// File: symmetric.go
// Role: SymmetricLookup, a map from unordered key pairs to values.
// Determinism:
//   - Keys() is sorted by (Lo, Hi) asc; Adjacent() is sorted asc.
// Invariants:
//   - values holds exactly one entry per unordered pair.
//   - adjacent mirrors values: b ∈ adjacent[a] ⇔ a ∈ adjacent[b] ⇔ {a,b} ∈ values.

package core

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// Pair is an unordered key pair in canonical form (Lo <= Hi).
type Pair[K constraints.Ordered] struct {
	Lo, Hi K
}

// MakePair canonicalises (a, b) so that the smaller key comes first.
// MakePair(a, b) == MakePair(b, a) for all a, b.
func MakePair[K constraints.Ordered](a, b K) Pair[K] {
	if b < a {
		a, b = b, a
	}

	return Pair[K]{Lo: a, Hi: b}
}

// comparePairs orders pairs by Lo, then Hi.
func comparePairs[K constraints.Ordered](x, y Pair[K]) int {
	if c := cmp.Compare(x.Lo, y.Lo); c != 0 {
		return c
	}

	return cmp.Compare(x.Hi, y.Hi)
}

// SymmetricLookup stores one value per unordered key pair, so Get(a, b) and
// Get(b, a) always observe the same value. An adjacency index is maintained
// alongside the values by the same mutating calls so Adjacent(k) does not
// have to scan every pair.
//
// The zero value is not usable; construct with NewSymmetricLookup.
type SymmetricLookup[K constraints.Ordered, V any] struct {
	values   map[Pair[K]]V
	adjacent map[K]map[K]struct{}
}

// NewSymmetricLookup returns an empty lookup.
func NewSymmetricLookup[K constraints.Ordered, V any]() *SymmetricLookup[K, V] {
	return &SymmetricLookup[K, V]{
		values:   make(map[Pair[K]]V),
		adjacent: make(map[K]map[K]struct{}),
	}
}

// Set stores v for the pair {a, b}, replacing any previous value.
// Complexity: O(1) amortized.
func (s *SymmetricLookup[K, V]) Set(a, b K, v V) {
	s.values[MakePair(a, b)] = v
	s.link(a, b)
	if a != b {
		s.link(b, a)
	}
}

// link records b as adjacent to a.
func (s *SymmetricLookup[K, V]) link(a, b K) {
	bucket, ok := s.adjacent[a]
	if !ok {
		bucket = make(map[K]struct{})
		s.adjacent[a] = bucket
	}
	bucket[b] = struct{}{}
}

// unlink removes b from a's adjacency and drops a's bucket once empty.
func (s *SymmetricLookup[K, V]) unlink(a, b K) {
	bucket, ok := s.adjacent[a]
	if !ok {
		return
	}
	delete(bucket, b)
	if len(bucket) == 0 {
		delete(s.adjacent, a)
	}
}

// Get returns the value stored for {a, b} and whether it was present.
func (s *SymmetricLookup[K, V]) Get(a, b K) (V, bool) {
	v, ok := s.values[MakePair(a, b)]

	return v, ok
}

// Has reports whether a value is stored for {a, b}.
func (s *SymmetricLookup[K, V]) Has(a, b K) bool {
	_, ok := s.values[MakePair(a, b)]

	return ok
}

// Delete removes the pair {a, b}. It reports whether anything was removed;
// deleting an absent pair is a no-op.
func (s *SymmetricLookup[K, V]) Delete(a, b K) bool {
	key := MakePair(a, b)
	if _, ok := s.values[key]; !ok {
		return false
	}
	delete(s.values, key)
	s.unlink(a, b)
	if a != b {
		s.unlink(b, a)
	}

	return true
}

// Adjacent returns every key paired with k, sorted ascending.
// A self-pair {k, k} makes k appear in its own result. Unknown keys yield an
// empty, non-nil slice.
// Complexity: O(d log d).
func (s *SymmetricLookup[K, V]) Adjacent(k K) []K {
	bucket := s.adjacent[k]
	out := make([]K, 0, len(bucket))
	for other := range bucket {
		out = append(out, other)
	}
	slices.Sort(out)

	return out
}

// Degree returns how many distinct keys are paired with k.
func (s *SymmetricLookup[K, V]) Degree(k K) int { return len(s.adjacent[k]) }

// Keys returns every stored pair exactly once, in canonical form, sorted by
// (Lo, Hi). The slice is freshly allocated.
// Complexity: O(P log P) for P stored pairs.
func (s *SymmetricLookup[K, V]) Keys() []Pair[K] {
	out := make([]Pair[K], 0, len(s.values))
	for key := range s.values {
		out = append(out, key)
	}
	slices.SortFunc(out, comparePairs[K])

	return out
}

// Len returns the number of stored pairs.
func (s *SymmetricLookup[K, V]) Len() int { return len(s.values) }

// Clone returns an independent copy. Values are copied by assignment.
// Complexity: O(P + Σd).
func (s *SymmetricLookup[K, V]) Clone() *SymmetricLookup[K, V] {
	out := &SymmetricLookup[K, V]{
		values:   make(map[Pair[K]]V, len(s.values)),
		adjacent: make(map[K]map[K]struct{}, len(s.adjacent)),
	}
	for key, v := range s.values {
		out.values[key] = v
	}
	for k, bucket := range s.adjacent {
		cp := make(map[K]struct{}, len(bucket))
		for other := range bucket {
			cp[other] = struct{}{}
		}
		out.adjacent[k] = cp
	}

	return out
}
