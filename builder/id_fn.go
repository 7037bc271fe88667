// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// id_fn.go - vertex ID schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// MaxSymbolIDs is the number of labels SymbolIDFn can produce.
const MaxSymbolIDs = 26

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics if idx is out of range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx >= MaxSymbolIDs {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns spreadsheet-style column names: 0→"A", 25→"Z",
// 26→"AA". Unlike SymbolIDFn it never runs out of labels.
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, 'A'+rune(i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixedIDFn returns prefix + decimal(idx+offset), e.g.
// PrefixedIDFn("n", 1) yields "n1", "n2", ... for idx 0, 1, ...
func PrefixedIDFn(prefix string, offset int) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx+offset)
	}
}

// NetworkIDFn is the RandomNetwork default: "n1", "n2", ...
var NetworkIDFn = PrefixedIDFn(NetworkIDPrefix, 1)

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixedIDs sets the ID scheme to PrefixedIDFn(prefix, offset).
func WithPrefixedIDs(prefix string, offset int) BuilderOption {
	return WithIDScheme(PrefixedIDFn(prefix, offset))
}
