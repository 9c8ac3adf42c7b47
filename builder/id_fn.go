// SPDX-License-Identifier: MIT
// Package: rxnet/builder
//
// id_fn.go - species ID schemes.
//
// Every scheme yields identifiers that start with a letter, so a species ID
// is always a valid symbol inside a kinetic law.

package builder

import (
	"fmt"
	"strconv"
)

// DefaultSpeciesPrefix is the prefix of DefaultIDFn.
const DefaultSpeciesPrefix = "S"

// IDFn maps a zero-based species index to its ID.
type IDFn func(idx int) string

// DefaultIDFn returns "S0", "S1", ...
func DefaultIDFn(idx int) string {
	return DefaultSpeciesPrefix + strconv.Itoa(idx)
}

// SymbolIDFn returns "A".."Z" for idx in [0,25]. Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string(rune('A' + idx))
}

// ExcelColumnIDFn returns "A".."Z","AA","AB",... Panics on idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns an IDFn producing prefix+idx.
// Panics when prefix is empty or does not start with a letter.
func SymbolNumberIDFn(prefix string) IDFn {
	if prefix == "" || !isLetter(prefix[0]) {
		panic(fmt.Sprintf("SymbolNumberIDFn: prefix must start with a letter, got %q", prefix))
	}
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
