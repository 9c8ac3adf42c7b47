// SPDX-License-Identifier: MIT
//
// File: allocator.go
// Role: model-scoped index allocator for species and reactions.
//
// Determinism:
//   - Indices are handed out in creation order, starting at 0.
//   - Rewind never moves the counter forward.

package core

import "fmt"

// IndexAllocator hands out contiguous integer indices.
// It is owned by a Model and only touched during ingestion.
type IndexAllocator struct {
	next int
}

// NewIndexAllocator returns an allocator whose first index is 0.
func NewIndexAllocator() *IndexAllocator { return &IndexAllocator{} }

// Peek returns the index the next call to Next will hand out.
// Complexity: O(1).
func (a *IndexAllocator) Peek() int { return a.next }

// Next returns the current index and advances the counter.
// Complexity: O(1).
func (a *IndexAllocator) Next() int {
	idx := a.next
	a.next++

	return idx
}

// Rewind resets the counter to a previously observed value.
//
// Implementation:
//   - Stage 1: reject negative targets and targets ahead of the counter.
//   - Stage 2: store the target.
//
// Errors:
//   - ErrInvalidValue if to < 0 or to > Peek().
//
// Complexity:
//   - Time O(1), Space O(1).
func (a *IndexAllocator) Rewind(to int) error {
	if to < 0 || to > a.next {
		return fmt.Errorf("IndexAllocator.Rewind(%d): counter at %d: %w", to, a.next, ErrInvalidValue)
	}
	a.next = to

	return nil
}
