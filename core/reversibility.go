// SPDX-License-Identifier: MIT

package core

import "fmt"

// CheckReversibility scans all reactions of m in column order.
//
// Returns:
//   - bool: true iff every reaction is reversible (vacuously true for no reactions).
//   - []string: IDs of irreversible reactions, in reaction order (never nil).
//
// Errors:
//   - ErrNoModel if m is nil.
//
// Complexity:
//   - Time O(M), Space O(M).
func CheckReversibility(m *Model) (bool, []string, error) {
	if m == nil {
		return false, nil, fmt.Errorf("CheckReversibility: %w", ErrNoModel)
	}

	irreversible := make([]string, 0)
	for _, r := range m.Reactions() {
		if !r.reversible {
			irreversible = append(irreversible, r.id)
		}
	}

	return len(irreversible) == 0, irreversible, nil
}
