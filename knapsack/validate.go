package knapsack

import (
	"fmt"

	"github.com/katalvlaran/knapsack/bitstring"
)

// validateSize checks that n items fit the subset encoding.
//
// Complexity: O(1).
func validateSize(n int) error {
	if n < 0 || n > bitstring.Width {
		return fmt.Errorf("%w: %d items, width %d", ErrTooManyItems, n, bitstring.Width)
	}
	return nil
}

// validateRange checks Min ≤ Max; name labels the range in the error.
func validateRange(name string, r Range) error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: %s [%d, %d]", ErrInvalidRange, name, r.Min, r.Max)
	}
	return nil
}

// SpaceSize returns 2ⁿ, the size of the subset space including the empty
// subset, saturated at math.MaxUint64 for n = 64. n must satisfy
// validateSize.
func SpaceSize(n int) uint64 {
	if n >= bitstring.Width {
		return ^uint64(0)
	}
	return uint64(1) << uint(n)
}

// updateInterval returns the step distance between two progress reports.
// A request for more updates than steps clamps the interval to one step.
func updateInterval(n int, updates uint64) uint64 {
	iv := SpaceSize(n) / updates
	if iv == 0 {
		iv = 1
	}
	return iv
}
