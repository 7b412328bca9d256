package knapsack

import (
	"errors"

	"github.com/katalvlaran/knapsack/bitstring"
)

// Sentinel errors for instance generation and solving.
var (
	// ErrTooManyItems is returned when an instance does not fit the subset
	// encoding (more than bitstring.Width items) or a negative size is given.
	ErrTooManyItems = errors.New("knapsack: item count exceeds subset encoding width")

	// ErrInvalidRange is returned when a Range has Min > Max.
	ErrInvalidRange = errors.New("knapsack: range minimum exceeds maximum")

	// ErrNilRNG is returned when Generate is called without a random source.
	ErrNilRNG = errors.New("knapsack: nil random source")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("knapsack: invalid option supplied")
)

// Item is a single knapsack item. Items are immutable once generated.
type Item struct {
	Weight uint32
	Value  uint32
}

// IndexedItem pairs an Item with its position in the Instance.
type IndexedItem struct {
	Index int
	Item
}

// Range is an inclusive interval [Min, Max].
type Range struct {
	Min uint32
	Max uint32
}

// Instance is an ordered sequence of items. It is owned by exactly one
// trial and never shared.
type Instance struct {
	Items []Item
}

// Len returns the number of items.
func (in Instance) Len() int { return len(in.Items) }

// Totals sums weight and value over the items selected by s, by full
// recomputation. Bits at or above Len() are ignored.
//
// Complexity: O(popcount(s)).
func (in Instance) Totals(s bitstring.BitString) (weight, value uint64) {
	for _, i := range s.Indices() {
		if i >= len(in.Items) {
			break
		}
		weight += uint64(in.Items[i].Weight)
		value += uint64(in.Items[i].Value)
	}
	return weight, value
}

// Subset returns the items selected by s in ascending index order.
func (in Instance) Subset(s bitstring.BitString) []IndexedItem {
	out := make([]IndexedItem, 0, s.Len())
	for _, i := range s.Indices() {
		if i >= len(in.Items) {
			break
		}
		out = append(out, IndexedItem{Index: i, Item: in.Items[i]})
	}
	return out
}

// Result is the outcome of a solve.
type Result struct {
	// Best is the first subset, in visitation order, reaching Value.
	// It is the empty subset when no non-empty subset is feasible.
	Best bitstring.BitString

	// Value is the total value of Best.
	Value uint64

	// Weight is the total weight of Best.
	Weight uint64

	// Visited is the number of subsets evaluated, 2ⁿ−1 (math.MaxUint64
	// for n = 64).
	Visited uint64
}

// Step describes one visited subset of the Gray-code walk.
type Step struct {
	// Index is the Gray-code counter i (1 … 2ⁿ−1).
	Index uint64

	// Subset is the subset being visited after the toggle.
	Subset bitstring.BitString

	// Flipped is the item toggled to reach Subset from the previous step.
	Flipped int

	// Weight and Value are the running totals for Subset.
	Weight uint64
	Value  uint64

	// Feasible reports Weight ≤ capacity.
	Feasible bool
}

// ProgressSink receives walk positions. Positions are monotonically
// non-decreasing and lie in [0, 2ⁿ). Finish is called exactly once when the
// walk ends. Implementations must be safe to call from the goroutine that
// owns the solve; Solve never calls a sink concurrently with itself.
type ProgressSink interface {
	SetPosition(pos uint64)
	Finish()
}
