// Package bitstring provides BitString, a fixed-width subset encoding over
// a single machine word.
//
// Bit i set ⇔ item i belongs to the subset. The width is fixed at 64, which
// bounds the number of items any knapsack instance may carry.
//
// Operations:
//   - IsSet(i)    - membership test, O(1)
//   - Flip(i)     - toggle a single item in place, O(1)
//   - LowestSet() - index of the least-significant set bit, O(1)
//
// These three are all the Gray-code walk in package knapsack needs: it never
// unions or intersects subsets, it only toggles one item per step and looks
// up trailing zeros of the step counter.
//
// Contract violations (an index ≥ Width, LowestSet on the empty subset) are
// programming errors and panic with ErrIndexOutOfRange / ErrEmptyBitString.
// They are never returned as values: a silently recovered violation would
// corrupt the running totals of the caller.
package bitstring
