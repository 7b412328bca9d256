package knapsack

import "github.com/katalvlaran/knapsack/bitstring"

// BruteForce enumerates subsets in plain binary order and recomputes every
// subset's totals from scratch. It is the O(n·2ⁿ) baseline the Gray walk is
// measured against, and an independent oracle for Solve.
//
// Ties are broken by the first subset in binary order, which may differ
// from Solve's choice; only Value is comparable between the two.
//
// Errors: ErrTooManyItems for n > bitstring.Width.
//
// Complexity: O(n·2ⁿ) time, O(1) extra memory.
func BruteForce(inst Instance, capacity uint64) (Result, error) {
	n := inst.Len()
	if err := validateSize(n); err != nil {
		return Result{}, err
	}

	var res Result
	end := uint64(1) << uint(n)
	for mask := uint64(1); mask != end; mask++ {
		var w, v uint64
		for j := 0; j < n; j++ {
			if mask&(1<<uint(j)) != 0 {
				w += uint64(inst.Items[j].Weight)
				v += uint64(inst.Items[j].Value)
			}
		}
		if w <= capacity && v > res.Value {
			res.Best = bitstring.New(mask)
			res.Value = v
			res.Weight = w
		}
	}
	res.Visited = end - 1
	return res, nil
}
