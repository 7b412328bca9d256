package knapsack

import "github.com/katalvlaran/knapsack/bitstring"

// Solve finds the most valuable subset of inst whose total weight does not
// exceed capacity, by visiting every non-empty subset in Gray-code order.
//
// Algorithm Outline:
//  1. n = inst.Len(). The search space is the counters i = 1 … 2ⁿ−1; the
//     empty subset (i = 0) is worthless and skipped.
//  2. current starts empty. It is the subset tracked incrementally and is
//     distinct from the counter i, which only drives the Gray sequence.
//  3. lsb = LowestSet(i): the single bit where gray(i) and gray(i−1) differ.
//  4. Flip lsb in current. If the item entered, add its weight/value to
//     the running totals; if it left, subtract them.
//  5. weight > capacity ⇒ the subset is rejected. Totals stay valid for the
//     next step; nothing is corrected.
//  6. Feasible and value > best ⇒ record value and snapshot current. The
//     comparison is strict, so among equal values the first one visited wins.
//  7. Return the snapshot.
//
// Invariant: after step 4 the running totals equal the sums over the items
// set in current. They are only ever changed by one item's delta.
//
// Edge cases:
//   - n = 0: the loop never runs; result is the empty subset with value 0.
//   - no feasible non-empty subset: result is the empty subset with value 0.
//
// Progress: when a sink is configured, SetPosition(i) is called whenever i
// reaches the next multiple of 2ⁿ/Updates (at least every step), and Finish
// is called once at the end. Sinks never influence the result.
//
// Errors:
//   - ErrTooManyItems    - inst.Len() > bitstring.Width.
//   - ErrOptionViolation - an invalid Option.
//
// Complexity: O(2ⁿ) time, O(n) memory.
func Solve(inst Instance, capacity uint64, opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	n := inst.Len()
	if err = validateSize(n); err != nil {
		return Result{}, err
	}

	weights := make([]uint64, n)
	values := make([]uint64, n)
	for i, it := range inst.Items {
		weights[i] = uint64(it.Weight)
		values[i] = uint64(it.Value)
	}

	var (
		current       bitstring.BitString
		best          bitstring.BitString
		currentWeight uint64
		currentValue  uint64
		bestWeight    uint64
		maxValue      uint64
	)

	// end wraps to 0 for n = 64, so the counter runs through 2⁶⁴−1.
	end := uint64(1) << uint(n)
	interval := updateInterval(n, o.Updates)
	nextUpdate := interval
	sink := o.Progress
	visit := o.OnVisit

	var i uint64
	for i = 1; i != end; i++ {
		lsb := bitstring.New(i).LowestSet()
		current.Flip(lsb)

		if sink != nil && i == nextUpdate {
			sink.SetPosition(i)
			nextUpdate += interval
		}

		if current.IsSet(lsb) {
			currentWeight += weights[lsb]
			currentValue += values[lsb]
		} else {
			currentWeight -= weights[lsb]
			currentValue -= values[lsb]
		}

		feasible := currentWeight <= capacity
		if visit != nil {
			visit(Step{
				Index:    i,
				Subset:   current,
				Flipped:  lsb,
				Weight:   currentWeight,
				Value:    currentValue,
				Feasible: feasible,
			})
		}

		if !feasible {
			continue
		}
		if currentValue > maxValue {
			maxValue = currentValue
			bestWeight = currentWeight
			best = current
		}
	}

	if sink != nil {
		sink.Finish()
	}

	return Result{
		Best:    best,
		Value:   maxValue,
		Weight:  bestWeight,
		Visited: end - 1,
	}, nil
}
