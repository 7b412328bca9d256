package knapsack_test

import (
	"fmt"
	"math/bits"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/knapsack/knapsack"
)

// TestSolveProperties checks the solver against its contract on random
// instances: optimality against BruteForce, exact running totals, single-bit
// transitions and feasibility of the returned subset.
func TestSolveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	properties.Property("optimal value equals exhaustive reference", prop.ForAll(
		func(n int, seed int64, capacity uint64) string {
			inst, err := knapsack.Generate(n, weightsDet, valuesDet, knapsack.NewRNG(seed))
			if err != nil {
				return err.Error()
			}
			got, err := knapsack.Solve(inst, capacity)
			if err != nil {
				return err.Error()
			}
			want, err := knapsack.BruteForce(inst, capacity)
			if err != nil {
				return err.Error()
			}
			if got.Value != want.Value {
				return fmt.Sprintf("value %d, reference %d", got.Value, want.Value)
			}
			w, v := inst.Totals(got.Best)
			if w > capacity {
				return fmt.Sprintf("best subset %s weighs %d > %d", got.Best, w, capacity)
			}
			if v != got.Value || w != got.Weight {
				return fmt.Sprintf("best subset totals (%d,%d), reported (%d,%d)", w, v, got.Weight, got.Value)
			}
			return ""
		},
		gen.IntRange(0, 12),
		gen.Int64(),
		gen.UInt64Range(0, 1500),
	))

	properties.Property("running totals equal full summation at every step", prop.ForAll(
		func(n int, seed int64, capacity uint64) string {
			inst, err := knapsack.Generate(n, weightsDet, valuesDet, knapsack.NewRNG(seed))
			if err != nil {
				return err.Error()
			}
			var (
				failure string
				prev    uint64
			)
			_, err = knapsack.Solve(inst, capacity, knapsack.WithOnVisit(func(s knapsack.Step) {
				if failure != "" {
					return
				}
				w, v := inst.Totals(s.Subset)
				switch {
				case w != s.Weight || v != s.Value:
					failure = fmt.Sprintf("step %d: totals (%d,%d), recomputed (%d,%d)", s.Index, s.Weight, s.Value, w, v)
				case bits.OnesCount64(prev^s.Subset.Uint64()) != 1:
					failure = fmt.Sprintf("step %d: more than one bit changed", s.Index)
				case s.Feasible != (w <= capacity):
					failure = fmt.Sprintf("step %d: feasibility mismatch", s.Index)
				}
				prev = s.Subset.Uint64()
			}))
			if err != nil {
				return err.Error()
			}
			return failure
		},
		gen.IntRange(0, 10),
		gen.Int64(),
		gen.UInt64Range(0, 1000),
	))

	properties.TestingRun(t)
}
