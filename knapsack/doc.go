// Package knapsack solves small 0/1 knapsack instances exactly by walking
// every non-empty subset in binary-reflected Gray-code order.
//
// 🚀 Why Gray code?
//
//	Consecutive Gray codes differ in exactly one bit, and the bit that
//	changes between step i-1 and step i is the number of trailing zeros
//	of i. Walking subsets in that order means each step toggles a single
//	item, so the running weight/value totals are maintained with one
//	addition or subtraction instead of an O(n) recomputation.
//
// ✨ What is here:
//   - Item / Instance / Range   - the problem model (types.go)
//   - Generate                  - uniform random instances (generate.go)
//   - NewRNG / DeriveRNG        - seed policy and independent streams (rng.go)
//   - Solve                     - the Gray-code exhaustive solver (solve.go)
//   - BruteForce                - recompute-from-scratch baseline (bruteforce.go)
//
// ⚙️ Usage:
//
//	rng := knapsack.NewRNG(42)
//	inst, err := knapsack.Generate(20,
//		knapsack.Range{Min: 50, Max: 100},
//		knapsack.Range{Min: 100, Max: 500}, rng)
//	if err != nil { … }
//	res, err := knapsack.Solve(inst, 1000, knapsack.WithProgress(sink))
//
// Performance:
//
//   - Time:   O(2ⁿ) steps, O(1) work per step
//   - Memory: O(n)
//
// Use this package when exact optimality matters and n is small
// (n ≤ 64 by encoding width, n ≲ 25 for interactive runtimes).
package knapsack
