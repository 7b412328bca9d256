// Package knapsack_test provides runnable examples with stable output.
package knapsack_test

import (
	"fmt"

	"github.com/katalvlaran/knapsack/knapsack"
)

// ExampleSolve solves a three-item instance by hand-checkable enumeration.
func ExampleSolve() {
	inst := knapsack.Instance{Items: []knapsack.Item{
		{Weight: 2, Value: 3},
		{Weight: 3, Value: 4},
		{Weight: 4, Value: 5},
	}}

	res, err := knapsack.Solve(inst, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("value=%d weight=%d subset=%s items=%v\n",
		res.Value, res.Weight, res.Best, res.Best.Indices())
	// Output:
	// value=7 weight=5 subset=00000011 items=[0 1]
}

// ExampleSolve_visitOrder prints the Gray-code walk over three items.
func ExampleSolve_visitOrder() {
	inst := knapsack.Instance{Items: []knapsack.Item{
		{Weight: 1, Value: 1},
		{Weight: 2, Value: 2},
		{Weight: 4, Value: 4},
	}}

	_, _ = knapsack.Solve(inst, 5, knapsack.WithOnVisit(func(s knapsack.Step) {
		fmt.Printf("i=%d flip=%d subset=%s weight=%d feasible=%t\n",
			s.Index, s.Flipped, s.Subset, s.Weight, s.Feasible)
	}))
	// Output:
	// i=1 flip=0 subset=00000001 weight=1 feasible=true
	// i=2 flip=1 subset=00000011 weight=3 feasible=true
	// i=3 flip=0 subset=00000010 weight=2 feasible=true
	// i=4 flip=2 subset=00000110 weight=6 feasible=false
	// i=5 flip=0 subset=00000111 weight=7 feasible=false
	// i=6 flip=1 subset=00000101 weight=5 feasible=true
	// i=7 flip=0 subset=00000100 weight=4 feasible=true
}
