// Package knapsack_test - shared helpers for solver tests.
//
// Contents:
//   - items:          compact Instance literal from (weight, value) pairs
//   - seeded:         deterministic random Instance for a seed
//   - recordingSink:  ProgressSink capturing every call
//   - trace:          collects every Step of one walk
package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/knapsack"
)

// Fixed seed shared by deterministic tests.
const seedDet int64 = 20240611

var (
	weightsDet = knapsack.Range{Min: 50, Max: 100}
	valuesDet  = knapsack.Range{Min: 100, Max: 500}
)

// items builds an Instance from (weight, value) pairs.
func items(pairs ...[2]uint32) knapsack.Instance {
	out := make([]knapsack.Item, len(pairs))
	for i, p := range pairs {
		out[i] = knapsack.Item{Weight: p[0], Value: p[1]}
	}
	return knapsack.Instance{Items: out}
}

// seeded returns a deterministic n-item instance in the default ranges.
func seeded(t testing.TB, n int, seed int64) knapsack.Instance {
	t.Helper()
	inst, err := knapsack.Generate(n, weightsDet, valuesDet, knapsack.NewRNG(seed))
	require.NoError(t, err)
	return inst
}

// recordingSink captures positions and Finish calls.
type recordingSink struct {
	positions []uint64
	finished  int
}

func (s *recordingSink) SetPosition(pos uint64) { s.positions = append(s.positions, pos) }
func (s *recordingSink) Finish()                { s.finished++ }

// trace runs Solve with an OnVisit hook and returns every Step.
func trace(t testing.TB, inst knapsack.Instance, capacity uint64) ([]knapsack.Step, knapsack.Result) {
	t.Helper()
	var steps []knapsack.Step
	res, err := knapsack.Solve(inst, capacity, knapsack.WithOnVisit(func(s knapsack.Step) {
		steps = append(steps, s)
	}))
	require.NoError(t, err)
	return steps, res
}
