// Package trial runs independent knapsack trials concurrently and
// aggregates their timing.
//
// A trial generates one random Instance from its own RNG stream, solves it
// with knapsack.Solve, measures wall-clock time and hands the Outcome to a
// Reporter. Trials never share instances, RNGs or search state.
//
// Concurrency model:
//   - Trials run on an errgroup worker pool limited to GOMAXPROCS workers
//     (Params.Workers overrides).
//   - ReportTrial calls are serialized by a print mutex, so one trial's
//     block is never interleaved with another's. Completion order is
//     unspecified.
//   - Elapsed times go into a mutex-guarded Results accumulator. The mean is
//     read only after the group has joined.
//   - No trial is aborted once started; context cancellation only prevents
//     trials that have not started yet.
package trial
