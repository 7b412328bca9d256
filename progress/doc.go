// Package progress renders solver progress.
//
// A Factory hands out one knapsack.ProgressSink per trial and lets the
// caller wait until every sink has finished. Three factories are provided:
//
//   - Board   - live multi-bar terminal display (github.com/vbauerster/mpb/v8)
//   - Logger  - structured progress lines through zap, for non-TTY output
//   - Discard - no output at all
//
// Sinks are owned by one trial each but may be driven from any worker
// goroutine; all implementations here are safe for that.
package progress
