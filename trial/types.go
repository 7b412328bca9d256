package trial

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/knapsack/bitstring"
	"github.com/katalvlaran/knapsack/knapsack"
)

// ErrInvalidParams is returned by Validate and New for unusable Params.
var ErrInvalidParams = errors.New("trial: invalid parameters")

// Params describes a batch of trials. All trials share the parameters but
// not their random streams.
type Params struct {
	Items    int
	Trials   int
	Weights  knapsack.Range
	Values   knapsack.Range
	Capacity uint64

	// Updates is the number of progress updates per solve.
	Updates uint64

	// Seed pins the instances; 0 draws a fresh seed per run.
	Seed int64

	// Workers bounds concurrent trials; 0 means runtime.GOMAXPROCS(0).
	Workers int
}

// Validate checks Params before any trial starts.
func (p Params) Validate() error {
	switch {
	case p.Items < 0 || p.Items > bitstring.Width:
		return fmt.Errorf("%w: items %d outside [0, %d]", ErrInvalidParams, p.Items, bitstring.Width)
	case p.Trials < 1:
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidParams, p.Trials)
	case p.Weights.Min > p.Weights.Max:
		return fmt.Errorf("%w: weight range [%d, %d]", ErrInvalidParams, p.Weights.Min, p.Weights.Max)
	case p.Values.Min > p.Values.Max:
		return fmt.Errorf("%w: value range [%d, %d]", ErrInvalidParams, p.Values.Min, p.Values.Max)
	case p.Updates == 0:
		return fmt.Errorf("%w: progress updates must be positive", ErrInvalidParams)
	case p.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidParams, p.Workers)
	}
	return nil
}

// Outcome is the record of one finished trial.
type Outcome struct {
	Index    int
	Instance knapsack.Instance
	Capacity uint64
	Result   knapsack.Result
	Elapsed  time.Duration
}

// Summary aggregates a finished batch.
type Summary struct {
	Trials int

	// Seed is the resolved base seed; rerunning with it reproduces the batch.
	Seed int64

	// Mean is the arithmetic mean of the trials' elapsed times.
	Mean time.Duration

	// MeanSeconds is Mean in seconds, averaged in float64.
	MeanSeconds float64

	// Wall is the wall-clock time of the whole batch.
	Wall time.Duration

	// Outcomes holds every trial ordered by Index.
	Outcomes []Outcome
}

// Reporter consumes trial results. ReportTrial is never called
// concurrently with itself.
type Reporter interface {
	ReportTrial(Outcome) error
	ReportSummary(Summary) error
}

// Observer is notified of every finished trial, before it is reported.
// It may be called concurrently.
type Observer interface {
	ObserveTrial(Outcome)
}

type nopReporter struct{}

func (nopReporter) ReportTrial(Outcome) error   { return nil }
func (nopReporter) ReportSummary(Summary) error { return nil }

type nopObserver struct{}

func (nopObserver) ObserveTrial(Outcome) {}
