package knapsack

import "fmt"

// DefaultUpdates is the number of progress updates spread over one walk.
const DefaultUpdates uint64 = 1000

// Option configures Solve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Solve is invoked.
type Option func(*Options)

// Options holds the solver's side channels. None of them influence the
// returned Result.
type Options struct {
	// Progress receives periodic positions and a final Finish. Nil disables
	// progress reporting.
	Progress ProgressSink

	// Updates is how many positions are reported over the whole walk.
	Updates uint64

	// OnVisit is called for every visited subset, after the totals are
	// updated. Nil disables the hook.
	OnVisit func(Step)

	err error
}

// DefaultOptions returns Options with no sink, no hook and DefaultUpdates.
func DefaultOptions() Options {
	return Options{Updates: DefaultUpdates}
}

// WithProgress attaches a progress sink.
func WithProgress(sink ProgressSink) Option {
	return func(o *Options) {
		o.Progress = sink
	}
}

// WithUpdates sets the number of progress updates per walk.
//
//	k > 0: report roughly every 2ⁿ/k steps (every step if 2ⁿ < k)
//	k == 0: invalid → ErrOptionViolation
func WithUpdates(k uint64) Option {
	return func(o *Options) {
		if k == 0 {
			o.err = fmt.Errorf("%w: Updates must be positive", ErrOptionViolation)
			return
		}
		o.Updates = k
	}
}

// WithOnVisit registers a per-step hook. It runs on the hot path; keep it
// cheap.
func WithOnVisit(fn func(Step)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o, o.err
}
