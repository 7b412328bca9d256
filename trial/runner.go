package trial

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/katalvlaran/knapsack/progress"
)

const tracerName = "github.com/katalvlaran/knapsack/trial"

// Option configures a Runner.
type Option func(*Runner)

// WithReporter sets the trial/summary consumer.
func WithReporter(r Reporter) Option {
	return func(rn *Runner) {
		if r != nil {
			rn.reporter = r
		}
	}
}

// WithProgress sets the factory for per-trial progress sinks.
func WithProgress(f progress.Factory) Option {
	return func(rn *Runner) {
		if f != nil {
			rn.progress = f
		}
	}
}

// WithObserver sets the per-trial metrics hook.
func WithObserver(o Observer) Option {
	return func(rn *Runner) {
		if o != nil {
			rn.observer = o
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(rn *Runner) {
		if l != nil {
			rn.log = l
		}
	}
}

// WithTracer sets the tracer used for per-trial spans. The default is the
// global otel tracer, a no-op unless a provider is installed.
func WithTracer(t trace.Tracer) Option {
	return func(rn *Runner) {
		if t != nil {
			rn.tracer = t
		}
	}
}

// Runner executes a batch of trials.
type Runner struct {
	params   Params
	reporter Reporter
	progress progress.Factory
	observer Observer
	log      *zap.Logger
	tracer   trace.Tracer

	printMu sync.Mutex
}

// New validates params and returns a Runner.
func New(params Params, opts ...Option) (*Runner, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		params:   params,
		reporter: nopReporter{},
		progress: progress.Discard{},
		observer: nopObserver{},
		log:      zap.NewNop(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Workers returns the effective worker pool size.
func (r *Runner) Workers() int {
	if r.params.Workers > 0 {
		return r.params.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Run executes every trial and returns the aggregated Summary. The summary
// is reported once all trials have joined.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	seed := knapsack.ResolveSeed(r.params.Seed)
	n := r.params.Trials
	results := &Results{}
	outcomes := make([]Outcome, n)

	r.log.Info("starting trials",
		zap.Int("trials", n),
		zap.Int("items", r.params.Items),
		zap.Int("workers", r.Workers()),
		zap.Int64("seed", seed),
	)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers())
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := r.runTrial(gctx, i, seed)
			if err != nil {
				return err
			}
			results.Add(out.Elapsed)
			outcomes[i] = out
			r.observer.ObserveTrial(out)
			return r.report(out)
		})
	}
	err := g.Wait()
	r.progress.Wait()
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Trials:      n,
		Seed:        seed,
		Mean:        results.Mean(),
		MeanSeconds: results.MeanSeconds(),
		Wall:        time.Since(start),
		Outcomes:    outcomes,
	}
	r.log.Info("trials finished",
		zap.Int("trials", n),
		zap.Duration("mean", summary.Mean),
		zap.Duration("wall", summary.Wall),
	)
	if err = r.reporter.ReportSummary(summary); err != nil {
		return summary, fmt.Errorf("report summary: %w", err)
	}
	return summary, nil
}

// report hands out to the reporter under the print lock.
func (r *Runner) report(out Outcome) error {
	r.printMu.Lock()
	defer r.printMu.Unlock()
	if err := r.reporter.ReportTrial(out); err != nil {
		return fmt.Errorf("report trial %d: %w", out.Index, err)
	}
	return nil
}

// runTrial generates, solves and times one instance.
func (r *Runner) runTrial(ctx context.Context, index int, seed int64) (Outcome, error) {
	p := r.params
	_, span := r.tracer.Start(ctx, "trial.run", trace.WithAttributes(
		attribute.Int("trial.index", index),
		attribute.Int("knapsack.items", p.Items),
		attribute.Int64("knapsack.capacity", int64(p.Capacity)),
	))
	defer span.End()
	log := r.log.With(zap.Int("trial", index))

	inst, err := knapsack.Generate(p.Items, p.Weights, p.Values, knapsack.DeriveRNG(seed, uint64(index)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate")
		return Outcome{}, fmt.Errorf("trial %d: %w", index, err)
	}

	sink := r.progress.NewSink(index, knapsack.SpaceSize(p.Items))
	log.Debug("trial started")

	began := time.Now()
	res, err := knapsack.Solve(inst, p.Capacity,
		knapsack.WithProgress(sink),
		knapsack.WithUpdates(p.Updates),
	)
	elapsed := time.Since(began)
	if err != nil {
		sink.Finish()
		span.RecordError(err)
		span.SetStatus(codes.Error, "solve")
		return Outcome{}, fmt.Errorf("trial %d: %w", index, err)
	}

	span.SetAttributes(
		attribute.Int64("knapsack.best_value", int64(res.Value)),
		attribute.Int64("knapsack.best_weight", int64(res.Weight)),
		attribute.String("knapsack.best_subset", res.Best.String()),
		attribute.Float64("trial.elapsed_seconds", elapsed.Seconds()),
	)
	log.Debug("trial finished",
		zap.Uint64("value", res.Value),
		zap.Stringer("subset", res.Best),
		zap.Duration("elapsed", elapsed),
	)

	return Outcome{
		Index:    index,
		Instance: inst,
		Capacity: p.Capacity,
		Result:   res,
		Elapsed:  elapsed,
	}, nil
}
