package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/config"
	"github.com/katalvlaran/knapsack/logging"
	"github.com/katalvlaran/knapsack/metrics"
	"github.com/katalvlaran/knapsack/progress"
	"github.com/katalvlaran/knapsack/report"
	"github.com/katalvlaran/knapsack/telemetry"
	"github.com/katalvlaran/knapsack/trial"
)

const shutdownTimeout = 5 * time.Second

// run wires the collaborators described by cfg around a trial.Runner and
// executes the batch. Reports go to stdout; logs, bars and spans to stderr.
func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	stderrTTY := isTerminal(stderr)

	log, err := logging.New(cfg.LogLevel, stderr, logging.WithColor(stderrTTY))
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	shutdownTracing, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    "knapsack",
		ServiceVersion: version,
		Exporter:       cfg.Trace,
		Writer:         stderr,
	})
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if serr := shutdownTracing(sctx); serr != nil {
			log.Warn("flushing spans failed", zap.Error(serr))
		}
	}()

	var consoleOpts []report.ConsoleOption
	consoleOpts = append(consoleOpts, report.WithInstance(cfg.ShowInstance))
	if !isTerminal(stdout) {
		consoleOpts = append(consoleOpts, report.WithPlain())
	}
	rep, err := report.New(cfg.Format, stdout, consoleOpts...)
	if err != nil {
		return err
	}

	opts := []trial.Option{
		trial.WithReporter(rep),
		trial.WithProgress(progressFactory(cfg.Progress, stderrTTY, stderr, log)),
		trial.WithLogger(log),
	}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		if err := reg.Register(collectors.NewGoCollector()); err != nil {
			return err
		}
		m, err := metrics.New("knapsack", reg)
		if err != nil {
			return err
		}
		srv, err := metrics.Listen(cfg.MetricsAddr, reg, log)
		if err != nil {
			return fmt.Errorf("metrics listener: %w", err)
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}()
		opts = append(opts, trial.WithObserver(m))
	}

	runner, err := trial.New(cfg.Params(), opts...)
	if err != nil {
		return err
	}
	_, err = runner.Run(ctx)
	return err
}

// progressFactory picks the progress renderer for mode. Without bars the
// walk is still logged at debug level.
func progressFactory(mode string, tty bool, w io.Writer, log *zap.Logger) progress.Factory {
	switch {
	case mode == config.ProgressAlways:
		return progress.NewBoard(w, progress.WithForce())
	case mode == config.ProgressAuto && tty:
		return progress.NewBoard(w)
	default:
		return progress.NewLogger(log)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
