package progress

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/katalvlaran/knapsack/knapsack"
)

// BoardOption configures a Board.
type BoardOption func(*boardConfig)

type boardConfig struct {
	width   int
	refresh time.Duration
	force   bool
}

// WithForce draws the bars even when w is not a terminal.
func WithForce() BoardOption {
	return func(c *boardConfig) { c.force = true }
}

// WithWidth sets the bar width in columns (default 40).
func WithWidth(w int) BoardOption {
	return func(c *boardConfig) {
		if w > 0 {
			c.width = w
		}
	}
}

// WithRefreshRate sets how often the board is redrawn (default 150ms).
func WithRefreshRate(d time.Duration) BoardOption {
	return func(c *boardConfig) {
		if d > 0 {
			c.refresh = d
		}
	}
}

// Board draws one progress bar per trial on a shared terminal area:
//
//	trial 3 [00:01:12] [=========>--------] (4194304/16777216, ETA 3m36s)
type Board struct {
	p *mpb.Progress
}

// NewBoard returns a Board rendering to w.
func NewBoard(w io.Writer, opts ...BoardOption) *Board {
	cfg := boardConfig{width: 40, refresh: 150 * time.Millisecond}
	for _, opt := range opts {
		opt(&cfg)
	}
	popts := []mpb.ContainerOption{
		mpb.WithOutput(w),
		mpb.WithWidth(cfg.width),
		mpb.WithRefreshRate(cfg.refresh),
	}
	if cfg.force {
		// mpb only refreshes on its own when w is a terminal.
		popts = append(popts, mpb.WithAutoRefresh())
	}
	return &Board{p: mpb.New(popts...)}
}

// NewSink implements Factory.
func (b *Board) NewSink(trial int, total uint64) knapsack.ProgressSink {
	// mpb counts in int64; halve positions of a 64-item walk to stay in range.
	var shift uint
	if total > math.MaxInt64 {
		shift = 1
	}
	bar := b.p.New(int64(total>>shift),
		mpb.BarStyle().Lbound("[").Filler("=").Tip(">").Padding("-").Rbound("]"),
		mpb.PrependDecorators(
			decor.Name(fmt.Sprintf("trial %d ", trial)),
			decor.Elapsed(decor.ET_STYLE_HHMMSS, decor.WC{W: 11}),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d/%d, ", decor.WCSyncWidth),
			decor.OnComplete(decor.AverageETA(decor.ET_STYLE_GO), "done"),
			decor.Name(")"),
		),
	)
	return &barSink{bar: bar, total: int64(total >> shift), shift: shift}
}

// Wait implements Factory: it blocks until every bar has completed and the
// final frame is drawn.
func (b *Board) Wait() { b.p.Wait() }

type barSink struct {
	bar   *mpb.Bar
	total int64
	shift uint
	once  sync.Once
}

func (s *barSink) SetPosition(pos uint64) {
	s.bar.SetCurrent(int64(pos >> s.shift))
}

// Finish drives the bar to its total, which completes it. Calling Finish
// again is a no-op.
func (s *barSink) Finish() {
	s.once.Do(func() {
		if s.total <= 0 {
			// A zero-length bar never reaches a completion trigger.
			s.bar.Abort(false)
			return
		}
		s.bar.SetCurrent(s.total)
	})
}
