package progress

import (
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/knapsack"
)

// Factory creates per-trial sinks and waits for them to finish.
type Factory interface {
	// NewSink returns the sink for trial; total is the size of the walk (2ⁿ).
	NewSink(trial int, total uint64) knapsack.ProgressSink

	// Wait blocks until every sink handed out has finished.
	Wait()
}

var (
	_ Factory = Discard{}
	_ Factory = (*Logger)(nil)
	_ Factory = (*Board)(nil)
)

// Discard is a Factory whose sinks drop every update.
type Discard struct{}

// NewSink implements Factory.
func (Discard) NewSink(int, uint64) knapsack.ProgressSink { return nopSink{} }

// Wait implements Factory.
func (Discard) Wait() {}

type nopSink struct{}

func (nopSink) SetPosition(uint64) {}
func (nopSink) Finish()            {}

// Logger is a Factory whose sinks log positions through zap at debug level
// and the completion at info level.
type Logger struct {
	log *zap.Logger
}

// NewLogger returns a Logger factory writing to log.
func NewLogger(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{log: log}
}

// NewSink implements Factory.
func (l *Logger) NewSink(trial int, total uint64) knapsack.ProgressSink {
	return &logSink{
		log:   l.log.With(zap.Int("trial", trial), zap.Uint64("total", total)),
		total: total,
	}
}

// Wait implements Factory. Log sinks have nothing to flush.
func (l *Logger) Wait() {}

type logSink struct {
	log   *zap.Logger
	total uint64
	once  sync.Once
}

func (s *logSink) SetPosition(pos uint64) {
	s.log.Debug("progress",
		zap.Uint64("position", pos),
		zap.Float64("percent", percent(pos, s.total)),
	)
}

func (s *logSink) Finish() {
	s.once.Do(func() { s.log.Info("walk finished") })
}

func percent(pos, total uint64) float64 {
	if total == 0 {
		return 100
	}
	return math.Min(100, 100*float64(pos)/float64(total))
}
