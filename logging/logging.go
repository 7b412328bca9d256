// Package logging builds the process logger.
package logging

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLevel is returned by New for an unparsable level name.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Option configures New.
type Option func(*options)

type options struct {
	color  bool
	caller bool
}

// WithColor colours level names; meant for terminals.
func WithColor(on bool) Option {
	return func(o *options) { o.color = on }
}

// WithCaller annotates entries with the calling file and line.
func WithCaller(on bool) Option {
	return func(o *options) { o.caller = on }
}

// New returns a console-encoded zap logger writing entries at level and
// above to w. Level names are zap's: debug, info, warn, error.
func New(level string, w io.Writer, opts ...Option) (*zap.Logger, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if o.color {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(lvl),
	)
	var zopts []zap.Option
	if o.caller {
		zopts = append(zopts, zap.AddCaller())
	}
	return zap.New(core, zopts...), nil
}
