package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/katalvlaran/knapsack/trial"
)

// Output formats accepted by New.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// ErrUnknownFormat is returned by New for an unsupported format name.
var ErrUnknownFormat = errors.New("report: unknown format")

var (
	_ trial.Reporter = (*Console)(nil)
	_ trial.Reporter = (*YAML)(nil)
)

// New returns the reporter for format writing to w.
func New(format string, w io.Writer, opts ...ConsoleOption) (trial.Reporter, error) {
	switch format {
	case FormatTable, "":
		return NewConsole(w, opts...), nil
	case FormatYAML:
		return NewYAML(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// seconds renders d the way the timing lines print it: shortest exact
// decimal, no unit.
func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
