package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/logging"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("info", &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("trials finished", zap.Int("trials", 3))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "trials finished")
	assert.Contains(t, out, `{"trials": 3}`)
}

func TestNew_Color(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("warn", &buf, logging.WithColor(true))
	require.NoError(t, err)

	log.Warn("slow trial")
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := logging.New("chatty", &bytes.Buffer{})
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}
