package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/progress"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errb bytes.Buffer
	cmd := newRootCmd(&out, &errb)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errb.String(), err
}

func TestRoot_TableReport(t *testing.T) {
	out, _, err := execute(t, "--size=6", "--trials=3", "--seed=7", "--knapsack-capacity=300")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "Done! Took "))
	for _, header := range []string{" TRIAL 0 ", " TRIAL 1 ", " TRIAL 2 "} {
		assert.Contains(t, out, header)
	}
	assert.Contains(t, out, "Took on average ")
	assert.NotContains(t, out, "\x1b[", "no styling when stdout is not a terminal")
}

func TestRoot_YAMLReport(t *testing.T) {
	out, _, err := execute(t, "-s", "5", "-t", "2", "--seed", "11", "--format", "yaml")
	require.NoError(t, err)

	dec := yaml.NewDecoder(strings.NewReader(out))
	var docs []map[string]any
	for {
		var doc map[string]any
		if dec.Decode(&doc) != nil {
			break
		}
		docs = append(docs, doc)
	}
	require.Len(t, docs, 3)
	assert.Equal(t, 11, docs[2]["seed"])
	assert.Equal(t, 2, docs[2]["trials"])
}

func TestRoot_SeedReproducesBatch(t *testing.T) {
	args := []string{"-s", "8", "-t", "2", "--seed", "5", "--format", "yaml", "--workers", "1"}
	first, _, err := execute(t, args...)
	require.NoError(t, err)
	second, _, err := execute(t, args...)
	require.NoError(t, err)

	strip := func(s string) string {
		var keep []string
		for _, line := range strings.Split(s, "\n") {
			if !strings.Contains(line, "seconds") {
				keep = append(keep, line)
			}
		}
		return strings.Join(keep, "\n")
	}
	assert.Equal(t, strip(first), strip(second))
}

func TestRoot_InvalidConfig(t *testing.T) {
	out, errOut, err := execute(t, "--size=70")
	require.Error(t, err)
	assert.Empty(t, out, "nothing runs on invalid configuration")
	assert.Contains(t, errOut, "size must be at most 64")
}

func TestRoot_TraceStdout(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, errOut, err := execute(t, "-s", "4", "-t", "2", "--trace", "stdout", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(errOut, `"Name":"trial.run"`))
}

// TestRoot_ProgressAlways checks forced bars are drawn to a stderr that is
// not a terminal.
func TestRoot_ProgressAlways(t *testing.T) {
	out, errOut, err := execute(t, "-s", "12", "-t", "4", "--progress", "always", "--seed", "3", "--update-freq", "64")
	require.NoError(t, err)
	assert.Contains(t, out, "Took on average ")
	assert.NotEmpty(t, errOut, "bars must be drawn")
	for _, name := range []string{"trial 0", "trial 3"} {
		assert.Contains(t, errOut, name)
	}
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "knapsack dev "))
}

func TestConfigCmd(t *testing.T) {
	out, _, err := execute(t, "config", "--size", "9", "--trials", "4")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 9, got["size"])
	assert.Equal(t, 4, got["trials"])
	assert.Equal(t, "table", got["format"])
}

func TestProgressFactory(t *testing.T) {
	var buf bytes.Buffer
	cases := []struct {
		mode string
		tty  bool
		want progress.Factory
	}{
		{"always", false, &progress.Board{}},
		{"auto", true, &progress.Board{}},
		{"auto", false, &progress.Logger{}},
		{"never", true, &progress.Logger{}},
	}
	for _, tc := range cases {
		f := progressFactory(tc.mode, tc.tty, &buf, nil)
		assert.IsType(t, tc.want, f, "%s tty=%v", tc.mode, tc.tty)
		f.Wait()
	}
	assert.False(t, isTerminal(&buf))
}
