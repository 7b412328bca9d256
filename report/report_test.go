package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/bitstring"
	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/katalvlaran/knapsack/report"
	"github.com/katalvlaran/knapsack/trial"
)

// sample is the three-item walk: weights 2,3,4, values 3,4,5, capacity 5;
// the optimum takes items 0 and 1.
func sample(index int) trial.Outcome {
	return trial.Outcome{
		Index: index,
		Instance: knapsack.Instance{Items: []knapsack.Item{
			{Weight: 2, Value: 3},
			{Weight: 3, Value: 4},
			{Weight: 4, Value: 5},
		}},
		Capacity: 5,
		Result: knapsack.Result{
			Best:    bitstring.New(0b011),
			Value:   7,
			Weight:  5,
			Visited: 7,
		},
		Elapsed: 1250 * time.Millisecond,
	}
}

func TestConsole_ReportTrial(t *testing.T) {
	var buf bytes.Buffer
	c := report.NewConsole(&buf, report.WithPlain())
	require.NoError(t, c.ReportTrial(sample(4)))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Contains(t, lines[0], " TRIAL 4 ")
	assert.True(t, strings.HasPrefix(lines[0], "---"))
	assert.Contains(t, out, "Done! Took 1.25 seconds\n")
	assert.Contains(t, out, "Best subset with value: 7 is\n")
	assert.Contains(t, out, "subset 00000011 (weight 5 of 5)\n")
	assert.Equal(t, strings.Repeat("-", 75), lines[len(lines)-1])

	for _, h := range []string{"item", "weight", "value", "total"} {
		assert.Contains(t, out, h)
	}
	// The instance block lists every item; the best block only 0 and 1.
	before, after, ok := strings.Cut(out, "Best subset with value")
	require.True(t, ok)
	assert.Contains(t, tableRows(before), []string{"2", "4", "5"})
	assert.NotContains(t, tableRows(after), []string{"2", "4", "5"})
	assert.Contains(t, tableRows(after), []string{"1", "3", "4"})
	assert.Contains(t, tableRows(after), []string{"total", "5", "7"})
}

// tableRows extracts the trimmed cells of every bordered data line in s.
func tableRows(s string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(s, "\n") {
		if !strings.HasPrefix(line, "│") {
			continue
		}
		var cells []string
		for _, cell := range strings.Split(strings.Trim(line, "│"), "│") {
			cells = append(cells, strings.TrimSpace(cell))
		}
		rows = append(rows, cells)
	}
	return rows
}

func TestConsole_WithoutInstance(t *testing.T) {
	var buf bytes.Buffer
	c := report.NewConsole(&buf, report.WithPlain(), report.WithInstance(false))
	require.NoError(t, c.ReportTrial(sample(0)))

	before, _, ok := strings.Cut(buf.String(), "Done!")
	require.True(t, ok)
	assert.NotContains(t, before, "weight")
}

func TestConsole_EmptyBest(t *testing.T) {
	o := sample(1)
	o.Result = knapsack.Result{Visited: 7}
	var buf bytes.Buffer
	require.NoError(t, report.NewConsole(&buf, report.WithPlain()).ReportTrial(o))
	assert.Contains(t, buf.String(), "Best subset with value: 0 is")
	assert.Contains(t, buf.String(), "subset 00000000")
}

func TestConsole_ReportSummary(t *testing.T) {
	var buf bytes.Buffer
	c := report.NewConsole(&buf)
	require.NoError(t, c.ReportSummary(trial.Summary{Trials: 4, MeanSeconds: 0.5}))
	assert.Equal(t, "Took on average 0.5\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestConsole_WriteError(t *testing.T) {
	c := report.NewConsole(failingWriter{}, report.WithPlain())
	assert.EqualError(t, c.ReportTrial(sample(0)), "closed pipe")
	assert.EqualError(t, c.ReportSummary(trial.Summary{}), "closed pipe")
}

func TestYAML_Stream(t *testing.T) {
	var buf bytes.Buffer
	y := report.NewYAML(&buf)
	require.NoError(t, y.ReportTrial(sample(2)))
	require.NoError(t, y.ReportTrial(sample(0)))
	require.NoError(t, y.ReportSummary(trial.Summary{Trials: 2, Seed: 7, MeanSeconds: 1.25, Wall: 2500 * time.Millisecond}))

	dec := yaml.NewDecoder(&buf)
	var docs []map[string]any
	for {
		var doc map[string]any
		if err := dec.Decode(&doc); err != nil {
			break
		}
		docs = append(docs, doc)
	}
	require.Len(t, docs, 3)

	first := docs[0]
	assert.Equal(t, 2, first["trial"])
	assert.Equal(t, 7, first["value"])
	assert.Equal(t, "00000011", first["subset"])
	assert.Equal(t, []any{0, 1}, first["best"])
	assert.Equal(t, 1.25, first["elapsed_seconds"])
	assert.Len(t, first["items"], 3)

	summary := docs[2]
	assert.Equal(t, 2, summary["trials"])
	assert.Equal(t, 7, summary["seed"])
	assert.Equal(t, 1.25, summary["mean_seconds"])
	assert.Equal(t, 2.5, summary["wall_seconds"])
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	for format, want := range map[string]any{
		report.FormatTable: &report.Console{},
		"":                 &report.Console{},
		report.FormatYAML:  &report.YAML{},
	} {
		rep, err := report.New(format, &buf)
		require.NoError(t, err, format)
		assert.IsType(t, want, rep, format)
	}

	_, err := report.New("csv", &buf)
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}
