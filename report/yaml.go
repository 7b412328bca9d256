package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/trial"
)

type itemDoc struct {
	Index  int    `yaml:"index"`
	Weight uint32 `yaml:"weight"`
	Value  uint32 `yaml:"value"`
}

type trialDoc struct {
	Trial          int       `yaml:"trial"`
	ElapsedSeconds float64   `yaml:"elapsed_seconds"`
	Capacity       uint64    `yaml:"capacity"`
	Value          uint64    `yaml:"value"`
	Weight         uint64    `yaml:"weight"`
	Subset         string    `yaml:"subset"`
	Visited        uint64    `yaml:"visited"`
	Best           []int     `yaml:"best,flow"`
	Items          []itemDoc `yaml:"items"`
}

type summaryDoc struct {
	Trials      int     `yaml:"trials"`
	Seed        int64   `yaml:"seed"`
	MeanSeconds float64 `yaml:"mean_seconds"`
	WallSeconds float64 `yaml:"wall_seconds"`
}

// YAML writes a stream of YAML documents: one per trial in report order,
// then the summary.
type YAML struct {
	w io.Writer
}

// NewYAML returns a YAML reporter writing to w.
func NewYAML(w io.Writer) *YAML {
	return &YAML{w: w}
}

// ReportTrial implements trial.Reporter.
func (y *YAML) ReportTrial(o trial.Outcome) error {
	doc := trialDoc{
		Trial:          o.Index,
		ElapsedSeconds: o.Elapsed.Seconds(),
		Capacity:       o.Capacity,
		Value:          o.Result.Value,
		Weight:         o.Result.Weight,
		Subset:         o.Result.Best.String(),
		Visited:        o.Result.Visited,
		Best:           o.Result.Best.Indices(),
		Items:          make([]itemDoc, len(o.Instance.Items)),
	}
	for i, it := range o.Instance.Items {
		doc.Items[i] = itemDoc{Index: i, Weight: it.Weight, Value: it.Value}
	}
	return y.write(doc)
}

// ReportSummary implements trial.Reporter.
func (y *YAML) ReportSummary(s trial.Summary) error {
	return y.write(summaryDoc{
		Trials:      s.Trials,
		Seed:        s.Seed,
		MeanSeconds: s.MeanSeconds,
		WallSeconds: s.Wall.Seconds(),
	})
}

func (y *YAML) write(doc any) error {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = y.w.Write(append([]byte("---\n"), out...))
	return err
}
