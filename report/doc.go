// Package report renders trial outcomes for humans and machines.
//
// 🚀 What is it?
//
//	A trial.Reporter turns each finished trial into one self-contained block
//	of output and closes the batch with the mean solve time:
//	  • Console - bordered tables styled with lipgloss, plain when the
//	    writer is not a terminal.
//	  • YAML    - one YAML document per trial plus one for the summary.
//
// ⚙️ Usage:
//
//	rep, err := report.New(report.FormatTable, os.Stdout)
//	runner, err := trial.New(params, trial.WithReporter(rep))
//
// The runner never calls ReportTrial concurrently, so reporters hold no
// locks of their own.
package report
