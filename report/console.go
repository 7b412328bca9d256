package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/knapsack/trial"
)

const ruleWidth = 75

var (
	colorTitle  = lipgloss.Color("#2CD7C7")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorValue  = lipgloss.Color("#F4D03F")
)

type styles struct {
	title  lipgloss.Style
	rule   lipgloss.Style
	border lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	chosen lipgloss.Style
	value  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, plain bool) styles {
	cell := r.NewStyle().Padding(0, 1)
	if plain {
		return styles{
			title:  r.NewStyle(),
			rule:   r.NewStyle(),
			border: r.NewStyle(),
			header: cell,
			cell:   cell,
			chosen: cell,
			value:  r.NewStyle(),
		}
	}
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(colorTitle),
		rule:   r.NewStyle().Foreground(colorMuted),
		border: r.NewStyle().Foreground(colorBorder),
		header: cell.Bold(true).Foreground(colorTitle),
		cell:   cell,
		chosen: cell.Foreground(colorValue),
		value:  r.NewStyle().Bold(true).Foreground(colorValue),
	}
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithPlain disables colour and text attributes. Colour is already off
// when the writer is not a terminal.
func WithPlain() ConsoleOption {
	return func(c *Console) { c.plain = true }
}

// WithInstance toggles the full instance table (default on). Large
// instances can turn it off and keep only the best subset.
func WithInstance(show bool) ConsoleOption {
	return func(c *Console) { c.showInstance = show }
}

// Console prints each trial as a ruled block:
//
//	-------------------------------- TRIAL 0 --------------------------------
//	<instance table>
//	Done! Took 0.0123 seconds
//	Best subset with value: 1234 is
//	<best subset table>
//	subset 00101101
//	---------------------------------------------------------------------------
type Console struct {
	w            io.Writer
	plain        bool
	showInstance bool
	st           styles
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{w: w, showInstance: true}
	for _, opt := range opts {
		opt(c)
	}
	c.st = newStyles(lipgloss.NewRenderer(w), c.plain)
	return c
}

// ReportTrial implements trial.Reporter. The block is written with a
// single Write.
func (c *Console) ReportTrial(o trial.Outcome) error {
	var b strings.Builder

	title := fmt.Sprintf(" TRIAL %d ", o.Index)
	side := strings.Repeat("-", (ruleWidth-len(title))/2)
	fmt.Fprintln(&b, c.st.rule.Render(side)+c.st.title.Render(title)+c.st.rule.Render(side))

	if c.showInstance {
		fmt.Fprintln(&b, c.instanceTable(o))
	}
	fmt.Fprintf(&b, "Done! Took %s seconds\n", seconds(o.Elapsed))
	fmt.Fprintf(&b, "Best subset with value: %s is\n", c.st.value.Render(strconv.FormatUint(o.Result.Value, 10)))
	fmt.Fprintln(&b, c.subsetTable(o))
	fmt.Fprintf(&b, "subset %s (weight %d of %d)\n", o.Result.Best, o.Result.Weight, o.Capacity)
	fmt.Fprintln(&b, c.st.rule.Render(strings.Repeat("-", ruleWidth)))
	fmt.Fprintln(&b)

	_, err := io.WriteString(c.w, b.String())
	return err
}

// ReportSummary implements trial.Reporter.
func (c *Console) ReportSummary(s trial.Summary) error {
	_, err := fmt.Fprintf(c.w, "Took on average %s\n", strconv.FormatFloat(s.MeanSeconds, 'f', -1, 64))
	return err
}

func (c *Console) instanceTable(o trial.Outcome) string {
	items := o.Instance.Items
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = row(i, uint64(it.Weight), uint64(it.Value))
	}
	chosen := o.Result.Best
	return c.table(rows, func(r int) bool { return r < len(items) && chosen.IsSet(r) })
}

func (c *Console) subsetTable(o trial.Outcome) string {
	sel := o.Instance.Subset(o.Result.Best)
	rows := make([][]string, 0, len(sel)+1)
	for _, it := range sel {
		rows = append(rows, row(it.Index, uint64(it.Weight), uint64(it.Value)))
	}
	rows = append(rows, []string{"total", strconv.FormatUint(o.Result.Weight, 10), strconv.FormatUint(o.Result.Value, 10)})
	return c.table(rows, func(int) bool { return false })
}

func (c *Console) table(rows [][]string, highlight func(row int) bool) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(c.st.border).
		Headers("item", "weight", "value").
		Rows(rows...).
		StyleFunc(func(r, _ int) lipgloss.Style {
			switch {
			case r == table.HeaderRow:
				return c.st.header
			case highlight(r):
				return c.st.chosen
			default:
				return c.st.cell
			}
		}).
		String()
}

func row(index int, weight, value uint64) []string {
	return []string{strconv.Itoa(index), strconv.FormatUint(weight, 10), strconv.FormatUint(value, 10)}
}
