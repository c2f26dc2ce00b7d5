package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/livefir/vdombench/internal/bench"
)

// Table renders results as a styled table headed by the node count
func Table(results []bench.Result, nodes int) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("scenario", "samples", "initial render (ms)", "update (ms)").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 0:
				return styleName
			default:
				return styleNumber
			}
		})

	for _, r := range results {
		initial, update := r.Mean.Milliseconds()
		t.Row(
			r.Scenario,
			printer.Sprintf("%d", len(r.Samples)),
			printer.Sprintf("%.3f", initial),
			printer.Sprintf("%.3f", update),
		)
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(printer.Sprintf("%d nodes", nodes)))
	b.WriteString("\n")
	b.WriteString(t.Render())
	if ratio, ok := Speedup(results); ok {
		b.WriteString("\n")
		b.WriteString(styleFooter.Render(printer.Sprintf("type change update speedup: %.2fx", ratio)))
	}
	b.WriteString("\n")
	return b.String()
}
