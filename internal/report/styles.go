package report

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorAccent = lipgloss.Color("#9b59b6")
	colorTeal   = lipgloss.Color("#1abc9c")
	colorWhite  = lipgloss.Color("#e8e8f0")
	colorGray   = lipgloss.Color("#888899")
	colorDim    = lipgloss.Color("#444466")

	// Style: title above the table
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Background(colorAccent).
			Padding(0, 2)

	// Style: header cells
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTeal).
			Padding(0, 1)

	// Style: scenario name column
	styleName = lipgloss.NewStyle().
			Foreground(colorWhite).
			Padding(0, 1)

	// Style: numeric cells
	styleNumber = lipgloss.NewStyle().
			Foreground(colorGray).
			Padding(0, 1).
			Align(lipgloss.Right)

	// Style: table border
	styleBorder = lipgloss.NewStyle().
			Foreground(colorDim)

	// Style: footer line
	styleFooter = lipgloss.NewStyle().
			Foreground(colorTeal).
			Italic(true)
)
