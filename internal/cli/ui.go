package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleTitle for headings in command output.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleValue for numbers and file names.
	styleValue = lipgloss.NewStyle().Foreground(colorCyan)

	// styleDim for secondary text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
)

// successLine prints a check-marked status line, highlighting the subject.
func successLine(msg, subject string) {
	fmt.Printf("%s %s %s\n", styleIconSuccess.Render("✓"), msg, styleValue.Render(subject))
}

// summaryLine prints an indented key/value pair for command summaries.
func summaryLine(key string, value any) {
	fmt.Printf("  %s %s\n", styleDim.Render(key+":"), styleValue.Render(fmt.Sprint(value)))
}
