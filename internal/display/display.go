package display

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func row(label, value string) string {
	return fmt.Sprintf("  %s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}

// ChartSuccess formats the summary of a completed chart run.
func ChartSuccess(name, ticker, file string, rows int) string {
	out := successStyle.Render("✔ chart saved") + "\n"
	out += row("stock", fmt.Sprintf("%s (%s)", name, ticker))
	out += row("bars", fmt.Sprintf("%d", rows))
	out += row("file", file)
	return out
}

// ChartFailure formats the summary of a failed chart run. Details are in
// the log.
func ChartFailure(name string) string {
	return failureStyle.Render("✘ chart generation failed") + "\n" +
		row("stock", name) +
		row("see", "log for details")
}

// TranscriptSuccess formats the summary of a saved transcript.
func TranscriptSuccess(videoID, file string, count int) string {
	out := successStyle.Render("✔ transcript saved") + "\n"
	out += row("video", videoID)
	out += row("snippets", fmt.Sprintf("%d", count))
	out += row("file", file)
	return out
}
