package shell

import "github.com/charmbracelet/lipgloss"

// Result line colors: failures red, unknown commands yellow, transient
// status text gray.
var (
	errorLine = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})

	noticeLine = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"})

	dimLine = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
)

// renderResult styles a result's text according to its outcome.
func renderResult(text string, failed, invalid bool) string {
	switch {
	case failed:
		return errorLine.Render(text)
	case invalid:
		return noticeLine.Render(text)
	default:
		return text
	}
}
