package toast

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/manduvi/mentor-tui/internal/styles"
)

// renderToast renders a single notification bubble.
func renderToast(t Toast, maxWidth int) string {
	theme := styles.GetCurrentTheme()

	var bgColor lipgloss.Color
	var icon string

	switch t.Type {
	case Success:
		bgColor = theme.Success
		icon = "✓"
	case Error:
		bgColor = theme.Error
		icon = "✗"
	default:
		bgColor = theme.Info
		icon = "ℹ"
	}

	toastWidth := 50
	if maxWidth > 0 {
		if limit := int(float64(maxWidth) * 0.8); limit < toastWidth {
			toastWidth = limit
		}
	}
	if toastWidth < 20 {
		toastWidth = 20
	}

	style := lipgloss.NewStyle().
		Background(bgColor).
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 2).
		Width(toastWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(bgColor).
		Bold(true)

	return style.Render(icon + " " + t.Message)
}
