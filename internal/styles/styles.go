package styles

import "github.com/charmbracelet/lipgloss"

// Style helper functions that use the current theme. Functions rather
// than vars so theme switches are reflected immediately.

func PrimaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(GetCurrentTheme().Primary)
}

func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(GetCurrentTheme().Error)
}

func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(GetCurrentTheme().Success)
}

func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(GetCurrentTheme().Warning)
}

func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(GetCurrentTheme().Muted)
}

func AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(GetCurrentTheme().Accent)
}

// Message styles

func UserLabel() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(GetCurrentTheme().Primary).
		Bold(true)
}

func AssistantLabel() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(GetCurrentTheme().Secondary).
		Bold(true)
}

func UserMessage() lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(GetCurrentTheme().TextPrimary)
}

func AssistantMessage() lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(GetCurrentTheme().TextSecondary)
}

// Annotation styles for citations, XP awards and next-task hints.

func SourceStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(GetCurrentTheme().Muted).
		Italic(true).
		PaddingLeft(2)
}

func XPBadge() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(GetCurrentTheme().Success).
		Bold(true)
}

func NextTaskStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(GetCurrentTheme().Info).
		PaddingLeft(2)
}

// Chrome styles

func Header() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(GetCurrentTheme().Primary).
		Bold(true).
		Padding(0, 1)
}

func StatusBar() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(GetCurrentTheme().Muted).
		Padding(0, 1)
}

func StatusBarError() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(GetCurrentTheme().Error).
		Padding(0, 1)
}

func PanelTitle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(GetCurrentTheme().Secondary).
		Bold(true)
}

func PanelBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(GetCurrentTheme().Border).
		Padding(0, 1)
}
