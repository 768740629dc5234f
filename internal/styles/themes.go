package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines a complete color scheme for the TUI
type Theme struct {
	Name          string
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Background    lipgloss.Color
	Border        lipgloss.Color
	Success       lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Info          lipgloss.Color
	Muted         lipgloss.Color
	Accent        lipgloss.Color
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
}

var (
	// currentTheme holds the active theme
	currentTheme *Theme

	themes = map[string]*Theme{
		"manduvi": {
			Name:          "Manduvi (Dark)",
			Primary:       lipgloss.Color("#10B981"), // Emerald
			Secondary:     lipgloss.Color("#F59E0B"), // Amber
			Background:    lipgloss.Color("#0F172A"), // Slate 900
			Border:        lipgloss.Color("#334155"), // Slate 700
			Success:       lipgloss.Color("#10B981"), // Emerald
			Error:         lipgloss.Color("#EF4444"), // Red
			Warning:       lipgloss.Color("#F59E0B"), // Amber
			Info:          lipgloss.Color("#3B82F6"), // Blue
			Muted:         lipgloss.Color("#6B7280"), // Gray 500
			Accent:        lipgloss.Color("#A78BFA"), // Violet 400
			TextPrimary:   lipgloss.Color("#FFFFFF"), // White
			TextSecondary: lipgloss.Color("#E5E7EB"), // Gray 200
		},
		"light": {
			Name:          "Light",
			Primary:       lipgloss.Color("#059669"), // Emerald 600
			Secondary:     lipgloss.Color("#D97706"), // Amber 600
			Background:    lipgloss.Color("#FFFFFF"), // White
			Border:        lipgloss.Color("#CBD5E1"), // Slate 300
			Success:       lipgloss.Color("#059669"), // Emerald 600
			Error:         lipgloss.Color("#DC2626"), // Red 600
			Warning:       lipgloss.Color("#D97706"), // Amber 600
			Info:          lipgloss.Color("#2563EB"), // Blue 600
			Muted:         lipgloss.Color("#64748B"), // Slate 500
			Accent:        lipgloss.Color("#7C3AED"), // Violet
			TextPrimary:   lipgloss.Color("#0F172A"), // Slate 900
			TextSecondary: lipgloss.Color("#475569"), // Slate 600
		},
	}
)

// GetCurrentTheme returns the active theme, defaulting to "manduvi".
func GetCurrentTheme() *Theme {
	if currentTheme == nil {
		currentTheme = themes["manduvi"]
	}
	return currentTheme
}

// SetTheme switches the active theme by name. Unknown names are
// ignored and the current theme stays active.
func SetTheme(name string) bool {
	if theme, ok := themes[name]; ok {
		currentTheme = theme
		return true
	}
	return false
}

// ThemeNames lists the registered theme keys.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}
