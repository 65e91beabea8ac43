package visualizer

import "github.com/charmbracelet/lipgloss"

// Theme holds the two text colors the renderer uses besides the tier colors.
type Theme struct {
	Text     lipgloss.TerminalColor
	Inactive lipgloss.TerminalColor
}

// DefaultTheme adapts to light and dark terminals.
func DefaultTheme() Theme {
	return Theme{
		Text:     lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"},
		Inactive: lipgloss.AdaptiveColor{Light: "#999999", Dark: "#808080"},
	}
}

// ThemeFrom builds a theme from hex strings, falling back to DefaultTheme
// for empty values.
func ThemeFrom(text, inactive string) Theme {
	t := DefaultTheme()
	if text != "" {
		t.Text = lipgloss.Color(text)
	}
	if inactive != "" {
		t.Inactive = lipgloss.Color(inactive)
	}
	return t
}

type styles struct {
	text     lipgloss.Style
	inactive lipgloss.Style
}

func (t Theme) styles() styles {
	text, inactive := t.Text, t.Inactive
	if text == nil {
		text = lipgloss.NoColor{}
	}
	if inactive == nil {
		inactive = lipgloss.NoColor{}
	}
	return styles{
		text:     lipgloss.NewStyle().Foreground(text),
		inactive: lipgloss.NewStyle().Foreground(inactive),
	}
}
