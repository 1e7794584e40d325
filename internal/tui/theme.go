package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used by the terminal UI. It is passed to
// NewAppModel explicitly.
type Theme struct {
	Name        string
	Header      lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	ActiveChip  lipgloss.Style
	Chip        lipgloss.Style
	Muted       lipgloss.Style
	Empty       lipgloss.Style
	Footer      lipgloss.Style
}

// ThemeByName returns the light or dark theme. Anything other than "light"
// is dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

func DarkTheme() Theme {
	return newTheme("dark", lipgloss.Color("39"), lipgloss.Color("252"), lipgloss.Color("241"))
}

func LightTheme() Theme {
	return newTheme("light", lipgloss.Color("25"), lipgloss.Color("235"), lipgloss.Color("245"))
}

func newTheme(name string, accent, text, muted lipgloss.Color) Theme {
	return Theme{
		Name:        name,
		Header:      lipgloss.NewStyle().Bold(true).Foreground(accent).PaddingBottom(1),
		ActiveTab:   lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true).PaddingRight(2),
		InactiveTab: lipgloss.NewStyle().Foreground(muted).PaddingRight(2),
		ActiveChip:  lipgloss.NewStyle().Bold(true).Foreground(text).Background(accent).Padding(0, 1).MarginRight(1),
		Chip:        lipgloss.NewStyle().Foreground(muted).Padding(0, 1).MarginRight(1),
		Muted:       lipgloss.NewStyle().Foreground(muted),
		Empty:       lipgloss.NewStyle().Foreground(muted).Padding(1, 2),
		Footer:      lipgloss.NewStyle().Foreground(muted).PaddingTop(1),
	}
}
