package ui

import "github.com/charmbracelet/lipgloss"

// Theme is the palette behind every style on screen. Two palettes exist,
// matching the persisted "theme" preference.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Status   lipgloss.Style
	Menu     lipgloss.Style
	Selected lipgloss.Style
	Feedback lipgloss.Style
	Rejected lipgloss.Style
	Speech   lipgloss.Style
	Faint    lipgloss.Style

	BarGood lipgloss.Style
	BarWarn lipgloss.Style
	BarLow  lipgloss.Style
	BarCrit lipgloss.Style
}

func lightTheme() Theme {
	return Theme{
		Name: "light",

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF75B5")).
			Padding(0, 1),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#5F5FAF")),
		Menu:     lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF75B5")),
		Feedback: lipgloss.NewStyle().Foreground(lipgloss.Color("#2E8B57")),
		Rejected: lipgloss.NewStyle().Foreground(lipgloss.Color("#CC3333")),
		Speech:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#8787D7")),
		Faint:    lipgloss.NewStyle().Faint(true),

		BarGood: lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71")),
		BarWarn: lipgloss.NewStyle().Foreground(lipgloss.Color("#F1C40F")),
		BarLow:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F39C12")),
		BarCrit: lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
	}
}

func darkTheme() Theme {
	t := lightTheme()
	t.Name = "dark"
	t.Menu = lipgloss.NewStyle().Foreground(lipgloss.Color("#BBBBBB"))
	t.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF"))
	t.Speech = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#AFAFFF"))
	return t
}

// ThemeByName maps the persisted preference to a palette, defaulting to
// light.
func ThemeByName(name string) Theme {
	if name == "dark" {
		return darkTheme()
	}
	return lightTheme()
}

// Next returns the other theme, for the toggle key.
func (t Theme) Next() Theme {
	if t.Name == "light" {
		return darkTheme()
	}
	return lightTheme()
}
