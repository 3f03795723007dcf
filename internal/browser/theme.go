package browser

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the browser.
type Theme struct {
	Name string

	Text          string
	Muted         string
	Accent        string
	Selection     string // Selected item background
	SelectionText string // Selected item text
	Focus         string // Focused item background
	FocusText     string // Focused item text
	Border        string
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Faint(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Selection)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Focused: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Focus)).
			Foreground(lipgloss.Color(t.FocusText)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Frame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
	}
}

// Styles holds the rendered lipgloss styles for the browser.
type Styles struct {
	Item     lipgloss.Style
	Disabled lipgloss.Style
	Selected lipgloss.Style
	Focused  lipgloss.Style
	Header   lipgloss.Style
	Status   lipgloss.Style
	Frame    lipgloss.Style
}

var themes = []Theme{
	{
		Name:          "dark",
		Text:          "#c0caf5",
		Muted:         "#565f89",
		Accent:        "#7aa2f7",
		Selection:     "#283b4d",
		SelectionText: "#9ece6a",
		Focus:         "#7aa2f7",
		FocusText:     "#1a1b26",
		Border:        "#3b4261",
	},
	{
		Name:          "light",
		Text:          "#343b58",
		Muted:         "#9699a3",
		Accent:        "#2e7de9",
		Selection:     "#d5e3f1",
		SelectionText: "#387068",
		Focus:         "#2e7de9",
		FocusText:     "#e6e7ed",
		Border:        "#a8aecb",
	},
}

// themeByName returns the named theme, defaulting to the first one.
func themeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// nextTheme cycles to the theme after the named one.
func nextTheme(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
