// ABOUTME: Lipgloss themes for the expandable text area and its demo shell
// ABOUTME: Styles for the editor, compact mirror, limit indicator and status bar
package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Primary    lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	EditorBg   lipgloss.Color
	MirrorBg   lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Dim        lipgloss.Color
}

var DefaultTheme = Theme{
	Primary:    lipgloss.Color("#7C3AED"),
	Background: lipgloss.Color("#1E1E2E"),
	Foreground: lipgloss.Color("#CDD6F4"),
	EditorBg:   lipgloss.Color("#313244"),
	MirrorBg:   lipgloss.Color("#181825"),
	Warning:    lipgloss.Color("#F9E2AF"),
	Error:      lipgloss.Color("#F38BA8"),
	Dim:        lipgloss.Color("#6C7086"),
}

var DarkTheme = Theme{
	Primary:    lipgloss.Color("#00FF00"),
	Background: lipgloss.Color("#000000"),
	Foreground: lipgloss.Color("#FFFFFF"),
	EditorBg:   lipgloss.Color("#1A1A1A"),
	MirrorBg:   lipgloss.Color("#0A0A0A"),
	Warning:    lipgloss.Color("#FFFF00"),
	Error:      lipgloss.Color("#FF0000"),
	Dim:        lipgloss.Color("#808080"),
}

var LightTheme = Theme{
	Primary:    lipgloss.Color("#268BD2"),
	Background: lipgloss.Color("#FDF6E3"),
	Foreground: lipgloss.Color("#657B83"),
	EditorBg:   lipgloss.Color("#EEE8D5"),
	MirrorBg:   lipgloss.Color("#F5EFDC"),
	Warning:    lipgloss.Color("#B58900"),
	Error:      lipgloss.Color("#DC322F"),
	Dim:        lipgloss.Color("#93A1A1"),
}

// Names lists the themes GetTheme knows.
var Names = []string{"default", "dark", "light"}

func GetTheme(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme
	case "light":
		return LightTheme
	default:
		return DefaultTheme
	}
}

// Style constructors

func (t Theme) EditorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.EditorBg).
		Foreground(t.Foreground).
		Padding(0, 1)
}

// MirrorStyle renders the read-only text shown in compact mode.
func (t Theme) MirrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.MirrorBg).
		Foreground(t.Foreground).
		Padding(0, 1)
}

func (t Theme) LimitStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Warning).
		Align(lipgloss.Right)
}

// LimitExhaustedStyle is used once no characters are left.
func (t Theme) LimitExhaustedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true).
		Align(lipgloss.Right)
}

func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)
}

func (t Theme) StatusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.Primary).
		Foreground(t.Background).
		Padding(0, 1)
}

func (t Theme) DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Dim)
}
