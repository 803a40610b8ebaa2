// Package ui provides the interactive catalog browser and the lipgloss
// rendering shared with the scripted commands.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#1f2933")
	LightPrimary    = lipgloss.Color("#cc0000") // Dex red
	LightMuted      = lipgloss.Color("#7b8794")
	LightBorder     = lipgloss.Color("#cbd2d9")
	LightSelection  = lipgloss.Color("#fde2e2")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#141d2b")
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#ff5c5c")
	DarkMuted      = lipgloss.Color("#9aa5b1")
	DarkBorder     = lipgloss.Color("#2a3850")
	DarkSelection  = lipgloss.Color("#3e2230")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Favorite    = lipgloss.Color("#ffc107")
)

// typeColors are the conventional badge colors per type tag.
var typeColors = map[string]lipgloss.Color{
	"normal":   lipgloss.Color("#a8a77a"),
	"fire":     lipgloss.Color("#ee8130"),
	"water":    lipgloss.Color("#6390f0"),
	"electric": lipgloss.Color("#f7d02c"),
	"grass":    lipgloss.Color("#7ac74c"),
	"ice":      lipgloss.Color("#96d9d6"),
	"fighting": lipgloss.Color("#c22e28"),
	"poison":   lipgloss.Color("#a33ea1"),
	"ground":   lipgloss.Color("#e2bf65"),
	"flying":   lipgloss.Color("#a98ff3"),
	"psychic":  lipgloss.Color("#f95587"),
	"bug":      lipgloss.Color("#a6b91a"),
	"rock":     lipgloss.Color("#b6a136"),
	"ghost":    lipgloss.Color("#735797"),
	"dragon":   lipgloss.Color("#6f35fc"),
	"dark":     lipgloss.Color("#705746"),
	"steel":    lipgloss.Color("#b7b7ce"),
	"fairy":    lipgloss.Color("#d685ad"),
}

// TypeColor returns the badge color for tag, or a neutral grey.
func TypeColor(tag string) lipgloss.Color {
	if c, ok := typeColors[tag]; ok {
		return c
	}
	return lipgloss.Color("#68a090")
}

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Selection  lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Selection:  LightSelection,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Selection:  DarkSelection,
		IsDark:     true,
	}
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Header   lipgloss.Style
	Number   lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Favorite lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	BarFill  lipgloss.Style
	BarEmpty lipgloss.Style
}

// NewStyles creates styles for the light or dark theme.
func NewStyles(dark bool) Styles {
	theme := LightTheme()
	if dark {
		theme = DarkTheme()
	}
	return NewStylesWithTheme(theme)
}

// NewStylesWithTheme creates styles with a specific theme
func NewStylesWithTheme(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			MarginTop(1),
		Number: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			Background(theme.Selection),
		Favorite: lipgloss.NewStyle().
			Foreground(Favorite),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(Destructive),
		Help: lipgloss.NewStyle().
			Foreground(theme.Muted).
			MarginTop(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		BarFill: lipgloss.NewStyle().
			Foreground(theme.Primary),
		BarEmpty: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// TypeBadge renders tag as a colored pill with its display name.
func (s Styles) TypeBadge(tag string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(TypeColor(tag)).
		Padding(0, 1).
		Render(typeLabel(tag))
}
