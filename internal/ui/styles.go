package ui

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/roadmapper/internal/roadmap"
)

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorCyan      = lipgloss.Color("87")  // Cyan for info

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)

	// Input Box Style for the topic field
	StyleInputBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)

	// Focused input (pink accent)
	StyleInputBoxFocused = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	// Components
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	StyleSectionTitle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Underline(true)
)

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}

var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// hexOr returns v when it is a usable hex color and fallback otherwise.
func hexOr(v, fallback string) lipgloss.Color {
	if hexColorRegex.MatchString(v) {
		return lipgloss.Color(v)
	}
	return lipgloss.Color(fallback)
}

// Theme colors a roadmap document with the palette the model picked. Missing
// or unparseable colors fall back to the defaults in package roadmap.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color

	Title       lipgloss.Style
	Section     lipgloss.Style
	ModuleTitle lipgloss.Style
	Badge       lipgloss.Style
	Concept     lipgloss.Style
	Link        lipgloss.Style
	Correct     lipgloss.Style
	Cursor      lipgloss.Style
}

// NewTheme builds a Theme from p.
func NewTheme(p roadmap.Palette) Theme {
	t := Theme{
		Primary:    hexOr(p.PrimaryOr(roadmap.DefaultPrimary), roadmap.DefaultPrimary),
		Secondary:  hexOr(p.SecondaryOr(roadmap.DefaultSecondary), roadmap.DefaultSecondary),
		Accent:     hexOr(p.AccentOr(roadmap.DefaultAccent), roadmap.DefaultAccent),
		Background: hexOr(p.BackgroundOr(roadmap.DefaultBackground), roadmap.DefaultBackground),
	}

	t.Title = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	t.Section = lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Underline(true)
	t.ModuleTitle = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	t.Badge = lipgloss.NewStyle().Foreground(t.Background).Background(t.Secondary).Bold(true).Padding(0, 1)
	t.Concept = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.Link = lipgloss.NewStyle().Foreground(t.Accent).Underline(true)
	t.Correct = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	t.Cursor = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	return t
}
