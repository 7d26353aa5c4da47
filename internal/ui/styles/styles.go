package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/memento-mori/internal/domain"
)

// Glyphs
const (
	Dot   = " • "
	Block = "  "
)

// Styles holds the prompt styles
type Styles struct {
	Question    lipgloss.Style
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
	Error       lipgloss.Style
	Hint        lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Question: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(Text),

		Placeholder: lipgloss.NewStyle().
			Foreground(Overlay0),

		Cursor: lipgloss.NewStyle().
			Foreground(Mauve),

		Error: lipgloss.NewStyle().
			Foreground(Red),

		Hint: lipgloss.NewStyle().
			Foreground(Subtext0),
	}
}

// Color resolves a configured color to a lipgloss color. Named colors map to
// the ANSI palette and 3-digit hex is expanded; anything else is passed
// through unchanged.
func Color(s string) lipgloss.Color {
	if c, ok := NamedColors[strings.ToLower(s)]; ok {
		return c
	}
	return lipgloss.Color(domain.ExpandHex(s))
}
