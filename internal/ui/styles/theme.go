package styles

import "github.com/charmbracelet/lipgloss"

// Catppuccin Macchiato palette, used for the prompt
var (
	Subtext0 = lipgloss.Color("#a5adcb")
	Overlay0 = lipgloss.Color("#6e738d")
	Text     = lipgloss.Color("#cad3f5")
	Red      = lipgloss.Color("#ed8796")
	Blue     = lipgloss.Color("#8aadf4")
	Mauve    = lipgloss.Color("#c6a0f6")
)

// Remaining is the color of days not yet lived
var Remaining = lipgloss.Color("2")

// NamedColors maps accepted color names to the ANSI base palette
var NamedColors = map[string]lipgloss.Color{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
}
