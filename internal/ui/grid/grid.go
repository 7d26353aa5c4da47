// Package grid prints the days-lived grid and its summary.
package grid

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/riordanpawley/memento-mori/internal/domain"
	"github.com/riordanpawley/memento-mori/internal/ui/styles"
)

// Wrap widths, in glyphs per line
const (
	LifespanColumns = 50
	WeeklyColumns   = 7
)

// View selects which grid is printed
type View string

const (
	ViewLifespan View = "lifespan"
	ViewWeekly   View = "weekly"
	ViewYear     View = "year"
)

// ParseView validates a --view value
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(s)) {
	case ViewLifespan:
		return ViewLifespan, nil
	case ViewWeekly:
		return ViewWeekly, nil
	case ViewYear:
		return ViewYear, nil
	default:
		return "", fmt.Errorf("unknown view %q (must be %s, %s or %s)", s, ViewLifespan, ViewWeekly, ViewYear)
	}
}

// Renderer writes grids to an output stream
type Renderer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
}

// Option configures a Renderer
type Option func(*Renderer)

// WithColorProfile forces the color profile instead of detecting it from the writer
func WithColorProfile(p termenv.Profile) Option {
	return func(r *Renderer) {
		r.renderer.SetColorProfile(p)
	}
}

// New creates a Renderer writing to out
func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:      out,
		renderer: lipgloss.NewRenderer(out),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render prints the grid for view, measuring from birth to now
func (r *Renderer) Render(view View, color string, birth, now time.Time) error {
	switch view {
	case ViewWeekly:
		return r.Weekly(color, domain.WeeklyWindow(birth, now))
	case ViewYear:
		// same blocks as weekly, counted from the last birthday
		return r.Weekly(color, domain.YearWindow(birth, now))
	default:
		return r.Lifespan(color, domain.LifespanWindow(birth, now))
	}
}

// Lifespan prints one dot per day of w followed by the days and years left
func (r *Renderer) Lifespan(color string, w domain.Window) error {
	lived := r.renderer.NewStyle().Foreground(styles.Color(color)).Render(styles.Dot)
	remaining := r.renderer.NewStyle().Foreground(styles.Remaining).Render(styles.Dot)

	grid := layout(w, lived, remaining, LifespanColumns)

	_, err := fmt.Fprintf(r.out, "%s\n \nYou have:\n%d days left. Or\n%d years left.\n",
		grid, w.Remaining(), w.RemainingYears())
	return err
}

// Weekly prints one background-colored block per day of w, a week per line
func (r *Renderer) Weekly(color string, w domain.Window) error {
	lived := r.renderer.NewStyle().Background(styles.Color(color)).Render(styles.Block)
	remaining := r.renderer.NewStyle().Background(styles.Remaining).Render(styles.Block)

	_, err := fmt.Fprintln(r.out, layout(w, lived, remaining, WeeklyColumns))
	return err
}

// layout places w.Total cells, the first w.Lived of them filled, breaking the
// line after every columns cells.
func layout(w domain.Window, lived, remaining string, columns int) string {
	var sb strings.Builder
	if w.Total > 0 {
		sb.Grow(w.Total * (len(lived) + 1))
	}

	for i := 0; i < w.Total; i++ {
		if i < w.Lived {
			sb.WriteString(lived)
		} else {
			sb.WriteString(remaining)
		}
		if (i+1)%columns == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
