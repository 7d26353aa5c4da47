package prompt

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/memento-mori/internal/domain"
	"github.com/riordanpawley/memento-mori/internal/ui/styles"
)

// Question is shown above the birthdate input
const Question = "Please enter your birthdate (MM/DD/YYYY):"

// Model is a single-field bubbletea form that accepts a birthdate
type Model struct {
	input    textinput.Model
	styles   *styles.Styles
	loc      *time.Location
	err      error
	result   domain.Birthdate
	done     bool
	canceled bool
}

// NewModel creates a birthdate form; dates are interpreted in loc
func NewModel(loc *time.Location) *Model {
	s := styles.New()

	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "MM/DD/YYYY"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 24
	ti.TextStyle = s.Input
	ti.PlaceholderStyle = s.Placeholder
	ti.Cursor.Style = s.Cursor

	return &Model{
		input:  ti,
		styles: s,
		loc:    loc,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			b := domain.ParseBirthdate(m.input.Value(), m.loc)
			if !b.Valid() {
				m.err = b.Err()
				return m, nil
			}
			m.result = b
			m.done = true
			return m, tea.Quit

		case tea.KeyEsc, tea.KeyCtrlC:
			m.canceled = true
			return m, tea.Quit
		}
	}

	prevValue := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Editing clears a stale validation error
	if m.input.Value() != prevValue {
		m.err = nil
	}

	return m, cmd
}

// View implements tea.Model
func (m *Model) View() string {
	if m.done || m.canceled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Question.Render(Question))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Hint.Render("enter to confirm • esc to cancel"))
	b.WriteString("\n")
	return b.String()
}

// Result returns the accepted birthdate and whether the form completed
func (m *Model) Result() (domain.Birthdate, bool) {
	return m.result, m.done
}

// Canceled reports whether the user left the form without answering
func (m *Model) Canceled() bool {
	return m.canceled
}
