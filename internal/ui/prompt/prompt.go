// Package prompt asks the user for a birthdate when none is configured.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/memento-mori/internal/domain"
	"golang.org/x/term"
)

// Prompter asks for a birthdate and returns it in MM/DD/YYYY form
type Prompter interface {
	Birthdate(ctx context.Context) (string, error)
}

// ForInput returns a TUI prompter when in is a terminal and a line prompter otherwise
func ForInput(in *os.File, out io.Writer, loc *time.Location) Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return &TUI{In: in, Out: out, Location: loc}
	}
	return NewLine(in, out, loc)
}

// TUI prompts with an interactive bubbletea form
type TUI struct {
	In       io.Reader
	Out      io.Writer
	Location *time.Location
}

// Birthdate runs the form until the user confirms a valid date or cancels
func (p *TUI) Birthdate(ctx context.Context) (string, error) {
	model := NewModel(p.Location)
	program := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithInput(p.In),
		tea.WithOutput(p.Out),
	)

	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if errors.Is(err, tea.ErrInterrupted) {
			return "", domain.ErrUserCanceled
		}
		return "", fmt.Errorf("birthdate prompt failed: %w", err)
	}

	m, ok := final.(*Model)
	if !ok || m.Canceled() {
		return "", domain.ErrUserCanceled
	}
	b, done := m.Result()
	if !done {
		return "", domain.ErrUserCanceled
	}
	return b.String(), nil
}

// Line prompts by reading whole lines, for input that is not a terminal
type Line struct {
	scanner  *bufio.Scanner
	out      io.Writer
	location *time.Location
}

// NewLine creates a line prompter reading from in and writing to out
func NewLine(in io.Reader, out io.Writer, loc *time.Location) *Line {
	return &Line{
		scanner:  bufio.NewScanner(in),
		out:      out,
		location: loc,
	}
}

// Birthdate reads lines until one parses as a date. End of input returns
// domain.ErrNoInput.
func (p *Line) Birthdate(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		fmt.Fprintf(p.out, "%s ", Question)
		if !p.scanner.Scan() {
			fmt.Fprintln(p.out)
			if err := p.scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read birthdate: %w", err)
			}
			return "", domain.ErrNoInput
		}

		b := domain.ParseBirthdate(p.scanner.Text(), p.location)
		if b.Valid() {
			return b.String(), nil
		}
		fmt.Fprintln(p.out, b.Err())
	}
}
