package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/riordanpawley/memento-mori/internal/config"
	"github.com/riordanpawley/memento-mori/internal/logging"
	"github.com/riordanpawley/memento-mori/internal/ui/prompt"
)

// Dependencies holds everything a run needs from the outside world
type Dependencies struct {
	Store    *config.Store
	Prompter prompt.Prompter
	Out      io.Writer
	Logger   *slog.Logger
	LogLevel *slog.LevelVar
	Now      func() time.Time
}

// NewDependencies wires the real config file, terminal and clock
func NewDependencies() (*Dependencies, error) {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := logging.New(level)

	path, err := config.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	return &Dependencies{
		Store:    config.NewStore(path, logger),
		Prompter: prompt.ForInput(os.Stdin, os.Stdout, time.Local),
		Out:      os.Stdout,
		Logger:   logger,
		LogLevel: level,
		Now:      time.Now,
	}, nil
}
