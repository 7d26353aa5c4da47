package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/riordanpawley/memento-mori/internal/config"
	"github.com/riordanpawley/memento-mori/internal/domain"
	"github.com/riordanpawley/memento-mori/internal/ui/grid"
)

// Run loads the config, applies overrides, asks for a birthdate if needed,
// saves the result and prints the grid.
func Run(ctx context.Context, deps *Dependencies, o config.Overrides, view grid.View) error {
	cfg := deps.Store.Load()

	cfg, applied := config.ApplyOverrides(cfg, o)
	if applied.Color == config.Ignored {
		deps.Logger.Warn("ignoring invalid color", "color", *o.Color)
	}
	if applied.Birthdate == config.Ignored {
		deps.Logger.Warn("ignoring invalid birthdate", "birthdate", *o.Birthdate)
	}

	now := deps.Now()

	cfg, birth, err := resolveBirthdate(ctx, deps, cfg, now.Location())
	if err != nil {
		return err
	}

	if err := deps.Store.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	deps.Logger.Debug("rendering grid", "view", view, "birthdate", birth.String())
	return grid.New(deps.Out).Render(view, cfg.Color, birth.Time(), now)
}

// resolveBirthdate returns cfg with a usable birthdate, prompting when the
// stored one is missing or not a calendar date.
func resolveBirthdate(ctx context.Context, deps *Dependencies, cfg config.Config, loc *time.Location) (config.Config, domain.Birthdate, error) {
	if cfg.HasBirthdate() {
		b := domain.ParseBirthdate(*cfg.Birthdate, loc)
		if b.Valid() {
			return cfg, b, nil
		}
		deps.Logger.Warn("stored birthdate is not a valid date, asking again", "birthdate", *cfg.Birthdate)
	}

	answer, err := deps.Prompter.Birthdate(ctx)
	if err != nil {
		return cfg, domain.Birthdate{}, fmt.Errorf("failed to read birthdate: %w", err)
	}
	cfg = cfg.WithBirthdate(answer)

	b := domain.ParseBirthdate(answer, loc)
	if !b.Valid() {
		return cfg, b, b.Err()
	}
	return cfg, b, nil
}
