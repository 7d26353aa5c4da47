package cli

import (
	"fmt"
	"log/slog"

	"github.com/riordanpawley/memento-mori/internal/config"
	"github.com/riordanpawley/memento-mori/internal/ui/grid"
	"github.com/spf13/cobra"
)

const usage = `
Usage: memento-mori [options]

Options:
  --config.color <color>         Set color for days lived (e.g., "red", "#FF0000")
  --config.birthdate <birthdate> Set birthdate (e.g., "01/18/1998", "01.18.1998")
  --view <view>                  Grid to print: lifespan (default), weekly or year
  --verbose                      Log diagnostics to stderr
  -h, --help                     Display this help message
`

// NewRootCommand builds the memento-mori command around deps
func NewRootCommand(deps *Dependencies) *cobra.Command {
	var (
		color     string
		birthdate string
		view      string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:           "memento-mori",
		Short:         "Print your life as a grid of days lived and days left",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose && deps.LogLevel != nil {
				deps.LogLevel.Set(slog.LevelDebug)
			}

			v, err := grid.ParseView(view)
			if err != nil {
				return err
			}

			var o config.Overrides
			if cmd.Flags().Changed("config.color") {
				o.Color = &color
			}
			if cmd.Flags().Changed("config.birthdate") {
				o.Birthdate = &birthdate
			}

			return Run(cmd.Context(), deps, o, v)
		},
	}

	cmd.Flags().StringVar(&color, "config.color", "", "Set color for days lived")
	cmd.Flags().StringVar(&birthdate, "config.birthdate", "", "Set birthdate")
	cmd.Flags().StringVar(&view, "view", string(grid.ViewLifespan), "Grid to print (lifespan, weekly or year)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log diagnostics to stderr")

	cmd.SetOut(deps.Out)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprint(c.OutOrStdout(), usage)
	})

	return cmd
}
