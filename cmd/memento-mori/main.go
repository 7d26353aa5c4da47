// Package main provides the entry point for memento-mori.
//
// memento-mori prints a grid with one dot per day of a 70-year life, coloring
// the days already lived. The birthdate and color are kept in config.json next
// to the executable.
//
// Usage:
//
//	memento-mori [--config.color <color>] [--config.birthdate <date>] [--view lifespan|weekly]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/riordanpawley/memento-mori/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	deps, err := cli.NewDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := cli.NewRootCommand(deps).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
