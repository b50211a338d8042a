package main

import (
	"context"
	"io"
	"montyhall/internal/config"
	"montyhall/internal/console"
	"montyhall/internal/game"
	"montyhall/internal/stats"

	"github.com/spf13/cobra"
)

func simulateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulates rounds of a contestant who never switches and reports how often switching would have won",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runOptionsFromFlags(cmd, runOptions{
				doors:  cfg.Game.Doors,
				rounds: cfg.Game.SimulatedRounds,
				seed:   cfg.Game.Seed,
			})
			quiet, _ := cmd.Flags().GetBool("quiet")
			if cmd.Flags().Changed("metrics") {
				cfg.Metrics.Enabled, _ = cmd.Flags().GetBool("metrics")
			}

			return simulate(cmd.Context(), cfg, opts, quiet, cmd.OutOrStdout())
		},
	}
	addGameFlags(cmd)
	cmd.Flags().BoolP("quiet", "q", false, "Only print the final summary")
	cmd.Flags().Bool("metrics", false, "Print Prometheus metrics after the summary")

	return cmd
}

func simulate(ctx context.Context, cfg *config.Config, opts runOptions, quiet bool, out io.Writer) error {
	src, err := newSource(ctx, opts.seed)
	if err != nil {
		return err
	}
	m, err := newMetrics(cfg.Metrics.Enabled)
	if err != nil {
		return err
	}

	consoleOpts := console.Options{
		NarrateRounds: cfg.Output.NarrateRounds,
		ProgressEvery: cfg.Output.ProgressEvery,
	}
	if quiet {
		consoleOpts = console.Options{}
	}
	reporter := console.New(out, consoleOpts)

	engine := game.New(game.Deps{Source: src, Reporter: reporter})
	totals, err := stats.New(engine, reporter, m).PlayMany(ctx, opts.doors, opts.rounds, true)
	if err != nil {
		return err
	}

	reporter.Summary(totals, opts.doors)

	return writeMetrics(ctx, m, out)
}
