package main

import (
	"context"
	"errors"
	"io"
	"montyhall/internal/config"
	"montyhall/internal/console"
	"montyhall/internal/game"
	"montyhall/internal/stats"
	"montyhall/pkg/logger"
	"montyhall/pkg/metrics"
	"montyhall/pkg/prompt"
	"montyhall/pkg/rng"
	"montyhall/pkg/serrors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runOptions are the per-run game settings after flags override config.
type runOptions struct {
	doors  int
	rounds int
	seed   int64
}

// addGameFlags registers the flags shared by play and simulate. Unset flags
// fall back to the config file.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("doors", "d", 0, "Number of doors (default from config, 3)")
	cmd.Flags().IntP("rounds", "n", 0, "Number of rounds to play (default from config)")
	cmd.Flags().Int64("seed", 0, "Random seed, 0 picks one (default from config)")
}

// runOptionsFromFlags starts from the config values and applies every flag
// the user actually set.
func runOptionsFromFlags(cmd *cobra.Command, defaults runOptions) runOptions {
	opts := defaults
	if cmd.Flags().Changed("doors") {
		opts.doors, _ = cmd.Flags().GetInt("doors")
	}
	if cmd.Flags().Changed("rounds") {
		opts.rounds, _ = cmd.Flags().GetInt("rounds")
	}
	if cmd.Flags().Changed("seed") {
		opts.seed, _ = cmd.Flags().GetInt64("seed")
	}

	return opts
}

// newSource seeds the random source, picking a random seed when none is set.
// The seed is logged so a run can be replayed.
func newSource(ctx context.Context, seed int64) (rng.Source, error) {
	if seed == 0 {
		var err error
		if seed, err = rng.NewSeed(); err != nil {
			return nil, err
		}
	}
	logger.Info(ctx, "seeded random source", zap.Int64("seed", seed))

	return rng.New(seed), nil
}

// newMetrics returns nil when metrics are disabled.
func newMetrics(enabled bool) (*metrics.Metrics, error) {
	if !enabled {
		return nil, nil //nolint: nilnil
	}

	return metrics.New()
}

func playCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Plays interactive rounds, reading door numbers from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runOptionsFromFlags(cmd, runOptions{
				doors:  cfg.Game.Doors,
				rounds: cfg.Game.Rounds,
				seed:   cfg.Game.Seed,
			})

			return play(cmd.Context(), cfg, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	addGameFlags(cmd)

	return cmd
}

// play runs interactive rounds. A single round prints no running totals,
// matching a plain game of Monty Hall.
func play(ctx context.Context, cfg *config.Config, opts runOptions, in io.Reader, out io.Writer) error {
	src, err := newSource(ctx, opts.seed)
	if err != nil {
		return err
	}
	m, err := newMetrics(cfg.Metrics.Enabled)
	if err != nil {
		return err
	}

	progressEvery := cfg.Output.ProgressEvery
	if opts.rounds == 1 {
		progressEvery = 0
	}
	reporter := console.New(out, console.Options{NarrateRounds: true, ProgressEvery: progressEvery})

	engine := game.New(game.Deps{
		Source:   src,
		Chooser:  prompt.NewConsole(in, out, prompt.Options{MaxAttempts: cfg.Prompt.MaxAttempts}),
		Reporter: reporter,
	})

	_, err = stats.New(engine, reporter, m).PlayMany(ctx, opts.doors, opts.rounds, false)
	if errors.Is(err, serrors.ErrTooManyInvalidInputs) {
		reporter.TooManyInvalidInputs()
	}
	if err != nil {
		return err
	}

	return writeMetrics(ctx, m, out)
}

// writeMetrics dumps and shuts down m when metrics are enabled.
func writeMetrics(ctx context.Context, m *metrics.Metrics, out io.Writer) error {
	if m == nil {
		return nil
	}
	if err := m.Write(out); err != nil {
		return err
	}

	return m.Shutdown(ctx)
}
