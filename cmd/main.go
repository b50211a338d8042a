// Package main provides the CLI entrypoint for the Monty Hall game.
// It wires subcommands (play, simulate), loads configuration, and initializes logging.
// Without a subcommand it plays a single interactive round.
package main

import (
	"context"
	"fmt"
	"log"
	"montyhall/internal/config"
	"montyhall/pkg/logger"
	"montyhall/pkg/serrors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newRootCommand builds the command tree. cfg is filled in before any
// subcommand runs.
func newRootCommand() *cobra.Command {
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:           "montyhall",
		Short:         "Plays or simulates the Monty Hall game",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}
			*cfg = *loaded

			if err := logger.Setup(cfg.Environment, cfg.Log.Level); err != nil {
				return fmt.Errorf("could not setup logger: %w", err)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd.Context(), cfg, runOptions{
				doors:  cfg.Game.Doors,
				rounds: 1,
				seed:   cfg.Game.Seed,
			}, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		playCommand(cfg),
		simulateCommand(cfg),
	)

	return rootCmd
}

// main executes the CLI and maps any failure to exit code 1.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	// failures before the config is loaded still need somewhere to go
	if err := logger.Setup(logger.ProductionEnvironment, "warn"); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		reportFailure(ctx, err)
		logger.Sync(ctx)
		os.Exit(1) //nolint: gocritic
	}
	logger.Sync(ctx)
}

// reportFailure logs why a command failed.
func reportFailure(ctx context.Context, err error) {
	switch serrors.KindOf(err) {
	case serrors.ErrTooManyInvalidInputs:
		// the console already told the contestant why the game ended
		logger.Info(ctx, "game ended after too many invalid inputs", zap.Error(err))
	case serrors.ErrInvalidConfiguration:
		logger.Error(ctx, "invalid configuration", zap.Error(err))
	default:
		logger.Error(ctx, "command failed", zap.Error(err))
	}
}
