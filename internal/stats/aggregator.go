// Package stats plays many rounds in a row and keeps track of how often
// switching doors would have won.
package stats

import (
	"context"
	"fmt"
	"montyhall/internal/game"
	"montyhall/pkg/domain"
	"montyhall/pkg/logger"
	"montyhall/pkg/metrics"
	"montyhall/pkg/serrors"
	"time"

	"go.uber.org/zap"
)

// Reporter is told about the running totals after every round.
type Reporter interface {
	Progress(ctx context.Context, stats domain.TrialStatistics)
}

// NopReporter discards progress reports.
type NopReporter struct{}

func (NopReporter) Progress(context.Context, domain.TrialStatistics) {}

// Aggregator drives a game.Player for many rounds. Rounds are played strictly
// one after another since interactive rounds share one input stream.
type Aggregator struct {
	player   game.Player
	reporter Reporter
	metrics  *metrics.Metrics
}

// New creates an Aggregator. reporter and m may be nil.
func New(player game.Player, reporter Reporter, m *metrics.Metrics) *Aggregator {
	if reporter == nil {
		reporter = NopReporter{}
	}

	return &Aggregator{
		player:   player,
		reporter: reporter,
		metrics:  m,
	}
}

// PlayMany plays rounds rounds with the given number of doors and returns the
// totals. The configuration is checked before the first round. The first
// failing round stops the run; the totals of the rounds completed so far are
// returned along with the error.
func (a *Aggregator) PlayMany(ctx context.Context, doors, rounds int, simulate bool) (domain.TrialStatistics, error) {
	var totals domain.TrialStatistics

	if err := game.ValidateDoors(doors); err != nil {
		return totals, err
	}
	if rounds < 0 {
		return totals, serrors.With(serrors.ErrInvalidConfiguration, "number of rounds must not be negative, got %d", rounds)
	}

	ctx = logger.WithFields(ctx, zap.Int("doors", doors), zap.Bool("simulated", simulate))
	logger.Info(ctx, "playing rounds", zap.Int("rounds", rounds))

	for i := range rounds {
		start := time.Now()
		outcome, err := a.player.PlayRound(ctx, doors, simulate)
		if err != nil {
			logger.Warn(ctx, "round failed, stopping", zap.Int("round", i+1), zap.Error(err))

			return totals, fmt.Errorf("could not play round %d: %w", i+1, err)
		}

		totals.Record(outcome)
		a.metrics.RecordRound(ctx, simulate, outcome, time.Since(start))
		a.reporter.Progress(ctx, totals)
	}

	logger.Info(ctx, "rounds played",
		zap.Uint("gamesPlayed", totals.GamesPlayed),
		zap.Uint("switchWouldHaveWon", totals.SwitchWouldHaveWon))

	return totals, nil
}
