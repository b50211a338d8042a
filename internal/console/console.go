// Package console narrates rounds and running totals to a terminal. Doors are
// shown to people numbered from 1.
package console

import (
	"context"
	"fmt"
	"io"
	"montyhall/internal/game"
	"montyhall/internal/stats"
	"montyhall/pkg/domain"
)

// Options control how chatty the Reporter is.
type Options struct {
	// NarrateRounds prints every step of every round.
	NarrateRounds bool
	// ProgressEvery prints the running totals every N rounds. Zero disables
	// progress output.
	ProgressEvery uint
}

// Reporter writes game narration and statistics to an io.Writer.
type Reporter struct {
	out  io.Writer
	opts Options
}

var (
	_ game.Reporter  = (*Reporter)(nil)
	_ stats.Reporter = (*Reporter)(nil)
)

// New creates a Reporter writing to out.
func New(out io.Writer, opts Options) *Reporter {
	return &Reporter{out: out, opts: opts}
}

func (r *Reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// RoundStarted implements game.Reporter.
func (r *Reporter) RoundStarted(_ context.Context, _ *domain.Round) {
	if !r.opts.NarrateRounds {
		return
	}
	r.printf("Welcome to the Monty Hall Game!\n")
}

// GuessSimulated implements game.Reporter.
func (r *Reporter) GuessSimulated(_ context.Context, round *domain.Round) {
	if !r.opts.NarrateRounds {
		return
	}
	r.printf("The simulation chooses door %d\n", round.InitialGuess+1)
}

// DoorsOpened implements game.Reporter.
func (r *Reporter) DoorsOpened(_ context.Context, _ *domain.Round, reveals []domain.DoorReveal) {
	if !r.opts.NarrateRounds {
		return
	}
	for _, reveal := range reveals {
		door := reveal.Door + 1
		switch reveal.Role {
		case domain.DoorRoleChosenByContestant:
			r.printf("Monty Hall does not open door %d since that's the door the user chose.\n", door)
		case domain.DoorRoleKeptShut:
			r.printf("Monty Hall keeps door %d closed.\n", door)
		case domain.DoorRoleOpened:
			r.printf("Monty Hall opens door %d. There is nothing behind it.\n", door)
		}
	}
}

// RoundFinished implements game.Reporter.
func (r *Reporter) RoundFinished(_ context.Context, round *domain.Round, outcome domain.Outcome) {
	if !r.opts.NarrateRounds {
		return
	}
	r.printf("Monty Hall opens door %d.\n", round.FinalGuess+1)

	switch {
	case outcome.Won && outcome.Switched:
		r.printf("Congratulations, you won the prize! Good thing you switched doors!\n")
	case outcome.Won:
		r.printf("Congratulations, you won the prize! Good thing you didn't switch doors!\n")
	case outcome.Switched:
		r.printf("Sorry, you didn't win the prize! Guess you shouldn't have switched doors!\n")
	default:
		r.printf("Sorry, you didn't win the prize! Guess you should have switched doors!\n")
	}
}

// Progress implements stats.Reporter.
func (r *Reporter) Progress(_ context.Context, s domain.TrialStatistics) {
	if r.opts.ProgressEvery == 0 || s.GamesPlayed%r.opts.ProgressEvery != 0 {
		return
	}
	r.printf("Played %d games\n", s.GamesPlayed)
	r.printf("Should have switched %d times\n", s.SwitchWouldHaveWon)
}

// Summary prints the final totals of a run against the theoretical rates.
func (r *Reporter) Summary(s domain.TrialStatistics, doors int) {
	fit := stats.SwitchGoodnessOfFit(s, doors)

	r.printf("Played %d games with %d doors\n", s.GamesPlayed, doors)
	if s.GamesPlayed == 0 {
		return
	}
	r.printf("Switching would have won %d times (%.2f%%, expected %.2f%%)\n",
		s.SwitchWouldHaveWon, fit.Observed*100, fit.Expected*100)
	r.printf("Staying would have won %d times (%.2f%%, expected %.2f%%)\n",
		s.StayWouldHaveWon(), (1-fit.Observed)*100, (1-fit.Expected)*100)
	r.printf("Chi-squared against the expected rates: %.3f\n", fit.ChiSquared)
}

// TooManyInvalidInputs tells the contestant the run is over.
func (r *Reporter) TooManyInvalidInputs() {
	r.printf("Too many errors reading the user guess.  Exiting.\n")
}
