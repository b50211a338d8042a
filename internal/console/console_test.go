package console_test

import (
	"bytes"
	"context"
	"montyhall/internal/console"
	"montyhall/internal/game"
	"montyhall/pkg/domain"
	"montyhall/pkg/rng"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReporter_NarratesRound(t *testing.T) {
	out := &bytes.Buffer{}
	r := console.New(out, console.Options{NarrateRounds: true})
	ctx := context.Background()

	round := domain.NewRound(3, 1)
	round.InitialGuess = 0
	round.KeptShut = 1
	round.FinalGuess = 1

	r.RoundStarted(ctx, round)
	r.GuessSimulated(ctx, round)
	r.DoorsOpened(ctx, round, game.OpenDoors(round))
	r.RoundFinished(ctx, round, game.DetermineOutcome(round.Prize, round.InitialGuess, round.FinalGuess))

	require.Equal(t, strings.Join([]string{
		"Welcome to the Monty Hall Game!",
		"The simulation chooses door 1",
		"Monty Hall does not open door 1 since that's the door the user chose.",
		"Monty Hall keeps door 2 closed.",
		"Monty Hall opens door 3. There is nothing behind it.",
		"Monty Hall opens door 2.",
		"Congratulations, you won the prize! Good thing you switched doors!",
		"",
	}, "\n"), out.String())
}

func TestReporter_OutcomeMessages(t *testing.T) {
	tests := []struct {
		outcome domain.Outcome
		want    string
	}{
		{outcome: domain.Outcome{Won: true, Switched: true}, want: "Good thing you switched doors!"},
		{outcome: domain.Outcome{Won: true}, want: "Good thing you didn't switch doors!"},
		{outcome: domain.Outcome{Switched: true}, want: "Guess you shouldn't have switched doors!"},
		{outcome: domain.Outcome{ShouldHaveSwitched: true}, want: "Guess you should have switched doors!"},
	}

	for _, tt := range tests {
		out := &bytes.Buffer{}
		console.New(out, console.Options{NarrateRounds: true}).
			RoundFinished(context.Background(), domain.NewRound(3, 0), tt.outcome)
		require.Contains(t, out.String(), tt.want)
	}
}

func TestReporter_QuietSkipsNarration(t *testing.T) {
	out := &bytes.Buffer{}
	engine := game.New(game.Deps{
		Source:   rng.New(1),
		Reporter: console.New(out, console.Options{}),
	})

	_, err := engine.PlayRound(context.Background(), 3, true)
	require.NoError(t, err)
	require.Empty(t, out.String())
}

func TestReporter_Progress(t *testing.T) {
	out := &bytes.Buffer{}
	r := console.New(out, console.Options{ProgressEvery: 2})
	ctx := context.Background()

	r.Progress(ctx, domain.TrialStatistics{GamesPlayed: 1, SwitchWouldHaveWon: 1})
	r.Progress(ctx, domain.TrialStatistics{GamesPlayed: 2, SwitchWouldHaveWon: 1})

	require.Equal(t, "Played 2 games\nShould have switched 1 times\n", out.String())

	out.Reset()
	console.New(out, console.Options{}).Progress(ctx, domain.TrialStatistics{GamesPlayed: 2})
	require.Empty(t, out.String())
}

func TestReporter_Summary(t *testing.T) {
	out := &bytes.Buffer{}
	r := console.New(out, console.Options{})

	r.Summary(domain.TrialStatistics{GamesPlayed: 300, SwitchWouldHaveWon: 200}, 3)
	text := out.String()
	require.Contains(t, text, "Played 300 games with 3 doors")
	require.Contains(t, text, "Switching would have won 200 times (66.67%, expected 66.67%)")
	require.Contains(t, text, "Staying would have won 100 times (33.33%, expected 33.33%)")
	require.Contains(t, text, "Chi-squared against the expected rates: 0.000")

	out.Reset()
	r.Summary(domain.TrialStatistics{}, 3)
	require.Equal(t, "Played 0 games with 3 doors\n", out.String())
}

func TestReporter_TooManyInvalidInputs(t *testing.T) {
	out := &bytes.Buffer{}
	console.New(out, console.Options{}).TooManyInvalidInputs()
	require.Equal(t, "Too many errors reading the user guess.  Exiting.\n", out.String())
}
