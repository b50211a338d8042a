package domain_test

import (
	"montyhall/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRound(t *testing.T) {
	r := domain.NewRound(5, 3)
	require.Equal(t, 5, r.Doors)
	require.Equal(t, 3, r.Prize)
	require.NotEqual(t, domain.RoundID{}, r.ID)

	prizes := 0
	for door := range r.Doors {
		if r.HasPrize(door) {
			prizes++
			require.Equal(t, 3, door)
		}
	}
	require.Equal(t, 1, prizes, "exactly one door hides the prize")
}

func TestRoundIDsAreUnique(t *testing.T) {
	require.NotEqual(t, domain.NewRoundID().String(), domain.NewRoundID().String())
}

func TestDoorRoleString(t *testing.T) {
	require.Equal(t, "Opened", domain.DoorRoleOpened.String())
	require.Equal(t, "ChosenByContestant", domain.DoorRoleChosenByContestant.String())
	require.Equal(t, "KeptShut", domain.DoorRoleKeptShut.String())
	require.Equal(t, "Unknown", domain.DoorRole(42).String())
}

func TestTrialStatistics(t *testing.T) {
	var s domain.TrialStatistics
	require.Zero(t, s.SwitchWinRate())

	s.Record(domain.Outcome{ShouldHaveSwitched: true})
	s.Record(domain.Outcome{ShouldHaveSwitched: true, Won: true, Switched: true})
	s.Record(domain.Outcome{Won: true})
	s.Record(domain.Outcome{ShouldHaveSwitched: true})

	require.EqualValues(t, 4, s.GamesPlayed)
	require.EqualValues(t, 3, s.SwitchWouldHaveWon)
	require.EqualValues(t, 1, s.StayWouldHaveWon())
	require.InDelta(t, 0.75, s.SwitchWinRate(), 1e-9)
}
