package domain

// TrialStatistics accumulates the results of many rounds.
type TrialStatistics struct {
	// GamesPlayed is the number of completed rounds.
	GamesPlayed uint `json:"gamesPlayed"`
	// SwitchWouldHaveWon counts rounds in which switching was the winning
	// move. It never exceeds GamesPlayed.
	SwitchWouldHaveWon uint `json:"switchWouldHaveWon"`
}

// Record folds one round's outcome into the totals.
func (s *TrialStatistics) Record(outcome Outcome) {
	s.GamesPlayed++
	if outcome.ShouldHaveSwitched {
		s.SwitchWouldHaveWon++
	}
}

// StayWouldHaveWon counts rounds in which keeping the initial guess won.
func (s TrialStatistics) StayWouldHaveWon() uint {
	return s.GamesPlayed - s.SwitchWouldHaveWon
}

// SwitchWinRate returns the fraction of rounds switching would have won, or
// zero when nothing was played.
func (s TrialStatistics) SwitchWinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}

	return float64(s.SwitchWouldHaveWon) / float64(s.GamesPlayed)
}
