package stats

import "montyhall/pkg/domain"

// ChiSquared returns Pearson's chi-squared statistic for observed counts
// against expected counts. Categories with a non-positive expectation are
// skipped.
func ChiSquared(observed []uint, expected []float64) float64 {
	var chi float64
	for i, o := range observed {
		if i >= len(expected) || expected[i] <= 0 {
			continue
		}
		d := float64(o) - expected[i]
		chi += d * d / expected[i]
	}

	return chi
}

// ExpectedSwitchWinRate is the probability that switching wins with the
// given number of doors: the initial guess misses the prize (doors-1)/doors
// of the time.
func ExpectedSwitchWinRate(doors int) float64 {
	if doors < domain.MinDoors {
		return 0
	}

	return float64(doors-1) / float64(doors)
}

// Fit compares observed totals with the theoretical switch win rate.
type Fit struct {
	// Expected is the theoretical fraction of rounds switching wins.
	Expected float64
	// Observed is the measured fraction.
	Observed float64
	// ChiSquared is the statistic over the switch-won / stay-won split, one
	// degree of freedom.
	ChiSquared float64
}

// SwitchGoodnessOfFit measures how well stats match the theoretical switch
// win rate for doors.
func SwitchGoodnessOfFit(stats domain.TrialStatistics, doors int) Fit {
	p := ExpectedSwitchWinRate(doors)
	n := float64(stats.GamesPlayed)

	return Fit{
		Expected: p,
		Observed: stats.SwitchWinRate(),
		ChiSquared: ChiSquared(
			[]uint{stats.SwitchWouldHaveWon, stats.StayWouldHaveWon()},
			[]float64{n * p, n * (1 - p)},
		),
	}
}
