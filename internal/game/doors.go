package game

import (
	"montyhall/pkg/domain"
	"montyhall/pkg/rng"
	"montyhall/pkg/serrors"
)

// ValidateDoors rejects door counts for which the game is degenerate.
func ValidateDoors(doors int) error {
	if doors < domain.MinDoors {
		return serrors.With(serrors.ErrInvalidConfiguration,
			"door count must be at least %d, got %d", domain.MinDoors, doors)
	}

	return nil
}

// ChoosePrizeDoor hides the prize behind a uniformly random door.
func ChoosePrizeDoor(src rng.Source, doors int) (int, error) {
	if err := ValidateDoors(doors); err != nil {
		return 0, err
	}

	return src.Intn(doors), nil
}

// DoorToKeepShut returns the door, other than guess, that the host leaves
// closed.
//
// A wrong guess leaves the host no choice: the prize door stays shut and no
// randomness is used. A right guess lets the host pick uniformly among the
// other doors-1 doors: a slot in [0, doors-1) is drawn and every slot at or
// past the prize is shifted up by one so the prize door is skipped.
func DoorToKeepShut(src rng.Source, doors, prize, guess int) int {
	if guess != prize {
		return prize
	}

	door := src.Intn(doors - 1)
	if door >= prize {
		door++
	}

	return door
}

// OpenDoors classifies every door after the host's reveal. It panics with an
// ErrInvariantViolation error if an opened door hides the prize, which means
// the kept-shut door was chosen wrongly.
func OpenDoors(round *domain.Round) []domain.DoorReveal {
	reveals := make([]domain.DoorReveal, 0, round.Doors)
	for door := range round.Doors {
		reveal := domain.DoorReveal{Door: door, HasPrize: round.HasPrize(door)}
		switch door {
		case round.InitialGuess:
			reveal.Role = domain.DoorRoleChosenByContestant
		case round.KeptShut:
			reveal.Role = domain.DoorRoleKeptShut
		default:
			reveal.Role = domain.DoorRoleOpened
			if reveal.HasPrize {
				panic(serrors.With(serrors.ErrInvariantViolation,
					"host opened door %d which hides the prize", door+1))
			}
		}
		reveals = append(reveals, reveal)
	}

	return reveals
}

// DetermineOutcome settles a round. Whether switching would have won depends
// only on the initial guess, not on what the contestant finally did.
func DetermineOutcome(prize, guess, final int) domain.Outcome {
	return domain.Outcome{
		Won:                final == prize,
		ShouldHaveSwitched: guess != prize,
		Switched:           final != guess,
	}
}
