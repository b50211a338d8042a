// Package game plays single rounds of the Monty Hall game: it hides the
// prize, collects the contestant's guess, decides which door the host keeps
// shut, opens the others and settles the outcome.
package game

import (
	"context"
	"montyhall/pkg/domain"
)

// Player plays one round with the given number of doors. When simulate is
// true no input is requested and the contestant always stays.
//
//go:generate mockgen -package mockgame -source=interface.go -destination=mock/mockgame.go *
type Player interface {
	PlayRound(ctx context.Context, doors int, simulate bool) (domain.Outcome, error)
}

// Reporter is told about each step of a round so it can be narrated.
type Reporter interface {
	RoundStarted(ctx context.Context, round *domain.Round)
	GuessSimulated(ctx context.Context, round *domain.Round)
	DoorsOpened(ctx context.Context, round *domain.Round, reveals []domain.DoorReveal)
	RoundFinished(ctx context.Context, round *domain.Round, outcome domain.Outcome)
}

// NopReporter discards every report.
type NopReporter struct{}

func (NopReporter) RoundStarted(context.Context, *domain.Round) {}
func (NopReporter) GuessSimulated(context.Context, *domain.Round) {}
func (NopReporter) DoorsOpened(context.Context, *domain.Round, []domain.DoorReveal) {}
func (NopReporter) RoundFinished(context.Context, *domain.Round, domain.Outcome) {}
