package domain

import "github.com/google/uuid"

// MinDoors is the smallest door count for which the game is not degenerate.
const MinDoors = 2

// RoundID uniquely identifies a single played round.
// It wraps uuid.UUID to provide type safety at the domain layer.
type RoundID uuid.UUID

// NewRoundID returns a random round identifier.
func NewRoundID() RoundID { return RoundID(uuid.New()) }

func (id RoundID) String() string { return uuid.UUID(id).String() }

// Round is the state of one game. It is built fresh for every round and
// discarded once the outcome is known.
type Round struct {
	// ID identifies the round in logs and traces.
	ID RoundID
	// Doors is the number of doors in play, at least MinDoors.
	Doors int
	// Prize is the door hiding the prize.
	Prize int
	// InitialGuess is the contestant's first pick.
	InitialGuess int
	// KeptShut is the door, other than InitialGuess, the host leaves closed.
	KeptShut int
	// FinalGuess is the door the contestant finally opens.
	FinalGuess int
}

// NewRound places the prize behind the given door of a fresh round.
func NewRound(doors, prize int) *Round {
	return &Round{
		ID:    NewRoundID(),
		Doors: doors,
		Prize: prize,
	}
}

// HasPrize reports whether door hides the prize.
func (r *Round) HasPrize(door int) bool { return door == r.Prize }

// DoorRole classifies a door once the host has opened the losing ones.
type DoorRole int

const (
	// DoorRoleOpened is a door the host opens; it never hides the prize.
	DoorRoleOpened DoorRole = iota
	// DoorRoleChosenByContestant is the contestant's initial guess.
	DoorRoleChosenByContestant
	// DoorRoleKeptShut is the other door the host declines to open.
	DoorRoleKeptShut
)

func (r DoorRole) String() string {
	switch r {
	case DoorRoleOpened:
		return "Opened"
	case DoorRoleChosenByContestant:
		return "ChosenByContestant"
	case DoorRoleKeptShut:
		return "KeptShut"
	default:
		return "Unknown"
	}
}

// DoorReveal is the host's view of one door after the reveal.
type DoorReveal struct {
	Door     int
	Role     DoorRole
	HasPrize bool
}

// Outcome is the result of one round.
type Outcome struct {
	// Won is true when the final guess was the prize door.
	Won bool
	// ShouldHaveSwitched is true when the initial guess was not the prize
	// door, whatever the contestant actually did.
	ShouldHaveSwitched bool
	// Switched is true when the final guess differs from the initial one.
	Switched bool
}
