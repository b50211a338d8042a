package game

import (
	"context"
	"fmt"
	"montyhall/pkg/domain"
	"montyhall/pkg/logger"
	"montyhall/pkg/prompt"
	"montyhall/pkg/rng"
	"montyhall/pkg/serrors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("montyhall/internal/game") //nolint: gochecknoglobals

// Deps are the collaborators an Engine needs.
type Deps struct {
	// Source supplies every random draw of a round.
	Source rng.Source
	// Chooser asks the contestant for doors. It may be nil when only
	// simulated rounds are played.
	Chooser prompt.Chooser
	// Reporter narrates the round. Nil means NopReporter.
	Reporter Reporter
}

// Engine plays rounds one at a time. It does no I/O of its own: input goes
// through the Chooser and output through the Reporter.
type Engine struct {
	source   rng.Source
	chooser  prompt.Chooser
	reporter Reporter
}

// Ensure Engine implements Player.
var _ Player = (*Engine)(nil)

// New creates an Engine from its dependencies.
func New(deps Deps) *Engine {
	reporter := deps.Reporter
	if reporter == nil {
		reporter = NopReporter{}
	}

	return &Engine{
		source:   deps.Source,
		chooser:  deps.Chooser,
		reporter: reporter,
	}
}

// PlayRound implements Player. If the contestant's answers cannot be
// collected the round is abandoned and a zero Outcome is returned together
// with the error.
func (e *Engine) PlayRound(ctx context.Context, doors int, simulate bool) (domain.Outcome, error) {
	prize, err := ChoosePrizeDoor(e.source, doors)
	if err != nil {
		return domain.Outcome{}, err
	}
	round := domain.NewRound(doors, prize)

	ctx, span := tracer.Start(ctx, "game.PlayRound", trace.WithAttributes(
		attribute.String("round.id", round.ID.String()),
		attribute.Int("round.doors", doors),
		attribute.Bool("round.simulated", simulate),
	))
	defer span.End()

	ctx = logger.WithFields(ctx, zap.Stringer("roundID", round.ID))
	e.reporter.RoundStarted(ctx, round)

	round.InitialGuess, err = e.InitialGuess(ctx, doors, simulate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "initial guess")

		return domain.Outcome{}, err
	}
	if simulate {
		e.reporter.GuessSimulated(ctx, round)
	}

	round.KeptShut = DoorToKeepShut(e.source, doors, round.Prize, round.InitialGuess)
	e.reporter.DoorsOpened(ctx, round, OpenDoors(round))

	round.FinalGuess, err = e.FinalGuess(ctx, round.InitialGuess, round.KeptShut, simulate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "final guess")

		return domain.Outcome{}, err
	}

	outcome := DetermineOutcome(round.Prize, round.InitialGuess, round.FinalGuess)
	span.SetAttributes(
		attribute.Bool("round.won", outcome.Won),
		attribute.Bool("round.switched", outcome.Switched),
	)
	logger.Debug(ctx, "round finished",
		zap.Int("doors", doors),
		zap.Int("prize", round.Prize),
		zap.Int("initialGuess", round.InitialGuess),
		zap.Int("keptShut", round.KeptShut),
		zap.Int("finalGuess", round.FinalGuess),
		zap.Bool("won", outcome.Won))

	e.reporter.RoundFinished(ctx, round, outcome)

	return outcome, nil
}

// InitialGuess returns the contestant's first pick as a zero-based door. A
// simulated contestant picks uniformly at random; otherwise the contestant is
// asked for a door numbered 1 to doors.
func (e *Engine) InitialGuess(ctx context.Context, doors int, simulate bool) (int, error) {
	if simulate {
		return e.source.Intn(doors), nil
	}
	if e.chooser == nil {
		return 0, serrors.With(serrors.ErrInvalidConfiguration, "interactive play needs an input source")
	}

	door, err := e.chooser.Choose(ctx,
		fmt.Sprintf("Please pick a door from 1 to %d", doors),
		prompt.InRange(1, doors))
	if err != nil {
		return 0, fmt.Errorf("could not read initial guess: %w", err)
	}

	return door - 1, nil
}

// FinalGuess returns the door the contestant finally opens. A simulated
// contestant always stays with guess; otherwise the contestant must answer
// exactly one of the two doors still shut.
func (e *Engine) FinalGuess(ctx context.Context, guess, keptShut int, simulate bool) (int, error) {
	if simulate {
		return guess, nil
	}
	if e.chooser == nil {
		return 0, serrors.With(serrors.ErrInvalidConfiguration, "interactive play needs an input source")
	}

	door, err := e.chooser.Choose(ctx,
		fmt.Sprintf("Would you like to stick to door %d or would you like to switch to door %d?", guess+1, keptShut+1),
		prompt.OneOf(guess+1, keptShut+1))
	if err != nil {
		return 0, fmt.Errorf("could not read switch decision: %w", err)
	}

	return door - 1, nil
}
