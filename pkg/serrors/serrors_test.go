package serrors_test

import (
	"errors"
	"fmt"
	"io"
	"montyhall/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrInvalidConfiguration,
		serrors.ErrTooManyInvalidInputs,
		serrors.ErrInvariantViolation,
		serrors.ErrCanceled,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	e1 := serrors.With(serrors.ErrInvalidConfiguration, "door count must be at least %d", 2)
	require.Equal(t, "door count must be at least 2", e1.Error())

	e2 := serrors.Wrap(serrors.ErrTooManyInvalidInputs, io.EOF, "input closed")
	require.Equal(t, "input closed: EOF", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrInvariantViolation)
	require.Equal(t, "INVARIANT_VIOLATION", e3.Error())

	var nilErr *serrors.Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrTooManyInvalidInputs, base, "reading guess")

	require.ErrorIs(t, e, serrors.ErrTooManyInvalidInputs)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrInvalidConfiguration)

	// matching survives further fmt wrapping
	wrapped := fmt.Errorf("could not play round: %w", e)
	require.ErrorIs(t, wrapped, serrors.ErrTooManyInvalidInputs)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrInvariantViolation, base, "opening doors")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrInvariantViolation, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("outer: %w", serrors.With(serrors.ErrCanceled, "stopped"))
	require.Equal(t, serrors.ErrCanceled, serrors.KindOf(err))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrCanceled, base, "waiting for input")
	require.Equal(t, serrors.ErrCanceled, e.Kind())
	require.Equal(t, "waiting for input", e.Message())
	require.Equal(t, base, e.Cause())
}
