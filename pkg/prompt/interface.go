// Package prompt asks a contestant for integers and keeps asking until the
// answer passes validation or the attempt budget runs out.
package prompt

import "context"

// DefaultMaxAttempts is how many rejected answers are tolerated before
// giving up.
const DefaultMaxAttempts = 10

// Validator checks a parsed answer. A non-nil error rejects the answer and
// its message is shown to the contestant before asking again.
type Validator func(value int) error

// Chooser asks a question and returns the first answer accepted by validate.
// After too many rejected answers it fails with
// serrors.ErrTooManyInvalidInputs.
//
//go:generate mockgen -package mockprompt -source=interface.go -destination=mock/mockprompt.go *
type Chooser interface {
	Choose(ctx context.Context, question string, validate Validator) (int, error)
}
