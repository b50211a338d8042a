package prompt

import (
	"errors"
	"fmt"
)

// InRange accepts integers in [lo, hi].
func InRange(lo, hi int) Validator {
	return func(value int) error {
		switch {
		case value < lo:
			return fmt.Errorf("That guess (%d) is too low!  Try again.", value) //nolint: staticcheck
		case value > hi:
			return fmt.Errorf("That guess (%d) is too high!  Try again.", value) //nolint: staticcheck
		default:
			return nil
		}
	}
}

// OneOf accepts exactly a or b.
func OneOf(a, b int) Validator {
	msg := fmt.Sprintf("Please pick either %d or %d.  Try again.", a, b)

	return func(value int) error {
		if value != a && value != b {
			return errors.New(msg)
		}

		return nil
	}
}
