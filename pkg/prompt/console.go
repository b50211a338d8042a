package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"montyhall/pkg/logger"
	"montyhall/pkg/serrors"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const invalidIntegerMessage = "Sorry, that wasn't valid.  Please enter an integer."

// Options configure a Console.
type Options struct {
	// MaxAttempts is the number of rejected answers tolerated per question.
	// Zero means DefaultMaxAttempts.
	MaxAttempts int
}

// Console is a line-oriented Chooser. Every answer is one line of text.
// Lines are read from a single shared reader so consecutive questions consume
// the same input stream in order.
type Console struct {
	lines       *bufio.Reader
	out         io.Writer
	maxAttempts int
}

var _ Chooser = (*Console)(nil)

// NewConsole returns a Console reading answers from in and writing questions
// and complaints to out.
func NewConsole(in io.Reader, out io.Writer, opts Options) *Console {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}

	return &Console{
		lines:       bufio.NewReader(in),
		out:         out,
		maxAttempts: opts.MaxAttempts,
	}
}

// Choose implements Chooser. Cancellation is checked between attempts only;
// a pending read is not interrupted.
func (c *Console) Choose(ctx context.Context, question string, validate Validator) (int, error) {
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, serrors.Wrap(serrors.ErrCanceled, err, "stopped waiting for input")
		}

		c.println(question)
		line, err := c.readLine()
		if err != nil {
			return 0, serrors.Wrap(serrors.ErrTooManyInvalidInputs, err,
				"input closed after %d rejected answers", attempt-1)
		}

		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			logger.Debug(ctx, "rejected non-integer answer", zap.Int("attempt", attempt))
			c.println(invalidIntegerMessage)

			continue
		}

		if validate != nil {
			if err := validate(value); err != nil {
				logger.Debug(ctx, "rejected answer", zap.Int("attempt", attempt), zap.Int("value", value))
				c.println(err.Error())

				continue
			}
		}

		return value, nil
	}

	return 0, serrors.With(serrors.ErrTooManyInvalidInputs, "no valid answer after %d attempts", c.maxAttempts)
}

// readLine returns the next line without its terminator. Lines of any length
// are accepted; a final line without a newline is still returned.
func (c *Console) readLine() (string, error) {
	line, err := c.lines.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) println(msg string) {
	_, _ = fmt.Fprintln(c.out, msg)
}
