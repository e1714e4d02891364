package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/specialistvlad/daysbetween/internal/calendar"
	"github.com/specialistvlad/daysbetween/internal/ctxlog"
	"github.com/specialistvlad/daysbetween/internal/normalize"
	"golang.org/x/term"
)

// Options configures a Console.
type Options struct {
	// Prompt is printed before every read when ShowPrompt is set.
	Prompt     string
	ShowPrompt bool
	// Separators are the words accepted between the two dates; nil means
	// normalize.DefaultWords.
	Separators []string
}

// Console runs the read-eval-print loop.
type Console struct {
	in   io.Reader
	out  io.Writer
	cal  calendar.Calendar
	norm *normalize.Normalizer
	opts Options
}

// New creates a console reading from in and writing to out.
func New(in io.Reader, out io.Writer, cal calendar.Calendar, opts Options) *Console {
	if opts.Separators == nil {
		opts.Separators = normalize.DefaultWords
	}
	return &Console{
		in:   in,
		out:  out,
		cal:  cal,
		norm: normalize.New(opts.Separators...),
		opts: opts,
	}
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run reads lines until the exit command, end of input, or ctx is done.
// Calculation errors are printed and the loop continues.
func (c *Console) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Console loop started.", "range", c.cal.String())

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		if c.opts.ShowPrompt {
			fmt.Fprintf(c.out, "\n%s\n", c.opts.Prompt)
		}

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			logger.Debug("Console loop canceled.")
			fmt.Fprintln(c.out, goodbye)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			logger.Debug("Console input closed.")
			fmt.Fprintln(c.out, goodbye)
			select {
			case err := <-readErr:
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
			default:
			}
			return nil
		}

		reply, quit := c.Eval(ctx, line)
		if reply != "" {
			fmt.Fprintln(c.out, reply)
		}
		if quit {
			return nil
		}
	}
}

const goodbye = "Bye!"

// Eval handles a single line of input and returns the text to print and
// whether the loop should stop.
func (c *Console) Eval(ctx context.Context, line string) (string, bool) {
	logger := ctxlog.FromContext(ctx)
	input := c.norm.Normalize(line)

	switch input {
	case "":
		return "", false
	case "help", "?":
		return HelpText(c.cal, c.opts.Separators), false
	case "exit", "quit":
		return goodbye, true
	}

	dates := normalize.Split(input)
	days, err := c.cal.DaysBetweenAll(dates)
	if err != nil {
		logger.Debug("Calculation failed.", "input", input, "error", err)
		return "Error: " + describe(err), false
	}

	logger.Debug("Calculation finished.", "from", dates[0], "to", dates[1], "days", days)
	return FormatResult(dates[0], dates[1], days), false
}

// FormatResult renders a successful calculation.
func FormatResult(from, to string, days int) string {
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	return fmt.Sprintf("%d %s between %s and %s", days, unit, from, to)
}

// describe adds a usage hint to errors caused by malformed input.
func describe(err error) string {
	if errors.Is(err, calendar.ErrUsage) {
		return err.Error() + ` (type "help" for usage)`
	}
	return err.Error()
}

// HelpText explains the accepted input for the given calendar and
// separator words.
func HelpText(cal calendar.Calendar, separators []string) string {
	quoted := []string{`"-"`}
	for _, w := range separators {
		quoted = append(quoted, strconv.Quote(w))
	}

	var b strings.Builder
	b.WriteString("Enter two dates in D/M/Y format to count the whole days between them.\n")
	b.WriteString("The dates themselves are not counted.\n\n")
	fmt.Fprintf(&b, "Dates may be separated by spaces or %s, for example:\n", strings.Join(quoted, ", "))
	b.WriteString("  1/1/2021 2/2/2021\n")
	if len(separators) > 0 {
		fmt.Fprintf(&b, "  1/1/2021 %s 2/2/2021\n", separators[0])
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Supported dates: %s\n", cal)
	b.WriteString("Commands: help, exit")
	return b.String()
}
