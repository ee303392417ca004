// SPDX-License-Identifier: MPL-2.0

package core

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/invowk/cmdloader/pkg/command"
)

// Seq prints a sequence of numbers.
type Seq struct{ command.Base }

func init() {
	register("seq", NewSeq)
}

// NewSeq creates the seq command.
func NewSeq() command.Command {
	return &Seq{Base: command.NewBase("seq", "Print a sequence of numbers")}
}

// Run executes seq.
// Usage: seq [-w] [-s STRING] [FIRST [INCREMENT]] LAST
func (c *Seq) Run(ctx context.Context, args []string) error {
	env := command.EnvFrom(ctx)

	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	separator := fs.String("s", "\n", "separator")
	equalWidth := fs.Bool("w", false, "equal width")
	if err := fs.Parse(args); err != nil {
		return wrapError(c.Name(), err)
	}

	first, increment, last, err := seqBounds(fs.Args())
	if err != nil {
		return wrapError(c.Name(), err)
	}

	width := 0
	if *equalWidth {
		width = max(seqFormatWidth(first), seqFormatWidth(last))
	}

	// The 1e-9 slack keeps "seq 0 0.1 1" from dropping its last value to accumulated drift.
	count := 0
	for n := first; (increment > 0 && n <= last+1e-9) || (increment < 0 && n >= last-1e-9); n += increment {
		if err := ctx.Err(); err != nil {
			return wrapError(c.Name(), err)
		}

		rounded := math.Round(n*1e9) / 1e9
		formatted := seqFormat(rounded)
		if *equalWidth {
			formatted = seqFormatPadded(rounded, width)
		}

		if count > 0 {
			fmt.Fprint(env.Stdout, *separator)
		}
		fmt.Fprint(env.Stdout, formatted)
		count++
	}
	if count > 0 {
		fmt.Fprintln(env.Stdout)
	}
	return nil
}

// seqBounds parses LAST, FIRST LAST or FIRST INCREMENT LAST.
func seqBounds(args []string) (first, increment, last float64, err error) {
	values := make([]float64, 0, 3)
	for _, arg := range args {
		v, parseErr := strconv.ParseFloat(arg, 64)
		if parseErr != nil {
			return 0, 0, 0, fmt.Errorf("invalid floating point argument: %q", arg)
		}
		values = append(values, v)
	}

	switch len(values) {
	case 0:
		return 0, 0, 0, errMissingOperand
	case 1:
		first, increment, last = 1, 1, values[0]
	case 2:
		first, increment, last = values[0], 1, values[1]
	case 3:
		first, increment, last = values[0], values[1], values[2]
	default:
		return 0, 0, 0, fmt.Errorf("extra operand %q", args[3])
	}

	if increment == 0 {
		return 0, 0, 0, errors.New("increment must not be zero")
	}
	return first, increment, last, nil
}

// seqFormat formats a number, using integer format when the value is integral.
func seqFormat(n float64) string {
	if n == math.Trunc(n) && !math.IsInf(n, 0) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// seqFormatPadded formats a number with leading zeros to the given width.
func seqFormatPadded(n float64, width int) string {
	if n == math.Trunc(n) && !math.IsInf(n, 0) {
		return fmt.Sprintf("%0*d", width, int64(n))
	}
	s := strconv.FormatFloat(n, 'g', -1, 64)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

func seqFormatWidth(n float64) int {
	return len(seqFormat(n))
}
