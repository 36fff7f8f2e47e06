// Package prompt reads validated console input, re-prompting on malformed
// lines.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/roach88/arrayproc/internal/i18n"
)

var (
	// ErrInputClosed is returned when the input ends before a valid value
	// was read.
	ErrInputClosed = errors.New("input closed")

	// ErrTooManyAttempts is returned when MaxAttempts invalid answers were
	// given in a row.
	ErrTooManyAttempts = errors.New("too many invalid attempts")
)

// Prompter asks questions on Out and reads one answer per line from In.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	printer *message.Printer

	// maxAttempts bounds the retries of a single question. 0 means retry
	// until valid input or end of input.
	maxAttempts int
}

// New creates a Prompter. A maxAttempts of 0 retries indefinitely.
func New(in io.Reader, out io.Writer, printer *message.Printer, maxAttempts int) *Prompter {
	return &Prompter{
		scanner:     bufio.NewScanner(in),
		out:         out,
		printer:     printer,
		maxAttempts: maxAttempts,
	}
}

// Int asks for any 32-bit integer.
func (p *Prompter) Int(key string, args ...any) (int, error) {
	return p.ask(p.printer.Sprintf(key, args...), parseInt32)
}

// Size asks for the array size, a positive integer.
func (p *Prompter) Size() (int, error) {
	return p.ask(p.printer.Sprintf(i18n.PromptSize), parseSize)
}

// Divisor asks for k. Zero is accepted here and reported by the remainder
// check.
func (p *Prompter) Divisor() (int, error) {
	return p.Int(i18n.PromptDivisor)
}

// FillMode asks whether to fill randomly. Any nonzero answer means yes.
func (p *Prompter) FillMode() (bool, error) {
	v, err := p.Int(i18n.PromptFillMode)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// Range asks for a minimum and a maximum, repeating both questions until
// min <= max.
func (p *Prompter) Range() (lo, hi int, err error) {
	for attempt := 1; ; attempt++ {
		if lo, err = p.Int(i18n.PromptMin); err != nil {
			return 0, 0, err
		}
		if hi, err = p.Int(i18n.PromptMax); err != nil {
			return 0, 0, err
		}
		if lo <= hi {
			return lo, hi, nil
		}
		slog.Debug("rejected range", "min", lo, "max", hi)
		fmt.Fprintln(p.out, p.printer.Sprintf(i18n.ErrRange))
		if p.exhausted(attempt) {
			return 0, 0, fmt.Errorf("%w: range after %d attempts", ErrTooManyAttempts, attempt)
		}
	}
}

// NextElement asks for the value of element index. It satisfies
// sequence.ElementSource.
func (p *Prompter) NextElement(index int) (int, error) {
	return p.Int(i18n.PromptElement, strconv.Itoa(index+1))
}

func (p *Prompter) ask(question string, parse func(string) (int, bool)) (int, error) {
	for attempt := 1; ; attempt++ {
		fmt.Fprint(p.out, question)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if v, ok := parse(line); ok {
			return v, nil
		}
		slog.Debug("rejected input", "line", line, "attempt", attempt)
		fmt.Fprintln(p.out, p.printer.Sprintf(i18n.ErrInput))
		if p.exhausted(attempt) {
			return 0, fmt.Errorf("%w: %d attempts", ErrTooManyAttempts, attempt)
		}
	}
}

func (p *Prompter) exhausted(attempt int) bool {
	return p.maxAttempts > 0 && attempt >= p.maxAttempts
}

func (p *Prompter) readLine() (string, error) {
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	}
	if err := p.scanner.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", ErrInputClosed
}

func parseInt32(line string) (int, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(line), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

func parseSize(line string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || v < 1 {
		return 0, false
	}
	return v, true
}
