// Package console collects keyboard input and renders listings for the
// interactive menu.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pankajredekar/pos/internal/model"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

// ErrCancelled is returned when the user aborts input with Ctrl-C or Esc
var ErrCancelled = errors.New("cancelled")

// Prompter reads answers from in and writes prompts to out
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// NewPrompter creates a prompter. Single-key reads use raw mode only when
// in is a terminal.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.tty = true
	}
	return p
}

// Out returns the prompt writer
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Printf writes to the prompt writer
func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Line reads one line of text without its line ending
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	s, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// Key reads a single keypress. On a terminal the console is switched to raw
// mode for the read and restored before returning.
func (p *Prompter) Key(prompt string) (byte, error) {
	fmt.Fprint(p.out, prompt)
	if !p.tty {
		s, err := p.Line("")
		if err != nil {
			return 0, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return '\n', nil
		}
		return s[0], nil
	}

	var key byte
	err := WithRawMode(p.fd, func() error {
		var err error
		key, err = p.in.ReadByte()
		return err
	})
	fmt.Fprintln(p.out)
	if err != nil {
		return 0, err
	}
	if key == 3 || key == 27 {
		return 0, ErrCancelled
	}
	return key, nil
}

// Int reads a whole number; non-numeric input fails rule
func (p *Prompter) Int(prompt, rule string) (int32, error) {
	s, err := p.Line(prompt)
	if err != nil {
		return 0, err
	}
	return ParseInt(s, rule)
}

// Amount reads a decimal amount; non-numeric input fails rule
func (p *Prompter) Amount(prompt, rule string) (decimal.Decimal, error) {
	s, err := p.Line(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	return ParseAmount(s, rule)
}

// Confirm asks a yes/no question
func (p *Prompter) Confirm(prompt string) (bool, error) {
	k, err := p.Key(prompt + " [y/N] ")
	if err != nil {
		return false, err
	}
	return k == 'y' || k == 'Y', nil
}

// ParseInt parses a 32-bit whole number
func ParseInt(s, rule string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, model.Invalid(rule, "%q is not a whole number", strings.TrimSpace(s))
	}
	return int32(v), nil
}

// ParseAmount parses a money amount
func ParseAmount(s, rule string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, model.Invalid(rule, "%q is not a number", strings.TrimSpace(s))
	}
	return d, nil
}

// maxPrice is the largest value a stored unit price can hold
var maxPrice = decimal.NewFromFloat(math.MaxFloat32)

// ParsePrice parses a unit price. Blank input yields nil so that updates
// keep the old price.
func ParsePrice(s string) (*float32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := ParseAmount(s, model.RulePriceNumeric)
	if err != nil {
		return nil, err
	}
	if d.IsNegative() {
		return nil, model.Invalid(model.RulePriceNonNegative, "unit price %s is negative", s)
	}
	if d.GreaterThan(maxPrice) {
		return nil, model.Invalid(model.RulePriceNumeric, "unit price %s is too large", s)
	}
	f, _ := d.Float64()
	v := float32(f)
	return &v, nil
}
