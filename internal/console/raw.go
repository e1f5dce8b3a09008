package console

import (
	"fmt"

	"golang.org/x/term"
)

// WithRawMode runs fn with the terminal fd in raw mode and restores the
// previous state on every return path, including panics.
func WithRawMode(fd int, fn func() error) (err error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if rerr := term.Restore(fd, state); rerr != nil && err == nil {
			err = fmt.Errorf("failed to restore terminal: %w", rerr)
		}
	}()
	return fn()
}
