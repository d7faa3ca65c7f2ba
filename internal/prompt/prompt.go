// Package prompt reads one line of text from the terminal. While a line is
// being read the terminal is switched to raw mode and the line editor
// echoes input itself; the previous mode is restored on every return path.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// ErrCanceled is returned when the user interrupts entry with Ctrl-C or
// Ctrl-D, or the input ends before a line is complete.
var ErrCanceled = errors.New("prompt canceled")

// Prompt reads lines from in and echoes to out. When fd refers to a
// terminal its mode is switched for the duration of each ReadLine.
type Prompt struct {
	fd  int
	in  io.Reader
	out io.Writer

	isTerminal func(fd int) bool
	makeRaw    func(fd int) (*term.State, error)
	restore    func(fd int, state *term.State) error
}

// New returns a Prompt over the given terminal streams.
func New(in *os.File, out io.Writer) *Prompt {
	return &Prompt{
		fd:         int(in.Fd()),
		in:         in,
		out:        out,
		isTerminal: term.IsTerminal,
		makeRaw:    term.MakeRaw,
		restore:    term.Restore,
	}
}

type readWriter struct {
	io.Reader
	io.Writer
}

// ReadLine shows label and returns the entered line with surrounding
// whitespace removed.
func (p *Prompt) ReadLine(label string) (string, error) {
	if p.isTerminal(p.fd) {
		state, err := p.makeRaw(p.fd)
		if err != nil {
			return "", fmt.Errorf("set terminal raw mode: %w", err)
		}
		defer func() {
			if err := p.restore(p.fd, state); err != nil {
				log.Error().Err(err).Msg("Failed to restore terminal mode")
			}
		}()
	}

	editor := term.NewTerminal(readWriter{Reader: p.in, Writer: p.out}, label)
	line, err := editor.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrCanceled
		}
		return "", fmt.Errorf("read line: %w", err)
	}

	return strings.TrimSpace(line), nil
}
