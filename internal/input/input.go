// Package input reads lines of player input, either from a terminal with line
// editing and history or directly from any io.Reader.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// DefaultPrompt is shown before each line of input.
const DefaultPrompt = "> "

// ErrInterrupt is returned by ReadCommand when the player presses Ctrl-C at an
// interactive prompt.
var ErrInterrupt = errors.New("interrupted")

// DirectReader implements command.Reader over any io.Reader. It does not
// handle terminal editing sequences, so it is meant for piped input and
// scripted sessions.
//
// Create one with [NewDirectReader].
type DirectReader struct {
	r             *bufio.Reader
	prompt        string
	promptOut     io.Writer
	blanksAllowed bool
	atEOF         bool
}

// NewDirectReader creates a DirectReader that reads from r. If promptOut is
// not nil, the prompt is written to it before each line is read.
func NewDirectReader(r io.Reader, promptOut io.Writer) *DirectReader {
	return &DirectReader{
		r:         bufio.NewReader(r),
		prompt:    DefaultPrompt,
		promptOut: promptOut,
	}
}

// ReadCommand reads the next line. Surrounding whitespace is trimmed. Unless
// blank lines are allowed, it keeps reading until it gets one that isn't.
//
// If the input ends partway through a line, that line is returned with a nil
// error and the next call returns io.EOF.
func (dr *DirectReader) ReadCommand() (string, error) {
	for {
		if dr.atEOF {
			return "", io.EOF
		}

		if dr.promptOut != nil && dr.prompt != "" {
			if _, err := io.WriteString(dr.promptOut, dr.prompt); err != nil {
				return "", fmt.Errorf("write prompt: %w", err)
			}
		}

		line, err := dr.r.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				return "", err
			}
			dr.atEOF = true
			if line == "" {
				return "", io.EOF
			}
		}

		line = strings.TrimSpace(line)
		if line != "" || dr.blanksAllowed {
			return line, nil
		}
	}
}

// AllowBlank sets whether blank lines are returned. By default they are
// skipped.
func (dr *DirectReader) AllowBlank(allow bool) {
	dr.blanksAllowed = allow
}

// SetPrompt sets the text written before each line is read.
func (dr *DirectReader) SetPrompt(p string) {
	dr.prompt = p
}

// Close does nothing; a DirectReader does not own the underlying reader.
func (dr *DirectReader) Close() error {
	return nil
}

// InteractiveReader implements command.Reader on a terminal using readline,
// which gives the player line editing and command history.
//
// Create one with [NewInteractiveReader] and Close it when done to restore the
// terminal.
type InteractiveReader struct {
	rl            *readline.Instance
	blanksAllowed bool
}

// NewInteractiveReader sets up readline on the terminal. If historyFile is not
// empty, history is loaded from and saved to it.
func NewInteractiveReader(historyFile string) (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            DefaultPrompt,
		HistoryFile:       historyFile,
		HistorySearchFold: true,
		InterruptPrompt:   "^C",
		EOFPrompt:         "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveReader{rl: rl}, nil
}

// ReadCommand reads the next line from the terminal. It behaves the same as
// DirectReader.ReadCommand, except that Ctrl-C gives ErrInterrupt.
func (ir *InteractiveReader) ReadCommand() (string, error) {
	for {
		line, err := ir.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				return "", ErrInterrupt
			}
			if err != io.EOF || line == "" {
				return "", err
			}
		}

		line = strings.TrimSpace(line)
		if line != "" || ir.blanksAllowed {
			return line, nil
		}
	}
}

// AllowBlank sets whether blank lines are returned. By default they are
// skipped.
func (ir *InteractiveReader) AllowBlank(allow bool) {
	ir.blanksAllowed = allow
}

// SetPrompt sets the prompt shown before each line.
func (ir *InteractiveReader) SetPrompt(p string) {
	ir.rl.SetPrompt(p)
}

// Stdout returns a writer that prints above the prompt without garbling it.
func (ir *InteractiveReader) Stdout() io.Writer {
	return ir.rl.Stdout()
}

// Close restores the terminal and saves history.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}
