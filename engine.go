// Package textquest contains a CLI-driven engine for getting commands and
// advancing the game state continuously until the user quits.
package textquest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/textquest/internal/command"
	"github.com/dekarrin/textquest/internal/game"
	"github.com/dekarrin/textquest/internal/input"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options changes how an Engine is set up. The zero value is usable.
type Options struct {
	// Width is the column width to wrap output to. If it is less than 1, the
	// default width is used.
	Width int

	// ForceDirect reads input without readline even when attached to a
	// terminal.
	ForceDirect bool

	// HistoryFile is where readline keeps command history. It is only used
	// in interactive mode.
	HistoryFile string

	// Logger receives the engine's logs. If nil, nothing is logged.
	Logger *zap.Logger

	// Commands is the set of commands the player can use. If nil, every
	// built-in command is available.
	Commands *command.Registry
}

// Engine contains the things needed to run a game from an interactive shell
// attached to an input stream and an output stream.
type Engine struct {
	world       *game.World
	cmds        *command.Registry
	in          command.Reader
	out         *bufio.Writer
	log         *zap.Logger
	session     string
	forceDirect bool
	running     bool
}

// flushWriter writes through to a bufio.Writer and flushes immediately, so
// that prompts appear before input is read.
type flushWriter struct {
	w *bufio.Writer
}

func (fw flushWriter) Write(p []byte) (int, error) {
	n, err := fw.w.Write(p)
	if err != nil {
		return n, err
	}
	return n, fw.w.Flush()
}

// New creates a new engine ready to run the given content on the given input
// and output streams. It will immediately open a buffered reader on the input
// stream and a buffered writer on the output stream.
//
// If nil is given for the input stream, stdin is used. If nil is given for the
// output stream, stdout is used. If both are the console and opts does not
// force direct input, readline is used to read commands.
func New(inputStream io.Reader, outputStream io.Writer, content game.Content, opts Options) (*Engine, error) {
	if content == nil {
		return nil, fmt.Errorf("game content must not be nil")
	}
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	eng := &Engine{
		out:         bufio.NewWriter(outputStream),
		cmds:        opts.Commands,
		log:         opts.Logger,
		session:     uuid.New().String(),
		forceDirect: opts.ForceDirect,
	}

	if eng.log == nil {
		eng.log = zap.NewNop()
	}
	eng.log = eng.log.With(zap.String("session", eng.session))

	if eng.cmds == nil {
		eng.cmds = command.DefaultRegistry(eng.log)
	}

	useReadline := !opts.ForceDirect && inputStream == os.Stdin && outputStream == os.Stdout
	if useReadline {
		icr, err := input.NewInteractiveReader(opts.HistoryFile)
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
		eng.in = icr
	} else {
		eng.in = input.NewDirectReader(inputStream, flushWriter{eng.out})
	}

	ioDev := game.IODevice{
		Width: opts.Width,
		Output: func(s string) error {
			if _, err := eng.out.WriteString(s); err != nil {
				return err
			}
			return eng.out.Flush()
		},
	}

	w, err := game.New(content, ioDev)
	if err != nil {
		eng.in.Close()
		return nil, fmt.Errorf("initializing game engine: %w", err)
	}
	eng.world = w

	return eng, nil
}

// World returns the world that the engine runs.
func (eng *Engine) World() *game.World {
	return eng.world
}

// SessionID returns the ID that identifies this engine in its logs.
func (eng *Engine) SessionID() string {
	return eng.session
}

// Close closes all resources associated with the Engine, including any
// readline-related resources created for interactive mode.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running game engine")
	}

	if err := eng.in.Close(); err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}

	// nothing else can be logged after close, so the error is not useful.
	_ = eng.log.Sync()

	return nil
}

// RunUntilQuit starts the game from the beginning, then reads commands from
// the input stream and applies them to the game until the game is over or the
// input ends.
func (eng *Engine) RunUntilQuit() error {
	introMsg := "Welcome to TextQuest Engine\n"
	if eng.forceDirect {
		introMsg += "(direct input mode)\n"
	}
	introMsg += "===========================\n"
	introMsg += "\n"

	if err := eng.world.Print(introMsg); err != nil {
		return err
	}

	if err := eng.world.Reset(); err != nil {
		return fmt.Errorf("initializing world: %w", err)
	}
	if content := eng.world.Content(); content != nil {
		if err := content.PrintWelcome(eng.world); err != nil {
			return fmt.Errorf("printing welcome: %w", err)
		}
	}

	eng.running = true
	// so we dont have to remember to do this on every returned error condition
	defer func() {
		eng.running = false
	}()

	eng.log.Info("session started", zap.Strings("rooms", eng.world.RoomNames()))

	eng.in.AllowBlank(true)
	commands := 0
	for !eng.world.IsGameOver() {
		line, err := eng.in.ReadCommand()
		if err != nil {
			if err == io.EOF || errors.Is(err, input.ErrInterrupt) {
				break
			}
			return fmt.Errorf("get user command: %w", err)
		}

		if err := eng.cmds.Dispatch(line, eng.world); err != nil {
			return fmt.Errorf("execute %q: %w", line, err)
		}
		commands++

		if content := eng.world.Content(); content != nil {
			if err := content.OnCommandFinished(eng.world); err != nil {
				return fmt.Errorf("finishing command %q: %w", line, err)
			}
		}
	}

	eng.log.Info("session ended",
		zap.Int("commands", commands),
		zap.Bool("game_over", eng.world.IsGameOver()),
	)

	return eng.world.Print("Goodbye\n")
}
