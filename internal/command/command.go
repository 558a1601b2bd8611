// Package command turns lines of player input into actions against the game
// world. A line is split into a command word and its parameters, the word is
// resolved to a Handler through a Registry, and the Handler validates the
// parameters and carries the action out.
package command

import "github.com/dekarrin/textquest/internal/game"

// Handler carries out one kind of command. Handlers are stateless; the same
// value is used for every invocation.
type Handler interface {
	// Words returns every command word that the Handler answers to. Matching
	// against input is case-insensitive.
	Words() []string

	// Execute carries out the command. word is the command word exactly as
	// it was typed and params are the remaining tokens of the line.
	//
	// Everything the player sees is printed through w. A returned error is
	// either a rejection from package tqerrors, in which case the world has
	// not been modified, or a failure of the engine itself.
	Execute(word string, params []string, w *game.World) error

	// Help returns a one-line description of how to use the command.
	Help() string
}

// Reader is a type that can be used for getting command input.
type Reader interface {
	// ReadCommand reads a single line of user input. It will block until one
	// is ready. If there is an error or input is at end (EOF), the returned
	// string will be empty.
	//
	// When error is io.EOF, string will always be empty. If EOF was encountered
	// on a call but some input was received, the input will be returned and
	// error will be nil, and the next call to ReadCommand will return "",
	// io.EOF.
	ReadCommand() (string, error)

	// AllowBlank sets whether ReadCommand returns blank lines or keeps reading
	// until it gets a non-blank one.
	AllowBlank(allow bool)

	// Close performs any operations required to clean the resources created by
	// the Reader. It should be called at least once when the Reader is no
	// longer needed.
	Close() error
}
