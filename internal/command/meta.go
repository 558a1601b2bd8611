package command

import (
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/dekarrin/textquest/internal/game"
)

var textFormatOptions = rosed.Options{
	PreserveParagraphs: true,
	IndentStr:          "  ",
}

// Builtins returns a new instance of every built-in command except HELP, which
// needs the Registry it lists. The order is the order they are registered in
// by DefaultRegistry.
func Builtins() []Handler {
	return []Handler{
		Take{},
		Put{},
		Drop{},
		Go{},
		Look{},
		Examine{},
		Inventory{},
		Open{},
		Close{},
		Lock{},
		Unlock{},
		Quit{},
		Restart{},
	}
}

// Help lists every command in a Registry.
type Help struct {
	Registry *Registry
}

// Words returns the command words that Help answers to.
func (h *Help) Words() []string {
	return []string{"help", "?"}
}

// Help returns the usage shown by the help command.
func (h *Help) Help() string {
	return "show this list of commands"
}

// Execute prints a table of every registered command and its usage, wrapped
// to the output width.
func (h *Help) Execute(word string, params []string, w *game.World) error {
	var defs [][2]string
	for _, handler := range h.Registry.Handlers() {
		words := handler.Words()
		if len(words) > 4 {
			words = words[:4]
		}
		defs = append(defs, [2]string{strings.ToUpper(strings.Join(words, "/")), handler.Help()})
	}

	output := rosed.Edit("").WithOptions(
		textFormatOptions.
			WithParagraphSeparator("\n").
			WithNoTrailingLineSeparators(true)).
		Insert(rosed.End, "Here are the commands you can use:\n").
		InsertDefinitionsTable(rosed.End, defs, w.Width()).String()

	return w.Say(output)
}

// Quit ends the game.
type Quit struct{}

// Words returns the command words that Quit answers to.
func (Quit) Words() []string {
	return []string{"quit", "exit"}
}

// Help returns the usage shown by the help command.
func (Quit) Help() string {
	return "end the game"
}

// Execute ends the game.
func (Quit) Execute(word string, params []string, w *game.World) error {
	w.SetGameOver(true)
	return nil
}

// Restart puts the world back the way it was at the start of the game.
type Restart struct{}

// Words returns the command words that Restart answers to.
func (Restart) Words() []string {
	return []string{"restart"}
}

// Help returns the usage shown by the help command.
func (Restart) Help() string {
	return "start the game over from the beginning"
}

// Execute resets the world to its starting state and shows the welcome
// again.
func (Restart) Execute(word string, params []string, w *game.World) error {
	if err := w.Reset(); err != nil {
		return err
	}

	content := w.Content()
	if content == nil {
		return nil
	}
	return content.PrintWelcome(w)
}
