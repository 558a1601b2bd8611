package command

import (
	"github.com/dekarrin/textquest/internal/game"
	"github.com/dekarrin/textquest/internal/tqerrors"
)

// Go moves the player through an exit of the current room. The direction can
// be given after GO or typed by itself.
type Go struct{}

// Words returns the command words that Go answers to.
func (Go) Words() []string {
	return []string{
		"go", "move", "walk",
		"north", "south", "east", "west", "up", "down",
		"n", "s", "e", "w", "u", "d",
	}
}

// Help returns the usage shown by the help command.
func (Go) Help() string {
	return "go [direction], or just type the direction"
}

// Execute moves the player through the exit in the given direction. Neither
// a locked current room nor a locked destination can be passed through.
func (Go) Execute(word string, params []string, w *game.World) error {
	var dir string
	switch foldWord(word) {
	case "go", "move", "walk":
		params = stripLeading(params, "to")
		if len(params) != 1 {
			return tqerrors.Reject(tqerrors.MalformedArguments, "Go where?", "need exactly one direction")
		}
		dir = params[0]
	default:
		if len(params) > 0 {
			return misunderstood()
		}
		dir = word
	}

	room, err := w.CurrentRoom()
	if err != nil {
		return err
	}

	next, ok := w.NextRoom(room, dir)
	if !ok {
		next, ok = w.NextRoom(room, expandDirection(dir))
	}
	if !ok {
		return tqerrors.Reject(tqerrors.TargetNotVisible, "You can't go that way.", "no exit "+dir)
	}

	if room.IsLocked() {
		return tqerrors.Rejectf(tqerrors.StateRejected, "The %s is locked. You can't leave.", room.Name())
	}
	if next.IsLocked() {
		return tqerrors.Rejectf(tqerrors.StateRejected, "The %s is locked.", next.Name())
	}

	if err := w.MovePlayer(next.Name()); err != nil {
		return err
	}

	return w.Print(next.Describe())
}

// Look shows the room, or examines something when given a target.
type Look struct{}

// Words returns the command words that Look answers to.
func (Look) Words() []string {
	return []string{"look", "l"}
}

// Help returns the usage shown by the help command.
func (Look) Help() string {
	return "show the room, or look at [thing]"
}

// Execute describes the current room, or with a target, works like Examine.
func (Look) Execute(word string, params []string, w *game.World) error {
	params = stripLeading(params, "at")
	if len(params) > 0 {
		return Examine{}.Execute(word, params, w)
	}

	room, err := w.CurrentRoom()
	if err != nil {
		return err
	}
	return w.Print(room.Describe())
}
