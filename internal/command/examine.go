package command

import (
	"strings"

	"github.com/dekarrin/textquest/internal/game"
	"github.com/dekarrin/textquest/internal/tqerrors"
	"github.com/dekarrin/textquest/internal/util"
)

// Examine describes something the player can see, including what is inside of
// it if it holds things.
type Examine struct{}

// Words returns the command words that Examine answers to.
func (Examine) Words() []string {
	return []string{"examine", "x", "inspect"}
}

// Help returns the usage shown by the help command.
func (Examine) Help() string {
	return "describe [thing] and anything in it"
}

// Execute prints the description of the target, followed by what is inside
// of it if it holds things. A closed container rejects the whole command.
func (Examine) Execute(word string, params []string, w *game.World) error {
	params = stripLeading(params, "the")
	if len(params) != 1 {
		return tqerrors.Reject(tqerrors.MalformedArguments, "Examine what?", "need exactly one target")
	}

	room, p, err := scope(w)
	if err != nil {
		return err
	}

	target, _, ok := findHeldFirst(room, p, params[0])
	if !ok {
		return notVisible(params[0])
	}

	var lines []string
	if desc := target.Description(); desc != "" {
		lines = append(lines, desc)
	}

	if insp, ok := game.AsInspectable(target); ok {
		contents, err := insp.Examine()
		if err != nil {
			return err
		}
		lines = append(lines, contents)
	}

	if len(lines) < 1 {
		lines = append(lines, "You see nothing special about the "+target.Name()+".")
	}

	return w.Say(strings.Join(lines, "\n"))
}

// Inventory lists what the player is carrying.
type Inventory struct{}

// Words returns the command words that Inventory answers to.
func (Inventory) Words() []string {
	return []string{"inventory", "inv", "i"}
}

// Help returns the usage shown by the help command.
func (Inventory) Help() string {
	return "list what you are carrying"
}

// Execute lists everything the player is directly holding.
func (Inventory) Execute(word string, params []string, w *game.World) error {
	if len(params) > 0 {
		return misunderstood()
	}

	_, p, err := scope(w)
	if err != nil {
		return err
	}

	if p.Len() < 1 {
		return w.Say("You aren't carrying anything.")
	}

	return w.Say("You are carrying " + util.MakeTextList(p.Names(), true) + ".")
}
