package command

import (
	"github.com/dekarrin/textquest/internal/game"
	"github.com/dekarrin/textquest/internal/tqerrors"
)

// scope returns the current room and the player, the two Holders whose
// contents a command can see.
func scope(w *game.World) (*game.Room, *game.Player, error) {
	room, err := w.CurrentRoom()
	if err != nil {
		return nil, nil, err
	}
	return room, w.Player(), nil
}

// findHeldFirst looks for the named entity in the player's inventory and then
// in the current room. It also returns whichever of the two holds it.
func findHeldFirst(room *game.Room, p *game.Player, name string) (game.Entity, game.Holder, bool) {
	if e, ok := p.Lookup(name); ok {
		return e, p, true
	}
	if e, ok := room.Lookup(name); ok {
		return e, room, true
	}
	return nil, nil, false
}

func misunderstood() error {
	return tqerrors.Reject(tqerrors.MalformedArguments, "I don't understand.", "")
}

func notVisible(name string) error {
	return tqerrors.Rejectf(tqerrors.TargetNotVisible, "You can't see any %s here.", name)
}
