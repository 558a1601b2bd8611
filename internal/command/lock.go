package command

import (
	"github.com/dekarrin/textquest/internal/game"
	"github.com/dekarrin/textquest/internal/tqerrors"
)

// Open opens something that can be opened.
type Open struct{}

// Words returns the command words that Open answers to.
func (Open) Words() []string {
	return []string{"open"}
}

// Help returns the usage shown by the help command.
func (Open) Help() string {
	return "open [thing]"
}

// Execute opens the target if it is Openable and closed.
func (Open) Execute(word string, params []string, w *game.World) error {
	target, err := findOpenable(params, w, "open")
	if err != nil {
		return err
	}
	if err := target.Open(); err != nil {
		return err
	}
	return w.Say("Done.")
}

// Close closes something that can be opened.
type Close struct{}

// Words returns the command words that Close answers to.
func (Close) Words() []string {
	return []string{"close", "shut"}
}

// Help returns the usage shown by the help command.
func (Close) Help() string {
	return "close [thing]"
}

// Execute closes the target if it is Openable and open.
func (Close) Execute(word string, params []string, w *game.World) error {
	target, err := findOpenable(params, w, "close")
	if err != nil {
		return err
	}
	if err := target.Close(); err != nil {
		return err
	}
	return w.Say("Done.")
}

func findOpenable(params []string, w *game.World, verb string) (game.Openable, error) {
	params = stripLeading(params, "the")
	if len(params) != 1 {
		return nil, misunderstood()
	}

	room, p, err := scope(w)
	if err != nil {
		return nil, err
	}

	e, _, ok := findHeldFirst(room, p, params[0])
	if !ok {
		return nil, notVisible(params[0])
	}

	o, ok := game.AsOpenable(e)
	if !ok {
		return nil, tqerrors.Rejectf(tqerrors.CapabilityMissing, "You can't %s the %s.", verb, e.Name())
	}
	return o, nil
}

// Lock locks a chest or a room. The room can be the current one or one that
// an exit leads to, named by the direction of the exit.
type Lock struct{}

// Words returns the command words that Lock answers to.
func (Lock) Words() []string {
	return []string{"lock"}
}

// Help returns the usage shown by the help command.
func (Lock) Help() string {
	return "lock [thing or direction] (with [key])"
}

// Execute locks the target. If the target needs a key, the player must be
// holding it.
func (Lock) Execute(word string, params []string, w *game.World) error {
	target, err := findLockable(params, w, "lock")
	if err != nil {
		return err
	}
	if err := target.Lock(); err != nil {
		return err
	}
	return w.Say("Done.")
}

// Unlock unlocks a chest or a room. The room can be the current one or one
// that an exit leads to, named by the direction of the exit.
type Unlock struct{}

// Words returns the command words that Unlock answers to.
func (Unlock) Words() []string {
	return []string{"unlock"}
}

// Help returns the usage shown by the help command.
func (Unlock) Help() string {
	return "unlock [thing or direction] (with [key])"
}

// Execute unlocks the target. If the target needs a key, the player must be
// holding it.
func (Unlock) Execute(word string, params []string, w *game.World) error {
	target, err := findLockable(params, w, "unlock")
	if err != nil {
		return err
	}
	if err := target.Unlock(); err != nil {
		return err
	}
	return w.Say("Done.")
}

// findLockable resolves the target of LOCK or UNLOCK and checks that the
// player holds its key. params is either [target] or [target, "with", key].
func findLockable(params []string, w *game.World, verb string) (game.Lockable, error) {
	params = stripLeading(params, "the")

	var keyName string
	switch len(params) {
	case 1:
	case 3:
		if params[1] != "with" {
			return nil, misunderstood()
		}
		keyName = params[2]
	default:
		return nil, misunderstood()
	}

	room, p, err := scope(w)
	if err != nil {
		return nil, err
	}

	targetName := params[0]
	var target any
	if e, _, ok := findHeldFirst(room, p, targetName); ok {
		target = e
		targetName = e.Name()
	} else if next, ok := w.NextRoom(room, targetName); ok {
		target = next
		targetName = next.Name()
	} else if next, ok := w.NextRoom(room, expandDirection(targetName)); ok {
		target = next
		targetName = next.Name()
	} else if targetName == room.Name() {
		target = room
	} else {
		return nil, notVisible(targetName)
	}

	l, ok := game.AsLockable(target)
	if !ok {
		return nil, tqerrors.Rejectf(tqerrors.CapabilityMissing, "You can't %s the %s.", verb, targetName)
	}

	if keyName != "" && !p.Contains(keyName) {
		return nil, tqerrors.Rejectf(tqerrors.TargetNotVisible, "You don't have a %s.", keyName)
	}

	if l.Key() != "" {
		if keyName != "" && keyName != l.Key() {
			return nil, tqerrors.Rejectf(tqerrors.StateRejected, "The %s doesn't fit.", keyName)
		}
		if !p.Contains(l.Key()) {
			return nil, tqerrors.Rejectf(tqerrors.StateRejected, "You need the %s to do that.", l.Key())
		}
	}

	return l, nil
}
