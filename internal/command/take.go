package command

import (
	"github.com/dekarrin/textquest/internal/game"
	"github.com/dekarrin/textquest/internal/tqerrors"
)

// Take picks an item up, either from the room or from a container.
type Take struct{}

// Words returns the command words that Take answers to.
func (Take) Words() []string {
	return []string{"take", "get", "grab", "hold"}
}

// Help returns the usage shown by the help command.
func (Take) Help() string {
	return "[item] or [item] from [container]"
}

// Execute moves an item into the player's inventory. With "from", the item is
// taken out of the named container instead of the room.
func (Take) Execute(word string, params []string, w *game.World) error {
	room, p, err := scope(w)
	if err != nil {
		return err
	}

	switch len(params) {
	case 1:
		itemName := params[0]
		if item, ok := room.Lookup(itemName); ok {
			if err := room.Take(item, p); err != nil {
				return err
			}
			return w.Say("Taken.")
		}
		if p.Contains(itemName) {
			return tqerrors.Reject(tqerrors.StateRejected, "You already have that!", "item is already held")
		}
		return notVisible(itemName)
	case 3:
		if params[1] != "from" {
			return misunderstood()
		}
		itemName, containerName := params[0], params[2]

		target, _, ok := findHeldFirst(room, p, containerName)
		if !ok {
			return notVisible(containerName)
		}

		container, ok := game.AsHolder(target)
		if !ok {
			return tqerrors.Rejectf(tqerrors.CapabilityMissing, "The %s can't hold things!", containerName)
		}

		item, ok := container.Lookup(itemName)
		if !ok {
			return tqerrors.Rejectf(tqerrors.TargetNotVisible, "The %s doesn't have a %s.", containerName, itemName)
		}

		if err := container.Take(item, p); err != nil {
			return err
		}
		return w.Say("Taken.")
	default:
		return misunderstood()
	}
}

// Put moves an item into a container.
type Put struct{}

// Words returns the command words that Put answers to.
func (Put) Words() []string {
	return []string{"put", "set", "place"}
}

// Help returns the usage shown by the help command.
func (Put) Help() string {
	return "put [item] in [container]"
}

// Execute moves an item the player can see into a container the player can
// see. Self-containment is rejected before the container is asked.
func (Put) Execute(word string, params []string, w *game.World) error {
	if len(params) != 3 || params[1] != "in" {
		return misunderstood()
	}

	room, p, err := scope(w)
	if err != nil {
		return err
	}

	itemName, containerName := params[0], params[2]

	item, source, ok := findHeldFirst(room, p, itemName)
	if !ok {
		return tqerrors.Rejectf(tqerrors.TargetNotVisible, "You can't see any %s here!", itemName)
	}

	target, _, ok := findHeldFirst(room, p, containerName)
	if !ok {
		return tqerrors.Rejectf(tqerrors.TargetNotVisible, "You can't see any %s here!", containerName)
	}

	if itemName == containerName {
		return tqerrors.Rejectf(tqerrors.SelfReferential, "You can't put the %s into itself!", containerName)
	}

	container, ok := game.AsHolder(target)
	if !ok {
		return tqerrors.Rejectf(tqerrors.CapabilityMissing, "The %s can't hold things.", containerName)
	}

	// a closed container rejects the put itself, so it reports that first.
	if o, ok := game.AsOpenable(container); !ok || o.IsOpen() {
		if err := p.CanCarry(item, container); err != nil {
			return err
		}
	}

	if err := container.Put(item, source); err != nil {
		return err
	}
	return w.Say("Done.")
}

// Drop puts down something the player is holding.
type Drop struct{}

// Words returns the command words that Drop answers to.
func (Drop) Words() []string {
	return []string{"drop"}
}

// Help returns the usage shown by the help command.
func (Drop) Help() string {
	return "put down [item] that you are holding"
}

// Execute moves an item from the player's inventory into the current room.
func (Drop) Execute(word string, params []string, w *game.World) error {
	if len(params) != 1 {
		return misunderstood()
	}

	room, p, err := scope(w)
	if err != nil {
		return err
	}

	item, ok := p.Lookup(params[0])
	if !ok {
		return tqerrors.Rejectf(tqerrors.TargetNotVisible, "You don't have a %s.", params[0])
	}

	if err := room.Put(item, p); err != nil {
		return err
	}
	return w.Say("Dropped.")
}
