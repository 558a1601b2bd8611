package game

// File container.go holds the items that can hold other items, and Move, which
// is the only way an entity changes hands once the world is built.

import (
	"fmt"

	"github.com/dekarrin/textquest/internal/tqerrors"
)

// Move transfers e from one Holder to another. The destination is checked
// before anything is modified, so a rejected move changes nothing; after that
// e is removed from the source before being added to the destination, so it
// is never held by both.
//
// A Holder can never be moved into itself or into anything it holds.
func Move(e Entity, from, to Holder) error {
	if e == nil || from == nil || to == nil {
		return fmt.Errorf("move: nil entity or holder")
	}

	if !from.Contains(e.Name()) {
		return tqerrors.Rejectf(tqerrors.TargetNotVisible, "You can't see any %s here.", e.Name())
	}

	if h, ok := AsHolder(e); ok && (h == to || holdsDeep(h, to)) {
		return tqerrors.Rejectf(tqerrors.SelfReferential, "You can't put the %s into itself!", e.Name())
	}

	if err := to.CanAdd(e); err != nil {
		return err
	}

	removed, ok := from.Remove(e)
	if !ok {
		return tqerrors.Rejectf(tqerrors.TargetNotVisible, "You can't see any %s here.", e.Name())
	}

	if err := to.Add(removed); err != nil {
		// put it back where it was; it was there a moment ago so this cannot
		// collide.
		if restoreErr := from.Add(removed); restoreErr != nil {
			return fmt.Errorf("move %q: restoring after %v: %w", e.Name(), err, restoreErr)
		}
		return err
	}

	return nil
}

// holdsDeep returns whether target is somewhere inside h.
func holdsDeep(h Holder, target Holder) bool {
	for _, e := range h.Items() {
		inner, ok := AsHolder(e)
		if !ok {
			continue
		}
		if inner == target || holdsDeep(inner, target) {
			return true
		}
	}
	return false
}

// takeFrom is the shared implementation of Take for everything that holds
// items.
func takeFrom(e Entity, from, taker Holder) error {
	if e == nil {
		return fmt.Errorf("take: nil entity")
	}
	if !from.Contains(e.Name()) {
		return tqerrors.Rejectf(tqerrors.TargetNotVisible, "The %s doesn't have a %s.", from.Name(), e.Name())
	}
	if !e.Takeable() {
		return tqerrors.Rejectf(tqerrors.CapabilityMissing, "You can't take the %s.", e.Name())
	}
	return Move(e, from, taker)
}

// Container is an Item that holds other items.
type Container struct {
	Item
	Inventory
}

// NewContainer creates an empty Container.
func NewContainer(name, description string, weight int, takeable bool) *Container {
	return &Container{
		Item: *NewItem(name, description, weight, takeable),
	}
}

// Weight returns the weight of the container plus everything in it.
func (c *Container) Weight() int {
	return c.Item.Weight() + c.Inventory.TotalWeight()
}

// Take moves e out of the container and into taker.
func (c *Container) Take(e Entity, taker Holder) error {
	return takeFrom(e, c, taker)
}

// Put moves e from source into the container.
func (c *Container) Put(e Entity, source Holder) error {
	return Move(e, source, c)
}

// Examine describes the contents of the container.
func (c *Container) Examine() (string, error) {
	if c.Len() < 1 {
		return fmt.Sprintf("The %s is empty.", c.Name()), nil
	}
	return fmt.Sprintf("Inside the %s you see %s.", c.Name(), c.ItemString()), nil
}

func (c *Container) String() string {
	return fmt.Sprintf("Container(%q, contents=[%s])", c.Name(), c.ItemString())
}

// OpenableContainer is a Container that can be opened and closed. While it is
// closed nothing can be taken out of it, put into it, or seen inside of it.
type OpenableContainer struct {
	Container
	OpenState
}

// NewOpenableContainer creates an empty OpenableContainer.
func NewOpenableContainer(name, description string, weight int, takeable bool, open bool) *OpenableContainer {
	return &OpenableContainer{
		Container: *NewContainer(name, description, weight, takeable),
		OpenState: OpenState{open: open},
	}
}

// Open opens the container.
func (oc *OpenableContainer) Open() error {
	return oc.doOpen(oc.Name())
}

// Close closes the container.
func (oc *OpenableContainer) Close() error {
	return oc.doClose(oc.Name())
}

// Take moves e out of the container and into taker. It is rejected if the
// container is closed.
func (oc *OpenableContainer) Take(e Entity, taker Holder) error {
	if err := oc.guard(oc.Name()); err != nil {
		return err
	}
	return takeFrom(e, oc, taker)
}

// Put moves e from source into the container. It is rejected if the container
// is closed.
func (oc *OpenableContainer) Put(e Entity, source Holder) error {
	if err := oc.guard(oc.Name()); err != nil {
		return err
	}
	return Move(e, source, oc)
}

// Examine describes the contents of the container. It is rejected if the
// container is closed.
func (oc *OpenableContainer) Examine() (string, error) {
	if err := oc.guard(oc.Name()); err != nil {
		return "", err
	}
	return oc.Container.Examine()
}

func (oc *OpenableContainer) String() string {
	return fmt.Sprintf("OpenableContainer(%q, open=%t, contents=[%s])", oc.Name(), oc.IsOpen(), oc.ItemString())
}

// Chest is an OpenableContainer that can also be locked. A locked chest cannot
// be opened and an open chest cannot be locked.
type Chest struct {
	OpenableContainer
	LockState
}

// NewChest creates an empty Chest. If locked is true the chest starts closed
// regardless of open. key is the name of the item that works its lock, or
// empty if none is needed.
func NewChest(name, description string, weight int, takeable bool, open, locked bool, key string) *Chest {
	if locked {
		open = false
	}
	return &Chest{
		OpenableContainer: *NewOpenableContainer(name, description, weight, takeable, open),
		LockState:         LockState{locked: locked, key: key},
	}
}

// Open opens the chest. It is rejected if the chest is locked.
func (ch *Chest) Open() error {
	if ch.IsLocked() {
		return tqerrors.Rejectf(tqerrors.StateRejected, "The %s is locked.", ch.Name())
	}
	return ch.OpenableContainer.Open()
}

// Lock locks the chest. It is rejected if the chest is open.
func (ch *Chest) Lock() error {
	if ch.IsOpen() {
		return tqerrors.Rejectf(tqerrors.StateRejected, "You need to close the %s first.", ch.Name())
	}
	return ch.doLock(ch.Name())
}

// Unlock unlocks the chest.
func (ch *Chest) Unlock() error {
	return ch.doUnlock(ch.Name())
}

// Take moves e out of the chest and into taker. It is rejected if the chest
// is closed.
func (ch *Chest) Take(e Entity, taker Holder) error {
	if err := ch.guard(ch.Name()); err != nil {
		return err
	}
	return takeFrom(e, ch, taker)
}

// Put moves e from source into the chest. It is rejected if the chest is
// closed.
func (ch *Chest) Put(e Entity, source Holder) error {
	if err := ch.guard(ch.Name()); err != nil {
		return err
	}
	return Move(e, source, ch)
}

func (ch *Chest) String() string {
	return fmt.Sprintf("Chest(%q, open=%t, locked=%t, contents=[%s])", ch.Name(), ch.IsOpen(), ch.IsLocked(), ch.ItemString())
}
