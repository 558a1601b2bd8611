package game

// File item.go holds symbols related to items and the ordered inventories
// that hold them.

import (
	"fmt"
	"strings"

	"github.com/dekarrin/textquest/internal/tqerrors"
)

// Entity is anything that can be placed inside of a Holder.
type Entity interface {
	// Name returns the name that the player uses to refer to the entity. It
	// is unique within the Holder it is in and is case-sensitive.
	Name() string

	// Description returns what is shown when the player examines it.
	Description() string

	// Weight returns how heavy the entity is. It is never negative.
	Weight() int

	// Takeable returns whether the player is able to pick it up.
	Takeable() bool
}

// Item is an object in the world. By itself it cannot hold other items; see
// Container for that.
type Item struct {
	name        string
	description string
	weight      int
	takeable    bool
}

// NewItem creates an Item. A negative weight is treated as 0.
func NewItem(name, description string, weight int, takeable bool) *Item {
	if weight < 0 {
		weight = 0
	}
	return &Item{
		name:        name,
		description: description,
		weight:      weight,
		takeable:    takeable,
	}
}

// Name returns the item's name.
func (item *Item) Name() string {
	return item.name
}

// Description returns the item's description.
func (item *Item) Description() string {
	return item.description
}

// SetDescription updates the description shown when the item is examined.
func (item *Item) SetDescription(desc string) {
	item.description = desc
}

// Weight returns the weight of the item.
func (item *Item) Weight() int {
	return item.weight
}

// Takeable returns whether the player can pick the item up.
func (item *Item) Takeable() bool {
	return item.takeable
}

// SetTakeable sets whether the player can pick the item up.
func (item *Item) SetTakeable(takeable bool) {
	item.takeable = takeable
}

func (item *Item) String() string {
	return fmt.Sprintf("Item(%q, weight=%d, takeable=%t)", item.name, item.weight, item.takeable)
}

// Inventory is an ordered store of entities. Insertion order is kept for
// display. The zero value is an empty Inventory ready for use.
type Inventory struct {
	items []Entity
}

// Contains returns whether an entity with the given name is directly in the
// Inventory.
func (inv *Inventory) Contains(name string) bool {
	return inv.indexOf(name) != -1
}

// Lookup returns the entity with the given name. If there is none, the
// returned bool is false.
func (inv *Inventory) Lookup(name string) (Entity, bool) {
	idx := inv.indexOf(name)
	if idx == -1 {
		return nil, false
	}
	return inv.items[idx], true
}

// Items returns the entities in the order they were added. The returned slice
// is a copy and may be modified freely.
func (inv *Inventory) Items() []Entity {
	items := make([]Entity, len(inv.items))
	copy(items, inv.items)
	return items
}

// Len returns the number of entities directly in the Inventory.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// TotalWeight returns the sum of the weight of every entity directly in the
// Inventory.
func (inv *Inventory) TotalWeight() int {
	total := 0
	for _, e := range inv.items {
		total += e.Weight()
	}
	return total
}

// CanAdd checks whether e could be added without breaking the uniqueness of
// names. It returns a non-nil rejection if it could not.
func (inv *Inventory) CanAdd(e Entity) error {
	if e == nil {
		return fmt.Errorf("cannot add a nil entity")
	}
	if inv.Contains(e.Name()) {
		return tqerrors.Rejectf(tqerrors.StateRejected, "There is already a %s there.", e.Name())
	}
	return nil
}

// Add appends e to the Inventory. If an entity with the same name is already
// present, a rejection is returned and nothing is added.
func (inv *Inventory) Add(e Entity) error {
	if err := inv.CanAdd(e); err != nil {
		return err
	}
	inv.items = append(inv.items, e)
	return nil
}

// Remove removes e from the Inventory and returns it. Entities are matched by
// name. If e is not present, the returned bool is false and nothing changes.
func (inv *Inventory) Remove(e Entity) (Entity, bool) {
	if e == nil {
		return nil, false
	}
	idx := inv.indexOf(e.Name())
	if idx == -1 {
		return nil, false
	}

	removed := inv.items[idx]
	inv.items = append(inv.items[:idx], inv.items[idx+1:]...)
	return removed, true
}

// Clear removes every entity from the Inventory.
func (inv *Inventory) Clear() {
	inv.items = nil
}

// ItemString returns the names of the contents joined by ", ". It is empty if
// there are no contents.
func (inv *Inventory) ItemString() string {
	return strings.Join(inv.Names(), ", ")
}

// Names returns the names of the contents in insertion order.
func (inv *Inventory) Names() []string {
	names := make([]string, len(inv.items))
	for i := range inv.items {
		names[i] = inv.items[i].Name()
	}
	return names
}

func (inv *Inventory) indexOf(name string) int {
	for idx, e := range inv.items {
		if e.Name() == name {
			return idx
		}
	}
	return -1
}
