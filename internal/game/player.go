package game

import (
	"fmt"

	"github.com/dekarrin/textquest/internal/tqerrors"
)

// Player is the one character controlled by the person playing. It holds
// items the same way a Container does and is always in exactly one Room.
type Player struct {
	Inventory

	name        string
	description string

	// room is the name of the room the player is currently in.
	room string

	// Health is free for game content to use.
	Health int

	// HasBrushedTeeth is free for game content to use.
	HasBrushedTeeth bool

	// IsWearingClothes is free for game content to use.
	IsWearingClothes bool

	// CarryLimit is the maximum total weight the player can hold. If it is 0
	// or less, there is no limit.
	CarryLimit int
}

// NewPlayer creates a player that starts in the room with the given name and
// holds nothing.
func NewPlayer(startRoom, name, description string) *Player {
	return &Player{
		name:        name,
		description: description,
		room:        startRoom,
	}
}

// Name returns the player's name.
func (p *Player) Name() string {
	return p.name
}

// Description returns the player's description.
func (p *Player) Description() string {
	return p.description
}

// CurrentRoom returns the name of the room the player is in. Use
// World.CurrentRoom to get the Room itself.
func (p *Player) CurrentRoom() string {
	return p.room
}

// SetCurrentRoom sets the name of the room the player is in. It does not run
// any room hooks or check that the room exists; see World.MovePlayer for that.
func (p *Player) SetCurrentRoom(name string) {
	p.room = name
}

// CanAdd checks whether e could be picked up without going over the carry
// limit.
func (p *Player) CanAdd(e Entity) error {
	if err := p.Inventory.CanAdd(e); err != nil {
		return err
	}
	return p.CanCarry(e, p)
}

// CanCarry checks whether moving e into dest keeps the player within the carry
// limit. It only applies when dest is the player or something the player is
// holding; anything else is always allowed.
func (p *Player) CanCarry(e Entity, dest Holder) error {
	if p.CarryLimit <= 0 || e == nil {
		return nil
	}
	if any(dest) != any(p) && !carriedDeep(p, dest) {
		return nil
	}
	// something coming out of a held container already counts toward the
	// total.
	if carriedDeep(p, e) {
		return nil
	}
	if p.TotalWeight()+e.Weight() > p.CarryLimit {
		return tqerrors.Rejectf(tqerrors.StateRejected, "You can't carry the %s; you're holding too much already.", e.Name())
	}
	return nil
}

// carriedDeep returns whether target is anywhere inside h.
func carriedDeep(h Holder, target any) bool {
	for _, held := range h.Items() {
		if any(held) == target {
			return true
		}
		if inner, ok := AsHolder(held); ok && carriedDeep(inner, target) {
			return true
		}
	}
	return false
}

// Add gives e to the player.
func (p *Player) Add(e Entity) error {
	if err := p.CanAdd(e); err != nil {
		return err
	}
	return p.Inventory.Add(e)
}

// Take moves e out of the player's hands and into taker.
func (p *Player) Take(e Entity, taker Holder) error {
	return takeFrom(e, p, taker)
}

// Put moves e out of source and into the player's hands.
func (p *Player) Put(e Entity, source Holder) error {
	return Move(e, source, p)
}

// Examine describes what the player is carrying.
func (p *Player) Examine() (string, error) {
	if p.Len() < 1 {
		return "You aren't carrying anything.", nil
	}
	return fmt.Sprintf("You are carrying %s.", p.ItemString()), nil
}

func (p *Player) String() string {
	return fmt.Sprintf("Player(%q in %q, carrying=[%s])", p.name, p.room, p.ItemString())
}
