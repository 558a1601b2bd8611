// Package game implements the entity model and world state of a text
// adventure.
package game

// File room.go includes symbols for holding data on the rooms and exits between
// them.

import (
	"fmt"
	"strings"
)

// Standard direction names used by SetExits.
const (
	North = "north"
	East  = "east"
	South = "south"
	West  = "west"
)

// RoomHook is called when the player enters or leaves a room.
type RoomHook func(w *World, r *Room) error

// Room is a scene in the game. It holds items, can be locked, and has exits
// that lead to other rooms. Exits refer to other rooms by name; the World owns
// every Room.
type Room struct {
	Inventory
	LockState

	name        string
	description string

	// exits maps a direction to the name of the room it leads to.
	exits map[string]string

	// exitOrder is the directions in exits in the order they were added.
	exitOrder []string

	// OnEnter is called after the player moves into the room. It may be nil.
	OnEnter RoomHook

	// OnLeave is called before the player moves out of the room. It may be
	// nil.
	OnLeave RoomHook
}

// NewRoom creates an unlocked Room with no exits and nothing in it. Names
// should be capitalized by convention.
func NewRoom(name, description string) *Room {
	return &Room{
		name:        name,
		description: description,
		exits:       make(map[string]string),
	}
}

// NewLockedRoom creates a Room that starts out locked. key is the name of the
// item needed to unlock it, or empty if none is needed.
func NewLockedRoom(name, description, key string) *Room {
	r := NewRoom(name, description)
	r.locked = true
	r.key = key
	return r
}

// Name returns the name of the room. It is unique in the World.
func (room *Room) Name() string {
	return room.name
}

// Description returns the room description without the item and exit
// listings. See Describe for the full text.
func (room *Room) Description() string {
	return room.description
}

// SetDescription updates the base description of the room.
func (room *Room) SetDescription(desc string) {
	room.description = desc
}

// SetExits is a convenience for setting the four compass exits at once. An
// empty name means there is no exit in that direction and any existing one is
// left untouched.
func (room *Room) SetExits(north, east, south, west string) {
	for _, ex := range [][2]string{{North, north}, {East, east}, {South, south}, {West, west}} {
		if ex[1] != "" {
			room.SetExit(ex[0], ex[1])
		}
	}
}

// SetExit sets the exit in the given direction to lead to the room with the
// given name. If dest is empty, the exit is removed.
func (room *Room) SetExit(direction, dest string) {
	if dest == "" {
		room.RemoveExit(direction)
		return
	}
	if room.exits == nil {
		room.exits = make(map[string]string)
	}
	if _, exists := room.exits[direction]; !exists {
		room.exitOrder = append(room.exitOrder, direction)
	}
	room.exits[direction] = dest
}

// RemoveExit removes the exit in the given direction. If there is none, this
// has no effect.
func (room *Room) RemoveExit(direction string) {
	if _, exists := room.exits[direction]; !exists {
		return
	}
	delete(room.exits, direction)
	for i := range room.exitOrder {
		if room.exitOrder[i] == direction {
			room.exitOrder = append(room.exitOrder[:i], room.exitOrder[i+1:]...)
			break
		}
	}
}

// Exits returns every direction that has an exit, in the order they were
// added.
func (room *Room) Exits() []string {
	dirs := make([]string, len(room.exitOrder))
	copy(dirs, room.exitOrder)
	return dirs
}

// Exit returns the name of the room that the exit in the given direction leads
// to.
func (room *Room) Exit(direction string) (string, bool) {
	dest, ok := room.exits[direction]
	return dest, ok
}

// Describe returns the full description of the room, of the form:
//
//	NAME
//	Description...
//	You see box, spoon here.
//
//	Exits: north west
//
// The item line is left out if the room is empty, and the exits are given as
// " n/a" if there are none.
func (room *Room) Describe() string {
	var sb strings.Builder

	sb.WriteString(room.name + "\n" + room.description + "\n")

	if items := room.ItemString(); items != "" {
		sb.WriteString("You see " + items + " here.\n\n")
	}

	if len(room.exitOrder) < 1 {
		sb.WriteString("Exits:  n/a")
	} else {
		sb.WriteString("Exits: " + strings.Join(room.exitOrder, " "))
	}
	sb.WriteString("\n\n")

	return sb.String()
}

// Lock locks the room so that the player can neither enter nor leave it.
func (room *Room) Lock() error {
	return room.doLock(room.name)
}

// Unlock unlocks the room.
func (room *Room) Unlock() error {
	return room.doUnlock(room.name)
}

// Take moves e out of the room and into taker.
func (room *Room) Take(e Entity, taker Holder) error {
	return takeFrom(e, room, taker)
}

// Put moves e out of source and into the room.
func (room *Room) Put(e Entity, source Holder) error {
	return Move(e, source, room)
}

// Enter runs the OnEnter hook if one is set.
func (room *Room) Enter(w *World) error {
	if room.OnEnter == nil {
		return nil
	}
	return room.OnEnter(w, room)
}

// Leave runs the OnLeave hook if one is set.
func (room *Room) Leave(w *World) error {
	if room.OnLeave == nil {
		return nil
	}
	return room.OnLeave(w, room)
}

func (room *Room) String() string {
	var exits []string
	for _, dir := range room.exitOrder {
		exits = append(exits, fmt.Sprintf("%s -> %s", dir, room.exits[dir]))
	}
	exitsStr := strings.Join(exits, ", ")

	return fmt.Sprintf("Room<%q locked=%t EXITS: %s>", room.name, room.locked, exitsStr)
}
