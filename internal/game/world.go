package game

import (
	"errors"
	"fmt"

	"github.com/dekarrin/textquest/internal/render"
	"github.com/dekarrin/textquest/internal/util"
)

// IODevice is where the world sends everything that is shown to the player.
type IODevice struct {
	// Width is the column width that all output is wrapped to. If it is less
	// than 1, render.DefaultWidth is used.
	Width int

	// Output sends already-formatted text to the player.
	Output func(s string) error
}

// Content is the game content that a World runs. It is the only thing that
// knows about concrete rooms, items, and story.
type Content interface {
	// InitializeGame is called once when the game starts and again every time
	// it is reset. It must add every Room to the World and set the Player.
	InitializeGame(w *World) error

	// PrintWelcome is called after InitializeGame to show the opening text.
	PrintWelcome(w *World) error

	// OnCommandFinished is called after every command has been processed,
	// whether it succeeded or not. It is a good time to end the game and to
	// print anything that should come before the next prompt.
	OnCommandFinished(w *World) error
}

// World is the registry of every Room in the game along with the Player. It
// owns all Rooms; everything else refers to them by name.
type World struct {
	rooms    map[string]*Room
	player   *Player
	gameOver bool

	content Content
	io      IODevice
}

// New creates an empty World that runs the given content. Nothing is
// populated until Reset is called.
func New(content Content, ioDev IODevice) (*World, error) {
	if ioDev.Output == nil {
		return nil, fmt.Errorf("io device must define an Output function")
	}
	if ioDev.Width < 1 {
		ioDev.Width = render.DefaultWidth
	}

	return &World{
		rooms:   make(map[string]*Room),
		content: content,
		io:      ioDev,
	}, nil
}

// Content returns the game content the World runs. It may be nil.
func (w *World) Content() Content {
	return w.content
}

// Reset clears every room, the player, and the game over flag, then calls the
// content's InitializeGame to populate the World again. It returns an error if
// initialization fails or does not leave the player in an existing room.
func (w *World) Reset() error {
	w.rooms = make(map[string]*Room)
	w.player = nil
	w.gameOver = false

	if w.content == nil {
		return nil
	}

	if err := w.content.InitializeGame(w); err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	if w.player == nil {
		return fmt.Errorf("initialize game: no player was set")
	}
	if _, ok := w.rooms[w.player.CurrentRoom()]; !ok {
		return fmt.Errorf("initialize game: player starts in %q, which does not exist", w.player.CurrentRoom())
	}

	return nil
}

// AddRoom adds a room to the World. It returns an error if room is nil or if
// a room with the same name already exists.
func (w *World) AddRoom(room *Room) error {
	if room == nil {
		return errors.New("cannot add a nil room")
	}
	if _, exists := w.rooms[room.Name()]; exists {
		return fmt.Errorf("a room named %q already exists; remove the old room first", room.Name())
	}
	w.rooms[room.Name()] = room
	return nil
}

// RemoveRoom removes the room with the given name. If there is none, this has
// no effect.
func (w *World) RemoveRoom(name string) {
	delete(w.rooms, name)
}

// Room returns the room with the given name.
func (w *World) Room(name string) (*Room, bool) {
	r, ok := w.rooms[name]
	return r, ok
}

// RoomNames returns the names of every room in alphabetical order.
func (w *World) RoomNames() []string {
	return util.OrderedKeys(w.rooms)
}

// Player returns the player. It is nil until the World has been initialized.
func (w *World) Player() *Player {
	return w.player
}

// SetPlayer sets the player.
func (w *World) SetPlayer(p *Player) {
	w.player = p
}

// IsGameOver returns whether the game has ended.
func (w *World) IsGameOver() bool {
	return w.gameOver
}

// SetGameOver sets whether the game has ended.
func (w *World) SetGameOver(over bool) {
	w.gameOver = over
}

// CurrentRoom returns the room the player is in. It returns an error if there
// is no player or the player is somewhere that does not exist.
func (w *World) CurrentRoom() (*Room, error) {
	if w.player == nil {
		return nil, fmt.Errorf("world has no player")
	}
	r, ok := w.rooms[w.player.CurrentRoom()]
	if !ok {
		return nil, fmt.Errorf("player is in room %q, which does not exist", w.player.CurrentRoom())
	}
	return r, nil
}

// NextRoom returns the room reached by going from the given room in the given
// direction. The player is not moved.
func (w *World) NextRoom(from *Room, direction string) (*Room, bool) {
	if from == nil {
		return nil, false
	}
	dest, ok := from.Exit(direction)
	if !ok {
		return nil, false
	}
	return w.Room(dest)
}

// MovePlayer moves the player into the named room, running the OnLeave hook of
// the room being left and then the OnEnter hook of the room being entered. It
// does not check locks; that is up to the caller.
func (w *World) MovePlayer(roomName string) error {
	if w.player == nil {
		return fmt.Errorf("world has no player")
	}
	dest, ok := w.rooms[roomName]
	if !ok {
		return fmt.Errorf("no room named %q exists", roomName)
	}

	if cur, ok := w.rooms[w.player.CurrentRoom()]; ok {
		if err := cur.Leave(w); err != nil {
			return fmt.Errorf("leaving %q: %w", cur.Name(), err)
		}
	}

	w.player.SetCurrentRoom(dest.Name())

	if err := dest.Enter(w); err != nil {
		return fmt.Errorf("entering %q: %w", dest.Name(), err)
	}
	return nil
}

// Width returns the column width that output is wrapped to.
func (w *World) Width() int {
	return w.io.Width
}

// Print wraps s to the output width and sends it to the player exactly as
// given otherwise.
func (w *World) Print(s string) error {
	if err := w.io.Output(render.Wrap(s, w.io.Width)); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	return nil
}

// Say prints s as its own paragraph, followed by a blank line.
func (w *World) Say(s string) error {
	return w.Print(s + "\n\n")
}
