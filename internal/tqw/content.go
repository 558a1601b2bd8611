package tqw

import (
	"fmt"

	"github.com/dekarrin/textquest/internal/game"
)

// WorldData is a world loaded from TQW files. It implements game.Content, so
// it can be given directly to game.New; every time the world is reset, a
// fresh copy of the rooms, items and player is built from it.
type WorldData struct {
	// Start is the name of the room the player starts in.
	Start string

	// Welcome is shown when the game starts, before the first room.
	Welcome string

	// Goal is the name of the room that ends the game when the player enters
	// it. If it is empty, the game only ends when the player quits.
	Goal string

	// Ending is shown when the player reaches Goal.
	Ending string

	player playerDef
	rooms  []roomDef
}

// RoomNames returns the name of every room, in the order they were defined.
func (wd *WorldData) RoomNames() []string {
	names := make([]string, len(wd.rooms))
	for i := range wd.rooms {
		names[i] = wd.rooms[i].Name
	}
	return names
}

// InitializeGame fills w with a fresh copy of the world.
func (wd *WorldData) InitializeGame(w *game.World) error {
	rooms, p, err := wd.build()
	if err != nil {
		return err
	}

	for _, r := range rooms {
		if err := w.AddRoom(r); err != nil {
			return fmt.Errorf("add room: %w", err)
		}
	}
	w.SetPlayer(p)

	return nil
}

// PrintWelcome shows the welcome text followed by the starting room.
func (wd *WorldData) PrintWelcome(w *game.World) error {
	if wd.Welcome != "" {
		if err := w.Say(wd.Welcome); err != nil {
			return err
		}
	}

	room, err := w.CurrentRoom()
	if err != nil {
		return err
	}
	return w.Print(room.Describe())
}

// OnCommandFinished ends the game once the player has reached the goal room.
func (wd *WorldData) OnCommandFinished(w *game.World) error {
	if wd.Goal == "" || w.IsGameOver() {
		return nil
	}
	if w.Player().CurrentRoom() != wd.Goal {
		return nil
	}

	if wd.Ending != "" {
		if err := w.Say(wd.Ending); err != nil {
			return err
		}
	}
	w.SetGameOver(true)
	return nil
}
