package tqw

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dekarrin/textquest/internal/game"
	"github.com/dekarrin/textquest/internal/util"
)

// names are typed by the player as a single command token.
var nameRegexp = regexp.MustCompile(`^\S+$`)

func checkName(name string, seen util.KeySet[string], what string) error {
	if name == "" {
		return fmt.Errorf("must have non-blank 'name' field")
	}
	if !nameRegexp.MatchString(name) {
		return fmt.Errorf("name %q must not contain whitespace", name)
	}
	if seen.Has(name) {
		return fmt.Errorf("%s named %q already exists", what, name)
	}
	return nil
}

func parseWorldData(tqw topLevelWorldData) (*WorldData, error) {
	roomNames := util.NewKeySet[string]()
	for _, r := range tqw.Rooms {
		if err := checkName(r.Name, roomNames, "a room"); err != nil {
			return nil, fmt.Errorf("room %q: %w", r.Name, err)
		}
		roomNames.Add(r.Name)
	}

	if tqw.World.Start == "" {
		return nil, fmt.Errorf("world: must have non-blank 'start' field")
	}
	if !roomNames.Has(tqw.World.Start) {
		return nil, fmt.Errorf("world: start: no room named %q exists", tqw.World.Start)
	}
	if tqw.World.Goal != "" && !roomNames.Has(tqw.World.Goal) {
		return nil, fmt.Errorf("world: goal: no room named %q exists", tqw.World.Goal)
	}

	for _, r := range tqw.Rooms {
		if err := validateRoomDef(r, roomNames); err != nil {
			return nil, fmt.Errorf("room %q: %w", r.Name, err)
		}
	}

	player := playerDef{Name: "you"}
	if tqw.Player != nil {
		player = *tqw.Player
		if player.Name == "" {
			player.Name = "you"
		}
	}
	if player.CarryLimit < 0 {
		return nil, fmt.Errorf("player: carry_limit must not be negative")
	}
	if err := validateItemDefs(player.Items, util.NewKeySet[string]()); err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}

	wd := &WorldData{
		Start:   tqw.World.Start,
		Welcome: strings.TrimSpace(tqw.World.Welcome),
		Goal:    tqw.World.Goal,
		Ending:  strings.TrimSpace(tqw.World.Ending),
		player:  player,
		rooms:   tqw.Rooms,
	}

	// build once so that anything the checks above missed shows up now
	// rather than when the game starts.
	if _, _, err := wd.build(); err != nil {
		return nil, err
	}

	return wd, nil
}

func validateRoomDef(r roomDef, roomNames util.KeySet[string]) error {
	exits := util.NewKeySet[string]()
	for dir, dest := range r.Exits {
		if !nameRegexp.MatchString(dir) {
			return fmt.Errorf("exit %q: direction must be a single word", dir)
		}
		if !roomNames.Has(dest) {
			return fmt.Errorf("exit %q: no room named %q exists", dir, dest)
		}
		exits.Add(dir)
	}

	if len(r.ExitOrder) > 0 {
		listed := util.NewKeySet[string]()
		for _, dir := range r.ExitOrder {
			if !exits.Has(dir) {
				return fmt.Errorf("exit_order: %q is not one of the exits", dir)
			}
			if listed.Has(dir) {
				return fmt.Errorf("exit_order: %q is listed more than once", dir)
			}
			listed.Add(dir)
		}
		if missing := exits.Difference(listed); missing.Len() > 0 {
			return fmt.Errorf("exit_order: must list every exit; missing %s", missing.StringOrdered())
		}
	}

	if r.Key != "" && !nameRegexp.MatchString(r.Key) {
		return fmt.Errorf("key %q must not contain whitespace", r.Key)
	}

	return validateItemDefs(r.Items, util.NewKeySet[string]())
}

// validateItemDefs checks a list of items that share a scope, and everything
// inside of them.
func validateItemDefs(items []itemDef, seen util.KeySet[string]) error {
	for _, it := range items {
		if err := checkName(it.Name, seen, "an item"); err != nil {
			return fmt.Errorf("item %q: %w", it.Name, err)
		}
		seen.Add(it.Name)

		switch it.kind() {
		case KindItem:
			if len(it.Items) > 0 {
				return fmt.Errorf("item %q: only containers can hold items; set 'kind' to %q, %q or %q", it.Name, KindContainer, KindOpenable, KindChest)
			}
			if it.Open || it.Locked || it.Key != "" {
				return fmt.Errorf("item %q: open, locked and key are only for containers", it.Name)
			}
		case KindContainer:
			if it.Open || it.Locked || it.Key != "" {
				return fmt.Errorf("item %q: a %q is always open and cannot be locked", it.Name, KindContainer)
			}
		case KindOpenable:
			if it.Locked || it.Key != "" {
				return fmt.Errorf("item %q: a %q cannot be locked; use %q", it.Name, KindOpenable, KindChest)
			}
		case KindChest:
			if it.Locked && it.Open {
				return fmt.Errorf("item %q: a locked chest cannot start open", it.Name)
			}
		default:
			return fmt.Errorf("item %q: unknown kind %q", it.Name, it.Kind)
		}

		if it.Weight < 0 {
			return fmt.Errorf("item %q: weight must not be negative", it.Name)
		}

		if err := validateItemDefs(it.Items, util.NewKeySet[string]()); err != nil {
			return fmt.Errorf("in item %q: %w", it.Name, err)
		}
	}
	return nil
}

// build creates a fresh set of game objects from the definitions.
func (wd *WorldData) build() ([]*game.Room, *game.Player, error) {
	rooms := make([]*game.Room, 0, len(wd.rooms))
	for _, r := range wd.rooms {
		room, err := r.toGameRoom()
		if err != nil {
			return nil, nil, fmt.Errorf("room %q: %w", r.Name, err)
		}
		rooms = append(rooms, room)
	}

	p := game.NewPlayer(wd.Start, wd.player.Name, strings.TrimSpace(wd.player.Description))
	p.CarryLimit = wd.player.CarryLimit
	for _, it := range wd.player.Items {
		if err := p.Inventory.Add(it.toGameEntity()); err != nil {
			return nil, nil, fmt.Errorf("player: item %q: %w", it.Name, err)
		}
	}

	return rooms, p, nil
}

func (r roomDef) toGameRoom() (*game.Room, error) {
	desc := strings.TrimSpace(r.Description)

	var room *game.Room
	if r.Locked {
		room = game.NewLockedRoom(r.Name, desc, r.Key)
	} else {
		room = game.NewRoom(r.Name, desc)
		room.SetKey(r.Key)
	}

	order := r.ExitOrder
	if len(order) < 1 {
		order = make([]string, 0, len(r.Exits))
		for dir := range r.Exits {
			order = append(order, dir)
		}
		sort.Strings(order)
	}
	for _, dir := range order {
		room.SetExit(dir, r.Exits[dir])
	}

	for _, it := range r.Items {
		if err := room.Add(it.toGameEntity()); err != nil {
			return nil, fmt.Errorf("item %q: %w", it.Name, err)
		}
	}

	return room, nil
}

func (it itemDef) toGameEntity() game.Entity {
	desc := strings.TrimSpace(it.Description)

	var holder game.Holder
	switch it.kind() {
	case KindContainer:
		holder = game.NewContainer(it.Name, desc, it.Weight, it.takeable())
	case KindOpenable:
		holder = game.NewOpenableContainer(it.Name, desc, it.Weight, it.takeable(), it.Open)
	case KindChest:
		holder = game.NewChest(it.Name, desc, it.Weight, it.takeable(), it.Open, it.Locked, it.Key)
	default:
		return game.NewItem(it.Name, desc, it.Weight, it.takeable())
	}

	for _, inner := range it.Items {
		// names were already checked to be unique, so Add cannot fail
		_ = holder.Add(inner.toGameEntity())
	}

	return holder.(game.Entity)
}
