package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Room_Describe(t *testing.T) {
	testCases := []struct {
		name   string
		setup  func(r *Room)
		expect string
	}{
		{
			name:   "empty with no exits",
			setup:  func(r *Room) {},
			expect: "Kitchen\nA small kitchen.\nExits:  n/a\n\n",
		},
		{
			name: "items and exits",
			setup: func(r *Room) {
				r.Add(NewItem("spoon", "", 1, true))
				r.Add(NewItem("box", "", 1, true))
				r.SetExit("north", "Hall")
				r.SetExit("west", "Pantry")
			},
			expect: "Kitchen\nA small kitchen.\nYou see spoon, box here.\n\nExits: north west\n\n",
		},
		{
			name: "exits keep insertion order",
			setup: func(r *Room) {
				r.SetExit("west", "Pantry")
				r.SetExit("down", "Cellar")
				r.SetExit("north", "Hall")
			},
			expect: "Kitchen\nA small kitchen.\nExits: west down north\n\n",
		},
		{
			name: "removed exit is gone",
			setup: func(r *Room) {
				r.SetExits("Hall", "", "Garden", "")
				r.RemoveExit("north")
			},
			expect: "Kitchen\nA small kitchen.\nExits: south\n\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRoom("Kitchen", "A small kitchen.")
			tc.setup(r)

			assert.Equal(t, tc.expect, r.Describe())
		})
	}
}

func Test_Room_SetExit(t *testing.T) {
	assert := assert.New(t)

	r := NewRoom("Kitchen", "")
	r.SetExit("north", "Hall")
	r.SetExit("north", "Attic")

	dest, ok := r.Exit("north")
	assert.True(ok)
	assert.Equal("Attic", dest)
	assert.Equal([]string{"north"}, r.Exits())

	r.SetExit("north", "")
	_, ok = r.Exit("north")
	assert.False(ok)
	assert.Empty(r.Exits())
}

func Test_Room_Lock(t *testing.T) {
	assert := assert.New(t)

	r := NewLockedRoom("Vault", "", "gold key")
	assert.True(r.IsLocked())
	assert.Equal("gold key", r.Key())

	assert.Error(r.Lock())
	assert.NoError(r.Unlock())
	assert.False(r.IsLocked())
	assert.Error(r.Unlock())
}

func Test_Room_Hooks(t *testing.T) {
	var calls []string

	w, err := New(nil, IODevice{Output: func(s string) error { return nil }})
	require.NoError(t, err)

	hall := NewRoom("Hall", "")
	hall.OnLeave = func(w *World, r *Room) error {
		calls = append(calls, "leave "+r.Name())
		return nil
	}
	kitchen := NewRoom("Kitchen", "")
	kitchen.OnEnter = func(w *World, r *Room) error {
		calls = append(calls, "enter "+r.Name())
		return nil
	}
	require.NoError(t, w.AddRoom(hall))
	require.NoError(t, w.AddRoom(kitchen))
	w.SetPlayer(NewPlayer("Hall", "you", ""))

	require.NoError(t, w.MovePlayer("Kitchen"))

	assert.Equal(t, []string{"leave Hall", "enter Kitchen"}, calls)
	assert.Equal(t, "Kitchen", w.Player().CurrentRoom())
}
