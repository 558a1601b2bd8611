package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testContent struct {
	initCalls int
	initFn    func(w *World) error
}

func (tc *testContent) InitializeGame(w *World) error {
	tc.initCalls++
	return tc.initFn(w)
}

func (tc *testContent) PrintWelcome(w *World) error {
	return w.Say("Welcome!")
}

func (tc *testContent) OnCommandFinished(w *World) error {
	return nil
}

func twoRoomInit(w *World) error {
	kitchen := NewRoom("Kitchen", "A kitchen.")
	kitchen.SetExit("north", "Hall")
	if err := kitchen.Add(NewItem("spoon", "A spoon.", 1, true)); err != nil {
		return err
	}
	if err := w.AddRoom(kitchen); err != nil {
		return err
	}
	if err := w.AddRoom(NewRoom("Hall", "A hall.")); err != nil {
		return err
	}
	w.SetPlayer(NewPlayer("Kitchen", "you", "It's you."))
	return nil
}

func newTestWorld(t *testing.T, content Content) (*World, *strings.Builder) {
	out := &strings.Builder{}
	w, err := New(content, IODevice{
		Width: 20,
		Output: func(s string) error {
			out.WriteString(s)
			return nil
		},
	})
	require.NoError(t, err)
	return w, out
}

func Test_New_RequiresOutput(t *testing.T) {
	_, err := New(nil, IODevice{})
	assert.Error(t, err)
}

func Test_World_AddRoom(t *testing.T) {
	assert := assert.New(t)
	w, _ := newTestWorld(t, nil)

	assert.Error(w.AddRoom(nil))
	assert.NoError(w.AddRoom(NewRoom("Kitchen", "first")))

	err := w.AddRoom(NewRoom("Kitchen", "second"))
	assert.Error(err)

	r, ok := w.Room("Kitchen")
	assert.True(ok)
	assert.Equal("first", r.Description())

	w.RemoveRoom("Kitchen")
	_, ok = w.Room("Kitchen")
	assert.False(ok)
}

func Test_World_Reset(t *testing.T) {
	assert := assert.New(t)
	content := &testContent{initFn: twoRoomInit}
	w, _ := newTestWorld(t, content)

	require.NoError(t, w.Reset())
	assert.Equal([]string{"Hall", "Kitchen"}, w.RoomNames())

	// mutate, then reset puts it all back
	cur, err := w.CurrentRoom()
	require.NoError(t, err)
	spoon, _ := cur.Lookup("spoon")
	require.NoError(t, cur.Take(spoon, w.Player()))
	w.SetGameOver(true)

	require.NoError(t, w.Reset())
	assert.Equal(2, content.initCalls)
	assert.False(w.IsGameOver())
	assert.Equal(0, w.Player().Len())
	cur, err = w.CurrentRoom()
	require.NoError(t, err)
	assert.True(cur.Contains("spoon"))
}

func Test_World_Reset_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		initFn func(w *World) error
	}{
		{
			name:   "init fails",
			initFn: func(w *World) error { return errors.New("bad content") },
		},
		{
			name:   "no player",
			initFn: func(w *World) error { return w.AddRoom(NewRoom("Kitchen", "")) },
		},
		{
			name: "player nowhere",
			initFn: func(w *World) error {
				w.SetPlayer(NewPlayer("Nowhere", "you", ""))
				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(t, &testContent{initFn: tc.initFn})
			assert.Error(t, w.Reset())
		})
	}
}

func Test_World_NextRoom(t *testing.T) {
	assert := assert.New(t)
	w, _ := newTestWorld(t, &testContent{initFn: twoRoomInit})
	require.NoError(t, w.Reset())

	cur, err := w.CurrentRoom()
	require.NoError(t, err)

	next, ok := w.NextRoom(cur, "north")
	assert.True(ok)
	assert.Equal("Hall", next.Name())
	assert.Equal("Kitchen", w.Player().CurrentRoom(), "NextRoom must not move the player")

	_, ok = w.NextRoom(cur, "south")
	assert.False(ok)
}

func Test_World_Print_Wraps(t *testing.T) {
	w, out := newTestWorld(t, nil)

	require.NoError(t, w.Say("You see a spoon, a fork and a knife here."))

	assert.Equal(t, "You see a spoon, a\nfork and a knife\nhere.\n\n", out.String())
}
