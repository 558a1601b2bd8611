package textquest

import (
	"strings"
	"testing"

	"github.com/dekarrin/textquest/internal/tqw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const gardenWorld = `
format = "TQW"
type = "DATA"

[world]
start = "Kitchen"
welcome = "Find the garden."
goal = "Garden"
ending = "You win!"

[[room]]
name = "Kitchen"
description = "A small kitchen."
exits = { north = "Garden" }

  [[room.item]]
  name = "spoon"

[[room]]
name = "Garden"
description = "Green."
exits = { south = "Kitchen" }
`

const banner = "Welcome to TextQuest Engine\n(direct input mode)\n===========================\n\n"

func newTestEngine(t *testing.T, input string, opts Options) (*Engine, *strings.Builder) {
	content, err := tqw.Parse([]byte(gardenWorld))
	require.NoError(t, err)

	out := &strings.Builder{}
	opts.ForceDirect = true
	eng, err := New(strings.NewReader(input), out, content, opts)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, eng.Close())
	})
	return eng, out
}

func Test_Engine_RunUntilQuit_ReachesGoal(t *testing.T) {
	eng, out := newTestEngine(t, "take spoon\n\nxyzzy\nnorth\nlook\n", Options{})

	require.NoError(t, eng.RunUntilQuit())

	expect := banner +
		"Find the garden.\n\n" +
		"Kitchen\nA small kitchen.\nYou see spoon here.\n\nExits: north\n\n" +
		"> Taken.\n\n" +
		"> Please type in a command\n\n" +
		"> I don't know the command 'xyzzy'\n\n" +
		"> Garden\nGreen.\nExits: south\n\n" +
		"You win!\n\n" +
		"Goodbye\n"
	assert.Equal(t, expect, out.String())
	assert.True(t, eng.World().IsGameOver())
	assert.True(t, eng.World().Player().Contains("spoon"))
}

func Test_Engine_RunUntilQuit_EndOfInput(t *testing.T) {
	eng, out := newTestEngine(t, "inventory", Options{})

	require.NoError(t, eng.RunUntilQuit())

	assert.True(t, strings.HasSuffix(out.String(), "> You aren't carrying anything.\n\n> Goodbye\n"))
	assert.False(t, eng.World().IsGameOver())
}

func Test_Engine_RunUntilQuit_Quit(t *testing.T) {
	eng, out := newTestEngine(t, "quit\nlook\n", Options{})

	require.NoError(t, eng.RunUntilQuit())

	assert.True(t, strings.HasSuffix(out.String(), "Exits: north\n\n> Goodbye\n"))
}

func Test_Engine_Width(t *testing.T) {
	eng, out := newTestEngine(t, "", Options{Width: 10})

	require.NoError(t, eng.RunUntilQuit())

	assert.True(t, strings.HasPrefix(out.String(), "Welcome to\nTextQuest\nEngine\n(direct\ninput\nmode)\n"))
	assert.Contains(t, out.String(), "Find the\ngarden.\n\n")
}

func Test_Engine_LogsSession(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	eng, _ := newTestEngine(t, "look\n", Options{Logger: zap.New(core)})

	require.NoError(t, eng.RunUntilQuit())

	ended := logs.FilterMessage("session ended").All()
	require.Len(t, ended, 1)
	fields := ended[0].ContextMap()
	assert.Equal(t, eng.SessionID(), fields["session"])
	assert.EqualValues(t, 1, fields["commands"])
}

func Test_New_RequiresContent(t *testing.T) {
	_, err := New(strings.NewReader(""), &strings.Builder{}, nil, Options{ForceDirect: true})
	assert.Error(t, err)
}
