package command

import (
	"strings"
	"testing"

	"github.com/dekarrin/textquest/internal/game"
	"pgregory.net/rapid"
)

func countDeep(h game.Holder, seen map[string]int) {
	for _, e := range h.Items() {
		seen[e.Name()]++
		if inner, ok := game.AsHolder(e); ok {
			countDeep(inner, seen)
		}
	}
}

func worldCounts(w *game.World) map[string]int {
	seen := map[string]int{}
	for _, name := range w.RoomNames() {
		room, _ := w.Room(name)
		countDeep(room, seen)
	}
	countDeep(w.Player(), seen)
	return seen
}

func Test_AnyCommandSequence_KeepsEveryItemInOnePlace(t *testing.T) {
	verbs := []string{"take", "put", "drop", "open", "close", "go", "lock", "unlock", "examine", "xyzzy"}
	nouns := []string{"spoon", "box", "table", "crate", "apple", "key", "north", "south", "east", "west", "in", "from", "with"}

	rapid.Check(t, func(t *rapid.T) {
		out := &strings.Builder{}
		w, err := game.New(testContent{init: kitchenWorld}, game.IODevice{
			Width:  200,
			Output: func(s string) error { out.WriteString(s); return nil },
		})
		if err != nil {
			t.Fatal(err)
		}
		if err := w.Reset(); err != nil {
			t.Fatal(err)
		}
		r := DefaultRegistry(nil)

		lines := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) string {
			tokens := []string{rapid.SampledFrom(verbs).Draw(t, "verb")}
			tokens = append(tokens, rapid.SliceOfN(rapid.SampledFrom(nouns), 0, 3).Draw(t, "args")...)
			return strings.Join(tokens, " ")
		}), 1, 30).Draw(t, "lines")

		for _, line := range lines {
			if err := r.Dispatch(line, w); err != nil {
				t.Fatalf("%q: unexpected error: %v", line, err)
			}

			for name, count := range worldCounts(w) {
				if count != 1 {
					t.Fatalf("after %q: %s is in %d places", line, name, count)
				}
			}
			if n := len(worldCounts(w)); n != 6 {
				t.Fatalf("after %q: %d distinct items, want 6", line, n)
			}
		}
	})
}
