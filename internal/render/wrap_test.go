package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_Wrap(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		width  int
		expect string
	}{
		{
			name:   "shorter than width",
			input:  "short",
			width:  10,
			expect: "short",
		},
		{
			name:   "exactly width",
			input:  "0123456789",
			width:  10,
			expect: "0123456789",
		},
		{
			name:   "empty",
			input:  "",
			width:  10,
			expect: "",
		},
		{
			name:   "newline before width is kept",
			input:  "one\ntwo three four",
			width:  10,
			expect: "one\ntwo three\nfour",
		},
		{
			name:   "newline exactly at width",
			input:  "0123456789\nabc",
			width:  10,
			expect: "0123456789\nabc",
		},
		{
			name:   "newline at width breaks at the last space first",
			input:  "aaaa bbbbb\ncc",
			width:  10,
			expect: "aaaa\nbbbbb\ncc",
		},
		{
			name:   "space exactly at width",
			input:  "aaaaaaaaaa bbb",
			width:  10,
			expect: "aaaaaaaaaa\nbbb",
		},
		{
			name:   "space exactly at width at end of text",
			input:  "aaaaaaaaaa ",
			width:  10,
			expect: "aaaaaaaaaa",
		},
		{
			name:   "break at last space before width",
			input:  "the quick brown fox",
			width:  10,
			expect: "the quick\nbrown fox",
		},
		{
			name:   "several breaks",
			input:  "You see a spoon, a fork and a knife here.",
			width:  20,
			expect: "You see a spoon, a\nfork and a knife\nhere.",
		},
		{
			name:   "long word then space",
			input:  "abcdefghijklmn op",
			width:  10,
			expect: "abcdefghijklmn\nop",
		},
		{
			name:   "long word then newline",
			input:  "abcdefghijklmn\nop qr",
			width:  10,
			expect: "abcdefghijklmn\nop qr",
		},
		{
			name:   "unbreakable run",
			input:  "abcdefghijklmnop",
			width:  10,
			expect: "abcdefghijklmnop",
		},
		{
			name:   "multibyte runes count once",
			input:  "héllo wörld ñandú",
			width:  6,
			expect: "héllo\nwörld\nñandú",
		},
		{
			name:   "room description keeps paragraph breaks",
			input:  "Kitchen\nA small kitchen.\nYou see spoon here.\n\nExits: north\n\n",
			width:  70,
			expect: "Kitchen\nA small kitchen.\nYou see spoon here.\n\nExits: north\n\n",
		},
		{
			name:   "zero width is a no-op",
			input:  "the quick brown fox",
			width:  0,
			expect: "the quick brown fox",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := Wrap(tc.input, tc.width)

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Wrap_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.StringOf(rapid.SampledFrom([]rune("ab c\n"))).Draw(t, "input")
		width := rapid.IntRange(1, 30).Draw(t, "width")

		output := Wrap(input, width)

		// every separator the wrap introduced replaced exactly one space; at
		// most one trailing space may be consumed without a break.
		normIn := strings.ReplaceAll(input, "\n", " ")
		normOut := strings.ReplaceAll(output, "\n", " ")
		if normOut != normIn && normOut+" " != normIn {
			t.Fatalf("characters lost: input %q, output %q", input, output)
		}

		if strings.Count(output, "\n") < strings.Count(input, "\n") {
			t.Fatalf("newline dropped: input %q, output %q", input, output)
		}

		for _, line := range strings.Split(output, "\n") {
			if utf8.RuneCountInString(line) > width && strings.Contains(line, " ") {
				t.Fatalf("line %q exceeds width %d", line, width)
			}
		}
	})
}
