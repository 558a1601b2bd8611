package input

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DirectReader_ReadCommand(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		allowBlank bool
		expect     []string
	}{
		{name: "lines", input: "look\ntake spoon\n", expect: []string{"look", "take spoon"}},
		{name: "trims", input: "  look  \r\n", expect: []string{"look"}},
		{name: "skips blanks", input: "\n   \nlook\n", expect: []string{"look"}},
		{name: "keeps blanks when allowed", input: "\nlook\n", allowBlank: true, expect: []string{"", "look"}},
		{name: "no trailing newline", input: "look\nquit", expect: []string{"look", "quit"}},
		{name: "empty", input: "", expect: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewDirectReader(strings.NewReader(tc.input), nil)
			r.AllowBlank(tc.allowBlank)

			var actual []string
			for {
				line, err := r.ReadCommand()
				if err == io.EOF {
					assert.Empty(t, line)
					break
				}
				require.NoError(t, err)
				actual = append(actual, line)
			}

			assert.Equal(t, tc.expect, actual)

			_, err := r.ReadCommand()
			assert.ErrorIs(t, err, io.EOF, "EOF must repeat")
			assert.NoError(t, r.Close())
		})
	}
}

func Test_DirectReader_Prompt(t *testing.T) {
	prompts := &strings.Builder{}
	r := NewDirectReader(strings.NewReader("look\n"), prompts)

	line, err := r.ReadCommand()
	require.NoError(t, err)
	assert.Equal(t, "look", line)

	r.SetPrompt("? ")
	_, err = r.ReadCommand()
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "> ? ", prompts.String())
}
