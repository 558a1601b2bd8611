package command

import (
	"strings"

	"golang.org/x/text/cases"
)

var (
	// DirectionAliases maps shorthand direction words to their full forms.
	DirectionAliases = map[string]string{
		"n": "north",
		"s": "south",
		"e": "east",
		"w": "west",
		"u": "up",
		"d": "down",
	}
)

// Tokenize splits a line of input on whitespace, collapsing runs of it. The
// first token is returned as the command word and the rest as params. Case is
// left as typed. If the line is blank, word is empty.
func Tokenize(line string) (word string, params []string) {
	tokens := strings.Fields(line)
	if len(tokens) < 1 {
		return "", nil
	}
	return tokens[0], tokens[1:]
}

// foldWord normalizes a word for case-insensitive matching. Every
// case-insensitive comparison of player input goes through it.
func foldWord(word string) string {
	return cases.Fold().String(word)
}

// expandDirection returns the full form of a direction, or dir itself if it is
// not an alias. Directions are matched case-insensitively.
func expandDirection(dir string) string {
	folded := foldWord(dir)
	if full, ok := DirectionAliases[folded]; ok {
		return full
	}
	return folded
}

// stripLeading removes the first token of params if it is one of the given
// filler words, so "look at box" and "look box" are the same.
func stripLeading(params []string, fillers ...string) []string {
	if len(params) < 1 {
		return params
	}
	first := foldWord(params[0])
	for _, f := range fillers {
		if first == foldWord(f) {
			return params[1:]
		}
	}
	return params
}
