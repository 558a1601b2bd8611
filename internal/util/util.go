package util

import (
	"sort"
	"strings"
	"unicode"
)

// MakeTextList gives a nice list of things based on their display name. If
// articles is true, each one is prefixed with "a" or "an" as appropriate.
func MakeTextList(items []string, articles bool) string {
	if len(items) < 1 {
		return ""
	}

	words := make([]string, len(items))
	for i, it := range items {
		if articles {
			it = ArticleFor(it) + " " + it
		}
		words[i] = it
	}

	switch len(words) {
	case 1:
		return words[0]
	case 2:
		return words[0] + " and " + words[1]
	}

	// oxford comma for three or more
	last := len(words) - 1
	words[last] = "and " + words[last]
	return strings.Join(words, ", ")
}

// ArticleFor returns "a" or "an" for s, depending on whether s starts with a
// vowel. The article matches the case of s.
func ArticleFor(s string) string {
	r := []rune(s)
	if len(r) < 1 {
		return ""
	}

	art := "a"
	if strings.ContainsRune("AEIOU", unicode.ToUpper(r[0])) {
		art = "an"
	}

	switch {
	case !unicode.IsUpper(r[0]):
		return art
	case len(r) > 1 && unicode.IsUpper(r[1]):
		return strings.ToUpper(art)
	default:
		return strings.ToUpper(art[:1]) + art[1:]
	}
}

// OrderedKeys returns the keys of m in alphabetical order.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
