// Package render lays out text for a fixed-width console.
package render

import "strings"

// DefaultWidth is the column width used when none is configured.
const DefaultWidth = 70

// Wrap breaks text into lines of at most width characters. Existing newlines
// are kept where they are, and a line is only ever broken at a space, which is
// consumed by the break. A single word longer than width is emitted on its own
// line rather than split. No non-space character is ever dropped.
//
// Only a newline that comes before column width is taken as-is. A newline
// sitting exactly at column width is treated like any other character that
// does not fit, so the line is broken at its last space first; the newline is
// still kept.
//
// Widths are counted in runes. If width is less than 1, text is returned
// unchanged.
func Wrap(text string, width int) string {
	if width < 1 {
		return text
	}

	str := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text) + len(text)/width + 1)

	for len(str) >= width {
		// author-intended breaks come first
		lineBreak := indexRune(str, '\n')
		if lineBreak != -1 && lineBreak < width {
			sb.WriteString(string(str[:lineBreak+1]))
			str = str[lineBreak+1:]
			continue
		}

		if len(str) == width {
			// fits exactly
			break
		}

		if str[width] == ' ' {
			sb.WriteString(string(str[:width]))
			str = str[width+1:]
			if len(str) > 0 {
				sb.WriteRune('\n')
			}
			continue
		}

		lastSpace := lastIndexRune(str[:width], ' ')
		if lastSpace != -1 {
			sb.WriteString(string(str[:lastSpace]))
			str = str[lastSpace+1:]
			if len(str) > 0 {
				sb.WriteRune('\n')
			}
			continue
		}

		// one word fills the whole line; it has to go out long.
		next := indexAnyRune(str[width:], ' ', '\n')
		if next == -1 {
			sb.WriteString(string(str))
			str = nil
			break
		}
		next += width

		if str[next] == '\n' {
			sb.WriteString(string(str[:next+1]))
			str = str[next+1:]
			continue
		}

		sb.WriteString(string(str[:next]))
		str = str[next+1:]
		if len(str) > 0 {
			sb.WriteRune('\n')
		}
	}

	if len(str) > 0 {
		sb.WriteString(string(str))
	}

	return sb.String()
}

func indexRune(s []rune, r rune) int {
	for i := range s {
		if s[i] == r {
			return i
		}
	}
	return -1
}

func lastIndexRune(s []rune, r rune) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == r {
			return i
		}
	}
	return -1
}

func indexAnyRune(s []rune, rs ...rune) int {
	for i := range s {
		for _, r := range rs {
			if s[i] == r {
				return i
			}
		}
	}
	return -1
}
