// Package wrap provides ANSI-aware text helpers for the game renderer.
// Widths are measured on the printable text so SGR escape sequences never
// distort line lengths.
package wrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Strip removes all ESC[...m sequences from s.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			if j < len(s) {
				i = j + 1
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// Width returns the printable cell width of s, ignoring escape sequences.
func Width(s string) int {
	return runewidth.StringWidth(Strip(s))
}

// Wrap greedily word-wraps s to the given width. Existing newlines are
// kept as paragraph breaks. Words longer than the width are emitted on
// their own line rather than split. A width of zero or less disables
// wrapping.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}

	paragraphs := strings.Split(s, "\n")
	out := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, p)
			continue
		}

		var lines []string
		line := words[0]
		used := Width(line)
		for _, w := range words[1:] {
			ww := Width(w)
			if used+1+ww > width {
				lines = append(lines, line)
				line = w
				used = ww
				continue
			}
			line += " " + w
			used += 1 + ww
		}
		lines = append(lines, line)
		out = append(out, strings.Join(lines, "\n"))
	}

	return strings.Join(out, "\n")
}
