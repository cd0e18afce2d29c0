// Package prompt renders the customizable input prompt. The format string
// uses %-tokens expanded each turn; styling is the theme's business, this
// package only produces text.
package prompt

import (
	"strconv"
	"strings"
)

// DefaultFormat is used when the config does not set one.
const DefaultFormat = "[%r] > "

// Info carries the per-turn values the tokens expand to.
type Info struct {
	Room  string // %r - current room title
	Moves int    // %m - successful moves so far
	Items int    // %i - items carried
}

// Render expands the %-tokens in format. Unknown tokens are kept verbatim
// so a typo is visible instead of silently vanishing. %% yields a literal
// percent sign.
func Render(format string, info Info) string {
	var b strings.Builder
	b.Grow(len(format) + len(info.Room))

	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			b.WriteByte(format[i])
			continue
		}
		i++
		switch format[i] {
		case 'r':
			b.WriteString(info.Room)
		case 'm':
			b.WriteString(strconv.Itoa(info.Moves))
		case 'i':
			b.WriteString(strconv.Itoa(info.Items))
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(format[i])
		}
	}
	return b.String()
}
