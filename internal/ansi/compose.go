package ansi

import (
	"regexp"
	"strings"
)

// sgrGroups matches zero or more complete SGR groups anchored at the very
// start of the string. It always matches, possibly with zero width.
var sgrGroups = regexp.MustCompile(`^(?:\x1b\[[0-9;]*m)*`)

// Apply composes one SGR parameter onto text.
//
// The new escape group is inserted after any escape groups already at the
// front of the string, so repeated application stacks groups in call order
// rather than reordering or merging them. Exactly one trailing Reset is
// guaranteed: one is appended only if the string does not already end with
// it. When styling is disabled Apply returns text unchanged.
//
// An empty input still gets a prefix and a trailing Reset.
func Apply(text string, code SgrCode) string {
	if !Enabled() {
		return text
	}

	end := sgrGroups.FindStringIndex(text)[1]

	var b strings.Builder
	b.Grow(len(text) + len(escPrefix) + len(code) + len(escSuffix) + len(Reset))
	b.WriteString(text[:end])
	b.WriteString(escPrefix)
	b.WriteString(string(code))
	b.WriteString(escSuffix)
	b.WriteString(text[end:])
	if !strings.HasSuffix(text, Reset) {
		b.WriteString(Reset)
	}
	return b.String()
}

// Colorize resolves spec for the given ground and applies it to text.
func Colorize(text string, g Ground, spec ColorSpec) (string, error) {
	code, err := Resolve(g, spec)
	if err != nil {
		return "", err
	}
	return Apply(text, code), nil
}

// Stylize applies one or more effects to text, in argument order.
func Stylize(text string, effects ...Effect) string {
	for _, e := range effects {
		text = Apply(text, e.Sgr())
	}
	return text
}
