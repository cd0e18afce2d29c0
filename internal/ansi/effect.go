package ansi

import "strconv"

// Effect is a named text attribute. The set is closed: a valid Effect value
// always has a code, so lookup cannot fail at runtime. String-to-effect
// parsing for config files lives at the config boundary, not here.
type Effect int

const (
	EffectReset Effect = iota
	EffectBright
	EffectItalic
	EffectUnderline
	EffectBlink
	EffectInverse
	EffectHide
)

// effectCodes maps each effect to its fixed SGR parameter. Note the gap:
// there is no effect at SGR 2 or 6.
var effectCodes = [...]int{0, 1, 3, 4, 5, 7, 8}

// Code returns the SGR parameter for the effect.
func (e Effect) Code() int {
	return effectCodes[e]
}

// Sgr returns the effect's parameter in SgrCode form for Apply.
func (e Effect) Sgr() SgrCode {
	return SgrCode(strconv.Itoa(e.Code()))
}

// String returns a human-readable name for the effect.
func (e Effect) String() string {
	switch e {
	case EffectReset:
		return "reset"
	case EffectBright:
		return "bright"
	case EffectItalic:
		return "italic"
	case EffectUnderline:
		return "underline"
	case EffectBlink:
		return "blink"
	case EffectInverse:
		return "inverse"
	case EffectHide:
		return "hide"
	default:
		return "unknown"
	}
}
