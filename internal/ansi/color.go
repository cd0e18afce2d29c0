package ansi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Ground selects whether a color applies to the text itself or to the cell
// behind it. It determines the numeric base of the emitted SGR parameter.
type Ground int

const (
	Foreground Ground = iota
	Background
)

// namedOffset is the SGR base for the simple named colors (30-39 / 40-49).
func (g Ground) namedOffset() int {
	if g == Background {
		return 40
	}
	return 30
}

// extendedCode introduces a 256-color parameter (38;5;n / 48;5;n).
func (g Ground) extendedCode() int {
	if g == Background {
		return 48
	}
	return 38
}

// NamedColor is one of the eight base terminal colors plus the terminal's
// configured default.
type NamedColor int

const (
	ColorBlack NamedColor = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorDefault
)

var colorNames = map[string]NamedColor{
	"black":   ColorBlack,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"default": ColorDefault,
}

// index is the SGR color index. The default color sits at 9, one past the
// eight base colors (8 is the extended-color introducer).
func (c NamedColor) index() int {
	if c == ColorDefault {
		return 9
	}
	return int(c)
}

// String returns the lowercase color name.
func (c NamedColor) String() string {
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return "unknown"
}

// Errors reported for malformed caller-supplied color specs. All are
// deterministic: the same input always fails the same way.
var (
	ErrInvalidColorName = errors.New("ansi: unknown color name")
	ErrInvalidRgbRange  = errors.New("ansi: rgb channel outside [0,255]")
	ErrInvalidArity     = errors.New("ansi: rgb spec needs exactly 3 components")
	ErrInvalidHexFormat = errors.New("ansi: malformed hex color")
)

// ParseNamed validates a user-supplied color name.
func ParseNamed(name string) (NamedColor, error) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorName, name)
	}
	return c, nil
}

type specKind int

const (
	kindInvalid specKind = iota
	kindNamed
	kindHex
	kindRGB
)

// ColorSpec is a tagged union of the three supported color inputs: a named
// terminal color, a 6-digit hex string, or an RGB triplet. Exactly one
// variant is populated; construct values with Named, Hex or RGB. The zero
// value is invalid and fails Resolve.
type ColorSpec struct {
	kind    specKind
	name    NamedColor
	hex     string
	r, g, b int
}

// Named builds a spec for one of the fixed terminal colors.
func Named(c NamedColor) ColorSpec {
	return ColorSpec{kind: kindNamed, name: c}
}

// Hex builds a spec from a 6-hex-digit string, with or without a leading
// '#'. The string is validated at Resolve time.
func Hex(s string) ColorSpec {
	return ColorSpec{kind: kindHex, hex: s}
}

// RGB builds a spec from an 8-bit triplet. Range is validated at Resolve
// time.
func RGB(r, g, b int) ColorSpec {
	return ColorSpec{kind: kindRGB, r: r, g: g, b: b}
}

// ParseSpec classifies a user-supplied string into one of the three spec
// variants. Comma-separated input is treated as an RGB triplet, a known
// color name as a named color, and anything hex-shaped as a hex color.
// Name lookup wins over hex so that e.g. "default" is never read as digits.
func ParseSpec(s string) (ColorSpec, error) {
	s = strings.TrimSpace(s)

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return ColorSpec{}, fmt.Errorf("%w: got %d", ErrInvalidArity, len(parts))
		}
		var vals [3]int
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return ColorSpec{}, fmt.Errorf("ansi: rgb component %q is not a number: %w", p, ErrInvalidArity)
			}
			vals[i] = v
		}
		return RGB(vals[0], vals[1], vals[2]), nil
	}

	if c, ok := colorNames[strings.ToLower(s)]; ok {
		return Named(c), nil
	}

	if strings.HasPrefix(s, "#") || isHexDigits(s) {
		return Hex(s), nil
	}

	return ColorSpec{}, fmt.Errorf("%w: %q", ErrInvalidColorName, s)
}

func isHexDigits(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// cubeIndex maps an 8-bit channel value onto the 6-level cube axis.
// 255 lands in bucket 5 because 6*255/256 truncates; the division must
// stay integer floor division.
func cubeIndex(v int) int {
	return 6 * v / 256
}

// CubeIndex returns the 256-color palette index (16-231) for the RGB
// triplet, quantizing each channel to the standard 6x6x6 terminal cube.
// Inputs must already be range-checked.
func CubeIndex(r, g, b int) int {
	return 16 + 36*cubeIndex(r) + 6*cubeIndex(g) + cubeIndex(b)
}

// SgrCode is the parameter payload emitted inside an escape sequence:
// a single decimal for named colors and effects, or a "<ground>;5;<index>"
// triple for cube colors.
type SgrCode string

// Resolve converts a color spec into the SGR parameter for the given
// ground. Validation happens here, before any code is emitted; nothing is
// clamped or silently defaulted.
func Resolve(g Ground, spec ColorSpec) (SgrCode, error) {
	switch spec.kind {
	case kindNamed:
		return SgrCode(strconv.Itoa(g.namedOffset() + spec.name.index())), nil
	case kindHex:
		r, gr, b, err := parseHex(spec.hex)
		if err != nil {
			return "", err
		}
		return resolveRGB(g, r, gr, b)
	case kindRGB:
		return resolveRGB(g, spec.r, spec.g, spec.b)
	default:
		return "", fmt.Errorf("%w: empty spec", ErrInvalidColorName)
	}
}

func resolveRGB(g Ground, r, gr, b int) (SgrCode, error) {
	// Range is checked across the whole triplet at once.
	if min(r, gr, b) < 0 || max(r, gr, b) > 255 {
		return "", fmt.Errorf("%w: (%d,%d,%d)", ErrInvalidRgbRange, r, gr, b)
	}
	return SgrCode(fmt.Sprintf("%d;5;%d", g.extendedCode(), CubeIndex(r, gr, b))), nil
}

func parseHex(s string) (int, int, int, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHexFormat, s)
	}
	var ch [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHexFormat, s)
		}
		ch[i] = int(v)
	}
	return ch[0], ch[1], ch[2], nil
}
