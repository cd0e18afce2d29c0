package ansi

import (
	"errors"
	"testing"
)

func TestCubeIndexChannel(t *testing.T) {
	if cubeIndex(0) != 0 {
		t.Errorf("cubeIndex(0) = %d, expected 0", cubeIndex(0))
	}
	if cubeIndex(255) != 5 {
		t.Errorf("cubeIndex(255) = %d, expected 5", cubeIndex(255))
	}

	// Monotonic non-decreasing over the full channel range, always in [0,5].
	prev := 0
	for v := 0; v <= 255; v++ {
		got := cubeIndex(v)
		if got < 0 || got > 5 {
			t.Fatalf("cubeIndex(%d) = %d, out of [0,5]", v, got)
		}
		if got < prev {
			t.Fatalf("cubeIndex(%d) = %d, decreased from %d", v, got, prev)
		}
		prev = got
	}
}

func TestCubeIndexCorners(t *testing.T) {
	if got := CubeIndex(0, 0, 0); got != 16 {
		t.Errorf("CubeIndex(0,0,0) = %d, expected 16", got)
	}
	if got := CubeIndex(255, 255, 255); got != 231 {
		t.Errorf("CubeIndex(255,255,255) = %d, expected 231", got)
	}
}

func TestResolveNamed(t *testing.T) {
	tests := []struct {
		ground Ground
		color  NamedColor
		want   SgrCode
	}{
		{Foreground, ColorBlack, "30"},
		{Foreground, ColorRed, "31"},
		{Background, ColorRed, "41"},
		{Foreground, ColorWhite, "37"},
		{Background, ColorWhite, "47"},
		{Foreground, ColorDefault, "39"},
		{Background, ColorDefault, "49"},
	}

	for _, tt := range tests {
		got, err := Resolve(tt.ground, Named(tt.color))
		if err != nil {
			t.Errorf("Resolve(%v, %v) error: %v", tt.ground, tt.color, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%v, %v) = %q, expected %q", tt.ground, tt.color, got, tt.want)
		}
	}
}

func TestResolveHexMatchesRGB(t *testing.T) {
	for _, hex := range []string{"#FF0000", "FF0000", "#00ff00", "8b5cf6"} {
		specHex := Hex(hex)
		r, g, b, err := parseHex(hex)
		if err != nil {
			t.Fatalf("parseHex(%q) error: %v", hex, err)
		}

		for _, ground := range []Ground{Foreground, Background} {
			fromHex, err := Resolve(ground, specHex)
			if err != nil {
				t.Fatalf("Resolve hex %q error: %v", hex, err)
			}
			fromRGB, err := Resolve(ground, RGB(r, g, b))
			if err != nil {
				t.Fatalf("Resolve rgb for %q error: %v", hex, err)
			}
			if fromHex != fromRGB {
				t.Errorf("hex %q: Resolve = %q via hex, %q via rgb", hex, fromHex, fromRGB)
			}
		}
	}
}

func TestResolveRGBCode(t *testing.T) {
	got, err := Resolve(Foreground, RGB(255, 0, 0))
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got != "38;5;196" {
		t.Errorf("Resolve(Foreground, RGB(255,0,0)) = %q, expected \"38;5;196\"", got)
	}

	got, err = Resolve(Background, RGB(255, 0, 0))
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got != "48;5;196" {
		t.Errorf("Resolve(Background, RGB(255,0,0)) = %q, expected \"48;5;196\"", got)
	}
}

func TestResolveRGBRange(t *testing.T) {
	tests := []struct{ r, g, b int }{
		{256, 0, 0},
		{-1, 0, 0},
		{0, 300, 0},
		{0, 0, -5},
	}

	for _, tt := range tests {
		_, err := Resolve(Foreground, RGB(tt.r, tt.g, tt.b))
		if !errors.Is(err, ErrInvalidRgbRange) {
			t.Errorf("Resolve(RGB(%d,%d,%d)) error = %v, expected ErrInvalidRgbRange", tt.r, tt.g, tt.b, err)
		}
	}
}

func TestResolveBadHex(t *testing.T) {
	for _, hex := range []string{"", "#FFF", "GG0000", "#12345", "#1234567"} {
		_, err := Resolve(Foreground, Hex(hex))
		if !errors.Is(err, ErrInvalidHexFormat) {
			t.Errorf("Resolve(Hex(%q)) error = %v, expected ErrInvalidHexFormat", hex, err)
		}
	}
}

func TestResolveZeroSpec(t *testing.T) {
	if _, err := Resolve(Foreground, ColorSpec{}); err == nil {
		t.Error("Resolve of zero-value spec should fail")
	}
}

func TestParseNamed(t *testing.T) {
	c, err := ParseNamed("Magenta")
	if err != nil {
		t.Fatalf("ParseNamed error: %v", err)
	}
	if c != ColorMagenta {
		t.Errorf("ParseNamed(\"Magenta\") = %v, expected ColorMagenta", c)
	}

	if _, err := ParseNamed("chartreuse"); !errors.Is(err, ErrInvalidColorName) {
		t.Errorf("ParseNamed(\"chartreuse\") error = %v, expected ErrInvalidColorName", err)
	}
}

func TestParseSpec(t *testing.T) {
	tests := []struct {
		in     string
		ground Ground
		want   SgrCode
	}{
		{"red", Foreground, "31"},
		{"default", Background, "49"},
		{"#FF0000", Foreground, "38;5;196"},
		{"FF0000", Foreground, "38;5;196"},
		{"255, 0, 0", Foreground, "38;5;196"},
		{"0,0,0", Foreground, "38;5;16"},
	}

	for _, tt := range tests {
		spec, err := ParseSpec(tt.in)
		if err != nil {
			t.Errorf("ParseSpec(%q) error: %v", tt.in, err)
			continue
		}
		got, err := Resolve(tt.ground, spec)
		if err != nil {
			t.Errorf("Resolve(ParseSpec(%q)) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSpec(%q) resolved to %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestParseSpecErrors(t *testing.T) {
	if _, err := ParseSpec("1,2"); !errors.Is(err, ErrInvalidArity) {
		t.Errorf("ParseSpec(\"1,2\") error = %v, expected ErrInvalidArity", err)
	}
	if _, err := ParseSpec("1,2,3,4"); !errors.Is(err, ErrInvalidArity) {
		t.Errorf("ParseSpec(\"1,2,3,4\") error = %v, expected ErrInvalidArity", err)
	}
	if _, err := ParseSpec("1,two,3"); !errors.Is(err, ErrInvalidArity) {
		t.Errorf("ParseSpec(\"1,two,3\") error = %v, expected ErrInvalidArity", err)
	}
	if _, err := ParseSpec("not-a-color"); !errors.Is(err, ErrInvalidColorName) {
		t.Errorf("ParseSpec(\"not-a-color\") error = %v, expected ErrInvalidColorName", err)
	}
}

func TestEffectCodes(t *testing.T) {
	tests := []struct {
		effect Effect
		want   int
	}{
		{EffectReset, 0},
		{EffectBright, 1},
		{EffectItalic, 3},
		{EffectUnderline, 4},
		{EffectBlink, 5},
		{EffectInverse, 7},
		{EffectHide, 8},
	}

	for _, tt := range tests {
		if got := tt.effect.Code(); got != tt.want {
			t.Errorf("%v.Code() = %d, expected %d", tt.effect, got, tt.want)
		}
	}
}
