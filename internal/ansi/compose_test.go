package ansi

import (
	"strings"
	"testing"
)

// withStyling forces the global flag for the duration of a test.
func withStyling(t *testing.T, on bool) {
	t.Helper()
	prev := Enabled()
	SetEnabled(on)
	t.Cleanup(func() { SetEnabled(prev) })
}

func TestApplyBasic(t *testing.T) {
	withStyling(t, true)

	got := Apply("hi", "31")
	want := "\x1b[31mhi\x1b[0m"
	if got != want {
		t.Errorf("Apply(\"hi\", \"31\") = %q, expected %q", got, want)
	}
}

func TestApplyDisabledIsIdentity(t *testing.T) {
	withStyling(t, false)

	for _, s := range []string{"", "hi", "\x1b[31mhi\x1b[0m"} {
		if got := Apply(s, "31"); got != s {
			t.Errorf("Apply(%q) with styling disabled = %q, expected input unchanged", s, got)
		}
	}
}

func TestApplyEmptyString(t *testing.T) {
	withStyling(t, true)

	got := Apply("", "32")
	want := "\x1b[32m\x1b[0m"
	if got != want {
		t.Errorf("Apply(\"\", \"32\") = %q, expected %q", got, want)
	}
}

func TestApplyStacksPrefixGroups(t *testing.T) {
	withStyling(t, true)

	got := Apply(Apply("hi", "31"), "1")
	want := "\x1b[31m\x1b[1mhi\x1b[0m"
	if got != want {
		t.Errorf("stacked Apply = %q, expected %q", got, want)
	}

	// New groups always land after the existing prefix, never before it.
	third := Apply(got, "4")
	if !strings.HasPrefix(third, "\x1b[31m\x1b[1m\x1b[4m") {
		t.Errorf("third Apply = %q, expected prefix order 31,1,4", third)
	}
}

func TestApplyResetIsIdempotent(t *testing.T) {
	withStyling(t, true)

	styled := Apply("hi", "31")
	for i := 0; i < 3; i++ {
		styled = Apply(styled, "1")
	}

	if n := strings.Count(styled, Reset); n != 1 {
		t.Errorf("repeated Apply produced %d trailing resets, expected 1: %q", n, styled)
	}
	if !strings.HasSuffix(styled, Reset) {
		t.Errorf("styled string %q does not end with reset", styled)
	}
}

func TestApplyMidStringEscapesLeftAlone(t *testing.T) {
	withStyling(t, true)

	// Escapes not at the start are content, not prefix; the new group still
	// goes to the front.
	in := "a\x1b[31mb"
	got := Apply(in, "4")
	want := "\x1b[4ma\x1b[31mb\x1b[0m"
	if got != want {
		t.Errorf("Apply(%q, \"4\") = %q, expected %q", in, got, want)
	}
}

func TestColorize(t *testing.T) {
	withStyling(t, true)

	got, err := Colorize("alert", Foreground, Named(ColorRed))
	if err != nil {
		t.Fatalf("Colorize error: %v", err)
	}
	want := "\x1b[31malert\x1b[0m"
	if got != want {
		t.Errorf("Colorize = %q, expected %q", got, want)
	}

	if _, err := Colorize("x", Foreground, RGB(999, 0, 0)); err == nil {
		t.Error("Colorize with out-of-range RGB should fail")
	}
}

func TestStylize(t *testing.T) {
	withStyling(t, true)

	got := Stylize("hi", EffectBright, EffectUnderline)
	want := "\x1b[1m\x1b[4mhi\x1b[0m"
	if got != want {
		t.Errorf("Stylize = %q, expected %q", got, want)
	}
}

func TestApplyDeterministic(t *testing.T) {
	withStyling(t, true)

	a := Apply("same input", "38;5;100")
	b := Apply("same input", "38;5;100")
	if a != b {
		t.Errorf("Apply is not deterministic: %q vs %q", a, b)
	}
}
