package wrap

import (
	"strings"
	"testing"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"\x1b[31mred\x1b[0m", "red"},
		{"\x1b[38;5;196m\x1b[1mhot\x1b[0m", "hot"},
		{"", ""},
		{"a\x1b[4mb\x1b[0mc", "abc"},
	}

	for _, tt := range tests {
		if got := Strip(tt.in); got != tt.want {
			t.Errorf("Strip(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestWidthIgnoresEscapes(t *testing.T) {
	plain := "lantern"
	styled := "\x1b[33m\x1b[1mlantern\x1b[0m"

	if Width(plain) != Width(styled) {
		t.Errorf("Width(%q) = %d, Width(%q) = %d, expected equal", plain, Width(plain), styled, Width(styled))
	}
	if Width(plain) != 7 {
		t.Errorf("Width(%q) = %d, expected 7", plain, Width(plain))
	}
}

func TestWrapBasic(t *testing.T) {
	in := "the quick brown fox jumps over the lazy dog"
	got := Wrap(in, 15)

	for _, line := range strings.Split(got, "\n") {
		if Width(line) > 15 {
			t.Errorf("line %q exceeds width 15", line)
		}
	}
	if strings.ReplaceAll(got, "\n", " ") != in {
		t.Errorf("Wrap changed content: %q", got)
	}
}

func TestWrapPreservesParagraphs(t *testing.T) {
	in := "first paragraph\n\nsecond paragraph"
	got := Wrap(in, 40)
	if got != in {
		t.Errorf("Wrap(%q, 40) = %q, expected unchanged", in, got)
	}
}

func TestWrapStyledWordCountsPrintableWidth(t *testing.T) {
	// A styled word carries ~12 bytes of escapes; wrapping must count 3 cells.
	styled := "\x1b[31mkey\x1b[0m"
	in := "take the " + styled + " now"
	got := Wrap(in, 18)

	if strings.Count(got, "\n") != 0 {
		t.Errorf("Wrap(%q, 18) = %q, expected single line", in, got)
	}
}

func TestWrapLongWord(t *testing.T) {
	got := Wrap("supercalifragilistic word", 10)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("Wrap long word produced %d lines, expected 2: %q", len(lines), got)
	}
	if lines[0] != "supercalifragilistic" {
		t.Errorf("long word should stay intact, got %q", lines[0])
	}
}

func TestWrapDisabled(t *testing.T) {
	in := "anything at all"
	if got := Wrap(in, 0); got != in {
		t.Errorf("Wrap(_, 0) = %q, expected input unchanged", got)
	}
}
