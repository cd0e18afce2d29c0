package theme

import (
	"strings"
	"testing"

	"github.com/ilyavolkan/tui-fable/internal/ansi"
)

func withStyling(t *testing.T, on bool) {
	t.Helper()
	prev := ansi.Enabled()
	ansi.SetEnabled(on)
	t.Cleanup(func() { ansi.SetEnabled(prev) })
}

func TestDefaultThemeValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default theme should validate, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		theme Theme
	}{
		{"bad color name", Theme{CategoryRoom: {Color: "ultraviolet"}}},
		{"bad hex", Theme{CategoryRoom: {Color: "#12"}}},
		{"rgb out of range", Theme{CategoryRoom: {Color: "300,0,0"}}},
		{"rgb wrong arity", Theme{CategoryRoom: {Color: "1,2"}}},
		{"bad background", Theme{CategoryRoom: {Background: "nope"}}},
		{"bad effect", Theme{CategoryRoom: {Effects: []string{"sparkle"}}}},
	}

	for _, tt := range tests {
		if err := tt.theme.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, expected error", tt.name)
		}
	}
}

func TestRenderAppliesColorAndEffects(t *testing.T) {
	withStyling(t, true)

	th := Theme{CategoryError: {Color: "red", Effects: []string{"bright"}}}
	got := th.Render(CategoryError, "ouch")

	want := "\x1b[31m\x1b[1mouch\x1b[0m"
	if got != want {
		t.Errorf("Render = %q, expected %q", got, want)
	}
}

func TestRenderBackground(t *testing.T) {
	withStyling(t, true)

	th := Theme{CategorySystem: {Color: "white", Background: "blue"}}
	got := th.Render(CategorySystem, "hint")

	if !strings.HasPrefix(got, "\x1b[37m\x1b[44m") {
		t.Errorf("Render = %q, expected foreground then background prefix", got)
	}
	if strings.Count(got, ansi.Reset) != 1 {
		t.Errorf("Render = %q, expected exactly one reset", got)
	}
}

func TestRenderUnknownCategoryIsPlain(t *testing.T) {
	withStyling(t, true)

	th := Default()
	if got := th.Render(Category("nonsense"), "text"); got != "text" {
		t.Errorf("Render unknown category = %q, expected plain text", got)
	}
}

func TestRenderDisabledStyling(t *testing.T) {
	withStyling(t, false)

	th := Default()
	if got := th.Render(CategoryRoom, "The Lantern Room"); got != "The Lantern Room" {
		t.Errorf("Render with styling disabled = %q, expected plain text", got)
	}
}

func TestMerge(t *testing.T) {
	base := Default()
	over := Theme{CategoryRoom: {Color: "blue"}}

	merged := base.Merge(over)
	if merged[CategoryRoom].Color != "blue" {
		t.Errorf("merged room color = %q, expected override", merged[CategoryRoom].Color)
	}
	if merged[CategoryError].Color != base[CategoryError].Color {
		t.Error("merge should keep base styles for untouched categories")
	}
	if base[CategoryRoom].Color == "blue" {
		t.Error("merge must not mutate the base theme")
	}
}

func TestParseEffectAlias(t *testing.T) {
	e, err := ParseEffect("Bold")
	if err != nil {
		t.Fatalf("ParseEffect error: %v", err)
	}
	if e != ansi.EffectBright {
		t.Errorf("ParseEffect(\"Bold\") = %v, expected EffectBright", e)
	}
}
