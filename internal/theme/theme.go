// Package theme maps classes of game output to colors and effects. Themes
// are loaded from YAML, validated eagerly, and rendered through the ansi
// engine. Color values accept the same three shapes the engine does: a
// named color, a hex string, or an "r,g,b" triplet.
package theme

import (
	"fmt"
	"strings"

	"github.com/ilyavolkan/tui-fable/internal/ansi"
)

// Category identifies a class of game output.
type Category string

const (
	CategoryTitle     Category = "title"
	CategoryRoom      Category = "room"
	CategoryItem      Category = "item"
	CategoryNarration Category = "narration"
	CategorySystem    Category = "system"
	CategoryError     Category = "error"
	CategoryPrompt    Category = "prompt"
	CategoryVictory   Category = "victory"
)

// Style describes how one category is rendered. Empty fields mean "leave
// it alone".
type Style struct {
	Color      string   `yaml:"color,omitempty"`
	Background string   `yaml:"background,omitempty"`
	Effects    []string `yaml:"effects,omitempty"`
}

// Theme maps categories to styles.
type Theme map[Category]Style

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		CategoryTitle:     {Color: "white", Effects: []string{"bright", "underline"}},
		CategoryRoom:      {Color: "cyan", Effects: []string{"bright"}},
		CategoryItem:      {Color: "green"},
		CategoryNarration: {},
		CategorySystem:    {Color: "yellow"},
		CategoryError:     {Color: "red", Effects: []string{"bright"}},
		CategoryPrompt:    {Color: "#875FAF", Effects: []string{"bright"}},
		CategoryVictory:   {Color: "magenta", Effects: []string{"bright"}},
	}
}

// effectNames is the config-side vocabulary for effects. "bold" is accepted
// as an alias for bright.
var effectNames = map[string]ansi.Effect{
	"reset":     ansi.EffectReset,
	"bright":    ansi.EffectBright,
	"bold":      ansi.EffectBright,
	"italic":    ansi.EffectItalic,
	"underline": ansi.EffectUnderline,
	"blink":     ansi.EffectBlink,
	"inverse":   ansi.EffectInverse,
	"hide":      ansi.EffectHide,
}

// ParseEffect validates a user-supplied effect name from a theme file.
func ParseEffect(name string) (ansi.Effect, error) {
	e, ok := effectNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("theme: unknown effect %q", name)
	}
	return e, nil
}

// Validate resolves every style eagerly so that malformed color values in
// a config file surface at load time instead of mid-game.
func (t Theme) Validate() error {
	for cat, st := range t {
		if st.Color != "" {
			if err := checkColor(ansi.Foreground, st.Color); err != nil {
				return fmt.Errorf("theme: %s color: %w", cat, err)
			}
		}
		if st.Background != "" {
			if err := checkColor(ansi.Background, st.Background); err != nil {
				return fmt.Errorf("theme: %s background: %w", cat, err)
			}
		}
		for _, name := range st.Effects {
			if _, err := ParseEffect(name); err != nil {
				return fmt.Errorf("theme: %s: %w", cat, err)
			}
		}
	}
	return nil
}

func checkColor(g ansi.Ground, value string) error {
	spec, err := ansi.ParseSpec(value)
	if err != nil {
		return err
	}
	_, err = ansi.Resolve(g, spec)
	return err
}

// Render styles text for the category. Unknown categories and unresolvable
// values degrade to plain text; Validate is the place that complains.
func (t Theme) Render(cat Category, text string) string {
	st, ok := t[cat]
	if !ok {
		return text
	}

	text = applyColor(text, ansi.Foreground, st.Color)
	text = applyColor(text, ansi.Background, st.Background)
	for _, name := range st.Effects {
		if e, err := ParseEffect(name); err == nil {
			text = ansi.Apply(text, e.Sgr())
		}
	}
	return text
}

func applyColor(text string, g ansi.Ground, value string) string {
	if value == "" {
		return text
	}
	spec, err := ansi.ParseSpec(value)
	if err != nil {
		return text
	}
	styled, err := ansi.Colorize(text, g, spec)
	if err != nil {
		return text
	}
	return styled
}

// Merge overlays non-empty styles from over onto a copy of t. A category
// present in over replaces the base style wholesale.
func (t Theme) Merge(over Theme) Theme {
	merged := make(Theme, len(t)+len(over))
	for cat, st := range t {
		merged[cat] = st
	}
	for cat, st := range over {
		merged[cat] = st
	}
	return merged
}
