package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ilyavolkan/tui-fable/internal/ansi"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Preview the color and style engine",
	Long: `Renders the named colors, text effects, and a sample of the 256-color
cube through fable's styling engine. Useful for checking what your
terminal supports and for picking theme values.`,
	Run: runPalette,
}

var paletteColors = []ansi.NamedColor{
	ansi.ColorBlack, ansi.ColorRed, ansi.ColorGreen, ansi.ColorYellow,
	ansi.ColorBlue, ansi.ColorMagenta, ansi.ColorCyan, ansi.ColorWhite,
	ansi.ColorDefault,
}

var paletteEffects = []ansi.Effect{
	ansi.EffectBright, ansi.EffectItalic, ansi.EffectUnderline,
	ansi.EffectBlink, ansi.EffectInverse,
}

func runPalette(cmd *cobra.Command, args []string) {
	if _, err := loadSetup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Named colors:")
	for _, c := range paletteColors {
		fg, err := ansi.Colorize(fmt.Sprintf("%-8s", c), ansi.Foreground, ansi.Named(c))
		if err != nil {
			continue
		}
		bg, err := ansi.Colorize("        ", ansi.Background, ansi.Named(c))
		if err != nil {
			continue
		}
		fmt.Printf("  %s %s\n", fg, bg)
	}

	fmt.Println()
	fmt.Println("Effects:")
	for _, e := range paletteEffects {
		fmt.Printf("  %s\n", ansi.Stylize(fmt.Sprintf("%-10s", e), e))
	}

	fmt.Println()
	fmt.Println("Color cube (hex and rgb inputs):")
	samples := []struct {
		label string
		spec  ansi.ColorSpec
	}{
		{"#FF0000", ansi.Hex("#FF0000")},
		{"#00FF00", ansi.Hex("#00FF00")},
		{"#0000FF", ansi.Hex("#0000FF")},
		{"#875FAF", ansi.Hex("#875FAF")},
		{"255,128,0", ansi.RGB(255, 128, 0)},
		{"64,64,64", ansi.RGB(64, 64, 64)},
	}
	for _, s := range samples {
		styled, err := ansi.Colorize(fmt.Sprintf("%-10s", s.label), ansi.Foreground, s.spec)
		if err != nil {
			continue
		}
		code, _ := ansi.Resolve(ansi.Foreground, s.spec)
		fmt.Printf("  %s  SGR %s\n", styled, code)
	}

	if !ansi.Enabled() {
		fmt.Println()
		fmt.Println("Styling is currently disabled (try --color always).")
	}
}
