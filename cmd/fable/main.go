// fable is a platform for playing text adventures in the terminal.
//
// Usage:
//
//	fable list               - List available stories
//	fable play <story>       - Play a story
//	fable menu               - Interactive story picker
//	fable serve              - Start SSH server for remote play
//	fable saves              - Manage saved games
//	fable stats <story>      - Show completion stats for a story
//	fable palette            - Preview the color and style engine
//
// Global flags:
//
//	--config <path>  - Path to config YAML (default: ~/.fable/config.yaml)
//	--db <path>      - Saves database path (default: ~/.fable/fable.db)
//	--color <mode>   - Styling: auto, always, never (default: from config)
//	--width <cols>   - Wrap width, 0 = detect (default: from config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ilyavolkan/tui-fable/internal/ansi"
	"github.com/ilyavolkan/tui-fable/internal/config"
	"github.com/ilyavolkan/tui-fable/internal/storage"
	"github.com/ilyavolkan/tui-fable/internal/terminal"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagColor  string
	flagWidth  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fable",
	Short: "fable - Text adventures in your terminal",
	Long: `fable is a terminal platform for interactive fiction: short text
adventures you play with look/go/take commands, locally or over SSH.

Available commands:
  list     - Show all available stories
  play     - Play a story directly
  menu     - Interactive story picker
  serve    - Start SSH server for remote play
  saves    - Manage saved games
  stats    - Completion statistics for a story
  palette  - Preview the color and style engine

Examples:
  fable list
  fable play lighthouse
  fable play --file ./my-story.yaml
  fable serve --ssh :2223
  fable stats lighthouse`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to saves database")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "Styling mode: auto, always, never (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Wrap width in columns, 0 = detect (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(paletteCmd)
}

// loadSetup loads the config, applies flag overrides, and sets the global
// styling flag from terminal detection. Every subcommand that produces
// styled output goes through here.
func loadSetup() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagColor != "" {
		if !terminal.ValidMode(flagColor) {
			return config.Config{}, fmt.Errorf("invalid --color %q: use auto, always or never", flagColor)
		}
		cfg.Color = flagColor
	}
	if flagWidth > 0 {
		cfg.Width = flagWidth
	}

	ansi.SetEnabled(terminal.StylingEnabled(cfg.Color, os.Stdout))
	return cfg, nil
}

// outputWidth resolves the wrap width: explicit config wins, otherwise the
// terminal is measured.
func outputWidth(cfg config.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	return terminal.Width(os.Stdout)
}
