package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ilyavolkan/tui-fable/internal/platform/console"
	"github.com/ilyavolkan/tui-fable/internal/storage"
	"github.com/ilyavolkan/tui-fable/internal/story"
)

var flagStoryFile string

var playCmd = &cobra.Command{
	Use:   "play [story]",
	Short: "Play a story",
	Long: `Start playing the named story, or a story file given with --file.

In-game commands:
  look, go <direction>, take <item>, drop <item>, inventory
  save [slot], restore [slot], saves
  help, quit

Examples:
  fable play lighthouse
  fable play hollow --color never
  fable play --file ./my-story.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagStoryFile, "file", "", "Play a story YAML file from disk")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var st *story.Story
	switch {
	case flagStoryFile != "":
		st, err = story.Load(flagStoryFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case len(args) == 1:
		if !story.Exists(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown story %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'fable list' to see available stories.")
			os.Exit(1)
		}
		st, _ = story.Get(args[0])
	default:
		fmt.Fprintln(os.Stderr, "Error: name a story or pass --file.")
		fmt.Fprintln(os.Stderr, "Run 'fable list' to see available stories.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open saves database: %v\n", err)
		// Continue without storage - play still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	sess, err := console.NewSession(console.SessionConfig{
		Story:        st,
		Theme:        cfg.EffectiveTheme(),
		PromptFormat: cfg.Prompt,
		Width:        outputWidth(cfg),
		Store:        store,
	}, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := sess.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		os.Exit(1)
	}
}
