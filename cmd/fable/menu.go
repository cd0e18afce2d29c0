package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ilyavolkan/tui-fable/internal/platform/console"
	"github.com/ilyavolkan/tui-fable/internal/story"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a story interactively",
	Long:  `Opens an interactive picker listing all available stories, then plays the selected one.`,
	Run:   runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	id, err := console.RunMenu(story.List())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if id == "" {
		// User backed out.
		return
	}

	runPlay(cmd, []string{id})
}
