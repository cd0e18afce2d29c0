package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ilyavolkan/tui-fable/internal/story"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available stories",
	Long:  `Shows a list of all stories built into fable.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	stories := story.List()

	if len(stories) == 0 {
		fmt.Println("No stories available.")
		return
	}

	fmt.Println("Available stories:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range stories {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %-28s %s\n", maxIDLen, "ID", "Title", "Rooms")
	fmt.Printf("  %-*s  %-28s %s\n", maxIDLen, "--", "-----", "-----")

	for _, s := range stories {
		fmt.Printf("  %-*s  %-28s %d\n", maxIDLen, s.ID, s.Title, s.Rooms)
	}

	fmt.Println()
	fmt.Println("Run 'fable play <id>' to start a story.")
}
