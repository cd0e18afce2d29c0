package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ilyavolkan/tui-fable/internal/story"
)

var statsCmd = &cobra.Command{
	Use:   "stats <story>",
	Short: "Show completion statistics for a story",
	Args:  cobra.ExactArgs(1),
	Run:   runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	storyID := args[0]
	if !story.Exists(storyID) {
		fmt.Fprintf(os.Stderr, "Error: unknown story %q\n", storyID)
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	stats, err := store.GetCompletionStats(storyID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if stats.Count == 0 {
		fmt.Printf("No completions recorded for %q yet.\n", storyID)
		return
	}

	fmt.Printf("Story:        %s\n", storyID)
	fmt.Printf("Completions:  %d\n", stats.Count)
	fmt.Printf("Best:         %d moves\n", stats.BestMoves)
	fmt.Printf("Average:      %.1f moves\n", stats.AvgMoves)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
