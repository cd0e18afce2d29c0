package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ilyavolkan/tui-fable/internal/storage"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List saved games",
	Long: `Lists all saved games in the database. Use 'saves delete <slot>' to
remove one.`,
	Run: runSavesList,
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete a saved game",
	Args:  cobra.ExactArgs(1),
	Run:   runSavesDelete,
}

func init() {
	savesCmd.AddCommand(savesDeleteCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open saves database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runSavesList(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	entries, err := store.ListSaves()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No saved games.")
		return
	}

	fmt.Printf("  %-12s %-14s %-6s %s\n", "Slot", "Story", "Moves", "Saved")
	fmt.Printf("  %-12s %-14s %-6s %s\n", "----", "-----", "-----", "-----")
	for _, e := range entries {
		when := ""
		if !e.CreatedAt.IsZero() {
			when = e.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-12s %-14s %-6d %s\n", e.Slot, e.StoryID, e.Moves, when)
	}
}

func runSavesDelete(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if err := store.DeleteSave(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted slot %q.\n", args[0])
}
