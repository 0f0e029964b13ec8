package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/become-pm/internal/content"
	"github.com/vovakirdan/become-pm/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered content",
	Long: `Shows every content registered with the host, with its recorded
session count and best score when the database is available.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	items := content.List()
	if len(items) == 0 {
		fmt.Println("No content registered.")
		return
	}

	// Stats are optional here; a missing database only hides the columns.
	var stats map[string]*storage.Stats
	if store, err := storage.Open(appCfg.Storage.Path); err == nil {
		stats, err = store.ContentStats()
		if err != nil {
			stderrLogger().Warn("cannot read session stats", "err", err)
		}
		store.Close()
	}

	fmt.Println("Registered content:")
	fmt.Println()

	idW, titleW := len("ID"), len("Title")
	for _, c := range items {
		idW = max(idW, len(c.ID))
		titleW = max(titleW, len(c.Title))
	}

	fmt.Printf("  %-*s  %-*s  %8s  %8s\n", idW, "ID", titleW, "Title", "Sessions", "Best")
	fmt.Printf("  %-*s  %-*s  %8s  %8s\n", idW, "--", titleW, "-----", "--------", "----")
	for _, c := range items {
		sessions, best := "-", "-"
		if s, ok := stats[c.ID]; ok {
			sessions = fmt.Sprintf("%d", s.Sessions)
			best = fmt.Sprintf("%.0f", s.BestScore)
		}
		fmt.Printf("  %-*s  %-*s  %8s  %8s\n", idW, c.ID, titleW, c.Title, sessions, best)
	}

	fmt.Println()
	fmt.Println("Run 'becomepm play <id>' to start with that content selected.")
}
