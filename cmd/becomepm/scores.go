package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/become-pm/internal/content"
	"github.com/vovakirdan/become-pm/internal/gamedata"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [content]",
	Short: "Show recorded sessions",
	Long: `Display the best recorded sessions, for one content or for all of
them, followed by the saved game record.

Examples:
  becomepm scores
  becomepm scores square
  becomepm scores pulse --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of sessions to show")
}

func runScores(_ *cobra.Command, args []string) {
	contentID := ""
	heading := "All content"
	if len(args) > 0 {
		contentID = args[0]
		if !content.Exists(contentID) {
			fmt.Fprintf(os.Stderr, "Error: unknown content %q\n", contentID)
			fmt.Fprintln(os.Stderr, "Run 'becomepm list' to see registered content.")
			os.Exit(1)
		}
		heading = titleOf(contentID)
	}

	logger := stderrLogger()
	store := openStore(logger)
	defer store.Close()

	sessions, err := store.TopSessions(contentID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		return
	}

	fmt.Printf("Sessions - %s\n", heading)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
	} else {
		fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-9s  %s\n", "Rank", "Content", "Score", "Level", "Played", "Date")
		fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-9s  %s\n", "----", "-------", "-----", "-----", "------", "----")
		for i, s := range sessions {
			fmt.Printf("  %-4d  %-10s  %-8.0f  %-5d  %-9s  %s\n",
				i+1,
				s.ContentID,
				s.Score,
				s.Level,
				s.Duration.Round(time.Second),
				s.CreatedAt.Local().Format("2006-01-02 15:04"),
			)
		}
	}

	// The saved record is shared by every content.
	fmt.Println()
	if data, ok := gamedata.New(store, logger).Load(); ok {
		fmt.Printf("Record: %.0f (last game: score %.0f, level %d)\n", data.HighScore, data.Score, data.Level)
	} else {
		fmt.Println("No saved game data.")
	}
}

// titleOf returns the display title of a registered content.
func titleOf(id string) string {
	for _, c := range content.List() {
		if c.ID == id {
			return c.Title
		}
	}
	return id
}
