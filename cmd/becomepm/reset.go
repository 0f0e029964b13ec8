package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/become-pm/internal/gamedata"
)

var flagResetSessions bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the saved game data",
	Long: `Removes the saved score, level and high score. With --sessions the
recorded session history is cleared as well.

Examples:
  becomepm reset
  becomepm reset --sessions`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetSessions, "sessions", false, "Also clear the session history")
}

func runReset(_ *cobra.Command, _ []string) {
	logger := stderrLogger()
	store := openStore(logger)
	defer store.Close()

	gamedata.New(store, logger).Clear()
	fmt.Println("Saved game data cleared.")

	if flagResetSessions {
		if err := store.ClearSessions(""); err != nil {
			logger.Error("cannot clear sessions", "err", err)
			return
		}
		fmt.Println("Session history cleared.")
	}
}
