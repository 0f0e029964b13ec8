package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/become-pm/internal/content"
	"github.com/vovakirdan/become-pm/internal/logging"
	"github.com/vovakirdan/become-pm/internal/platform/tui"
	"github.com/vovakirdan/become-pm/internal/storage"
)

var flagMono bool

var playCmd = &cobra.Command{
	Use:   "play [content]",
	Short: "Open the menu and play",
	Long: `Open the title menu. The given content, or the one named in the
config, is preselected.

Controls:
  Up/Down/j/k  - Pick content
  Enter/Space  - Start
  P/Esc        - Pause or resume
  E            - End the session
  R            - Restart (paused or ended)
  B            - Back to the menu
  X            - Clear saved game data (menu)
  Tab/H        - Session history (menu)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  becomepm play
  becomepm play pulse
  becomepm play square --fps 30 --db ./becomepm.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMono, "mono", false, "Use the monochrome theme")
}

func runPlay(_ *cobra.Command, args []string) {
	contentID := appCfg.Game.Content
	if len(args) > 0 {
		contentID = args[0]
	}
	if !content.Exists(contentID) {
		fmt.Fprintf(os.Stderr, "Error: unknown content %q\n", contentID)
		fmt.Fprintln(os.Stderr, "Run 'becomepm list' to see registered content.")
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file.
	logger, closer, err := logging.OpenFile(appCfg.Log.Level, appCfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (logging disabled)\n", err)
		logger, closer = logging.Discard(), io.NopCloser(nil)
	}
	defer closer.Close()

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		logger.Debug("terminal size", "width", w, "height", h)
	}
	logger.Info("config loaded", "source", cfgSource)

	opts := tui.Options{
		Config:    appCfg,
		ContentID: contentID,
		Logger:    logger,
	}

	store, err := storage.Open(appCfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		fmt.Fprintln(os.Stderr, "Game data will not persist between runs.")
		logger.Warn("storage unavailable, using memory", "err", err)
		opts.KV = storage.NewMemoryStore()
	} else {
		defer store.Close()
		opts.KV = store
		opts.Sessions = store
	}

	if flagMono {
		theme := tui.MonochromeTheme()
		opts.Theme = &theme
	}

	if err := tui.Run(opts); err != nil {
		logger.Error("host stopped", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore opens the configured database for the reporting commands.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(appCfg.Storage.Path)
	if err != nil {
		logger.Error("cannot open database", "path", appCfg.Storage.Path, "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return store
}
