// becomepm is a terminal host for the Become PM frame engine.
//
// Usage:
//
//	becomepm play [content]   - Open the menu, optionally preselecting content
//	becomepm list             - List registered content
//	becomepm scores [content] - Show recorded sessions
//	becomepm reset            - Clear the saved game data
//	becomepm bench [content]  - Run content headless and report FPS
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.become-pm, ./configs)
//	--fps <rate>        - Refresh rate override
//	--db <path>         - Database path override
//	--log-level <level> - Log level override
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/become-pm/internal/config"
	"github.com/vovakirdan/become-pm/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagDBPath   string
	flagLogLevel string

	// Resolved before any subcommand runs
	appCfg    config.AppConfig
	cfgSource string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "becomepm",
	Short: "Become PM in Biiiiig Company - a frame engine in your terminal",
	Long: `Become PM hosts a fixed-size drawing surface driven by a frame loop.
Content plugs into the loop with an update and a render callback; the
host handles start, pause, end and restart and keeps your best score.

Available commands:
  play     - Open the menu and play
  list     - Show all registered content
  scores   - View recorded sessions
  reset    - Clear the saved game data
  bench    - Run content headless and report FPS

Examples:
  becomepm play
  becomepm play pulse --fps 30
  becomepm scores square
  becomepm bench square --seconds 5`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Refresh rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(benchCmd)
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return err
	}
	appCfg = applyFlags(cfg, cmd)
	cfgSource = source
	return appCfg.Validate()
}

// applyFlags overrides config values with the flags set on the command line.
func applyFlags(cfg config.AppConfig, cmd *cobra.Command) config.AppConfig {
	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Game.TargetFPS = flagFPS
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// stderrLogger returns a logger for commands that do not take over the
// terminal.
func stderrLogger() *log.Logger {
	logger, err := logging.New(appCfg.Log.Level, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return logging.Discard()
	}
	return logger
}
