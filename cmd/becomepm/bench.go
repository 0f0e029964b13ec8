package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/become-pm/internal/config"
	"github.com/vovakirdan/become-pm/internal/content"
	"github.com/vovakirdan/become-pm/internal/core"
	"github.com/vovakirdan/become-pm/internal/engine"
	"github.com/vovakirdan/become-pm/internal/gamedata"
	"github.com/vovakirdan/become-pm/internal/gamestate"
	"github.com/vovakirdan/become-pm/internal/storage"
)

var (
	flagSeconds int
	flagDump    bool
)

var benchCmd = &cobra.Command{
	Use:   "bench [content]",
	Short: "Run content headless and report FPS",
	Long: `Drives the engine from a ticker instead of the terminal, printing the
measured FPS once per second. Game data goes to a throwaway in-memory
store, so the saved record is untouched.

Examples:
  becomepm bench
  becomepm bench pulse --seconds 10 --fps 120
  becomepm bench square --dump`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagSeconds, "seconds", 3, "How long to run")
	benchCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the last frame when done")
}

func runBench(_ *cobra.Command, args []string) {
	contentID := appCfg.Game.Content
	if len(args) > 0 {
		contentID = args[0]
	}
	if flagSeconds <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --seconds must be positive")
		os.Exit(1)
	}

	logger := stderrLogger()
	cfg := appCfg.Engine()

	screen := core.NewScreen(cfg.Width, cfg.Height, appCfg.Display.PixelRatio)
	queue := engine.NewFrameQueue()
	state := gamestate.New(gamedata.New(storage.NewMemoryStore(), logger))

	var eng *engine.Engine
	c, err := content.Create(contentID, content.Env{
		Config:      cfg,
		PixelRatio:  screen.PixelRatio(),
		Score:       state,
		Progression: config.NewProgression(appCfg.Progression),
		FPS: func() int {
			if eng == nil {
				return 0
			}
			return eng.FPS()
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Report once per second of frame time.
	frames := 0
	var since float64
	cb := c.Callbacks()
	update := cb.Update
	cb.Update = func(delta float64) {
		frames++
		since += delta
		if since >= 1000 {
			since -= 1000
			fmt.Printf("fps=%-4d score=%-6.0f level=%d\n", eng.FPS(), state.Score(), state.Level())
		}
		if update != nil {
			update(delta)
		}
	}

	eng, err = engine.New(screen, cfg, cb,
		engine.WithScheduler(queue),
		engine.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(flagSeconds)*time.Second)
	defer cancel()

	logger.Info("bench started", "content", c.ID(), "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), "fps", cfg.TargetFPS)

	started := time.Now()
	eng.Start()
	err = engine.NewLoop(queue, engine.SystemClock, cfg.TargetFPS).Run(ctx)
	eng.Stop()
	elapsed := time.Since(started)

	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("%s: %d frames in %s (%.1f avg fps), final score %.0f\n",
		c.Title(), frames, elapsed.Round(time.Millisecond), float64(frames)/elapsed.Seconds(), state.Score())

	if flagDump {
		fmt.Println()
		fmt.Println(screen.String())
	}
}
