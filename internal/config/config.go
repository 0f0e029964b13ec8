// Package config provides YAML-based application configuration and level
// progression for the become-pm host.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/become-pm/internal/engine"
)

// MaxTargetFPS is the highest refresh rate the host accepts.
const MaxTargetFPS = 1000

// AppConfig contains everything the CLI and the host read at startup.
type AppConfig struct {
	Game        GameConfig        `yaml:"game"`
	Display     DisplayConfig     `yaml:"display"`
	Storage     StorageConfig     `yaml:"storage"`
	Log         LogConfig         `yaml:"log"`
	Progression ProgressionConfig `yaml:"progression"`
}

// GameConfig defines the engine surface and the content to play.
type GameConfig struct {
	Width     int    `yaml:"width"`      // Surface width in cells
	Height    int    `yaml:"height"`     // Surface height in cells
	TargetFPS int    `yaml:"target_fps"` // Refresh rate of the host tick
	Content   string `yaml:"content"`    // Content ID from the registry
}

// DisplayConfig defines how the surface maps to the terminal.
type DisplayConfig struct {
	PixelRatio float64 `yaml:"pixel_ratio"`
}

// StorageConfig defines where game data and session history live.
type StorageConfig struct {
	Path string `yaml:"path"` // SQLite file; "" or ":memory:" keeps data in memory
}

// LogConfig defines logger level and destination.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
	File  string `yaml:"file"`  // Log file used while the TUI owns the terminal
}

// ProgressionConfig defines how the level follows the score.
type ProgressionConfig struct {
	Enabled        bool    `yaml:"enabled"`
	PointsPerLevel float64 `yaml:"points_per_level"`
	MaxLevel       int     `yaml:"max_level"`
	SpeedPerLevel  float64 `yaml:"speed_per_level"` // Speed added per level above 1
}

// Default returns the hardcoded configuration used when nothing else loads.
func Default() AppConfig {
	return AppConfig{
		Game: GameConfig{
			Width:     72,
			Height:    20,
			TargetFPS: 60,
			Content:   "square",
		},
		Display: DisplayConfig{
			PixelRatio: 1,
		},
		Storage: StorageConfig{
			Path: "~/.become-pm/becomepm.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.become-pm/becomepm.log",
		},
		Progression: ProgressionConfig{
			Enabled:        true,
			PointsPerLevel: 100,
			MaxLevel:       10,
			SpeedPerLevel:  0.15,
		},
	}
}

// Validate reports every invalid field at once.
func (c AppConfig) Validate() error {
	var errs []error
	if c.Game.Width <= 0 || c.Game.Height <= 0 {
		errs = append(errs, fmt.Errorf("game size %dx%d must be positive", c.Game.Width, c.Game.Height))
	}
	if c.Game.TargetFPS <= 0 || c.Game.TargetFPS > MaxTargetFPS {
		errs = append(errs, fmt.Errorf("game target_fps %d must be in 1..%d", c.Game.TargetFPS, MaxTargetFPS))
	}
	if c.Display.PixelRatio < 0 {
		errs = append(errs, fmt.Errorf("display pixel_ratio %v must not be negative", c.Display.PixelRatio))
	}
	if c.Progression.Enabled && c.Progression.PointsPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("progression points_per_level %v must be positive", c.Progression.PointsPerLevel))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Engine converts the game section into an engine configuration.
func (c AppConfig) Engine() engine.Config {
	return engine.Config{
		Width:     c.Game.Width,
		Height:    c.Game.Height,
		TargetFPS: c.Game.TargetFPS,
	}
}

// FitTo shrinks the game size so the surface plus the given chrome fits a
// terminal of termW x termH. Non-positive terminal sizes leave c unchanged.
func (c AppConfig) FitTo(termW, termH, chromeW, chromeH int) AppConfig {
	if termW > 0 && c.Game.Width > termW-chromeW {
		c.Game.Width = max(termW-chromeW, 1)
	}
	if termH > 0 && c.Game.Height > termH-chromeH {
		c.Game.Height = max(termH-chromeH, 1)
	}
	return c
}
