package config

import "math"

// Progression calculates the level and content speed from the score.
type Progression struct {
	cfg ProgressionConfig
}

// NewProgression creates a progression from its configuration.
func NewProgression(cfg ProgressionConfig) *Progression {
	return &Progression{cfg: cfg}
}

// IsEnabled returns whether the level follows the score.
func (p *Progression) IsEnabled() bool {
	return p.cfg.Enabled && p.cfg.PointsPerLevel > 0
}

// Level returns the level for a score, starting at 1 and capped at
// MaxLevel when that is positive.
func (p *Progression) Level(score float64) int {
	if !p.IsEnabled() || score <= 0 {
		return 1
	}
	level := 1 + int(math.Floor(score/p.cfg.PointsPerLevel))
	if p.cfg.MaxLevel > 0 && level > p.cfg.MaxLevel {
		level = p.cfg.MaxLevel
	}
	return level
}

// Speed returns base scaled by the level.
// Level 1 runs at base; each further level adds SpeedPerLevel of it.
func (p *Progression) Speed(base float64, level int) float64 {
	if !p.IsEnabled() || level <= 1 {
		return base
	}
	return base * (1.0 + float64(level-1)*p.cfg.SpeedPerLevel)
}
