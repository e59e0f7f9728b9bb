// Package config loads blockfall settings from YAML or TOML files, falling
// back to an embedded default.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Gravity timing modes.
const (
	TimingClock  = "clock"  // accumulate real elapsed time
	TimingFrames = "frames" // count ticks, one per frame_ms
)

// MinBoardSide is the smallest accepted board dimension.
const MinBoardSide = 4

// BlockfallConfig contains all configuration for the falling-block game.
type BlockfallConfig struct {
	Board    BoardConfig    `yaml:"board" toml:"board"`
	Gravity  GravityConfig  `yaml:"gravity" toml:"gravity"`
	Scoring  ScoringConfig  `yaml:"scoring" toml:"scoring"`
	Controls ControlsConfig `yaml:"controls" toml:"controls"`
}

// BoardConfig sets the playfield size in cells.
type BoardConfig struct {
	Rows int `yaml:"rows" toml:"rows"`
	Cols int `yaml:"cols" toml:"cols"`
}

// GravityConfig controls how often the active piece falls one row.
type GravityConfig struct {
	DropIntervalMS int    `yaml:"drop_interval_ms" toml:"drop_interval_ms"`
	Timing         string `yaml:"timing" toml:"timing"`
	FrameMS        int    `yaml:"frame_ms" toml:"frame_ms"`
}

// ScoringConfig defines the score awarded per cleared row.
type ScoringConfig struct {
	PointsPerLine int `yaml:"points_per_line" toml:"points_per_line"`
}

// ControlsConfig lists key names per action, in Bubble Tea's key notation
// ("left", "a", "ctrl+c", " ").
type ControlsConfig struct {
	Left   []string `yaml:"left" toml:"left"`
	Right  []string `yaml:"right" toml:"right"`
	Down   []string `yaml:"down" toml:"down"`
	Rotate []string `yaml:"rotate" toml:"rotate"`
	Start  []string `yaml:"start" toml:"start"`
	Pause  []string `yaml:"pause" toml:"pause"`
	Quit   []string `yaml:"quit" toml:"quit"`
}

// DropInterval returns the gravity interval as a duration.
func (g GravityConfig) DropInterval() time.Duration {
	return time.Duration(g.DropIntervalMS) * time.Millisecond
}

// FrameDuration returns the assumed frame length for frame-counted timing.
func (g GravityConfig) FrameDuration() time.Duration {
	return time.Duration(g.FrameMS) * time.Millisecond
}

// Validate checks that the configuration can drive a game.
func (c BlockfallConfig) Validate() error {
	if c.Board.Rows < MinBoardSide || c.Board.Cols < MinBoardSide {
		return fmt.Errorf("%w: board must be at least %dx%d, got %dx%d",
			ErrInvalidConfig, MinBoardSide, MinBoardSide, c.Board.Cols, c.Board.Rows)
	}
	if c.Gravity.DropIntervalMS <= 0 {
		return fmt.Errorf("%w: drop_interval_ms must be positive, got %d", ErrInvalidConfig, c.Gravity.DropIntervalMS)
	}
	switch c.Gravity.Timing {
	case TimingClock:
	case TimingFrames:
		if c.Gravity.FrameMS <= 0 {
			return fmt.Errorf("%w: frame_ms must be positive for frame timing", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown gravity timing %q", ErrInvalidConfig, c.Gravity.Timing)
	}
	if c.Scoring.PointsPerLine <= 0 {
		return fmt.Errorf("%w: points_per_line must be positive", ErrInvalidConfig)
	}

	controls := []struct {
		name string
		keys []string
	}{
		{"left", c.Controls.Left},
		{"right", c.Controls.Right},
		{"down", c.Controls.Down},
		{"rotate", c.Controls.Rotate},
		{"start", c.Controls.Start},
		{"pause", c.Controls.Pause},
		{"quit", c.Controls.Quit},
	}
	for _, ctl := range controls {
		if len(ctl.keys) == 0 {
			return fmt.Errorf("%w: no keys bound to %s", ErrInvalidConfig, ctl.name)
		}
	}
	return nil
}
