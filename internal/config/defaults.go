package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the hardcoded default configuration.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Rows: 20,
			Cols: 10,
		},
		Gravity: GravityConfig{
			DropIntervalMS: 1000,
			Timing:         TimingClock,
			FrameMS:        16,
		},
		Scoring: ScoringConfig{
			PointsPerLine: 100,
		},
		Controls: ControlsConfig{
			Left:   []string{"left", "a"},
			Right:  []string{"right", "d"},
			Down:   []string{"down", "s"},
			Rotate: []string{"up", "w"},
			Start:  []string{"enter", " "},
			Pause:  []string{"p", "esc"},
			Quit:   []string{"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBlockfallYAML
}
