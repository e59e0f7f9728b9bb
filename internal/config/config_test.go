package config

import (
	"errors"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BlockfallConfig)
		wantErr bool
	}{
		{"defaults", func(*BlockfallConfig) {}, false},
		{"minimum board", func(c *BlockfallConfig) { c.Board = BoardConfig{Rows: 4, Cols: 4} }, false},
		{"too few rows", func(c *BlockfallConfig) { c.Board.Rows = 3 }, true},
		{"too few cols", func(c *BlockfallConfig) { c.Board.Cols = 0 }, true},
		{"zero interval", func(c *BlockfallConfig) { c.Gravity.DropIntervalMS = 0 }, true},
		{"unknown timing", func(c *BlockfallConfig) { c.Gravity.Timing = "turbo" }, true},
		{"frames need frame_ms", func(c *BlockfallConfig) {
			c.Gravity.Timing = TimingFrames
			c.Gravity.FrameMS = 0
		}, true},
		{"clock ignores frame_ms", func(c *BlockfallConfig) { c.Gravity.FrameMS = 0 }, false},
		{"zero points", func(c *BlockfallConfig) { c.Scoring.PointsPerLine = 0 }, true},
		{"unbound rotate", func(c *BlockfallConfig) { c.Controls.Rotate = nil }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlockfallConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error %v should wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestGravityDurations(t *testing.T) {
	g := GravityConfig{DropIntervalMS: 750, FrameMS: 16}

	if g.DropInterval() != 750*time.Millisecond {
		t.Errorf("DropInterval() = %v", g.DropInterval())
	}
	if g.FrameDuration() != 16*time.Millisecond {
		t.Errorf("FrameDuration() = %v", g.FrameDuration())
	}
}
