// Package gui runs blockfall in a desktop window with Ebitengine, drawing the
// board as filled rectangles.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// Layout in pixels.
const (
	CellSize = 20
	hudWidth = 140
)

// Window adapts a blockfall game to ebiten.Game.
type Window struct {
	game     *blockfall.Game
	bindings []binding
	logger   *log.Logger
	tps      int
	input    core.InputFrame
	state    core.GameState
}

// NewWindow wraps a game that has already been Reset.
func NewWindow(game *blockfall.Game, controls config.ControlsConfig, tps int, logger *log.Logger) *Window {
	bindings, unknown := bindingsFor(controls)
	for _, name := range unknown {
		logger.Warn("key has no desktop equivalent", "key", name)
	}
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &Window{
		game:     game,
		bindings: bindings,
		logger:   logger,
		tps:      tps,
		input:    core.NewInputFrame(),
	}
}

// Update collects key presses and steps the game once.
func (w *Window) Update() error {
	w.input.Clear()
	for _, b := range w.bindings {
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		if b.action == core.ActionQuit {
			return ebiten.Termination
		}
		w.input.Set(b.action)
	}
	w.input.Delta = time.Second / time.Duration(w.tps)

	res := w.game.Step(w.input)
	w.state = res.State
	for _, e := range res.Events {
		switch e.Kind {
		case core.EventLinesCleared:
			w.logger.Debug("lines cleared", "lines", e.Value, "score", res.State.Score)
		case core.EventGameOver:
			w.logger.Info("game over", "score", e.Value)
		}
	}
	return nil
}

// Layout returns the fixed logical screen size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.Size()
}

// Size returns the logical screen size in pixels.
func (w *Window) Size() (int, int) {
	b := w.game.Config().Board
	return b.Cols*CellSize + hudWidth, b.Rows * CellSize
}

// Run opens the window and blocks until it is closed or quit is pressed.
func Run(game *blockfall.Game, rc core.RuntimeConfig, tps int, logger *log.Logger) error {
	// The terminal layout checks do not apply here; give the game room.
	minW, minH := game.MinScreenSize()
	rc.ScreenW = max(rc.ScreenW, minW)
	rc.ScreenH = max(rc.ScreenH, minH)
	game.Reset(rc)
	if err := game.ConfigError(); err != nil {
		logger.Warn("using default config", "error", err)
	}

	w := NewWindow(game, game.Config().Controls, tps, logger)
	width, height := w.Size()
	ebiten.SetWindowSize(width*2, height*2)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(w.tps)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}

var background = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
