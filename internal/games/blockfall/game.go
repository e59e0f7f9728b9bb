// Package blockfall adapts the falling-block engine to the platform's
// registry.Game interface: it maps input actions to piece moves, feeds tick
// deltas to gravity and draws the board into a core.Screen.
package blockfall

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode selects how gravity is timed.
type Mode string

const (
	// ModeClock uses the timing from the config file, wall-clock by default.
	ModeClock Mode = "clock"
	// ModeClassic always counts frames, so drop speed follows the frame rate.
	ModeClassic Mode = "classic"
)

// Game implements the falling-block puzzle.
type Game struct {
	mode    Mode
	cfg     config.BlockfallConfig
	loadErr error
	session *engine.Session

	tick     uint64
	tickRate int
	screenW  int
	screenH  int

	paused     bool
	tooSmall   bool
	gameOver   bool // Last game ended and no new one started yet
	finalScore int

	events []core.Event
}

var configPath string

// SetConfigPath sets the config file used by subsequent Reset calls.
// Empty means the default search path.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a game that uses the configured gravity timing.
func New() *Game {
	return &Game{mode: ModeClock}
}

// NewClassic creates a game with frame-counted gravity.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

func init() {
	registry.Register("blockfall", func() registry.Game {
		return New()
	})
	registry.Register("blockfall_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "blockfall_classic"
	}
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Blockfall (Classic timing)"
	}
	return "Blockfall"
}

// Reset loads the configuration and builds an idle session.
// A config that fails to load is replaced by the defaults; ConfigError
// reports what went wrong.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		cfg = config.DefaultBlockfallConfig()
	}
	g.ResetWithConfig(rc, cfg)
	g.loadErr = err
}

// ResetWithConfig is Reset with an explicit configuration.
func (g *Game) ResetWithConfig(rc core.RuntimeConfig, cfg config.BlockfallConfig) {
	g.cfg = cfg
	g.loadErr = nil
	g.tick = 0
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.paused = false
	g.gameOver = false
	g.finalScore = 0
	g.events = nil

	g.session = engine.NewSession(g.sessionOptions(rc.Seed))
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// sessionOptions translates the file configuration into engine options.
func (g *Game) sessionOptions(seed int64) engine.Options {
	timing := engine.TimingClock
	if g.mode == ModeClassic || g.cfg.Gravity.Timing == config.TimingFrames {
		timing = engine.TimingFrames
	}
	return engine.Options{
		Rows:          g.cfg.Board.Rows,
		Cols:          g.cfg.Board.Cols,
		DropInterval:  g.cfg.Gravity.DropInterval(),
		Timing:        timing,
		FrameDuration: g.cfg.Gravity.FrameDuration(),
		PointsPerLine: g.cfg.Scoring.PointsPerLine,
		Randomizer:    engine.NewRandRandomizer(seed),
		OnLinesCleared: func(n int) {
			g.events = append(g.events, core.Event{Kind: core.EventLinesCleared, Value: n})
		},
		OnGameOver: func(score int) {
			g.gameOver = true
			g.finalScore = score
			g.paused = false
			g.events = append(g.events, core.Event{Kind: core.EventGameOver, Value: score})
		},
	}
}

// Resize updates the screen dimensions used for layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.MinScreenSize()
	g.tooSmall = w < minW || h < minH
}

// ConfigError returns the error from the last config load, if any.
func (g *Game) ConfigError() error {
	return g.loadErr
}

// Config returns the configuration in effect.
func (g *Game) Config() config.BlockfallConfig {
	return g.cfg
}

// Session exposes the underlying engine session.
func (g *Game) Session() *engine.Session {
	return g.session
}

// actionOrder is used when an input frame carries no press sequence.
var actionOrder = []core.Action{
	core.ActionStart,
	core.ActionPause,
	core.ActionLeft,
	core.ActionRight,
	core.ActionDown,
	core.ActionRotate,
}

// Step applies this tick's key presses in arrival order, then advances
// gravity by the tick's delta.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = g.events[:0]

	if g.session == nil || g.tooSmall {
		return g.result()
	}

	presses := in.Presses
	if len(presses) == 0 {
		for _, a := range actionOrder {
			if in.Has(a) {
				presses = append(presses, a)
			}
		}
	}
	for _, a := range presses {
		g.apply(a)
	}

	if g.session.Running() && !g.paused {
		g.session.Advance(g.delta(in))
	}
	return g.result()
}

func (g *Game) apply(a core.Action) {
	s := g.session

	switch a {
	case core.ActionStart:
		if !s.Running() {
			g.gameOver = false
			g.paused = false
			s.Start()
			g.events = append(g.events, core.Event{Kind: core.EventStarted})
		}
		return
	case core.ActionPause:
		if s.Running() {
			g.paused = !g.paused
		}
		return
	}

	if !s.Running() || g.paused {
		return
	}
	switch a {
	case core.ActionLeft:
		s.MoveLeft()
	case core.ActionRight:
		s.MoveRight()
	case core.ActionDown:
		s.SoftDrop()
	case core.ActionRotate:
		s.Rotate()
	}
}

// delta returns the frame's measured duration, or one tick at the
// configured rate when the platform did not measure it.
func (g *Game) delta(in core.InputFrame) time.Duration {
	if in.Delta > 0 {
		return in.Delta
	}
	return time.Second / time.Duration(g.tickRate)
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	score := g.session.Score()
	if g.gameOver {
		score = g.finalScore
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Running:  g.session.Running(),
	}
}
