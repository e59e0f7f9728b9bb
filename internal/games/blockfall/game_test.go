package blockfall

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newGame(t *testing.T, g *Game) *Game {
	t.Helper()
	g.ResetWithConfig(runtimeConfig(42), config.DefaultBlockfallConfig())
	return g
}

func frame(delta time.Duration, actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	in.Delta = delta
	return in
}

func hasEvent(events []core.Event, kind core.EventKind) (core.Event, bool) {
	for _, e := range events {
		if e.Kind == kind {
			return e, true
		}
	}
	return core.Event{}, false
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"blockfall", "blockfall_classic"} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
		assert.NotEmpty(t, g.Title())
	}
}

func TestResetLeavesGameIdle(t *testing.T) {
	g := newGame(t, New())

	snap := g.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.False(t, snap.HasPiece)
	assert.Len(t, snap.Board, 20)
	assert.Len(t, snap.Board[0], 10)
	assert.False(t, g.State().Running)
}

func TestInputIgnoredBeforeStart(t *testing.T) {
	g := newGame(t, New())

	res := g.Step(frame(time.Hour, core.ActionLeft, core.ActionRotate, core.ActionPause))

	assert.False(t, res.State.Running)
	assert.False(t, res.State.Paused)
	assert.Empty(t, res.Events)
}

func TestStartSpawnsPiece(t *testing.T) {
	g := newGame(t, New())

	res := g.Step(frame(0, core.ActionStart))

	require.True(t, res.State.Running)
	_, ok := hasEvent(res.Events, core.EventStarted)
	assert.True(t, ok)
	snap := g.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.True(t, snap.HasPiece)
	assert.Equal(t, 1, snap.Games)

	// Start while running is a no-op.
	res = g.Step(frame(0, core.ActionStart))
	assert.Empty(t, res.Events)
	assert.Equal(t, 1, g.Snapshot().Games)
}

func TestPressesApplyInOrder(t *testing.T) {
	g := newGame(t, New())
	g.Step(frame(0, core.ActionStart))
	g.Session().SetPiece(engine.SpawnKind(engine.KindO, 10))

	g.Step(frame(0, core.ActionLeft, core.ActionLeft, core.ActionDown))

	p, ok := g.Session().Piece()
	require.True(t, ok)
	assert.Equal(t, 2, p.X, "both left presses apply")
	assert.Equal(t, 1, p.Y)
}

func TestPauseFreezesGravityAndMoves(t *testing.T) {
	g := newGame(t, New())
	g.Step(frame(0, core.ActionStart))
	g.Session().SetPiece(engine.SpawnKind(engine.KindO, 10))

	res := g.Step(frame(0, core.ActionPause))
	require.True(t, res.State.Paused)
	g.Step(frame(10*time.Second, core.ActionLeft, core.ActionRotate))

	p, _ := g.Session().Piece()
	assert.Equal(t, 4, p.X)
	assert.Zero(t, p.Y)
	assert.Equal(t, StatePaused, g.Snapshot().State)

	res = g.Step(frame(1001*time.Millisecond, core.ActionPause))
	assert.False(t, res.State.Paused)
	p, _ = g.Session().Piece()
	assert.Equal(t, 1, p.Y)
}

func TestDeltaFallsBackToTickRate(t *testing.T) {
	g := newGame(t, New())
	g.Step(frame(0, core.ActionStart))
	g.Session().SetPiece(engine.SpawnKind(engine.KindO, 10))

	// The start tick already advanced once; 60 ticks at 60Hz fall just short
	// of one second.
	for i := 0; i < 59; i++ {
		g.Step(core.NewInputFrame())
	}
	p, _ := g.Session().Piece()
	require.Zero(t, p.Y)

	g.Step(core.NewInputFrame())
	p, _ = g.Session().Piece()
	assert.Equal(t, 1, p.Y)
}

func TestClassicModeCountsFrames(t *testing.T) {
	g := newGame(t, NewClassic())
	g.Step(frame(time.Hour, core.ActionStart))
	g.Session().SetPiece(engine.SpawnKind(engine.KindO, 10))

	for i := 0; i < 61; i++ {
		g.Step(frame(time.Hour))
	}
	p, _ := g.Session().Piece()
	require.Zero(t, p.Y, "measured delta is ignored in classic mode")

	g.Step(frame(time.Hour))
	p, _ = g.Session().Piece()
	assert.Equal(t, 1, p.Y)
}

func TestLinesClearedEvent(t *testing.T) {
	g := newGame(t, New())
	g.Step(frame(0, core.ActionStart))
	s := g.Session()
	s.SetPiece(engine.Piece{X: 3, Y: 19, Kind: engine.KindI, Shape: engine.ShapeOf(engine.KindI), Color: int(engine.KindI)})
	for _, x := range []int{0, 1, 2, 7, 8, 9} {
		s.Board().SetCell(x, 19, int(engine.KindS))
	}

	res := g.Step(frame(1001 * time.Millisecond))

	e, ok := hasEvent(res.Events, core.EventLinesCleared)
	require.True(t, ok)
	assert.Equal(t, 1, e.Value)
	assert.Equal(t, 100, res.State.Score)
	assert.Equal(t, 1, g.Snapshot().Lines)
}

func TestGameOverKeepsFinalScore(t *testing.T) {
	g := newGame(t, New())
	g.Step(frame(0, core.ActionStart))
	s := g.Session()
	s.SetPiece(engine.SpawnKind(engine.KindO, 10))
	// Every kind spawns over columns 4-5, so landing the O at the top blocks
	// the next spawn. Row 2 holds the O up without being full.
	for x := 0; x < 9; x++ {
		s.Board().SetCell(x, 2, int(engine.KindJ))
	}

	res := g.Step(frame(1001 * time.Millisecond))

	e, ok := hasEvent(res.Events, core.EventGameOver)
	require.True(t, ok)
	assert.Zero(t, e.Value)
	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.Running)
	assert.Equal(t, StateGameOver, g.Snapshot().State)
	assert.Zero(t, s.Board().FilledCount(), "board resets after game over")

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")

	res = g.Step(frame(0, core.ActionStart))
	assert.False(t, res.State.GameOver)
	assert.True(t, res.State.Running)
	assert.Equal(t, 2, g.Snapshot().Games)
}

func TestRenderDrawsBoardAndHUD(t *testing.T) {
	g := newGame(t, New())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	assert.Contains(t, screen.String(), "Enter: start")

	g.Step(frame(0, core.ActionStart))
	g.Render(screen)
	out := screen.String()

	assert.Equal(t, 8, strings.Count(out, "█"), "four cells, two columns each")
	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "LINES")
	assert.NotContains(t, out, "Enter: start")
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	g.ResetWithConfig(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 60, Seed: 1}, config.DefaultBlockfallConfig())

	res := g.Step(frame(0, core.ActionStart))
	assert.False(t, res.State.Running)
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")

	g.Resize(80, 24)
	res = g.Step(frame(0, core.ActionStart))
	assert.True(t, res.State.Running)
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, New())
	g2 := newGame(t, New())

	script := map[int][]core.Action{
		0:  {core.ActionStart},
		5:  {core.ActionLeft, core.ActionLeft},
		20: {core.ActionRotate},
		40: {core.ActionRight},
		70: {core.ActionDown, core.ActionDown},
	}
	for i := 0; i < 3000; i++ {
		in := frame(50*time.Millisecond, script[i]...)
		g1.Step(in)
		g2.Step(in)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestResetReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: {rows: 12, cols: 6}\n"), 0o644))
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(runtimeConfig(1))

	require.NoError(t, g.ConfigError())
	snap := g.Snapshot()
	assert.Len(t, snap.Board, 12)
	assert.Len(t, snap.Board[0], 6)

	SetConfigPath(filepath.Join(dir, "missing.yaml"))
	g.Reset(runtimeConfig(1))
	assert.Error(t, g.ConfigError())
	assert.Equal(t, config.DefaultBlockfallConfig(), g.Config())
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, core.ColorCyan, ColorFor(int(engine.KindI)))
	assert.Equal(t, core.ColorRed, ColorFor(int(engine.KindT)))
	assert.Equal(t, core.ColorWhite, ColorFor(99))
}
