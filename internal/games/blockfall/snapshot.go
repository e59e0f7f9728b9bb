package blockfall

import "github.com/vovakirdan/blockfall/internal/games/blockfall/engine"

// StateType names the phase the game is in.
type StateType string

const (
	StateIdle        StateType = "idle"
	StatePlaying     StateType = "playing"
	StatePaused      StateType = "paused"
	StateGameOver    StateType = "game_over"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the game state for determinism tests and for
// frontends that draw the board themselves.
type Snapshot struct {
	Tick      uint64
	Mode      string
	State     StateType
	Score     int
	Lines     int
	Games     int
	Board     [][]int // Row-major copy of the settled cells
	HasPiece  bool
	Piece     engine.Piece
	LastScore int // Final score of the last finished game
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		LastScore: g.finalScore,
	}
	if g.session == nil {
		snap.State = StateIdle
		return snap
	}

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.gameOver:
		snap.State = StateGameOver
	case !g.session.Running():
		snap.State = StateIdle
	case g.paused:
		snap.State = StatePaused
	default:
		snap.State = StatePlaying
	}

	snap.Score = g.State().Score
	snap.Lines = g.session.Lines()
	snap.Games = g.session.Games()
	board := g.session.Board()
	snap.Board = make([][]int, board.Height())
	for y := range snap.Board {
		snap.Board[y] = board.Row(y)
	}
	snap.Piece, snap.HasPiece = g.session.Piece()
	return snap
}
