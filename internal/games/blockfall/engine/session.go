package engine

import "time"

// State is the phase of a session.
type State int

const (
	StateIdle State = iota
	StateRunning
)

// String returns a lowercase name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Timing selects how gravity accumulates time.
type Timing int

const (
	// TimingClock accumulates the wall-clock delta passed to Advance.
	TimingClock Timing = iota
	// TimingFrames counts one unit per Advance call and drops once the count
	// exceeds DropInterval/FrameDuration, tying speed to the frame rate.
	TimingFrames
)

// Defaults used when Options leave a field zero.
const (
	DefaultRows          = 20
	DefaultCols          = 10
	DefaultDropInterval  = time.Second
	DefaultFrameDuration = 16 * time.Millisecond
	DefaultPointsPerLine = 100
)

// Options configures a new Session.
type Options struct {
	Rows          int
	Cols          int
	DropInterval  time.Duration
	Timing        Timing
	FrameDuration time.Duration // Only used with TimingFrames
	PointsPerLine int
	Randomizer    Randomizer

	// OnScoreChange receives the score every time it changes, including the
	// reset to zero.
	OnScoreChange func(score int)
	// OnGameOver receives the final score when a spawned piece is blocked.
	OnGameOver func(score int)
	// OnLinesCleared receives the number of rows removed by a single landing.
	OnLinesCleared func(n int)
}

func (o *Options) applyDefaults() {
	if o.Rows <= 0 {
		o.Rows = DefaultRows
	}
	if o.Cols <= 0 {
		o.Cols = DefaultCols
	}
	if o.DropInterval <= 0 {
		o.DropInterval = DefaultDropInterval
	}
	if o.FrameDuration <= 0 {
		o.FrameDuration = DefaultFrameDuration
	}
	if o.PointsPerLine <= 0 {
		o.PointsPerLine = DefaultPointsPerLine
	}
	if o.Randomizer == nil {
		o.Randomizer = NewRandRandomizer(time.Now().UnixNano())
	}
}

// Session owns one game: its board, active piece, score and gravity timer.
// A Session is not safe for concurrent use; the platform drives it from a
// single update loop.
type Session struct {
	opts  Options
	board *Board
	gen   *Generator
	piece *Piece
	state State
	score int
	lines int

	dropCounter time.Duration
	frameCount  int
	games       int
}

// NewSession creates an idle session with an empty board.
func NewSession(opts Options) *Session {
	opts.applyDefaults()
	s := &Session{
		opts:  opts,
		board: NewBoard(opts.Rows, opts.Cols),
		gen:   NewGenerator(opts.Cols, opts.Randomizer),
	}
	s.init()
	return s
}

// init restores start-of-session defaults and leaves the session idle.
func (s *Session) init() {
	s.board.Reset()
	s.piece = nil
	s.state = StateIdle
	s.dropCounter = 0
	s.frameCount = 0
	s.lines = 0
	s.setScore(0)
}

// Start resets the board and score, spawns the first piece and begins running.
func (s *Session) Start() {
	s.init()
	s.state = StateRunning
	s.games++
	s.spawn()
}

// Advance feeds elapsed time into the gravity timer. Once the accumulated
// time exceeds the drop interval the piece falls one row. Does nothing while idle.
func (s *Session) Advance(delta time.Duration) {
	if s.state != StateRunning || s.piece == nil {
		return
	}

	if s.opts.Timing == TimingFrames {
		s.frameCount++
		threshold := float64(s.opts.DropInterval) / float64(s.opts.FrameDuration)
		if float64(s.frameCount) <= threshold {
			return
		}
		s.frameCount = 0
	} else {
		s.dropCounter += delta
		if s.dropCounter <= s.opts.DropInterval {
			return
		}
		s.dropCounter = 0
	}

	s.gravity()
}

// gravity moves the piece down one row, landing it on collision.
func (s *Session) gravity() {
	s.piece.Y++
	if !Collides(s.board, s.piece.X, s.piece.Y, s.piece.Shape) {
		return
	}
	s.piece.Y--
	s.land()
}

// land merges the piece, clears rows and spawns the next piece.
func (s *Session) land() {
	Merge(s.board, *s.piece)
	s.piece = nil

	if n := ClearLines(s.board); n > 0 {
		s.lines += n
		s.setScore(s.score + n*s.opts.PointsPerLine)
		if s.opts.OnLinesCleared != nil {
			s.opts.OnLinesCleared(n)
		}
	}

	s.spawn()
}

// spawn places a new piece and ends the game if its spawn cell is blocked.
func (s *Session) spawn() {
	p := s.gen.Spawn()
	s.piece = &p
	if Collides(s.board, p.X, p.Y, p.Shape) {
		s.gameOver()
	}
}

func (s *Session) gameOver() {
	final := s.score
	s.state = StateIdle
	if s.opts.OnGameOver != nil {
		s.opts.OnGameOver(final)
	}
	s.init()
}

// MoveLeft shifts the piece one column left if the target is free.
func (s *Session) MoveLeft() bool {
	return s.shift(-1, 0)
}

// MoveRight shifts the piece one column right if the target is free.
func (s *Session) MoveRight() bool {
	return s.shift(1, 0)
}

// SoftDrop moves the piece down one row if the target is free.
// A blocked soft drop does not land the piece; gravity does that.
func (s *Session) SoftDrop() bool {
	return s.shift(0, 1)
}

func (s *Session) shift(dx, dy int) bool {
	if s.state != StateRunning || s.piece == nil {
		return false
	}
	if Collides(s.board, s.piece.X+dx, s.piece.Y+dy, s.piece.Shape) {
		return false
	}
	s.piece.X += dx
	s.piece.Y += dy
	return true
}

// Rotate turns the piece clockwise in place. The rotation is rejected,
// leaving the piece unchanged, if the rotated shape collides.
func (s *Session) Rotate() bool {
	if s.state != StateRunning || s.piece == nil {
		return false
	}
	rotated := Rotate(s.piece.Shape)
	if Collides(s.board, s.piece.X, s.piece.Y, rotated) {
		return false
	}
	s.piece.Shape = rotated
	return true
}

func (s *Session) setScore(score int) {
	changed := score != s.score
	s.score = score
	if changed && s.opts.OnScoreChange != nil {
		s.opts.OnScoreChange(score)
	}
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Running reports whether a game is in progress.
func (s *Session) Running() bool {
	return s.state == StateRunning
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Lines returns the number of rows cleared in the current game.
func (s *Session) Lines() int {
	return s.lines
}

// Games returns how many times Start has been called.
func (s *Session) Games() int {
	return s.games
}

// Board returns the live board. Callers may read it; writes must go
// through the session except in tests that stage a position.
func (s *Session) Board() *Board {
	return s.board
}

// Piece returns a copy of the active piece, or false when there is none.
func (s *Session) Piece() (Piece, bool) {
	if s.piece == nil {
		return Piece{}, false
	}
	p := *s.piece
	p.Shape = p.Shape.Clone()
	return p, true
}

// SetPiece replaces the active piece. Used to stage positions in tests and
// replays; has no effect while idle.
func (s *Session) SetPiece(p Piece) {
	if s.state != StateRunning {
		return
	}
	s.piece = &p
}

// Options returns the effective options after defaults were applied.
func (s *Session) Options() Options {
	return s.opts
}
