package engine

import "math/rand"

// Piece is the active falling piece. X and Y locate the top-left corner of
// the shape's bounding box on the board.
type Piece struct {
	X     int
	Y     int
	Kind  Kind
	Shape Shape
	Color int
}

// Randomizer picks the next piece. NextIndex must return a value in [0, n).
type Randomizer interface {
	NextIndex(n int) int
}

// RandRandomizer draws uniformly from a seeded math/rand source.
type RandRandomizer struct {
	rng *rand.Rand
}

// NewRandRandomizer creates a randomizer seeded with seed.
func NewRandRandomizer(seed int64) *RandRandomizer {
	return &RandRandomizer{rng: rand.New(rand.NewSource(seed))}
}

// NextIndex returns a uniform index in [0, n).
func (r *RandRandomizer) NextIndex(n int) int {
	return r.rng.Intn(n)
}

// SequenceRandomizer replays a fixed list of indices, wrapping around at the end.
type SequenceRandomizer struct {
	seq []int
	pos int
}

// NewSequenceRandomizer creates a randomizer that yields indices in order.
func NewSequenceRandomizer(indices ...int) *SequenceRandomizer {
	return &SequenceRandomizer{seq: indices}
}

// NextIndex returns the next index of the sequence, reduced modulo n.
func (s *SequenceRandomizer) NextIndex(n int) int {
	if len(s.seq) == 0 {
		return 0
	}
	v := s.seq[s.pos%len(s.seq)]
	s.pos++
	return ((v % n) + n) % n
}

// Generator produces freshly spawned pieces for a board of a given width.
type Generator struct {
	cols int
	rnd  Randomizer
}

// NewGenerator creates a generator for boards with cols columns.
func NewGenerator(cols int, rnd Randomizer) *Generator {
	return &Generator{cols: cols, rnd: rnd}
}

// Spawn returns a new piece of a uniformly chosen kind, horizontally centered
// on the top row.
func (g *Generator) Spawn() Piece {
	kind := Kinds[g.rnd.NextIndex(len(Kinds))]
	return SpawnKind(kind, g.cols)
}

// SpawnKind builds the spawn-position piece for a specific kind.
func SpawnKind(kind Kind, cols int) Piece {
	shape := ShapeOf(kind)
	return Piece{
		X:     cols/2 - shape.Width()/2,
		Y:     0,
		Kind:  kind,
		Shape: shape,
		Color: int(kind),
	}
}
