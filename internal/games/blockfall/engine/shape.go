package engine

// Kind identifies one of the seven tetromino types.
// The numeric value doubles as the piece's color index on the board.
type Kind int

const (
	KindI Kind = iota + 1
	KindJ
	KindL
	KindO
	KindS
	KindZ
	KindT
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

// Kinds lists every piece kind in palette order.
var Kinds = []Kind{KindI, KindJ, KindL, KindO, KindS, KindZ, KindT}

// String returns the conventional single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindT:
		return "T"
	default:
		return "?"
	}
}

// Shape is a binary matrix of occupied cells relative to the piece origin.
// Shapes are treated as immutable; Rotate always returns a new matrix.
type Shape [][]uint8

var baseShapes = map[Kind]Shape{
	KindI: {{1, 1, 1, 1}},
	KindJ: {{1, 0, 0}, {1, 1, 1}},
	KindL: {{0, 0, 1}, {1, 1, 1}},
	KindO: {{1, 1}, {1, 1}},
	KindS: {{0, 1, 1}, {1, 1, 0}},
	KindZ: {{1, 1, 0}, {0, 1, 1}},
	KindT: {{0, 1, 0}, {1, 1, 1}},
}

// ShapeOf returns a fresh copy of the spawn orientation for a kind.
// Returns nil for an unknown kind.
func ShapeOf(k Kind) Shape {
	s, ok := baseShapes[k]
	if !ok {
		return nil
	}
	return s.Clone()
}

// Width returns the number of columns of the bounding box.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows of the bounding box.
func (s Shape) Height() int {
	return len(s)
}

// Cells returns the number of occupied cells.
func (s Shape) Cells() int {
	n := 0
	for _, row := range s {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for i, row := range s {
		c[i] = append([]uint8(nil), row...)
	}
	return c
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(o[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

// Rotate returns the shape turned 90 degrees clockwise.
// An m×n matrix becomes n×m with result[i][j] = s[m-1-j][i].
func Rotate(s Shape) Shape {
	m := s.Height()
	n := s.Width()
	out := make(Shape, n)
	for i := 0; i < n; i++ {
		out[i] = make([]uint8, m)
		for j := 0; j < m; j++ {
			out[i][j] = s[m-1-j][i]
		}
	}
	return out
}
