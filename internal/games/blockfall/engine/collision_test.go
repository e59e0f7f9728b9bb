package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	bar := ShapeOf(KindI)    // 1x4
	vbar := Rotate(bar)      // 4x1
	square := ShapeOf(KindO) // 2x2

	b := NewBoard(20, 10)
	b.SetCell(5, 10, int(KindZ))

	tests := []struct {
		name  string
		x, y  int
		shape Shape
		want  bool
	}{
		{"empty spot", 3, 0, bar, false},
		{"flush with left wall", 0, 0, bar, false},
		{"past left wall", -1, 0, bar, true},
		{"flush with right wall", 6, 0, bar, false},
		{"past right wall", 7, 0, bar, true},
		{"resting on floor", 0, 19, bar, false},
		{"below floor", 0, 20, bar, true},
		{"vertical bar touching floor", 0, 16, vbar, false},
		{"vertical bar through floor", 0, 17, vbar, true},
		{"overlaps occupied cell", 4, 9, square, true},
		{"adjacent to occupied cell", 6, 9, square, false},
		{"above top is free", 0, -3, vbar, false},
		{"above top but past wall", -1, -3, vbar, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Collides(b, tc.x, tc.y, tc.shape))
		})
	}
}

func TestCollidesIgnoresEmptyShapeCells(t *testing.T) {
	b := NewBoard(4, 4)
	b.SetCell(0, 0, int(KindL))

	// L's top-left cell is empty, so the occupied board cell sits in a hole.
	assert.False(t, Collides(b, 0, 0, ShapeOf(KindL)))
}

// TestCollidesMatchesDefinition compares Collides against a direct cell-by-cell
// evaluation for every kind and orientation over a sweep of positions.
func TestCollidesMatchesDefinition(t *testing.T) {
	b := NewBoard(8, 6)
	b.SetCell(2, 5, 1)
	b.SetCell(3, 7, 2)
	b.SetCell(0, 3, 3)

	expected := func(x, y int, s Shape) bool {
		for r, row := range s {
			for c, v := range row {
				if v == 0 {
					continue
				}
				bx, by := x+c, y+r
				if bx < 0 || bx >= b.Width() || by >= b.Height() {
					return true
				}
				if by >= 0 && b.CellAt(bx, by) != Empty {
					return true
				}
			}
		}
		return false
	}

	for _, k := range Kinds {
		s := ShapeOf(k)
		for i := 0; i < 4; i++ {
			for y := -4; y <= b.Height(); y++ {
				for x := -4; x <= b.Width(); x++ {
					assert.Equal(t, expected(x, y, s), Collides(b, x, y, s), "kind %s at (%d,%d) shape %v", k, x, y, s)
				}
			}
			s = Rotate(s)
		}
	}
}
