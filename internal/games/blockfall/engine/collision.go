package engine

// Collides reports whether shape placed with its origin at (x, y) overlaps a
// wall, the floor, or an occupied cell of the board.
//
// Cells above the top edge (negative rows) are never treated as a collision,
// so a shape may legally hang partially above the board.
func Collides(b *Board, x, y int, shape Shape) bool {
	for r, row := range shape {
		for c, v := range row {
			if v == 0 {
				continue
			}
			bx := x + c
			by := y + r
			if bx < 0 || bx >= b.cols || by >= b.rows {
				return true
			}
			if by >= 0 && b.cells[by][bx] != Empty {
				return true
			}
		}
	}
	return false
}
