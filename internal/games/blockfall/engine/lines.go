package engine

// Merge writes the piece's color into every board cell covered by its shape.
// The piece must be at a collision-free position; cells above the top edge
// are skipped.
func Merge(b *Board, p Piece) {
	for r, row := range p.Shape {
		for c, v := range row {
			if v == 0 {
				continue
			}
			y := p.Y + r
			if y < 0 {
				continue
			}
			b.cells[y][p.X+c] = p.Color
		}
	}
}

// ClearLines removes every full row and returns how many were removed.
//
// Rows are scanned bottom to top. A removed row is replaced by an empty row
// inserted at the top, which moves the rows above it down by one, so the same
// index is examined again before the scan continues upward.
func ClearLines(b *Board) int {
	if b.cols == 0 {
		return 0
	}
	cleared := 0
	for y := b.rows - 1; y >= 0; {
		if b.RowFull(y) {
			b.removeRow(y)
			cleared++
			continue
		}
		y--
	}
	return cleared
}
