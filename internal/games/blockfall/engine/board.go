// Package engine implements the Blockfall game core: the board, the seven
// piece shapes, collision checks, line clearing and the session state machine.
// It has no dependency on any terminal or window library so every rule can be
// driven directly from tests.
package engine

// Empty is the value of an unoccupied board cell.
const Empty = 0

// Board is a fixed-size grid of cells stored row-major.
// A cell holds Empty or a color index from the palette (1..KindCount).
type Board struct {
	rows  int
	cols  int
	cells [][]int
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(rows, cols int) *Board {
	b := &Board{rows: rows, cols: cols}
	b.cells = make([][]int, rows)
	for y := range b.cells {
		b.cells[y] = make([]int, cols)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.cols
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.rows
}

// Reset empties every cell. Dimensions are kept.
func (b *Board) Reset() {
	for y := range b.cells {
		clear(b.cells[y])
	}
}

// InBounds reports whether (x, y) addresses a cell of the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// CellAt returns the value at column x, row y.
// The coordinates must be in bounds.
func (b *Board) CellAt(x, y int) int {
	return b.cells[y][x]
}

// SetCell stores a color index at column x, row y.
// The coordinates must be in bounds.
func (b *Board) SetCell(x, y, color int) {
	b.cells[y][x] = color
}

// Row returns a copy of row y.
func (b *Board) Row(y int) []int {
	row := make([]int, b.cols)
	copy(row, b.cells[y])
	return row
}

// RowFull reports whether every cell of row y is occupied.
func (b *Board) RowFull(y int) bool {
	for _, v := range b.cells[y] {
		if v == Empty {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, row := range b.cells {
		for _, v := range row {
			if v != Empty {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := NewBoard(b.rows, b.cols)
	for y := range b.cells {
		copy(c.cells[y], b.cells[y])
	}
	return c
}

// removeRow deletes row y and inserts an empty row at the top.
// Rows above y shift down by one; rows below keep their index.
func (b *Board) removeRow(y int) {
	removed := b.cells[y]
	copy(b.cells[1:y+1], b.cells[:y])
	clear(removed)
	b.cells[0] = removed
}
