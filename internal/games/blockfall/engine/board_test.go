package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard(20, 10)

	assert.Equal(t, 10, b.Width())
	assert.Equal(t, 20, b.Height())
	assert.Zero(t, b.FilledCount())
	for y := 0; y < b.Height(); y++ {
		assert.False(t, b.RowFull(y), "row %d", y)
	}
}

func TestBoardSetCellAndReset(t *testing.T) {
	b := NewBoard(4, 4)
	b.SetCell(0, 0, int(KindI))
	b.SetCell(3, 3, int(KindT))

	assert.Equal(t, int(KindI), b.CellAt(0, 0))
	assert.Equal(t, int(KindT), b.CellAt(3, 3))
	assert.Equal(t, 2, b.FilledCount())

	b.Reset()
	assert.Zero(t, b.FilledCount())
	assert.Equal(t, 4, b.Width(), "reset must keep dimensions")
	assert.Equal(t, 4, b.Height(), "reset must keep dimensions")
}

func TestBoardInBounds(t *testing.T) {
	b := NewBoard(20, 10)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 19, true},
		{-1, 0, false},
		{10, 0, false},
		{0, -1, false},
		{0, 20, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, b.InBounds(tc.x, tc.y), "InBounds(%d, %d)", tc.x, tc.y)
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard(3, 3)
	b.SetCell(1, 1, 5)

	c := b.Clone()
	c.SetCell(1, 1, 0)
	c.SetCell(0, 0, 2)

	assert.Equal(t, 5, b.CellAt(1, 1))
	assert.Equal(t, Empty, b.CellAt(0, 0))
}

func TestBoardRowReturnsCopy(t *testing.T) {
	b := NewBoard(2, 3)
	b.SetCell(1, 0, 7)

	row := b.Row(0)
	require.Len(t, row, 3)
	assert.Equal(t, []int{0, 7, 0}, row)

	row[0] = 1
	assert.Equal(t, Empty, b.CellAt(0, 0))
}

func TestBoardOutOfBoundsPanics(t *testing.T) {
	b := NewBoard(2, 2)
	assert.Panics(t, func() { b.CellAt(2, 0) })
	assert.Panics(t, func() { b.SetCell(0, -1, 1) })
}
