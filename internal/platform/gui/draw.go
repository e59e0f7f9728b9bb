package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// palette holds the RGB value of each screen color used for pieces.
var palette = map[core.Color]color.RGBA{
	core.ColorCyan:   {R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	core.ColorBlue:   {R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	core.ColorOrange: {R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
	core.ColorYellow: {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	core.ColorGreen:  {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	core.ColorPurple: {R: 0x80, G: 0x00, B: 0x80, A: 0xff},
	core.ColorRed:    {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
}

var (
	gridLine = color.RGBA{R: 0x30, G: 0x30, B: 0x40, A: 0xff}
	shade    = color.RGBA{A: 0xb0}
	white    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// rgba returns the fill color for a board color index.
func rgba(idx int) color.RGBA {
	if c, ok := palette[blockfall.ColorFor(idx)]; ok {
		return c
	}
	return white
}

// Draw renders the board, the active piece and the side panel.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	snap := w.game.Snapshot()

	for y, row := range snap.Board {
		for x, v := range row {
			if v != 0 {
				fillCell(screen, x, y, rgba(v))
			}
		}
	}
	if snap.HasPiece {
		p := snap.Piece
		for r, row := range p.Shape {
			for c, v := range row {
				if v != 0 && p.Y+r >= 0 {
					fillCell(screen, p.X+c, p.Y+r, rgba(p.Color))
				}
			}
		}
	}

	boardW := float32(len(snap.Board[0]) * CellSize)
	boardH := float32(len(snap.Board) * CellSize)
	vector.StrokeRect(screen, 0, 0, boardW, boardH, 1, gridLine, false)

	hudX := int(boardW) + 12
	ebitenutil.DebugPrintAt(screen, w.game.Title(), hudX, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), hudX, 32)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d", snap.Lines), hudX, 48)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Games: %d", snap.Games), hudX, 64)

	switch snap.State {
	case blockfall.StateGameOver:
		overlay(screen, boardW, boardH, "GAME OVER", fmt.Sprintf("Score: %d", snap.LastScore), "Enter to play")
	case blockfall.StateIdle:
		overlay(screen, boardW, boardH, "BLOCKFALL", "", "Enter to start")
	case blockfall.StatePaused:
		overlay(screen, boardW, boardH, "PAUSED", "", "P to resume")
	}
}

// fillCell draws one board cell, leaving a 1px gap like a grid.
func fillCell(screen *ebiten.Image, x, y int, c color.RGBA) {
	vector.DrawFilledRect(screen,
		float32(x*CellSize), float32(y*CellSize),
		CellSize-1, CellSize-1,
		c, false)
}

func overlay(screen *ebiten.Image, w, h float32, lines ...string) {
	vector.DrawFilledRect(screen, 0, h/2-36, w, 72, shade, false)
	y := int(h/2) - 28
	for _, line := range lines {
		if line != "" {
			ebitenutil.DebugPrintAt(screen, line, 8, y)
		}
		y += 18
	}
}
