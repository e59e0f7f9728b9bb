package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

const (
	cellW   = 2  // Terminal columns per board cell
	hudW    = 16 // Side panel width including the gap
	blockCh = '█'
)

// pieceColors maps engine color indices to screen colors.
var pieceColors = [...]core.Color{
	engine.Empty: core.ColorDefault,
	1:            core.ColorCyan,   // I
	2:            core.ColorBlue,   // J
	3:            core.ColorOrange, // L
	4:            core.ColorYellow, // O
	5:            core.ColorGreen,  // S
	6:            core.ColorPurple, // Z
	7:            core.ColorRed,    // T
}

// ColorFor returns the screen color of a board color index.
func ColorFor(idx int) core.Color {
	if idx < 0 || idx >= len(pieceColors) {
		return core.ColorWhite
	}
	return pieceColors[idx]
}

// MinScreenSize returns the smallest screen that fits the board and HUD.
func (g *Game) MinScreenSize() (int, int) {
	rows, cols := g.cfg.Board.Rows, g.cfg.Board.Cols
	if rows == 0 || cols == 0 {
		rows, cols = engine.DefaultRows, engine.DefaultCols
	}
	return cols*cellW + 2 + hudW, rows + 2
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if g.tooSmall {
		minW, minH := g.MinScreenSize()
		y := dst.Height()/2 - 1
		dst.DrawTextCenteredColored(y, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, dst.Width(), dst.Height()))
		return
	}

	board := g.session.Board()
	boxW := board.Width()*cellW + 2
	boxH := board.Height() + 2
	ox := (dst.Width() - boxW - hudW) / 2
	oy := (dst.Height() - boxH) / 2
	frame := core.NewRect(ox, oy, boxW, boxH)

	dst.DrawBox(frame, core.ColorGray)
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			g.drawCell(dst, frame, x, y, board.CellAt(x, y))
		}
	}
	if p, ok := g.session.Piece(); ok {
		for r, row := range p.Shape {
			for c, v := range row {
				if v != 0 && p.Y+r >= 0 {
					g.drawCell(dst, frame, p.X+c, p.Y+r, p.Color)
				}
			}
		}
	}

	g.renderHUD(dst, frame.Right()+2, oy+1)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, frame, "GAME OVER", fmt.Sprintf("Score: %d", g.finalScore), "Enter: play again")
	case !g.session.Running():
		g.renderOverlay(dst, frame, "BLOCKFALL", "", "Enter: start")
	case g.paused:
		g.renderOverlay(dst, frame, "PAUSED", "", "P: resume")
	}
}

func (g *Game) drawCell(dst *core.Screen, frame core.Rect, x, y, color int) {
	sx := frame.X + 1 + x*cellW
	sy := frame.Y + 1 + y
	if color == engine.Empty {
		dst.SetColored(sx+1, sy, '·', core.ColorGray)
		return
	}
	c := ColorFor(color)
	for i := 0; i < cellW; i++ {
		dst.SetColored(sx+i, sy, blockCh, c)
	}
}

func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	dst.DrawTextColored(x, y, g.Title(), core.ColorBrightWhite)
	dst.DrawTextColored(x, y+2, "SCORE", core.ColorGray)
	dst.DrawTextColored(x, y+3, fmt.Sprintf("%d", g.State().Score), core.ColorBrightYellow)
	dst.DrawTextColored(x, y+5, "LINES", core.ColorGray)
	dst.DrawTextColored(x, y+6, fmt.Sprintf("%d", g.session.Lines()), core.ColorBrightCyan)
	dst.DrawTextColored(x, y+8, "GAMES", core.ColorGray)
	dst.DrawTextColored(x, y+9, fmt.Sprintf("%d", g.session.Games()), core.ColorWhite)
}

// renderOverlay draws a box centered on the board frame.
func (g *Game) renderOverlay(dst *core.Screen, frame core.Rect, title, detail, hint string) {
	w := max(len(title), len(detail), len(hint)) + 4
	w = min(w, frame.W)
	h := 5
	if detail != "" {
		h = 6
	}
	cx, cy := frame.Center()
	box := core.NewRect(cx-w/2, cy-h/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	center := func(y int, text string, c core.Color) {
		dst.DrawTextColored(box.X+(box.W-len(text))/2, y, text, c)
	}
	center(box.Y+1, title, core.ColorBrightWhite)
	line := box.Y + 2
	if detail != "" {
		center(line, detail, core.ColorBrightYellow)
		line++
	}
	center(line+1, hint, core.ColorGray)
}
