package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	blockRune = '█'
	ghostRune = '░'
	dotRune   = '·'
)

// Render draws the playfield, side panel and any state overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	b := g.session.Board()
	boardBox := core.NewRect(0, 0, b.Width()*cellW+2, b.Height()+2)
	totalW := boardBox.W + panelGap + panelW
	boardBox.X = (dst.Width() - totalW) / 2
	boardBox.Y = (dst.Height() - boardBox.H) / 2

	g.renderBoard(dst, boardBox)
	g.renderPanel(dst, core.NewRect(boardBox.Right()+panelGap, boardBox.Y, panelW, boardBox.H))
	g.renderOverlay(dst, boardBox)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minSize()
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, dst.Width(), dst.Height()))
}

// drawCell paints one board cell (two screen columns) at board coordinates.
func drawCell(dst *core.Screen, inner core.Rect, x, y int, r rune, c core.Color) {
	if y < 0 {
		return
	}
	sx := inner.X + x*cellW
	sy := inner.Y + y
	for i := 0; i < cellW; i++ {
		dst.SetColor(sx+i, sy, r, c)
	}
}

func (g *Game) renderBoard(dst *core.Screen, box core.Rect) {
	s := g.session
	b := s.Board()
	dst.DrawBoxColor(box, core.ColorGray)
	inner := box.Inset(1)

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if c := b.Cell(x, y); !c.IsEmpty() {
				drawCell(dst, inner, x, y, blockRune, c)
				continue
			}
			dst.SetColor(inner.X+x*cellW, inner.Y+y, dotRune, core.ColorDarkGray)
		}
	}

	p := s.Active()
	if p == nil || s.State() == StateGameOver {
		return
	}

	if ghost, ok := s.Ghost(); ok && ghost.Y != p.Y {
		for _, pt := range p.Shape.Cells() {
			drawCell(dst, inner, ghost.X+pt.X, ghost.Y+pt.Y, ghostRune, core.ColorDarkGray)
		}
	}
	for _, pt := range p.Blocks() {
		drawCell(dst, inner, pt.X, pt.Y, blockRune, p.Color)
	}
}

func (g *Game) renderPanel(dst *core.Screen, panel core.Rect) {
	s := g.session

	// Next piece preview
	preview := core.NewRect(panel.X, panel.Y, 4*cellW+4, 6)
	dst.DrawBoxColor(preview, core.ColorGray)
	dst.DrawTextColor(preview.X+2, preview.Y, " NEXT ", core.ColorBrightWhite)
	next := s.Next()
	shape := next.Shape()
	offX := (4 - shape.Size()) * cellW / 2
	for _, pt := range shape.Cells() {
		for i := 0; i < cellW; i++ {
			dst.SetColor(preview.X+2+offX+pt.X*cellW+i, preview.Y+1+pt.Y, blockRune, next.Color())
		}
	}

	y := preview.Bottom() + 1
	stat := func(label string, value int) {
		dst.DrawTextColor(panel.X, y, label, core.ColorGray)
		dst.DrawTextColor(panel.X+6, y, fmt.Sprintf("%10d", value), core.ColorBrightWhite)
		y += 2
	}
	stat("SCORE", s.Score())
	stat("LEVEL", s.Level())
	stat("LINES", s.Lines())
	stat("BEST", g.HighScore())

	if g.flashLeft > 0 {
		msg := fmt.Sprintf("%d LINES!", g.flashLines)
		switch g.flashLines {
		case 1:
			msg = "1 LINE"
		case 4:
			msg = "TETRIS!"
		}
		dst.DrawTextColor(panel.X, y+1, msg, core.ColorBrightYellow)
	}

	hints := []string{"←→ move ↑ rotate", "↓ soft  ␣ drop", "P pause  Q quit"}
	for i, h := range hints {
		dst.DrawTextColor(panel.X, panel.Bottom()-len(hints)+i, h, core.ColorGray)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, box core.Rect) {
	var lines []string
	color := core.ColorBrightWhite

	switch g.session.State() {
	case StateReady:
		lines = []string{"T E T R I S", "", "Enter to start"}
		color = core.ColorBrightCyan
	case StatePaused:
		lines = []string{"PAUSED", "", "P resume", "R restart", "B menu"}
		color = core.ColorBrightYellow
	case StateGameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("Score %d", g.session.Score())}
		if g.rank > 0 {
			lines = append(lines, fmt.Sprintf("Rank #%d", g.rank))
		}
		if g.newBest {
			lines = append(lines, "NEW BEST!")
		}
		lines = append(lines, "", "R restart", "B menu")
		color = core.ColorBrightRed
	default:
		return
	}

	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	panel := core.NewRect(box.X+(box.W-w)/2, box.Y+(box.H-len(lines)-2)/2, w, len(lines)+2)
	dst.DrawRect(panel, ' ')
	dst.DrawBoxColor(panel, color)
	for i, l := range lines {
		x := panel.X + (w-len([]rune(l)))/2
		dst.DrawTextColor(x, panel.Y+1+i, l, color)
	}
}
