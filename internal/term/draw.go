package term

import (
	"github.com/gdamore/tcell/v2"

	"tiltsnake/internal/game"
	"tiltsnake/internal/scene"
)

// Draw renders the latest snapshot and shows the screen.
func (g *Game) Draw() {
	if g.snap == nil {
		g.snap = g.session.Snapshot(nil)
	}
	w, h := g.screen.Size()
	l := NewLayout(g.session.Config, w, h)

	g.screen.SetStyle(styleBase)
	g.screen.Clear()
	drawText(g.screen, 0, 0, scene.Status(g.snap), styleStatus)
	drawBorder(g.screen, l)

	for py := 0; py < l.Rows; py++ {
		for px := 0; px < l.Cols; px++ {
			putPixel(g.screen, l, px, py, glyphFloor, styleFloor)
		}
	}
	if g.snap.Coin.Active {
		px, py := l.Pixel(g.snap.Coin.Pos)
		putPixel(g.screen, l, px, py, glyphCoin, styleCoin)
	}
	segs := g.snap.Segments
	for i := len(segs) - 1; i >= 0; i-- {
		px, py := l.Pixel(segs[i].Pos)
		switch {
		case i == 0:
			putPixel(g.screen, l, px, py, glyphHead, styleHead)
		case segs[i].Tint%2 == 1:
			putPixel(g.screen, l, px, py, glyphBody, styleBodyB)
		default:
			putPixel(g.screen, l, px, py, glyphBody, styleBody)
		}
	}
	if g.snap.State == game.StateGameOver {
		msg := " GAME OVER "
		x := l.Left + l.Cols - len(msg)/2
		drawText(g.screen, x, l.Top+l.Rows/2, msg, styleHead.Reverse(true))
	}
	g.screen.Show()
}

// putPixel fills both terminal columns of a board pixel.
func putPixel(s tcell.Screen, l Layout, px, py int, r rune, st tcell.Style) {
	x, y := l.Screen(px, py)
	s.SetContent(x, y, r, nil, st)
	s.SetContent(x+1, y, r, nil, st)
}

func drawBorder(s tcell.Screen, l Layout) {
	x0, y0 := l.Left-1, l.Top-1
	x1, y1 := l.Left+l.Cols*2, l.Top+l.Rows
	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, '─', nil, styleWall)
		s.SetContent(x, y1, '─', nil, styleWall)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, '│', nil, styleWall)
		s.SetContent(x1, y, '│', nil, styleWall)
	}
	s.SetContent(x0, y0, '┌', nil, styleWall)
	s.SetContent(x1, y0, '┐', nil, styleWall)
	s.SetContent(x0, y1, '└', nil, styleWall)
	s.SetContent(x1, y1, '┘', nil, styleWall)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, st)
		x++
	}
}
