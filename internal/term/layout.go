package term

import (
	"math"

	"tiltsnake/internal/game"
)

// Layout maps the board onto terminal cells. Each board pixel is two columns
// wide so cells come out roughly square; a pixel covers Scale tiles.
type Layout struct {
	Cols, Rows int     // board pixels
	Scale      float64 // tiles per pixel, at least 1
	Left, Top  int     // terminal cell of pixel (0,0)

	half, tile float64
}

// statusRows is reserved above the board for the status line.
const statusRows = 1

// NewLayout fits cfg's board, with a one-cell border, into a w x h terminal.
func NewLayout(cfg game.Config, w, h int) Layout {
	n := float64(cfg.GridSize)
	availW := float64(w-2) / 2
	availH := float64(h - 2 - statusRows)
	scale := 1.0
	if availW > 0 && availH > 0 {
		scale = math.Max(1, math.Max(n/availW, n/availH))
	}
	cols := int(math.Ceil(n/scale - 1e-9))
	rows := cols
	left := (w - cols*2) / 2
	top := statusRows + 1 + (h-statusRows-2-rows)/2
	if left < 1 {
		left = 1
	}
	if top < statusRows+1 {
		top = statusRows + 1
	}
	return Layout{
		Cols: cols, Rows: rows, Scale: scale, Left: left, Top: top,
		half: cfg.HalfGrid(), tile: cfg.TileSize,
	}
}

// Pixel returns the board pixel holding p.
func (l Layout) Pixel(p game.Vec2) (px, py int) {
	px = int(math.Floor((p.X + l.half) / (l.tile * l.Scale)))
	py = int(math.Floor((p.Z + l.half) / (l.tile * l.Scale)))
	return clamp(px, 0, l.Cols-1), clamp(py, 0, l.Rows-1)
}

// Screen returns the left terminal cell of board pixel (px, py).
func (l Layout) Screen(px, py int) (x, y int) {
	return l.Left + px*2, l.Top + py
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
