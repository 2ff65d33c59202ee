// Package scene turns a session snapshot into point-sprite buffers shared by
// the desktop and Android renderers.
//
// Every sprite is 8 floats: x, y, size, r, g, b, a, rotation. Positions and
// sizes are in world units (x along X, y along Z); the vertex shader applies
// the camera.
package scene

import (
	"fmt"
	"math"

	"tiltsnake/internal/game"
)

const SpriteStride = 8

// Sprite sizes as fractions of a tile.
const (
	floorScale  = 0.94
	headScale   = 0.98
	bodyScale   = 0.86
	coinScale   = 0.6
	haloScale   = 2.4
	shadowShift = 0.35 // shadow offset per unit of segment height
)

// Camera is centred on the board in world units; Zoom is pixels per unit.
type Camera struct {
	X, Y float64
	Zoom float64
}

// Fit frames the whole board, walls included, in a fbW x fbH framebuffer.
func Fit(cfg game.Config, fbW, fbH int) Camera {
	span := float64(cfg.GridSize+2) * cfg.TileSize
	zoom := math.Min(float64(fbW), float64(fbH)) / span
	if zoom <= 0 {
		zoom = 1
	}
	return Camera{Zoom: zoom}
}

// Frame holds one frame's sprite buffers, reused between frames.
type Frame struct {
	Floor  []float32 // checkerboard tiles and the wall ring
	Shadow []float32
	Boxes  []float32 // body segments and the coin, drawn as rotated boxes
	Glow   []float32 // additive halos, pre-multiplied

	floorGrid int
	floorTile float64
}

// Build refills f from snap. now is wall time in seconds and only drives the
// coin halo pulse.
func (f *Frame) Build(snap *game.Snapshot, cfg game.Config, now float64) {
	if f.floorGrid != cfg.GridSize || f.floorTile != cfg.TileSize {
		f.Floor = AppendFloor(f.Floor[:0], cfg)
		f.floorGrid, f.floorTile = cfg.GridSize, cfg.TileSize
	}
	f.Shadow = f.Shadow[:0]
	f.Boxes = f.Boxes[:0]
	f.Glow = f.Glow[:0]
	if snap == nil {
		return
	}

	tile := float32(cfg.TileSize)
	if snap.Coin.Active {
		f.Boxes = AppendCoin(f.Boxes, snap.Coin, cfg)
		pulse := float32(1 + 0.12*math.Sin(now*3))
		r, g, b := Palette.Coin.Floats()
		x, y := float32(snap.Coin.Pos.X), float32(snap.Coin.Pos.Z)
		f.Glow = append(f.Glow, x, y, haloScale*tile*pulse, r*0.45, g*0.45, b*0.3, 1, 0)
	}

	dim := float32(1)
	if snap.State == game.StateGameOver {
		dim = 0.55
	}
	// Tail first so the head lands on top.
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		seg := snap.Segments[i]
		x, y := float32(seg.Pos.X), float32(seg.Pos.Z)
		size := bodyScale * tile
		col := Palette.Body
		if seg.Tint%2 == 1 {
			col = col.Mul(BodyShade)
		}
		if i == 0 {
			size = headScale * tile
			col = Palette.Head
		}
		off := float32(seg.Height * shadowShift)
		f.Shadow = append(f.Shadow, x+off, y+off, size, 0, 0, 0, 0.35, Rotation(seg.Facing))

		r, g, b := col.Floats()
		f.Boxes = append(f.Boxes, x, y, size, r*dim, g*dim, b*dim, 1, Rotation(seg.Facing))
	}
}

// Rotation converts a heading (atan2(X, Z)) into the on-screen angle of the
// heading vector, x right and z down.
func Rotation(facing float64) float32 {
	return float32(math.Pi/2 - facing)
}

// AppendCoin appends the spinning coin box.
func AppendCoin(buf []float32, coin game.Pickup, cfg game.Config) []float32 {
	r, g, b := Palette.Coin.Floats()
	return append(buf,
		float32(coin.Pos.X), float32(coin.Pos.Z), float32(coinScale*cfg.TileSize),
		r, g, b, 1, float32(coin.Spin))
}

// AppendFloor appends a checkerboard tile per cell plus a ring of wall tiles
// one cell outside the board.
func AppendFloor(buf []float32, cfg game.Config) []float32 {
	n := cfg.GridSize
	size := float32(floorScale * cfg.TileSize)
	tileAt := func(c game.Cell, col RGB) {
		p := game.CellCenter(c, cfg)
		r, g, b := col.Floats()
		buf = append(buf, float32(p.X), float32(p.Z), size, r, g, b, 1, 0)
	}
	for row := 0; row < n; row++ {
		for c := 0; c < n; c++ {
			col := Palette.FloorA
			if (row+c)%2 == 1 {
				col = Palette.FloorB
			}
			tileAt(game.Cell{Col: c, Row: row}, col)
		}
	}
	for i := -1; i <= n; i++ {
		tileAt(game.Cell{Col: i, Row: -1}, Palette.Wall)
		tileAt(game.Cell{Col: i, Row: n}, Palette.Wall)
	}
	for i := 0; i < n; i++ {
		tileAt(game.Cell{Col: -1, Row: i}, Palette.Wall)
		tileAt(game.Cell{Col: n, Row: i}, Palette.Wall)
	}
	return buf
}

// Status is the one-line summary shown in the window title and the terminal
// status bar.
func Status(snap *game.Snapshot) string {
	if snap == nil {
		return "tiltsnake"
	}
	switch snap.State {
	case game.StateIdle:
		return "tiltsnake | press Space to start"
	case game.StateGameOver:
		return fmt.Sprintf("tiltsnake | game over, score %d | Space to restart", snap.Score)
	}
	return fmt.Sprintf("tiltsnake | score %d | length %d", snap.Score, len(snap.Segments))
}
