package game

import "math"

// Cell is a square of the board lattice. Col runs along X, Row along Z.
type Cell struct {
	Col, Row int
}

// Quantize maps a position to the cell containing it, clamped onto the board.
func Quantize(p Vec2, cfg Config) Cell {
	half := cfg.HalfGrid()
	col := int(math.Floor((p.X + half) / cfg.TileSize))
	row := int(math.Floor((p.Z + half) / cfg.TileSize))
	return Cell{
		Col: clampI(col, 0, cfg.GridSize-1),
		Row: clampI(row, 0, cfg.GridSize-1),
	}
}

// CellCenter is the world position at the middle of c.
func CellCenter(c Cell, cfg Config) Vec2 {
	half := cfg.HalfGrid()
	return Vec2{
		X: -half + (float64(c.Col)+0.5)*cfg.TileSize,
		Z: -half + (float64(c.Row)+0.5)*cfg.TileSize,
	}
}

// SelfCollision reports whether the head shares a cell with any segment past
// the exempt neck. Segments right behind the head overlap it in tight turns,
// so the first cfg.NeckExemption of them are skipped.
func SelfCollision(segs []Segment, cfg Config) bool {
	if len(segs) == 0 {
		return false
	}
	head := Quantize(segs[0].Pos, cfg)
	for i := 1 + cfg.NeckExemption; i < len(segs); i++ {
		if Quantize(segs[i].Pos, cfg) == head {
			return true
		}
	}
	return false
}

// PickupReached reports whether head is close enough to collect an active coin.
func PickupReached(head Vec2, coin Pickup, cfg Config) bool {
	return coin.Active && head.Dist(coin.Pos) <= cfg.PickupRadius
}
