package game

// Occupancy is a per-cell bitmap of the board, rebuilt from the body whenever
// a free cell has to be found.
type Occupancy struct {
	size  int
	cells []bool
}

func NewOccupancy(gridSize int) *Occupancy {
	return &Occupancy{size: gridSize, cells: make([]bool, gridSize*gridSize)}
}

// Rebuild marks the cell of every segment and clears everything else.
func (o *Occupancy) Rebuild(segs []Segment, cfg Config) {
	clear(o.cells)
	for i := range segs {
		o.Mark(Quantize(segs[i].Pos, cfg))
	}
}

func (o *Occupancy) Mark(c Cell) {
	o.cells[c.Row*o.size+c.Col] = true
}

func (o *Occupancy) Occupied(c Cell) bool {
	return o.cells[c.Row*o.size+c.Col]
}

// RandomFree tries up to attempts uniformly random cells and returns the first
// free one.
func (o *Occupancy) RandomFree(r *Rand, attempts int) (Cell, bool) {
	for i := 0; i < attempts; i++ {
		c := Cell{Col: r.Intn(o.size), Row: r.Intn(o.size)}
		if !o.Occupied(c) {
			return c, true
		}
	}
	return Cell{}, false
}
