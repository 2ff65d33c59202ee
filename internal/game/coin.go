package game

// Pickup is the coin on the board. At most one exists at a time; when it is
// inactive NextSpawn says when the spawner may place the next one.
type Pickup struct {
	Active    bool
	Pos       Vec2
	Cell      Cell
	NextSpawn float64 // session clock, seconds
	Spin      float64 // render only
}

// CoinSpawner places coins on free cells on a fixed timer.
type CoinSpawner struct {
	cfg  Config
	occ  *Occupancy
	rand *Rand
}

func NewCoinSpawner(cfg Config, r *Rand) *CoinSpawner {
	return &CoinSpawner{cfg: cfg, occ: NewOccupancy(cfg.GridSize), rand: r}
}

// Update spawns a coin once its timer has elapsed. If every attempt lands on
// the body the spawn is skipped until the next window; it returns whether a
// coin was placed.
func (cs *CoinSpawner) Update(coin *Pickup, segs []Segment, now float64) bool {
	if coin.Active || now < coin.NextSpawn {
		return false
	}
	cs.occ.Rebuild(segs, cs.cfg)
	cell, ok := cs.occ.RandomFree(cs.rand, cs.cfg.SpawnAttempts)
	if !ok {
		coin.NextSpawn = now + cs.cfg.SpawnInterval
		return false
	}
	*coin = Pickup{
		Active:    true,
		Pos:       CellCenter(cell, cs.cfg),
		Cell:      cell,
		NextSpawn: coin.NextSpawn,
	}
	return true
}

// Collect deactivates the coin and schedules the next spawn window.
func (cs *CoinSpawner) Collect(coin *Pickup, now float64) {
	coin.Active = false
	coin.NextSpawn = now + cs.cfg.SpawnInterval
}

// RandomStart picks a free cell centre for a new head, falling back to the
// middle of the board.
func (cs *CoinSpawner) RandomStart(segs []Segment) Vec2 {
	cs.occ.Rebuild(segs, cs.cfg)
	cell, ok := cs.occ.RandomFree(cs.rand, cs.cfg.SpawnAttempts)
	if !ok {
		cell = Cell{Col: cs.cfg.GridSize / 2, Row: cs.cfg.GridSize / 2}
	}
	return CellCenter(cell, cs.cfg)
}
