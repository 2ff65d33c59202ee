package game

import (
	"errors"
	"fmt"
	"math"
)

// Board defaults (in tiles).
const (
	DefaultGridSize = 64
	DefaultTileSize = 1.0
)

// Snake defaults.
const (
	SnakeSpeed         = 8.0     // tiles per second
	SnakeTurnRate      = math.Pi // rad/s for discrete turning
	SnakeBlend         = 0.12    // per-tick lerp factor toward the target direction
	SnakeHeightRatio   = 0.55    // segment height as a fraction of tile size
	SnakeMaxStep       = 0.05    // seconds; upper bound on a single tick
	SnakeNeckExemption = 1       // trailing segments ignored by self-collision
)

// Coin defaults.
const (
	CoinInterval        = 5.0  // seconds between a pickup/failed spawn and the next attempt
	CoinFirstDelay      = 3.0  // seconds from session start to the first spawn
	CoinSpawnAttempts   = 200  // random cells tried per spawn window
	CoinPickupRatio     = 0.65 // pickup radius as a fraction of tile size
	CoinSpinRate        = 1.5  // rad/s, render only
	CoinHeightRatio     = 0.25
	BoundaryEpsilon     = 1e-4
	degenerateLenSq     = 1e-6
	tangentDegenerateSq = 1e-8
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of a session. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	GridSize int
	TileSize float64

	Speed         float64
	SegmentLength float64
	SegmentHeight float64
	TurnRate      float64
	Blend         float64
	MaxStep       float64

	// PathReserve is extra arc length kept in the path buffer beyond what the
	// body strictly spans. It is never allowed below 2*SegmentLength.
	PathReserve float64

	// NeckExemption is how many segments directly behind the head are ignored
	// by the self-collision test.
	NeckExemption int

	SpawnInterval   float64
	FirstSpawnDelay float64
	SpawnAttempts   int
	PickupRadius    float64

	BoundaryEpsilon float64
}

func DefaultConfig() Config {
	return Config{
		GridSize:        DefaultGridSize,
		TileSize:        DefaultTileSize,
		Speed:           SnakeSpeed,
		SegmentLength:   DefaultTileSize,
		SegmentHeight:   DefaultTileSize * SnakeHeightRatio,
		TurnRate:        SnakeTurnRate,
		Blend:           SnakeBlend,
		MaxStep:         SnakeMaxStep,
		PathReserve:     2 * DefaultTileSize,
		NeckExemption:   SnakeNeckExemption,
		SpawnInterval:   CoinInterval,
		FirstSpawnDelay: CoinFirstDelay,
		SpawnAttempts:   CoinSpawnAttempts,
		PickupRadius:    DefaultTileSize * CoinPickupRatio,
		BoundaryEpsilon: BoundaryEpsilon,
	}
}

// WithTileSize returns c with TileSize set to tile and the lengths that scale
// with it (segment length and height, path reserve, pickup radius) recomputed.
func (c Config) WithTileSize(tile float64) Config {
	c.TileSize = tile
	c.SegmentLength = tile
	c.SegmentHeight = tile * SnakeHeightRatio
	c.PathReserve = 2 * tile
	c.PickupRadius = tile * CoinPickupRatio
	return c
}

// HalfGrid is half the board's side length in world units.
func (c Config) HalfGrid() float64 {
	return float64(c.GridSize) * c.TileSize / 2
}

// Limit is the half-extent of the region segment centres may occupy.
func (c Config) Limit() float64 {
	return c.HalfGrid() - c.TileSize/2
}

// pathReserve is the effective reserve used when trimming the path.
func (c Config) pathReserve() float64 {
	return math.Max(c.PathReserve, 2*c.SegmentLength)
}

func (c Config) Validate() error {
	switch {
	case c.GridSize < 2:
		return fmt.Errorf("%w: grid size %d, need at least 2", ErrInvalidConfig, c.GridSize)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size must be positive", ErrInvalidConfig)
	case c.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive", ErrInvalidConfig)
	case c.SegmentLength <= 0:
		return fmt.Errorf("%w: segment length must be positive", ErrInvalidConfig)
	case c.SegmentHeight < 0:
		return fmt.Errorf("%w: segment height must not be negative", ErrInvalidConfig)
	case c.TurnRate < 0:
		return fmt.Errorf("%w: turn rate must not be negative", ErrInvalidConfig)
	case c.Blend <= 0 || c.Blend > 1:
		return fmt.Errorf("%w: blend %.3f outside (0, 1]", ErrInvalidConfig, c.Blend)
	case c.MaxStep <= 0:
		return fmt.Errorf("%w: max step must be positive", ErrInvalidConfig)
	case c.PathReserve < 0:
		return fmt.Errorf("%w: path reserve must not be negative", ErrInvalidConfig)
	case c.NeckExemption < 0:
		return fmt.Errorf("%w: neck exemption must not be negative", ErrInvalidConfig)
	case c.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn interval must be positive", ErrInvalidConfig)
	case c.FirstSpawnDelay < 0:
		return fmt.Errorf("%w: first spawn delay must not be negative", ErrInvalidConfig)
	case c.SpawnAttempts < 1:
		return fmt.Errorf("%w: spawn attempts must be at least 1", ErrInvalidConfig)
	case c.PickupRadius <= 0:
		return fmt.Errorf("%w: pickup radius must be positive", ErrInvalidConfig)
	case c.BoundaryEpsilon < 0:
		return fmt.Errorf("%w: boundary epsilon must not be negative", ErrInvalidConfig)
	}
	return nil
}
