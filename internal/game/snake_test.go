package game

import (
	"math"
	"testing"
)

const tick = 0.05

func TestAdvanceMovesAlongDirection(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoundary(cfg)
	s := NewSnake(Vec2{X: -10}, cfg.SegmentHeight/2)

	if !s.Advance(cfg, b, tick) {
		t.Fatal("Expected head to move")
	}
	want := -10 + cfg.Speed*tick
	if !approxEq(s.Head().X, want, eps) || s.Head().Z != 0 {
		t.Errorf("Expected head at (%f, 0), got %+v", want, s.Head())
	}
	if s.Path.Len() != 2 {
		t.Errorf("Expected 2 path samples, got %d", s.Path.Len())
	}
	if !approxEq(s.Path.Total(), cfg.Speed*tick, eps) {
		t.Errorf("Expected path total %f, got %f", cfg.Speed*tick, s.Path.Total())
	}
	if !approxEq(s.Segments[0].Facing, math.Pi/2, eps) {
		t.Errorf("Expected facing pi/2 for +X, got %f", s.Segments[0].Facing)
	}
}

func TestAdvanceZeroDirectionDoesNotMove(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoundary(cfg)
	s := NewSnake(Vec2{}, 0)
	s.Direction = Vec2{}
	s.TargetDirection = Vec2{}

	if s.Advance(cfg, b, tick) {
		t.Error("Expected no movement with zero direction")
	}
	if s.Head() != (Vec2{}) || s.Path.Len() != 1 {
		t.Errorf("Expected head and path untouched, got head %+v path len %d", s.Head(), s.Path.Len())
	}
}

func TestAdvanceBlendsTowardTarget(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoundary(cfg)
	s := NewSnake(Vec2{}, 0)
	s.TargetDirection = Vec2{Z: 1}

	s.Advance(cfg, b, tick)

	want := Forward.Lerp(Vec2{Z: 1}, cfg.Blend).Normalize()
	if !approxEq(s.Direction.X, want.X, eps) || !approxEq(s.Direction.Z, want.Z, eps) {
		t.Errorf("Expected direction %+v, got %+v", want, s.Direction)
	}
	if !approxEq(s.Direction.Len(), 1, eps) {
		t.Errorf("Expected unit direction, got length %f", s.Direction.Len())
	}
}

func TestAdvanceSlidesAlongWallsAndCorners(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoundary(cfg)
	lim := cfg.Limit()
	s := NewSnake(Vec2{X: lim - 2}, 0)

	hitCorner := false
	for i := 0; i < 150; i++ {
		s.Advance(cfg, b, tick)
		h := s.Head()
		if !b.Contains(h) {
			t.Fatalf("tick %d: head %+v left the board", i, h)
		}
		if !approxEq(s.Direction.Len(), 1, 1e-9) || !approxEq(s.TargetDirection.Len(), 1, 1e-9) {
			t.Fatalf("tick %d: Expected unit vectors, got dir %+v target %+v", i, s.Direction, s.TargetDirection)
		}
		if approxEq(h.X, lim, eps) && approxEq(h.Z, -lim, eps) {
			hitCorner = true
		}
	}
	if !hitCorner {
		t.Error("Expected head to slide up the right wall into the corner")
	}
	// Out of the top-right corner the only way on is along the top wall.
	if s.Head().X >= lim-1 || !approxEq(s.Head().Z, -lim, eps) {
		t.Errorf("Expected head sliding left along top wall, got %+v", s.Head())
	}
}

func TestAdvanceTrimsPath(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoundary(cfg)
	s := NewSnake(Vec2{X: -30}, 0)
	s.Grow()
	s.Grow()

	for i := 0; i < 100; i++ {
		s.Advance(cfg, b, tick)
	}
	keep := cfg.SegmentLength*float64(len(s.Segments)) + cfg.pathReserve()
	if s.Path.At(1).Dist < s.Path.Total()-keep {
		t.Errorf("Expected path trimmed to %f, second sample at %f of %f", keep, s.Path.At(1).Dist, s.Path.Total())
	}
	if s.Path.First().Dist > s.Path.Total()-cfg.SegmentLength*float64(len(s.Segments)-1) {
		t.Error("Expected path to still reach the last segment")
	}
}

func TestFollowPathFixedSpacing(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoundary(cfg)
	s := NewSnake(Vec2{X: -20}, 0)

	for i := 0; i < 40; i++ {
		s.Advance(cfg, b, tick)
	}
	for i := 0; i < 5; i++ {
		s.Grow()
	}
	// Curve so the samples are not collinear.
	s.TargetDirection = Vec2{X: 1, Z: 1}.Normalize()
	for i := 0; i < 30; i++ {
		s.Advance(cfg, b, tick)
		FollowPath(s.Segments, s.Path, cfg, b)
	}

	total := s.Path.Total()
	for i := 1; i < len(s.Segments); i++ {
		want := s.Path.PositionAt(total - cfg.SegmentLength*float64(i))
		got := s.Segments[i].Pos
		if !approxEq(got.X, want.X, 1e-9) || !approxEq(got.Z, want.Z, 1e-9) {
			t.Errorf("segment %d: Expected %+v, got %+v", i, want, got)
		}
		// Arc spacing is fixed, so the chord to the previous segment can
		// only be shorter than one segment length.
		if d := got.Dist(s.Segments[i-1].Pos); d > cfg.SegmentLength+1e-9 {
			t.Errorf("segment %d: Expected spacing <= %f, got %f", i, cfg.SegmentLength, d)
		}
	}
}

func TestFollowPathStraightLine(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoundary(cfg)
	s := NewSnake(Vec2{X: -20, Z: 3}, 0)
	for i := 0; i < 4; i++ {
		s.Grow()
	}
	for i := 0; i < 50; i++ {
		s.Advance(cfg, b, tick)
		FollowPath(s.Segments, s.Path, cfg, b)
	}
	head := s.Head()
	for i := 1; i < len(s.Segments); i++ {
		seg := s.Segments[i]
		if !approxEq(seg.Pos.X, head.X-float64(i)*cfg.SegmentLength, 1e-9) || !approxEq(seg.Pos.Z, 3, 1e-9) {
			t.Errorf("segment %d: Expected (%f, 3), got %+v", i, head.X-float64(i), seg.Pos)
		}
		if !approxEq(seg.Facing, math.Pi/2, 1e-9) {
			t.Errorf("segment %d: Expected facing pi/2, got %f", i, seg.Facing)
		}
	}
}

func TestFollowPathUnderflowClampsToStart(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoundary(cfg)
	s := NewSnake(Vec2{X: 1, Z: 1}, 0)
	s.Grow()
	s.Grow()
	s.Segments[2].Facing = 0.7

	FollowPath(s.Segments, s.Path, cfg, b)

	for i := 1; i < len(s.Segments); i++ {
		if s.Segments[i].Pos != (Vec2{X: 1, Z: 1}) {
			t.Errorf("segment %d: Expected start sample, got %+v", i, s.Segments[i].Pos)
		}
	}
	if s.Segments[2].Facing != 0.7 {
		t.Errorf("Expected facing kept without a tangent, got %f", s.Segments[2].Facing)
	}
}

func TestGrowAppendsAtTail(t *testing.T) {
	s := NewSnake(Vec2{X: 2}, 0.3)
	s.Grow()
	s.Segments[1].Pos = Vec2{X: 1}
	s.Grow()

	if len(s.Segments) != 3 {
		t.Fatalf("Expected 3 segments, got %d", len(s.Segments))
	}
	if s.Segments[2].Pos != (Vec2{X: 1}) {
		t.Errorf("Expected new segment at tail, got %+v", s.Segments[2].Pos)
	}
	if s.Segments[1].Tint == s.Segments[2].Tint {
		t.Error("Expected tint to alternate")
	}
	if s.Segments[2].Height != 0.3 {
		t.Errorf("Expected height 0.3, got %f", s.Segments[2].Height)
	}
}
