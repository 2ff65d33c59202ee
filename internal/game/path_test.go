package game

import "testing"

func TestPathAppendAccumulatesDistance(t *testing.T) {
	p := NewPathTracker(Vec2{})
	p.Append(Vec2{X: 3})
	p.Append(Vec2{X: 3, Z: 4})

	if p.Len() != 3 {
		t.Fatalf("Expected 3 samples, got %d", p.Len())
	}
	if p.Total() != 7 {
		t.Errorf("Expected total 7, got %f", p.Total())
	}
	for i := 1; i < p.Len(); i++ {
		if p.At(i).Dist < p.At(i-1).Dist {
			t.Errorf("distance decreased at sample %d", i)
		}
	}
}

func TestPathPositionAt(t *testing.T) {
	p := NewPathTracker(Vec2{})
	p.Append(Vec2{X: 2})
	p.Append(Vec2{X: 2, Z: 2})

	tests := []struct {
		dist float64
		want Vec2
	}{
		{-1, Vec2{}},
		{0, Vec2{}},
		{1, Vec2{X: 1}},
		{2, Vec2{X: 2}},
		{3, Vec2{X: 2, Z: 1}},
		{4, Vec2{X: 2, Z: 2}},
		{10, Vec2{X: 2, Z: 2}},
	}
	for _, tt := range tests {
		got := p.PositionAt(tt.dist)
		if !approxEq(got.X, tt.want.X, eps) || !approxEq(got.Z, tt.want.Z, eps) {
			t.Errorf("PositionAt(%v): Expected %+v, got %+v", tt.dist, tt.want, got)
		}
	}
}

func TestPathZeroLengthSamples(t *testing.T) {
	p := NewPathTracker(Vec2{X: 1})
	p.Append(Vec2{X: 1})
	p.Append(Vec2{X: 1})
	if got := p.PositionAt(0); got != (Vec2{X: 1}) {
		t.Errorf("Expected start position, got %+v", got)
	}
	if p.Total() != 0 {
		t.Errorf("Expected zero total, got %f", p.Total())
	}
}

func TestPathTrimKeepsBracketingSample(t *testing.T) {
	p := NewPathTracker(Vec2{})
	for i := 1; i <= 100; i++ {
		p.Append(Vec2{X: float64(i) * 0.25})
	}
	keep := 5.0
	before := p.PositionAt(p.Total() - keep)

	dropped := p.Trim(keep)
	if dropped == 0 {
		t.Fatal("Expected samples to be trimmed")
	}
	if p.First().Dist > p.Total()-keep {
		t.Errorf("Expected oldest sample at or before %f, got %f", p.Total()-keep, p.First().Dist)
	}
	if p.At(1).Dist < p.Total()-keep {
		t.Errorf("Expected second sample within keep window, got %f", p.At(1).Dist)
	}
	after := p.PositionAt(p.Total() - keep)
	if !approxEq(before.X, after.X, eps) || !approxEq(before.Z, after.Z, eps) {
		t.Errorf("Expected lookup unchanged by trim, before %+v after %+v", before, after)
	}
}

func TestPathTrimNeverEmpties(t *testing.T) {
	p := NewPathTracker(Vec2{})
	p.Append(Vec2{X: 10})
	p.Trim(0)
	if p.Len() < 1 {
		t.Fatal("Expected at least one sample to survive")
	}
	if p.Last().Pos != (Vec2{X: 10}) {
		t.Errorf("Expected newest sample kept, got %+v", p.Last().Pos)
	}
}

func TestPathRingWrapsAndGrows(t *testing.T) {
	p := NewPathTracker(Vec2{})
	// Trim continuously so head walks round the ring, then stop trimming so
	// it has to grow while wrapped.
	for i := 1; i <= 3*minPathCap; i++ {
		p.Append(Vec2{X: float64(i)})
		p.Trim(10)
	}
	for i := 3*minPathCap + 1; i <= 6*minPathCap; i++ {
		p.Append(Vec2{X: float64(i)})
	}
	for i := 1; i < p.Len(); i++ {
		if p.At(i).Pos.X != p.At(i-1).Pos.X+1 {
			t.Fatalf("sample %d out of order: %f after %f", i, p.At(i).Pos.X, p.At(i-1).Pos.X)
		}
	}
	if p.Last().Pos.X != float64(6*minPathCap) {
		t.Errorf("Expected newest x %d, got %f", 6*minPathCap, p.Last().Pos.X)
	}
}

func TestPathReset(t *testing.T) {
	p := NewPathTracker(Vec2{})
	p.Append(Vec2{X: 5})
	p.Reset(Vec2{Z: 2})
	if p.Len() != 1 || p.Total() != 0 || p.First().Pos != (Vec2{Z: 2}) {
		t.Errorf("Expected single sample at reset point, got len %d total %f first %+v", p.Len(), p.Total(), p.First().Pos)
	}
}
