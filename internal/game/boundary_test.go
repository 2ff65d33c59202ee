package game

import (
	"math"
	"testing"
)

const eps = 1e-9

func approxEq(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestBoundaryCornerOutwardUsesFallback(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoundary(cfg)
	corner := Vec2{X: cfg.HalfGrid() - 0.5, Z: cfg.HalfGrid() - 0.5}
	out := Vec2{X: 1, Z: 1}.Normalize()

	got := b.Adjust(out, corner)

	if got.LenSq() < degenerateLenSq {
		t.Fatalf("Expected non-zero fallback direction, got %+v", got)
	}
	if got.X > eps || got.Z > eps {
		t.Errorf("Expected no outward component at corner, got %+v", got)
	}
	if !approxEq(got.Len(), 1, 1e-9) {
		t.Errorf("Expected unit fallback, got length %f", got.Len())
	}
}

func TestBoundaryEdgeSlides(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoundary(cfg)
	lim := cfg.Limit()

	tests := []struct {
		name string
		pos  Vec2
		in   Vec2
		want Vec2
	}{
		{"diagonal into right wall keeps tangent", Vec2{X: lim}, Vec2{X: 0.6, Z: 0.8}, Vec2{Z: 0.8}},
		{"diagonal into top wall keeps tangent", Vec2{Z: -lim}, Vec2{X: -0.6, Z: -0.8}, Vec2{X: -0.6}},
		{"inward vector untouched", Vec2{X: lim}, Vec2{X: -1}, Vec2{X: -1}},
		{"tangent vector untouched", Vec2{X: -lim}, Vec2{Z: 1}, Vec2{Z: 1}},
		{"away from walls untouched", Vec2{X: 3, Z: -4}, Vec2{X: 1}, Vec2{X: 1}},
		{"head-on into right wall slides", Vec2{X: lim}, Vec2{X: 1}, Vec2{Z: -1}},
		{"head-on into left wall slides", Vec2{X: -lim}, Vec2{X: -1}, Vec2{Z: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Adjust(tt.in, tt.pos)
			if !approxEq(got.X, tt.want.X, eps) || !approxEq(got.Z, tt.want.Z, eps) {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestBoundaryEveryCornerEscapes(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoundary(cfg)
	lim := cfg.Limit()
	for _, sx := range []float64{-1, 1} {
		for _, sz := range []float64{-1, 1} {
			pos := Vec2{X: sx * lim, Z: sz * lim}
			got := b.Adjust(Vec2{X: sx, Z: sz}, pos)
			if got.LenSq() < degenerateLenSq {
				t.Errorf("corner %+v: Expected escape direction, got zero", pos)
				continue
			}
			if got.X*sx > eps || got.Z*sz > eps {
				t.Errorf("corner %+v: Expected no outward component, got %+v", pos, got)
			}
		}
	}
}

func TestBoundaryClamp(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoundary(cfg)
	lim := cfg.Limit()

	p, clamped := b.Clamp(Vec2{X: lim + 3, Z: -1})
	if !clamped {
		t.Error("Expected clamp to report a correction")
	}
	if p.X != lim || p.Z != -1 {
		t.Errorf("Expected (%f, -1), got %+v", lim, p)
	}

	p, clamped = b.Clamp(Vec2{X: 2, Z: 2})
	if clamped {
		t.Error("Expected no correction inside bounds")
	}
	if p != (Vec2{X: 2, Z: 2}) {
		t.Errorf("Expected position unchanged, got %+v", p)
	}
	if !b.Contains(p) {
		t.Errorf("Expected %+v to be inside bounds", p)
	}
}
