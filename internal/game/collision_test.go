package game

import "testing"

func TestQuantize(t *testing.T) {
	cfg := DefaultConfig()
	half := cfg.HalfGrid()

	tests := []struct {
		name string
		pos  Vec2
		want Cell
	}{
		{"origin", Vec2{}, Cell{Col: 32, Row: 32}},
		{"just left of origin", Vec2{X: -0.01, Z: -0.01}, Cell{Col: 31, Row: 31}},
		{"top left limit", Vec2{X: -cfg.Limit(), Z: -cfg.Limit()}, Cell{Col: 0, Row: 0}},
		{"bottom right limit", Vec2{X: cfg.Limit(), Z: cfg.Limit()}, Cell{Col: 63, Row: 63}},
		{"outside clamps low", Vec2{X: -half - 5, Z: 0}, Cell{Col: 0, Row: 32}},
		{"outside clamps high", Vec2{X: 0, Z: half + 5}, Cell{Col: 32, Row: 63}},
		{"far edge clamps", Vec2{X: half, Z: half}, Cell{Col: 63, Row: 63}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.pos, cfg); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestCellCenterRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	for _, c := range []Cell{{0, 0}, {63, 63}, {10, 40}} {
		if got := Quantize(CellCenter(c, cfg), cfg); got != c {
			t.Errorf("Expected %+v, got %+v", c, got)
		}
	}
}

func TestSelfCollisionIgnoresNeck(t *testing.T) {
	cfg := DefaultConfig()
	head := Vec2{X: 0.5, Z: 0.5}
	far := Vec2{X: 10.5, Z: 10.5}

	tests := []struct {
		name string
		segs []Segment
		want bool
	}{
		{"head alone", []Segment{{Pos: head}}, false},
		{"neck overlaps head", []Segment{{Pos: head}, {Pos: head}}, false},
		{"neck overlaps, body clear", []Segment{{Pos: head}, {Pos: head}, {Pos: far}}, false},
		{"index 2 overlaps head", []Segment{{Pos: head}, {Pos: far}, {Pos: Vec2{X: 0.9, Z: 0.1}}}, true},
		{"deep body overlaps head", []Segment{{Pos: head}, {Pos: far}, {Pos: far}, {Pos: far}, {Pos: head}}, true},
		{"adjacent cell is not a hit", []Segment{{Pos: head}, {Pos: far}, {Pos: Vec2{X: 1.5, Z: 0.5}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelfCollision(tt.segs, cfg); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSelfCollisionNeckExemptionIsTunable(t *testing.T) {
	cfg := DefaultConfig()
	p := Vec2{X: 0.5, Z: 0.5}
	segs := []Segment{{Pos: p}, {Pos: p}, {Pos: p}}

	cfg.NeckExemption = 0
	if !SelfCollision(segs, cfg) {
		t.Error("Expected neck to count with exemption 0")
	}
	cfg.NeckExemption = 2
	if SelfCollision(segs, cfg) {
		t.Error("Expected first two body segments ignored with exemption 2")
	}
}

func TestPickupReached(t *testing.T) {
	cfg := DefaultConfig()
	coin := Pickup{Active: true, Pos: Vec2{X: 1}}

	if !PickupReached(Vec2{X: 1 - 0.6}, coin, cfg) {
		t.Error("Expected pickup within 0.65 tiles")
	}
	if !PickupReached(Vec2{X: 1, Z: 0.65}, coin, cfg) {
		t.Error("Expected pickup exactly at threshold")
	}
	if PickupReached(Vec2{X: 1 - 0.7}, coin, cfg) {
		t.Error("Expected no pickup beyond threshold")
	}
	coin.Active = false
	if PickupReached(coin.Pos, coin, cfg) {
		t.Error("Expected inactive coin to be ignored")
	}
}
