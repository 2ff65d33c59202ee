package game

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	if cfg.HalfGrid() != 32 {
		t.Errorf("Expected half grid 32, got %f", cfg.HalfGrid())
	}
	if cfg.Limit() != 31.5 {
		t.Errorf("Expected limit 31.5, got %f", cfg.Limit())
	}
}

func TestWithTileSizeScalesLengths(t *testing.T) {
	cfg := DefaultConfig().WithTileSize(2)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected rescaled config to validate, got %v", err)
	}
	if cfg.PickupRadius != 2*CoinPickupRatio {
		t.Errorf("Expected pickup radius %f, got %f", 2*CoinPickupRatio, cfg.PickupRadius)
	}
	if cfg.SegmentLength != 2 || cfg.SegmentHeight != 2*SnakeHeightRatio || cfg.PathReserve != 4 {
		t.Errorf("Expected lengths to follow the tile, got %+v", cfg)
	}
	if cfg.Limit() != 63 {
		t.Errorf("Expected limit 63, got %f", cfg.Limit())
	}
	if DefaultConfig().WithTileSize(DefaultTileSize) != DefaultConfig() {
		t.Error("Expected the default tile to reproduce the defaults")
	}
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny grid", func(c *Config) { c.GridSize = 1 }},
		{"zero tile", func(c *Config) { c.TileSize = 0 }},
		{"negative speed", func(c *Config) { c.Speed = -1 }},
		{"zero segment", func(c *Config) { c.SegmentLength = 0 }},
		{"blend above one", func(c *Config) { c.Blend = 1.5 }},
		{"zero blend", func(c *Config) { c.Blend = 0 }},
		{"zero max step", func(c *Config) { c.MaxStep = 0 }},
		{"negative neck", func(c *Config) { c.NeckExemption = -1 }},
		{"zero interval", func(c *Config) { c.SpawnInterval = 0 }},
		{"no attempts", func(c *Config) { c.SpawnAttempts = 0 }},
		{"zero pickup radius", func(c *Config) { c.PickupRadius = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestPathReserveFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PathReserve = 0
	if got := cfg.pathReserve(); got != 2*cfg.SegmentLength {
		t.Errorf("Expected reserve floor %f, got %f", 2*cfg.SegmentLength, got)
	}
	cfg.PathReserve = 5
	if got := cfg.pathReserve(); got != 5 {
		t.Errorf("Expected reserve 5, got %f", got)
	}
}
