// Package tuning loads optional YAML overrides for game.Config.
package tuning

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"tiltsnake/internal/game"
)

// ErrSchema wraps every schema violation in a tuning file.
var ErrSchema = errors.New("tuning schema violation")

//go:embed schema.json
var schemaSrc string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("tuning.schema.json", schemaSrc)
	})
	return schema, schemaErr
}

// File mirrors the YAML layout. Absent keys keep their defaults.
type File struct {
	GridSize        *int     `yaml:"grid_size"`
	TileSize        *float64 `yaml:"tile_size"`
	Speed           *float64 `yaml:"speed"`
	SegmentLength   *float64 `yaml:"segment_length"`
	SegmentHeight   *float64 `yaml:"segment_height"`
	TurnRate        *float64 `yaml:"turn_rate"`
	Blend           *float64 `yaml:"blend"`
	MaxStep         *float64 `yaml:"max_step"`
	SpawnInterval   *float64 `yaml:"spawn_interval"`
	FirstSpawnDelay *float64 `yaml:"first_spawn_delay"`
	SpawnAttempts   *int     `yaml:"spawn_attempts"`
	PickupRadius    *float64 `yaml:"pickup_radius"`
	NeckExemption   *int     `yaml:"neck_exemption"`
	PathReserve     *float64 `yaml:"path_reserve"`
}

// Load reads path and returns the resulting config. An empty path yields the
// defaults.
func Load(path string) (game.Config, error) {
	if path == "" {
		return game.DefaultConfig(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return game.Config{}, fmt.Errorf("read tuning file: %w", err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return game.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates raw YAML against the tuning schema and overlays it on
// game.DefaultConfig.
func Parse(raw []byte) (game.Config, error) {
	if err := validate(raw); err != nil {
		return game.Config{}, err
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return game.Config{}, fmt.Errorf("tuning.yaml: %w", err)
	}
	cfg := f.Apply(game.DefaultConfig())
	if err := cfg.Validate(); err != nil {
		return game.Config{}, err
	}
	return cfg, nil
}

func validate(raw []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("tuning.yaml: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	// The validator wants JSON-shaped values (float64 numbers, string keys).
	buf, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("tuning.yaml: %w", err)
	}
	var v any
	if err := json.Unmarshal(buf, &v); err != nil {
		return fmt.Errorf("tuning.yaml: %w", err)
	}
	s, err := compiled()
	if err != nil {
		return fmt.Errorf("compile tuning schema: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return nil
}

// Apply overlays the keys present in f onto base. A tile_size key rescales the
// tile-relative lengths first, so explicit keys for those still win.
func (f File) Apply(base game.Config) game.Config {
	setI := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	if f.TileSize != nil {
		base = base.WithTileSize(*f.TileSize)
	}
	setI(&base.GridSize, f.GridSize)
	setF(&base.Speed, f.Speed)
	setF(&base.SegmentLength, f.SegmentLength)
	setF(&base.SegmentHeight, f.SegmentHeight)
	setF(&base.TurnRate, f.TurnRate)
	setF(&base.Blend, f.Blend)
	setF(&base.MaxStep, f.MaxStep)
	setF(&base.SpawnInterval, f.SpawnInterval)
	setF(&base.FirstSpawnDelay, f.FirstSpawnDelay)
	setI(&base.SpawnAttempts, f.SpawnAttempts)
	setF(&base.PickupRadius, f.PickupRadius)
	setI(&base.NeckExemption, f.NeckExemption)
	setF(&base.PathReserve, f.PathReserve)
	return base
}
