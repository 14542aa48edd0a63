// Package config provides configuration loading for dungeon generation.
package config

import (
	_ "embed"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/JnyJny/DungeonGenerator/internal/world"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the generator and its front ends.
type Config struct {
	// Seed for random number generation. Zero picks a time-based seed.
	Seed    int64         `yaml:"seed" toml:"seed"`
	Dungeon DungeonConfig `yaml:"dungeon" toml:"dungeon"`
	Palette PaletteConfig `yaml:"palette" toml:"palette"`
	Viewer  ViewerConfig  `yaml:"viewer" toml:"viewer"`
}

// DungeonConfig mirrors world.Params.
type DungeonConfig struct {
	Width             int     `yaml:"width" toml:"width"`
	Height            int     `yaml:"height" toml:"height"`
	MaxRoomDimension  int     `yaml:"max_room_dimension" toml:"max_room_dimension"`
	GridSpacing       int     `yaml:"grid_spacing" toml:"grid_spacing"`
	SeedRooms         int     `yaml:"seed_rooms" toml:"seed_rooms"`
	MainRoomRatio     float64 `yaml:"main_room_ratio" toml:"main_room_ratio"`
	MaxEdges          int     `yaml:"max_edges" toml:"max_edges"`
	HallWidth         int     `yaml:"hall_width" toml:"hall_width"`
	MaxSpreadSteps    int     `yaml:"max_spread_steps" toml:"max_spread_steps"`
	SeedRadiusDivisor float64 `yaml:"seed_radius_divisor" toml:"seed_radius_divisor"`
}

// PaletteConfig holds hex colors per layer.
type PaletteConfig struct {
	Background string      `yaml:"background" toml:"background"`
	Void       LayerColors `yaml:"void" toml:"void"`
	Hall       LayerColors `yaml:"hall" toml:"hall"`
	Main       LayerColors `yaml:"main" toml:"main"`
}

// LayerColors is a foreground/background pair.
type LayerColors struct {
	FG string `yaml:"fg" toml:"fg"`
	BG string `yaml:"bg" toml:"bg"`
}

// ViewerConfig holds settings for the interactive viewer.
type ViewerConfig struct {
	MaxRooms    int `yaml:"max_rooms" toml:"max_rooms"`       // Rooms seeded before separation starts
	GridSpacing int `yaml:"grid_spacing" toml:"grid_spacing"` // Spacing of the viewer's dungeon
}

// Load loads configuration from a YAML or TOML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Only fields present in the file overwrite the defaults
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	return cfg, nil
}

// Params converts the dungeon section into generation parameters.
func (c *Config) Params() world.Params {
	d := c.Dungeon
	return world.Params{
		Width:             d.Width,
		Height:            d.Height,
		MaxRoomDimension:  d.MaxRoomDimension,
		GridSpacing:       d.GridSpacing,
		SeedRooms:         d.SeedRooms,
		MainRoomRatio:     d.MainRoomRatio,
		MaxEdges:          d.MaxEdges,
		HallWidth:         d.HallWidth,
		MaxSpreadSteps:    d.MaxSpreadSteps,
		SeedRadiusDivisor: d.SeedRadiusDivisor,
	}
}

// RNG returns a random source seeded from Seed, or from the clock when Seed is zero.
func (c *Config) RNG() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
