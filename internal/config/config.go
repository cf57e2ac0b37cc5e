// Package config loads game configuration from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Environment variables read by Load.
const (
	EnvSeed = "DUNGEONCRAWL_SEED"
	EnvPath = "DUNGEONCRAWL_CONFIG"

	DefaultPath = "dungeoncrawl.yaml"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	Map     MapConfig     `yaml:"map"`
	Rooms   RoomsConfig   `yaml:"rooms"`
	Display DisplayConfig `yaml:"display"`
}

// MapConfig sets the dungeon grid size.
type MapConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RoomsConfig controls room placement.
type RoomsConfig struct {
	Count       int `yaml:"count"`
	MinSize     int `yaml:"min_size"`
	MaxSize     int `yaml:"max_size"` // exclusive
	Margin      int `yaml:"margin"`
	MaxAttempts int `yaml:"max_attempts"`
}

// DisplayConfig sets the viewport size in cells.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the reference configuration: an 80x50 map with 20 rooms,
// viewed through a display half the map's size.
func Default() Config {
	p := world.DefaultParams()
	return Config{
		Map: MapConfig{Width: p.Width, Height: p.Height},
		Rooms: RoomsConfig{
			Count:       p.NumRooms,
			MinSize:     p.MinRoomSize,
			MaxSize:     p.MaxRoomSize,
			Margin:      p.Margin,
			MaxAttempts: p.MaxAttempts,
		},
		Display: DisplayConfig{Width: p.Width / 2, Height: p.Height / 2},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("config: %s=%q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Path returns the config file path from the environment, or DefaultPath.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Validate checks the configuration for values generation cannot use.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("%w: display %dx%d", ErrInvalid, c.Display.Width, c.Display.Height)
	}
	return nil
}

// Params converts the map and room settings into generation parameters.
func (c Config) Params() world.Params {
	return world.Params{
		Width:       c.Map.Width,
		Height:      c.Map.Height,
		NumRooms:    c.Rooms.Count,
		MinRoomSize: c.Rooms.MinSize,
		MaxRoomSize: c.Rooms.MaxSize,
		Margin:      c.Rooms.Margin,
		MaxAttempts: c.Rooms.MaxAttempts,
	}
}
