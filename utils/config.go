package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-grid/player"
)

const (
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
	PatternBlock   = "block"
	PatternRandom  = "random"
)

// Config holds the configuration for the game
type Config struct {
	Rows                int           `json:"rows"`
	Cols                int           `json:"cols"`
	TickInterval        time.Duration `json:"tick_interval"`
	Interactive         bool          `json:"interactive"`
	Speed               float64       `json:"speed"`
	MaxGenerations      int           `json:"max_generations"`
	Pattern             string        `json:"pattern"`
	RandomDensity       float64       `json:"random_density"`
	Seed                int64         `json:"seed"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	AutoStop            bool          `json:"auto_stop"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                30,
		Cols:                30,
		TickInterval:        player.DefaultInterval,
		Interactive:         true,
		Speed:               player.DefaultSpeed,
		MaxGenerations:      0, // run until interrupted
		Pattern:             PatternGlider,
		RandomDensity:       0.15,
		Seed:                1,
		StagnationThreshold: 5,
		AutoStop:            true,
	}
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Errorf("[Validate] grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.TickInterval <= 0 {
		return errors.Errorf("[Validate] tick_interval must be positive, got %v", c.TickInterval)
	}
	if c.Speed < player.MinSpeed || c.Speed > player.MaxSpeed {
		return errors.Errorf("[Validate] speed must be within %v-%v, got %v", player.MinSpeed, player.MaxSpeed, c.Speed)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random_density must be within 0-1, got %v", c.RandomDensity)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.StagnationThreshold < 1 {
		return errors.Errorf("[Validate] stagnation_threshold must be at least 1, got %d", c.StagnationThreshold)
	}
	switch c.Pattern {
	case PatternGlider, PatternBlinker, PatternBlock, PatternRandom:
	default:
		return errors.Errorf("[Validate] unknown pattern %q", c.Pattern)
	}
	return nil
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}
