package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sheikhrachel/life-grid/player"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero rows":        func(c *Config) { c.Rows = 0 },
		"negative cols":    func(c *Config) { c.Cols = -1 },
		"zero interval":    func(c *Config) { c.TickInterval = 0 },
		"slow speed":       func(c *Config) { c.Speed = 0.25 },
		"fast speed":       func(c *Config) { c.Speed = 6 },
		"density":          func(c *Config) { c.RandomDensity = 1.5 },
		"negative max gen": func(c *Config) { c.MaxGenerations = -1 },
		"pattern":          func(c *Config) { c.Pattern = "gosper" },
		"zero stagnation":  func(c *Config) { c.StagnationThreshold = 0 },
		"below min speed":  func(c *Config) { c.Speed = player.MinSpeed - 0.01 },
		"above max speed":  func(c *Config) { c.Speed = player.MaxSpeed + 0.01 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"rows": 12, "cols": 20, "speed": 2.5, "pattern": "random", "tick_interval": 100000000}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Rows != 12 || cfg.Cols != 20 || cfg.Speed != 2.5 || cfg.Pattern != PatternRandom {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.TickInterval != 100*time.Millisecond {
		t.Fatalf("tick interval = %v", cfg.TickInterval)
	}
	if cfg.StagnationThreshold != DefaultConfig().StagnationThreshold {
		t.Fatal("unset fields should keep their defaults")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Fatal("expected error for malformed json")
	}

	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"rows": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(invalid); err == nil {
		t.Fatal("expected error for zero rows")
	}
}

func TestLoadConfigRejectsZeroStagnationThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"stagnation_threshold": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for stagnation_threshold 0")
	}
}

func TestSpeedBoundsAccepted(t *testing.T) {
	for _, speed := range []float64{player.MinSpeed, player.MaxSpeed} {
		cfg := DefaultConfig()
		cfg.Speed = speed
		if err := cfg.Validate(); err != nil {
			t.Fatalf("speed %v rejected: %v", speed, err)
		}
	}
}
