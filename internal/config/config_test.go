package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded YAML = %+v\nexpected %+v", cfg, DefaultGameConfig())
	}
}

func TestDefaultRulesMatchEngine(t *testing.T) {
	rules, err := DefaultGameConfig().Rules()
	if err != nil {
		t.Fatalf("Rules() failed: %v", err)
	}
	if !reflect.DeepEqual(rules, engine.DefaultRules()) {
		t.Errorf("Rules() = %+v\nexpected %+v", rules, engine.DefaultRules())
	}
}

func TestLoadCustomPathKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetra.yaml")
	data := []byte("grid:\n  width: 12\npalette: [red, Bright-Blue]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Width != 12 {
		t.Errorf("width = %d, expected 12", cfg.Grid.Width)
	}
	if cfg.Grid.Height != 20 {
		t.Errorf("height = %d, expected default 20", cfg.Grid.Height)
	}

	rules, err := cfg.Rules()
	if err != nil {
		t.Fatalf("Rules() failed: %v", err)
	}
	want := []core.Color{core.ColorRed, core.ColorBrightBlue}
	if !reflect.DeepEqual(rules.Palette, want) {
		t.Errorf("palette = %v, expected %v", rules.Palette, want)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestRulesErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		want   error
	}{
		{"narrow grid", func(c *GameConfig) { c.Grid.Width = 3 }, engine.ErrGridTooNarrow},
		{"no rows", func(c *GameConfig) { c.Grid.Height = 0 }, engine.ErrGridTooShort},
		{"zero gravity", func(c *GameConfig) { c.Timing.GravityBaseMs = 0 }, engine.ErrBadTiming},
		{"short points", func(c *GameConfig) { c.Scoring.LinePoints = []int{100} }, engine.ErrBadScoring},
		{"empty palette", func(c *GameConfig) { c.Palette = nil }, engine.ErrNoPalette},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.mutate(&cfg)
			_, err := cfg.Rules()
			if !errors.Is(err, tt.want) {
				t.Errorf("Rules() error = %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestRulesUnknownColor(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Palette = []string{"ultraviolet"}
	if _, err := cfg.Rules(); err == nil {
		t.Error("expected an error for an unknown color")
	}
}

func TestPresetsScaleBaseIntervals(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		gravity time.Duration
		lateral time.Duration
	}{
		{DifficultyEasy, 1040 * time.Millisecond, 195 * time.Millisecond},
		{DifficultyNormal, 800 * time.Millisecond, 150 * time.Millisecond},
		{DifficultyHard, 520 * time.Millisecond, 98 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultGameConfig()
			if err := ApplyPreset(&cfg, tt.preset); err != nil {
				t.Fatalf("ApplyPreset() failed: %v", err)
			}
			rules, err := cfg.Rules()
			if err != nil {
				t.Fatalf("Rules() failed: %v", err)
			}
			if rules.GravityBase != tt.gravity {
				t.Errorf("GravityBase = %v, expected %v", rules.GravityBase, tt.gravity)
			}
			if rules.LateralBase != tt.lateral {
				t.Errorf("LateralBase = %v, expected %v", rules.LateralBase, tt.lateral)
			}
		})
	}
}

func TestApplyPresetUnknown(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := ApplyPreset(&cfg, "insane"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
	if cfg.Difficulty.Preset != DifficultyNormal {
		t.Errorf("preset changed to %q", cfg.Difficulty.Preset)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("TETRA_WIDTH", "8")
	t.Setenv("TETRA_HEIGHT", "16")
	t.Setenv("TETRA_PRESET", "hard")
	t.Setenv("TETRA_DB", "/tmp/tetra.db")
	t.Setenv("TETRA_LOG_FORMAT", "json")

	cfg := DefaultGameConfig()
	cfg.Records.Enabled = false
	env, err := ApplyEnv(&cfg)
	if err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}

	if cfg.Grid.Width != 8 || cfg.Grid.Height != 16 {
		t.Errorf("grid = %dx%d, expected 8x16", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Difficulty.Preset != DifficultyHard {
		t.Errorf("preset = %q, expected hard", cfg.Difficulty.Preset)
	}
	if !cfg.Records.Enabled || cfg.Records.DBPath != "/tmp/tetra.db" {
		t.Errorf("records = %+v", cfg.Records)
	}
	if env.LogFormat != "json" {
		t.Errorf("LogFormat = %q, expected json", env.LogFormat)
	}
}

func TestApplyEnvBadNumber(t *testing.T) {
	t.Setenv("TETRA_WIDTH", "wide")
	cfg := DefaultGameConfig()
	if _, err := ApplyEnv(&cfg); err == nil {
		t.Error("expected an error for a non-numeric width")
	}
}
