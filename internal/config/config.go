// Package config provides YAML-based configuration loading and difficulty
// presets for tetra.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
)

// GameConfig contains all configuration for a tetra game.
type GameConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Palette    []string         `yaml:"palette"`
	Records    RecordsConfig    `yaml:"records"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the pacing, in milliseconds.
type TimingConfig struct {
	GravityBaseMs int `yaml:"gravity_base_ms"`
	GravityStepMs int `yaml:"gravity_step_ms"`
	GravityMinMs  int `yaml:"gravity_min_ms"`
	LateralBaseMs int `yaml:"lateral_base_ms"`
	LateralStepMs int `yaml:"lateral_step_ms"`
	LateralMinMs  int `yaml:"lateral_min_ms"`
	SoftDropMs    int `yaml:"soft_drop_ms"`
}

// ScoringConfig defines line awards and round length.
type ScoringConfig struct {
	LinePoints   []int `yaml:"line_points"`
	RowsPerRound int   `yaml:"rows_per_round"`
}

// RecordsConfig controls score persistence.
type RecordsConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// DifficultyConfig selects a difficulty preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Rules converts the configuration into engine rules and validates them.
// The difficulty preset scales the base intervals.
func (c GameConfig) Rules() (engine.Rules, error) {
	preset := c.Difficulty.Preset
	if preset == "" {
		preset = DifficultyNormal
	}
	scale, err := preset.Scale()
	if err != nil {
		return engine.Rules{}, err
	}

	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	scaled := func(v int) time.Duration {
		return time.Duration(float64(ms(v)) * scale).Round(time.Millisecond)
	}

	rules := engine.Rules{
		Width:        c.Grid.Width,
		Height:       c.Grid.Height,
		GravityBase:  scaled(c.Timing.GravityBaseMs),
		GravityStep:  ms(c.Timing.GravityStepMs),
		GravityMin:   ms(c.Timing.GravityMinMs),
		LateralBase:  scaled(c.Timing.LateralBaseMs),
		LateralStep:  ms(c.Timing.LateralStepMs),
		LateralMin:   ms(c.Timing.LateralMinMs),
		SoftDrop:     ms(c.Timing.SoftDropMs),
		RowsPerRound: c.Scoring.RowsPerRound,
	}

	if len(c.Scoring.LinePoints) != len(rules.LinePoints) {
		return engine.Rules{}, fmt.Errorf("config: scoring.line_points needs %d values, got %d: %w",
			len(rules.LinePoints), len(c.Scoring.LinePoints), engine.ErrBadScoring)
	}
	copy(rules.LinePoints[:], c.Scoring.LinePoints)

	for _, name := range c.Palette {
		color, err := core.ParseColor(name)
		if err != nil {
			return engine.Rules{}, fmt.Errorf("config: palette: %w", err)
		}
		rules.Palette = append(rules.Palette, color)
	}

	if err := rules.Validate(); err != nil {
		return engine.Rules{}, fmt.Errorf("config: %w", err)
	}
	return rules, nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets, easiest first.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// Scale returns the factor applied to the base gravity and lateral intervals.
func (p DifficultyPreset) Scale() (float64, error) {
	switch p {
	case DifficultyEasy:
		return 1.3, nil
	case DifficultyNormal:
		return 1.0, nil
	case DifficultyHard:
		return 0.65, nil
	default:
		return 0, fmt.Errorf("config: unknown difficulty preset %q", string(p))
	}
}

// ApplyPreset sets the difficulty preset, rejecting unknown names.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) error {
	if _, err := preset.Scale(); err != nil {
		return err
	}
	cfg.Difficulty.Preset = preset
	return nil
}
