package config

import (
	_ "embed"
)

//go:embed defaults/tetra.yaml
var defaultTetraYAML []byte

// DefaultGameConfig returns the default configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			GravityBaseMs: 800,
			GravityStepMs: 60,
			GravityMinMs:  100,
			LateralBaseMs: 150,
			LateralStepMs: 10,
			LateralMinMs:  50,
			SoftDropMs:    25,
		},
		Scoring: ScoringConfig{
			LinePoints:   []int{100, 300, 700, 1500},
			RowsPerRound: 10,
		},
		Palette: []string{
			"bright_cyan",
			"bright_yellow",
			"bright_magenta",
			"bright_green",
			"bright_red",
			"bright_blue",
			"orange",
		},
		Records: RecordsConfig{
			Enabled: true,
			DBPath:  "~/.tetra/scores.db",
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetraYAML
}
