package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configFile = "tetra.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.tetra/configs/tetra.yaml -> ./configs/tetra.yaml -> embedded default
//
// A file only has to name the settings it changes; everything else keeps
// its default value.
func Load(customPath string) (GameConfig, error) {
	cfg := DefaultGameConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultGameConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultGameConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetraYAML, &cfg); err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetra", "configs", filename)
}

// Env holds settings taken from the environment.
type Env struct {
	LogFormat string
}

// LoadDotEnv reads a .env file from the working directory if one exists.
// A missing file is not an error.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("config: .env: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with TETRA_WIDTH, TETRA_HEIGHT, TETRA_PRESET and
// TETRA_DB, and returns the remaining environment settings.
func ApplyEnv(cfg *GameConfig) (Env, error) {
	if v := os.Getenv("TETRA_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Env{}, fmt.Errorf("config: TETRA_WIDTH: %w", err)
		}
		cfg.Grid.Width = n
	}
	if v := os.Getenv("TETRA_HEIGHT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Env{}, fmt.Errorf("config: TETRA_HEIGHT: %w", err)
		}
		cfg.Grid.Height = n
	}
	if v := os.Getenv("TETRA_PRESET"); v != "" {
		if err := ApplyPreset(cfg, DifficultyPreset(v)); err != nil {
			return Env{}, err
		}
	}
	if v := os.Getenv("TETRA_DB"); v != "" {
		cfg.Records.Enabled = true
		cfg.Records.DBPath = v
	}
	return Env{LogFormat: os.Getenv("TETRA_LOG_FORMAT")}, nil
}
