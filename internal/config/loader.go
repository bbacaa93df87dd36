package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source names reported by Load for the embedded and hardcoded fallbacks.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
// A custom path that cannot be read or parsed is an error; the other locations
// are skipped silently when missing or malformed.
func Load(customPath string) (SnakeConfig, string, error) {
	if customPath != "" {
		path, err := ExpandPath(customPath)
		if err != nil {
			return SnakeConfig{}, "", err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, path, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "snake.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, localPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// decode parses YAML over the built-in defaults and validates the result.
func decode(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that would make the game unplayable.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Speed.Base <= 0 {
		errs = append(errs, fmt.Errorf("speed.base must be positive, got %d", c.Speed.Base))
	}
	if c.Speed.Max < c.Speed.Base {
		errs = append(errs, fmt.Errorf("speed.max (%d) must be at least speed.base (%d)", c.Speed.Max, c.Speed.Base))
	}
	if c.Speed.Milestone <= 0 {
		errs = append(errs, fmt.Errorf("speed.milestone must be positive, got %d", c.Speed.Milestone))
	}
	if c.Bonus.Chance < 1 {
		errs = append(errs, fmt.Errorf("bonus.chance must be at least 1, got %d", c.Bonus.Chance))
	}
	if c.Bonus.Countdown <= 0 {
		errs = append(errs, fmt.Errorf("bonus.countdown must be positive, got %d", c.Bonus.Countdown))
	}
	if c.Bonus.Points < 0 || c.Bonus.Growth < 0 || c.Bonus.MinScore < 0 {
		errs = append(errs, errors.New("bonus.points, bonus.growth and bonus.min_score must not be negative"))
	}
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("storage.backend must be %q or %q, got %q", BackendFile, BackendSQLite, c.Storage.Backend))
	}
	if c.Screenshots.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("screenshots.cell_size must be positive, got %d", c.Screenshots.CellSize))
	}
	return errors.Join(errs...)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Unknown presets are rejected so a typo on the command line is not silently ignored.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	if IsFixedPreset(preset) {
		cfg.Speed.Max = cfg.Speed.Base
		return nil
	}
	base, ok := BaseSpeedForPreset(preset)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", preset)
	}
	cfg.Speed.Base = base
	if cfg.Speed.Max < base {
		cfg.Speed.Max = base
	}
	return nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
