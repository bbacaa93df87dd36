// Package config provides YAML-based configuration loading and
// difficulty presets for the snake game.
package config

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Speed       SpeedConfig      `yaml:"speed"`
	Bonus       BonusConfig      `yaml:"bonus"`
	Storage     StorageConfig    `yaml:"storage"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
	Log         LogConfig        `yaml:"log"`
}

// SpeedConfig defines tick rate progression. Speed is measured in ticks per second.
type SpeedConfig struct {
	Base      int `yaml:"base"`      // Ticks per second at the start of a game
	Max       int `yaml:"max"`       // Upper bound for speed
	Milestone int `yaml:"milestone"` // Speed increases by one every Milestone points
}

// BonusConfig defines the timed bonus food.
type BonusConfig struct {
	MinScore  int `yaml:"min_score"` // Score required before a bonus may spawn
	Chance    int `yaml:"chance"`    // A bonus spawns with probability 1/Chance per food eaten
	Countdown int `yaml:"countdown"` // Ticks before an uneaten bonus disappears
	Points    int `yaml:"points"`    // Score awarded for eating the bonus
	Growth    int `yaml:"growth"`    // Segments added for eating the bonus
}

// StorageConfig selects where the high score is kept.
type StorageConfig struct {
	Backend       string `yaml:"backend"`         // "file" or "sqlite"
	HighScorePath string `yaml:"high_score_path"` // Text file for the file backend
	DBPath        string `yaml:"db_path"`         // Database for the sqlite backend
}

// ScreenshotConfig controls Ctrl+S captures.
type ScreenshotConfig struct {
	Dir      string `yaml:"dir"`
	CellSize int    `yaml:"cell_size"` // Pixels per grid cell in PNG captures
}

// LogConfig controls the session log.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// BaseSpeedForPreset returns the starting speed for a difficulty preset.
// The second return value is false for presets that keep the configured speed.
func BaseSpeedForPreset(preset DifficultyPreset) (int, bool) {
	switch preset {
	case DifficultyEasy:
		return 6, true
	case DifficultyNormal:
		return 10, true
	case DifficultyHard:
		return 15, true
	default:
		return 0, false
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
