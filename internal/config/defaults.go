package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Speed: SpeedConfig{
			Base:      10,
			Max:       25,
			Milestone: 5,
		},
		Bonus: BonusConfig{
			MinScore:  5,
			Chance:    10,
			Countdown: 100,
			Points:    5,
			Growth:    3,
		},
		Storage: StorageConfig{
			Backend:       BackendFile,
			HighScorePath: "~/.snake/highscore.txt",
			DBPath:        "~/.snake/scores.db",
		},
		Screenshots: ScreenshotConfig{
			Dir:      "~/.snake/screenshots",
			CellSize: 40,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.snake/snake.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
