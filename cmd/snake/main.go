// snake is a terminal snake game on a wrap-around board.
//
// Usage:
//
//	snake play               - Play the game
//	snake highscore          - Show the saved high score
//	snake highscore --watch  - Print the high score whenever it changes
//	snake defaults           - Print the default config YAML
//
// Global flags:
//
//	--config <path>     - Config YAML (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Where play sessions write their log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal version of the classic game. The board wraps around
at the edges, so the only way to lose is to run into yourself.

Available commands:
  play       - Start a game
  highscore  - Show the saved high score
  defaults   - Print the default configuration

Examples:
  snake play
  snake play --difficulty hard
  snake highscore --watch`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(highscoreCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// loadConfig reads the configuration and applies the global flag overrides.
func loadConfig() (config.SnakeConfig, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg, source, nil
}
