package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagDifficulty string
	flagSeed       int64
	flagStore      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD/HJKL - Steer
  Space/P          - Pause
  Enter/R          - Restart
  Ctrl+S           - Screenshot (text and PNG)
  ?                - Show all keys
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Start slow, speed up every 5 points
  normal - Default starting speed
  hard   - Start fast
  fixed  - Never speed up

Examples:
  snake play
  snake play --difficulty easy
  snake play --seed 42 --store sqlite
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagStore, "store", "", "High score backend: file or sqlite (default from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, source, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagStore != "" {
		cfg.Storage.Backend = flagStore
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logOut, closeLog, logErr := openLogFile(cfg.Log)
	defer closeLog()
	logger, err := newLogger(logOut, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", logErr)
	}
	logger.Info("session started", "config", source, "backend", cfg.Storage.Backend, "speed", cfg.Speed.Base)

	// Open high score storage
	store, err := storage.Open(cfg.Storage)
	if err != nil {
		logger.Warn("could not open high score store, scores will not be saved", "error", err)
		// Continue without storage - game still works
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var hs snake.HighScoreStore
	if store != nil {
		hs = store
	}
	game := snake.New(cfg, hs, logger)

	runErr := tui.Run(game, core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}, tui.Options{
		Screenshots: cfg.Screenshots,
		Logger:      logger,
	})

	logger.Info("session ended", "high_score", game.State().HighScore)

	// Close store before potential exit
	if store != nil {
		closeStore(store, logger)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
