package snake

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Layout of the terminal view. Each board cell is drawn two characters wide
// so cells look roughly square.
const (
	cellW     = 2
	hudHeight = 2
	boardW    = GridWidth*cellW + 2 // Including border
	boardH    = GridHeight + 2

	// MinScreenW and MinScreenH are the smallest terminal that fits the board and HUD.
	MinScreenW = boardW
	MinScreenH = hudHeight + boardH
)

// Game binds an Engine to the arcade platform: it replays queued input,
// advances the engine and draws it into a character screen.
type Game struct {
	rules  Rules
	store  HighScoreStore
	logger *log.Logger
	engine *Engine

	screenW   int
	screenH   int
	tooSmall  bool
	newRecord bool // Current game ended with a new high score
}

// New creates a Game using the given configuration and high-score store.
// A nil logger discards log output.
func New(cfg config.SnakeConfig, store HighScoreStore, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		rules:  RulesFromConfig(cfg),
		store:  store,
		logger: logger,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset creates a fresh engine for the given screen and seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < MinScreenW || g.screenH < MinScreenH
	g.newRecord = false

	g.engine = NewEngine(EngineConfig{
		Width:  GridWidth,
		Height: GridHeight,
		Seed:   cfg.Seed,
		Rules:  g.rules,
	}, g.store)
	g.initialize()
}

// Resize updates the screen dimensions without touching the game in progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < MinScreenW || h < MinScreenH
}

func (g *Game) initialize() {
	g.newRecord = false
	if err := g.engine.Initialize(); err != nil {
		g.logger.Warn("could not load high score, starting from 0", "error", err)
	}
	g.logger.Debug("game started", "high_score", g.engine.HighScore(), "speed", g.engine.Speed())
}

// Step drains the queued input in arrival order and advances the engine by one tick.
// The tick is skipped while the window is too small to show the board, and
// after a restart so the new game opens at its start position. Actions queued
// behind a restart still apply to the new game.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		g.Reset(core.DefaultConfig())
	}

	restarted := false
	for _, a := range in.Actions {
		switch a {
		case core.ActionUp:
			g.engine.SetDirection(DirUp)
		case core.ActionDown:
			g.engine.SetDirection(DirDown)
		case core.ActionLeft:
			g.engine.SetDirection(DirLeft)
		case core.ActionRight:
			g.engine.SetDirection(DirRight)
		case core.ActionPause:
			g.engine.TogglePause()
		case core.ActionRestart:
			g.initialize()
			restarted = true
		}
	}

	if !restarted && !g.tooSmall {
		g.observe(g.engine.Tick())
	}

	return core.StepResult{State: g.State()}
}

// observe logs the notable events of a tick.
func (g *Game) observe(res TickResult) {
	if res.BonusSpawned {
		g.logger.Debug("bonus food spawned", "pos", g.engine.bonus.Pos)
	}
	if res.AteBonus {
		g.logger.Debug("bonus food eaten", "score", g.engine.Score())
	}
	if !res.Collided {
		return
	}

	g.logger.Info("game over", "score", g.engine.Score(), "length", len(g.engine.snake))
	if res.NewHighScore {
		g.newRecord = true
		g.logger.Info("new high score", "score", g.engine.HighScore())
	}
	if res.SaveErr != nil {
		g.logger.Warn("could not save high score", "score", g.engine.HighScore(), "error", res.SaveErr)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	phase := g.engine.Phase()
	return core.GameState{
		Score:     g.engine.Score(),
		HighScore: g.engine.HighScore(),
		GameOver:  phase == PhaseGameOver,
		Paused:    phase == PhasePaused,
	}
}

// TickInterval returns the wall-clock time between ticks at the current speed.
func (g *Game) TickInterval() time.Duration {
	speed := g.rules.withDefaults().BaseSpeed
	if g.engine != nil && g.engine.Speed() > 0 {
		speed = g.engine.Speed()
	}
	return time.Second / time.Duration(speed)
}

// Snapshot returns a copy of the engine state.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{}
	}
	return g.engine.Snapshot()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	snap := g.engine.Snapshot()

	g.renderHUD(dst, snap)

	if g.tooSmall {
		g.renderOverlay(dst, core.ColorYellow,
			"Window too small",
			fmt.Sprintf("Need at least %dx%d", MinScreenW, MinScreenH))
		return
	}

	offX := (dst.Width() - boardW) / 2
	offY := hudHeight
	dst.DrawBox(core.NewRect(offX, offY, boardW, boardH), core.ColorGray)

	cell := func(p Point, glyph string, c core.Color) {
		dst.DrawTextColored(offX+1+p.X*cellW, offY+1+p.Y, glyph, c)
	}

	if snap.HasFood {
		cell(snap.Food, "()", core.ColorRed)
	}
	if snap.Bonus.Active {
		cell(snap.Bonus.Pos, "<>", core.ColorGold)
	}
	// Tail first so the head wins when segments overlap after growing.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			cell(snap.Snake[i], "██", core.ColorBrightYellow)
		} else {
			cell(snap.Snake[i], "▓▓", core.ColorGreen)
		}
	}

	switch snap.Phase {
	case PhaseGameOver:
		lines := []string{"Game Over", fmt.Sprintf("Score: %d", snap.Score)}
		if g.newRecord {
			lines = append(lines, "New high score!")
		}
		lines = append(lines, "Enter: restart  Q: quit")
		g.renderOverlay(dst, core.ColorBrightWhite, lines...)
	case PhasePaused:
		g.renderOverlay(dst, core.ColorCyan, "Paused", "Space to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" %s | Score: %d  Best: %d  Speed: %d  Length: %d",
		g.Title(), snap.Score, snap.HighScore, snap.Speed, snap.Len())
	if snap.Bonus.Active {
		hud += fmt.Sprintf("  Bonus: %d", snap.Bonus.TicksLeft)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered box with one message per line.
func (g *Game) renderOverlay(dst *core.Screen, c core.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}

// Board returns the grid contents for image export: food, bonus, then the
// snake from tail to head.
func (g *Game) Board() core.Board {
	if g.engine == nil {
		return core.Board{}
	}
	snap := g.engine.Snapshot()

	b := core.Board{
		Width:  snap.Width,
		Height: snap.Height,
		Cells:  make([]core.BoardCell, 0, len(snap.Snake)+2),
	}
	if snap.HasFood {
		b.Cells = append(b.Cells, core.BoardCell{Pos: snap.Food, Color: core.ColorRed})
	}
	if snap.Bonus.Active {
		b.Cells = append(b.Cells, core.BoardCell{Pos: snap.Bonus.Pos, Color: core.ColorGold})
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		c := core.ColorGreen
		if i == 0 {
			c = core.ColorBrightYellow
		}
		b.Cells = append(b.Cells, core.BoardCell{Pos: snap.Snake[i], Color: c})
	}
	return b
}
