package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Rows below the game screen used for help.
const (
	shortFooterHeight = 1
	fullFooterHeight  = 4
)

// Game is what the model drives: a tick-based simulation that draws itself
// into a character screen.
type Game interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	TickInterval() time.Duration
}

// Boarder is implemented by games that can export their grid for PNG screenshots.
type Boarder interface {
	Board() core.Board
}

// Options configures the model beyond the game itself.
type Options struct {
	Screenshots config.ScreenshotConfig
	Logger      *log.Logger
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	status     string // Result of the last screenshot
	started    bool   // Set by the first tick
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-shortFooterHeight, 0)),
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.game.TickInterval())
}

// gameConfig returns the runtime config with the height left for the game.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-m.footerHeight(), 0)
	return cfg
}

func (m Model) footerHeight() int {
	if m.help.ShowAll {
		return fullFooterHeight
	}
	return shortFooterHeight
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game input. Actions are applied in arrival order on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		cfg := m.gameConfig()
		m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
		m.game.Resize(cfg.ScreenW, cfg.ScreenH)
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	m.help.Width = msg.Width

	// Before the first tick the game is restarted so the layout starts clean.
	// Once it has run, a resize never touches its state.
	if !m.started {
		m.game.Reset(cfg)
	} else {
		m.game.Resize(cfg.ScreenW, cfg.ScreenH)
	}

	return m, nil
}

// handleTick drains the queued input into one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.inputFrame)
	m.started = true

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking at the game's current speed
	return m, tickCmd(m.game.TickInterval())
}

// saveScreenshot writes the current screen as text and, when the game
// supports it, the board as a PNG.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := config.ExpandPath(m.opts.Screenshots.Dir)
	if err == nil {
		err = os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", m.opts.Screenshots.Dir, "error", err)
		m.status = "screenshot failed"
		return
	}

	txtPath, pngPath := screenshotPaths(dir, m.game.ID(), time.Now())
	if err := SaveText(m.screen, txtPath); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.status = "saved " + txtPath
	m.logger.Info("screenshot saved", "path", txtPath)

	b, ok := m.game.(Boarder)
	if !ok {
		return
	}
	if err := SaveBoardPNG(b.Board(), m.opts.Screenshots.CellSize, pngPath); err != nil {
		m.logger.Warn("PNG screenshot failed", "error", err)
		return
	}
	m.status = fmt.Sprintf("saved %s (+png)", txtPath)
	m.logger.Info("screenshot saved", "path", pngPath)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	if m.status != "" {
		sb.WriteString("  ")
		sb.WriteString(statusStyle.Render(m.status))
	}
	return sb.String()
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
