package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board size and starting cell of every new game.
const (
	GridWidth  = 20
	GridHeight = 15
	StartX     = 10
	StartY     = 5
)

// spawnAttempts bounds random probing for a free cell before falling back
// to enumerating every free cell.
const spawnAttempts = 64

// Point is a cell on the board.
type Point = core.Point

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit step for the direction. Y grows downwards.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Phase is the engine's top-level mode.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// BonusFood is the time-limited food item.
type BonusFood struct {
	Pos       Point
	Active    bool
	TicksLeft int
}

// Rules holds the tunable gameplay constants.
type Rules struct {
	BaseSpeed      int // Ticks per second at the start of a game
	MaxSpeed       int // Speed never exceeds this
	SpeedMilestone int // Speed goes up by one each time the score is a multiple of this

	BonusMinScore int // Bonus may only spawn once the score reaches this
	BonusChance   int // Bonus spawns with probability 1/BonusChance per food eaten
	BonusTicks    int // Lifetime of a bonus in ticks
	BonusPoints   int
	BonusGrowth   int
}

// DefaultRules returns the classic rule set.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultSnakeConfig())
}

// RulesFromConfig extracts gameplay rules from the loaded configuration.
func RulesFromConfig(cfg config.SnakeConfig) Rules {
	return Rules{
		BaseSpeed:      cfg.Speed.Base,
		MaxSpeed:       cfg.Speed.Max,
		SpeedMilestone: cfg.Speed.Milestone,
		BonusMinScore:  cfg.Bonus.MinScore,
		BonusChance:    cfg.Bonus.Chance,
		BonusTicks:     cfg.Bonus.Countdown,
		BonusPoints:    cfg.Bonus.Points,
		BonusGrowth:    cfg.Bonus.Growth,
	}
}

// withDefaults replaces values that would stall or crash the simulation.
func (r Rules) withDefaults() Rules {
	if r == (Rules{}) {
		return DefaultRules()
	}
	def := DefaultRules()
	if r.BaseSpeed <= 0 {
		r.BaseSpeed = def.BaseSpeed
	}
	if r.MaxSpeed < r.BaseSpeed {
		r.MaxSpeed = r.BaseSpeed
	}
	if r.SpeedMilestone <= 0 {
		r.SpeedMilestone = def.SpeedMilestone
	}
	if r.BonusChance < 1 {
		r.BonusChance = def.BonusChance
	}
	if r.BonusTicks <= 0 {
		r.BonusTicks = def.BonusTicks
	}
	return r
}

// HighScoreStore persists the single best score across sessions.
// LoadHighScore returns 0 and a nil error when nothing has been saved yet.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// EngineConfig sets up an Engine. Zero Width/Height select the standard board
// and zero Rules fields fall back to DefaultRules.
type EngineConfig struct {
	Width  int
	Height int
	Seed   int64
	Rules  Rules
}

// TickResult describes what happened during one Tick.
type TickResult struct {
	Moved        bool
	AteFood      bool
	AteBonus     bool
	BonusSpawned bool
	BonusExpired bool
	Collided     bool
	NewHighScore bool
	SaveErr      error // Set when a new high score could not be persisted
}

// Engine owns the complete game state and advances it one tick at a time.
// It performs no I/O of its own apart from the HighScoreStore calls and is
// not safe for concurrent use; callers serialize input and ticks.
type Engine struct {
	width  int
	height int
	rules  Rules
	rng    *rand.Rand
	store  HighScoreStore

	tick      uint64
	snake     []Point // Head at index 0
	direction Direction
	pending   Direction // Applied at the start of the next tick
	food      Point
	hasFood   bool
	bonus     BonusFood
	score     int
	speed     int
	highScore int
	phase     Phase
}

// NewEngine creates an engine. Call Initialize before the first Tick.
// A nil store disables persistence.
func NewEngine(cfg EngineConfig, store HighScoreStore) *Engine {
	if cfg.Width <= 0 {
		cfg.Width = GridWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = GridHeight
	}
	return &Engine{
		width:  cfg.Width,
		height: cfg.Height,
		rules:  cfg.Rules.withDefaults(),
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		store:  store,
	}
}

// Initialize starts a new game: a one-segment snake at the start cell heading
// right, zero score, base speed, fresh food and the persisted high score.
// It may be called at any time to restart.
//
// A failure to read the high score leaves it at 0 and is returned so the
// caller can log it; the engine is fully initialized either way.
func (e *Engine) Initialize() error {
	e.tick = 0
	e.snake = []Point{Point{X: StartX, Y: StartY}.Wrap(e.width, e.height)}
	e.direction = DirRight
	e.pending = DirRight
	e.bonus = BonusFood{}
	e.score = 0
	e.speed = e.rules.BaseSpeed
	e.phase = PhaseRunning

	hs, err := e.LoadHighScore()
	e.highScore = hs

	e.spawnFood()
	return err
}

// SetDirection queues a direction change for the next tick.
// A request to reverse onto the snake's own neck is ignored, as is any
// request while the game is not running.
func (e *Engine) SetDirection(d Direction) {
	if e.phase != PhaseRunning {
		return
	}
	if d < DirRight || d > DirUp {
		return
	}
	if d == e.direction.Opposite() {
		return
	}
	e.pending = d
}

// TogglePause switches between running and paused. It has no effect after game over.
func (e *Engine) TogglePause() {
	switch e.phase {
	case PhaseRunning:
		e.phase = PhasePaused
	case PhasePaused:
		e.phase = PhaseRunning
	}
}

// Tick advances the simulation by one step. It does nothing unless the game is running.
func (e *Engine) Tick() TickResult {
	var res TickResult
	if e.phase != PhaseRunning || len(e.snake) == 0 {
		return res
	}
	e.tick++

	// Move: every segment takes the place of the one ahead of it.
	e.direction = e.pending
	head := e.snake[0].Add(e.direction.Delta()).Wrap(e.width, e.height)
	copy(e.snake[1:], e.snake[:len(e.snake)-1])
	e.snake[0] = head
	res.Moved = true

	if e.hitsBody(head) {
		e.phase = PhaseGameOver
		res.Collided = true
		if e.score > e.highScore {
			e.highScore = e.score
			res.NewHighScore = true
			res.SaveErr = e.SaveHighScore(e.score)
		}
		return res
	}

	if e.hasFood && head == e.food {
		e.eatFood(&res)
	}

	if e.bonus.Active {
		if head == e.bonus.Pos {
			e.grow(e.rules.BonusGrowth)
			e.score += e.rules.BonusPoints
			e.bonus = BonusFood{}
			res.AteBonus = true
		} else {
			e.bonus.TicksLeft--
			if e.bonus.TicksLeft <= 0 {
				e.bonus = BonusFood{}
				res.BonusExpired = true
			}
		}
	}

	return res
}

// eatFood handles the head landing on ordinary food.
func (e *Engine) eatFood(res *TickResult) {
	e.grow(1)
	e.score++
	res.AteFood = true

	if e.score%e.rules.SpeedMilestone == 0 && e.speed < e.rules.MaxSpeed {
		e.speed++
	}

	if !e.bonus.Active && e.score >= e.rules.BonusMinScore && e.rng.Intn(e.rules.BonusChance) == 0 {
		if p, ok := e.freeCell(e.food); ok {
			e.bonus = BonusFood{Pos: p, Active: true, TicksLeft: e.rules.BonusTicks}
			res.BonusSpawned = true
		}
	}

	e.spawnFood()
}

// grow appends n copies of the tail segment.
func (e *Engine) grow(n int) {
	tail := e.snake[len(e.snake)-1]
	for range n {
		e.snake = append(e.snake, tail)
	}
}

// hitsBody reports whether p lies on any segment other than the head.
func (e *Engine) hitsBody(p Point) bool {
	for _, seg := range e.snake[1:] {
		if seg == p {
			return true
		}
	}
	return false
}

// isSnakeAt checks if the snake occupies the given point.
func (e *Engine) isSnakeAt(p Point) bool {
	for _, seg := range e.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// spawnFood places food on a free cell that is not under an active bonus.
// When the board is full the food is left unplaced.
func (e *Engine) spawnFood() {
	var exclude []Point
	if e.bonus.Active {
		exclude = append(exclude, e.bonus.Pos)
	}
	e.food, e.hasFood = e.freeCell(exclude...)
}

// freeCell picks a cell uniformly from those not covered by the snake or exclude.
func (e *Engine) freeCell(exclude ...Point) (Point, bool) {
	blocked := func(p Point) bool {
		if e.isSnakeAt(p) {
			return true
		}
		for _, x := range exclude {
			if p == x {
				return true
			}
		}
		return false
	}

	for range spawnAttempts {
		p := Point{X: e.rng.Intn(e.width), Y: e.rng.Intn(e.height)}
		if !blocked(p) {
			return p, true
		}
	}

	// Dense board: enumerate what is left.
	var free []Point
	for y := range e.height {
		for x := range e.width {
			p := Point{X: x, Y: y}
			if !blocked(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[e.rng.Intn(len(free))], true
}

// LoadHighScore reads the persisted high score. Negative values and read
// errors count as no previous record.
func (e *Engine) LoadHighScore() (int, error) {
	if e.store == nil {
		return 0, nil
	}
	hs, err := e.store.LoadHighScore()
	if err != nil {
		return 0, err
	}
	return max(hs, 0), nil
}

// SaveHighScore persists score as the new high score.
func (e *Engine) SaveHighScore(score int) error {
	if e.store == nil {
		return nil
	}
	return e.store.SaveHighScore(score)
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Speed returns the current tick rate in ticks per second.
func (e *Engine) Speed() int {
	return e.speed
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// HighScore returns the best known score, including one set this session.
func (e *Engine) HighScore() int {
	return e.highScore
}
