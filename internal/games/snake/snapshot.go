package snake

// Snapshot is a read-only copy of the engine state for rendering and tests.
// It shares no memory with the engine.
type Snapshot struct {
	Tick      uint64
	Width     int
	Height    int
	Snake     []Point // Head at index 0
	Direction Direction
	Food      Point
	HasFood   bool // False only when the board had no free cell left
	Bonus     BonusFood
	Score     int
	HighScore int
	Speed     int
	Phase     Phase
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	body := make([]Point, len(e.snake))
	copy(body, e.snake)

	return Snapshot{
		Tick:      e.tick,
		Width:     e.width,
		Height:    e.height,
		Snake:     body,
		Direction: e.direction,
		Food:      e.food,
		HasFood:   e.hasFood,
		Bonus:     e.bonus,
		Score:     e.score,
		HighScore: e.highScore,
		Speed:     e.speed,
		Phase:     e.phase,
	}
}

// Head returns the head position, or the zero point for an empty snake.
func (s Snapshot) Head() Point {
	if len(s.Snake) == 0 {
		return Point{}
	}
	return s.Snake[0]
}

// Len returns the snake length.
func (s Snapshot) Len() int {
	return len(s.Snake)
}
