package zerogrid

// GameStateType represents the current presentation state.
type GameStateType string

const (
	StatePlaying       GameStateType = "playing"
	StateLevelComplete GameStateType = "level_complete"
	StateStalled       GameStateType = "stalled"
	StatePausedSmall   GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Level    int // 1-based
	LevelID  string
	Rows     int
	Cols     int
	Board    []int
	Cursor   int
	Revealed bool
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Tick: g.tick}
	}

	state := GameStateType(g.session.Status().String())
	if g.tooSmall {
		state = StatePausedSmall
	}

	return Snapshot{
		Tick:     g.tick,
		Level:    g.session.LevelNumber(),
		LevelID:  g.session.Template().ID(),
		Rows:     g.session.Rows(),
		Cols:     g.session.Cols(),
		Board:    g.session.Board(),
		Cursor:   g.cursor,
		Revealed: g.revealed,
		State:    state,
	}
}
