package core

import "fmt"

// Session is one player's run through a catalog.
// It exclusively owns its board; every level transition loads a fresh copy
// of a template so firing never touches the catalog.
type Session struct {
	catalog  *Catalog
	level    int
	template Template
	board    *Board
	status   Status
}

// NewSession starts a session at the first level.
func NewSession(catalog *Catalog) *Session {
	s := &Session{catalog: catalog}
	s.load(0)
	return s
}

// NewSessionAt starts a session at the given level (0-based).
func NewSessionAt(catalog *Catalog, level int) (*Session, error) {
	if _, err := catalog.Get(level); err != nil {
		return nil, err
	}
	s := &Session{catalog: catalog}
	s.load(level)
	return s, nil
}

// load replaces the board with a fresh copy of the level's template.
// A bad index here means the session's own bookkeeping is broken.
func (s *Session) load(level int) {
	t, err := s.catalog.Get(level)
	if err != nil {
		panic(fmt.Sprintf("zerogrid: session bookkeeping: %v", err))
	}
	s.level = level
	s.template = t
	s.board = t.Board()
	s.status = s.board.Status()
}

// Fire fires the cell at index.
//
// An index off the board returns ErrInvalidIndex. A zero cell is a no-op
// and returns nil whatever the status. Firing a nonzero cell requires
// StatusPlaying, otherwise ErrInvalidTransition is returned.
func (s *Session) Fire(index int) error {
	if !s.board.ValidIndex(index) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, index, s.board.Len())
	}
	if s.board.Cells[index] == 0 {
		return nil
	}
	if s.status != StatusPlaying {
		return fmt.Errorf("%w: fire while %s", ErrInvalidTransition, s.status)
	}

	if _, err := s.board.Fire(index); err != nil {
		return err
	}
	s.status = s.board.Status()
	return nil
}

// AdvanceLevel moves to the next level once the current one is complete.
// Completing the last level wraps back to the first.
func (s *Session) AdvanceLevel() error {
	if s.status != StatusLevelComplete {
		return fmt.Errorf("%w: advance while %s", ErrInvalidTransition, s.status)
	}

	if s.level >= s.catalog.Count()-1 {
		s.RestartGame()
		return nil
	}
	s.load(s.level + 1)
	return nil
}

// RetryLevel reloads the current level. Allowed in any status.
func (s *Session) RetryLevel() {
	s.load(s.level)
}

// RestartGame returns to the first level.
func (s *Session) RestartGame() {
	s.load(0)
}

// Status returns the current derived status.
func (s *Session) Status() Status {
	return s.status
}

// Board returns a copy of the current cell values.
func (s *Session) Board() []int {
	return s.board.Values()
}

// Value returns the value of a single cell, or 0 for an invalid index.
func (s *Session) Value(index int) int {
	return s.board.Value(index)
}

// Rows returns the current board height.
func (s *Session) Rows() int {
	return s.board.Rows
}

// Cols returns the current board width.
func (s *Session) Cols() int {
	return s.board.Cols
}

// LevelIndex returns the current level (0-based).
func (s *Session) LevelIndex() int {
	return s.level
}

// LevelNumber returns the current level (1-based, for display).
func (s *Session) LevelNumber() int {
	return s.level + 1
}

// LevelCount returns the number of levels in the catalog.
func (s *Session) LevelCount() int {
	return s.catalog.Count()
}

// IsLastLevel returns true on the final level of the catalog.
func (s *Session) IsLastLevel() bool {
	return s.level == s.catalog.Count()-1
}

// Template returns the template the current level was loaded from.
func (s *Session) Template() Template {
	return s.template
}
