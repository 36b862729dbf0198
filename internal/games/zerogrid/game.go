// Package zerogrid provides the Grid Zero puzzle for the platforms.
// Game logic lives in the core subpackage; this package adds the cursor,
// mouse hit-testing, the delayed result overlay and rendering.
package zerogrid

import (
	"errors"
	"sync"

	platformcore "github.com/vovakirdan/gridzero/internal/core"
	"github.com/vovakirdan/gridzero/internal/games/zerogrid/core"
	"github.com/vovakirdan/gridzero/internal/games/zerogrid/levels"
	"github.com/vovakirdan/gridzero/internal/registry"
)

// GameID is the registry identifier.
const GameID = "zerogrid"

// Game implements registry.Game on top of a core.Session.
type Game struct {
	catalog *core.Catalog
	session *core.Session

	tick    uint64
	screenW int
	screenH int
	cursor  int // Cell index under the keyboard cursor

	// Result overlay timing, in ticks
	revealTicks   int
	terminalTicks int
	revealed      bool

	message  string // One-line feedback under the board
	tooSmall bool
	layout   layout
}

var (
	catalogMu sync.RWMutex
	catalog   *core.Catalog
)

// SetCatalog sets the catalog used by games created through the registry.
// nil restores the built-in levels.
func SetCatalog(c *core.Catalog) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalog = c
}

// Catalog returns the catalog used by games created through the registry.
func Catalog() *core.Catalog {
	catalogMu.RLock()
	c := catalog
	catalogMu.RUnlock()

	if c == nil {
		return levels.Default()
	}
	return c
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New(Catalog())
	})
}

// New creates a game over the given catalog.
func New(c *core.Catalog) *Game {
	return &Game{catalog: c}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Grid Zero"
}

// Reset starts a new session at cfg.StartLevel, falling back to the first level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.revealTicks = cfg.RevealTicks()

	session, err := core.NewSessionAt(g.catalog, cfg.StartLevel)
	if err != nil {
		session = core.NewSession(g.catalog)
	}
	g.session = session
	g.levelChanged()
}

// Resize updates the layout for new screen dimensions. Progress is kept.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.calculateLayout()
}

// levelChanged resets per-level presentation state after a transition.
func (g *Game) levelChanged() {
	g.cursor = (g.session.Rows()/2)*g.session.Cols() + g.session.Cols()/2
	g.terminalTicks = 0
	g.revealed = false
	g.message = ""
	g.calculateLayout()
}

// Step applies one tick of input and advances the reveal timer.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall || g.session == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if !in.Empty() {
		g.message = ""
	}

	if g.revealed {
		g.handleOverlayInput(in)
	} else {
		g.handleBoardInput(in)
	}

	g.updateReveal()

	return platformcore.StepResult{State: g.State()}
}

// handleBoardInput processes input while the board is visible.
func (g *Game) handleBoardInput(in platformcore.InputFrame) {
	switch {
	case in.Has(platformcore.ActionRestart):
		g.session.RestartGame()
		g.levelChanged()
		return
	case in.Has(platformcore.ActionRetry):
		g.session.RetryLevel()
		g.levelChanged()
		return
	case in.Has(platformcore.ActionNext):
		// Skip the reveal delay once the level is won.
		if g.session.Status() == core.StatusLevelComplete {
			g.advance()
		}
		return
	}

	g.moveCursor(in)

	if in.Click != nil {
		if idx, ok := g.layout.cellAt(in.Click.X, in.Click.Y); ok {
			g.cursor = idx
			g.fire(idx)
		}
		return
	}

	if in.Has(platformcore.ActionFire) {
		g.fire(g.cursor)
	}
}

// handleOverlayInput processes input while a result overlay is showing.
// Fire, Enter and a click on the button trigger the overlay's single action.
func (g *Game) handleOverlayInput(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionRestart) {
		g.session.RestartGame()
		g.levelChanged()
		return
	}

	pressed := in.Has(platformcore.ActionFire)
	if v, ok := g.overlay(); ok && in.Click != nil && v.hit.Contains(in.Click.X, in.Click.Y) {
		pressed = true
	}

	switch g.session.Status() {
	case core.StatusLevelComplete:
		if pressed || in.Has(platformcore.ActionNext) {
			g.advance()
		}
	case core.StatusStalled:
		if pressed || in.Has(platformcore.ActionRetry) {
			g.session.RetryLevel()
			g.levelChanged()
		}
	}
}

func (g *Game) advance() {
	if err := g.session.AdvanceLevel(); err != nil {
		g.message = "Clear every cell first"
		return
	}
	g.levelChanged()
}

func (g *Game) fire(idx int) {
	err := g.session.Fire(idx)
	switch {
	case err == nil:
	case errors.Is(err, core.ErrInvalidTransition):
		g.message = "No possible moves"
	default:
		g.message = err.Error()
	}
}

// moveCursor applies cursor actions, clamped to the board.
func (g *Game) moveCursor(in platformcore.InputFrame) {
	rows, cols := g.session.Rows(), g.session.Cols()
	row, col := g.cursor/cols, g.cursor%cols

	if in.Has(platformcore.ActionUp) {
		row--
	}
	if in.Has(platformcore.ActionDown) {
		row++
	}
	if in.Has(platformcore.ActionLeft) {
		col--
	}
	if in.Has(platformcore.ActionRight) {
		col++
	}

	row = platformcore.Clamp(row, 0, rows-1)
	col = platformcore.Clamp(col, 0, cols-1)
	g.cursor = row*cols + col
}

// updateReveal counts ticks since the board turned terminal and shows the
// overlay once the configured delay has passed.
func (g *Game) updateReveal() {
	if !g.session.Status().Terminal() {
		g.terminalTicks = 0
		g.revealed = false
		return
	}
	if g.terminalTicks >= g.revealTicks {
		g.revealed = true
	}
	g.terminalTicks++
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{}
	}
	status := g.session.Status()
	return platformcore.GameState{
		Level:      g.session.LevelNumber(),
		LevelCount: g.session.LevelCount(),
		Status:     status.String(),
		Terminal:   status.Terminal(),
		Revealed:   g.revealed,
	}
}

// Session exposes the underlying engine session for read-only callers.
func (g *Game) Session() *core.Session {
	return g.session
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Space/Click: Fire | R: Retry | Shift+R: Restart | Q: Quit"
}
