// Package gui provides a desktop window frontend built on Ebitengine.
// It drives the same registry.Game as the terminal and draws its character
// screen with vector lines for box-drawing runes and a bitmap font for text.
package gui

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/gridzero/internal/core"
	"github.com/vovakirdan/gridzero/internal/registry"
)

// keyActions maps keys to game actions. R is handled separately for Shift+R.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyK:          core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyJ:          core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyH:          core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyL:          core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeySpace:      core.ActionFire,
	ebiten.KeyEnter:      core.ActionFire,
	ebiten.KeyN:          core.ActionNext,
	ebiten.KeyQ:          core.ActionQuit,
	ebiten.KeyEscape:     core.ActionQuit,
}

// Game adapts a registry.Game to ebiten.Game.
type Game struct {
	game    registry.Game
	screen  *core.Screen
	config  core.RuntimeConfig
	palette Palette
	face    text.Face
	logger  *log.Logger
	frame   core.InputFrame
	state   core.GameState
}

// New creates a window frontend for the game and resets it.
func New(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		palette: DefaultPalette(),
		face:    text.NewGoXFace(basicfont.Face7x13),
		logger:  logger,
		frame:   core.NewInputFrame(),
	}
	g.game.Reset(cfg)
	return g
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	g := New(game, cfg, logger)

	ebiten.SetWindowSize(cfg.ScreenW*CellW, cfg.ScreenH*CellH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	return ebiten.RunGame(g)
}

// Update collects input and steps the game once per tick.
func (g *Game) Update() error {
	for k, action := range keyActions {
		if inpututil.IsKeyJustPressed(k) {
			g.frame.Set(action)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.frame.Set(core.ActionRestart)
		} else {
			g.frame.Set(core.ActionRetry)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := cellAt(ebiten.CursorPosition())
		g.frame.SetClick(x, y)
	}

	if g.frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	prev := g.state
	g.state = g.game.Step(g.frame).State
	g.frame.Clear()

	if g.state.Level != prev.Level {
		g.logger.Info("level loaded", "level", g.state.Level, "of", g.state.LevelCount)
	}
	if g.state.Status != prev.Status {
		g.logger.Debug("status changed", "level", g.state.Level, "from", prev.Status, "to", g.state.Status)
	}

	return nil
}

// Draw renders the game's character screen into the window.
func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(g.palette.Background)
	g.game.Render(g.screen)

	for y := range g.screen.Height() {
		for x := range g.screen.Width() {
			cell := g.screen.GetCell(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			g.drawCell(dst, x, y, cell)
		}
	}
}

// drawCell draws one character cell.
func (g *Game) drawCell(dst *ebiten.Image, x, y int, cell core.Cell) {
	clr := g.palette.Color(cell.Color)
	px := float32(x * CellW)
	py := float32(y * CellH)

	if seg, ok := boxSegments(cell.Rune); ok {
		cx := px + CellW/2
		cy := py + CellH/2
		if seg.left {
			vector.StrokeLine(dst, px, cy, cx, cy, 1, clr, false)
		}
		if seg.right {
			vector.StrokeLine(dst, cx, cy, px+CellW, cy, 1, clr, false)
		}
		if seg.up {
			vector.StrokeLine(dst, cx, py, cx, cy, 1, clr, false)
		}
		if seg.down {
			vector.StrokeLine(dst, cx, cy, cx, py+CellH, 1, clr, false)
		}
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(px)+1, float64(py)+3)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, string(cell.Rune), g.face, op)
}

// Layout resizes the character screen to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cols, rows := gridSize(outsideWidth, outsideHeight)
	if cols != g.screen.Width() || rows != g.screen.Height() {
		g.screen.Resize(cols, rows)
		g.game.Resize(cols, rows)
	}
	return outsideWidth, outsideHeight
}
