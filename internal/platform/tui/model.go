package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridzero/internal/config"
	"github.com/vovakirdan/gridzero/internal/core"
	"github.com/vovakirdan/gridzero/internal/registry"
)

// Options configures the terminal frontend.
type Options struct {
	Theme         Theme
	Logger        *log.Logger
	Mouse         bool   // Capture mouse clicks
	ScreenshotDir string // Defaults to ~/.gridzero/screenshots
}

// withDefaults fills in unset options.
func (o Options) withDefaults() Options {
	if o.Theme.Colors == nil {
		o.Theme = DefaultTheme()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.ScreenshotDir == "" {
		o.ScreenshotDir = filepath.Join(config.UserDir(), "screenshots")
	}
	return o
}

// programOptions returns the Bubble Tea options for a game program.
func (o Options) programOptions() []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if o.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	back       bool // Player asked for the level picker
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts.withDefaults(),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	m.opts.Logger.Debug("game started",
		"game", m.game.ID(),
		"start_level", m.config.StartLevel+1,
		"width", m.config.ScreenW,
		"height", m.config.ScreenH,
	)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. Progress is preserved.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransition(prev, m.gameState)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logTransition records level changes and engine status changes.
func (m Model) logTransition(prev, cur core.GameState) {
	logger := m.opts.Logger

	if cur.Level != prev.Level {
		logger.Info("level loaded", "level", cur.Level, "of", cur.LevelCount)
	}
	if cur.Status == prev.Status {
		return
	}

	switch cur.Status {
	case "level_complete":
		logger.Info("level complete", "level", cur.Level)
	case "stalled":
		logger.Info("no possible moves", "level", cur.Level)
	default:
		logger.Debug("status changed", "level", cur.Level, "from", prev.Status, "to", cur.Status)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.opts.Theme)
}

// State returns the game state observed on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the player requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToPicker returns true if the player requested the level picker.
func (m Model) BackToPicker() bool {
	return m.back
}
