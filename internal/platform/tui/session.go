package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridzero/internal/core"
	"github.com/vovakirdan/gridzero/internal/games/zerogrid"
	"github.com/vovakirdan/gridzero/internal/registry"
)

// SessionModel manages the full player session: picker -> game -> picker.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	config   core.RuntimeConfig
	opts     Options
	picker   PickerModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a session. With startInGame the picker is skipped
// and play starts at cfg.StartLevel.
func NewSessionModel(cfg core.RuntimeConfig, opts Options, startInGame bool) SessionModel {
	opts = opts.withDefaults()

	m := SessionModel{
		config: cfg,
		opts:   opts,
		picker: NewPickerModel(zerogrid.Catalog(), cfg.StartLevel, cfg.ScreenW, cfg.ScreenH, opts.Theme),
	}
	if startInGame {
		m.game = m.newGame(cfg.StartLevel)
	}
	return m
}

// newGame creates a game model starting at the given level.
func (m SessionModel) newGame(level int) *Model {
	game, err := registry.Create(zerogrid.GameID)
	if err != nil {
		// Registered in the zerogrid package init
		panic(err)
	}

	cfg := m.config
	cfg.StartLevel = level
	model := NewModel(game, cfg, m.opts)
	return &model
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.game != nil {
		return m.game.Init()
	}
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates while the level picker is showing.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if picker, ok := newPicker.(PickerModel); ok {
		m.picker = picker
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if level, ok := m.picker.Selected(); ok {
		m.opts.Logger.Debug("level picked", "level", level+1)
		m.game = m.newGame(level)
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates while a game is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToPicker() {
		cursor := max(m.game.State().Level-1, 0)
		m.game = nil
		m.picker = NewPickerModel(zerogrid.Catalog(), cursor, m.config.ScreenW, m.config.ScreenH, m.opts.Theme)
		return m, m.picker.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.picker.View()
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// Run starts the terminal frontend and blocks until the player quits.
func Run(cfg core.RuntimeConfig, opts Options, startInGame bool) error {
	opts = opts.withDefaults()
	model := NewSessionModel(cfg, opts, startInGame)

	p := tea.NewProgram(model, opts.programOptions()...)
	_, err := p.Run()
	return err
}
