package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gridcore "github.com/vovakirdan/gridzero/internal/games/zerogrid/core"
)

// Picker layout constants
const (
	pickerChrome   = 9 // Title, subtitle, borders and help
	minTableHeight = 3
)

// PickerKeyMap defines the key bindings for the level picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.Quit},
	}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PickerModel is the level picker screen.
type PickerModel struct {
	templates []gridcore.Template
	table     table.Model
	help      help.Model
	keys      PickerKeyMap
	theme     Theme
	width     int
	height    int
	selected  int // -1 while choosing
	quitting  bool
}

// NewPickerModel creates a level picker with the cursor on the given level.
func NewPickerModel(catalog *gridcore.Catalog, cursor, width, height int, theme Theme) PickerModel {
	h := help.New()
	h.ShowAll = false

	m := PickerModel{
		templates: catalog.Templates(),
		keys:      DefaultPickerKeyMap(),
		help:      h,
		theme:     theme,
		width:     width,
		height:    height,
		selected:  -1,
	}
	m.table = m.createTable()
	m.table.SetCursor(cursor)

	return m
}

// createTable creates the level table.
func (m *PickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "ID", Width: 10},
		{Title: "Name", Width: 24},
		{Title: "Size", Width: 6},
	}

	rows := make([]table.Row, len(m.templates))
	for i, tpl := range m.templates {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			tpl.ID(),
			tpl.Name(),
			fmt.Sprintf("%dx%d", tpl.Cols(), tpl.Rows()),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-pickerChrome, minTableHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		BorderBottom(true).
		Inherit(m.theme.TableHeader)
	s.Selected = m.theme.TableSelected
	t.SetStyles(s)

	return t
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.templates) > 0 {
				m.selected = m.table.Cursor()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(m.height-pickerChrome, minTableHeight))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("G R I D   Z E R O"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level"), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Help.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Selected returns the chosen level index once the player has picked one.
func (m PickerModel) Selected() (int, bool) {
	return m.selected, m.selected >= 0
}

// IsQuitting returns true if the player wants to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers every line of text within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		w := lipgloss.Width(line)
		if w >= width {
			continue
		}
		lines[i] = strings.Repeat(" ", (width-w)/2) + line
	}
	return strings.Join(lines, "\n")
}
