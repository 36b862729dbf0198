package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridzero/internal/core"
)

// Theme contains the visual styles for the terminal frontend.
type Theme struct {
	// Screen colors, keyed by palette role
	Colors map[core.Color]lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuDescription lipgloss.Style
	TableHeader     lipgloss.Style
	TableSelected   lipgloss.Style
	Border          lipgloss.Color
	Help            lipgloss.Style
}

// Style returns the style for a palette role.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.Colors[c]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Colors: map[core.Color]lipgloss.Style{
			core.ColorDefault:  lipgloss.NewStyle(),
			core.ColorPositive: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true), // Orange
			core.ColorNegative: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),  // Sky blue
			core.ColorZero:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),            // Dim gray
			core.ColorCursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // Bright yellow
			core.ColorTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
			core.ColorMuted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			core.ColorSuccess:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
			core.ColorWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		TableHeader:     lipgloss.NewStyle().Bold(true),
		TableSelected:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Border:          lipgloss.Color("240"),
		Help:            lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Colors = cloneColors(theme.Colors)
	theme.Colors[core.ColorPositive] = lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true) // Neon pink
	theme.Colors[core.ColorNegative] = lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true)  // Neon cyan
	theme.Colors[core.ColorSuccess] = lipgloss.NewStyle().Foreground(lipgloss.Color("118")).Bold(true)  // Neon green
	theme.Colors[core.ColorCursor] = lipgloss.NewStyle().Foreground(lipgloss.Color("227")).Bold(true)
	theme.TableSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("199"))
	return theme
}

// MonochromeTheme returns a grayscale theme. Signs stay readable through weight.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Colors = cloneColors(theme.Colors)
	theme.Colors[core.ColorPositive] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Colors[core.ColorNegative] = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Underline(true)
	theme.Colors[core.ColorZero] = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	theme.Colors[core.ColorCursor] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Colors[core.ColorTitle] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Colors[core.ColorSuccess] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Colors[core.ColorWarning] = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true)
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.TableSelected = lipgloss.NewStyle().Reverse(true)
	return theme
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"neon":    NeonTheme,
	"mono":    MonochromeTheme,
}

// ThemeByName returns a named theme. Unknown names yield the default theme and false.
func ThemeByName(name string) (Theme, bool) {
	if fn, ok := themes[name]; ok {
		return fn(), true
	}
	return DefaultTheme(), false
}

// ThemeNames returns the available theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func cloneColors(src map[core.Color]lipgloss.Style) map[core.Color]lipgloss.Style {
	dst := make(map[core.Color]lipgloss.Style, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
