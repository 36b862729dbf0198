package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal style through its theme.
type Color uint8

// Palette roles used by game renderers.
const (
	ColorDefault  Color = iota
	ColorPositive       // Cells holding a value above zero
	ColorNegative       // Cells holding a value below zero
	ColorZero           // Cleared cells
	ColorCursor         // Keyboard cursor frame
	ColorTitle          // Headings
	ColorMuted          // Hints and grid lines
	ColorSuccess        // Level complete overlay
	ColorWarning        // Stalled overlay
)
