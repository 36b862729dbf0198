package gui

import (
	"image/color"

	"github.com/vovakirdan/gridzero/internal/core"
)

// Palette maps palette roles to window colors.
type Palette struct {
	Background color.RGBA
	Colors     map[core.Color]color.RGBA
}

// DefaultPalette mirrors the terminal default theme.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{18, 18, 24, 255},
		Colors: map[core.Color]color.RGBA{
			core.ColorDefault:  {220, 220, 220, 255},
			core.ColorPositive: {255, 135, 0, 255},
			core.ColorNegative: {0, 175, 255, 255},
			core.ColorZero:     {88, 88, 88, 255},
			core.ColorCursor:   {255, 255, 0, 255},
			core.ColorTitle:    {0, 255, 255, 255},
			core.ColorMuted:    {138, 138, 138, 255},
			core.ColorSuccess:  {0, 255, 0, 255},
			core.ColorWarning:  {255, 95, 95, 255},
		},
	}
}

// Color returns the color for a palette role.
func (p Palette) Color(c core.Color) color.RGBA {
	if clr, ok := p.Colors[c]; ok {
		return clr
	}
	return p.Colors[core.ColorDefault]
}
