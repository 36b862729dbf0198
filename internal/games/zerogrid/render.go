package zerogrid

import (
	"fmt"
	"strconv"

	platformcore "github.com/vovakirdan/gridzero/internal/core"
	"github.com/vovakirdan/gridzero/internal/games/zerogrid/core"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.session == nil {
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)

	if g.revealed {
		g.renderOverlay(dst)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorWarning)
	dst.DrawTextCentered(y+1, "Please resize terminal", platformcore.ColorMuted)
}

// renderHUD draws the title and level line.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextCentered(0, "GRID ZERO", platformcore.ColorTitle)

	info := fmt.Sprintf("Level %d/%d  %s", g.session.LevelNumber(), g.session.LevelCount(), g.session.Template().Name())
	dst.DrawTextCentered(1, info, platformcore.ColorDefault)
}

// renderBoard draws the grid lines, the cell values and the cursor frame.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	l := g.layout

	for y := range l.rows + 1 {
		for x := range l.cols + 1 {
			px := l.boardX + x*l.cellW
			py := l.boardY + y*l.cellH

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == l.cols:
				corner = '┐'
			case y == l.rows && x == 0:
				corner = '└'
			case y == l.rows && x == l.cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == l.rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == l.cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, platformcore.ColorMuted)

			if x < l.cols {
				for i := 1; i < l.cellW; i++ {
					dst.SetColored(px+i, py, '─', platformcore.ColorMuted)
				}
			}
			if y < l.rows {
				for i := 1; i < l.cellH; i++ {
					dst.SetColored(px, py+i, '│', platformcore.ColorMuted)
				}
			}
		}
	}

	for idx := range l.rows * l.cols {
		val := g.session.Value(idx)
		r := g.layout.cellRect(idx)

		text := cellText(val, l.cellW-1)
		padLeft := max((l.cellW-1-len(text))/2, 0)
		dst.DrawTextColored(r.X+1+padLeft, r.Y+1+(l.cellH-2)/2, text, valueColor(val))
	}

	if !g.revealed {
		r := l.cellRect(g.cursor)
		dst.DrawBox(platformcore.NewRect(r.X, r.Y, r.W+1, r.H+1), platformcore.ColorCursor)
	}
}

// cellText formats a value to fit width columns.
// Values too wide for the cell are cut and end in '~'.
func cellText(v, width int) string {
	text := strconv.Itoa(v)
	if len(text) <= width {
		return text
	}
	if width <= 1 {
		return "~"
	}
	return text[:width-1] + "~"
}

// valueColor picks the palette role for a cell value.
func valueColor(v int) platformcore.Color {
	switch {
	case v > 0:
		return platformcore.ColorPositive
	case v < 0:
		return platformcore.ColorNegative
	default:
		return platformcore.ColorZero
	}
}

// renderFooter draws feedback and control hints below the board.
func (g *Game) renderFooter(dst *platformcore.Screen) {
	y := g.layout.boardY + g.layout.height() + 1

	if g.message != "" {
		dst.DrawTextCentered(y, g.message, platformcore.ColorWarning)
	} else {
		dst.DrawTextCentered(y, "Clear every cell to zero", platformcore.ColorMuted)
	}
	dst.DrawTextCentered(y+1, g.Controls(), platformcore.ColorMuted)
}

// overlayView describes the result overlay for the current status.
type overlayView struct {
	lines  []string
	button string
	color  platformcore.Color
	box    platformcore.Rect
	hit    platformcore.Rect // Clickable button area
}

// overlay builds the result overlay, centered over the board.
// ok is false while the board is still in play.
func (g *Game) overlay() (overlayView, bool) {
	var v overlayView

	switch g.session.Status() {
	case core.StatusLevelComplete:
		v.color = platformcore.ColorSuccess
		v.lines = append(v.lines, fmt.Sprintf("Level %d Complete!", g.session.LevelNumber()))
		if g.session.IsLastLevel() {
			v.lines = append(v.lines, "All levels cleared")
			v.button = "[ Play Again ]"
		} else {
			v.lines = append(v.lines, fmt.Sprintf("Next: Level %d", g.session.LevelNumber()+1))
			v.button = "[ Next Level ]"
		}
	case core.StatusStalled:
		v.color = platformcore.ColorWarning
		v.lines = append(v.lines, "No possible moves!", "Every value has one sign")
		v.button = "[ Restart ]"
	default:
		return v, false
	}

	maxLen := len(v.button)
	for _, line := range v.lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(v.lines) + 4 // Border, blank row, button
	centerX, centerY := g.layout.bounds().Center()
	v.box = platformcore.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)
	v.hit = platformcore.NewRect(centerX-len(v.button)/2, v.box.Bottom()-2, len(v.button), 1)

	return v, true
}

// renderOverlay draws the result overlay.
func (g *Game) renderOverlay(dst *platformcore.Screen) {
	v, ok := g.overlay()
	if !ok {
		return
	}

	inner := platformcore.NewRect(v.box.X+1, v.box.Y+1, v.box.W-2, v.box.H-2)
	dst.DrawRect(inner, ' ')
	dst.DrawBox(v.box, v.color)

	centerX, _ := v.box.Center()
	for i, line := range v.lines {
		dst.DrawTextColored(centerX-len(line)/2, v.box.Y+1+i, line, v.color)
	}
	dst.DrawTextColored(v.hit.X, v.hit.Y, v.button, platformcore.ColorTitle)
}
