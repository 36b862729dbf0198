package zerogrid

import (
	platformcore "github.com/vovakirdan/gridzero/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 3 // Height of each cell (including top border)

	compactCellWidth  = 5
	compactCellHeight = 2

	hudHeight    = 3
	footerHeight = 3
)

// layout maps board cells to screen rectangles.
type layout struct {
	boardX, boardY int
	cellW, cellH   int
	rows, cols     int
}

// width returns the board width including the closing border.
func (l layout) width() int {
	return l.cols*l.cellW + 1
}

// height returns the board height including the closing border.
func (l layout) height() int {
	return l.rows*l.cellH + 1
}

// bounds returns the rectangle covered by the board.
func (l layout) bounds() platformcore.Rect {
	return platformcore.NewRect(l.boardX, l.boardY, l.width(), l.height())
}

// cellRect returns the screen area of a cell, its top and left borders included.
func (l layout) cellRect(idx int) platformcore.Rect {
	row, col := idx/l.cols, idx%l.cols
	return platformcore.NewRect(l.boardX+col*l.cellW, l.boardY+row*l.cellH, l.cellW, l.cellH)
}

// cellAt returns the index of the cell under a screen position.
func (l layout) cellAt(x, y int) (int, bool) {
	if l.cols == 0 || l.rows == 0 {
		return 0, false
	}
	for idx := range l.rows * l.cols {
		if l.cellRect(idx).Contains(x, y) {
			return idx, true
		}
	}
	return 0, false
}

// calculateLayout centers the board and decides whether it fits the screen.
func (g *Game) calculateLayout() {
	if g.session == nil {
		return
	}
	rows, cols := g.session.Rows(), g.session.Cols()

	l := layout{rows: rows, cols: cols, cellW: cellWidth, cellH: cellHeight}
	if l.width()+2 > g.screenW || hudHeight+l.height()+footerHeight > g.screenH {
		l.cellW = compactCellWidth
		l.cellH = compactCellHeight
	}

	g.tooSmall = l.width()+2 > g.screenW || hudHeight+l.height()+footerHeight > g.screenH

	l.boardX = (g.screenW - l.width()) / 2
	l.boardY = hudHeight
	g.layout = l
}
