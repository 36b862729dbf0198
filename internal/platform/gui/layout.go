package gui

// Pixel size of one character cell.
const (
	CellW = 10
	CellH = 20
)

// gridSize returns how many character cells fit in a window.
func gridSize(w, h int) (cols, rows int) {
	return max(w/CellW, 1), max(h/CellH, 1)
}

// cellAt converts a pixel position to a character cell position.
func cellAt(px, py int) (x, y int) {
	if px < 0 || py < 0 {
		return -1, -1
	}
	return px / CellW, py / CellH
}

// segments lists which edges of a cell a box-drawing rune connects to.
type segments struct {
	left, right, up, down bool
}

// boxSegments returns the segments for box-drawing runes. ok is false for
// every other rune, which is drawn as text.
func boxSegments(r rune) (segments, bool) {
	switch r {
	case '─':
		return segments{left: true, right: true}, true
	case '│':
		return segments{up: true, down: true}, true
	case '┌':
		return segments{right: true, down: true}, true
	case '┐':
		return segments{left: true, down: true}, true
	case '└':
		return segments{right: true, up: true}, true
	case '┘':
		return segments{left: true, up: true}, true
	case '├':
		return segments{right: true, up: true, down: true}, true
	case '┤':
		return segments{left: true, up: true, down: true}, true
	case '┬':
		return segments{left: true, right: true, down: true}, true
	case '┴':
		return segments{left: true, right: true, up: true}, true
	case '┼':
		return segments{left: true, right: true, up: true, down: true}, true
	}
	return segments{}, false
}
