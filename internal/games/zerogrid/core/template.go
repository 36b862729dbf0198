package core

import "fmt"

// Template is an immutable level starting position.
// Its cells are never handed out by reference: Cells and Board both copy.
type Template struct {
	id    string
	name  string
	rows  int
	cols  int
	cells []int
}

// NewTemplate validates and captures a level layout.
func NewTemplate(id, name string, rows, cols int, cells []int) (Template, error) {
	if rows <= 0 || cols <= 0 {
		return Template{}, fmt.Errorf("%w: level %q has size %dx%d", ErrInvalidTemplate, id, cols, rows)
	}
	if len(cells) != rows*cols {
		return Template{}, fmt.Errorf("%w: level %q has %d cells, want %d", ErrInvalidTemplate, id, len(cells), rows*cols)
	}

	own := make([]int, len(cells))
	copy(own, cells)
	return Template{
		id:    id,
		name:  name,
		rows:  rows,
		cols:  cols,
		cells: own,
	}, nil
}

// MustTemplate is like NewTemplate but panics on invalid input.
// Intended for package-level level tables.
func MustTemplate(id, name string, rows, cols int, cells []int) Template {
	t, err := NewTemplate(id, name, rows, cols, cells)
	if err != nil {
		panic(err)
	}
	return t
}

// ID returns the level identifier.
func (t Template) ID() string { return t.id }

// Name returns the display name.
func (t Template) Name() string { return t.name }

// Rows returns the board height.
func (t Template) Rows() int { return t.rows }

// Cols returns the board width.
func (t Template) Cols() int { return t.cols }

// Len returns the number of cells.
func (t Template) Len() int { return len(t.cells) }

// Cells returns a copy of the starting values.
func (t Template) Cells() []int {
	out := make([]int, len(t.cells))
	copy(out, t.cells)
	return out
}

// Board returns a fresh board initialized from the template.
func (t Template) Board() *Board {
	return &Board{
		Rows:  t.rows,
		Cols:  t.cols,
		Cells: t.Cells(),
	}
}
