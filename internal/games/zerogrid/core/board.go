// Package core implements the Grid Zero simulation: boards, level templates,
// the level catalog and the play session state machine.
// It has no dependencies outside the standard library and performs no I/O.
package core

import "fmt"

// Offset is a relative row/column step to a neighboring cell.
type Offset struct {
	DR, DC int
}

// NeighborOffsets lists the 8 surrounding positions, row by row.
var NeighborOffsets = [8]Offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a rectangular grid of signed cell values.
// Cells are stored in row-major order: index = row*Cols + col.
type Board struct {
	Rows  int
	Cols  int
	Cells []int
}

// NewBoard creates a board from row-major cell values.
// The values are copied; the caller keeps ownership of cells.
func NewBoard(rows, cols int, cells []int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidTemplate, cols, rows)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: %d cells for %dx%d board", ErrInvalidTemplate, len(cells), cols, rows)
	}

	b := &Board{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]int, len(cells)),
	}
	copy(b.Cells, cells)
	return b, nil
}

// Len returns the number of cells.
func (b *Board) Len() int {
	return len(b.Cells)
}

// Index converts a row/column pair to a cell index.
func (b *Board) Index(row, col int) int {
	return row*b.Cols + col
}

// Coord converts a cell index to its row and column.
func (b *Board) Coord(index int) (row, col int) {
	return index / b.Cols, index % b.Cols
}

// InBounds returns true if the row/column pair is on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// ValidIndex returns true if index addresses a cell.
func (b *Board) ValidIndex(index int) bool {
	return index >= 0 && index < len(b.Cells)
}

// Value returns the value at index, or 0 when index is invalid.
func (b *Board) Value(index int) int {
	if !b.ValidIndex(index) {
		return 0
	}
	return b.Cells[index]
}

// Neighbors returns the in-bounds neighbor indices of a cell in
// NeighborOffsets order. Positions past the edge are skipped, not wrapped.
func (b *Board) Neighbors(index int) []int {
	if !b.ValidIndex(index) {
		return nil
	}

	row, col := b.Coord(index)
	out := make([]int, 0, len(NeighborOffsets))
	for _, o := range NeighborOffsets {
		r, c := row+o.DR, col+o.DC
		if b.InBounds(r, c) {
			out = append(out, b.Index(r, c))
		}
	}
	return out
}

// Fire zeroes the cell at index and adds its previous value to every
// in-bounds neighbor. Firing a zero cell changes nothing and returns false.
func (b *Board) Fire(index int) (bool, error) {
	if !b.ValidIndex(index) {
		return false, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, index, len(b.Cells))
	}

	value := b.Cells[index]
	if value == 0 {
		return false, nil
	}

	b.Cells[index] = 0
	for _, n := range b.Neighbors(index) {
		b.Cells[n] += value
	}
	return true, nil
}

// Status derives the board status from its current values.
func (b *Board) Status() Status {
	return Evaluate(b.Cells)
}

// Sum returns the total of all cell values.
func (b *Board) Sum() int {
	total := 0
	for _, v := range b.Cells {
		total += v
	}
	return total
}

// Values returns a copy of the cell values.
func (b *Board) Values() []int {
	out := make([]int, len(b.Cells))
	copy(out, b.Cells)
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		Rows:  b.Rows,
		Cols:  b.Cols,
		Cells: b.Values(),
	}
}

// Equal returns true if two boards have the same dimensions and values.
func (b *Board) Equal(other *Board) bool {
	if b.Rows != other.Rows || b.Cols != other.Cols || len(b.Cells) != len(other.Cells) {
		return false
	}
	for i, v := range b.Cells {
		if v != other.Cells[i] {
			return false
		}
	}
	return true
}
