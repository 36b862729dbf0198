package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())

	// Initialized with spaces
	for y := 0; y < s.Height(); y++ {
		assert.Equal(t, strings.Repeat(" ", 80), s.Row(y), "row %d", y)
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	assert.Equal(t, 'X', s.Get(5, 5))

	// Out of bounds writes are silent
	assert.NotPanics(t, func() {
		s.Set(-1, 0, 'A')
		s.Set(100, 0, 'A')
		s.Set(0, -1, 'A')
		s.Set(0, 100, 'A')
	})

	// Out of bounds get returns space
	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.Fill('X')

	s.Clear()

	for y := 0; y < 10; y++ {
		assert.Equal(t, strings.Repeat(" ", 10), s.Row(y), "row %d after Clear", y)
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')

	for y := 0; y < 5; y++ {
		assert.Equal(t, "#####", s.Row(y), "row %d after Fill", y)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	assert.Equal(t, "  Hello", strings.TrimRight(s.Row(1), " "))

	// Clipped at the right boundary: only "He" fits
	s.DrawText(18, 0, "Hello")
	assert.Equal(t, 'H', s.Get(18, 0))
	assert.Equal(t, 'e', s.Get(19, 0))
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	// "Hi" is 2 chars, centered in 20 chars starts at 9
	x := (20 - 2) / 2
	assert.Equal(t, 'H', s.Get(x, 2))
	assert.Equal(t, 'i', s.Get(x+1, 2))
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			assert.Equal(t, '#', s.Get(x, y), "(%d, %d)", x, y)
		}
	}

	assert.Equal(t, ' ', s.Get(1, 1))
	assert.Equal(t, ' ', s.Get(5, 5))
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorMuted)

	assert.Equal(t, '┌', s.Get(1, 1))
	assert.Equal(t, '┐', s.Get(5, 1))
	assert.Equal(t, '└', s.Get(1, 4))
	assert.Equal(t, '┘', s.Get(5, 4))

	for x := 2; x < 5; x++ {
		assert.Equal(t, '─', s.Get(x, 1), "top edge x=%d", x)
		assert.Equal(t, '─', s.Get(x, 4), "bottom edge x=%d", x)
	}
	for y := 2; y < 4; y++ {
		assert.Equal(t, '│', s.Get(1, y), "left edge y=%d", y)
		assert.Equal(t, '│', s.Get(5, y), "right edge y=%d", y)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Smaller keeps the top-left content
	s.Resize(8, 4)
	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 4, s.Height())
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"), "row 0 = %q", s.Row(0))

	// Larger still has it
	s.Resize(15, 8)
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"), "row 0 = %q", s.Row(0))
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	assert.True(t, strings.HasPrefix(row, "Test"), "row 2 = %q", row)
	assert.Len(t, row, 10)

	assert.Equal(t, "          ", s.Row(-1))
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawTextColored(1, 1, "+3", ColorPositive)
	assert.Equal(t, Cell{Rune: '+', Color: ColorPositive}, s.GetCell(1, 1))

	s.Set(0, 0, 'x')
	assert.Equal(t, ColorDefault, s.GetCell(0, 0).Color)

	s.DrawBox(NewRect(0, 0, 10, 3), ColorMuted)
	assert.Equal(t, Cell{Rune: '┘', Color: ColorMuted}, s.GetCell(9, 2))

	s.Clear()
	assert.Equal(t, Cell{Rune: ' ', Color: ColorDefault}, s.GetCell(1, 1))

	// Out of bounds reads are blank.
	assert.Equal(t, ' ', s.GetCell(-1, 0).Rune)
}

func TestScreenResizePreservesColor(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(1, 1, '#', ColorNegative)

	s.Resize(8, 8)
	assert.Equal(t, Cell{Rune: '#', Color: ColorNegative}, s.GetCell(1, 1))
}
