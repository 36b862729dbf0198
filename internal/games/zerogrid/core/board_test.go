package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridzero/internal/games/zerogrid/core"
)

func mustBoard(t *testing.T, rows, cols int, cells ...int) *core.Board {
	t.Helper()
	b, err := core.NewBoard(rows, cols, cells)
	require.NoError(t, err)
	return b
}

func TestFireScenarios(t *testing.T) {
	tests := []struct {
		name   string
		cells  []int
		index  int
		want   []int
		status core.Status
	}{
		{
			name:   "center plus one clears inverted cross",
			cells:  []int{-1, -1, -1, -1, 1, -1, -1, -1, -1},
			index:  4,
			want:   []int{0, 0, 0, 0, 0, 0, 0, 0, 0},
			status: core.StatusLevelComplete,
		},
		{
			name:   "center minus one clears ring",
			cells:  []int{1, 1, 1, 1, -1, 1, 1, 1, 1},
			index:  4,
			want:   []int{0, 0, 0, 0, 0, 0, 0, 0, 0},
			status: core.StatusLevelComplete,
		},
		{
			name:   "left edge negative touches five neighbors",
			cells:  []int{1, 3, 2, -1, 3, -2, 1, 3, 2},
			index:  3,
			want:   []int{0, 2, 2, 0, 2, -2, 0, 2, 2},
			status: core.StatusPlaying,
		},
		{
			name:   "corner spill leaves all non-negative",
			cells:  []int{1, 1, 1, 1, -1, 1, 1, 1, 1},
			index:  0,
			want:   []int{0, 2, 1, 2, 0, 1, 1, 1, 1},
			status: core.StatusStalled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, 3, 3, tt.cells...)

			changed, err := b.Fire(tt.index)
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, tt.want, b.Cells)
			assert.Equal(t, tt.status, b.Status())
		})
	}
}

func TestNeighbors(t *testing.T) {
	b := mustBoard(t, 3, 3, make([]int, 9)...)

	assert.Equal(t, []int{1, 3, 4}, b.Neighbors(0), "top-left corner")
	assert.Equal(t, []int{4, 5, 7}, b.Neighbors(8), "bottom-right corner")
	assert.Equal(t, []int{0, 1, 4, 6, 7}, b.Neighbors(3), "left edge")
	assert.Equal(t, []int{0, 2, 3, 4, 5}, b.Neighbors(1), "top edge")
	assert.Len(t, b.Neighbors(4), 8, "center")
	assert.Nil(t, b.Neighbors(9), "off board")
	assert.Nil(t, b.Neighbors(-1), "negative index")
}

func TestNeighborsNonSquare(t *testing.T) {
	// 2 rows x 4 cols:
	//  0 1 2 3
	//  4 5 6 7
	b := mustBoard(t, 2, 4, make([]int, 8)...)

	assert.Equal(t, []int{1, 4, 5}, b.Neighbors(0))
	assert.Equal(t, []int{0, 2, 4, 5, 6}, b.Neighbors(1))
	assert.Equal(t, []int{2, 6, 7}, b.Neighbors(3), "no wraparound to the next row")
	assert.Equal(t, []int{2, 3, 6}, b.Neighbors(7))

	single := mustBoard(t, 1, 1, 5)
	assert.Empty(t, single.Neighbors(0))
}

func TestFireTotalFollowsNeighborCount(t *testing.T) {
	boards := []*core.Board{
		mustBoard(t, 3, 3, 1, 3, 2, -1, 3, -2, 1, 3, 2),
		mustBoard(t, 3, 3, -1, -1, -1, -1, 1, -1, -1, -1, -1),
		mustBoard(t, 2, 4, 5, -3, 0, 7, -2, 4, -6, 1),
		mustBoard(t, 1, 1, 9),
	}

	for _, start := range boards {
		for i := range start.Cells {
			b := start.Clone()
			value := b.Cells[i]
			before := b.Sum()
			inBounds := len(b.Neighbors(i))

			_, err := b.Fire(i)
			require.NoError(t, err)

			want := before - value + value*inBounds
			assert.Equal(t, want, b.Sum(), "fire %d on %v", i, start.Cells)
		}
	}

	// Center of a 3x3 has all 8 neighbors: the total moves by 7 times the value.
	b := mustBoard(t, 3, 3, 2, -1, 0, 4, -3, 1, 0, 2, -2)
	before := b.Sum()
	value := b.Cells[4]
	_, err := b.Fire(4)
	require.NoError(t, err)
	assert.Equal(t, before+7*value, b.Sum())
	assert.Equal(t, -18, b.Sum())
}

func TestFireZeroIsNoop(t *testing.T) {
	b := mustBoard(t, 3, 3, 1, 0, -1, 0, 0, 0, 2, 0, -2)
	before := b.Clone()

	changed, err := b.Fire(4)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.True(t, b.Equal(before))
}

func TestFireInvalidIndex(t *testing.T) {
	b := mustBoard(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	before := b.Clone()

	for _, idx := range []int{-1, 9, 100} {
		changed, err := b.Fire(idx)
		require.ErrorIs(t, err, core.ErrInvalidIndex, "index %d", idx)
		assert.False(t, changed)
	}
	assert.True(t, b.Equal(before), "invalid fire must not mutate")
}

func TestNewBoardValidation(t *testing.T) {
	_, err := core.NewBoard(3, 3, []int{1, 2, 3})
	assert.ErrorIs(t, err, core.ErrInvalidTemplate)

	_, err = core.NewBoard(0, 3, nil)
	assert.ErrorIs(t, err, core.ErrInvalidTemplate)

	cells := []int{1, -1}
	b, err := core.NewBoard(1, 2, cells)
	require.NoError(t, err)
	cells[0] = 99
	assert.Equal(t, 1, b.Cells[0], "board must not alias caller slice")
}

func TestCoordRoundTrip(t *testing.T) {
	b := mustBoard(t, 3, 4, make([]int, 12)...)
	for i := range b.Cells {
		row, col := b.Coord(i)
		assert.Equal(t, i/4, row)
		assert.Equal(t, i%4, col)
		assert.Equal(t, i, b.Index(row, col))
	}
}
