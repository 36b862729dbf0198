package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridzero/internal/games/zerogrid/core"
)

var (
	insideOut = []int{-1, -1, -1, -1, 1, -1, -1, -1, -1}
	ring      = []int{1, 1, 1, 1, -1, 1, 1, 1, 1}
	spread    = []int{1, 3, 2, -1, 3, -2, 1, 3, 2}
)

func referenceCatalog(t *testing.T) *core.Catalog {
	t.Helper()
	c, err := core.NewCatalog(
		core.MustTemplate("01", "Inside Out", 3, 3, insideOut),
		core.MustTemplate("02", "Ring", 3, 3, ring),
		core.MustTemplate("03", "Spread", 3, 3, spread),
	)
	require.NoError(t, err)
	return c
}

// twoStepCatalog holds levels that are each solved by firing the center.
func twoStepCatalog(t *testing.T) *core.Catalog {
	t.Helper()
	c, err := core.NewCatalog(
		core.MustTemplate("a", "A", 3, 3, insideOut),
		core.MustTemplate("b", "B", 3, 3, ring),
	)
	require.NoError(t, err)
	return c
}

func TestNewSessionStartsAtFirstLevel(t *testing.T) {
	s := core.NewSession(referenceCatalog(t))

	assert.Equal(t, 0, s.LevelIndex())
	assert.Equal(t, 1, s.LevelNumber())
	assert.Equal(t, 3, s.LevelCount())
	assert.Equal(t, insideOut, s.Board())
	assert.Equal(t, core.StatusPlaying, s.Status())
	assert.Equal(t, 3, s.Rows())
	assert.Equal(t, 3, s.Cols())
	assert.Equal(t, "Inside Out", s.Template().Name())
}

func TestSessionFireCompletesLevel(t *testing.T) {
	s := core.NewSession(referenceCatalog(t))

	require.NoError(t, s.Fire(4))
	assert.Equal(t, make([]int, 9), s.Board())
	assert.Equal(t, core.StatusLevelComplete, s.Status())
}

func TestSessionFireZeroIsNoop(t *testing.T) {
	s := core.NewSession(referenceCatalog(t))
	require.NoError(t, s.Fire(4))

	// Level complete: every cell is zero, firing any of them is still a no-op.
	for i := 0; i < 9; i++ {
		require.NoError(t, s.Fire(i))
	}
	assert.Equal(t, core.StatusLevelComplete, s.Status())
	assert.Equal(t, 0, s.LevelIndex())

	// Mid-level zero cell.
	mid, err := core.NewSessionAt(referenceCatalog(t), 2)
	require.NoError(t, err)
	require.NoError(t, mid.Fire(3))
	before := mid.Board()

	require.NoError(t, mid.Fire(3))
	assert.Equal(t, before, mid.Board())
	assert.Equal(t, core.StatusPlaying, mid.Status())
	assert.Equal(t, 2, mid.LevelIndex())
}

func TestSessionFireInvalidIndex(t *testing.T) {
	s := core.NewSession(referenceCatalog(t))
	before := s.Board()

	err := s.Fire(9)
	require.ErrorIs(t, err, core.ErrInvalidIndex)
	err = s.Fire(-1)
	require.ErrorIs(t, err, core.ErrInvalidIndex)

	assert.Equal(t, before, s.Board())
	assert.Equal(t, core.StatusPlaying, s.Status())
}

func TestSessionFireWhenStalled(t *testing.T) {
	s, err := core.NewSessionAt(referenceCatalog(t), 1)
	require.NoError(t, err)

	require.NoError(t, s.Fire(0))
	require.Equal(t, core.StatusStalled, s.Status())
	stalled := s.Board()

	err = s.Fire(1)
	require.ErrorIs(t, err, core.ErrInvalidTransition)
	assert.Equal(t, stalled, s.Board())

	// Zero cells stay a no-op even when stalled.
	require.NoError(t, s.Fire(0))
	assert.Equal(t, stalled, s.Board())
}

func TestSessionAdvanceRequiresComplete(t *testing.T) {
	s := core.NewSession(referenceCatalog(t))

	err := s.AdvanceLevel()
	require.ErrorIs(t, err, core.ErrInvalidTransition)
	assert.Equal(t, 0, s.LevelIndex())
	assert.Equal(t, insideOut, s.Board())
}

func TestSessionAdvanceLoadsNextLevel(t *testing.T) {
	s := core.NewSession(referenceCatalog(t))
	require.NoError(t, s.Fire(4))

	require.NoError(t, s.AdvanceLevel())
	assert.Equal(t, 1, s.LevelIndex())
	assert.Equal(t, 2, s.LevelNumber())
	assert.Equal(t, ring, s.Board())
	assert.Equal(t, core.StatusPlaying, s.Status())
}

func TestSessionAdvanceWrapsAfterLastLevel(t *testing.T) {
	s := core.NewSession(twoStepCatalog(t))

	require.NoError(t, s.Fire(4))
	require.NoError(t, s.AdvanceLevel())
	require.True(t, s.IsLastLevel())

	require.NoError(t, s.Fire(4))
	require.Equal(t, core.StatusLevelComplete, s.Status())
	require.NoError(t, s.AdvanceLevel())

	assert.Equal(t, 0, s.LevelIndex())
	assert.Equal(t, insideOut, s.Board())
	assert.Equal(t, core.StatusPlaying, s.Status())
}

func TestSessionRetryLevel(t *testing.T) {
	s, err := core.NewSessionAt(referenceCatalog(t), 2)
	require.NoError(t, err)

	require.NoError(t, s.Fire(3))
	require.NotEqual(t, spread, s.Board())

	s.RetryLevel()
	assert.Equal(t, 2, s.LevelIndex())
	assert.Equal(t, spread, s.Board())
	assert.Equal(t, core.StatusPlaying, s.Status())

	// Retry from a stalled board.
	s2, err := core.NewSessionAt(referenceCatalog(t), 1)
	require.NoError(t, err)
	require.NoError(t, s2.Fire(0))
	require.Equal(t, core.StatusStalled, s2.Status())
	s2.RetryLevel()
	assert.Equal(t, ring, s2.Board())
	assert.Equal(t, core.StatusPlaying, s2.Status())
}

func TestSessionRestartGame(t *testing.T) {
	s, err := core.NewSessionAt(referenceCatalog(t), 2)
	require.NoError(t, err)
	require.NoError(t, s.Fire(3))

	s.RestartGame()
	assert.Equal(t, 0, s.LevelIndex())
	assert.Equal(t, insideOut, s.Board())
	assert.Equal(t, core.StatusPlaying, s.Status())
}

func TestNewSessionAtOutOfRange(t *testing.T) {
	c := referenceCatalog(t)

	_, err := core.NewSessionAt(c, 3)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	_, err = core.NewSessionAt(c, -1)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestSessionNeverMutatesCatalog(t *testing.T) {
	c := referenceCatalog(t)
	s := core.NewSession(c)

	require.NoError(t, s.Fire(4))
	require.NoError(t, s.AdvanceLevel())
	require.NoError(t, s.Fire(0))
	s.RetryLevel()

	first, err := c.Get(0)
	require.NoError(t, err)
	second, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, insideOut, first.Cells())
	assert.Equal(t, ring, second.Cells())

	// Mutating a snapshot does not leak into the session either.
	snap := s.Board()
	snap[0] = 42
	assert.Equal(t, ring[0], s.Value(0))
}

func TestSessionInitialTerminalTemplate(t *testing.T) {
	c, err := core.NewCatalog(
		core.MustTemplate("done", "Already Solved", 2, 2, []int{0, 0, 0, 0}),
		core.MustTemplate("stuck", "One Sign", 1, 3, []int{2, 0, 1}),
	)
	require.NoError(t, err)

	s := core.NewSession(c)
	assert.Equal(t, core.StatusLevelComplete, s.Status())

	require.NoError(t, s.AdvanceLevel())
	assert.Equal(t, core.StatusStalled, s.Status())
	assert.Equal(t, 1, s.Rows())
	assert.Equal(t, 3, s.Cols())
	require.ErrorIs(t, s.Fire(0), core.ErrInvalidTransition)
}

func TestSessionTemplateFollowsLevel(t *testing.T) {
	s := core.NewSession(twoStepCatalog(t))
	assert.Equal(t, "a", s.Template().ID())

	require.NoError(t, s.Fire(4))
	require.NoError(t, s.AdvanceLevel())
	assert.Equal(t, "b", s.Template().ID())
	assert.Equal(t, ring, s.Template().Cells())

	require.NoError(t, s.Fire(4))
	s.RetryLevel()
	assert.Equal(t, "b", s.Template().ID())

	require.NoError(t, s.Fire(4))
	require.NoError(t, s.AdvanceLevel())
	assert.Equal(t, "a", s.Template().ID())
}
