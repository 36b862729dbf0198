package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridzero/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Resize(int, int)                      {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreate(t *testing.T) {
	Register("test-b", func() Game { return &stubGame{id: "test-b"} })

	g, err := Create("test-b")
	require.NoError(t, err)
	assert.Equal(t, "test-b", g.ID())

	other, err := Create("test-b")
	require.NoError(t, err)
	assert.NotSame(t, g, other, "each Create returns a fresh game")
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	assert.ErrorContains(t, err, "no-such-game")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Game { return &stubGame{id: "test-dup"} })

	assert.Panics(t, func() {
		Register("test-dup", func() Game { return &stubGame{id: "test-dup"} })
	})
}
