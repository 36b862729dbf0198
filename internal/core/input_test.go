package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable

	assert.False(t, f.Has(ActionFire))

	f.Set(ActionFire)
	assert.True(t, f.Has(ActionFire))
	assert.False(t, f.Has(ActionNext))
}

func TestInputFrameClick(t *testing.T) {
	f := NewInputFrame()
	assert.True(t, f.Empty())

	f.SetClick(7, 3)
	assert.False(t, f.Empty())
	require.NotNil(t, f.Click)
	assert.Equal(t, 7, f.Click.X)
	assert.Equal(t, 3, f.Click.Y)

	f.Set(ActionRetry)
	f.Clear()
	assert.True(t, f.Empty())
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionFire:    "Fire",
		ActionNext:    "Next",
		ActionRetry:   "Retry",
		ActionRestart: "Restart",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}

	for a, want := range tests {
		assert.Equal(t, want, a.String(), "Action(%d)", a)
	}
}
