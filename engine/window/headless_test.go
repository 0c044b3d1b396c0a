package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlessDefaults(t *testing.T) {
	w := NewHeadless()
	assert.Equal(t, 1280, w.Width())
	assert.Equal(t, 720, w.Height())
	assert.Equal(t, 1.0, w.PixelDensity())
	assert.True(t, w.IsRunning())
}

func TestHeadlessResizeFiresCallback(t *testing.T) {
	w := NewHeadless(WithSize(100, 100), WithPixelDensity(2))

	var gotW, gotH int
	var gotDensity float64
	w.SetResizeCallback(func(width, height int) { gotW, gotH = width, height })
	w.SetContentScaleCallback(func(density float64) { gotDensity = density })

	w.Resize(800, 600)
	w.SetContentScale(3)
	assert.Equal(t, 800, gotW)
	assert.Equal(t, 600, gotH)
	assert.Equal(t, 3.0, gotDensity)
	assert.Equal(t, 800, w.Width())
	assert.Equal(t, 3.0, w.PixelDensity())
}

func TestHeadlessInputCallbacks(t *testing.T) {
	w := NewHeadless()
	var keys []int
	var buttons []bool
	var moves, scrolls int
	w.SetKeyCallback(func(key int) { keys = append(keys, key) })
	w.SetMouseButtonCallback(func(button int, pressed bool, x, y float32) { buttons = append(buttons, pressed) })
	w.SetCursorPosCallback(func(x, y float32) { moves++ })
	w.SetScrollCallback(func(delta float32) { scrolls++ })

	w.EmitKey(common.KeyD)
	w.EmitMouseButton(common.MouseButtonLeft, true, 1, 1)
	w.EmitCursorPos(2, 2)
	w.EmitMouseButton(common.MouseButtonLeft, false, 2, 2)
	w.EmitScroll(1)

	assert.Equal(t, []int{common.KeyD}, keys)
	assert.Equal(t, []bool{true, false}, buttons)
	assert.Equal(t, 1, moves)
	assert.Equal(t, 1, scrolls)
}

func TestHeadlessEmitWithoutCallbacks(t *testing.T) {
	w := NewHeadless()
	assert.NotPanics(t, func() {
		w.Resize(1, 1)
		w.EmitKey(common.KeyR)
		w.EmitScroll(-1)
	})
}

func TestHeadlessFrameBudget(t *testing.T) {
	w := NewHeadless(WithFrameBudget(2))
	assert.True(t, w.PollEvents())
	assert.True(t, w.PollEvents())
	assert.False(t, w.PollEvents())
	assert.False(t, w.IsRunning())
	assert.Equal(t, 2, w.Polls())

	// polls after closing are not counted
	assert.False(t, w.PollEvents())
	assert.Equal(t, 2, w.Polls())
}

func TestHeadlessClose(t *testing.T) {
	w := NewHeadless()
	require.NoError(t, w.Close())
	assert.False(t, w.PollEvents())
	require.ErrorIs(t, w.Close(), ErrClosed)
}
