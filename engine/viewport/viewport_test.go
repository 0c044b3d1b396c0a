package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingCamera struct {
	aspect float32
	calls  int
}

func (c *recordingCamera) SetAspect(aspect float32) {
	c.aspect = aspect
	c.calls++
}

type recordingRenderer struct {
	width, height int
	ratio         float64
}

func (r *recordingRenderer) SetSize(width, height int) {
	r.width, r.height = width, height
}

func (r *recordingRenderer) SetPixelRatio(ratio float64) {
	r.ratio = ratio
}

func TestClampDensity(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 1, want: 1},
		{in: 1.5, want: 1.5},
		{in: 2, want: 2},
		{in: 3, want: 2},
		{in: 4.5, want: 2},
		{in: 0, want: 1},
		{in: -2, want: 1},
		{in: math.NaN(), want: 1},
		{in: math.Inf(1), want: 1},
	}
	for _, tt := range tests {
		got := ClampDensity(tt.in)
		assert.Equal(t, tt.want, got, "density %v", tt.in)
		assert.LessOrEqual(t, got, MaxPixelDensity)
	}
}

func TestResizeScenario(t *testing.T) {
	cam := &recordingCamera{}
	r := &recordingRenderer{}
	m := NewManager(WithCamera(cam), WithRenderer(r))

	m.Resize(800, 600, 3)
	assert.InDelta(t, 1.333, cam.aspect, 0.001)
	assert.Equal(t, 800, r.width)
	assert.Equal(t, 600, r.height)
	assert.Equal(t, 2.0, r.ratio)

	m.Resize(1600, 900, 3)
	assert.InDelta(t, 1.778, cam.aspect, 0.001)
	assert.Equal(t, 1600, r.width)
	assert.Equal(t, 900, r.height)

	w, h := m.DrawingBufferSize()
	assert.Equal(t, 3200, w)
	assert.Equal(t, 1800, h)
}

func TestResizeIdempotent(t *testing.T) {
	cam := &recordingCamera{}
	r := &recordingRenderer{}
	m := NewManager(WithCamera(cam), WithRenderer(r))

	m.Resize(1024, 768, 1.25)
	aspect, width, height, ratio := cam.aspect, r.width, r.height, r.ratio
	size := m.Size()

	m.Resize(1024, 768, 1.25)
	assert.Equal(t, aspect, cam.aspect)
	assert.Equal(t, width, r.width)
	assert.Equal(t, height, r.height)
	assert.Equal(t, ratio, r.ratio)
	assert.Equal(t, size, m.Size())
}

func TestResizeZeroDimensionKeepsPreviousState(t *testing.T) {
	cam := &recordingCamera{}
	r := &recordingRenderer{}
	m := NewManager(WithCamera(cam), WithRenderer(r))

	m.Resize(800, 600, 1)
	calls := cam.calls

	m.Resize(0, 600, 1)
	assert.Equal(t, calls, cam.calls)
	assert.InDelta(t, 1.333, cam.aspect, 0.001)
	assert.Equal(t, 800, r.width)
	assert.Equal(t, Size{Width: 0, Height: 600, PixelDensity: 1}, m.Size())
	assert.Zero(t, m.Size().Aspect())

	m.Resize(-5, -5, 1)
	assert.Equal(t, Size{PixelDensity: 1}, m.Size())
}

func TestSetDensityKeepsDimensions(t *testing.T) {
	r := &recordingRenderer{}
	m := NewManager(WithRenderer(r))
	m.Resize(640, 480, 1)

	m.SetDensity(2.5)
	assert.Equal(t, 640, m.Size().Width)
	assert.Equal(t, 2.0, r.ratio)
}

func TestResizeWithoutTargets(t *testing.T) {
	m := NewManager()
	assert.NotPanics(t, func() { m.Resize(100, 50, 1) })
	assert.Equal(t, float32(2), m.Size().Aspect())
}
