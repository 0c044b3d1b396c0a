package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/stretchr/testify/assert"
)

func newTestControls(options ...CameraControllerOption) CameraController {
	oc := NewOrbitControls(options...)
	oc.SetPosition(0, 0, 2)
	oc.SetViewportSize(800, 600)
	return oc
}

func TestUpdateWithoutInputDoesNotMove(t *testing.T) {
	oc := newTestControls(WithDamping(true))
	assert.False(t, oc.Update())
	assert.InDelta(t, 2, oc.Position().Z, 1e-5)
}

func TestRotateWithoutDampingAppliesImmediately(t *testing.T) {
	oc := newTestControls()
	oc.RotateLeft(-math.Pi / 2)
	assert.True(t, oc.Update())

	p := oc.Position()
	assert.InDelta(t, 2, p.X, 1e-5)
	assert.InDelta(t, 0, p.Z, 1e-5)
	assert.InDelta(t, 2, oc.Radius(), 1e-5)

	// nothing left pending
	assert.False(t, oc.Update())
}

func TestDampingAppliesFractionAndDecays(t *testing.T) {
	oc := newTestControls(WithDamping(true))
	assert.Equal(t, float32(0.05), oc.DampingFactor())

	total := float32(0.5)
	oc.RotateLeft(-total)
	oc.Update()
	theta := func() float64 {
		p := oc.Position()
		return math.Atan2(float64(p.X), float64(p.Z))
	}
	assert.InDelta(t, 0.05*0.5, theta(), 1e-5)

	for i := 0; i < 400; i++ {
		oc.Update()
	}
	// geometric series: the full delta is eventually applied
	assert.InDelta(t, total, theta(), 1e-3)
	assert.False(t, oc.Update())
}

func TestPolarAngleClamped(t *testing.T) {
	oc := newTestControls()
	oc.RotateUp(10)
	oc.Update()
	p := oc.Position()
	assert.InDelta(t, 2, p.Y, 1e-4)
	assert.False(t, math.IsNaN(float64(p.X)))
}

func TestDollyAndDistanceLimits(t *testing.T) {
	oc := newTestControls(WithDistanceLimits(1, 3))
	oc.Dolly(0.1)
	oc.Update()
	assert.InDelta(t, 1, oc.Radius(), 1e-5)

	oc.Dolly(100)
	oc.Update()
	assert.InDelta(t, 3, oc.Radius(), 1e-5)
}

func TestWheelDollies(t *testing.T) {
	oc := newTestControls()
	oc.Wheel(1)
	oc.Update()
	assert.InDelta(t, 2*0.95, oc.Radius(), 1e-5)

	oc.Wheel(-1)
	oc.Update()
	assert.InDelta(t, 2, oc.Radius(), 1e-5)
}

func TestPointerDragRotates(t *testing.T) {
	oc := newTestControls()
	oc.PointerDown(common.MouseButtonLeft, 100, 100)
	// a drag of a quarter of the viewport height is a quarter turn
	oc.PointerMove(100-150, 100)
	oc.PointerUp()
	oc.Update()

	p := oc.Position()
	assert.InDelta(t, 2, p.X, 1e-4)
	assert.InDelta(t, 0, p.Z, 1e-4)

	oc.PointerMove(500, 500)
	assert.False(t, oc.Update())
}

func TestPanMovesTargetAndPosition(t *testing.T) {
	oc := newTestControls()
	oc.Pan(1, 0)
	oc.Update()
	assert.InDelta(t, 1, oc.Target().X, 1e-5)
	assert.InDelta(t, 1, oc.Position().X, 1e-5)
	assert.InDelta(t, 2, oc.Radius(), 1e-5)
}

func TestPointerRightDragPans(t *testing.T) {
	oc := newTestControls()
	oc.PointerDown(common.MouseButtonRight, 0, 0)
	oc.PointerMove(-10, 0)
	oc.Update()
	assert.Greater(t, oc.Target().X, float32(0))
}
