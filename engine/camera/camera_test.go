package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera(WithFovDegrees(50), WithAspect(800.0/600.0), WithNear(0.1), WithFar(100), WithPosition(1, 1, 2))
	assert.InDelta(t, 50*math.Pi/180, c.Fov(), 1e-6)
	assert.InDelta(t, 1.333, c.Aspect(), 0.001)
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(100), c.Far())
	assert.Equal(t, common.Vec3{X: 1, Y: 1, Z: 2}, c.Position())
}

func TestSetAspectRecomputesProjection(t *testing.T) {
	c := NewCamera(WithAspect(800.0 / 600.0))
	before := c.ProjectionMatrix()

	c.SetAspect(1600.0 / 900.0)
	after := c.ProjectionMatrix()
	assert.InDelta(t, 1.778, c.Aspect(), 0.001)
	assert.NotEqual(t, before[0], after[0])
	assert.Equal(t, before[5], after[5])
	assert.InDelta(t, after[5]/c.Aspect(), after[0], 1e-6)
}

func TestSetAspectIgnoresInvalid(t *testing.T) {
	c := NewCamera(WithAspect(2))
	for _, a := range []float32{0, -1, float32(math.NaN()), float32(math.Inf(1))} {
		c.SetAspect(a)
		assert.Equal(t, float32(2), c.Aspect())
	}
}

func TestUpdateReadsController(t *testing.T) {
	ctrl := NewOrbitControls()
	c := NewCamera(WithPosition(1, 1, 2), WithController(ctrl))
	assert.Equal(t, common.Vec3{X: 1, Y: 1, Z: 2}, ctrl.Position())

	ctrl.SetPosition(0, 0, 5)
	c.Update()
	assert.Equal(t, common.Vec3{X: 0, Y: 0, Z: 5}, c.Position())

	eye := c.ViewMatrix().TransformPoint(common.Vec3{X: 0, Y: 0, Z: 5})
	assert.InDelta(t, 0, eye.Length(), 1e-5)
}

func TestViewProjectionIsProduct(t *testing.T) {
	c := NewCamera(WithPosition(1, 1, 2), WithAspect(1.5))
	want := common.Mul(c.ProjectionMatrix(), c.ViewMatrix())
	assert.Equal(t, want, c.ViewProjectionMatrix())
}

func TestSetControllerSeedsState(t *testing.T) {
	c := NewCamera(WithPosition(3, 0, 0), WithTarget(0, 1, 0))
	ctrl := NewOrbitControls()
	c.SetController(ctrl)
	require.NotNil(t, c.Controller())
	assert.Equal(t, common.Vec3{X: 3}, ctrl.Position())
	assert.Equal(t, common.Vec3{Y: 1}, ctrl.Target())
}
