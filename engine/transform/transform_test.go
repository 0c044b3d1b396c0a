package transform

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	tr := New()
	assert.Equal(t, common.Vec3{}, tr.Position())
	assert.Equal(t, common.Vec3{}, tr.Rotation())
	assert.Equal(t, common.Vec3{X: 1, Y: 1, Z: 1}, tr.Scale())
	assert.Equal(t, common.Identity(), tr.Matrix())
}

func TestComponents(t *testing.T) {
	tr := New()
	for c := PositionX; c <= ScaleZ; c++ {
		tr.SetComponent(c, float32(c)+0.5)
	}
	for c := PositionX; c <= ScaleZ; c++ {
		assert.Equal(t, float32(c)+0.5, tr.Component(c), c.String())
	}
	assert.Equal(t, common.Vec3{X: 3.5, Y: 4.5, Z: 5.5}, tr.Rotation())
}

func TestInvalidComponent(t *testing.T) {
	tr := New()
	tr.SetComponent(Component(42), 9)
	assert.Zero(t, tr.Component(Component(42)))
	assert.False(t, Component(42).Valid())
	assert.Equal(t, "unknown", Component(-1).String())
	assert.Equal(t, "rotation.y", RotationY.String())
}

func TestMatrixTranslation(t *testing.T) {
	tr := New()
	tr.SetPosition(0, 1, -1)
	m := tr.Matrix()
	assert.Equal(t, float32(0), m[12])
	assert.Equal(t, float32(1), m[13])
	assert.Equal(t, float32(-1), m[14])
}
