package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertMatInDelta(t *testing.T, want, got Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "element %d", i)
	}
}

func TestMulIdentity(t *testing.T) {
	m := Compose(Vec3{1, 2, 3}, Vec3{0.3, 0.2, 0.1}, Vec3{1, 2, 1})
	assertMatInDelta(t, m, Mul(Identity(), m))
	assertMatInDelta(t, m, Mul(m, Identity()))
}

func TestInvert(t *testing.T) {
	m := Compose(Vec3{1, -2, 3}, Vec3{0.5, 1.2, -0.4}, Vec3{2, 2, 2})
	inv, ok := m.Invert()
	assert.True(t, ok)
	assertMatInDelta(t, Identity(), Mul(m, inv))

	_, ok = Mat4{}.Invert()
	assert.False(t, ok)
}

func TestComposeRotationY(t *testing.T) {
	m := Compose(Vec3{}, Vec3{0, math.Pi / 2, 0}, Vec3{1, 1, 1})
	p := m.TransformPoint(Vec3{1, 0, 0})
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, 0, p.Y, 1e-6)
	assert.InDelta(t, -1, p.Z, 1e-6)
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{1, 1, 2}
	v := LookAt(eye, Vec3{}, Vec3{0, 1, 0})
	p := v.TransformPoint(eye)
	assert.InDelta(t, 0, p.Length(), 1e-5)

	// The target lies straight down the -Z axis of view space.
	target := v.TransformPoint(Vec3{})
	assert.InDelta(t, 0, target.X, 1e-5)
	assert.InDelta(t, 0, target.Y, 1e-5)
	assert.InDelta(t, -eye.Length(), target.Z, 1e-5)
}

func TestLookAtDegenerate(t *testing.T) {
	v := LookAt(Vec3{}, Vec3{}, Vec3{0, 1, 0})
	for i, f := range v {
		assert.False(t, math.IsNaN(float64(f)), "element %d is NaN", i)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	p := Perspective(50*math.Pi/180, 16.0/9.0, 0.1, 100)
	project := func(z float32) float32 {
		clipZ := p[10]*z + p[14]
		clipW := p[11] * z
		return clipZ / clipW
	}
	assert.InDelta(t, 0, project(-0.1), 1e-5)
	assert.InDelta(t, 1, project(-100), 1e-5)
}

func TestNormalMatrixUniformScale(t *testing.T) {
	m := Compose(Vec3{5, 5, 5}, Vec3{}, Vec3{2, 2, 2})
	n := m.NormalMatrix()
	assert.InDelta(t, 0.5, n[0], 1e-6)
	assert.InDelta(t, 0.5, n[5], 1e-6)
	assert.InDelta(t, 0.5, n[10], 1e-6)
	assert.Zero(t, n[3])
}

func TestSnapToStep(t *testing.T) {
	assert.Equal(t, 0.123, SnapToStep(0.12345, 0, 0.001))
	assert.Equal(t, 1.5, SnapToStep(1.4, 0, 0.5))
	assert.Equal(t, 0.7, SnapToStep(0.7, 0, 0))
}

func TestClampAndCoalesce(t *testing.T) {
	assert.Equal(t, 2.0, Clamp(3.5, 0.0, 2.0))
	assert.Equal(t, 0, Clamp(-1, 0, 10))
	assert.Equal(t, "b", Coalesce("", "b", "c"))
}
