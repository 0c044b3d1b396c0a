package light

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/stretchr/testify/assert"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight(LightTypeAmbient)
	assert.Equal(t, "ambient", l.Name())
	assert.Equal(t, float32(1), l.Intensity())
	assert.True(t, l.Enabled())
	assert.False(t, l.Shadow().Cast)
	assert.Equal(t, DefaultShadowMapSize, l.Shadow().MapWidth)
}

func TestDirectionalLight(t *testing.T) {
	l := NewLight(LightTypeDirectional,
		WithColor(0xffffff),
		WithIntensity(1.1),
		WithPosition(2, 2, -1),
		WithCastShadow(1024),
	)
	assert.Equal(t, float32(1.1), l.Intensity())
	assert.Equal(t, Shadow{Cast: true, MapWidth: 1024, MapHeight: 1024}, l.Shadow())

	d := l.Direction()
	assert.InDelta(t, 1, d.Length(), 1e-6)
	assert.InDelta(t, -2.0/3.0, d.X, 1e-6)
	assert.InDelta(t, 1.0/3.0, d.Z, 1e-6)
}

func TestHemisphereAndPointLight(t *testing.T) {
	h := NewLight(LightTypeHemisphere, WithColor(0xff0000), WithGroundColor(0xf4cccc), WithIntensity(0.9))
	assert.Equal(t, uint32(0xff0000), h.Color().Hex())
	assert.Equal(t, uint32(0xf4cccc), h.GroundColor().Hex())

	p := NewLight(LightTypePoint, WithColor(0xff86cf), WithIntensity(1.5), WithDistance(0), WithDecay(2), WithPosition(1, -0.5, 1))
	assert.Equal(t, float32(0), p.Distance())
	assert.Equal(t, float32(2), p.Decay())
	assert.Equal(t, common.Vec3{X: 1, Y: -0.5, Z: 1}, p.Position())
}

func TestSetIntensityClampsNegative(t *testing.T) {
	l := NewLight(LightTypePoint)
	l.SetIntensity(2.5)
	assert.Equal(t, float32(2.5), l.Intensity())
	l.SetIntensity(-1)
	assert.Zero(t, l.Intensity())
}

func TestLightTypeString(t *testing.T) {
	assert.Equal(t, "hemisphere", LightTypeHemisphere.String())
	assert.Equal(t, "unknown", LightType(99).String())
}
