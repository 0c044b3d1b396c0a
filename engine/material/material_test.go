package material

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/Carmen-Shannon/oxy-hello/engine/texture"
	"github.com/stretchr/testify/assert"
)

func TestStandardMaterial(t *testing.T) {
	env := texture.NewTexture(texture.WithURL("/textures/gradients/gradient2.png"))
	m := NewStandard(
		WithName("reflective"),
		WithMetalness(0.7),
		WithRoughness(0.5),
		WithColor(0xc09bd9),
		WithEnvMap(env),
		WithFlatShading(true),
	)
	assert.Equal(t, MaterialTypeStandard, m.Type())
	assert.Equal(t, "reflective", m.Name())
	assert.Equal(t, float32(0.7), m.Metalness())
	assert.Equal(t, float32(0.5), m.Roughness())
	assert.Equal(t, uint32(0xc09bd9), m.Color().Hex())
	assert.True(t, m.FlatShading())
	assert.Same(t, env, m.EnvMap())
	assert.Nil(t, m.Matcap())
}

func TestMatcapMaterialIgnoresEnvMap(t *testing.T) {
	tex := texture.NewTexture()
	m := NewMatcap(WithMatcap(tex), WithEnvMap(tex))
	assert.Equal(t, MaterialTypeMatcap, m.Type())
	assert.Same(t, tex, m.Matcap())
	assert.Nil(t, m.EnvMap())
	assert.Equal(t, common.Color{R: 1, G: 1, B: 1}, m.Color())
}

func TestSettersClampAndBumpVersion(t *testing.T) {
	m := NewStandard()
	v := m.Version()

	m.SetMetalness(1.5)
	assert.Equal(t, float32(1), m.Metalness())
	m.SetRoughness(-0.5)
	assert.Equal(t, float32(0), m.Roughness())
	m.SetColor(common.ColorFromHex(0x123456))
	assert.Equal(t, uint32(0x123456), m.Color().Hex())
	assert.Equal(t, v+3, m.Version())
}
