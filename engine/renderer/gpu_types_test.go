package renderer

import (
	"image/color"
	"testing"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/Carmen-Shannon/oxy-hello/engine/geometry"
	"github.com/Carmen-Shannon/oxy-hello/engine/light"
	"github.com/Carmen-Shannon/oxy-hello/engine/material"
	"github.com/Carmen-Shannon/oxy-hello/engine/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformLayoutSizes(t *testing.T) {
	assert.Equal(t, uintptr(64), unsafe.Sizeof(GPULight{}))
	assert.Equal(t, uintptr(144), unsafe.Sizeof(GPUMeshUniforms{}))
	assert.Equal(t, uintptr(224+MaxLights*64), unsafe.Sizeof(GPUFrameUniforms{}))
}

func TestPackFrameLights(t *testing.T) {
	f := Frame{CameraPosition: common.Vec3{X: 1, Y: 1, Z: 2}}
	for i := range MaxLights + 3 {
		f.Lights = append(f.Lights, LightData{
			Type:      light.LightTypePoint,
			Color:     common.Color{R: 1, G: 1, B: 1},
			Intensity: float32(i),
			Distance:  10,
			Decay:     2,
		})
	}

	u := PackFrame(f, true)
	assert.Equal(t, uint32(MaxLights), u.Params[0])
	assert.Equal(t, uint32(1), u.Params[1])
	assert.Equal(t, [4]float32{1, 1, 2, 1}, u.CameraPosition)

	l := u.Lights[3]
	assert.Equal(t, float32(light.LightTypePoint), l.Color[3])
	assert.Equal(t, float32(3), l.Ground[3])
	assert.Equal(t, float32(10), l.Position[3])
	assert.Equal(t, float32(2), l.Direction[3])
}

func TestPackFrameSRGBSurface(t *testing.T) {
	u := PackFrame(Frame{}, false)
	assert.Zero(t, u.Params[0])
	assert.Zero(t, u.Params[1])
}

func TestPackMeshStandard(t *testing.T) {
	env := texture.NewTexture()
	m := material.NewStandard(material.WithMetalness(0.7), material.WithRoughness(0.2), material.WithFlatShading(true), material.WithEnvMap(env))

	u := PackMesh(DrawItem{Model: common.Identity(), Material: m})
	assert.InDelta(t, 0.7, u.Params[0], 1e-6)
	assert.InDelta(t, 0.2, u.Params[1], 1e-6)
	assert.Equal(t, float32(1), u.Params[2])
	assert.Zero(t, u.Params[3], "env map not loaded yet")

	env.SetImage(texture.Solid(color.RGBA{R: 255, G: 255, B: 255, A: 255}))
	u = PackMesh(DrawItem{Model: common.Identity(), Material: m})
	assert.Equal(t, float32(1), u.Params[3])
	assert.Equal(t, float32(1), u.Color[3])
}

func TestPackMeshWithoutMaterial(t *testing.T) {
	u := PackMesh(DrawItem{Model: common.Identity()})
	assert.Equal(t, [4]float32{1, 1, 1, 1}, u.Color)
	require.Equal(t, common.Identity(), common.Mat4(u.Model))
}

func TestPackFrameInverse(t *testing.T) {
	vp := common.Perspective(1, 1.5, 0.1, 100)
	u := PackFrame(Frame{ViewProjection: vp}, false)
	id := common.Mul(vp, common.Mat4(u.InverseViewProjection))
	for i, v := range common.Identity() {
		assert.InDelta(t, v, id[i], 1e-4)
	}
}

func TestPackGeometryIndexed(t *testing.T) {
	g := geometry.New(
		[]float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		[]float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		[]float32{0, 0, 1, 0, 0, 1},
		[]uint32{0, 1, 2},
	)
	v, idx := PackGeometry(g)
	require.Len(t, v, 24)
	assert.Equal(t, []float32{1, 0, 0, 0, 0, 1, 1, 0}, v[8:16])
	assert.Equal(t, []uint32{0, 1, 2}, idx)
}

func TestPackGeometrySequentialIndices(t *testing.T) {
	g := geometry.New([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, nil, nil, nil)
	v, idx := PackGeometry(g)
	require.Len(t, v, 24)
	assert.Equal(t, []float32{0, 0, 1, 0, 0}, v[3:8])
	assert.Equal(t, []uint32{0, 1, 2}, idx)
}
