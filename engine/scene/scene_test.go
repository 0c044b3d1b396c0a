package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/Carmen-Shannon/oxy-hello/engine/camera"
	"github.com/Carmen-Shannon/oxy-hello/engine/geometry"
	"github.com/Carmen-Shannon/oxy-hello/engine/light"
	"github.com/Carmen-Shannon/oxy-hello/engine/material"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSphereMesh(t *testing.T, options ...MeshBuilderOption) Mesh {
	t.Helper()
	g, err := geometry.NewSphere(0.7, 16, 16)
	require.NoError(t, err)
	return NewMesh(g, material.NewStandard(), options...)
}

func TestMeshDefaults(t *testing.T) {
	m := newSphereMesh(t, WithMeshName("sphere"), WithCastShadow(true), WithMeshPosition(common.Vec3{X: 1}))
	assert.NotEqual(t, uuid.Nil, m.ID())
	assert.Equal(t, "sphere", m.Name())
	assert.True(t, m.Visible())
	assert.True(t, m.CastShadow())
	assert.False(t, m.ReceiveShadow())
	assert.Equal(t, common.Vec3{X: 1}, m.Transform().Position())
	assert.NotNil(t, m.Geometry())
}

func TestAddRemoveFind(t *testing.T) {
	sphere := newSphereMesh(t, WithMeshName("sphere"))
	text := newSphereMesh(t, WithMeshName("text"))
	ambient := light.NewLight(light.LightTypeAmbient, light.WithName("ambient"))

	s := NewScene(WithMeshes(sphere), WithLights(ambient))
	s.AddMesh(text)
	s.AddMesh(text)
	s.AddLight(ambient)

	require.Len(t, s.Meshes(), 2)
	require.Len(t, s.Lights(), 1)
	assert.Equal(t, text, s.FindMesh("text"))
	assert.Equal(t, sphere, s.Mesh(sphere.ID()))
	assert.Equal(t, ambient, s.FindLight("ambient"))
	assert.Nil(t, s.FindMesh("missing"))

	assert.True(t, s.Remove(text.ID()))
	assert.False(t, s.Remove(text.ID()))
	assert.Nil(t, s.FindMesh("text"))
	assert.Equal(t, []Mesh{sphere}, s.Meshes())

	assert.True(t, s.RemoveLight(ambient))
	assert.Empty(t, s.Lights())
}

func TestMeshesReturnsSnapshot(t *testing.T) {
	s := NewScene(WithMeshes(newSphereMesh(t)))
	snapshot := s.Meshes()
	s.AddMesh(newSphereMesh(t))
	assert.Len(t, snapshot, 1)
	assert.Len(t, s.Meshes(), 2)
}

func TestCameraAndBackground(t *testing.T) {
	cam := camera.NewCamera()
	s := NewScene(WithCamera(cam), WithBackgroundColor(0x102030), WithName("hello"))
	assert.Equal(t, "hello", s.Name())
	assert.Equal(t, cam, s.Camera())
	assert.Nil(t, s.Background())
	assert.Equal(t, uint32(0x102030), s.BackgroundColor().Hex())

	s.Clear()
	assert.Empty(t, s.Meshes())
	assert.Equal(t, cam, s.Camera())
}
