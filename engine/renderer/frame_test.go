package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/Carmen-Shannon/oxy-hello/engine/camera"
	"github.com/Carmen-Shannon/oxy-hello/engine/geometry"
	"github.com/Carmen-Shannon/oxy-hello/engine/light"
	"github.com/Carmen-Shannon/oxy-hello/engine/material"
	"github.com/Carmen-Shannon/oxy-hello/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene(t *testing.T) (scene.Scene, scene.Mesh, scene.Mesh) {
	t.Helper()
	g, err := geometry.NewSphere(0.7, 16, 16)
	require.NoError(t, err)

	visible := scene.NewMesh(g, material.NewStandard(material.WithColor(0xffffff)), scene.WithMeshName("sphere"), scene.WithCastShadow(true))
	hidden := scene.NewMesh(g, material.NewStandard(), scene.WithMeshName("hidden"), scene.WithVisible(false))

	s := scene.NewScene(
		scene.WithMeshes(visible, hidden),
		scene.WithLights(
			light.NewLight(light.LightTypeAmbient, light.WithName("ambient"), light.WithIntensity(0.5)),
			light.NewLight(light.LightTypeDirectional, light.WithName("sun"), light.WithPosition(0, 0, 5)),
			light.NewLight(light.LightTypeHemisphere, light.WithName("sky"), light.WithPosition(0, 2, 0)),
			light.NewLight(light.LightTypePoint, light.WithName("off"), light.WithEnabled(false)),
		),
	)
	return s, visible, hidden
}

func TestBuildFrameRequiresCamera(t *testing.T) {
	s, _, _ := newTestScene(t)
	_, err := BuildFrame(s, nil)
	require.ErrorIs(t, err, ErrNoCamera)
}

func TestBuildFrameUsesSceneCamera(t *testing.T) {
	s, _, _ := newTestScene(t)
	cam := camera.NewCamera(camera.WithPosition(1, 1, 2))
	s.SetCamera(cam)

	f, err := BuildFrame(s, nil)
	require.NoError(t, err)
	assert.Equal(t, cam.Position(), f.CameraPosition)
	assert.Equal(t, cam.ViewProjectionMatrix(), f.ViewProjection)
}

func TestBuildFrameSkipsHiddenAndDisabled(t *testing.T) {
	s, visible, _ := newTestScene(t)
	f, err := BuildFrame(s, camera.NewCamera())
	require.NoError(t, err)

	require.Len(t, f.Items, 1)
	assert.Equal(t, visible.ID(), f.Items[0].MeshID)
	assert.True(t, f.Items[0].CastShadow)

	names := make([]string, 0, len(f.Lights))
	for _, l := range f.Lights {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"ambient", "sun", "sky"}, names)
}

func TestBuildFrameLightDirections(t *testing.T) {
	s, _, _ := newTestScene(t)
	f, err := BuildFrame(s, camera.NewCamera())
	require.NoError(t, err)

	sun := f.Lights[1]
	assert.True(t, sun.Direction.Equals(common.Vec3{Z: 1}, 1e-6), "got %v", sun.Direction)
	sky := f.Lights[2]
	assert.True(t, sky.Direction.Equals(common.Vec3{Y: 1}, 1e-6), "got %v", sky.Direction)
	assert.Equal(t, common.Vec3{}, f.Lights[0].Direction)
}

func TestBuildFrameReflectsTransform(t *testing.T) {
	s, visible, _ := newTestScene(t)
	visible.Transform().SetPosition(1, 2, 3)

	f, err := BuildFrame(s, camera.NewCamera())
	require.NoError(t, err)
	p := f.Items[0].Model.TransformPoint(common.Vec3{})
	assert.True(t, p.Equals(common.Vec3{X: 1, Y: 2, Z: 3}, 1e-5), "got %v", p)
}
