package renderer

import (
	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/Carmen-Shannon/oxy-hello/engine/camera"
	"github.com/Carmen-Shannon/oxy-hello/engine/geometry"
	"github.com/Carmen-Shannon/oxy-hello/engine/light"
	"github.com/Carmen-Shannon/oxy-hello/engine/material"
	"github.com/Carmen-Shannon/oxy-hello/engine/scene"
	"github.com/Carmen-Shannon/oxy-hello/engine/texture"
	"github.com/google/uuid"
)

// LightData is a snapshot of one enabled light.
type LightData struct {
	Name        string
	Type        light.LightType
	Color       common.Color
	GroundColor common.Color
	Intensity   float32
	Position    common.Vec3
	// Direction points from the lit surface toward the light for directional and hemisphere lights.
	Direction  common.Vec3
	Distance   float32
	Decay      float32
	CastShadow bool
}

// DrawItem is a snapshot of one visible mesh.
type DrawItem struct {
	MeshID     uuid.UUID
	Name       string
	Model      common.Mat4
	Normal     [12]float32
	Geometry   *geometry.Geometry
	Material   material.Material
	CastShadow bool
}

// Frame is everything a backend needs to draw one image, independent of the GPU API.
type Frame struct {
	View            common.Mat4
	Projection      common.Mat4
	ViewProjection  common.Mat4
	CameraPosition  common.Vec3
	Background      texture.Texture
	BackgroundColor common.Color
	Lights          []LightData
	Items           []DrawItem
}

// BuildFrame snapshots the scene from the given camera.
// Invisible meshes, meshes without geometry and disabled lights are left out.
//
// Parameters:
//   - s: the scene
//   - cam: the camera, nil to use the scene's camera
//
// Returns:
//   - Frame: the snapshot
//   - error: ErrNoCamera when no camera is available
func BuildFrame(s scene.Scene, cam camera.Camera) (Frame, error) {
	if cam == nil {
		cam = s.Camera()
	}
	if cam == nil {
		return Frame{}, ErrNoCamera
	}

	f := Frame{
		View:            cam.ViewMatrix(),
		Projection:      cam.ProjectionMatrix(),
		ViewProjection:  cam.ViewProjectionMatrix(),
		CameraPosition:  cam.Position(),
		Background:      s.Background(),
		BackgroundColor: s.BackgroundColor(),
	}

	for _, l := range s.Lights() {
		if !l.Enabled() {
			continue
		}
		d := LightData{
			Name:        l.Name(),
			Type:        l.Type(),
			Color:       l.Color(),
			GroundColor: l.GroundColor(),
			Intensity:   l.Intensity(),
			Position:    l.Position(),
			Distance:    l.Distance(),
			Decay:       l.Decay(),
			CastShadow:  l.Shadow().Cast,
		}
		switch l.Type() {
		case light.LightTypeDirectional:
			d.Direction = l.Direction().Scale(-1)
		case light.LightTypeHemisphere:
			d.Direction = l.Position().Normalize()
		}
		f.Lights = append(f.Lights, d)
	}

	for _, m := range s.Meshes() {
		if !m.Visible() || m.Geometry() == nil {
			continue
		}
		model := m.Transform().Matrix()
		f.Items = append(f.Items, DrawItem{
			MeshID:     m.ID(),
			Name:       m.Name(),
			Model:      model,
			Normal:     model.NormalMatrix(),
			Geometry:   m.Geometry(),
			Material:   m.Material(),
			CastShadow: m.CastShadow(),
		})
	}
	return f, nil
}
