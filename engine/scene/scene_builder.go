package scene

import (
	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/Carmen-Shannon/oxy-hello/engine/camera"
	"github.com/Carmen-Shannon/oxy-hello/engine/light"
	"github.com/Carmen-Shannon/oxy-hello/engine/texture"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithName sets the scene's identifier.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithCamera sets the camera the scene is viewed through.
//
// Parameters:
//   - cam: the camera
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *scene) {
		s.camera = cam
	}
}

// WithBackground sets the background texture.
//
// Parameters:
//   - tex: the background texture
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBackground(tex texture.Texture) SceneBuilderOption {
	return func(s *scene) {
		s.background = tex
	}
}

// WithBackgroundColor sets the clear color used while no background texture is ready.
//
// Parameters:
//   - hex: the color as 0xRRGGBB
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBackgroundColor(hex uint32) SceneBuilderOption {
	return func(s *scene) {
		s.backgroundColor = common.ColorFromHex(hex)
	}
}

// WithMeshes adds initial meshes to the scene.
//
// Parameters:
//   - meshes: the meshes to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMeshes(meshes ...Mesh) SceneBuilderOption {
	return func(s *scene) {
		for _, m := range meshes {
			if m != nil {
				s.meshes = append(s.meshes, m)
			}
		}
	}
}

// WithLights adds initial lights to the scene.
//
// Parameters:
//   - lights: the lights to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *scene) {
		for _, l := range lights {
			if l != nil {
				s.lights = append(s.lights, l)
			}
		}
	}
}
