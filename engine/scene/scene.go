// Package scene holds the meshes, lights, camera and background drawn each frame.
package scene

import (
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/Carmen-Shannon/oxy-hello/engine/camera"
	"github.com/Carmen-Shannon/oxy-hello/engine/light"
	"github.com/Carmen-Shannon/oxy-hello/engine/texture"
	"github.com/google/uuid"
)

type scene struct {
	mu *sync.Mutex

	name            string
	camera          camera.Camera
	background      texture.Texture
	backgroundColor common.Color
	meshes          []Mesh
	lights          []light.Light
}

// Scene is the set of nodes composed for rendering.
// Meshes and lights are kept in insertion order, which is also the draw order.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Camera returns the scene's camera, or nil if none was set.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Background returns the texture drawn behind everything, or nil.
	Background() texture.Texture

	// SetBackground sets the texture drawn behind everything.
	//
	// Parameters:
	//   - tex: the background texture, nil to use the background color
	SetBackground(tex texture.Texture)

	// BackgroundColor returns the clear color used when no background texture is ready.
	BackgroundColor() common.Color

	// AddMesh appends a mesh. Adding the same mesh twice is a no-op.
	//
	// Parameters:
	//   - m: the mesh to add
	AddMesh(m Mesh)

	// AddLight appends a light. Adding the same light twice is a no-op.
	//
	// Parameters:
	//   - l: the light to add
	AddLight(l light.Light)

	// Remove deletes the mesh with the given ID.
	//
	// Parameters:
	//   - id: the mesh ID
	//
	// Returns:
	//   - bool: true if a mesh was removed
	Remove(id uuid.UUID) bool

	// RemoveLight deletes a light.
	//
	// Parameters:
	//   - l: the light to remove
	//
	// Returns:
	//   - bool: true if the light was present
	RemoveLight(l light.Light) bool

	// Mesh returns the mesh with the given ID, or nil.
	Mesh(id uuid.UUID) Mesh

	// FindMesh returns the first mesh with the given name, or nil.
	FindMesh(name string) Mesh

	// FindLight returns the first light with the given name, or nil.
	FindLight(name string) light.Light

	// Meshes returns a snapshot of the meshes in draw order.
	Meshes() []Mesh

	// Lights returns a snapshot of the lights.
	Lights() []light.Light

	// Clear removes every mesh and light. The camera and background are kept.
	Clear()
}

var _ Scene = &scene{}

// NewScene creates an empty scene with a black background.
//
// Parameters:
//   - options: functional options for the scene
//
// Returns:
//   - Scene: the new scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:   &sync.Mutex{},
		name: "scene",
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Camera() camera.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera = cam
}

func (s *scene) Background() texture.Texture {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.background
}

func (s *scene) SetBackground(tex texture.Texture) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.background = tex
}

func (s *scene) BackgroundColor() common.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backgroundColor
}

func (s *scene) AddMesh(m Mesh) {
	if m == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.ContainsFunc(s.meshes, func(o Mesh) bool { return o.ID() == m.ID() }) {
		return
	}
	s.meshes = append(s.meshes, m)
}

func (s *scene) AddLight(l light.Light) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.lights, l) {
		return
	}
	s.lights = append(s.lights, l)
}

func (s *scene) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.meshes, func(m Mesh) bool { return m.ID() == id })
	if i < 0 {
		return false
	}
	s.meshes = slices.Delete(s.meshes, i, i+1)
	return true
}

func (s *scene) RemoveLight(l light.Light) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.Index(s.lights, l)
	if i < 0 {
		return false
	}
	s.lights = slices.Delete(s.lights, i, i+1)
	return true
}

func (s *scene) Mesh(id uuid.UUID) Mesh {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.meshes {
		if m.ID() == id {
			return m
		}
	}
	return nil
}

func (s *scene) FindMesh(name string) Mesh {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.meshes {
		if m.Name() == name {
			return m
		}
	}
	return nil
}

func (s *scene) FindLight(name string) light.Light {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lights {
		if l.Name() == name {
			return l
		}
	}
	return nil
}

func (s *scene) Meshes() []Mesh {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.meshes)
}

func (s *scene) Lights() []light.Light {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lights)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meshes = nil
	s.lights = nil
}
