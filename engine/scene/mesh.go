package scene

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-hello/engine/geometry"
	"github.com/Carmen-Shannon/oxy-hello/engine/material"
	"github.com/Carmen-Shannon/oxy-hello/engine/transform"
	"github.com/google/uuid"
)

type mesh struct {
	mu *sync.Mutex

	id            uuid.UUID
	name          string
	transform     *transform.Transform
	geometry      *geometry.Geometry
	material      material.Material
	castShadow    bool
	receiveShadow bool
	visible       bool
}

// Mesh is a renderable node: geometry drawn with a material at a transform.
type Mesh interface {
	// ID returns the unique identifier assigned at construction.
	//
	// Returns:
	//   - uuid.UUID: the mesh ID
	ID() uuid.UUID

	// Name returns the mesh label.
	Name() string

	// Transform returns the mutable position, rotation and scale of the mesh.
	//
	// Returns:
	//   - *transform.Transform: the transform, never nil
	Transform() *transform.Transform

	// Geometry returns the triangle data.
	Geometry() *geometry.Geometry

	// Material returns the surface description.
	Material() material.Material

	// SetMaterial replaces the material.
	//
	// Parameters:
	//   - m: the new material
	SetMaterial(m material.Material)

	// CastShadow reports whether the mesh is drawn into shadow maps.
	CastShadow() bool

	// ReceiveShadow reports whether shadows are sampled when shading the mesh.
	ReceiveShadow() bool

	// Visible reports whether the mesh is drawn.
	Visible() bool

	// SetVisible shows or hides the mesh.
	//
	// Parameters:
	//   - visible: true to draw the mesh
	SetVisible(visible bool)
}

var _ Mesh = &mesh{}

// NewMesh creates a visible mesh with an identity transform.
//
// Parameters:
//   - geom: the triangle data
//   - mat: the material
//   - options: functional options for the mesh
//
// Returns:
//   - Mesh: the new mesh
func NewMesh(geom *geometry.Geometry, mat material.Material, options ...MeshBuilderOption) Mesh {
	m := &mesh{
		mu:        &sync.Mutex{},
		id:        uuid.New(),
		transform: transform.New(),
		geometry:  geom,
		material:  mat,
		visible:   true,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *mesh) ID() uuid.UUID {
	return m.id
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Transform() *transform.Transform {
	return m.transform
}

func (m *mesh) Geometry() *geometry.Geometry {
	return m.geometry
}

func (m *mesh) Material() material.Material {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.material
}

func (m *mesh) SetMaterial(mat material.Material) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.material = mat
}

func (m *mesh) CastShadow() bool {
	return m.castShadow
}

func (m *mesh) ReceiveShadow() bool {
	return m.receiveShadow
}

func (m *mesh) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible
}

func (m *mesh) SetVisible(visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = visible
}
