package scene

import "github.com/Carmen-Shannon/oxy-hello/common"

// MeshBuilderOption is a functional option for configuring a Mesh.
type MeshBuilderOption func(*mesh)

// WithMeshName sets the mesh label used by FindMesh and in logs.
//
// Parameters:
//   - name: the label
//
// Returns:
//   - MeshBuilderOption: option function to apply
func WithMeshName(name string) MeshBuilderOption {
	return func(m *mesh) {
		m.name = name
	}
}

// WithMeshPosition sets the initial position.
//
// Parameters:
//   - p: the position
//
// Returns:
//   - MeshBuilderOption: option function to apply
func WithMeshPosition(p common.Vec3) MeshBuilderOption {
	return func(m *mesh) {
		m.transform.SetPosition(p.X, p.Y, p.Z)
	}
}

// WithCastShadow marks the mesh as a shadow caster.
func WithCastShadow(cast bool) MeshBuilderOption {
	return func(m *mesh) {
		m.castShadow = cast
	}
}

// WithReceiveShadow marks the mesh as a shadow receiver.
func WithReceiveShadow(receive bool) MeshBuilderOption {
	return func(m *mesh) {
		m.receiveShadow = receive
	}
}

// WithVisible sets the initial visibility. Meshes are visible by default.
func WithVisible(visible bool) MeshBuilderOption {
	return func(m *mesh) {
		m.visible = visible
	}
}
