package material

import (
	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/Carmen-Shannon/oxy-hello/engine/texture"
)

// MaterialBuilderOption is a functional option for configuring a Material.
type MaterialBuilderOption func(*material)

// WithName sets the material identifier.
//
// Parameters:
//   - name: the material name
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithColor sets the base color from a 0xRRGGBB literal.
//
// Parameters:
//   - hex: packed sRGB color
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithColor(hex uint32) MaterialBuilderOption {
	return func(m *material) {
		m.color = common.ColorFromHex(hex)
	}
}

// WithMetalness sets the metallic factor, clamped to [0, 1].
//
// Parameters:
//   - v: the metalness
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithMetalness(v float32) MaterialBuilderOption {
	return func(m *material) {
		m.metalness = common.Clamp(v, 0, 1)
	}
}

// WithRoughness sets the roughness factor, clamped to [0, 1].
//
// Parameters:
//   - v: the roughness
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithRoughness(v float32) MaterialBuilderOption {
	return func(m *material) {
		m.roughness = common.Clamp(v, 0, 1)
	}
}

// WithFlatShading enables faceted shading.
//
// Parameters:
//   - enabled: true to shade with geometric face normals
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithFlatShading(enabled bool) MaterialBuilderOption {
	return func(m *material) {
		m.flatShading = enabled
	}
}

// WithEnvMap sets the environment reflection texture of a standard material.
//
// Parameters:
//   - t: the environment texture
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithEnvMap(t texture.Texture) MaterialBuilderOption {
	return func(m *material) {
		m.envMap = t
	}
}

// WithMatcap sets the matcap texture of a matcap material.
//
// Parameters:
//   - t: the matcap texture
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithMatcap(t texture.Texture) MaterialBuilderOption {
	return func(m *material) {
		m.matcap = t
	}
}
