package material

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/Carmen-Shannon/oxy-hello/engine/texture"
)

// MaterialType identifies the shading model of a material.
type MaterialType int

const (
	// MaterialTypeStandard is a metalness/roughness lit material with an optional environment map.
	MaterialTypeStandard MaterialType = iota
	// MaterialTypeMatcap fakes lighting by sampling a spherical reflectance texture with the view-space normal.
	MaterialTypeMatcap
)

// String returns the lowercase name of the material type.
func (t MaterialType) String() string {
	switch t {
	case MaterialTypeStandard:
		return "standard"
	case MaterialTypeMatcap:
		return "matcap"
	}
	return "unknown"
}

// material is the implementation of the Material interface.
type material struct {
	mu *sync.Mutex

	name         string
	materialType MaterialType
	color        common.Color
	metalness    float32
	roughness    float32
	flatShading  bool
	envMap       texture.Texture
	matcap       texture.Texture
	version      uint64
}

// Material defines the interface for a render material.
//
// Surface properties are mutable at runtime (the debug panel edits them) and every
// change bumps Version so renderers know when to rewrite uniforms. Type-specific
// properties return zero values on materials of the other type.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Type returns the shading model.
	//
	// Returns:
	//   - MaterialType: the material type
	Type() MaterialType

	// Color returns the base color.
	//
	// Returns:
	//   - common.Color: the sRGB base color
	Color() common.Color

	// SetColor changes the base color.
	//
	// Parameters:
	//   - c: the new sRGB color
	SetColor(c common.Color)

	// Metalness returns the metallic factor (0 = dielectric, 1 = metal). Standard materials only.
	//
	// Returns:
	//   - float32: the metalness
	Metalness() float32

	// SetMetalness changes the metallic factor, clamped to [0, 1].
	//
	// Parameters:
	//   - v: the new metalness
	SetMetalness(v float32)

	// Roughness returns the roughness factor (0 = mirror, 1 = fully diffuse). Standard materials only.
	//
	// Returns:
	//   - float32: the roughness
	Roughness() float32

	// SetRoughness changes the roughness factor, clamped to [0, 1].
	//
	// Parameters:
	//   - v: the new roughness
	SetRoughness(v float32)

	// FlatShading reports whether faces are shaded with their geometric normal.
	//
	// Returns:
	//   - bool: true for faceted shading
	FlatShading() bool

	// EnvMap returns the environment reflection texture, or nil. Standard materials only.
	//
	// Returns:
	//   - texture.Texture: the environment map
	EnvMap() texture.Texture

	// Matcap returns the matcap texture, or nil. Matcap materials only.
	//
	// Returns:
	//   - texture.Texture: the matcap texture
	Matcap() texture.Texture

	// Version increases on every property change.
	//
	// Returns:
	//   - uint64: the current version
	Version() uint64
}

var _ Material = &material{}

// NewStandard creates a metalness/roughness material.
// Defaults: white, metalness 0, roughness 1, smooth shading, no environment map.
//
// Parameters:
//   - options: functional options to configure the material
//
// Returns:
//   - Material: the newly created material
func NewStandard(options ...MaterialBuilderOption) Material {
	return newMaterial(MaterialTypeStandard, options)
}

// NewMatcap creates a matcap material.
// Defaults: white tint, smooth shading, no matcap texture (renders as the tint color).
//
// Parameters:
//   - options: functional options to configure the material
//
// Returns:
//   - Material: the newly created material
func NewMatcap(options ...MaterialBuilderOption) Material {
	return newMaterial(MaterialTypeMatcap, options)
}

func newMaterial(t MaterialType, options []MaterialBuilderOption) *material {
	m := &material{
		mu:           &sync.Mutex{},
		name:         t.String(),
		materialType: t,
		color:        common.Color{R: 1, G: 1, B: 1},
		roughness:    1,
		version:      1,
	}
	for _, option := range options {
		option(m)
	}
	if t != MaterialTypeStandard {
		m.envMap = nil
	}
	if t != MaterialTypeMatcap {
		m.matcap = nil
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Type() MaterialType {
	return m.materialType
}

func (m *material) Color() common.Color {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.color
}

func (m *material) SetColor(c common.Color) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.color = c
	m.version++
}

func (m *material) Metalness() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.metalness
}

func (m *material) SetMetalness(v float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metalness = common.Clamp(v, 0, 1)
	m.version++
}

func (m *material) Roughness() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roughness
}

func (m *material) SetRoughness(v float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roughness = common.Clamp(v, 0, 1)
	m.version++
}

func (m *material) FlatShading() bool {
	return m.flatShading
}

func (m *material) EnvMap() texture.Texture {
	return m.envMap
}

func (m *material) Matcap() texture.Texture {
	return m.matcap
}

func (m *material) Version() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}
