package light

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-hello/common"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeAmbient lights every fragment equally, with no direction or position.
	LightTypeAmbient LightType = iota

	// LightTypeDirectional represents a distant source shining from its position toward the origin.
	// Affects all fragments uniformly with no distance attenuation.
	LightTypeDirectional

	// LightTypeHemisphere blends between a sky color and a ground color by how much a surface faces up.
	LightTypeHemisphere

	// LightTypePoint emits in all directions from a position, attenuated by distance and decay.
	LightTypePoint
)

// String returns the lowercase name of the light type.
func (t LightType) String() string {
	switch t {
	case LightTypeAmbient:
		return "ambient"
	case LightTypeDirectional:
		return "directional"
	case LightTypeHemisphere:
		return "hemisphere"
	case LightTypePoint:
		return "point"
	}
	return "unknown"
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu *sync.Mutex

	name        string
	lightType   LightType
	position    common.Vec3
	color       common.Color
	groundColor common.Color
	intensity   float32
	distance    float32
	decay       float32
	enabled     bool
	shadow      Shadow
}

// Light defines the interface for a light source in the scene.
//
// All light types share this interface; type-specific properties (ground color for
// hemisphere lights, distance and decay for point lights) return their zero values
// when not applicable.
type Light interface {
	// Name returns the label of the light, used by the debug panel and in logs.
	//
	// Returns:
	//   - string: the light name
	Name() string

	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type
	Type() LightType

	// Position returns the world-space position of the light.
	// Directional lights shine from this position toward the origin. Hemisphere lights use it as the sky direction.
	// Meaningless for ambient lights.
	//
	// Returns:
	//   - common.Vec3: position as (x, y, z)
	Position() common.Vec3

	// SetPosition moves the light.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// Direction returns the normalized direction the light travels.
	// For directional lights it points from the position toward the origin.
	//
	// Returns:
	//   - common.Vec3: normalized direction
	Direction() common.Vec3

	// Color returns the light color (sky color for hemisphere lights).
	//
	// Returns:
	//   - common.Color: the sRGB color
	Color() common.Color

	// SetColor changes the light color.
	//
	// Parameters:
	//   - c: the new sRGB color
	SetColor(c common.Color)

	// GroundColor returns the ground color of a hemisphere light.
	//
	// Returns:
	//   - common.Color: the sRGB ground color
	GroundColor() common.Color

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// SetIntensity changes the intensity multiplier.
	//
	// Parameters:
	//   - intensity: the new intensity, negative values are clamped to zero
	SetIntensity(intensity float32)

	// Distance returns the cutoff distance for point lights. Zero means no cutoff.
	//
	// Returns:
	//   - float32: the cutoff distance
	Distance() float32

	// Decay returns the attenuation exponent for point lights.
	//
	// Returns:
	//   - float32: the decay exponent
	Decay() float32

	// Enabled returns whether this light contributes to rendering.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// SetEnabled toggles the light.
	//
	// Parameters:
	//   - enabled: true to include the light when rendering
	SetEnabled(enabled bool)

	// Shadow returns the shadow configuration of the light.
	//
	// Returns:
	//   - Shadow: the shadow settings
	Shadow() Shadow
}

var _ Light = &lightImpl{}

// NewLight creates a new Light with the given type and options.
// Defaults: white, intensity 1, enabled, decay 2, no shadows.
//
// Parameters:
//   - lightType: the kind of light source
//   - options: functional options to configure the light
//
// Returns:
//   - Light: the newly created light
func NewLight(lightType LightType, options ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:        &sync.Mutex{},
		name:      lightType.String(),
		lightType: lightType,
		color:     common.Color{R: 1, G: 1, B: 1},
		intensity: 1,
		decay:     2,
		enabled:   true,
		position:  common.Vec3{X: 0, Y: 1, Z: 0},
		shadow:    DefaultShadow(),
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *lightImpl) Name() string {
	return l.name
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() common.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position = common.Vec3{X: x, Y: y, Z: z}
}

func (l *lightImpl) Direction() common.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return common.Vec3{}.Sub(l.position).Normalize()
}

func (l *lightImpl) Color() common.Color {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

func (l *lightImpl) SetColor(c common.Color) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = c
}

func (l *lightImpl) GroundColor() common.Color {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.groundColor
}

func (l *lightImpl) Intensity() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.intensity
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intensity = max(intensity, 0)
}

func (l *lightImpl) Distance() float32 {
	return l.distance
}

func (l *lightImpl) Decay() float32 {
	return l.decay
}

func (l *lightImpl) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *lightImpl) Shadow() Shadow {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.shadow
}
