package light

import "github.com/Carmen-Shannon/oxy-hello/common"

// LightBuilderOption is a functional option for configuring a Light.
type LightBuilderOption func(*lightImpl)

// WithName sets the label used by the debug panel and in logs.
//
// Parameters:
//   - name: the light label
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithName(name string) LightBuilderOption {
	return func(l *lightImpl) {
		l.name = name
	}
}

// WithPosition sets the world-space position of the light.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = common.Vec3{X: x, Y: y, Z: z}
	}
}

// WithColor sets the light color from a 0xRRGGBB literal.
//
// Parameters:
//   - hex: packed sRGB color
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithColor(hex uint32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = common.ColorFromHex(hex)
	}
}

// WithGroundColor sets the ground color of a hemisphere light from a 0xRRGGBB literal.
//
// Parameters:
//   - hex: packed sRGB color
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithGroundColor(hex uint32) LightBuilderOption {
	return func(l *lightImpl) {
		l.groundColor = common.ColorFromHex(hex)
	}
}

// WithIntensity sets the scalar intensity multiplier.
//
// Parameters:
//   - intensity: the intensity value, negative values are clamped to zero
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = max(intensity, 0)
	}
}

// WithDistance sets the cutoff distance for point lights. Zero disables the cutoff.
//
// Parameters:
//   - distance: cutoff distance in world units
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithDistance(distance float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.distance = max(distance, 0)
	}
}

// WithDecay sets the attenuation exponent for point lights.
//
// Parameters:
//   - decay: the decay exponent (2 is physically correct)
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithDecay(decay float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.decay = decay
	}
}

// WithEnabled sets whether the light starts enabled.
//
// Parameters:
//   - enabled: true to include the light when rendering
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}

// WithCastShadow marks the light as a shadow caster with a square shadow map.
//
// Parameters:
//   - mapSize: shadow map resolution in texels (<= 0 keeps the default)
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithCastShadow(mapSize int) LightBuilderOption {
	return func(l *lightImpl) {
		l.shadow.Cast = true
		if mapSize > 0 {
			l.shadow.MapWidth = mapSize
			l.shadow.MapHeight = mapSize
		}
	}
}
