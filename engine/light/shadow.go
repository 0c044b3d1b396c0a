package light

// DefaultShadowMapSize is the shadow map resolution used when a light casts shadows without an explicit size.
const DefaultShadowMapSize = 512

// DefaultShadowBias is the depth bias applied when sampling shadow maps to prevent shadow acne.
const DefaultShadowBias float32 = 0.0

// Shadow describes whether and how a light casts shadows.
type Shadow struct {
	// Cast is true when the light should render a shadow map.
	Cast bool
	// MapWidth and MapHeight are the shadow map resolution in texels.
	MapWidth, MapHeight int
	// Bias is the depth offset applied when comparing against the shadow map.
	Bias float32
}

// DefaultShadow returns a disabled shadow configuration with the default map size.
//
// Returns:
//   - Shadow: the default settings
func DefaultShadow() Shadow {
	return Shadow{
		MapWidth:  DefaultShadowMapSize,
		MapHeight: DefaultShadowMapSize,
		Bias:      DefaultShadowBias,
	}
}
