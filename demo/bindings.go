package demo

import (
	"github.com/Carmen-Shannon/oxy-hello/engine/debug"
	"github.com/Carmen-Shannon/oxy-hello/engine/light"
	"github.com/Carmen-Shannon/oxy-hello/engine/material"
)

const (
	intensityMax = 3
	fineStep     = 0.001
)

// Bindings returns the debug panel controls: the four light intensities, then the material's
// metalness, roughness and color.
//
// Parameters:
//   - lights: the scene lights
//   - mat: the sphere material
//
// Returns:
//   - []debug.Binding: the bindings in panel order
func Bindings(lights Lights, mat material.Material) []debug.Binding {
	return []debug.Binding{
		intensity("ambient intensity", lights.Ambient),
		intensity("directional intensity", lights.Directional),
		intensity("hemisphere intensity", lights.Hemisphere),
		intensity("point intensity", lights.Point),
		debug.Number{
			Label: "metalness",
			Min:   0,
			Max:   1,
			Step:  fineStep,
			Get:   func() float64 { return float64(mat.Metalness()) },
			Set:   func(v float64) { mat.SetMetalness(float32(v)) },
		},
		debug.Number{
			Label: "roughness",
			Min:   0,
			Max:   1,
			Step:  fineStep,
			Get:   func() float64 { return float64(mat.Roughness()) },
			Set:   func(v float64) { mat.SetRoughness(float32(v)) },
		},
		debug.Color{
			Label: "color",
			Get:   mat.Color,
			Set:   mat.SetColor,
		},
	}
}

func intensity(label string, l light.Light) debug.Number {
	return debug.Number{
		Label: label,
		Min:   0,
		Max:   intensityMax,
		Step:  fineStep,
		Get:   func() float64 { return float64(l.Intensity()) },
		Set:   func(v float64) { l.SetIntensity(float32(v)) },
	}
}
