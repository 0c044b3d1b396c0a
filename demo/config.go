package demo

import (
	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/Carmen-Shannon/oxy-hello/engine/geometry"
)

// Config holds every tunable constant of the demo scene.
type Config struct {
	// Width and Height seed the camera aspect before the first resize.
	Width  int
	Height int

	Assets   AssetConfig
	Lights   LightsConfig
	Material MaterialConfig
	Sphere   SphereConfig
	Text     TextConfig
	Camera   CameraConfig
}

// AssetConfig names the asset paths, resolved by the loader's source.
type AssetConfig struct {
	FontURL       string
	BackgroundURL string
	MatcapURL     string
}

// LightConfig describes one light. Fields a light type does not use are ignored.
type LightConfig struct {
	Color         uint32
	GroundColor   uint32
	Intensity     float32
	Position      common.Vec3
	Distance      float32
	Decay         float32
	ShadowMapSize int // 0 disables shadow casting
}

// LightsConfig holds the four demo lights.
type LightsConfig struct {
	Ambient     LightConfig
	Directional LightConfig
	Hemisphere  LightConfig
	Point       LightConfig
}

// MaterialConfig describes the reflective sphere material.
type MaterialConfig struct {
	Color       uint32
	Metalness   float32
	Roughness   float32
	FlatShading bool
}

// SphereConfig describes the rotating sphere.
type SphereConfig struct {
	Radius         float32
	WidthSegments  int
	HeightSegments int
	// SpinRate is the y rotation in radians per elapsed second.
	SpinRate float64
}

// TextConfig describes the extruded text mesh.
type TextConfig struct {
	Text     string
	Options  geometry.TextOptions
	Position common.Vec3
}

// CameraConfig describes the perspective camera and its orbit controls.
type CameraConfig struct {
	FovDegrees    float32
	Near          float32
	Far           float32
	Position      common.Vec3
	DampingFactor float32
}

// DefaultConfig returns the demo as it ships.
//
// Returns:
//   - Config: the default configuration
func DefaultConfig() Config {
	return Config{
		Width:  1280,
		Height: 720,
		Assets: AssetConfig{
			FontURL:       "/fonts/Funkorama_Regular.json",
			BackgroundURL: "/textures/gradients/gradient2.png",
			MatcapURL:     "/textures/matcaps/8.png",
		},
		Lights: LightsConfig{
			Ambient: LightConfig{Color: 0xefc3ff, Intensity: 0.6},
			Directional: LightConfig{
				Color:         0xffffff,
				Intensity:     1.1,
				Position:      common.Vec3{X: 2, Y: 2, Z: -1},
				ShadowMapSize: 1024,
			},
			Hemisphere: LightConfig{
				Color:       0xff0000,
				GroundColor: 0xf4cccc,
				Intensity:   0.9,
				Position:    common.Vec3{X: 0, Y: 1, Z: 0},
			},
			Point: LightConfig{
				Color:     0xff86cf,
				Intensity: 1.5,
				Position:  common.Vec3{X: 1, Y: -0.5, Z: 1},
				Distance:  0,
				Decay:     2,
			},
		},
		Material: MaterialConfig{
			Color:       0xc09bd9,
			Metalness:   0.7,
			Roughness:   0.5,
			FlatShading: true,
		},
		Sphere: SphereConfig{
			Radius:         0.7,
			WidthSegments:  16,
			HeightSegments: 16,
			SpinRate:       0.2,
		},
		Text: TextConfig{
			Text: "Hello",
			Options: geometry.TextOptions{
				Size:           0.5,
				Depth:          0.2,
				Height:         0.01,
				CurveSegments:  116,
				BevelEnabled:   true,
				BevelThickness: 0.05,
				BevelSize:      0.03,
				BevelOffset:    0,
				BevelSegments:  10,
			},
			Position: common.Vec3{X: 0, Y: 1, Z: -1},
		},
		Camera: CameraConfig{
			FovDegrees:    50,
			Near:          0.1,
			Far:           100,
			Position:      common.Vec3{X: 1, Y: 1, Z: 2},
			DampingFactor: 0.05,
		},
	}
}
