// Package demo composes the "Hello" scene: four lights, a reflective spinning sphere over a
// gradient background, and matcap text that appears once its font has loaded.
package demo

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Carmen-Shannon/oxy-hello/engine"
	"github.com/Carmen-Shannon/oxy-hello/engine/animation"
	"github.com/Carmen-Shannon/oxy-hello/engine/camera"
	"github.com/Carmen-Shannon/oxy-hello/engine/debug"
	"github.com/Carmen-Shannon/oxy-hello/engine/font"
	"github.com/Carmen-Shannon/oxy-hello/engine/geometry"
	"github.com/Carmen-Shannon/oxy-hello/engine/light"
	"github.com/Carmen-Shannon/oxy-hello/engine/loader"
	"github.com/Carmen-Shannon/oxy-hello/engine/material"
	"github.com/Carmen-Shannon/oxy-hello/engine/scene"
	"github.com/Carmen-Shannon/oxy-hello/engine/texture"
	"github.com/Carmen-Shannon/oxy-hello/engine/transform"
)

const (
	sphereName = "sphere"
	textName   = "text"
)

// ErrNoFont is returned when building text without a font.
var ErrNoFont = errors.New("no font")

// Lights groups the four scene lights.
type Lights struct {
	Ambient     light.Light
	Directional light.Light
	Hemisphere  light.Light
	Point       light.Light
}

// Demo owns the composed scene and the pending asset loads that complete it.
type Demo struct {
	mu     *sync.Mutex
	logger *slog.Logger

	cfg    Config
	loader loader.Loader

	scene      scene.Scene
	camera     camera.Camera
	sphere     scene.Mesh
	material   material.Material
	lights     Lights
	background texture.Texture
	matcap     texture.Texture
	animations *animation.Set
	panel      *debug.Panel

	backgroundFuture *loader.Future[texture.Texture]
	matcapFuture     *loader.Future[texture.Texture]
	fontFuture       *loader.Future[*font.Font]

	text    scene.Mesh
	started bool
}

// New builds the scene and starts loading its assets. Textures are requested eagerly so their
// handles can be bound to materials now; they fill in when decoding finishes. The text mesh is
// added by the completion registered in Start.
//
// Parameters:
//   - cfg: the demo configuration
//   - l: the loader assets are fetched through
//   - options: functional options for the demo
//
// Returns:
//   - *Demo: the demo
//   - error: a geometry or binding error from scene construction
func New(cfg Config, l loader.Loader, options ...DemoBuilderOption) (*Demo, error) {
	d := &Demo{
		mu:     &sync.Mutex{},
		logger: slog.Default(),
		cfg:    cfg,
		loader: l,
	}
	for _, option := range options {
		option(d)
	}

	d.background, d.backgroundFuture = l.LoadTexture(cfg.Assets.BackgroundURL, texture.ColorSpaceSRGB)
	d.matcap, d.matcapFuture = l.LoadTexture(cfg.Assets.MatcapURL, texture.ColorSpaceSRGB)
	d.fontFuture = l.LoadFont(cfg.Assets.FontURL)

	if err := d.build(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Demo) build() error {
	cfg := d.cfg

	d.lights = NewLights(cfg.Lights)
	d.material = material.NewStandard(
		material.WithName("reflective"),
		material.WithColor(cfg.Material.Color),
		material.WithMetalness(cfg.Material.Metalness),
		material.WithRoughness(cfg.Material.Roughness),
		material.WithFlatShading(cfg.Material.FlatShading),
		material.WithEnvMap(d.background),
	)

	g, err := geometry.NewSphere(cfg.Sphere.Radius, cfg.Sphere.WidthSegments, cfg.Sphere.HeightSegments)
	if err != nil {
		return fmt.Errorf("building sphere: %w", err)
	}
	d.sphere = scene.NewMesh(g, d.material, scene.WithMeshName(sphereName), scene.WithCastShadow(true))

	d.camera = NewCamera(cfg.Camera, cfg.Width, cfg.Height)

	d.scene = scene.NewScene(
		scene.WithName("hello"),
		scene.WithCamera(d.camera),
		scene.WithBackground(d.background),
		scene.WithMeshes(d.sphere),
		scene.WithLights(d.lights.Ambient, d.lights.Directional, d.lights.Hemisphere, d.lights.Point),
	)

	d.animations, err = animation.NewSet(animation.Binding{
		Name:      "sphere.rotation.y",
		Target:    d.sphere.Transform(),
		Component: transform.RotationY,
		Rule:      animation.Linear(cfg.Sphere.SpinRate),
	})
	if err != nil {
		return fmt.Errorf("binding sphere rotation: %w", err)
	}

	d.panel, err = debug.NewPanel(Bindings(d.lights, d.material)...)
	if err != nil {
		return fmt.Errorf("building debug panel: %w", err)
	}
	d.panel.SetLogger(d.logger)
	return nil
}

// NewLights creates the ambient, directional, hemisphere and point lights.
//
// Parameters:
//   - cfg: the light configuration
//
// Returns:
//   - Lights: the four lights
func NewLights(cfg LightsConfig) Lights {
	directional := []light.LightBuilderOption{
		light.WithName("directional"),
		light.WithColor(cfg.Directional.Color),
		light.WithIntensity(cfg.Directional.Intensity),
		light.WithPosition(cfg.Directional.Position.X, cfg.Directional.Position.Y, cfg.Directional.Position.Z),
	}
	if cfg.Directional.ShadowMapSize > 0 {
		directional = append(directional, light.WithCastShadow(cfg.Directional.ShadowMapSize))
	}

	return Lights{
		Ambient: light.NewLight(light.LightTypeAmbient,
			light.WithName("ambient"),
			light.WithColor(cfg.Ambient.Color),
			light.WithIntensity(cfg.Ambient.Intensity),
		),
		Directional: light.NewLight(light.LightTypeDirectional, directional...),
		Hemisphere: light.NewLight(light.LightTypeHemisphere,
			light.WithName("hemisphere"),
			light.WithColor(cfg.Hemisphere.Color),
			light.WithGroundColor(cfg.Hemisphere.GroundColor),
			light.WithIntensity(cfg.Hemisphere.Intensity),
			light.WithPosition(cfg.Hemisphere.Position.X, cfg.Hemisphere.Position.Y, cfg.Hemisphere.Position.Z),
		),
		Point: light.NewLight(light.LightTypePoint,
			light.WithName("point"),
			light.WithColor(cfg.Point.Color),
			light.WithIntensity(cfg.Point.Intensity),
			light.WithPosition(cfg.Point.Position.X, cfg.Point.Position.Y, cfg.Point.Position.Z),
			light.WithDistance(cfg.Point.Distance),
			light.WithDecay(cfg.Point.Decay),
		),
	}
}

// NewCamera creates the perspective camera with damped orbit controls.
//
// Parameters:
//   - cfg: the camera configuration
//   - width, height: the initial viewport, used for the aspect when both are positive
//
// Returns:
//   - camera.Camera: the camera with its controller attached
func NewCamera(cfg CameraConfig, width, height int) camera.Camera {
	options := []camera.CameraBuilderOption{
		camera.WithFovDegrees(cfg.FovDegrees),
		camera.WithNear(cfg.Near),
		camera.WithFar(cfg.Far),
		camera.WithPosition(cfg.Position.X, cfg.Position.Y, cfg.Position.Z),
		camera.WithController(camera.NewOrbitControls(
			camera.WithDamping(true),
			camera.WithDampingFactor(cfg.DampingFactor),
		)),
	}
	if width > 0 && height > 0 {
		options = append(options, camera.WithAspect(float32(width)/float32(height)))
	}
	return camera.NewCamera(options...)
}

// BuildTextMesh extrudes the configured text with f, centers it and places it with a matcap material.
// It does not touch any scene.
//
// Parameters:
//   - f: the loaded font
//   - matcap: the matcap texture, possibly not yet filled
//   - cfg: the text configuration
//
// Returns:
//   - scene.Mesh: the positioned text mesh
//   - error: ErrNoFont or a geometry error
func BuildTextMesh(f *font.Font, matcap texture.Texture, cfg TextConfig) (scene.Mesh, error) {
	if f == nil {
		return nil, ErrNoFont
	}
	g, err := geometry.NewText(f, cfg.Text, cfg.Options)
	if err != nil {
		return nil, fmt.Errorf("building text %q: %w", cfg.Text, err)
	}
	g.Center()

	mat := material.NewMatcap(material.WithName(textName), material.WithMatcap(matcap))
	return scene.NewMesh(g, mat, scene.WithMeshName(textName), scene.WithMeshPosition(cfg.Position)), nil
}

// Start registers the load completions. They are posted through d so the scene is only
// mutated on the dispatcher's goroutine. Calling Start more than once has no effect.
//
// Parameters:
//   - disp: where completions run, normally the engine
func (d *Demo) Start(disp loader.Dispatcher) {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		return
	}
	d.started = true
	d.mu.Unlock()

	d.watchTexture(disp, d.cfg.Assets.BackgroundURL, d.backgroundFuture)
	d.watchTexture(disp, d.cfg.Assets.MatcapURL, d.matcapFuture)

	url := d.cfg.Assets.FontURL
	d.fontFuture.Then(disp, func(f *font.Font) {
		mesh, err := BuildTextMesh(f, d.matcap, d.cfg.Text)
		if err != nil {
			d.logger.Error("error building text", "url", url, "error", err)
			return
		}
		d.scene.AddMesh(mesh)
		d.mu.Lock()
		d.text = mesh
		d.mu.Unlock()
		d.logger.Info("text ready", "font", f.FamilyName(), "vertices", mesh.Geometry().VertexCount())
	}, func(err error) {
		d.logger.Error("error loading font", "url", url, "error", err)
	})
}

func (d *Demo) watchTexture(disp loader.Dispatcher, url string, f *loader.Future[texture.Texture]) {
	f.Then(disp, func(tex texture.Texture) {
		w, h := tex.Size()
		d.logger.Debug("texture ready", "url", url, "width", w, "height", h)
	}, func(err error) {
		d.logger.Error("error loading texture", "url", url, "error", err)
	})
}

// EngineOptions returns the options that hand the scene, animations and panel to an engine.
func (d *Demo) EngineOptions() []engine.EngineBuilderOption {
	return []engine.EngineBuilderOption{
		engine.WithScene(d.scene),
		engine.WithCamera(d.camera),
		engine.WithAnimations(d.animations),
		engine.WithPanel(d.panel),
	}
}

// Scene returns the composed scene.
func (d *Demo) Scene() scene.Scene {
	return d.scene
}

// Camera returns the demo camera.
func (d *Demo) Camera() camera.Camera {
	return d.camera
}

// Sphere returns the spinning sphere mesh.
func (d *Demo) Sphere() scene.Mesh {
	return d.sphere
}

// Material returns the sphere material.
func (d *Demo) Material() material.Material {
	return d.material
}

// Lights returns the scene lights.
func (d *Demo) Lights() Lights {
	return d.lights
}

// Background returns the gradient texture used as background and environment map.
func (d *Demo) Background() texture.Texture {
	return d.background
}

// Matcap returns the text matcap texture.
func (d *Demo) Matcap() texture.Texture {
	return d.matcap
}

// Animations returns the animation set.
func (d *Demo) Animations() *animation.Set {
	return d.animations
}

// Panel returns the debug panel.
func (d *Demo) Panel() *debug.Panel {
	return d.panel
}

// Text returns the text mesh, or nil until the font has loaded.
func (d *Demo) Text() scene.Mesh {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// FontFuture returns the pending font load, for callers that need to wait on it.
func (d *Demo) FontFuture() *loader.Future[*font.Font] {
	return d.fontFuture
}
