package viewport

import (
	"math"
	"sync"
)

// MaxPixelDensity is the highest device pixel ratio the renderer is ever configured with.
const MaxPixelDensity = 2.0

// Size is the last observed output size of the window.
type Size struct {
	// Width is the window width in logical pixels.
	Width int
	// Height is the window height in logical pixels.
	Height int
	// PixelDensity is the device pixel ratio, already clamped to MaxPixelDensity.
	PixelDensity float64
}

// Aspect returns Width / Height, or 0 when either dimension is zero.
func (s Size) Aspect() float32 {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	return float32(s.Width) / float32(s.Height)
}

// AspectTarget receives the aspect ratio on every resize. Cameras implement it.
type AspectTarget interface {
	SetAspect(aspect float32)
}

// SizeTarget receives the output size and pixel ratio on every resize. Renderers implement it.
type SizeTarget interface {
	SetSize(width, height int)
	SetPixelRatio(ratio float64)
}

// ClampDensity limits a device-reported pixel density to MaxPixelDensity.
// Non-positive or non-finite densities are treated as 1.
//
// Parameters:
//   - density: the device pixel ratio reported by the window system
//
// Returns:
//   - float64: the density to configure the renderer with
func ClampDensity(density float64) float64 {
	if density <= 0 || math.IsNaN(density) || math.IsInf(density, 0) {
		return 1
	}
	return math.Min(density, MaxPixelDensity)
}

// Manager owns the viewport size and republishes it to the camera and renderer.
type Manager struct {
	mu *sync.Mutex

	size     Size
	camera   AspectTarget
	renderer SizeTarget
}

// NewManager creates a viewport manager. Targets are optional; a nil target is skipped on resize.
//
// Parameters:
//   - options: functional options to configure the manager
//
// Returns:
//   - *Manager: the newly created manager
func NewManager(options ...ManagerBuilderOption) *Manager {
	m := &Manager{
		mu:   &sync.Mutex{},
		size: Size{PixelDensity: 1},
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Resize records the new window size and density, then pushes the aspect ratio to the camera and
// the size and clamped density to the renderer. Repeated calls with the same input leave the same state.
// A zero width or height is recorded but not republished, so the previous aspect and renderer size stay in effect.
//
// Parameters:
//   - width: window width in logical pixels
//   - height: window height in logical pixels
//   - deviceDensity: device pixel ratio reported by the window system
func (m *Manager) Resize(width, height int, deviceDensity float64) {
	m.mu.Lock()
	m.size = Size{
		Width:        max(width, 0),
		Height:       max(height, 0),
		PixelDensity: ClampDensity(deviceDensity),
	}
	size := m.size
	cam, r := m.camera, m.renderer
	m.mu.Unlock()

	if size.Width == 0 || size.Height == 0 {
		return
	}
	if cam != nil {
		cam.SetAspect(size.Aspect())
	}
	if r != nil {
		r.SetSize(size.Width, size.Height)
		r.SetPixelRatio(size.PixelDensity)
	}
}

// SetDensity updates only the pixel density, keeping the last observed dimensions.
//
// Parameters:
//   - deviceDensity: device pixel ratio reported by the window system
func (m *Manager) SetDensity(deviceDensity float64) {
	s := m.Size()
	m.Resize(s.Width, s.Height, deviceDensity)
}

// Size returns the last recorded viewport size.
//
// Returns:
//   - Size: the current size
func (m *Manager) Size() Size {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size
}

// DrawingBufferSize returns the size of the backing buffer in physical pixels.
//
// Returns:
//   - width, height: the logical size scaled by the clamped density, rounded
func (m *Manager) DrawingBufferSize() (width, height int) {
	s := m.Size()
	return DrawingBuffer(s.Width, s.Height, s.PixelDensity)
}

// DrawingBuffer scales a logical size by a pixel ratio, rounding to whole pixels.
//
// Parameters:
//   - width, height: logical size
//   - ratio: pixel ratio
//
// Returns:
//   - int, int: the physical size
func DrawingBuffer(width, height int, ratio float64) (int, int) {
	return int(math.Round(float64(width) * ratio)), int(math.Round(float64(height) * ratio))
}
