// Package renderer turns a scene and camera into frames and defines the backend contract.
package renderer

import (
	"errors"
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-hello/engine/camera"
	"github.com/Carmen-Shannon/oxy-hello/engine/scene"
	"github.com/Carmen-Shannon/oxy-hello/engine/viewport"
)

var (
	// ErrZeroDrawingBuffer is returned by Render while the output has no pixels.
	ErrZeroDrawingBuffer = errors.New("drawing buffer has zero size")
	// ErrNoCamera is returned when neither the caller nor the scene supplies a camera.
	ErrNoCamera = errors.New("no camera to render with")
	// ErrReleased is returned by Render after Release.
	ErrReleased = errors.New("renderer released")
)

// Renderer draws a scene as seen from a camera into an output of a given size.
//
// Output size is tracked in logical pixels plus a pixel ratio; the drawing buffer is
// their product, rounded. Renderers satisfy viewport.SizeTarget so the viewport manager
// can drive them directly.
type Renderer interface {
	// SetSize sets the output size in logical pixels. Negative values are treated as zero.
	//
	// Parameters:
	//   - width: logical width
	//   - height: logical height
	SetSize(width, height int)

	// SetPixelRatio sets the device pixel ratio used for the drawing buffer.
	// Non-positive or non-finite ratios are treated as 1.
	//
	// Parameters:
	//   - ratio: the pixel ratio
	SetPixelRatio(ratio float64)

	// Size returns the output size in logical pixels.
	Size() (width, height int)

	// PixelRatio returns the configured pixel ratio.
	PixelRatio() float64

	// DrawingBufferSize returns the output size in physical pixels.
	DrawingBufferSize() (width, height int)

	// Render draws one frame.
	//
	// Parameters:
	//   - s: the scene to draw
	//   - cam: the camera to draw from, nil to use the scene's camera
	//
	// Returns:
	//   - error: ErrZeroDrawingBuffer, ErrNoCamera, or a backend error
	Render(s scene.Scene, cam camera.Camera) error

	// Release frees backend resources. Render fails with ErrReleased afterwards.
	Release()
}

var _ viewport.SizeTarget = Renderer(nil)

// SizeState holds the output size shared by every backend. It is safe for concurrent use.
type SizeState struct {
	mu     sync.Mutex
	width  int
	height int
	ratio  float64
}

// SetSize records the logical output size.
func (s *SizeState) SetSize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = max(width, 0), max(height, 0)
}

// SetPixelRatio records the pixel ratio.
func (s *SizeState) SetPixelRatio(ratio float64) {
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		ratio = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratio = ratio
}

// Size returns the logical output size.
func (s *SizeState) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// PixelRatio returns the pixel ratio, 1 if never set.
func (s *SizeState) PixelRatio() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ratio == 0 {
		return 1
	}
	return s.ratio
}

// DrawingBufferSize returns the physical output size.
func (s *SizeState) DrawingBufferSize() (int, int) {
	w, h := s.Size()
	return viewport.DrawingBuffer(w, h, s.PixelRatio())
}
