package renderer

import (
	"log/slog"
	"sync"

	"github.com/Carmen-Shannon/oxy-hello/engine/camera"
	"github.com/Carmen-Shannon/oxy-hello/engine/scene"
)

const defaultHistory = 16

// Headless is a Renderer that builds frames without a GPU and keeps the most recent ones.
// It backs tests and the -headless mode of the demo.
type Headless struct {
	SizeState

	mu       *sync.Mutex
	logger   *slog.Logger
	history  int
	frames   []Frame
	count    uint64
	draws    uint64
	released bool
}

var _ Renderer = &Headless{}

// NewHeadless creates a headless renderer.
//
// Parameters:
//   - options: functional options for the renderer
//
// Returns:
//   - *Headless: the renderer
func NewHeadless(options ...HeadlessBuilderOption) *Headless {
	h := &Headless{
		mu:      &sync.Mutex{},
		logger:  slog.Default(),
		history: defaultHistory,
	}
	for _, option := range options {
		option(h)
	}
	return h
}

// Render builds a frame and records it.
func (h *Headless) Render(s scene.Scene, cam camera.Camera) error {
	h.mu.Lock()
	released := h.released
	h.mu.Unlock()
	if released {
		return ErrReleased
	}
	if w, hgt := h.DrawingBufferSize(); w == 0 || hgt == 0 {
		return ErrZeroDrawingBuffer
	}

	f, err := BuildFrame(s, cam)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.draws += uint64(len(f.Items))
	if h.history > 0 {
		if len(h.frames) == h.history {
			h.frames = append(h.frames[:0], h.frames[1:]...)
		}
		h.frames = append(h.frames, f)
	}
	if h.count == 1 {
		w, hgt := h.DrawingBufferSize()
		h.logger.Debug("first headless frame", "width", w, "height", hgt, "items", len(f.Items), "lights", len(f.Lights))
	}
	return nil
}

// Release marks the renderer as released.
func (h *Headless) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.released = true
	h.frames = nil
}

// FrameCount returns the number of frames rendered.
func (h *Headless) FrameCount() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

// DrawCount returns the total number of draw items across all frames.
func (h *Headless) DrawCount() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.draws
}

// Frames returns the retained frames, oldest first.
func (h *Headless) Frames() []Frame {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Frame, len(h.frames))
	copy(out, h.frames)
	return out
}

// LastFrame returns the most recent frame.
//
// Returns:
//   - Frame: the frame
//   - bool: false if nothing has been rendered or history is disabled
func (h *Headless) LastFrame() (Frame, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.frames) == 0 {
		return Frame{}, false
	}
	return h.frames[len(h.frames)-1], true
}
