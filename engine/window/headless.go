package window

import (
	"errors"
	"sync"
)

// ErrClosed is returned when closing a window twice.
var ErrClosed = errors.New("window already closed")

// Headless is a Window with no platform backing. Size changes and input are injected by the caller,
// which makes it the window for tests and for running the demo without a display.
type Headless struct {
	Callbacks

	mu      *sync.Mutex
	width   int
	height  int
	density float64
	running bool
	budget  int
	polls   int
}

var _ Window = &Headless{}

// NewHeadless creates a running headless window, 1280x720 at density 1 unless configured otherwise.
//
// Parameters:
//   - options: functional options for the window
//
// Returns:
//   - *Headless: the window
func NewHeadless(options ...HeadlessBuilderOption) *Headless {
	w := &Headless{
		mu:      &sync.Mutex{},
		width:   1280,
		height:  720,
		density: 1,
		running: true,
	}
	for _, option := range options {
		option(w)
	}
	return w
}

func (w *Headless) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

func (w *Headless) Height() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}

func (w *Headless) PixelDensity() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.density
}

// Resize changes the size and fires the resize callback.
//
// Parameters:
//   - width, height: new logical size
func (w *Headless) Resize(width, height int) {
	w.mu.Lock()
	w.width, w.height = width, height
	w.mu.Unlock()
	w.EmitResize(width, height)
}

// SetContentScale changes the density and fires the content scale callback.
//
// Parameters:
//   - density: new device pixel ratio
func (w *Headless) SetContentScale(density float64) {
	w.mu.Lock()
	w.density = density
	w.mu.Unlock()
	w.EmitContentScale(density)
}

// PollEvents counts the poll against the frame budget. Once the budget is spent the window closes.
func (w *Headless) PollEvents() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return false
	}
	if w.budget > 0 && w.polls >= w.budget {
		w.running = false
		return false
	}
	w.polls++
	return true
}

// Polls returns how many times PollEvents was called while running.
func (w *Headless) Polls() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.polls
}

func (w *Headless) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Headless) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return ErrClosed
	}
	w.running = false
	return nil
}
