// Package window defines the window contract the engine drives and a headless implementation.
package window

import "sync"

// Window provides an output size and input events.
// Sizes are in logical pixels; PixelDensity is the device pixel ratio reported by the platform.
type Window interface {
	// Width returns the client area width in logical pixels.
	Width() int

	// Height returns the client area height in logical pixels.
	Height() int

	// PixelDensity returns the unclamped device pixel ratio.
	PixelDensity() float64

	// SetResizeCallback sets the function called when the client area changes size.
	//
	// Parameters:
	//   - callback: function receiving the new logical width and height
	SetResizeCallback(callback func(width, height int))

	// SetContentScaleCallback sets the function called when the window moves to a display with a different density.
	//
	// Parameters:
	//   - callback: function receiving the new device pixel ratio
	SetContentScaleCallback(callback func(density float64))

	// SetKeyCallback sets the callback for key presses and repeats.
	//
	// Parameters:
	//   - callback: function receiving the key code (see common.Key*)
	SetKeyCallback(callback func(key int))

	// SetMouseButtonCallback sets the callback for mouse button presses and releases.
	//
	// Parameters:
	//   - callback: function receiving the button (see common.MouseButton*), its state and the cursor position
	SetMouseButtonCallback(callback func(button int, pressed bool, x, y float32))

	// SetCursorPosCallback sets the callback for cursor movement.
	//
	// Parameters:
	//   - callback: function receiving the cursor position in logical pixels
	SetCursorPosCallback(callback func(x, y float32))

	// SetScrollCallback sets the callback for mouse wheel events.
	//
	// Parameters:
	//   - callback: function receiving the vertical scroll delta (positive = away from the user)
	SetScrollCallback(callback func(delta float32))

	// PollEvents dispatches pending events to the registered callbacks without blocking.
	//
	// Returns:
	//   - bool: false once the window has been asked to close
	PollEvents() bool

	// IsRunning returns true until the window is closed.
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if the window was never opened
	Close() error
}

// Callbacks stores the event handlers registered on a window. Implementations embed it
// and call the Emit methods from their event loop.
type Callbacks struct {
	mu sync.Mutex

	onResize       func(width, height int)
	onContentScale func(density float64)
	onKey          func(key int)
	onMouseButton  func(button int, pressed bool, x, y float32)
	onCursorPos    func(x, y float32)
	onScroll       func(delta float32)
}

func (c *Callbacks) SetResizeCallback(callback func(width, height int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onResize = callback
}

func (c *Callbacks) SetContentScaleCallback(callback func(density float64)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onContentScale = callback
}

func (c *Callbacks) SetKeyCallback(callback func(key int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onKey = callback
}

func (c *Callbacks) SetMouseButtonCallback(callback func(button int, pressed bool, x, y float32)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMouseButton = callback
}

func (c *Callbacks) SetCursorPosCallback(callback func(x, y float32)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onCursorPos = callback
}

func (c *Callbacks) SetScrollCallback(callback func(delta float32)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onScroll = callback
}

// EmitResize calls the resize callback, if any.
func (c *Callbacks) EmitResize(width, height int) {
	c.mu.Lock()
	cb := c.onResize
	c.mu.Unlock()
	if cb != nil {
		cb(width, height)
	}
}

// EmitContentScale calls the content scale callback, if any.
func (c *Callbacks) EmitContentScale(density float64) {
	c.mu.Lock()
	cb := c.onContentScale
	c.mu.Unlock()
	if cb != nil {
		cb(density)
	}
}

// EmitKey calls the key callback, if any.
func (c *Callbacks) EmitKey(key int) {
	c.mu.Lock()
	cb := c.onKey
	c.mu.Unlock()
	if cb != nil {
		cb(key)
	}
}

// EmitMouseButton calls the mouse button callback, if any.
func (c *Callbacks) EmitMouseButton(button int, pressed bool, x, y float32) {
	c.mu.Lock()
	cb := c.onMouseButton
	c.mu.Unlock()
	if cb != nil {
		cb(button, pressed, x, y)
	}
}

// EmitCursorPos calls the cursor callback, if any.
func (c *Callbacks) EmitCursorPos(x, y float32) {
	c.mu.Lock()
	cb := c.onCursorPos
	c.mu.Unlock()
	if cb != nil {
		cb(x, y)
	}
}

// EmitScroll calls the scroll callback, if any.
func (c *Callbacks) EmitScroll(delta float32) {
	c.mu.Lock()
	cb := c.onScroll
	c.mu.Unlock()
	if cb != nil {
		cb(delta)
	}
}
