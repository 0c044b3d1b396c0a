// Package desktop opens a native window through GLFW and exposes its WebGPU surface.
package desktop

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/Carmen-Shannon/oxy-hello/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a native window that can back a WebGPU surface.
type Window interface {
	window.Window

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if the window is closed
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	window.Callbacks

	mu *sync.Mutex

	title     string
	minWidth  int
	minHeight int
	width     int
	height    int
	density   float64

	window  *glfw.Window
	running bool
}

var _ Window = &glfwWindow{}

// NewWindow creates and shows a GLFW window with input callbacks wired to the window.Callbacks set.
// The calling goroutine is locked to its OS thread; PollEvents must be called from it.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
//   - error: error if GLFW or the window could not be initialized
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	runtime.LockOSThread()

	w := &glfwWindow{
		mu:        &sync.Mutex{},
		title:     "Hello",
		minWidth:  200,
		minHeight: 150,
		width:     1280,
		height:    720,
		density:   1,
	}
	for _, opt := range options {
		opt(w)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// WebGPU provides its own graphics API, so disable OpenGL context creation.
	// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, glfw.DontCare, glfw.DontCare)
	w.window = win
	w.running = true

	sx, _ := win.GetContentScale()
	w.density = float64(sx)
	w.width, w.height = w.logicalSize(win.GetFramebufferSize())

	w.registerCallbacks(win)
	return w, nil
}

func (w *glfwWindow) registerCallbacks(win *glfw.Window) {
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
			return
		}
		if action == glfw.Press || action == glfw.Repeat {
			w.EmitKey(int(key))
		}
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetScrollCallback
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.EmitScroll(float32(yoff))
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetMouseButtonCallback
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		var b int
		switch button {
		case glfw.MouseButtonLeft:
			b = common.MouseButtonLeft
		case glfw.MouseButtonRight:
			b = common.MouseButtonRight
		case glfw.MouseButtonMiddle:
			b = common.MouseButtonMiddle
		default:
			return
		}
		x, y := win.GetCursorPos()
		w.EmitMouseButton(b, action == glfw.Press, float32(x), float32(y))
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetCursorPosCallback
	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.EmitCursorPos(float32(xpos), float32(ypos))
	})

	// The framebuffer size is in physical pixels on every platform; dividing by the content scale
	// gives the logical size the rest of the engine works in.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetFramebufferSizeCallback
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, fbWidth, fbHeight int) {
		width, height := w.logicalSize(fbWidth, fbHeight)
		w.mu.Lock()
		w.width, w.height = width, height
		w.mu.Unlock()
		w.EmitResize(width, height)
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetContentScaleCallback
	win.SetContentScaleCallback(func(_ *glfw.Window, x, _ float32) {
		w.mu.Lock()
		w.density = float64(x)
		w.mu.Unlock()
		w.EmitContentScale(float64(x))
	})
}

func (w *glfwWindow) logicalSize(fbWidth, fbHeight int) (int, int) {
	w.mu.Lock()
	d := w.density
	w.mu.Unlock()
	if d <= 0 {
		d = 1
	}
	return int(math.Round(float64(fbWidth) / d)), int(math.Round(float64(fbHeight) / d))
}

func (w *glfwWindow) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

func (w *glfwWindow) Height() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}

func (w *glfwWindow) PixelDensity() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.density
}

// SurfaceDescriptor uses the wgpuglfw bridge package which has per-platform implementations (Windows, X11, Wayland, macOS).
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func (w *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	if !w.IsRunning() {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(w.window)
}

// PollEvents polls GLFW for pending events without blocking.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func (w *glfwWindow) PollEvents() bool {
	if !w.IsRunning() {
		return false
	}
	glfw.PollEvents()
	return w.IsRunning()
}

func (w *glfwWindow) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running && w.window != nil && !w.window.ShouldClose()
}

// Close destroys the GLFW window and terminates the GLFW library.
func (w *glfwWindow) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.window == nil {
		return window.ErrClosed
	}
	w.running = false
	w.window.SetShouldClose(true)
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
	return nil
}
