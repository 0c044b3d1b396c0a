// Package engine drives the render loop: it samples the clock, evaluates animations, updates
// camera controls and renders one frame per iteration, all on the goroutine that calls Run.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/Carmen-Shannon/oxy-hello/engine/animation"
	"github.com/Carmen-Shannon/oxy-hello/engine/camera"
	"github.com/Carmen-Shannon/oxy-hello/engine/clock"
	"github.com/Carmen-Shannon/oxy-hello/engine/debug"
	"github.com/Carmen-Shannon/oxy-hello/engine/loader"
	"github.com/Carmen-Shannon/oxy-hello/engine/profiler"
	"github.com/Carmen-Shannon/oxy-hello/engine/renderer"
	"github.com/Carmen-Shannon/oxy-hello/engine/scene"
	"github.com/Carmen-Shannon/oxy-hello/engine/viewport"
	"github.com/Carmen-Shannon/oxy-hello/engine/window"
)

const defaultMailboxSize = 64

var (
	// ErrMissingComponent is returned by NewEngine when the window, renderer, scene or camera is absent.
	ErrMissingComponent = errors.New("engine is missing a required component")
	// ErrAlreadyRunning is returned when Run is called while another Run is active.
	ErrAlreadyRunning = errors.New("engine is already running")
	// ErrPanic wraps a panic recovered from the render loop.
	ErrPanic = errors.New("render loop panicked")
)

// engine implements the Engine interface.
type engine struct {
	mu *sync.Mutex

	logger *slog.Logger

	window   window.Window
	renderer renderer.Renderer
	scene    scene.Scene
	camera   camera.Camera
	viewport *viewport.Manager
	clock    clock.Clock

	animations *animation.Set
	panel      *debug.Panel

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	mailbox     chan func()
	mailboxSize int

	running     bool
	quitChannel chan struct{}
	quitOnce    sync.Once

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	maxFrames        uint64        // Run stops after this many frames; 0 = unlimited

	frames       atomic.Uint64
	renderErrors atomic.Uint64
}

// Engine is the main entry point for the engine.
// It owns the render loop and wires window input to the viewport, camera controls and debug panel.
type Engine interface {
	// Window returns the underlying window.
	Window() window.Window

	// Renderer returns the renderer frames are drawn with.
	Renderer() renderer.Renderer

	// Scene returns the scene being drawn.
	Scene() scene.Scene

	// Camera returns the camera frames are drawn from.
	Camera() camera.Camera

	// Viewport returns the manager that republishes window size changes.
	Viewport() *viewport.Manager

	// Panel returns the debug panel, or nil if none was configured.
	Panel() *debug.Panel

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// ProfilerEnabled reports whether profiling output is on.
	ProfilerEnabled() bool

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Post queues fn to run on the render loop goroutine before the next frame.
	// Loader completions arrive this way so that all scene mutation happens on one goroutine.
	// Post never blocks once the engine has quit; the function is dropped instead.
	//
	// Parameters:
	//   - fn: the function to run
	Post(fn func())

	// Frame runs one iteration: sample the clock, evaluate animations, update controls, render once.
	//
	// Returns:
	//   - error: the renderer's error, if any
	Frame() error

	// Run polls the window, drains posted functions and renders frames until ctx is cancelled,
	// Quit is called, the window closes or the WithMaxFrames budget is spent. Render errors are logged and counted; the loop continues.
	// Must be called from the goroutine that owns the window.
	//
	// Parameters:
	//   - ctx: cancels the loop
	//
	// Returns:
	//   - error: nil on a normal stop, ErrAlreadyRunning, or an ErrPanic wrap
	Run(ctx context.Context) error

	// Quit signals the loop to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()

	// FrameCount returns the number of frames rendered or attempted.
	FrameCount() uint64

	// RenderErrors returns the number of frames whose render failed.
	RenderErrors() uint64
}

var _ loader.Dispatcher = Engine(nil)

// NewEngine creates a new Engine instance with the provided options.
// A window, renderer and scene are required; the camera defaults to the scene's camera.
// The viewport is sized from the window immediately, so Frame can be called before Run.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: ErrMissingComponent if a required component is absent
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		mu:          &sync.Mutex{},
		logger:      slog.Default(),
		quitChannel: make(chan struct{}),
		mailboxSize: defaultMailboxSize,
	}
	for _, opt := range options {
		opt(e)
	}

	if e.camera == nil && e.scene != nil {
		e.camera = e.scene.Camera()
	}
	switch {
	case e.window == nil:
		return nil, fmt.Errorf("%w: window", ErrMissingComponent)
	case e.renderer == nil:
		return nil, fmt.Errorf("%w: renderer", ErrMissingComponent)
	case e.scene == nil:
		return nil, fmt.Errorf("%w: scene", ErrMissingComponent)
	case e.camera == nil:
		return nil, fmt.Errorf("%w: camera", ErrMissingComponent)
	}

	if e.clock == nil {
		e.clock = clock.NewClock()
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))
	}
	e.mailbox = make(chan func(), e.mailboxSize)
	e.viewport = viewport.NewManager(viewport.WithCamera(e.camera), viewport.WithRenderer(e.renderer))

	e.wireWindow()
	e.resize(e.window.Width(), e.window.Height())
	return e, nil
}

func (e *engine) wireWindow() {
	e.window.SetResizeCallback(e.resize)
	e.window.SetContentScaleCallback(e.viewport.SetDensity)
	e.window.SetKeyCallback(e.handleKey)

	e.window.SetMouseButtonCallback(func(button int, pressed bool, x, y float32) {
		ctrl := e.camera.Controller()
		if ctrl == nil {
			return
		}
		if pressed {
			ctrl.PointerDown(button, x, y)
		} else {
			ctrl.PointerUp()
		}
	})
	e.window.SetCursorPosCallback(func(x, y float32) {
		if ctrl := e.camera.Controller(); ctrl != nil {
			ctrl.PointerMove(x, y)
		}
	})
	e.window.SetScrollCallback(func(delta float32) {
		if ctrl := e.camera.Controller(); ctrl != nil {
			ctrl.Wheel(delta)
		}
	})
}

func (e *engine) resize(width, height int) {
	e.viewport.Resize(width, height, e.window.PixelDensity())
	if width <= 0 || height <= 0 {
		return
	}
	if ctrl := e.camera.Controller(); ctrl != nil {
		ctrl.SetViewportSize(width, height)
	}
	e.logger.Debug("viewport resized", "width", width, "height", height, "density", e.viewport.Size().PixelDensity)
}

func (e *engine) handleKey(key int) {
	if e.panel != nil && e.panel.HandleKey(key) {
		if e.panel.Visible() {
			e.logger.Info("debug panel\n" + e.panel.String())
		}
		return
	}
	if key == common.KeyP {
		if e.ProfilerEnabled() {
			e.DisableProfiler()
		} else {
			e.EnableProfiler()
		}
	}
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Viewport() *viewport.Manager {
	return e.viewport
}

func (e *engine) Panel() *debug.Panel {
	return e.panel
}

func (e *engine) EnableProfiler() {
	if !e.profilingEnabled.Swap(true) {
		e.profiler.Reset()
		e.logger.Info("profiler enabled")
	}
}

func (e *engine) DisableProfiler() {
	if e.profilingEnabled.Swap(false) {
		e.logger.Info("profiler disabled")
	}
}

func (e *engine) ProfilerEnabled() bool {
	return e.profilingEnabled.Load()
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderFrameLimit = frameDuration(fps)
}

func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}

func (e *engine) Post(fn func()) {
	if fn == nil {
		return
	}
	select {
	case e.mailbox <- fn:
	case <-e.quitChannel:
	}
}

// drain runs every queued function without blocking.
func (e *engine) drain() {
	for {
		select {
		case fn := <-e.mailbox:
			fn()
		default:
			return
		}
	}
}

func (e *engine) Frame() error {
	elapsed := e.clock.Elapsed()
	if e.animations != nil {
		e.animations.Evaluate(elapsed)
	}
	if ctrl := e.camera.Controller(); ctrl != nil {
		ctrl.Update()
	}
	e.camera.Update()

	e.frames.Add(1)
	if err := e.renderer.Render(e.scene, e.camera); err != nil {
		e.renderErrors.Add(1)
		return err
	}
	return nil
}

func (e *engine) Run(ctx context.Context) (err error) {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return ErrAlreadyRunning
	}
	e.running = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
	}()
	// Recover from panics inside the render loop to avoid crashing the whole process.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("render loop recovered from panic", "panic", r)
			e.signalQuit()
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	e.logger.Info("render loop started")
	defer func() {
		e.logger.Info("render loop stopped", "frames", e.FrameCount(), "renderErrors", e.RenderErrors())
	}()

	for {
		select {
		case <-ctx.Done():
			e.signalQuit()
			return nil
		case <-e.quitChannel:
			return nil
		default:
		}

		frameStart := time.Now()
		if !e.window.PollEvents() {
			e.signalQuit()
			return nil
		}
		e.drain()

		if err := e.Frame(); err != nil {
			if errors.Is(err, renderer.ErrZeroDrawingBuffer) {
				e.logger.Debug("skipping frame", "error", err)
			} else {
				e.logger.Warn("render failed", "frame", e.FrameCount(), "error", err)
			}
		}

		if e.profilingEnabled.Load() {
			e.profiler.Tick()
		}
		if e.maxFrames > 0 && e.FrameCount() >= e.maxFrames {
			e.signalQuit()
			return nil
		}

		e.mu.Lock()
		limit := e.renderFrameLimit
		e.mu.Unlock()
		if limit > 0 {
			if remaining := limit - time.Since(frameStart); remaining > 0 {
				time.Sleep(remaining)
			}
		} else {
			runtime.Gosched()
		}
	}
}

// Quit signals the loop to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal the loop to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

func (e *engine) FrameCount() uint64 {
	return e.frames.Load()
}

func (e *engine) RenderErrors() uint64 {
	return e.renderErrors.Load()
}
