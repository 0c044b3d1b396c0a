package engine

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-hello/engine/animation"
	"github.com/Carmen-Shannon/oxy-hello/engine/camera"
	"github.com/Carmen-Shannon/oxy-hello/engine/clock"
	"github.com/Carmen-Shannon/oxy-hello/engine/debug"
	"github.com/Carmen-Shannon/oxy-hello/engine/profiler"
	"github.com/Carmen-Shannon/oxy-hello/engine/renderer"
	"github.com/Carmen-Shannon/oxy-hello/engine/scene"
	"github.com/Carmen-Shannon/oxy-hello/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled.Store(enabled)
	}
}

// WithProfiler replaces the default profiler, typically to control its reporting interval or time source.
//
// Parameters:
//   - p: the profiler to tick each frame while profiling is enabled
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets the window the engine polls for input and size changes.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer frames are drawn with.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithScene sets the scene to draw.
//
// Parameters:
//   - s: the Scene to draw
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithCamera overrides the scene's camera.
//
// Parameters:
//   - c: the camera frames are drawn from
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithAnimations sets the animation bindings evaluated at the start of every frame.
//
// Parameters:
//   - set: the animation set
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithAnimations(set *animation.Set) EngineBuilderOption {
	return func(e *engine) {
		e.animations = set
	}
}

// WithPanel attaches a debug panel driven by key input.
//
// Parameters:
//   - p: the debug panel
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPanel(p *debug.Panel) EngineBuilderOption {
	return func(e *engine) {
		e.panel = p
	}
}

// WithClock replaces the wall clock animations are evaluated against.
//
// Parameters:
//   - c: the clock
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClock(c clock.Clock) EngineBuilderOption {
	return func(e *engine) {
		e.clock = c
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.renderFrameLimit = frameDuration(fps)
	}
}

// WithMaxFrames stops Run after n frames have been rendered or attempted.
// Zero runs until another stop condition.
//
// Parameters:
//   - n: the frame budget
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMaxFrames(n uint64) EngineBuilderOption {
	return func(e *engine) {
		e.maxFrames = n
	}
}

// WithMailboxSize sets how many posted functions may queue before Post blocks.
// Values <= 0 are ignored.
//
// Parameters:
//   - n: mailbox capacity (default 64)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMailboxSize(n int) EngineBuilderOption {
	return func(e *engine) {
		if n > 0 {
			e.mailboxSize = n
		}
	}
}

// WithLogger sets the logger for loop events. A nil logger keeps slog.Default().
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger *slog.Logger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
