package webgpu

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-hello/engine/renderer"
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBuilderOption is a functional option applied to the WebGPU renderer during construction.
type RendererBuilderOption func(*webgpuRenderer)

// WithPresentMode sets how frames are delivered to the display. Defaults to VSync.
//
// Parameters:
//   - mode: the present mode
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode renderer.PresentMode) RendererBuilderOption {
	return func(r *webgpuRenderer) {
		switch mode {
		case renderer.PresentModeUncapped:
			r.presentMode = wgpu.PresentModeImmediate
		default:
			r.presentMode = wgpu.PresentModeFifo
		}
	}
}

// WithMSAA sets the multisample count. Defaults to MSAA4x.
//
// Parameters:
//   - count: MSAAOff or MSAA4x
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option to a renderer
func WithMSAA(count renderer.MSAASampleCount) RendererBuilderOption {
	return func(r *webgpuRenderer) {
		if count != renderer.MSAA4x {
			count = renderer.MSAAOff
		}
		r.sampleCount = count
	}
}

// WithForceSoftwareRenderer requests the fallback (software) adapter.
//
// Parameters:
//   - enabled: true to force the fallback adapter
//
// Returns:
//   - RendererBuilderOption: a function that applies the adapter option to a renderer
func WithForceSoftwareRenderer(enabled bool) RendererBuilderOption {
	return func(r *webgpuRenderer) {
		r.forceFallback = enabled
	}
}

// WithLogger sets the logger.
//
// Parameters:
//   - logger: the logger, nil keeps slog.Default()
//
// Returns:
//   - RendererBuilderOption: a function that applies the logger option to a renderer
func WithLogger(logger *slog.Logger) RendererBuilderOption {
	return func(r *webgpuRenderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
