package renderer

import "log/slog"

// HeadlessBuilderOption is a functional option applied to a Headless renderer during construction.
type HeadlessBuilderOption func(*Headless)

// WithHistory sets how many recent frames are retained. Zero disables retention. Defaults to 16.
//
// Parameters:
//   - n: the number of frames to keep
//
// Returns:
//   - HeadlessBuilderOption: a function that applies the history option to a renderer
func WithHistory(n int) HeadlessBuilderOption {
	return func(h *Headless) {
		h.history = max(n, 0)
	}
}

// WithLogger sets the logger.
//
// Parameters:
//   - logger: the logger, nil keeps slog.Default()
//
// Returns:
//   - HeadlessBuilderOption: a function that applies the logger option to a renderer
func WithLogger(logger *slog.Logger) HeadlessBuilderOption {
	return func(h *Headless) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithSize sets the initial logical size and pixel ratio.
//
// Parameters:
//   - width, height: logical size
//   - ratio: pixel ratio
//
// Returns:
//   - HeadlessBuilderOption: a function that applies the size option to a renderer
func WithSize(width, height int, ratio float64) HeadlessBuilderOption {
	return func(h *Headless) {
		h.SetSize(width, height)
		h.SetPixelRatio(ratio)
	}
}
