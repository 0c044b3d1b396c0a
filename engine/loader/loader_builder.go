package loader

import "log/slog"

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithLogger sets the logger for load diagnostics and font warnings.
//
// Parameters:
//   - logger: the logger, nil keeps slog.Default()
//
// Returns:
//   - LoaderBuilderOption: a function that applies the logger option to a loader
func WithLogger(logger *slog.Logger) LoaderBuilderOption {
	return func(l *loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithWorkers sets the maximum number of concurrent fetch and decode workers. Defaults to 4.
//
// Parameters:
//   - n: the worker count, values below 1 are treated as 1
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker option to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		l.workers = max(n, 1)
	}
}

// WithProgressCallback registers a function called as asset bytes arrive.
// total is -1 when the source does not know the size. The callback runs on a worker goroutine.
//
// Parameters:
//   - fn: the progress callback
//
// Returns:
//   - LoaderBuilderOption: a function that applies the progress option to a loader
func WithProgressCallback(fn func(url string, read, total int64)) LoaderBuilderOption {
	return func(l *loader) {
		l.progress = fn
	}
}
