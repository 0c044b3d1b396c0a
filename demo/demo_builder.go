package demo

import "log/slog"

// DemoBuilderOption is a functional option for configuring a Demo.
type DemoBuilderOption func(*Demo)

// WithLogger sets the logger for load results and panel changes. A nil logger keeps slog.Default().
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - DemoBuilderOption: option function to apply
func WithLogger(logger *slog.Logger) DemoBuilderOption {
	return func(d *Demo) {
		if logger != nil {
			d.logger = logger
		}
	}
}
