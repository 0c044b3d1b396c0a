package font

import "log/slog"

// FontBuilderOption is a functional option for configuring a Font.
type FontBuilderOption func(*Font)

// WithLogger sets the logger used for missing-glyph warnings.
//
// Parameters:
//   - logger: the logger, nil keeps slog.Default()
//
// Returns:
//   - FontBuilderOption: option function to apply
func WithLogger(logger *slog.Logger) FontBuilderOption {
	return func(f *Font) {
		if logger != nil {
			f.logger = logger
		}
	}
}
