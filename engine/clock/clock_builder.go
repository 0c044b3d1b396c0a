package clock

import "time"

// ClockBuilderOption is a functional option for configuring a Clock.
type ClockBuilderOption func(*clockImpl)

// WithTimeSource replaces the wall clock used for sampling. Intended for tests and
// deterministic headless runs.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ClockBuilderOption: option function to apply
func WithTimeSource(now func() time.Time) ClockBuilderOption {
	return func(c *clockImpl) {
		if now != nil {
			c.now = now
		}
	}
}
