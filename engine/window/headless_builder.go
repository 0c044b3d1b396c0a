package window

// HeadlessBuilderOption is a functional option for configuring a Headless window.
type HeadlessBuilderOption func(w *Headless)

// WithSize sets the initial logical size.
//
// Parameters:
//   - width: initial width
//   - height: initial height
//
// Returns:
//   - HeadlessBuilderOption: option function to apply
func WithSize(width, height int) HeadlessBuilderOption {
	return func(w *Headless) {
		w.width, w.height = width, height
	}
}

// WithPixelDensity sets the initial device pixel ratio.
//
// Parameters:
//   - density: the device pixel ratio
//
// Returns:
//   - HeadlessBuilderOption: option function to apply
func WithPixelDensity(density float64) HeadlessBuilderOption {
	return func(w *Headless) {
		w.density = density
	}
}

// WithFrameBudget closes the window after n calls to PollEvents. Zero means never.
//
// Parameters:
//   - n: the number of polls allowed
//
// Returns:
//   - HeadlessBuilderOption: option function to apply
func WithFrameBudget(n int) HeadlessBuilderOption {
	return func(w *Headless) {
		w.budget = max(n, 0)
	}
}
