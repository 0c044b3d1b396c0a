package common

import (
	"cmp"
	"math"
)

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Clamp limits v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - T: v limited to [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SnapToStep rounds v to the nearest multiple of step measured from origin.
// A non-positive step returns v unchanged.
//
// Parameters:
//   - v: the value to snap
//   - origin: the value the step grid starts from
//   - step: the grid spacing
//
// Returns:
//   - float64: the snapped value
func SnapToStep(v, origin, step float64) float64 {
	if step <= 0 {
		return v
	}
	n := math.Round((v - origin) / step)
	// Round the result to the step's decimal precision so 0.001 steps don't accumulate float noise.
	snapped := origin + n*step
	decimals := math.Max(0, math.Ceil(-math.Log10(step)))
	scale := math.Pow(10, decimals)
	return math.Round(snapped*scale) / scale
}
