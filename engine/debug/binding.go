package debug

import (
	"errors"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-hello/common"
)

var (
	// ErrInvalidBinding is returned by NewPanel for a binding that could produce out-of-range values.
	ErrInvalidBinding = errors.New("invalid debug binding")
	// ErrUnknownControl is returned when no control has the requested label.
	ErrUnknownControl = errors.New("unknown debug control")
	// ErrKindMismatch is returned when a number is written to a color control or the reverse.
	ErrKindMismatch = errors.New("debug control kind mismatch")
)

// Kind identifies the value type of a control.
type Kind int

const (
	// KindNumber is a bounded scalar slider.
	KindNumber Kind = iota
	// KindColor is an sRGB color picker.
	KindColor
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindColor:
		return "color"
	}
	return "unknown"
}

// Binding ties a panel control to a live value. Number and Color are the two implementations.
type Binding interface {
	label() string
	kind() Kind
	validate() error
}

// Number binds a scalar slider clamped to [Min, Max] and snapped to Step from Min.
type Number struct {
	Label string
	Min   float64
	Max   float64
	Step  float64
	Get   func() float64
	Set   func(float64)
}

func (n Number) label() string { return n.Label }

func (n Number) kind() Kind { return KindNumber }

func (n Number) validate() error {
	switch {
	case n.Label == "":
		return fmt.Errorf("%w: empty label", ErrInvalidBinding)
	case math.IsNaN(n.Min) || math.IsNaN(n.Max) || !(n.Min < n.Max):
		return fmt.Errorf("%w: %s: min %v must be below max %v", ErrInvalidBinding, n.Label, n.Min, n.Max)
	case !(n.Step > 0) || math.IsInf(n.Step, 0):
		return fmt.Errorf("%w: %s: step %v must be positive", ErrInvalidBinding, n.Label, n.Step)
	case n.Get == nil || n.Set == nil:
		return fmt.Errorf("%w: %s: missing accessor", ErrInvalidBinding, n.Label)
	}
	return nil
}

// constrain clamps v to the range and snaps it to the step grid.
func (n Number) constrain(v float64) float64 {
	v = common.Clamp(v, n.Min, n.Max)
	v = common.SnapToStep(v, n.Min, n.Step)
	return common.Clamp(v, n.Min, n.Max)
}

// Color binds an sRGB color control.
type Color struct {
	Label string
	Get   func() common.Color
	Set   func(common.Color)
}

func (c Color) label() string { return c.Label }

func (c Color) kind() Kind { return KindColor }

func (c Color) validate() error {
	switch {
	case c.Label == "":
		return fmt.Errorf("%w: empty label", ErrInvalidBinding)
	case c.Get == nil || c.Set == nil:
		return fmt.Errorf("%w: %s: missing accessor", ErrInvalidBinding, c.Label)
	}
	return nil
}

// Control describes one panel entry and its current value.
type Control struct {
	Label string
	Kind  Kind
	Min   float64
	Max   float64
	Step  float64
	// Value holds the current number; zero for color controls.
	Value float64
	// Color holds the current color; zero for number controls.
	Color common.Color
}
