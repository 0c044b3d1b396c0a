package geometry

import (
	"errors"
	"fmt"
)

// ErrNoShapeSource is returned when text geometry is requested without a glyph provider.
var ErrNoShapeSource = errors.New("no shape source")

// ShapeSource turns a string into 2D outlines. Fonts implement it.
type ShapeSource interface {
	// Shapes lays out text at the given size, sampling curves with curveSegments divisions.
	Shapes(text string, size float32, curveSegments int) ([]Shape, error)
}

// TextOptions configures NewText.
type TextOptions struct {
	Size float32
	// Depth is the extrusion depth.
	Depth float32
	// Height is the legacy name for Depth and is only read when Depth is zero.
	Height float32

	CurveSegments  int
	BevelEnabled   bool
	BevelThickness float32
	BevelSize      float32
	BevelOffset    float32
	BevelSegments  int
}

// DefaultTextOptions returns the values used when a caller leaves settings unset.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		Size:           100,
		Depth:          50,
		CurveSegments:  12,
		BevelThickness: 10,
		BevelSize:      8,
		BevelSegments:  3,
	}
}

func (o TextOptions) depth() float32 {
	if o.Depth == 0 {
		return o.Height
	}
	return o.Depth
}

// NewText builds extruded geometry for text using the outlines provided by src.
// The geometry is not centered; call Center on the result when needed.
//
// Parameters:
//   - src: glyph outline provider, usually a parsed font
//   - text: the string to lay out
//   - opts: size, depth and bevel settings
//
// Returns:
//   - *Geometry: the text mesh
//   - error: ErrNoShapeSource, ErrInvalidParameters, ErrNoShapes or a layout error
func NewText(src ShapeSource, text string, opts TextOptions) (*Geometry, error) {
	if src == nil {
		return nil, ErrNoShapeSource
	}
	if opts.Size <= 0 {
		return nil, fmt.Errorf("%w: text size must be positive, got %v", ErrInvalidParameters, opts.Size)
	}
	if opts.CurveSegments < 1 {
		return nil, fmt.Errorf("%w: curve segments must be at least 1, got %d", ErrInvalidParameters, opts.CurveSegments)
	}

	shapes, err := src.Shapes(text, opts.Size, opts.CurveSegments)
	if err != nil {
		return nil, fmt.Errorf("laying out %q: %w", text, err)
	}

	return NewExtrude(shapes, ExtrudeOptions{
		Depth:          opts.depth(),
		Steps:          1,
		BevelEnabled:   opts.BevelEnabled,
		BevelThickness: opts.BevelThickness,
		BevelSize:      opts.BevelSize,
		BevelOffset:    opts.BevelOffset,
		BevelSegments:  opts.BevelSegments,
	})
}
