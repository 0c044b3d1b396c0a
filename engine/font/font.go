// Package font parses typeface JSON fonts and lays text out as 2D outlines.
package font

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/Carmen-Shannon/oxy-hello/engine/geometry"
	"golang.org/x/text/unicode/norm"
)

// fallbackRune replaces characters the font has no glyph for.
const fallbackRune = '?'

var (
	// ErrMalformedFont is returned when the font data cannot be used.
	ErrMalformedFont = errors.New("malformed typeface font")
)

type fontFile struct {
	FamilyName         string               `json:"familyName"`
	Resolution         float64              `json:"resolution"`
	UnderlineThickness float64              `json:"underlineThickness"`
	BoundingBox        boundingBox          `json:"boundingBox"`
	Glyphs             map[string]glyphFile `json:"glyphs"`
}

type boundingBox struct {
	YMin float64 `json:"yMin"`
	YMax float64 `json:"yMax"`
}

type glyphFile struct {
	HA   float64 `json:"ha"`
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	O    string  `json:"o"`
}

type glyph struct {
	advance  float32
	xMin     float32
	xMax     float32
	commands []command
}

// Font is a parsed typeface font. It is safe for concurrent use.
type Font struct {
	mu     *sync.Mutex
	logger *slog.Logger

	familyName         string
	resolution         float32
	underlineThickness float32
	yMin, yMax         float32
	glyphs             map[rune]glyph
	warned             map[rune]bool
}

var _ geometry.ShapeSource = &Font{}

// Parse reads a typeface JSON document.
//
// Parameters:
//   - r: the JSON source
//   - options: functional options such as WithLogger
//
// Returns:
//   - *Font: the parsed font
//   - error: a decode error or ErrMalformedFont
func Parse(r io.Reader, options ...FontBuilderOption) (*Font, error) {
	var file fontFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding typeface: %w", err)
	}
	if file.Resolution <= 0 {
		return nil, fmt.Errorf("%w: resolution %v", ErrMalformedFont, file.Resolution)
	}
	if len(file.Glyphs) == 0 {
		return nil, fmt.Errorf("%w: no glyphs", ErrMalformedFont)
	}

	f := &Font{
		mu:                 &sync.Mutex{},
		logger:             slog.Default(),
		familyName:         file.FamilyName,
		resolution:         float32(file.Resolution),
		underlineThickness: float32(file.UnderlineThickness),
		yMin:               float32(file.BoundingBox.YMin),
		yMax:               float32(file.BoundingBox.YMax),
		glyphs:             make(map[rune]glyph, len(file.Glyphs)),
		warned:             make(map[rune]bool),
	}
	for _, opt := range options {
		opt(f)
	}

	for key, g := range file.Glyphs {
		runes := []rune(key)
		if len(runes) != 1 {
			f.logger.Debug("skipping glyph with multi-rune key", "key", key)
			continue
		}
		cmds, err := parseOutline(g.O)
		if err != nil {
			return nil, fmt.Errorf("%w: glyph %q: %v", ErrMalformedFont, key, err)
		}
		f.glyphs[runes[0]] = glyph{
			advance:  float32(g.HA),
			xMin:     float32(g.XMin),
			xMax:     float32(g.XMax),
			commands: cmds,
		}
	}
	return f, nil
}

// FamilyName returns the font family.
func (f *Font) FamilyName() string {
	return f.familyName
}

// Resolution returns the number of font units per em.
func (f *Font) Resolution() float32 {
	return f.resolution
}

// HasGlyph reports whether the font defines r.
func (f *Font) HasGlyph(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

// LineHeight returns the distance between baselines at the given size.
func (f *Font) LineHeight(size float32) float32 {
	return (f.yMax - f.yMin + f.underlineThickness) * size / f.resolution
}

// Advance returns the horizontal extent of a single line of text at the given size.
func (f *Font) Advance(text string, size float32) float32 {
	scale := size / f.resolution
	var x, widest float32
	for _, r := range norm.NFC.String(text) {
		if r == '\n' {
			widest = max(widest, x)
			x = 0
			continue
		}
		if g, ok := f.lookup(r); ok {
			x += g.advance * scale
		}
	}
	return max(widest, x)
}

// Shapes lays text out left to right from the origin and returns the glyph outlines.
// Lines break on '\n'. Characters missing from the font are drawn as '?' and logged once.
//
// Parameters:
//   - text: the string to lay out
//   - size: the em size in scene units
//   - curveSegments: divisions used to sample each curve
//
// Returns:
//   - []geometry.Shape: one shape per solid contour with its holes, in font winding
//   - error: when size or curveSegments is out of range
func (f *Font) Shapes(text string, size float32, curveSegments int) ([]geometry.Shape, error) {
	if size <= 0 || math.IsNaN(float64(size)) {
		return nil, fmt.Errorf("invalid text size %v", size)
	}
	if curveSegments < 1 {
		return nil, fmt.Errorf("invalid curve segments %d", curveSegments)
	}

	scale := size / f.resolution
	lineHeight := f.LineHeight(size)

	var shapes []geometry.Shape
	var offset common.Vec2
	for _, r := range norm.NFC.String(text) {
		if r == '\n' {
			offset.X = 0
			offset.Y -= lineHeight
			continue
		}
		g, ok := f.lookup(r)
		if !ok {
			continue
		}
		rings := g.rings(scale, offset, curveSegments)
		shapes = append(shapes, classify(rings)...)
		offset.X += g.advance * scale
	}
	return shapes, nil
}

func (f *Font) lookup(r rune) (glyph, bool) {
	if g, ok := f.glyphs[r]; ok {
		return g, true
	}

	f.mu.Lock()
	if !f.warned[r] {
		f.warned[r] = true
		f.logger.Warn("character not found in font", "char", string(r), "family", f.familyName)
	}
	f.mu.Unlock()

	g, ok := f.glyphs[fallbackRune]
	return g, ok
}

// classify groups the rings of one glyph into solids and holes. The largest ring is always a
// solid; rings wound the other way are holes of the smallest solid that contains them.
func classify(rings [][]common.Vec2) []geometry.Shape {
	type ring struct {
		pts  []common.Vec2
		area float32
	}
	var all []ring
	largest := -1
	for _, pts := range rings {
		a := geometry.SignedArea(pts)
		if a == 0 {
			continue
		}
		all = append(all, ring{pts: pts, area: a})
		if largest < 0 || abs(a) > abs(all[largest].area) {
			largest = len(all) - 1
		}
	}
	if largest < 0 {
		return nil
	}
	solidPositive := all[largest].area > 0

	var shapes []geometry.Shape
	var solidArea []float32
	var holes []ring
	for _, r := range all {
		if (r.area > 0) == solidPositive {
			shapes = append(shapes, geometry.Shape{Contour: r.pts})
			solidArea = append(solidArea, abs(r.area))
		} else {
			holes = append(holes, r)
		}
	}

	for _, h := range holes {
		owner := -1
		for i, s := range shapes {
			if !geometry.ContainsPoint(s.Contour, h.pts[0]) {
				continue
			}
			if owner < 0 || solidArea[i] < solidArea[owner] {
				owner = i
			}
		}
		if owner < 0 {
			// nothing encloses it, so it is drawn as a solid of its own
			shapes = append(shapes, geometry.Shape{Contour: h.pts})
			solidArea = append(solidArea, abs(h.area))
			continue
		}
		shapes[owner].Holes = append(shapes[owner].Holes, h.pts)
	}
	return shapes
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
