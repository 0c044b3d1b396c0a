package geometry

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-hello/common"
)

// maxMiter caps how far a bevel vertex may move relative to the bevel size at sharp corners.
const maxMiter = 2.0

// ExtrudeOptions controls how 2D shapes are pushed into 3D.
type ExtrudeOptions struct {
	// Depth is the distance between the front and back faces before bevelling.
	Depth float32
	// Steps is the number of subdivisions along the depth. Defaults to 1.
	Steps int
	// BevelEnabled rounds the front and back edges.
	BevelEnabled bool
	// BevelThickness is how far the bevel extends in front of and behind the extrusion.
	BevelThickness float32
	// BevelSize is how far the bevel grows the outline outward.
	BevelSize float32
	// BevelOffset shifts the outline where the bevel starts.
	BevelOffset float32
	// BevelSegments is the number of layers used to round each bevel.
	BevelSegments int
}

func (o ExtrudeOptions) validate() error {
	if o.Depth < 0 {
		return fmt.Errorf("%w: negative depth %v", ErrInvalidParameters, o.Depth)
	}
	if o.Steps < 1 {
		return fmt.Errorf("%w: steps must be at least 1, got %d", ErrInvalidParameters, o.Steps)
	}
	if !o.BevelEnabled {
		return nil
	}
	if o.BevelThickness < 0 || o.BevelSize < 0 {
		return fmt.Errorf("%w: negative bevel thickness %v or size %v", ErrInvalidParameters, o.BevelThickness, o.BevelSize)
	}
	if o.BevelSegments < 1 {
		return fmt.Errorf("%w: bevel segments must be at least 1, got %d", ErrInvalidParameters, o.BevelSegments)
	}
	return nil
}

// layer is one ring of the extrusion: every outline point pushed along its bevel vector by
// inset and placed at depth z.
type layer struct {
	z     float32
	inset float32
}

// layers lists the rings from the front face to the back face.
func (o ExtrudeOptions) layers() []layer {
	var out []layer
	if o.BevelEnabled {
		for b := 0; b < o.BevelSegments; b++ {
			t := float64(b) / float64(o.BevelSegments)
			z := o.BevelThickness * float32(math.Cos(t*math.Pi/2))
			s := o.BevelSize*float32(math.Sin(t*math.Pi/2)) + o.BevelOffset
			out = append(out, layer{z: -z, inset: s})
		}
	}
	full := float32(0)
	if o.BevelEnabled {
		full = o.BevelSize + o.BevelOffset
	}
	for s := 0; s <= o.Steps; s++ {
		out = append(out, layer{z: o.Depth / float32(o.Steps) * float32(s), inset: full})
	}
	if o.BevelEnabled {
		for b := o.BevelSegments - 1; b >= 0; b-- {
			t := float64(b) / float64(o.BevelSegments)
			z := o.BevelThickness * float32(math.Cos(t*math.Pi/2))
			s := o.BevelSize*float32(math.Sin(t*math.Pi/2)) + o.BevelOffset
			out = append(out, layer{z: o.Depth + z, inset: s})
		}
	}
	return out
}

// NewExtrude extrudes each shape along +Z, optionally bevelling the edges.
// Every triangle gets its own three vertices and a flat face normal, which is what faceted
// materials expect. Caps use uvs equal to the outline coordinates; side walls use the edge
// direction and depth.
//
// Parameters:
//   - shapes: outlines to extrude; orientation is normalized internally
//   - opts: extrusion settings
//
// Returns:
//   - *Geometry: the extruded mesh
//   - error: ErrNoShapes or ErrInvalidParameters for unusable input
func NewExtrude(shapes []Shape, opts ExtrudeOptions) (*Geometry, error) {
	if opts.Steps == 0 {
		opts.Steps = 1
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	b := &meshBuilder{}
	extruded := 0
	for _, shape := range shapes {
		contour := cleanRing(shape.Contour)
		if len(contour) < 3 || SignedArea(contour) == 0 {
			continue
		}
		contour = oriented(contour, true)

		rings := [][]common.Vec2{contour}
		for _, h := range shape.Holes {
			h = cleanRing(h)
			if len(h) < 3 || SignedArea(h) == 0 {
				continue
			}
			rings = append(rings, oriented(h, false))
		}

		extrudeShape(b, rings, opts)
		extruded++
	}
	if extruded == 0 {
		return nil, ErrNoShapes
	}
	return b.geometry(), nil
}

// extrudeShape appends the caps and side walls of one outline (rings[0]) and its holes.
func extrudeShape(b *meshBuilder, rings [][]common.Vec2, opts ExtrudeOptions) {
	var flat []common.Vec2
	var bevel []common.Vec2
	starts := make([]int, len(rings))
	for r, ring := range rings {
		starts[r] = len(flat)
		flat = append(flat, ring...)
		bevel = append(bevel, bevelVectors(ring)...)
	}

	layers := opts.layers()
	vertex := func(l, i int) common.Vec3 {
		p := flat[i].Add(bevel[i].Scale(layers[l].inset))
		return common.Vec3{X: p.X, Y: p.Y, Z: layers[l].z}
	}

	tris := Triangulate(rings[0], rings[1:])
	front, back := 0, len(layers)-1
	for _, t := range tris {
		// front cap faces -Z, so flip the winding
		b.triangle(vertex(front, t[0]), vertex(front, t[2]), vertex(front, t[1]),
			flat[t[0]], flat[t[2]], flat[t[1]])
		b.triangle(vertex(back, t[0]), vertex(back, t[1]), vertex(back, t[2]),
			flat[t[0]], flat[t[1]], flat[t[2]])
	}

	for r, ring := range rings {
		n := len(ring)
		for i := 0; i < n; i++ {
			i0 := starts[r] + i
			i1 := starts[r] + (i+1)%n
			edge := flat[i1].Sub(flat[i0])
			useX := math.Abs(float64(edge.X)) >= math.Abs(float64(edge.Y))
			for l := 0; l < len(layers)-1; l++ {
				a, bb := vertex(l, i0), vertex(l, i1)
				c, d := vertex(l+1, i1), vertex(l+1, i0)
				ua, ub := sideUV(a, useX), sideUV(bb, useX)
				uc, ud := sideUV(c, useX), sideUV(d, useX)
				b.triangle(a, bb, c, ua, ub, uc)
				b.triangle(a, c, d, ua, uc, ud)
			}
		}
	}
}

// bevelVectors returns, per point, the direction and scale that moves the outline outward
// (away from the solid) by one unit of bevel size. For a counter-clockwise outline the right-hand
// edge normal points outward; for a clockwise hole it points into the hole, which also grows the solid.
func bevelVectors(ring []common.Vec2) []common.Vec2 {
	n := len(ring)
	out := make([]common.Vec2, n)
	for i := 0; i < n; i++ {
		prev := ring[(i-1+n)%n]
		cur := ring[i]
		next := ring[(i+1)%n]

		e1 := cur.Sub(prev).Normalize()
		e2 := next.Sub(cur).Normalize()
		n1 := common.Vec2{X: e1.Y, Y: -e1.X}
		n2 := common.Vec2{X: e2.Y, Y: -e2.X}

		m := n1.Add(n2)
		if m.Length() < 1e-6 {
			// the outline doubles back on itself; push along the incoming edge
			out[i] = e1
			continue
		}
		m = m.Normalize()
		cos := m.Dot(n1)
		scale := float32(maxMiter)
		if cos > 1/maxMiter {
			scale = 1 / cos
		}
		out[i] = m.Scale(scale)
	}
	return out
}

func sideUV(p common.Vec3, useX bool) common.Vec2 {
	if useX {
		return common.Vec2{X: p.X, Y: 1 - p.Z}
	}
	return common.Vec2{X: p.Y, Y: 1 - p.Z}
}

// meshBuilder accumulates non-indexed triangles with flat normals.
type meshBuilder struct {
	positions []float32
	normals   []float32
	uvs       []float32
}

func (b *meshBuilder) triangle(a, c, d common.Vec3, ua, uc, ud common.Vec2) {
	normal := c.Sub(a).Cross(d.Sub(a)).Normalize()
	if normal == (common.Vec3{}) {
		normal = common.Vec3{Z: 1}
	}
	for _, v := range [3]common.Vec3{a, c, d} {
		b.positions = append(b.positions, v.X, v.Y, v.Z)
		b.normals = append(b.normals, normal.X, normal.Y, normal.Z)
	}
	b.uvs = append(b.uvs, ua.X, ua.Y, uc.X, uc.Y, ud.X, ud.Y)
}

func (b *meshBuilder) geometry() *Geometry {
	indices := make([]uint32, len(b.positions)/3)
	for i := range indices {
		indices[i] = uint32(i)
	}
	return New(b.positions, b.normals, b.uvs, indices)
}
