package geometry

import (
	"errors"
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-hello/common"
)

var (
	// ErrNoShapes is returned when an extrusion is requested without any outline.
	ErrNoShapes = errors.New("no shapes to extrude")
	// ErrInvalidParameters is returned for negative sizes, zero segment counts and similar malformed input.
	ErrInvalidParameters = errors.New("invalid geometry parameters")
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max common.Vec3
}

// Center returns the midpoint of the box.
func (b Box) Center() common.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box along each axis.
func (b Box) Size() common.Vec3 {
	return b.Max.Sub(b.Min)
}

// Empty reports whether the box contains no points.
func (b Box) Empty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// Geometry is a triangle mesh with per-vertex attributes stored as flat slices.
// Positions and Normals hold three floats per vertex, UVs two, and Indices three per triangle.
type Geometry struct {
	mu *sync.Mutex

	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32

	bounds      Box
	boundsValid bool
}

// New creates a Geometry from raw attribute slices. Slices are used without copying.
//
// Parameters:
//   - positions: xyz per vertex
//   - normals: xyz per vertex
//   - uvs: uv per vertex
//   - indices: three vertex indices per triangle
//
// Returns:
//   - *Geometry: the geometry
func New(positions, normals, uvs []float32, indices []uint32) *Geometry {
	return &Geometry{
		mu:        &sync.Mutex{},
		Positions: positions,
		Normals:   normals,
		UVs:       uvs,
		Indices:   indices,
	}
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// TriangleCount returns the number of indexed triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// BoundingBox returns the axis-aligned bounds of all positions, computing them on first use.
//
// Returns:
//   - Box: the bounds, Empty() for a geometry with no vertices
func (g *Geometry) BoundingBox() Box {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.boundsValid {
		g.bounds = computeBounds(g.Positions)
		g.boundsValid = true
	}
	return g.bounds
}

// Translate moves every vertex by the given offset.
//
// Parameters:
//   - x, y, z: offset in local units
func (g *Geometry) Translate(x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := 0; i+2 < len(g.Positions); i += 3 {
		g.Positions[i] += x
		g.Positions[i+1] += y
		g.Positions[i+2] += z
	}
	if g.boundsValid {
		off := common.Vec3{X: x, Y: y, Z: z}
		g.bounds = Box{Min: g.bounds.Min.Add(off), Max: g.bounds.Max.Add(off)}
	}
}

// Center translates the geometry so the center of its bounding box sits at the origin.
//
// Returns:
//   - common.Vec3: the offset that was applied
func (g *Geometry) Center() common.Vec3 {
	b := g.BoundingBox()
	if b.Empty() {
		return common.Vec3{}
	}
	off := b.Center().Scale(-1)
	g.Translate(off.X, off.Y, off.Z)
	return off
}

func computeBounds(positions []float32) Box {
	inf := float32(math.Inf(1))
	b := Box{
		Min: common.Vec3{X: inf, Y: inf, Z: inf},
		Max: common.Vec3{X: -inf, Y: -inf, Z: -inf},
	}
	for i := 0; i+2 < len(positions); i += 3 {
		b.Min.X = min(b.Min.X, positions[i])
		b.Min.Y = min(b.Min.Y, positions[i+1])
		b.Min.Z = min(b.Min.Z, positions[i+2])
		b.Max.X = max(b.Max.X, positions[i])
		b.Max.Y = max(b.Max.Y, positions[i+1])
		b.Max.Z = max(b.Max.Z, positions[i+2])
	}
	return b
}
