package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 float32) []common.Vec2 {
	return []common.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func triangleArea(pts []common.Vec2, tris [][3]int) float64 {
	var total float64
	for _, t := range tris {
		total += math.Abs(orient(pts[t[0]], pts[t[1]], pts[t[2]])) / 2
	}
	return total
}

func TestSphereCounts(t *testing.T) {
	g, err := NewSphere(0.7, 16, 16)
	require.NoError(t, err)
	assert.Equal(t, 17*17, g.VertexCount())
	assert.Len(t, g.Indices, 1440)
	assert.Len(t, g.Normals, len(g.Positions))
	assert.Len(t, g.UVs, g.VertexCount()*2)

	b := g.BoundingBox()
	assert.InDelta(t, 0.7, b.Max.Y, 1e-5)
	assert.InDelta(t, -0.7, b.Min.Y, 1e-5)
	assert.InDelta(t, 1.4, b.Size().X, 1e-2)
}

func TestSphereRejectsBadParameters(t *testing.T) {
	_, err := NewSphere(0, 16, 16)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	_, err = NewSphere(1, 2, 16)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	_, err = NewSphere(1, 16, 1)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestSignedAreaOrientation(t *testing.T) {
	ccw := square(0, 0, 2, 2)
	assert.InDelta(t, 4, SignedArea(ccw), 1e-6)
	assert.False(t, IsClockwise(ccw))

	cw := oriented(ccw, false)
	assert.True(t, IsClockwise(cw))
	assert.InDelta(t, -4, SignedArea(cw), 1e-6)

	assert.True(t, ContainsPoint(ccw, common.Vec2{X: 1, Y: 1}))
	assert.False(t, ContainsPoint(ccw, common.Vec2{X: 3, Y: 1}))
}

func TestCleanRingDropsClosingPoint(t *testing.T) {
	ring := append(square(0, 0, 1, 1), common.Vec2{X: 0, Y: 0})
	ring = append([]common.Vec2{{X: 0, Y: 0}}, ring...)
	assert.Len(t, cleanRing(ring), 4)
}

func TestTriangulateSquare(t *testing.T) {
	pts := square(0, 0, 1, 1)
	tris := Triangulate(pts, nil)
	require.Len(t, tris, 2)
	assert.InDelta(t, 1, triangleArea(pts, tris), 1e-9)
	for _, tri := range tris {
		assert.Greater(t, orient(pts[tri[0]], pts[tri[1]], pts[tri[2]]), 0.0)
	}
}

func TestTriangulateWithHole(t *testing.T) {
	outer := square(0, 0, 4, 4)
	hole := oriented(square(1, 1, 3, 3), false)
	tris := Triangulate(outer, [][]common.Vec2{hole})

	all := append(append([]common.Vec2{}, outer...), hole...)
	require.NotEmpty(t, tris)
	assert.InDelta(t, 12, triangleArea(all, tris), 1e-6)

	// no triangle may cover the hole's center
	center := common.Vec2{X: 2, Y: 2}
	for _, tri := range tris {
		assert.False(t, ContainsPoint([]common.Vec2{all[tri[0]], all[tri[1]], all[tri[2]]}, center))
	}
}

func TestTriangulateConcave(t *testing.T) {
	// L shape
	pts := []common.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}}
	tris := Triangulate(pts, nil)
	require.NotEmpty(t, tris)
	assert.InDelta(t, 3, triangleArea(pts, tris), 1e-9)
}

func TestExtrudeWithoutBevel(t *testing.T) {
	g, err := NewExtrude([]Shape{{Contour: square(0, 0, 1, 1)}}, ExtrudeOptions{Depth: 2})
	require.NoError(t, err)

	// 2 caps x 2 triangles + 4 sides x 2 triangles
	assert.Equal(t, 12, g.TriangleCount())
	assert.Equal(t, 36, g.VertexCount())

	b := g.BoundingBox()
	assert.Equal(t, common.Vec3{X: 0, Y: 0, Z: 0}, b.Min)
	assert.Equal(t, common.Vec3{X: 1, Y: 1, Z: 2}, b.Max)

	for i := 0; i < len(g.Normals); i += 3 {
		n := common.Vec3{X: g.Normals[i], Y: g.Normals[i+1], Z: g.Normals[i+2]}
		assert.InDelta(t, 1, n.Length(), 1e-5)
	}
}

func TestExtrudeCapNormalsFaceOutward(t *testing.T) {
	// clockwise input is normalized before extrusion
	g, err := NewExtrude([]Shape{{Contour: oriented(square(0, 0, 1, 1), false)}}, ExtrudeOptions{Depth: 1})
	require.NoError(t, err)

	var front, back int
	for i := 0; i < len(g.Positions); i += 3 {
		switch {
		case g.Normals[i+2] < -0.99:
			assert.Equal(t, float32(0), g.Positions[i+2])
			front++
		case g.Normals[i+2] > 0.99:
			assert.Equal(t, float32(1), g.Positions[i+2])
			back++
		}
	}
	assert.Equal(t, 6, front)
	assert.Equal(t, 6, back)
}

func TestExtrudeBevelGrowsBounds(t *testing.T) {
	opts := ExtrudeOptions{
		Depth:          0.2,
		BevelEnabled:   true,
		BevelThickness: 0.05,
		BevelSize:      0.03,
		BevelSegments:  10,
	}
	g, err := NewExtrude([]Shape{{Contour: square(0, 0, 1, 1)}}, opts)
	require.NoError(t, err)

	b := g.BoundingBox()
	assert.InDelta(t, -0.05, b.Min.Z, 1e-6)
	assert.InDelta(t, 0.25, b.Max.Z, 1e-6)
	assert.InDelta(t, -0.03, b.Min.X, 1e-5)
	assert.InDelta(t, 1.03, b.Max.X, 1e-5)
}

func TestExtrudeValidation(t *testing.T) {
	_, err := NewExtrude(nil, ExtrudeOptions{Depth: 1})
	assert.ErrorIs(t, err, ErrNoShapes)

	_, err = NewExtrude([]Shape{{Contour: []common.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}}}, ExtrudeOptions{Depth: 1})
	assert.ErrorIs(t, err, ErrNoShapes)

	_, err = NewExtrude([]Shape{{Contour: square(0, 0, 1, 1)}}, ExtrudeOptions{Depth: -1})
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = NewExtrude([]Shape{{Contour: square(0, 0, 1, 1)}}, ExtrudeOptions{Depth: 1, BevelEnabled: true, BevelSegments: 0})
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestCenter(t *testing.T) {
	g, err := NewExtrude([]Shape{{Contour: square(2, 2, 4, 3)}}, ExtrudeOptions{Depth: 1})
	require.NoError(t, err)

	off := g.Center()
	assert.Equal(t, common.Vec3{X: -3, Y: -2.5, Z: -0.5}, off)
	b := g.BoundingBox()
	assert.InDelta(t, 0, b.Center().X, 1e-6)
	assert.InDelta(t, 0, b.Center().Y, 1e-6)
	assert.InDelta(t, 0, b.Center().Z, 1e-6)
	assert.InDelta(t, 2, b.Size().X, 1e-6)
}

type fakeSource struct {
	shapes []Shape
	err    error

	size     float32
	segments int
}

func (f *fakeSource) Shapes(_ string, size float32, curveSegments int) ([]Shape, error) {
	f.size, f.segments = size, curveSegments
	return f.shapes, f.err
}

func TestNewTextUsesLegacyHeight(t *testing.T) {
	src := &fakeSource{shapes: []Shape{{Contour: square(0, 0, 1, 1)}}}
	g, err := NewText(src, "Hello", TextOptions{Size: 0.5, Height: 0.01, CurveSegments: 116})
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), src.size)
	assert.Equal(t, 116, src.segments)
	assert.InDelta(t, 0.01, g.BoundingBox().Size().Z, 1e-6)

	g, err = NewText(src, "Hello", TextOptions{Size: 0.5, Depth: 0.2, Height: 0.01, CurveSegments: 4})
	require.NoError(t, err)
	assert.InDelta(t, 0.2, g.BoundingBox().Size().Z, 1e-6)
}

func TestNewTextErrors(t *testing.T) {
	_, err := NewText(nil, "Hello", DefaultTextOptions())
	assert.ErrorIs(t, err, ErrNoShapeSource)

	_, err = NewText(&fakeSource{}, "Hello", TextOptions{Size: 0, CurveSegments: 1})
	assert.ErrorIs(t, err, ErrInvalidParameters)

	boom := errors.New("boom")
	_, err = NewText(&fakeSource{err: boom}, "Hello", DefaultTextOptions())
	assert.ErrorIs(t, err, boom)

	_, err = NewText(&fakeSource{}, " ", DefaultTextOptions())
	assert.ErrorIs(t, err, ErrNoShapes)
}
