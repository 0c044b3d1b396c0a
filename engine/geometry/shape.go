package geometry

import "github.com/Carmen-Shannon/oxy-hello/common"

// Shape is a closed 2D outline with optional holes. Points are not repeated at the end;
// the last point connects back to the first.
type Shape struct {
	Contour []common.Vec2
	Holes   [][]common.Vec2
}

// SignedArea returns the signed area of a closed polygon. Counter-clockwise polygons are positive.
//
// Parameters:
//   - pts: polygon vertices
//
// Returns:
//   - float32: the signed area
func SignedArea(pts []common.Vec2) float32 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var a float32
	for p, q := n-1, 0; q < n; p, q = q, q+1 {
		a += pts[p].X*pts[q].Y - pts[q].X*pts[p].Y
	}
	return a * 0.5
}

// IsClockwise reports whether the polygon winds clockwise.
func IsClockwise(pts []common.Vec2) bool {
	return SignedArea(pts) < 0
}

// ContainsPoint reports whether p lies inside the closed polygon using the even-odd rule.
//
// Parameters:
//   - pts: polygon vertices
//   - p: the point to test
//
// Returns:
//   - bool: true if p is inside
func ContainsPoint(pts []common.Vec2, p common.Vec2) bool {
	inside := false
	n := len(pts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// cleanRing drops consecutive duplicate points and a closing point equal to the first.
func cleanRing(pts []common.Vec2) []common.Vec2 {
	const eps = 1e-7
	out := make([]common.Vec2, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].Equals(p, eps) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1].Equals(out[0], eps) {
		out = out[:len(out)-1]
	}
	return out
}

// oriented returns pts wound counter-clockwise when ccw is true, clockwise otherwise.
func oriented(pts []common.Vec2, ccw bool) []common.Vec2 {
	if IsClockwise(pts) != ccw {
		return pts
	}
	out := make([]common.Vec2, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
