package geometry

import (
	"math"
	"sort"

	"github.com/Carmen-Shannon/oxy-hello/common"
)

// Triangulate splits a counter-clockwise contour with clockwise holes into triangles.
// Vertices are addressed by their position in the concatenation contour, holes[0], holes[1], ...
// Holes are first joined to the outline through bridge edges, then the merged polygon is ear-clipped.
// The returned triangles wind counter-clockwise.
//
// Parameters:
//   - contour: outer outline, counter-clockwise
//   - holes: inner outlines, clockwise
//
// Returns:
//   - [][3]int: triangles as indices into the concatenated vertex list
func Triangulate(contour []common.Vec2, holes [][]common.Vec2) [][3]int {
	if len(contour) < 3 {
		return nil
	}

	points := make([]common.Vec2, 0, len(contour))
	points = append(points, contour...)
	ring := make([]int, len(contour))
	for i := range contour {
		ring[i] = i
	}

	type holeRef struct {
		start     int
		n         int
		rightmost int
	}
	refs := make([]holeRef, 0, len(holes))
	for _, h := range holes {
		start := len(points)
		points = append(points, h...)
		if len(h) < 3 {
			continue
		}
		rm := start
		for i := start; i < start+len(h); i++ {
			if points[i].X > points[rm].X {
				rm = i
			}
		}
		refs = append(refs, holeRef{start: start, n: len(h), rightmost: rm})
	}
	// bridge holes from right to left so earlier bridges never cut later holes
	sort.SliceStable(refs, func(i, j int) bool {
		return points[refs[i].rightmost].X > points[refs[j].rightmost].X
	})

	for k, h := range refs {
		var pending [][2]int
		for _, other := range refs[k+1:] {
			for i := 0; i < other.n; i++ {
				pending = append(pending, [2]int{other.start + i, other.start + (i+1)%other.n})
			}
		}
		ring = bridgeHole(points, ring, h.start, h.n, h.rightmost, pending)
	}

	return earClip(points, ring)
}

// bridgeHole splices a hole into the ring through the closest ring vertex that can be reached
// from the hole's rightmost vertex without crossing any edge.
func bridgeHole(points []common.Vec2, ring []int, start, n, rightmost int, pending [][2]int) []int {
	hp := points[rightmost]

	crosses := func(a, b common.Vec2) bool {
		for i := range ring {
			e0, e1 := points[ring[i]], points[ring[(i+1)%len(ring)]]
			if segmentsCross(a, b, e0, e1) {
				return true
			}
		}
		for i := 0; i < n; i++ {
			if segmentsCross(a, b, points[start+i], points[start+(i+1)%n]) {
				return true
			}
		}
		for _, e := range pending {
			if segmentsCross(a, b, points[e[0]], points[e[1]]) {
				return true
			}
		}
		return false
	}

	best, bestDist := -1, float32(math.Inf(1))
	fallback, fallbackDist := 0, float32(math.Inf(1))
	for i, idx := range ring {
		d := points[idx].Sub(hp)
		dist := d.Dot(d)
		if dist < fallbackDist {
			fallback, fallbackDist = i, dist
		}
		if dist >= bestDist || crosses(hp, points[idx]) {
			continue
		}
		best, bestDist = i, dist
	}
	if best < 0 {
		best = fallback
	}

	merged := make([]int, 0, len(ring)+n+2)
	merged = append(merged, ring[:best+1]...)
	offset := rightmost - start
	for i := 0; i <= n; i++ {
		merged = append(merged, start+(offset+i)%n)
	}
	merged = append(merged, ring[best])
	merged = append(merged, ring[best+1:]...)
	return merged
}

// segmentsCross reports whether segments ab and cd intersect at a point interior to both.
// Touching at shared endpoints does not count.
func segmentsCross(a, b, c, d common.Vec2) bool {
	const eps = 1e-9
	if a.Equals(c, eps) || a.Equals(d, eps) || b.Equals(c, eps) || b.Equals(d, eps) {
		return false
	}
	d1 := orient(c, d, a)
	d2 := orient(c, d, b)
	d3 := orient(a, b, c)
	d4 := orient(a, b, d)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// orient is twice the signed area of triangle abc; positive when abc turns counter-clockwise.
// Evaluated in float64 so closely spaced curve samples keep a stable sign.
func orient(a, b, c common.Vec2) float64 {
	bx, by := float64(b.X)-float64(a.X), float64(b.Y)-float64(a.Y)
	cx, cy := float64(c.X)-float64(a.X), float64(c.Y)-float64(a.Y)
	return bx*cy - by*cx
}

// earClip triangulates a simple (possibly bridged) counter-clockwise ring.
func earClip(points []common.Vec2, ring []int) [][3]int {
	n := len(ring)
	if n < 3 {
		return nil
	}
	prev := make([]int, n)
	next := make([]int, n)
	for i := range ring {
		prev[i] = (i - 1 + n) % n
		next[i] = (i + 1) % n
	}

	tris := make([][3]int, 0, n-2)
	remaining := n
	cur := 0
	stall := 0
	for remaining > 3 {
		a, b, c := prev[cur], cur, next[cur]
		pa, pb, pc := points[ring[a]], points[ring[b]], points[ring[c]]
		area := orient(pa, pb, pc)

		clip := false
		switch {
		case area == 0:
			// degenerate corner: drop it without emitting a triangle
			next[a], prev[c] = c, a
			remaining--
			cur = c
			stall = 0
			continue
		case area > 0:
			clip = isEar(points, ring, next, a, b, c)
		}
		if !clip && stall >= remaining {
			// no clean ear left (self-touching input); clip the current convex or least-bad corner
			clip = true
		}
		if clip {
			tris = append(tris, [3]int{ring[a], ring[b], ring[c]})
			next[a], prev[c] = c, a
			remaining--
			cur = c
			stall = 0
			continue
		}
		cur = next[cur]
		stall++
	}
	if remaining == 3 {
		a, b, c := prev[cur], cur, next[cur]
		if orient(points[ring[a]], points[ring[b]], points[ring[c]]) != 0 {
			tris = append(tris, [3]int{ring[a], ring[b], ring[c]})
		}
	}
	return tris
}

// isEar reports whether no other ring vertex lies inside triangle abc.
func isEar(points []common.Vec2, ring []int, next []int, a, b, c int) bool {
	pa, pb, pc := points[ring[a]], points[ring[b]], points[ring[c]]
	const eps = 1e-9
	for p := next[c]; p != a; p = next[p] {
		pp := points[ring[p]]
		if pp.Equals(pa, eps) || pp.Equals(pb, eps) || pp.Equals(pc, eps) {
			continue
		}
		if orient(pa, pb, pp) >= 0 && orient(pb, pc, pp) >= 0 && orient(pc, pa, pp) >= 0 {
			return false
		}
	}
	return true
}
