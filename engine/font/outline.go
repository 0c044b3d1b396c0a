package font

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/oxy-hello/common"
)

// command is one outline instruction. Coordinates are in font units.
//   - 'm', 'l': x y
//   - 'q': x y cx cy (end point first, then the control point)
//   - 'b': x y c1x c1y c2x c2y (end point first, then both control points)
type command struct {
	op   byte
	args []float32
}

var arity = map[byte]int{'m': 2, 'l': 2, 'q': 4, 'b': 6}

func parseOutline(o string) ([]command, error) {
	fields := strings.Fields(o)
	var cmds []command
	for i := 0; i < len(fields); {
		f := fields[i]
		n, ok := arity[f[0]]
		if len(f) != 1 || !ok {
			return nil, fmt.Errorf("unknown outline command %q", f)
		}
		if i+n >= len(fields) {
			return nil, fmt.Errorf("outline command %q needs %d values", f, n)
		}
		args := make([]float32, n)
		for j := range args {
			v, err := strconv.ParseFloat(fields[i+1+j], 32)
			if err != nil {
				return nil, fmt.Errorf("outline command %q: %w", f, err)
			}
			args[j] = float32(v)
		}
		cmds = append(cmds, command{op: f[0], args: args})
		i += n + 1
	}
	return cmds, nil
}

// rings converts the glyph outline into closed point rings, scaled and offset into layout space.
func (g glyph) rings(scale float32, offset common.Vec2, curveSegments int) [][]common.Vec2 {
	pt := func(x, y float32) common.Vec2 {
		return common.Vec2{X: x*scale + offset.X, Y: y*scale + offset.Y}
	}

	var out [][]common.Vec2
	var cur []common.Vec2
	var pen common.Vec2
	flush := func() {
		if n := len(cur); n > 1 && cur[n-1].Equals(cur[0], 1e-7) {
			cur = cur[:n-1]
		}
		if len(cur) >= 3 {
			out = append(out, cur)
		}
		cur = nil
	}

	for _, c := range g.commands {
		a := c.args
		switch c.op {
		case 'm':
			flush()
			pen = pt(a[0], a[1])
			cur = append(cur, pen)
		case 'l':
			pen = pt(a[0], a[1])
			cur = appendPoint(cur, pen)
		case 'q':
			end, ctrl := pt(a[0], a[1]), pt(a[2], a[3])
			start := pen
			for s := 1; s <= curveSegments; s++ {
				cur = appendPoint(cur, quadratic(start, ctrl, end, float32(s)/float32(curveSegments)))
			}
			pen = end
		case 'b':
			end, c1, c2 := pt(a[0], a[1]), pt(a[2], a[3]), pt(a[4], a[5])
			start := pen
			for s := 1; s <= curveSegments; s++ {
				cur = appendPoint(cur, cubic(start, c1, c2, end, float32(s)/float32(curveSegments)))
			}
			pen = end
		}
	}
	flush()
	return out
}

func appendPoint(ring []common.Vec2, p common.Vec2) []common.Vec2 {
	if n := len(ring); n > 0 && ring[n-1].Equals(p, 1e-7) {
		return ring
	}
	return append(ring, p)
}

func quadratic(p0, p1, p2 common.Vec2, t float32) common.Vec2 {
	k := 1 - t
	return p0.Scale(k * k).Add(p1.Scale(2 * k * t)).Add(p2.Scale(t * t))
}

func cubic(p0, p1, p2, p3 common.Vec2, t float32) common.Vec2 {
	k := 1 - t
	return p0.Scale(k * k * k).
		Add(p1.Scale(3 * k * k * t)).
		Add(p2.Scale(3 * k * t * t)).
		Add(p3.Scale(t * t * t))
}
