package geometry

import (
	"fmt"
	"math"
)

// NewSphere builds a UV sphere centered on the origin.
// Rings run from the top pole (+Y) to the bottom pole; the pole rows produce a single triangle per segment.
//
// Parameters:
//   - radius: sphere radius, must be > 0
//   - widthSegments: horizontal segments, at least 3
//   - heightSegments: vertical segments, at least 2
//
// Returns:
//   - *Geometry: the sphere mesh with smooth normals and uvs
//   - error: ErrInvalidParameters for out-of-range arguments
func NewSphere(radius float32, widthSegments, heightSegments int) (*Geometry, error) {
	if radius <= 0 || widthSegments < 3 || heightSegments < 2 {
		return nil, fmt.Errorf("%w: sphere radius %v, segments %dx%d", ErrInvalidParameters, radius, widthSegments, heightSegments)
	}

	vertexCount := (widthSegments + 1) * (heightSegments + 1)
	positions := make([]float32, 0, vertexCount*3)
	normals := make([]float32, 0, vertexCount*3)
	uvs := make([]float32, 0, vertexCount*2)

	grid := make([][]uint32, heightSegments+1)
	var index uint32
	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		// nudge the pole uvs so texture seams don't pinch
		uOffset := 0.0
		switch iy {
		case 0:
			uOffset = 0.5 / float64(widthSegments)
		case heightSegments:
			uOffset = -0.5 / float64(widthSegments)
		}

		row := make([]uint32, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)

			x := -float64(radius) * math.Cos(u*2*math.Pi) * math.Sin(v*math.Pi)
			y := float64(radius) * math.Cos(v*math.Pi)
			z := float64(radius) * math.Sin(u*2*math.Pi) * math.Sin(v*math.Pi)
			positions = append(positions, float32(x), float32(y), float32(z))

			inv := 1 / float64(radius)
			normals = append(normals, float32(x*inv), float32(y*inv), float32(z*inv))
			uvs = append(uvs, float32(u+uOffset), float32(1-v))

			row[ix] = index
			index++
		}
		grid[iy] = row
	}

	indices := make([]uint32, 0, widthSegments*(heightSegments-1)*6)
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				indices = append(indices, a, b, d)
			}
			if iy != heightSegments-1 {
				indices = append(indices, b, c, d)
			}
		}
	}

	return New(positions, normals, uvs, indices), nil
}
