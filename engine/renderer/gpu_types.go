package renderer

import (
	"github.com/Carmen-Shannon/oxy-hello/engine/geometry"
	"github.com/Carmen-Shannon/oxy-hello/engine/material"
)

// MaxLights is the number of lights the GPU frame uniform has room for. Extra lights are dropped.
const MaxLights = 8

// GPULight mirrors the WGSL Light struct (64 bytes).
//   - Color: linear rgb, w = light type
//   - Ground: linear ground rgb for hemisphere lights, w = intensity
//   - Position: xyz, w = cutoff distance (0 = infinite)
//   - Direction: xyz toward the light, w = decay
type GPULight struct {
	Color     [4]float32
	Ground    [4]float32
	Position  [4]float32
	Direction [4]float32
}

// GPUFrameUniforms mirrors the WGSL Frame struct bound at group 0.
//   - InverseViewProjection: used by the background pass to turn screen position into a view ray
//   - Params: x = light count, y = 1 when the shader must encode sRGB itself
type GPUFrameUniforms struct {
	ViewProjection        [16]float32
	View                  [16]float32
	InverseViewProjection [16]float32
	CameraPosition [4]float32
	Params         [4]uint32
	Lights         [MaxLights]GPULight
}

// GPUMeshUniforms mirrors the WGSL Mesh struct bound at group 1 (144 bytes).
//   - Normal: mat3x3 with each column padded to four floats
//   - Color: linear rgb, w = 1
//   - Params: metalness, roughness, flat shading flag, env map flag
type GPUMeshUniforms struct {
	Model  [16]float32
	Normal [12]float32
	Color  [4]float32
	Params [4]float32
}

// PackFrame lays out the per-frame uniform block.
//
// Parameters:
//   - f: the frame
//   - encodeSRGB: true when the output surface is not an sRGB format
//
// Returns:
//   - GPUFrameUniforms: the uniform block
func PackFrame(f Frame, encodeSRGB bool) GPUFrameUniforms {
	u := GPUFrameUniforms{
		ViewProjection: f.ViewProjection,
		View:           f.View,
		CameraPosition: [4]float32{f.CameraPosition.X, f.CameraPosition.Y, f.CameraPosition.Z, 1},
	}
	if inv, ok := f.ViewProjection.Invert(); ok {
		u.InverseViewProjection = inv
	}
	if encodeSRGB {
		u.Params[1] = 1
	}

	n := 0
	for _, l := range f.Lights {
		if n == MaxLights {
			break
		}
		c := l.Color.Array()
		g := l.GroundColor.Array()
		u.Lights[n] = GPULight{
			Color:     [4]float32{c[0], c[1], c[2], float32(l.Type)},
			Ground:    [4]float32{g[0], g[1], g[2], l.Intensity},
			Position:  [4]float32{l.Position.X, l.Position.Y, l.Position.Z, l.Distance},
			Direction: [4]float32{l.Direction.X, l.Direction.Y, l.Direction.Z, l.Decay},
		}
		n++
	}
	u.Params[0] = uint32(n)
	return u
}

// PackMesh lays out the per-mesh uniform block.
//
// Parameters:
//   - item: the draw item
//
// Returns:
//   - GPUMeshUniforms: the uniform block
func PackMesh(item DrawItem) GPUMeshUniforms {
	u := GPUMeshUniforms{
		Model:  item.Model,
		Normal: item.Normal,
		Color:  [4]float32{1, 1, 1, 1},
	}
	m := item.Material
	if m == nil {
		return u
	}
	c := m.Color().Array()
	u.Color = [4]float32{c[0], c[1], c[2], 1}
	u.Params[0] = m.Metalness()
	u.Params[1] = m.Roughness()
	if m.FlatShading() {
		u.Params[2] = 1
	}
	if env := m.EnvMap(); m.Type() == material.MaterialTypeStandard && env != nil && env.Ready() {
		u.Params[3] = 1
	}
	return u
}

// VertexStride is the byte size of one interleaved vertex: position, normal, uv.
const VertexStride = 32

// PackGeometry interleaves a geometry's attributes into position, normal, uv order.
// Non-indexed geometry gets a sequential index list so every mesh draws through DrawIndexed.
//
// Parameters:
//   - g: the geometry
//
// Returns:
//   - []float32: eight floats per vertex
//   - []uint32: triangle indices
func PackGeometry(g *geometry.Geometry) ([]float32, []uint32) {
	n := g.VertexCount()
	out := make([]float32, 0, n*8)
	for i := range n {
		out = append(out, g.Positions[i*3], g.Positions[i*3+1], g.Positions[i*3+2])
		if len(g.Normals) >= (i+1)*3 {
			out = append(out, g.Normals[i*3], g.Normals[i*3+1], g.Normals[i*3+2])
		} else {
			out = append(out, 0, 0, 1)
		}
		if len(g.UVs) >= (i+1)*2 {
			out = append(out, g.UVs[i*2], g.UVs[i*2+1])
		} else {
			out = append(out, 0, 0)
		}
	}

	indices := g.Indices
	if len(indices) == 0 {
		indices = make([]uint32, n)
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	return out, indices
}
