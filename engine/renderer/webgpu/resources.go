package webgpu

import (
	"fmt"
	"image"
	"image/color"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/Carmen-Shannon/oxy-hello/engine/geometry"
	"github.com/Carmen-Shannon/oxy-hello/engine/renderer"
	"github.com/Carmen-Shannon/oxy-hello/engine/texture"
	"github.com/cogentcore/webgpu/wgpu"
)

// gpuMesh is the uploaded form of one scene mesh.
type gpuMesh struct {
	geometry   *geometry.Geometry
	vertex     *wgpu.Buffer
	index      *wgpu.Buffer
	indexCount uint32
	uniform    *wgpu.Buffer
	group      *wgpu.BindGroup
	lastFrame  uint64
}

func (m *gpuMesh) releaseGeometry() {
	if m.vertex != nil {
		m.vertex.Release()
		m.vertex = nil
	}
	if m.index != nil {
		m.index.Release()
		m.index = nil
	}
	m.indexCount = 0
}

func (m *gpuMesh) release() {
	m.releaseGeometry()
	if m.group != nil {
		m.group.Release()
	}
	if m.uniform != nil {
		m.uniform.Release()
	}
}

// mesh returns the GPU resources for a draw item, uploading geometry the first time it is seen.
func (r *webgpuRenderer) mesh(item renderer.DrawItem) (*gpuMesh, error) {
	m, ok := r.meshes[item.MeshID]
	if !ok {
		uniform, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: item.Name + " Uniforms",
			Size:  uint64(unsafe.Sizeof(renderer.GPUMeshUniforms{})),
			Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return nil, err
		}
		group, err := r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  item.Name + " Bind Group",
			Layout: r.layouts.mesh,
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, Buffer: uniform, Size: wgpu.WholeSize},
			},
		})
		if err != nil {
			uniform.Release()
			return nil, err
		}
		m = &gpuMesh{uniform: uniform, group: group}
		r.meshes[item.MeshID] = m
	}
	m.lastFrame = r.frameIndex

	if m.geometry != item.Geometry {
		m.releaseGeometry()
		if err := r.uploadGeometry(m, item.Name, item.Geometry); err != nil {
			return nil, err
		}
		m.geometry = item.Geometry
	}
	return m, nil
}

func (r *webgpuRenderer) uploadGeometry(m *gpuMesh, label string, g *geometry.Geometry) error {
	vertices, indices := renderer.PackGeometry(g)
	if len(vertices) == 0 || len(indices) == 0 {
		return nil
	}

	vertexData := common.SliceToBytes(vertices)
	vertex, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label + " Vertex Buffer",
		Size:  uint64(len(vertexData)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	r.queue.WriteBuffer(vertex, 0, vertexData)

	indexData := common.SliceToBytes(indices)
	index, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label + " Index Buffer",
		Size:  uint64(len(indexData)),
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		vertex.Release()
		return err
	}
	r.queue.WriteBuffer(index, 0, indexData)

	m.vertex, m.index, m.indexCount = vertex, index, uint32(len(indices))
	r.logger.Debug("mesh uploaded", "mesh", label, "vertices", len(vertices)/8, "indices", len(indices))
	return nil
}

// prune releases meshes that were not drawn this frame.
func (r *webgpuRenderer) prune() {
	for id, m := range r.meshes {
		if m.lastFrame != r.frameIndex {
			m.release()
			delete(r.meshes, id)
		}
	}
}

// gpuTexture is the uploaded form of one texture, bound together with the shared sampler.
type gpuTexture struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	group   *wgpu.BindGroup
	version uint64
}

func (t *gpuTexture) release() {
	if t.group != nil {
		t.group.Release()
	}
	if t.view != nil {
		t.view.Release()
	}
	if t.texture != nil {
		t.texture.Release()
	}
}

// textureGroup returns the bind group for t, uploading or re-uploading pixels when its version moved.
// Textures that are not loaded yet bind a white placeholder.
func (r *webgpuRenderer) textureGroup(t texture.Texture) *wgpu.BindGroup {
	if t == nil || !t.Ready() {
		return r.fallback.group
	}
	cached := r.textures[t]
	if cached != nil && cached.version == t.Version() {
		return cached.group
	}

	format := wgpu.TextureFormatRGBA8Unorm
	if t.ColorSpace() == texture.ColorSpaceSRGB {
		format = wgpu.TextureFormatRGBA8UnormSrgb
	}
	uploaded, err := r.uploadTexture(t.Name(), t.Image(), format)
	if err != nil {
		r.logger.Error("texture upload failed", "texture", t.Name(), "error", err)
		return r.fallback.group
	}
	if cached != nil {
		cached.release()
	}
	uploaded.version = t.Version()
	r.textures[t] = uploaded
	return uploaded.group
}

func (r *webgpuRenderer) uploadTexture(label string, img *image.RGBA, format wgpu.TextureFormat) (*gpuTexture, error) {
	b := img.Bounds()
	width, height := uint32(b.Dx()), uint32(b.Dy())
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("texture %s has no pixels", label)
	}

	tex, err := r.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        format,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("creating texture %s: %w", label, err)
	}

	r.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		tightPixels(img),
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  width * 4,
			RowsPerImage: height,
		},
		&wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
	)

	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("creating texture view %s: %w", label, err)
	}

	group, err := r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  label + " Bind Group",
		Layout: r.layouts.texture,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: view},
			{Binding: 1, Sampler: r.sampler},
		},
	})
	if err != nil {
		view.Release()
		tex.Release()
		return nil, fmt.Errorf("creating texture bind group %s: %w", label, err)
	}
	return &gpuTexture{texture: tex, view: view, group: group}, nil
}

// tightPixels returns the image's pixels without row padding.
func tightPixels(img *image.RGBA) []byte {
	b := img.Bounds()
	rowBytes := b.Dx() * 4
	if img.Stride == rowBytes && b.Min == (image.Point{}) {
		return img.Pix[:rowBytes*b.Dy()]
	}
	out := make([]byte, 0, rowBytes*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		start := img.PixOffset(b.Min.X, y)
		out = append(out, img.Pix[start:start+rowBytes]...)
	}
	return out
}

func whitePixel() *image.RGBA {
	return texture.Solid(color.RGBA{R: 255, G: 255, B: 255, A: 255})
}
