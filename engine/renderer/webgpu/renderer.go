// Package webgpu draws renderer frames to a window surface through WebGPU.
package webgpu

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/Carmen-Shannon/oxy-hello/engine/camera"
	"github.com/Carmen-Shannon/oxy-hello/engine/material"
	"github.com/Carmen-Shannon/oxy-hello/engine/renderer"
	"github.com/Carmen-Shannon/oxy-hello/engine/scene"
	"github.com/Carmen-Shannon/oxy-hello/engine/texture"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/google/uuid"
)

// webgpuRenderer implements renderer.Renderer on top of a wgpu surface.
type webgpuRenderer struct {
	renderer.SizeState

	mu     *sync.Mutex
	logger *slog.Logger

	presentMode   wgpu.PresentMode
	sampleCount   renderer.MSAASampleCount
	forceFallback bool

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	surface  *wgpu.Surface

	surfaceFormat wgpu.TextureFormat
	encodeSRGB    bool
	configured    [2]int

	msaaTexture  *wgpu.Texture
	msaaView     *wgpu.TextureView
	depthTexture *wgpu.Texture
	depthView    *wgpu.TextureView

	layouts   layouts
	pipelines pipelines
	sampler   *wgpu.Sampler

	frameBuffer *wgpu.Buffer
	frameGroup  *wgpu.BindGroup

	fallback *gpuTexture
	meshes   map[uuid.UUID]*gpuMesh
	textures map[texture.Texture]*gpuTexture

	frameIndex uint64
	released   bool
}

var _ renderer.Renderer = &webgpuRenderer{}

// NewRenderer creates a WebGPU renderer drawing into the surface described by surfaceDescriptor.
// The calling goroutine is locked to its OS thread; all further calls must come from it.
//
// Parameters:
//   - surfaceDescriptor: the platform surface, usually from the window
//   - options: functional options for the renderer
//
// Returns:
//   - renderer.Renderer: the renderer
//   - error: an error if no adapter, device, or pipeline could be created
func NewRenderer(surfaceDescriptor *wgpu.SurfaceDescriptor, options ...RendererBuilderOption) (renderer.Renderer, error) {
	runtime.LockOSThread()

	r := &webgpuRenderer{
		mu:          &sync.Mutex{},
		logger:      slog.Default(),
		presentMode: wgpu.PresentModeFifo,
		sampleCount: renderer.MSAA4x,
		meshes:      make(map[uuid.UUID]*gpuMesh),
		textures:    make(map[texture.Texture]*gpuTexture),
	}
	for _, option := range options {
		option(r)
	}

	if err := r.init(surfaceDescriptor); err != nil {
		r.Release()
		return nil, err
	}
	return r, nil
}

func (r *webgpuRenderer) init(surfaceDescriptor *wgpu.SurfaceDescriptor) error {
	r.instance = wgpu.CreateInstance(nil)
	r.surface = r.instance.CreateSurface(surfaceDescriptor)

	a, err := r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: r.forceFallback,
		CompatibleSurface:    r.surface,
	})
	if err != nil {
		return fmt.Errorf("requesting adapter: %w", err)
	}
	r.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return fmt.Errorf("requesting device: %w", err)
	}
	r.device = d
	r.queue = d.GetQueue()

	capabilities := r.surface.GetCapabilities(r.adapter)
	if len(capabilities.Formats) == 0 {
		return fmt.Errorf("surface reports no supported formats")
	}
	r.surfaceFormat, r.encodeSRGB = chooseFormat(capabilities.Formats)

	if err := r.initLayouts(); err != nil {
		return err
	}
	if err := r.initPipelines(); err != nil {
		return err
	}
	if err := r.initFrameResources(); err != nil {
		return err
	}

	r.logger.Info("webgpu renderer ready",
		"format", r.surfaceFormat,
		"shaderEncodesSRGB", r.encodeSRGB,
		"msaa", uint32(r.sampleCount),
	)
	return nil
}

// chooseFormat prefers an sRGB surface so the hardware encodes output. Otherwise the shaders encode.
func chooseFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, bool) {
	for _, f := range formats {
		if f == wgpu.TextureFormatBGRA8UnormSrgb || f == wgpu.TextureFormatRGBA8UnormSrgb {
			return f, false
		}
	}
	return formats[0], true
}

func (r *webgpuRenderer) Render(s scene.Scene, cam camera.Camera) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return renderer.ErrReleased
	}
	w, h := r.DrawingBufferSize()
	if w == 0 || h == 0 {
		return renderer.ErrZeroDrawingBuffer
	}

	f, err := renderer.BuildFrame(s, cam)
	if err != nil {
		return err
	}

	if r.configured != [2]int{w, h} {
		if err := r.configure(w, h); err != nil {
			return err
		}
	}

	r.frameIndex++
	frameUniforms := renderer.PackFrame(f, r.encodeSRGB)
	r.queue.WriteBuffer(r.frameBuffer, 0, common.StructToBytes(&frameUniforms))

	var background *wgpu.BindGroup
	if f.Background != nil && f.Background.Ready() {
		background = r.textureGroup(f.Background)
	}

	draws := make([]draw, 0, len(f.Items))
	for _, item := range f.Items {
		d, err := r.prepare(item)
		if err != nil {
			r.logger.Error("mesh upload failed", "mesh", item.Name, "error", err)
			continue
		}
		if d.mesh.indexCount > 0 {
			draws = append(draws, d)
		}
	}
	r.prune()

	surfaceTexture, err := r.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("acquiring surface texture: %w", err)
	}
	defer surfaceTexture.Release()

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("creating surface view: %w", err)
	}
	defer view.Release()

	encoder, err := r.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("creating command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(r.passDescriptor(view, f.BackgroundColor))
	if background != nil {
		pass.SetPipeline(r.pipelines.background)
		pass.SetBindGroup(0, r.frameGroup, nil)
		pass.SetBindGroup(1, background, nil)
		pass.Draw(3, 1, 0, 0)
	}
	for _, d := range draws {
		pass.SetPipeline(d.pipeline)
		pass.SetBindGroup(0, r.frameGroup, nil)
		pass.SetBindGroup(1, d.mesh.group, nil)
		pass.SetBindGroup(2, d.texture, nil)
		pass.SetVertexBuffer(0, d.mesh.vertex, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(d.mesh.index, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		pass.DrawIndexed(d.mesh.indexCount, 1, 0, 0, 0)
	}
	pass.End()
	pass.Release()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finishing command buffer: %w", err)
	}
	defer commandBuffer.Release()

	r.queue.Submit(commandBuffer)
	r.surface.Present()
	return nil
}

// draw is one resolved draw call.
type draw struct {
	pipeline *wgpu.RenderPipeline
	mesh     *gpuMesh
	texture  *wgpu.BindGroup
}

func (r *webgpuRenderer) prepare(item renderer.DrawItem) (draw, error) {
	m, err := r.mesh(item)
	if err != nil {
		return draw{}, err
	}
	uniforms := renderer.PackMesh(item)
	r.queue.WriteBuffer(m.uniform, 0, common.StructToBytes(&uniforms))

	d := draw{pipeline: r.pipelines.standard, mesh: m, texture: r.fallback.group}
	if item.Material == nil {
		return d, nil
	}
	switch item.Material.Type() {
	case material.MaterialTypeMatcap:
		d.pipeline = r.pipelines.matcap
		d.texture = r.textureGroup(item.Material.Matcap())
	default:
		d.texture = r.textureGroup(item.Material.EnvMap())
	}
	return d, nil
}

func (r *webgpuRenderer) passDescriptor(view *wgpu.TextureView, clear common.Color) *wgpu.RenderPassDescriptor {
	if !r.encodeSRGB {
		clear = clear.Linear()
	}
	attachment := wgpu.RenderPassColorAttachment{
		View:    view,
		LoadOp:  wgpu.LoadOpClear,
		StoreOp: wgpu.StoreOpStore,
		ClearValue: wgpu.Color{
			R: float64(clear.R), G: float64(clear.G), B: float64(clear.B), A: 1.0,
		},
	}
	if r.msaaView != nil {
		attachment.View = r.msaaView
		attachment.ResolveTarget = view
		attachment.StoreOp = wgpu.StoreOpDiscard
	}
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{attachment},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            r.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	}
}

// configure resizes the swapchain and the attachments that must match it.
func (r *webgpuRenderer) configure(width, height int) error {
	capabilities := r.surface.GetCapabilities(r.adapter)
	r.surface.Configure(r.adapter, r.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      r.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: r.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})
	r.releaseAttachments()

	count := uint32(r.sampleCount)
	if count > 1 {
		tex, view, err := r.createAttachment("MSAA Texture", width, height, count, r.surfaceFormat)
		if err != nil {
			return err
		}
		r.msaaTexture, r.msaaView = tex, view
	}

	tex, view, err := r.createAttachment("Depth Texture", width, height, count, wgpu.TextureFormatDepth24Plus)
	if err != nil {
		return err
	}
	r.depthTexture, r.depthView = tex, view

	r.configured = [2]int{width, height}
	r.logger.Debug("surface configured", "width", width, "height", height)
	return nil
}

func (r *webgpuRenderer) createAttachment(label string, width, height int, samples uint32, format wgpu.TextureFormat) (*wgpu.Texture, *wgpu.TextureView, error) {
	tex, err := r.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   samples,
		Dimension:     wgpu.TextureDimension2D,
		Format:        format,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", label, err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, nil, fmt.Errorf("creating %s view: %w", label, err)
	}
	return tex, view, nil
}

func (r *webgpuRenderer) releaseAttachments() {
	if r.msaaView != nil {
		r.msaaView.Release()
		r.msaaView = nil
	}
	if r.msaaTexture != nil {
		r.msaaTexture.Release()
		r.msaaTexture = nil
	}
	if r.depthView != nil {
		r.depthView.Release()
		r.depthView = nil
	}
	if r.depthTexture != nil {
		r.depthTexture.Release()
		r.depthTexture = nil
	}
}

func (r *webgpuRenderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return
	}
	r.released = true

	for id, m := range r.meshes {
		m.release()
		delete(r.meshes, id)
	}
	for t, g := range r.textures {
		g.release()
		delete(r.textures, t)
	}
	if r.fallback != nil {
		r.fallback.release()
	}
	if r.frameGroup != nil {
		r.frameGroup.Release()
	}
	if r.frameBuffer != nil {
		r.frameBuffer.Release()
	}
	if r.sampler != nil {
		r.sampler.Release()
	}
	r.pipelines.release()
	r.layouts.release()
	r.releaseAttachments()
	if r.queue != nil {
		r.queue.Release()
	}
	if r.device != nil {
		r.device.Release()
	}
	if r.adapter != nil {
		r.adapter.Release()
	}
	if r.surface != nil {
		r.surface.Release()
	}
	if r.instance != nil {
		r.instance.Release()
	}
}
