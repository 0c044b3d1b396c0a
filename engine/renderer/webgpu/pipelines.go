package webgpu

import (
	"fmt"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-hello/engine/renderer"
	"github.com/Carmen-Shannon/oxy-hello/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// layouts holds the bind group layouts every pipeline is built from.
//   - frame: group 0, the per-frame uniform block
//   - mesh: group 1 of mesh pipelines, the per-mesh uniform block
//   - texture: a sampled texture and its sampler
type layouts struct {
	frame   *wgpu.BindGroupLayout
	mesh    *wgpu.BindGroupLayout
	texture *wgpu.BindGroupLayout
}

func (l *layouts) release() {
	for _, layout := range []*wgpu.BindGroupLayout{l.frame, l.mesh, l.texture} {
		if layout != nil {
			layout.Release()
		}
	}
}

// pipelines holds one render pipeline per material type plus the background pass.
type pipelines struct {
	standard   *wgpu.RenderPipeline
	matcap     *wgpu.RenderPipeline
	background *wgpu.RenderPipeline
}

func (p *pipelines) release() {
	for _, pipeline := range []*wgpu.RenderPipeline{p.standard, p.matcap, p.background} {
		if pipeline != nil {
			pipeline.Release()
		}
	}
}

// pipelineConfig describes one render pipeline.
type pipelineConfig struct {
	label         string
	code          string
	vertexEntry   string
	fragmentEntry string
	groups        []*wgpu.BindGroupLayout
	buffers       []wgpu.VertexBufferLayout
	depthWrite    bool
	depthCompare  wgpu.CompareFunction
	cullMode      wgpu.CullMode
}

var meshVertexLayout = wgpu.VertexBufferLayout{
	ArrayStride: renderer.VertexStride,
	StepMode:    wgpu.VertexStepModeVertex,
	Attributes: []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
		{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
	},
}

func uniformLayoutEntry() wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    0,
		Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
		Buffer: wgpu.BufferBindingLayout{
			Type: wgpu.BufferBindingTypeUniform,
		},
	}
}

func (r *webgpuRenderer) initLayouts() error {
	var err error
	r.layouts.frame, err = r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   "Frame Layout",
		Entries: []wgpu.BindGroupLayoutEntry{uniformLayoutEntry()},
	})
	if err != nil {
		return fmt.Errorf("creating frame layout: %w", err)
	}

	r.layouts.mesh, err = r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   "Mesh Layout",
		Entries: []wgpu.BindGroupLayoutEntry{uniformLayoutEntry()},
	})
	if err != nil {
		return fmt.Errorf("creating mesh layout: %w", err)
	}

	r.layouts.texture, err = r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Texture Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("creating texture layout: %w", err)
	}
	return nil
}

func (r *webgpuRenderer) initPipelines() error {
	meshGroups := []*wgpu.BindGroupLayout{r.layouts.frame, r.layouts.mesh, r.layouts.texture}

	var err error
	r.pipelines.standard, err = r.createPipeline(pipelineConfig{
		label:         "Standard",
		code:          standardWGSL,
		vertexEntry:   "vs_main",
		fragmentEntry: "fs_standard",
		groups:        meshGroups,
		buffers:       []wgpu.VertexBufferLayout{meshVertexLayout},
		depthWrite:    true,
		depthCompare:  wgpu.CompareFunctionLess,
		cullMode:      wgpu.CullModeNone,
	})
	if err != nil {
		return err
	}

	r.pipelines.matcap, err = r.createPipeline(pipelineConfig{
		label:         "Matcap",
		code:          matcapWGSL,
		vertexEntry:   "vs_main",
		fragmentEntry: "fs_matcap",
		groups:        meshGroups,
		buffers:       []wgpu.VertexBufferLayout{meshVertexLayout},
		depthWrite:    true,
		depthCompare:  wgpu.CompareFunctionLess,
		cullMode:      wgpu.CullModeNone,
	})
	if err != nil {
		return err
	}

	r.pipelines.background, err = r.createPipeline(pipelineConfig{
		label:         "Background",
		code:          backgroundWGSL,
		vertexEntry:   "vs_background",
		fragmentEntry: "fs_background",
		groups:        []*wgpu.BindGroupLayout{r.layouts.frame, r.layouts.texture},
		depthWrite:    false,
		depthCompare:  wgpu.CompareFunctionAlways,
		cullMode:      wgpu.CullModeNone,
	})
	return err
}

func (r *webgpuRenderer) createPipeline(cfg pipelineConfig) (*wgpu.RenderPipeline, error) {
	pp := newPreProcessor()
	code, err := pp.Process(cfg.code)
	if err != nil {
		return nil, fmt.Errorf("pre-processing %s shader: %w", cfg.label, err)
	}
	if n := shader.GroupCount(pp.Declarations()); n != len(cfg.groups) {
		return nil, fmt.Errorf("%s shader declares %d bind groups, pipeline has %d", cfg.label, n, len(cfg.groups))
	}
	r.logger.Debug("shader processed", "pipeline", cfg.label, "bindings", len(pp.Declarations()))

	module, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: cfg.label + " Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: code,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("compiling %s shader: %w", cfg.label, err)
	}
	defer module.Release()

	layout, err := r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            cfg.label + " Layout",
		BindGroupLayouts: cfg.groups,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s pipeline layout: %w", cfg.label, err)
	}
	defer layout.Release()

	pipeline, err := r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  cfg.label + " Render Pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: cfg.vertexEntry,
			Buffers:    cfg.buffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: cfg.fragmentEntry,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    r.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  cfg.cullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(r.sampleCount),
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: cfg.depthWrite,
			DepthCompare:      cfg.depthCompare,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s pipeline: %w", cfg.label, err)
	}
	return pipeline, nil
}

func (r *webgpuRenderer) initFrameResources() error {
	var err error
	r.sampler, err = r.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "Texture Sampler",
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return fmt.Errorf("creating sampler: %w", err)
	}

	r.frameBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Frame Uniforms",
		Size:  uint64(unsafe.Sizeof(renderer.GPUFrameUniforms{})),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("creating frame buffer: %w", err)
	}

	r.frameGroup, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Frame Bind Group",
		Layout: r.layouts.frame,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: r.frameBuffer, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return fmt.Errorf("creating frame bind group: %w", err)
	}

	r.fallback, err = r.uploadTexture("Fallback Texture", whitePixel(), wgpu.TextureFormatRGBA8Unorm)
	if err != nil {
		return err
	}
	return nil
}
