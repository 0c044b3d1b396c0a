package webgpu

import "github.com/Carmen-Shannon/oxy-hello/engine/renderer/shader"

// frameWGSL declares the uniform blocks shared by every pipeline. Layouts match renderer.GPUFrameUniforms
// and renderer.GPUMeshUniforms.
const frameWGSL = `
const PI: f32 = 3.141592653589793;
const MAX_LIGHTS: u32 = 8u;

const LIGHT_AMBIENT: u32 = 0u;
const LIGHT_DIRECTIONAL: u32 = 1u;
const LIGHT_HEMISPHERE: u32 = 2u;
const LIGHT_POINT: u32 = 3u;

struct Light {
    color: vec4f,
    ground: vec4f,
    position: vec4f,
    direction: vec4f,
}

struct Frame {
    view_proj: mat4x4f,
    view: mat4x4f,
    inv_view_proj: mat4x4f,
    camera: vec4f,
    params: vec4u,
    lights: array<Light, 8>,
}

struct Mesh {
    model: mat4x4f,
    normal: mat3x3f,
    color: vec4f,
    params: vec4f,
}

//@oxy:group 0 0 uniform frame Frame

fn linear_to_srgb(c: vec3f) -> vec3f {
    let lo = c * 12.92;
    let hi = 1.055 * pow(c, vec3f(1.0 / 2.4)) - 0.055;
    return select(hi, lo, c <= vec3f(0.0031308));
}

fn encode_output(c: vec3f) -> vec4f {
    let clamped = clamp(c, vec3f(0.0), vec3f(1.0));
    if frame.params.y == 1u {
        return vec4f(linear_to_srgb(clamped), 1.0);
    }
    return vec4f(clamped, 1.0);
}

fn equirect_uv(dir: vec3f) -> vec2f {
    let u = atan2(dir.z, dir.x) * (0.5 / PI) + 0.5;
    let v = asin(clamp(dir.y, -1.0, 1.0)) / PI + 0.5;
    return vec2f(u, 1.0 - v);
}
`

// meshWGSL is the vertex stage shared by the standard and matcap pipelines.
const meshWGSL = `
//@oxy:include frame
//@oxy:group 1 0 uniform mesh Mesh
//@oxy:group 2 0 texture surface_texture texture_2d<f32>
//@oxy:group 2 1 sampler surface_sampler sampler

struct VertexIn {
    @location(0) position: vec3f,
    @location(1) normal: vec3f,
    @location(2) uv: vec2f,
}

struct VertexOut {
    @builtin(position) clip: vec4f,
    @location(0) world: vec3f,
    @location(1) normal: vec3f,
    @location(2) uv: vec2f,
    @location(3) view_pos: vec3f,
}

@vertex
fn vs_main(in: VertexIn) -> VertexOut {
    let world = mesh.model * vec4f(in.position, 1.0);
    var out: VertexOut;
    out.clip = frame.view_proj * world;
    out.world = world.xyz;
    out.normal = mesh.normal * in.normal;
    out.uv = in.uv;
    out.view_pos = (frame.view * world).xyz;
    return out;
}

fn shading_normal(in: VertexOut, to_eye: vec3f) -> vec3f {
    let faceted = normalize(cross(dpdx(in.world), dpdy(in.world)));
    var n = normalize(in.normal);
    if mesh.params.z > 0.5 {
        n = faceted;
    }
    if dot(n, to_eye) < 0.0 {
        n = -n;
    }
    return n;
}
`

// standardWGSL lights a metal/roughness surface with ambient, hemisphere, directional and point lights
// plus an optional equirectangular environment map.
const standardWGSL = `
//@oxy:include mesh
fn distance_attenuation(d: f32, cutoff: f32, decay: f32) -> f32 {
    var f = 1.0 / max(pow(d, decay), 0.01);
    if cutoff > 0.0 {
        let r = clamp(1.0 - pow(d / cutoff, 4.0), 0.0, 1.0);
        f = f * r * r;
    }
    return f;
}

fn fresnel(f0: vec3f, cos_theta: f32) -> vec3f {
    let fresnel_weight = exp2((-5.55473 * cos_theta - 6.98316) * cos_theta);
    return f0 + (vec3f(1.0) - f0) * fresnel_weight;
}

fn ggx(alpha: f32, n_dot_h: f32) -> f32 {
    let a2 = alpha * alpha;
    let d = n_dot_h * n_dot_h * (a2 - 1.0) + 1.0;
    return a2 / (PI * d * d);
}

fn smith(alpha: f32, n_dot_l: f32, n_dot_v: f32) -> f32 {
    let a2 = alpha * alpha;
    let gv = n_dot_l * sqrt(a2 + (1.0 - a2) * n_dot_v * n_dot_v);
    let gl = n_dot_v * sqrt(a2 + (1.0 - a2) * n_dot_l * n_dot_l);
    return 0.5 / max(gv + gl, 1e-6);
}

fn direct(n: vec3f, v: vec3f, l: vec3f, radiance: vec3f, diffuse: vec3f, f0: vec3f, alpha: f32) -> vec3f {
    let n_dot_l = clamp(dot(n, l), 0.0, 1.0);
    if n_dot_l <= 0.0 {
        return vec3f(0.0);
    }
    let h = normalize(l + v);
    let n_dot_v = clamp(dot(n, v), 1e-4, 1.0);
    let n_dot_h = clamp(dot(n, h), 0.0, 1.0);
    let v_dot_h = clamp(dot(v, h), 0.0, 1.0);
    let spec = fresnel(f0, v_dot_h) * ggx(alpha, n_dot_h) * smith(alpha, n_dot_l, n_dot_v);
    return radiance * n_dot_l * (diffuse / PI + spec);
}

@fragment
fn fs_standard(in: VertexOut) -> @location(0) vec4f {
    let v = normalize(frame.camera.xyz - in.world);
    let n = shading_normal(in, v);

    let metalness = clamp(mesh.params.x, 0.0, 1.0);
    let roughness = clamp(mesh.params.y, 0.0525, 1.0);
    let alpha = roughness * roughness;
    let base = mesh.color.rgb;
    let diffuse = base * (1.0 - metalness);
    let f0 = mix(vec3f(0.04), base, metalness);

    let reflected = reflect(-v, n);
    let env_spec = textureSample(surface_texture, surface_sampler, equirect_uv(reflected)).rgb;
    let env_diffuse = textureSample(surface_texture, surface_sampler, equirect_uv(n)).rgb;

    var color = vec3f(0.0);
    let count = min(frame.params.x, MAX_LIGHTS);
    for (var i = 0u; i < count; i = i + 1u) {
        let light = frame.lights[i];
        let kind = u32(light.color.w);
        let radiance = light.color.rgb * light.ground.w;
        switch kind {
            case LIGHT_AMBIENT: {
                color += radiance * diffuse;
            }
            case LIGHT_DIRECTIONAL: {
                color += direct(n, v, normalize(light.direction.xyz), radiance * PI, diffuse, f0, alpha);
            }
            case LIGHT_HEMISPHERE: {
                let w = 0.5 * dot(n, normalize(light.direction.xyz)) + 0.5;
                color += mix(light.ground.rgb, light.color.rgb, w) * light.ground.w * diffuse;
            }
            case LIGHT_POINT: {
                let to_light = light.position.xyz - in.world;
                let d = length(to_light);
                let att = distance_attenuation(d, light.position.w, light.direction.w);
                color += direct(n, v, to_light / max(d, 1e-4), radiance * att * PI, diffuse, f0, alpha);
            }
            default: {}
        }
    }

    if mesh.params.w > 0.5 {
        let n_dot_v = clamp(dot(n, v), 0.0, 1.0);
        let spec_weight = fresnel(f0, n_dot_v) * (1.0 - roughness * 0.7);
        color += env_spec * spec_weight + env_diffuse * diffuse;
    }

    return encode_output(color);
}
`

// matcapWGSL shades from a lit-sphere texture indexed by the view-space normal.
const matcapWGSL = `
//@oxy:include mesh
@fragment
fn fs_matcap(in: VertexOut) -> @location(0) vec4f {
    let world_n = shading_normal(in, normalize(frame.camera.xyz - in.world));
    let n = normalize((frame.view * vec4f(world_n, 0.0)).xyz);
    let view_dir = normalize(-in.view_pos);
    let x = normalize(vec3f(view_dir.z, 0.0, -view_dir.x));
    let y = cross(view_dir, x);
    let uv = vec2f(dot(x, n), dot(y, n)) * 0.495 + 0.5;
    let sampled = textureSample(surface_texture, surface_sampler, vec2f(uv.x, 1.0 - uv.y)).rgb;
    return encode_output(mesh.color.rgb * sampled);
}
`

// backgroundWGSL draws an equirectangular texture behind everything with a single full-screen triangle.
const backgroundWGSL = `
//@oxy:include frame
//@oxy:group 1 0 texture background_texture texture_2d<f32>
//@oxy:group 1 1 sampler background_sampler sampler

struct BackgroundOut {
    @builtin(position) clip: vec4f,
    @location(0) ndc: vec2f,
}

@vertex
fn vs_background(@builtin(vertex_index) index: u32) -> BackgroundOut {
    let p = vec2f(f32((index << 1u) & 2u), f32(index & 2u)) * 2.0 - 1.0;
    var out: BackgroundOut;
    out.clip = vec4f(p, 1.0, 1.0);
    out.ndc = p;
    return out;
}

@fragment
fn fs_background(in: BackgroundOut) -> @location(0) vec4f {
    let near = frame.inv_view_proj * vec4f(in.ndc, 0.0, 1.0);
    let far = frame.inv_view_proj * vec4f(in.ndc, 1.0, 1.0);
    let dir = normalize(far.xyz / far.w - near.xyz / near.w);
    let c = textureSample(background_texture, background_sampler, equirect_uv(dir)).rgb;
    return encode_output(c);
}
`

// newPreProcessor registers the shared chunks the pipeline sources include.
func newPreProcessor() shader.PreProcessor {
	return shader.NewPreProcessor(
		shader.WithChunk("frame", frameWGSL),
		shader.WithChunk("mesh", meshWGSL),
	)
}
