package texture

import (
	"image"
	"sync"
)

// ColorSpace describes how texel values are encoded.
type ColorSpace int

const (
	// ColorSpaceLinear texels are used as-is by shaders.
	ColorSpaceLinear ColorSpace = iota
	// ColorSpaceSRGB texels are gamma encoded and decoded to linear on sampling.
	ColorSpaceSRGB
)

// String returns the name of the color space.
func (c ColorSpace) String() string {
	if c == ColorSpaceSRGB {
		return "srgb"
	}
	return "linear"
}

// Texture is a handle to image data that may arrive after the handle is created.
// Materials and the scene background hold the handle; loaders fill it in when decoding finishes.
// Renderers compare Version against their cached upload to know when to re-upload.
type Texture interface {
	// Name returns the label of the texture.
	//
	// Returns:
	//   - string: the texture name
	Name() string

	// URL returns the asset path the texture was requested from, or "" for generated textures.
	//
	// Returns:
	//   - string: the source URL
	URL() string

	// ColorSpace returns the encoding of the texels.
	//
	// Returns:
	//   - ColorSpace: the color space
	ColorSpace() ColorSpace

	// Image returns the decoded pixels, or nil while the texture is not ready.
	//
	// Returns:
	//   - *image.RGBA: the pixel data
	Image() *image.RGBA

	// SetImage stores decoded pixels and bumps the version.
	//
	// Parameters:
	//   - img: the decoded pixels
	SetImage(img *image.RGBA)

	// Ready reports whether pixel data is available.
	//
	// Returns:
	//   - bool: true once SetImage has been called with a non-nil image
	Ready() bool

	// Version increases every time the pixel data changes.
	//
	// Returns:
	//   - uint64: the current version, 0 while not ready
	Version() uint64

	// Size returns the pixel dimensions, or zeros while not ready.
	//
	// Returns:
	//   - width, height: dimensions in pixels
	Size() (width, height int)
}

type textureImpl struct {
	mu *sync.Mutex

	name       string
	url        string
	colorSpace ColorSpace
	img        *image.RGBA
	version    uint64
}

var _ Texture = &textureImpl{}

// NewTexture creates an empty texture handle.
//
// Parameters:
//   - options: functional options to configure the texture
//
// Returns:
//   - Texture: the newly created texture
func NewTexture(options ...TextureBuilderOption) Texture {
	t := &textureImpl{
		mu:         &sync.Mutex{},
		colorSpace: ColorSpaceLinear,
	}
	for _, option := range options {
		option(t)
	}
	if t.name == "" {
		t.name = t.url
	}
	return t
}

func (t *textureImpl) Name() string {
	return t.name
}

func (t *textureImpl) URL() string {
	return t.url
}

func (t *textureImpl) ColorSpace() ColorSpace {
	return t.colorSpace
}

func (t *textureImpl) Image() *image.RGBA {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.img
}

func (t *textureImpl) SetImage(img *image.RGBA) {
	if img == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.img = img
	t.version++
}

func (t *textureImpl) Ready() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.img != nil
}

func (t *textureImpl) Version() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.version
}

func (t *textureImpl) Size() (width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}
