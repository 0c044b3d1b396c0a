package texture

import "image"

// TextureBuilderOption is a functional option for configuring a Texture.
type TextureBuilderOption func(*textureImpl)

// WithName sets the texture label. Defaults to the URL.
//
// Parameters:
//   - name: the label
//
// Returns:
//   - TextureBuilderOption: option function to apply
func WithName(name string) TextureBuilderOption {
	return func(t *textureImpl) {
		t.name = name
	}
}

// WithURL records the asset path the texture is loaded from.
//
// Parameters:
//   - url: the asset path
//
// Returns:
//   - TextureBuilderOption: option function to apply
func WithURL(url string) TextureBuilderOption {
	return func(t *textureImpl) {
		t.url = url
	}
}

// WithColorSpace sets the texel encoding.
//
// Parameters:
//   - cs: the color space
//
// Returns:
//   - TextureBuilderOption: option function to apply
func WithColorSpace(cs ColorSpace) TextureBuilderOption {
	return func(t *textureImpl) {
		t.colorSpace = cs
	}
}

// WithImage fills the texture at construction, making it ready immediately.
//
// Parameters:
//   - img: the pixel data
//
// Returns:
//   - TextureBuilderOption: option function to apply
func WithImage(img *image.RGBA) TextureBuilderOption {
	return func(t *textureImpl) {
		if img != nil {
			t.img = img
			t.version = 1
		}
	}
}
