package texture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxDimension is the largest width or height uploaded to the GPU. Larger images are downscaled.
const MaxDimension = 4096

// Decode reads a PNG, JPEG, or WebP image and converts it to RGBA.
// Images wider or taller than MaxDimension are resampled to fit, keeping the aspect ratio.
//
// Parameters:
//   - r: the encoded image stream
//
// Returns:
//   - *image.RGBA: the decoded pixels
//   - error: error if the stream is not a supported image
func Decode(r io.Reader) (*image.RGBA, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("failed to decode image: empty %s image", format)
	}

	w, h := fit(b.Dx(), b.Dy(), MaxDimension)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst, nil
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}

// Solid returns a 1x1 RGBA image of the given color, used as a stand-in while textures load.
//
// Parameters:
//   - c: the fill color
//
// Returns:
//   - *image.RGBA: the single-pixel image
func Solid(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, c)
	return img
}

// fit scales w x h down so neither side exceeds limit.
func fit(w, h, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}
