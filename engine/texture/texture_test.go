package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestTextureHandleLifecycle(t *testing.T) {
	tex := NewTexture(WithURL("/textures/matcaps/8.png"), WithColorSpace(ColorSpaceSRGB))
	assert.Equal(t, "/textures/matcaps/8.png", tex.Name())
	assert.Equal(t, ColorSpaceSRGB, tex.ColorSpace())
	assert.False(t, tex.Ready())
	assert.Zero(t, tex.Version())
	w, h := tex.Size()
	assert.Zero(t, w+h)

	tex.SetImage(nil)
	assert.False(t, tex.Ready())

	tex.SetImage(Solid(color.RGBA{255, 0, 0, 255}))
	assert.True(t, tex.Ready())
	assert.Equal(t, uint64(1), tex.Version())

	tex.SetImage(image.NewRGBA(image.Rect(0, 0, 4, 2)))
	assert.Equal(t, uint64(2), tex.Version())
	w, h = tex.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)
}

func TestWithImageIsReady(t *testing.T) {
	tex := NewTexture(WithName("white"), WithImage(Solid(color.RGBA{255, 255, 255, 255})))
	assert.True(t, tex.Ready())
	assert.Equal(t, uint64(1), tex.Version())
	assert.Equal(t, "white", tex.Name())
}

func TestDecodePNG(t *testing.T) {
	img, err := Decode(bytes.NewReader(encodePNG(t, 8, 4, color.NRGBA{10, 20, 30, 255})))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, img.RGBAAt(3, 2))
}

func TestDecodeDownscalesLargeImages(t *testing.T) {
	img, err := Decode(bytes.NewReader(encodePNG(t, MaxDimension*2, 16, color.NRGBA{255, 255, 255, 255})))
	require.NoError(t, err)
	assert.Equal(t, MaxDimension, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("definitely not an image"))
	assert.Error(t, err)
}

func TestColorSpaceString(t *testing.T) {
	assert.Equal(t, "srgb", ColorSpaceSRGB.String())
	assert.Equal(t, "linear", ColorSpaceLinear.String())
}
