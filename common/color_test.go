package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFromHexRoundTrip(t *testing.T) {
	for _, hex := range []uint32{0x000000, 0xffffff, 0xc09bd9, 0xefc3ff, 0xff86cf, 0xf4cccc} {
		assert.Equal(t, hex, ColorFromHex(hex).Hex(), "hex %06x", hex)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{in: "#c09bd9", want: 0xc09bd9},
		{in: "C09BD9", want: 0xc09bd9},
		{in: "0xff0000", want: 0xff0000},
		{in: "#fff", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHexColor(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Hex())
		})
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#c09bd9", ColorFromHex(0xc09bd9).String())
}

func TestColorLinear(t *testing.T) {
	assert.Equal(t, Color{0, 0, 0}, ColorFromHex(0x000000).Linear())
	white := ColorFromHex(0xffffff).Linear()
	assert.InDelta(t, 1.0, white.R, 1e-5)
	// sRGB mid grey is roughly 0.214 in linear space.
	grey := ColorFromHex(0x808080).Linear()
	assert.InDelta(t, 0.2158, grey.G, 1e-3)
}

func TestColorHSLRoundTrip(t *testing.T) {
	for _, hex := range []uint32{0xc09bd9, 0xff0000, 0x00ff00, 0x0000ff, 0x808080} {
		c := ColorFromHex(hex)
		h, s, l := c.HSL()
		assert.Equal(t, hex, ColorFromHSL(h, s, l).Hex(), "hex %06x", hex)
	}
}

func TestColorOffsetHueWraps(t *testing.T) {
	red := ColorFromHex(0xff0000)
	assert.Equal(t, uint32(0xff0000), red.OffsetHue(1).Hex())
	assert.Equal(t, uint32(0x00ff00), red.OffsetHue(1.0/3).Hex())
}
