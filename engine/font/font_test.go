package font

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-hello/engine/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The outer ring of "O" is clockwise, the way typeface converters emit TrueType outlines.
const testFont = `{
	"familyName": "Test Sans",
	"resolution": 1000,
	"underlineThickness": 50,
	"boundingBox": {"yMin": -250, "yMax": 1000},
	"glyphs": {
		"O": {"ha": 600, "x_min": 0, "x_max": 500, "o": "m 0 0 l 0 500 l 500 500 l 500 0 l 0 0 m 100 100 l 400 100 l 400 400 l 100 400 l 100 100"},
		"I": {"ha": 300, "x_min": 0, "x_max": 200, "o": "m 0 0 l 0 700 l 200 700 l 200 0"},
		"D": {"ha": 500, "x_min": 0, "x_max": 400, "o": "m 0 0 l 0 400 q 400 200 400 400 q 0 0 400 0"},
		"?": {"ha": 400, "x_min": 0, "x_max": 300, "o": "m 0 0 l 0 300 l 300 300 l 300 0"},
		" ": {"ha": 250, "x_min": 0, "x_max": 0, "o": ""}
	}
}`

func parseTestFont(t *testing.T, options ...FontBuilderOption) *Font {
	t.Helper()
	f, err := Parse(strings.NewReader(testFont), options...)
	require.NoError(t, err)
	return f
}

func TestParseMetadata(t *testing.T) {
	f := parseTestFont(t)
	assert.Equal(t, "Test Sans", f.FamilyName())
	assert.Equal(t, float32(1000), f.Resolution())
	assert.True(t, f.HasGlyph('O'))
	assert.False(t, f.HasGlyph('x'))
	assert.InDelta(t, 1.3, f.LineHeight(1), 1e-6)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{"},
		{name: "no resolution", data: `{"glyphs": {"a": {"ha": 1, "o": ""}}}`},
		{name: "no glyphs", data: `{"resolution": 1000}`},
		{name: "bad command", data: `{"resolution": 1000, "glyphs": {"a": {"ha": 1, "o": "m 0 0 z"}}}`},
		{name: "short command", data: `{"resolution": 1000, "glyphs": {"a": {"ha": 1, "o": "m 0 0 l 5"}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestShapesHoleAssignment(t *testing.T) {
	f := parseTestFont(t)
	shapes, err := f.Shapes("O", 1, 4)
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.Len(t, shapes[0].Contour, 4)
	require.Len(t, shapes[0].Holes, 1)
	assert.InDelta(t, 0.25, abs(geometry.SignedArea(shapes[0].Contour)), 1e-6)
	assert.InDelta(t, 0.09, abs(geometry.SignedArea(shapes[0].Holes[0])), 1e-6)
}

func TestShapesLayout(t *testing.T) {
	f := parseTestFont(t)
	shapes, err := f.Shapes("I I\nI", 1, 4)
	require.NoError(t, err)
	require.Len(t, shapes, 3)

	// second "I" starts after "I" and a space
	assert.InDelta(t, 0.55, shapes[1].Contour[0].X, 1e-6)
	// third "I" sits on the next line
	assert.InDelta(t, 0, shapes[2].Contour[0].X, 1e-6)
	assert.InDelta(t, -1.3, shapes[2].Contour[0].Y, 1e-6)

	assert.InDelta(t, 0.85, f.Advance("I I\nI", 1), 1e-6)
}

func TestShapesSamplesCurves(t *testing.T) {
	f := parseTestFont(t)
	coarse, err := f.Shapes("D", 1, 1)
	require.NoError(t, err)
	fine, err := f.Shapes("D", 1, 8)
	require.NoError(t, err)
	require.Len(t, coarse, 1)
	require.Len(t, fine, 1)
	assert.Greater(t, len(fine[0].Contour), len(coarse[0].Contour))
}

func TestMissingGlyphFallsBackAndWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	f := parseTestFont(t, WithLogger(logger))

	shapes, err := f.Shapes("xx", 1, 2)
	require.NoError(t, err)
	require.Len(t, shapes, 2)
	assert.InDelta(t, 0.4, shapes[1].Contour[0].X, 1e-6)
	assert.Equal(t, 1, strings.Count(buf.String(), "character not found in font"))
}

func TestShapesRejectsBadArguments(t *testing.T) {
	f := parseTestFont(t)
	_, err := f.Shapes("O", 0, 4)
	assert.Error(t, err)
	_, err = f.Shapes("O", 1, 0)
	assert.Error(t, err)
}

func TestTextGeometryFromFont(t *testing.T) {
	f := parseTestFont(t)
	g, err := geometry.NewText(f, "OI", geometry.TextOptions{
		Size:           0.5,
		Depth:          0.2,
		CurveSegments:  4,
		BevelEnabled:   true,
		BevelThickness: 0.05,
		BevelSize:      0.03,
		BevelSegments:  3,
	})
	require.NoError(t, err)
	assert.Positive(t, g.TriangleCount())

	g.Center()
	c := g.BoundingBox().Center()
	assert.InDelta(t, 0, c.X, 1e-5)
	assert.InDelta(t, 0, c.Y, 1e-5)
	assert.InDelta(t, 0, c.Z, 1e-5)
}
