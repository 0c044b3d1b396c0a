package profiler

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestTickReportsOncePerInterval(t *testing.T) {
	var buf bytes.Buffer
	clock := &fakeTime{t: time.Unix(0, 0)}
	p := NewProfiler(
		WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		WithTimeSource(clock.now),
	)

	for range 49 {
		clock.advance(20 * time.Millisecond)
		assert.False(t, p.Tick())
	}
	clock.advance(20 * time.Millisecond)
	require.True(t, p.Tick())

	s := p.Last()
	assert.Equal(t, 50, s.Frames)
	assert.InDelta(t, 50.0, s.FPS, 0.01)
	assert.Contains(t, buf.String(), "msg=profiler")
	assert.Contains(t, buf.String(), "fps=")

	clock.advance(time.Second / 2)
	assert.False(t, p.Tick())
}

func TestResetStartsNewWindow(t *testing.T) {
	clock := &fakeTime{t: time.Unix(0, 0)}
	p := NewProfiler(WithTimeSource(clock.now), WithInterval(100*time.Millisecond), WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))

	clock.advance(time.Hour)
	p.Reset()
	clock.advance(50 * time.Millisecond)
	assert.False(t, p.Tick())
	clock.advance(50 * time.Millisecond)
	require.True(t, p.Tick())
	assert.Equal(t, 2, p.Last().Frames)
}
