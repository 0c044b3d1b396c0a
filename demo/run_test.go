package demo

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-hello/engine/loader"
	"github.com/Carmen-Shannon/oxy-hello/engine/renderer"
	"github.com/Carmen-Shannon/oxy-hello/engine/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer serializes writes from the loop and the helper goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func runCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestRunRequiresPlatform(t *testing.T) {
	err := Run(context.Background(), RunOptions{Config: testConfig()})
	require.ErrorIs(t, err, ErrNoPlatform)
}

func TestRunHeadlessStopsAfterFrames(t *testing.T) {
	var logs syncBuffer
	r := renderer.NewHeadless(renderer.WithHistory(1))

	err := Run(runCtx(t), RunOptions{
		Config:   testConfig(),
		Window:   window.NewHeadless(window.WithSize(800, 600)),
		Renderer: r,
		Source:   loader.DirSource(writeAssets(t, true)),
		Workers:  2,
		Frames:   5,
		Logger:   slog.New(slog.NewTextHandler(&logs, nil)),
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(5), r.FrameCount())
	assert.Contains(t, logs.String(), "frames=5")
	assert.Contains(t, logs.String(), "renderErrors=0")

	w, h := r.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestRunKeepsRenderingWithoutFont(t *testing.T) {
	var logs syncBuffer
	r := renderer.NewHeadless(renderer.WithHistory(1))

	err := Run(runCtx(t), RunOptions{
		Config:   testConfig(),
		Window:   window.NewHeadless(window.WithFrameBudget(200)),
		Renderer: r,
		Source:   loader.DirSource(writeAssets(t, false)),
		Logger:   slog.New(slog.NewTextHandler(&logs, nil)),
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(200), r.FrameCount())
	last, ok := r.LastFrame()
	require.True(t, ok)
	assert.Len(t, last.Items, 1)
	assert.Len(t, last.Lights, 4)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := renderer.NewHeadless()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, RunOptions{
			Config:   testConfig(),
			Window:   window.NewHeadless(),
			Renderer: r,
			Source:   loader.DirSource(t.TempDir()),
			Logger:   slog.New(slog.NewTextHandler(&syncBuffer{}, nil)),
		})
	}()

	require.Eventually(t, func() bool { return r.FrameCount() > 0 }, 5*time.Second, time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
