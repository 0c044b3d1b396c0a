package loader

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-hello/engine/font"
	"github.com/Carmen-Shannon/oxy-hello/engine/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fontJSON = `{"familyName": "Tiny", "resolution": 1000, "boundingBox": {"yMin": 0, "yMax": 1000},
"glyphs": {"H": {"ha": 500, "x_min": 0, "x_max": 400, "o": "m 0 0 l 400 0 l 400 700 l 0 700"}}}`

func writeAssets(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "fonts"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "textures"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "fonts", "tiny.json"), []byte(fontJSON), 0o644))

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(filepath.Join(root, "textures", "gradient.png"), buf.Bytes(), 0o644))
	return root
}

func awaitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

type countingSource struct {
	Source
	opens atomic.Int32
}

func (c *countingSource) Open(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	c.opens.Add(1)
	return c.Source.Open(ctx, url)
}

func TestLoadFontFromDir(t *testing.T) {
	l := NewLoader(DirSource(writeAssets(t)))
	defer l.Close()

	f, err := l.LoadFont("/fonts/tiny.json").Await(awaitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, "Tiny", f.FamilyName())
	assert.True(t, f.HasGlyph('H'))
}

func TestLoadFontNotFound(t *testing.T) {
	l := NewLoader(DirSource(t.TempDir()))
	defer l.Close()

	_, err := l.LoadFont("/fonts/missing.json").Await(awaitCtx(t))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirSourceStaysInRoot(t *testing.T) {
	root := writeAssets(t)
	src := DirSource(filepath.Join(root, "fonts"))
	_, _, err := src.Open(context.Background(), "../textures/gradient.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadDeduplicatesAndCaches(t *testing.T) {
	src := &countingSource{Source: DirSource(writeAssets(t))}
	l := NewLoader(src, WithWorkers(4))
	defer l.Close()

	futures := make([]*Future[*font.Font], 8)
	for i := range futures {
		futures[i] = l.LoadFont("/fonts/tiny.json")
	}
	var first *font.Font
	for _, fut := range futures {
		f, err := fut.Await(awaitCtx(t))
		require.NoError(t, err)
		if first == nil {
			first = f
		}
		assert.Same(t, first, f)
	}
	assert.Equal(t, int32(1), src.opens.Load())

	// later requests are served from the cache without touching the source
	res, ok := l.LoadFont("/fonts/tiny.json").Poll()
	require.True(t, ok)
	assert.Same(t, first, res.Value)
	assert.Equal(t, int32(1), src.opens.Load())
}

func TestLoadTextureFillsHandle(t *testing.T) {
	var mu sync.Mutex
	var lastRead, lastTotal int64
	l := NewLoader(DirSource(writeAssets(t)), WithProgressCallback(func(_ string, read, total int64) {
		mu.Lock()
		defer mu.Unlock()
		lastRead, lastTotal = read, total
	}))
	defer l.Close()

	tex, fut := l.LoadTexture("/textures/gradient.png", texture.ColorSpaceSRGB)
	assert.Equal(t, "/textures/gradient.png", tex.URL())
	assert.Equal(t, texture.ColorSpaceSRGB, tex.ColorSpace())

	got, err := fut.Await(awaitCtx(t))
	require.NoError(t, err)
	assert.Same(t, tex, got)
	assert.True(t, tex.Ready())
	w, h := tex.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)

	mu.Lock()
	defer mu.Unlock()
	assert.Positive(t, lastRead)
	assert.Equal(t, lastTotal, lastRead)
}

func TestLoadTextureFailureLeavesHandleEmpty(t *testing.T) {
	l := NewLoader(DirSource(t.TempDir()))
	defer l.Close()

	tex, fut := l.LoadTexture("/textures/matcaps/8.png", texture.ColorSpaceSRGB)
	got, err := fut.Await(awaitCtx(t))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Same(t, tex, got)
	assert.False(t, tex.Ready())
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.FileServer(http.Dir(writeAssets(t))))
	defer srv.Close()

	l := NewLoader(HTTPSource(srv.URL+"/", srv.Client()))
	defer l.Close()

	f, err := l.LoadFont("/fonts/tiny.json").Await(awaitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, "Tiny", f.FamilyName())

	_, err = l.LoadFont("/fonts/Funkorama_Regular.json").Await(awaitCtx(t))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPSourceServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, _, err := HTTPSource(srv.URL, nil).Open(context.Background(), "/fonts/a.json")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "500")
}

func TestLoadAfterClose(t *testing.T) {
	l := NewLoader(DirSource(writeAssets(t)))
	l.Close()
	l.Close()

	_, err := l.LoadFont("/fonts/tiny.json").Await(awaitCtx(t))
	assert.ErrorIs(t, err, ErrClosed)
}

// blockingSource holds every Open until the request is cancelled.
type blockingSource struct {
	started chan string
}

func (b *blockingSource) Open(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	b.started <- url
	<-ctx.Done()
	return nil, 0, ctx.Err()
}

func TestCloseResolvesQueuedLoads(t *testing.T) {
	src := &blockingSource{started: make(chan string, 3)}
	l := NewLoader(src, WithWorkers(1))

	futures := []*Future[*font.Font]{
		l.LoadFont("/fonts/a.json"),
		l.LoadFont("/fonts/b.json"),
		l.LoadFont("/fonts/c.json"),
	}
	select {
	case <-src.started:
	case <-time.After(5 * time.Second):
		t.Fatal("no load started")
	}
	l.Close()

	for i, fut := range futures {
		_, err := fut.Await(awaitCtx(t))
		assert.ErrorIs(t, err, ErrClosed, "load %d", i)
	}
}

func TestFutureResolvesOnce(t *testing.T) {
	fut := newFuture[int]()
	_, ok := fut.Poll()
	assert.False(t, ok)

	assert.True(t, fut.resolve(1, nil))
	assert.False(t, fut.resolve(2, nil))

	res, ok := fut.Poll()
	require.True(t, ok)
	assert.Equal(t, 1, res.Value)
}

func TestFutureThenPostsThroughDispatcher(t *testing.T) {
	mailbox := make(chan func(), 4)
	d := DispatcherFunc(func(fn func()) { mailbox <- fn })

	var successes, failures int
	Resolved(7, nil).Then(d, func(v int) { successes += v }, func(error) { failures++ })

	select {
	case fn := <-mailbox:
		fn()
	case <-time.After(5 * time.Second):
		t.Fatal("completion was never posted")
	}
	assert.Equal(t, 7, successes)
	assert.Equal(t, 0, failures)
}

func TestFutureAwaitHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newFuture[int]().Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
