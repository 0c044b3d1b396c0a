// Package loader fetches and decodes fonts and textures off the render goroutine.
package loader

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-hello/engine/font"
	"github.com/Carmen-Shannon/oxy-hello/engine/texture"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrNotFound is returned when a source has no asset at the requested path.
	ErrNotFound = errors.New("asset not found")
	// ErrClosed is returned for loads requested after Close.
	ErrClosed = errors.New("loader closed")
)

const (
	defaultWorkers   = 4
	defaultQueueSize = 64
	workerIdle       = time.Second
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	source   Source
	logger   *slog.Logger
	progress func(url string, read, total int64)
	workers  int

	pool   worker.DynamicWorkerPool
	group  singleflight.Group
	nextID atomic.Int64

	ctx    context.Context
	cancel context.CancelFunc
	closed bool
	once   sync.Once

	fonts   map[string]*font.Font
	images  map[string]*image.RGBA
	pending map[int64]*pendingLoad
}

// pendingLoad is a submitted load whose completion has not run yet.
type pendingLoad struct {
	once sync.Once
	done func(any, error)
}

func (p *pendingLoad) finish(v any, err error) {
	p.once.Do(func() {
		p.done(v, err)
	})
}

// Loader fetches assets through a Source on a bounded worker pool.
// Concurrent requests for the same URL share one fetch, and successful results are cached by URL.
type Loader interface {
	// LoadFont fetches and parses a typeface JSON font.
	//
	// Parameters:
	//   - url: the asset path
	//
	// Returns:
	//   - *Future[*font.Font]: resolves once with the font or the error
	LoadFont(url string) *Future[*font.Font]

	// LoadTexture returns a texture handle immediately and fills it when the image is decoded.
	// On failure the handle stays empty and the future carries the error.
	//
	// Parameters:
	//   - url: the asset path
	//   - cs: the color space of the texels
	//
	// Returns:
	//   - texture.Texture: the handle, not ready until the future resolves
	//   - *Future[texture.Texture]: resolves once with the filled handle or the error
	LoadTexture(url string, cs texture.ColorSpace) (texture.Texture, *Future[texture.Texture])

	// Close cancels in-flight fetches and stops the worker pool. Loads still queued and
	// later loads resolve with ErrClosed.
	Close()
}

var _ Loader = &loader{}

// NewLoader creates a Loader reading from source.
//
// Parameters:
//   - source: where asset bytes come from
//   - options: functional options for the loader
//
// Returns:
//   - Loader: the new loader
func NewLoader(source Source, options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:      sync.RWMutex{},
		source:  source,
		logger:  slog.Default(),
		workers: defaultWorkers,
		fonts:   make(map[string]*font.Font),
		images:  make(map[string]*image.RGBA),
		pending: make(map[int64]*pendingLoad),
	}
	for _, option := range options {
		option(l)
	}
	l.ctx, l.cancel = context.WithCancel(context.Background())
	l.pool = worker.NewDynamicWorkerPool(l.workers, defaultQueueSize, workerIdle)
	return l
}

func (l *loader) LoadFont(url string) *Future[*font.Font] {
	l.mu.RLock()
	cached, ok := l.fonts[url]
	l.mu.RUnlock()
	if ok {
		return Resolved(cached, nil)
	}

	fut := newFuture[*font.Font]()
	l.submit("font:"+url, func() (any, error) {
		l.mu.RLock()
		cached, ok := l.fonts[url]
		l.mu.RUnlock()
		if ok {
			return cached, nil
		}

		var f *font.Font
		err := l.fetch(url, func(r io.Reader) error {
			var err error
			f, err = font.Parse(r, font.WithLogger(l.logger))
			return err
		})
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.fonts[url] = f
		l.mu.Unlock()
		return f, nil
	}, func(v any, err error) {
		if err != nil {
			fut.resolve(nil, fmt.Errorf("loading font %s: %w", url, err))
			return
		}
		fut.resolve(v.(*font.Font), nil)
	})
	return fut
}

func (l *loader) LoadTexture(url string, cs texture.ColorSpace) (texture.Texture, *Future[texture.Texture]) {
	tex := texture.NewTexture(texture.WithURL(url), texture.WithColorSpace(cs))

	l.mu.RLock()
	cached, ok := l.images[url]
	l.mu.RUnlock()
	if ok {
		tex.SetImage(cached)
		return tex, Resolved(tex, nil)
	}

	fut := newFuture[texture.Texture]()
	l.submit("texture:"+url, func() (any, error) {
		l.mu.RLock()
		cached, ok := l.images[url]
		l.mu.RUnlock()
		if ok {
			return cached, nil
		}

		var img *image.RGBA
		err := l.fetch(url, func(r io.Reader) error {
			var err error
			img, err = texture.Decode(r)
			return err
		})
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.images[url] = img
		l.mu.Unlock()
		return img, nil
	}, func(v any, err error) {
		if err != nil {
			fut.resolve(tex, fmt.Errorf("loading texture %s: %w", url, err))
			return
		}
		tex.SetImage(v.(*image.RGBA))
		fut.resolve(tex, nil)
	})
	return tex, fut
}

func (l *loader) Close() {
	l.once.Do(func() {
		l.mu.Lock()
		l.closed = true
		pending := l.pending
		l.pending = make(map[int64]*pendingLoad)
		l.mu.Unlock()

		l.cancel()
		l.pool.Stop()
		l.pool.ClearTaskQueue()
		for _, p := range pending {
			p.finish(nil, ErrClosed)
		}
		if len(pending) > 0 {
			l.logger.Debug("loader closed with pending loads", "pending", len(pending))
		}
	})
}

// submit runs load on the worker pool, sharing the work with any in-flight request for the same key.
func (l *loader) submit(key string, load func() (any, error), done func(any, error)) {
	id := l.nextID.Add(1)
	p := &pendingLoad{done: done}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		done(nil, ErrClosed)
		return
	}
	l.pending[id] = p
	l.mu.Unlock()

	l.pool.SubmitTask(worker.Task{
		ID:      int(id),
		Payload: key,
		Do: func() (any, error) {
			v, err, shared := l.group.Do(key, load)
			if shared {
				l.logger.Debug("shared in-flight load", "key", key)
			}
			l.mu.Lock()
			delete(l.pending, id)
			l.mu.Unlock()
			p.finish(v, err)
			return v, err
		},
	})
}

// fetch opens url and hands the contents to decode, reporting progress when configured.
func (l *loader) fetch(url string, decode func(io.Reader) error) error {
	start := time.Now()
	rc, size, err := l.source.Open(l.ctx, url)
	if err != nil {
		if l.ctx.Err() != nil {
			return ErrClosed
		}
		return err
	}
	defer rc.Close()

	var r io.Reader = rc
	if l.progress != nil {
		r = &progressReader{r: rc, url: url, total: size, progress: l.progress}
	}
	if err := decode(r); err != nil {
		return err
	}
	l.logger.Debug("asset loaded", "url", url, "bytes", size, "duration", time.Since(start))
	return nil
}
