package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Carmen-Shannon/oxy-hello/common"
	"github.com/Carmen-Shannon/oxy-hello/engine"
	"github.com/Carmen-Shannon/oxy-hello/engine/loader"
	"github.com/Carmen-Shannon/oxy-hello/engine/renderer"
	"github.com/Carmen-Shannon/oxy-hello/engine/window"
	"golang.org/x/sync/errgroup"
)

// ErrNoPlatform is returned by Run without a window, renderer or asset source.
var ErrNoPlatform = errors.New("run needs a window, renderer and asset source")

// RunOptions configures Run.
type RunOptions struct {
	Config   Config
	Window   window.Window
	Renderer renderer.Renderer
	Source   loader.Source

	// Workers is the number of asset decode workers. Zero uses the loader default.
	Workers int
	// Frames stops the loop after this many frames. Zero runs until the window closes or ctx ends.
	Frames int
	// FPS caps the render loop. Zero is uncapped.
	FPS     float64
	Profile bool
	Logger  *slog.Logger
}

// Run builds the demo and drives it until ctx is cancelled, the window closes or the frame
// budget is spent. It must be called from the goroutine that owns the window.
// The caller keeps ownership of the window and renderer.
//
// Parameters:
//   - ctx: cancels the loop
//   - o: the run options
//
// Returns:
//   - error: a setup error, or the engine's error
func Run(ctx context.Context, o RunOptions) error {
	if o.Window == nil || o.Renderer == nil || o.Source == nil {
		return ErrNoPlatform
	}
	logger := common.Coalesce(o.Logger, slog.Default())

	loaderOptions := []loader.LoaderBuilderOption{
		loader.WithLogger(logger),
		loader.WithProgressCallback(func(url string, read, total int64) {
			logger.Debug("asset progress", "url", url, "read", read, "total", total)
		}),
	}
	if o.Workers > 0 {
		loaderOptions = append(loaderOptions, loader.WithWorkers(o.Workers))
	}
	l := loader.NewLoader(o.Source, loaderOptions...)
	defer l.Close()

	d, err := New(o.Config, l, WithLogger(logger))
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	eng, err := engine.NewEngine(append(d.EngineOptions(),
		engine.WithWindow(o.Window),
		engine.WithRenderer(o.Renderer),
		engine.WithProfiling(o.Profile),
		engine.WithRenderFrameLimit(o.FPS),
		engine.WithMaxFrames(uint64(max(o.Frames, 0))),
		engine.WithLogger(logger),
	)...)
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}
	d.Start(eng)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		watchFont(gctx, d, logger)
		return nil
	})

	// the engine owns the calling goroutine; helpers run in the group
	runErr := eng.Run(gctx)
	cancel()
	if err := g.Wait(); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	logger.Info("done", "frames", eng.FrameCount(), "renderErrors", eng.RenderErrors())
	return nil
}

// watchFont logs how long the font took to load. Failures are reported by Start's completion.
func watchFont(ctx context.Context, d *Demo, logger *slog.Logger) {
	start := time.Now()
	f, err := d.FontFuture().Await(ctx)
	if err != nil {
		return
	}
	logger.Info("font loaded", "family", f.FamilyName(), "after", time.Since(start).Round(time.Millisecond))
}
