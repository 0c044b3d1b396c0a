// Command hello renders the "Hello" demo scene in a desktop window, or headless without a GPU.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/Carmen-Shannon/oxy-hello/demo"
	"github.com/Carmen-Shannon/oxy-hello/engine/loader"
	"github.com/Carmen-Shannon/oxy-hello/engine/renderer"
	"github.com/Carmen-Shannon/oxy-hello/engine/renderer/webgpu"
	"github.com/Carmen-Shannon/oxy-hello/engine/window"
	"github.com/Carmen-Shannon/oxy-hello/engine/window/desktop"
)

func init() {
	// GLFW and the surface must stay on the main thread.
	runtime.LockOSThread()
}

var (
	width    = flag.Int("width", 1280, "window width in logical pixels")
	height   = flag.Int("height", 720, "window height in logical pixels")
	title    = flag.String("title", "Hello", "window title")
	assets   = flag.String("assets", "static", "directory holding fonts/ and textures/")
	assetURL = flag.String("asset-url", "", "fetch assets from this base URL instead of -assets")
	headless = flag.Bool("headless", false, "render without a window or GPU")
	frames   = flag.Int("frames", 0, "stop after this many frames (0 = run until closed)")
	fps      = flag.Float64("fps", 0, "cap the render loop at this many frames per second (0 = uncapped)")
	profile  = flag.Bool("profile", false, "log frame rate and memory once per second")
	software = flag.Bool("software", false, "force the fallback software adapter")
	workers  = flag.Int("workers", 4, "asset decode workers")
	logLevel = slog.LevelInfo
)

func main() {
	flag.TextVar(&logLevel, "log-level", slog.LevelInfo, "log level: debug, info, warn or error")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	if *width <= 0 || *height <= 0 || *frames < 0 {
		logger.Error("invalid flags", "width", *width, "height", *height, "frames", *frames)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error("hello exited", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	win, r, err := newPlatform(logger)
	if err != nil {
		return err
	}
	defer func() {
		r.Release()
		if err := win.Close(); err != nil && !errors.Is(err, window.ErrClosed) {
			logger.Warn("closing window", "error", err)
		}
	}()

	cfg := demo.DefaultConfig()
	cfg.Width, cfg.Height = *width, *height

	var source loader.Source = loader.DirSource(*assets)
	if *assetURL != "" {
		source = loader.HTTPSource(*assetURL, nil)
	}

	return demo.Run(ctx, demo.RunOptions{
		Config:   cfg,
		Window:   win,
		Renderer: r,
		Source:   source,
		Workers:  *workers,
		Frames:   *frames,
		FPS:      *fps,
		Profile:  *profile,
		Logger:   logger,
	})
}

func newPlatform(logger *slog.Logger) (window.Window, renderer.Renderer, error) {
	if *headless {
		win := window.NewHeadless(window.WithSize(*width, *height))
		r := renderer.NewHeadless(renderer.WithHistory(1), renderer.WithLogger(logger))
		return win, r, nil
	}

	win, err := desktop.NewWindow(desktop.WithTitle(*title), desktop.WithSize(*width, *height))
	if err != nil {
		return nil, nil, fmt.Errorf("opening window: %w", err)
	}
	presentMode := renderer.PresentModeVSync
	if *fps > 0 {
		presentMode = renderer.PresentModeUncapped
	}
	r, err := webgpu.NewRenderer(win.SurfaceDescriptor(),
		webgpu.WithPresentMode(presentMode),
		webgpu.WithMSAA(renderer.MSAA4x),
		webgpu.WithForceSoftwareRenderer(*software),
		webgpu.WithLogger(logger),
	)
	if err != nil {
		win.Close()
		return nil, nil, fmt.Errorf("creating renderer: %w", err)
	}
	return win, r, nil
}
