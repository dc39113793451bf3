package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/bubblecam/internal/app"
	"github.com/rook-computer/bubblecam/internal/camera"
	"github.com/rook-computer/bubblecam/internal/camera/webcam"
	"github.com/rook-computer/bubblecam/internal/input"
	"github.com/rook-computer/bubblecam/internal/render"
	"github.com/rook-computer/bubblecam/internal/render/window"
	"github.com/rook-computer/bubblecam/internal/system"
)

func main() {
	cfg, err := app.DefaultConfigFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Flags
	flag.StringVar(&cfg.Backend, "backend", cfg.Backend, "where to show the widget: window, fb or headless (BUBBLECAM_BACKEND)")
	flag.StringVar(&cfg.Camera, "camera", cfg.Camera, "frame source: webcam or pattern (BUBBLECAM_CAMERA)")
	flag.IntVar(&cfg.Device, "device", cfg.Device, "video device index (BUBBLECAM_DEVICE)")
	flag.StringVar(&cfg.FBPath, "fb", cfg.FBPath, "framebuffer device for the fb backend (BUBBLECAM_FB)")
	flag.BoolVar(&cfg.ShowStatus, "status", cfg.ShowStatus, "show the pan offset under the widget on the fb backend (BUBBLECAM_STATUS)")
	frames := flag.Int("frames", 0, "headless/fb: stop after this many frames (0 runs until closed)")
	debug := flag.Bool("debug", false, "enable debug logging to ./bubblecam-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via BUBBLECAM_STDIO_LOG")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Best-effort: with the fb backend the console is in graphics mode, so
	// crashes are only diagnosable from a file.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("BUBBLECAM_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./bubblecam-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled, config %+v", cfg)
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, *frames, logger)
	stop()

	switch {
	case err == nil, errors.Is(err, app.ErrClosed), errors.Is(err, context.Canceled):
		logger.Infof("main", "exit: %v", err)
	default:
		logger.Errorf("main", "exit: %v", err)
		fmt.Println("bubblecam:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg app.Config, frames int, logger app.Logger) error {
	openCamera := func() (camera.Camera, error) {
		if cfg.Camera == app.CameraPattern {
			return camera.NewPattern(camera.DefaultWidth, camera.DefaultHeight), nil
		}
		cam, err := webcam.Open(camera.Settings{Device: cfg.Device})
		if err != nil {
			return nil, err
		}
		return cam, nil
	}

	switch cfg.Backend {
	case app.BackendFB:
		surface := render.NewFBSurface(cfg.FBPath)
		surface.Logger = logger
		surface.ShowStatus = cfg.ShowStatus
		if err := surface.Start(); err != nil {
			return fmt.Errorf("%w: %w", app.ErrPresentation, err)
		}
		defer surface.Stop()

		restore := system.EnterGraphicsMode(logger)
		defer restore()

		a := app.New(openCamera, surface)
		a.Logger = logger
		a.Input = system.NewEvdevKeyboard(logger)
		a.MaxFrames = frames
		return a.Run(ctx)

	case app.BackendHeadless:
		a := app.New(openCamera, render.NewMemorySurface())
		a.Logger = logger
		a.MaxFrames = frames
		return a.Run(ctx)

	default:
		win := window.New()
		win.Logger = logger
		a := app.New(openCamera, win)
		a.Logger = logger
		sess, err := a.Open()
		if err != nil {
			return err
		}
		defer sess.Close()
		win.Handler = func(ev input.Event) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return sess.HandleEvent(ev)
		}
		return win.Run()
	}
}
