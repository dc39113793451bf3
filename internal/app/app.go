package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rook-computer/bubblecam/internal/camera"
	"github.com/rook-computer/bubblecam/internal/input"
	"github.com/rook-computer/bubblecam/internal/render"
)

// App wires a camera, a surface and an input source together.
type App struct {
	OpenCamera func() (camera.Camera, error)
	Surface    render.Surface
	Input      input.Source
	Logger     Logger

	// FrameInterval paces Redraw events in Run.
	FrameInterval time.Duration
	// MaxFrames stops Run after that many presented frames; 0 runs until closed.
	MaxFrames int
}

func New(openCamera func() (camera.Camera, error), surface render.Surface) *App {
	return &App{
		OpenCamera:    openCamera,
		Surface:       surface,
		Input:         input.NewNoopSource(),
		Logger:        NoopLogger{},
		FrameInterval: DefaultFrameInterval,
	}
}

// Open acquires the camera and builds the session. Nothing is shown until the
// camera is open; a failure here is ErrCameraAcquisition.
func (app *App) Open() (*Session, error) {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.OpenCamera == nil || app.Surface == nil {
		return nil, errors.New("app: camera and surface are required")
	}
	cam, err := app.OpenCamera()
	if err != nil {
		app.Logger.Errorf("camera", "open: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrCameraAcquisition, err)
	}
	app.Logger.Infof("camera", "opened at %v", cam.Resolution())
	return NewSession(cam, app.Surface, app.Logger), nil
}

// Run drives a session from a redraw ticker and the input source, consuming
// both from one loop. It returns ErrClosed after a user close, ctx.Err() on
// cancellation, nil when MaxFrames is reached, and the fatal error otherwise.
func (app *App) Run(ctx context.Context) error {
	sess, err := app.Open()
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			app.Logger.Errorf("camera", "close: %v", err)
		}
	}()

	var events <-chan input.Event
	if app.Input != nil {
		if err := app.Input.Start(ctx); err != nil {
			return fmt.Errorf("start input: %w", err)
		}
		defer func() { _ = app.Input.Stop() }()
		events = app.Input.Events()
	}

	interval := app.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	redraw := func() (bool, error) {
		if err := sess.HandleEvent(input.Event{Kind: input.Redraw}); err != nil {
			return false, err
		}
		return app.MaxFrames > 0 && sess.Frames() >= app.MaxFrames, nil
	}

	// First frame without waiting for the ticker.
	if done, err := redraw(); err != nil || done {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			app.Logger.Infof("input", "%v", ev)
			if err := sess.HandleEvent(ev); err != nil {
				return err
			}
		case <-ticker.C:
			if done, err := redraw(); err != nil || done {
				return err
			}
		}
	}
}
