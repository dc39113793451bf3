package app

import (
	"fmt"
	"image"

	"github.com/rook-computer/bubblecam/internal/camera"
	"github.com/rook-computer/bubblecam/internal/input"
	"github.com/rook-computer/bubblecam/internal/render"
	"github.com/rook-computer/bubblecam/internal/render/mask"
	"github.com/rook-computer/bubblecam/internal/transform"
)

// Session holds the widget state for one opened camera and surface. All of
// its methods run on the single loop that consumes events.
type Session struct {
	camera  camera.Camera
	surface render.Surface
	logger  Logger

	mask   *mask.Mask
	view   *transform.Transform
	frames int
}

// NewSession centers the view on the camera's reported resolution and clears
// the surface to the transparent clear color.
func NewSession(cam camera.Camera, surface render.Surface, logger Logger) *Session {
	if logger == nil {
		logger = NoopLogger{}
	}
	m := mask.New(render.CanvasWidth, render.CanvasHeight, render.BorderThickness)
	view := transform.New(cam.Resolution(), m.Size())
	view.Center()
	surface.SetClearColor(render.ClearColor)

	logger.Infof("session", "source %v, window %v, offset %v", view.Source(), view.Window(), view.Offset())
	return &Session{camera: cam, surface: surface, logger: logger, mask: m, view: view}
}

func (s *Session) Offset() image.Point { return s.view.Offset() }
func (s *Session) Frames() int         { return s.frames }

// HandleEvent applies one event. It returns ErrClosed when the user closed the
// widget and a wrapped ErrFrameDelivery or ErrPresentation on fatal failures;
// the caller ends its loop on any non-nil error.
func (s *Session) HandleEvent(ev input.Event) error {
	switch ev.Kind {
	case input.Close:
		s.logger.Infof("session", "close requested")
		return ErrClosed
	case input.DragStart:
		if d, ok := s.surface.(render.Dragger); ok {
			if err := d.StartDrag(); err != nil {
				s.logger.Errorf("session", "drag: %v", err)
			}
		}
		return nil
	case input.Resize:
		if err := s.surface.ResizeSurface(ev.Width, ev.Height); err != nil {
			s.logger.Errorf("render", "resize to %dx%d: %v", ev.Width, ev.Height, err)
			return fmt.Errorf("%w: %w", ErrPresentation, err)
		}
		return nil
	case input.KeyPress:
		s.pan(ev.Key)
		return nil
	case input.Redraw:
		return s.redraw()
	default:
		return nil
	}
}

func (s *Session) pan(key input.Key) {
	switch key {
	case input.KeyLeft:
		s.view.PanLeft()
	case input.KeyRight:
		s.view.PanRight()
	case input.KeyUp:
		s.view.PanUp()
	case input.KeyDown:
		s.view.PanDown()
	case input.KeyCenter:
		s.view.Center()
	}
}

func (s *Session) redraw() error {
	frame, err := s.camera.Frame()
	if err != nil {
		s.logger.Errorf("camera", "frame: %v", err)
		return fmt.Errorf("%w: %w", ErrFrameDelivery, err)
	}
	if err := transform.Render(s.surface.Frame(), frame, s.mask, s.view.View(), render.BorderColor); err != nil {
		s.logger.Errorf("render", "composite: %v", err)
		return fmt.Errorf("%w: %w", ErrPresentation, err)
	}
	if r, ok := s.surface.(render.StatusReporter); ok {
		off, src := s.view.Offset(), s.view.Source()
		r.SetStatus(fmt.Sprintf("offset %d,%d  source %dx%d", off.X, off.Y, src.X, src.Y))
	}
	if err := s.surface.Present(); err != nil {
		s.logger.Errorf("render", "present: %v", err)
		return fmt.Errorf("%w: %w", ErrPresentation, err)
	}
	s.frames++
	return nil
}

func (s *Session) Close() error { return s.camera.Close() }
