package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/bubblecam/internal/render/layout"
)

const (
	DefaultFBPath = "/dev/fb0"

	fbMarginPx       = 24
	statusGapPx      = 8
	statusHeightPx   = 24
	defaultFBScaling = 1
)

// FBSurface shows the canvas on the Linux framebuffer, anchored to the top-right
// corner. Transparent canvas pixels leave the framebuffer untouched.
type FBSurface struct {
	Path   string
	Scale  int
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
	ShowStatus bool

	dev      draw.Image
	closeDev func()
	canvas   *image.RGBA
	clear    color.RGBA
	target   image.Rectangle
	status   *StatusLine
	pending  string
}

func NewFBSurface(path string) *FBSurface {
	if path == "" {
		path = DefaultFBPath
	}
	return &FBSurface{Path: path, Scale: defaultFBScaling, clear: ClearColor}
}

// NewFBSurfaceOn presents to dst instead of a framebuffer device.
func NewFBSurfaceOn(dst draw.Image) *FBSurface {
	s := &FBSurface{Scale: defaultFBScaling, clear: ClearColor}
	s.attach(dst, func() {})
	return s
}

func (s *FBSurface) Start() error {
	dev, err := fb.Open(s.Path)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", s.Path, err)
	}
	s.attach(dev, func() { dev.Close() })
	if s.Logger != nil {
		bounds := dev.Bounds()
		s.Logger.Infof("fb", "framebuffer open, bounds=%dx%d, target=%v", bounds.Dx(), bounds.Dy(), s.target)
	}
	return nil
}

func (s *FBSurface) attach(dev draw.Image, closeDev func()) {
	s.dev = dev
	s.closeDev = closeDev
	s.canvas = image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	fillRGBA(s.canvas.Pix, s.clear)
	scale := max(s.Scale, 1)
	s.place(CanvasWidth*scale, CanvasHeight*scale)
}

// place anchors a width×height target inside the device, clamped to its bounds.
func (s *FBSurface) place(width, height int) {
	area := layout.Inset(s.dev.Bounds(), fbMarginPx)
	s.target = layout.AnchorTopRight(area, width, height)
}

func (s *FBSurface) Stop() error {
	if s.closeDev != nil {
		s.closeDev()
		s.closeDev = nil
	}
	s.dev = nil
	return nil
}

func (s *FBSurface) Frame() []byte {
	if s.canvas == nil {
		return nil
	}
	return s.canvas.Pix
}

// Present scales the canvas onto the target rectangle. The status line, when
// enabled, is drawn just below it.
func (s *FBSurface) Present() error {
	if s.dev == nil {
		return errors.New("framebuffer not open")
	}
	if s.target.Empty() {
		return fmt.Errorf("framebuffer target %v is empty", s.target)
	}
	xdraw.NearestNeighbor.Scale(s.dev, s.target, s.canvas, s.canvas.Bounds(), xdraw.Over, nil)

	if s.ShowStatus && s.pending != "" {
		if s.status == nil {
			line, err := NewStatusLine(s.target.Dx(), statusHeightPx)
			if err != nil && s.Logger != nil {
				s.Logger.Errorf("fb", "truetype parse failed, using basicfont: %v", err)
			}
			s.status = line
		}
		strip := layout.Below(s.target, statusGapPx, statusHeightPx).Intersect(s.dev.Bounds())
		if !strip.Empty() && s.status.Text() != s.pending {
			draw.Draw(s.dev, strip, s.status.Render(s.pending), image.Point{}, draw.Src)
		}
	}
	return nil
}

// ResizeSurface rescales the widget to width×height on the framebuffer.
func (s *FBSurface) ResizeSurface(width, height int) error {
	if s.dev == nil {
		return errors.New("framebuffer not open")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	s.place(width, height)
	s.status = nil
	if s.Logger != nil {
		s.Logger.Infof("fb", "surface resized, target=%v", s.target)
	}
	return nil
}

func (s *FBSurface) SetClearColor(c color.RGBA) {
	s.clear = c
	if s.canvas != nil {
		fillRGBA(s.canvas.Pix, c)
	}
}

// SetStatus queues text for the status line; it is drawn on the next Present.
func (s *FBSurface) SetStatus(text string) { s.pending = text }

// Target is the framebuffer rectangle the canvas is drawn into.
func (s *FBSurface) Target() image.Rectangle { return s.target }
