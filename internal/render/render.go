package render

import (
	"image"
	"image/color"
)

// Surface owns the RGBA canvas the widget composites into and shows it.
type Surface interface {
	// Frame returns the canvas: CanvasWidth×CanvasHeight pixels, RGBA8,
	// row-major. Callers may write it until the next Present.
	Frame() []byte
	// Present shows the current canvas contents.
	Present() error
	// ResizeSurface adapts the output to a new physical surface size.
	ResizeSurface(width, height int) error
	// SetClearColor sets the color the canvas is cleared to.
	SetClearColor(c color.RGBA)
}

// Dragger is implemented by surfaces that can move their window with the pointer.
type Dragger interface {
	StartDrag() error
}

// StatusReporter is implemented by surfaces that can show a short text line.
type StatusReporter interface {
	SetStatus(text string)
}

// MemorySurface keeps the canvas in memory and counts presents. It backs the
// headless mode.
type MemorySurface struct {
	canvas   *image.RGBA
	clear    color.RGBA
	size     image.Point
	presents int
}

func NewMemorySurface() *MemorySurface {
	s := &MemorySurface{
		canvas: image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight)),
		clear:  ClearColor,
		size:   image.Pt(CanvasWidth, CanvasHeight),
	}
	s.Clear()
	return s
}

func (s *MemorySurface) Frame() []byte { return s.canvas.Pix }

func (s *MemorySurface) Present() error {
	s.presents++
	return nil
}

func (s *MemorySurface) ResizeSurface(width, height int) error {
	s.size = image.Pt(width, height)
	return nil
}

func (s *MemorySurface) SetClearColor(c color.RGBA) {
	s.clear = c
	s.Clear()
}

// Clear fills the canvas with the clear color.
func (s *MemorySurface) Clear() { fillRGBA(s.canvas.Pix, s.clear) }

// Image exposes the canvas as an image for inspection.
func (s *MemorySurface) Image() *image.RGBA { return s.canvas }

func (s *MemorySurface) Presents() int     { return s.presents }
func (s *MemorySurface) Size() image.Point { return s.size }

func fillRGBA(pix []byte, c color.RGBA) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}
