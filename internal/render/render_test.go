package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

var (
	red  = color.RGBA{R: 0xFF, A: 0xFF}
	blue = color.RGBA{B: 0xFF, A: 0xFF}
)

func setCanvasPixel(pix []byte, x, y int, c color.RGBA) {
	i := (y*CanvasWidth + x) * 4
	pix[i+0], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
}

func newScreen() *image.RGBA {
	screen := image.NewRGBA(image.Rect(0, 0, 1920, 1080))
	draw.Draw(screen, screen.Bounds(), &image.Uniform{C: blue}, image.Point{}, draw.Src)
	return screen
}

func TestMemorySurface(t *testing.T) {
	s := NewMemorySurface()
	if got := len(s.Frame()); got != CanvasWidth*CanvasHeight*4 {
		t.Fatalf("len(Frame()) = %d, want %d", got, CanvasWidth*CanvasHeight*4)
	}
	for i, b := range s.Frame() {
		if b != 0 {
			t.Fatalf("Frame()[%d] = %d, want transparent canvas", i, b)
		}
	}

	s.SetClearColor(red)
	if got := s.Image().RGBAAt(10, 10); got != red {
		t.Errorf("after SetClearColor pixel = %v, want %v", got, red)
	}
	if err := s.Present(); err != nil {
		t.Fatalf("Present() error: %v", err)
	}
	if s.Presents() != 1 {
		t.Errorf("Presents() = %d, want 1", s.Presents())
	}
	if err := s.ResizeSurface(640, 640); err != nil {
		t.Fatalf("ResizeSurface() error: %v", err)
	}
	if s.Size() != image.Pt(640, 640) {
		t.Errorf("Size() = %v, want (640,640)", s.Size())
	}
}

func TestFBSurfacePresentKeepsTransparentPixels(t *testing.T) {
	screen := newScreen()
	s := NewFBSurfaceOn(screen)
	want := image.Rect(1596, 24, 1896, 324)
	if s.Target() != want {
		t.Fatalf("Target() = %v, want %v", s.Target(), want)
	}

	setCanvasPixel(s.Frame(), 150, 150, red)
	if err := s.Present(); err != nil {
		t.Fatalf("Present() error: %v", err)
	}
	if got := screen.RGBAAt(1596+150, 24+150); got != red {
		t.Errorf("opaque pixel = %v, want %v", got, red)
	}
	if got := screen.RGBAAt(1596, 24); got != blue {
		t.Errorf("transparent pixel = %v, want framebuffer left as %v", got, blue)
	}
	if got := screen.RGBAAt(10, 10); got != blue {
		t.Errorf("pixel outside target = %v, want %v", got, blue)
	}
}

func TestFBSurfaceResize(t *testing.T) {
	screen := newScreen()
	s := NewFBSurfaceOn(screen)
	if err := s.ResizeSurface(600, 600); err != nil {
		t.Fatalf("ResizeSurface() error: %v", err)
	}
	if want := image.Rect(1296, 24, 1896, 624); s.Target() != want {
		t.Fatalf("Target() = %v, want %v", s.Target(), want)
	}
	setCanvasPixel(s.Frame(), 150, 150, red)
	if err := s.Present(); err != nil {
		t.Fatalf("Present() error: %v", err)
	}
	if got := screen.RGBAAt(1296+300, 24+300); got != red {
		t.Errorf("scaled pixel = %v, want %v", got, red)
	}
	if err := s.ResizeSurface(0, 10); err == nil {
		t.Error("ResizeSurface(0, 10) should fail")
	}
}

func TestFBSurfaceStatusLine(t *testing.T) {
	screen := newScreen()
	s := NewFBSurfaceOn(screen)
	s.ShowStatus = true
	s.SetStatus("offset 170,90")
	if err := s.Present(); err != nil {
		t.Fatalf("Present() error: %v", err)
	}
	// The strip sits 8px under the target and is cleared to black.
	if got := screen.RGBAAt(1895, 24+300+8+1); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("status strip background = %v, want opaque black", got)
	}
	if got := screen.RGBAAt(1895, 24+300+2); got != blue {
		t.Errorf("gap pixel = %v, want %v", got, blue)
	}
}

func TestFBSurfaceStopped(t *testing.T) {
	s := NewFBSurfaceOn(newScreen())
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() error: %v", err)
	}
	if err := s.Present(); err == nil {
		t.Error("Present() after Stop() should fail")
	}
}

func TestStatusLineRender(t *testing.T) {
	line, err := NewStatusLine(200, 24)
	if err != nil {
		t.Fatalf("NewStatusLine() error: %v", err)
	}
	img := line.Render("offset 170,90")
	if line.Text() != "offset 170,90" {
		t.Errorf("Text() = %q", line.Text())
	}
	if got := img.RGBAAt(199, 0); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("background = %v, want opaque black", got)
	}
	lit := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0x80 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("no text pixels were drawn")
	}
}
