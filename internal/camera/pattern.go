package camera

import (
	"image"
	"sync/atomic"
)

// Pattern is a synthetic camera producing a moving test card. It lets the
// widget run on machines without a capture device.
type Pattern struct {
	size   image.Point
	frame  *image.RGBA
	tick   int
	closed atomic.Bool
}

// NewPattern returns a Pattern camera of the given resolution.
func NewPattern(width, height int) *Pattern {
	width = max(width, 1)
	height = max(height, 1)
	return &Pattern{
		size:  image.Pt(width, height),
		frame: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

func (p *Pattern) Resolution() image.Point { return p.size }

// Frame draws the next test card: a horizontal red ramp, a vertical green ramp
// and a blue level that cycles once every 256 frames. A white crosshair marks
// the frame center so panning is easy to see.
func (p *Pattern) Frame() (*image.RGBA, error) {
	if p.closed.Load() {
		return nil, ErrClosed
	}
	w, h := p.size.X, p.size.Y
	blue := uint8(p.tick)
	p.tick++
	for y := 0; y < h; y++ {
		i := p.frame.PixOffset(0, y)
		green := uint8(y * 255 / max(h-1, 1))
		for x := 0; x < w; x++ {
			p.frame.Pix[i+0] = uint8(x * 255 / max(w-1, 1))
			p.frame.Pix[i+1] = green
			p.frame.Pix[i+2] = blue
			p.frame.Pix[i+3] = 0xFF
			i += 4
		}
	}
	cx, cy := w/2, h/2
	for x := 0; x < w; x++ {
		copy(p.frame.Pix[p.frame.PixOffset(x, cy):], []byte{0xFF, 0xFF, 0xFF, 0xFF})
	}
	for y := 0; y < h; y++ {
		copy(p.frame.Pix[p.frame.PixOffset(cx, y):], []byte{0xFF, 0xFF, 0xFF, 0xFF})
	}
	return p.frame, nil
}

func (p *Pattern) Close() error {
	p.closed.Store(true)
	return nil
}
