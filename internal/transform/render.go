package transform

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/rook-computer/bubblecam/internal/render/mask"
)

var (
	ErrCanvasSize = errors.New("canvas buffer too small for mask")
	ErrNoFrame    = errors.New("no source frame")
)

// Render composites src into the RGBA8 canvas dst through the circular mask m.
//
// Outside pixels are left untouched. Border pixels get the opaque border color.
// Interior pixel (x, y) takes the RGB of source pixel (x, y)+v.Offset with full
// alpha, unless that source pixel lies beyond the frame, in which case the
// canvas pixel is left untouched.
func Render(dst []byte, src *image.RGBA, m *mask.Mask, v View, border color.RGBA) error {
	if src == nil {
		return ErrNoFrame
	}
	width, height := m.Width(), m.Height()
	if len(dst) < width*height*4 {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrCanvasSize, len(dst), width*height*4)
	}

	bounds := src.Rect
	srcW, srcH := bounds.Dx(), bounds.Dy()
	ring := [4]byte{border.R, border.G, border.B, 0xFF}

	for y := 0; y < height; y++ {
		rowStart := y * width * 4
		sy := y + v.Offset.Y
		for _, run := range m.Row(y) {
			switch run.Zone {
			case mask.Border:
				for i := rowStart + run.X0*4; i < rowStart+run.X1*4; i += 4 {
					copy(dst[i:i+4], ring[:])
				}
			case mask.Interior:
				if sy < 0 || sy >= srcH {
					continue
				}
				// Clip the run to canvas columns whose sample lands inside the frame.
				x0 := max(run.X0, -v.Offset.X)
				x1 := min(run.X1, srcW-v.Offset.X)
				if x0 >= x1 {
					continue
				}
				si := src.PixOffset(bounds.Min.X+x0+v.Offset.X, bounds.Min.Y+sy)
				for i := rowStart + x0*4; i < rowStart+x1*4; i += 4 {
					dst[i+0] = src.Pix[si+0]
					dst[i+1] = src.Pix[si+1]
					dst[i+2] = src.Pix[si+2]
					dst[i+3] = 0xFF
					si += 4
				}
			}
		}
	}
	return nil
}
