// Package transform maps camera-frame pixels onto the circular canvas.
//
// A Transform holds the pan offset for one session. Render is a plain function
// taking a View snapshot, so compositing has no hidden coupling to pan state.
package transform

import (
	"image"

	"github.com/rook-computer/bubblecam/internal/render/layout"
)

// Step is how many source pixels a single pan command moves the view.
const Step = 1

// View is the sampling window for one render call: the top-left source
// coordinate mapped onto canvas (0, 0).
type View struct {
	Offset image.Point
}

// Transform is the pan state of a session.
type Transform struct {
	offset image.Point
	source image.Point
	window image.Point
}

// New returns a Transform for a source of the given dimensions viewed through a
// window (canvas) of the given dimensions. The offset starts at (0, 0).
func New(source, window image.Point) *Transform {
	return &Transform{
		source: image.Pt(max(source.X, 0), max(source.Y, 0)),
		window: image.Pt(max(window.X, 0), max(window.Y, 0)),
	}
}

func (t *Transform) Offset() image.Point { return t.offset }
func (t *Transform) Source() image.Point { return t.source }
func (t *Transform) Window() image.Point { return t.window }
func (t *Transform) View() View          { return View{Offset: t.offset} }

// Limit returns the largest offset reachable on each axis.
func (t *Transform) Limit() image.Point {
	return layout.ClampPoint(image.Pt(t.source.X, t.source.Y), t.source, t.window)
}

// SetOffset moves the view to p, clamped so the window stays inside the source.
func (t *Transform) SetOffset(p image.Point) {
	t.offset = layout.ClampPoint(p, t.source, t.window)
}

func (t *Transform) PanLeft()  { t.SetOffset(t.offset.Add(image.Pt(-Step, 0))) }
func (t *Transform) PanRight() { t.SetOffset(t.offset.Add(image.Pt(Step, 0))) }
func (t *Transform) PanUp()    { t.SetOffset(t.offset.Add(image.Pt(0, -Step))) }
func (t *Transform) PanDown()  { t.SetOffset(t.offset.Add(image.Pt(0, Step))) }

// Center places the window in the middle of the source on both axes.
func (t *Transform) Center() {
	t.SetOffset(image.Point{
		X: t.source.X/2 - min(t.source.X, t.window.X)/2,
		Y: t.source.Y/2 - min(t.source.Y, t.window.Y)/2,
	})
}
