// Package mask classifies canvas pixels against a ring-bordered circle.
//
// A Mask is built once per canvas size and reused for every frame: the
// classification only depends on the canvas dimensions and the border width.
package mask

import "image"

// Zone is the part of the circular mask a pixel falls in.
type Zone uint8

const (
	Outside Zone = iota
	Border
	Interior
)

func (z Zone) String() string {
	switch z {
	case Outside:
		return "outside"
	case Border:
		return "border"
	case Interior:
		return "interior"
	default:
		return "unknown"
	}
}

// Classify reports which zone (x, y) lies in for two concentric circles around
// center. Squared distances are compared in signed arithmetic, so points left of
// or above the center are handled without wraparound.
func Classify(x, y int, center image.Point, outer, inner int) Zone {
	dx := x - center.X
	dy := y - center.Y
	d2 := dx*dx + dy*dy
	if d2 > outer*outer {
		return Outside
	}
	if d2 > inner*inner {
		return Border
	}
	return Interior
}

// Run is a half-open span [X0, X1) of one canvas row sharing a zone.
type Run struct {
	X0, X1 int
	Zone   Zone
}

// Mask is the precomputed classification of a width×height canvas.
type Mask struct {
	width  int
	height int
	center image.Point
	outer  int
	inner  int
	zones  []Zone
	rows   [][]Run
}

// New builds the mask for a canvas of the given size. The circle is centered on
// the canvas with radius min(width, height)/2; the ring is border pixels wide.
func New(width, height, border int) *Mask {
	width = max(width, 0)
	height = max(height, 0)
	outer := min(width, height) / 2
	inner := max(outer-max(border, 0), 0)
	m := &Mask{
		width:  width,
		height: height,
		center: image.Pt(width/2, height/2),
		outer:  outer,
		inner:  inner,
		zones:  make([]Zone, width*height),
		rows:   make([][]Run, height),
	}

	for y := 0; y < height; y++ {
		row := m.zones[y*width : (y+1)*width]
		for x := range row {
			row[x] = Classify(x, y, m.center, outer, inner)
		}
		m.rows[y] = runsOf(row)
	}
	return m
}

// runsOf collapses a row of zones into runs, dropping Outside spans.
func runsOf(row []Zone) []Run {
	var runs []Run
	start := 0
	for x := 1; x <= len(row); x++ {
		if x < len(row) && row[x] == row[start] {
			continue
		}
		if row[start] != Outside {
			runs = append(runs, Run{X0: start, X1: x, Zone: row[start]})
		}
		start = x
	}
	return runs
}

func (m *Mask) Width() int              { return m.width }
func (m *Mask) Height() int             { return m.height }
func (m *Mask) Center() image.Point     { return m.center }
func (m *Mask) Outer() int              { return m.outer }
func (m *Mask) Inner() int              { return m.inner }
func (m *Mask) Size() image.Point       { return image.Pt(m.width, m.height) }
func (m *Mask) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

// At returns the zone of (x, y); coordinates off the canvas are Outside.
func (m *Mask) At(x, y int) Zone {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return Outside
	}
	return m.zones[y*m.width+x]
}

// Row returns the visible runs of row y in ascending X order.
// The returned slice is shared and must not be modified.
func (m *Mask) Row(y int) []Run {
	if y < 0 || y >= m.height {
		return nil
	}
	return m.rows[y]
}
