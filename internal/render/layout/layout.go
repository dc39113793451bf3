package layout

import "image"

// Clamp limits offset to [0, axisExtent-min(axisExtent, windowExtent)].
// When the axis is narrower than the window there is nothing to pan and the
// result is 0.
func Clamp(offset, axisExtent, windowExtent int) int {
	limit := axisExtent - min(axisExtent, windowExtent)
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > limit {
		return limit
	}
	return offset
}

// ClampPoint applies Clamp to each axis of p independently.
func ClampPoint(p, axis, window image.Point) image.Point {
	return image.Point{
		X: Clamp(p.X, axis.X, window.X),
		Y: Clamp(p.Y, axis.Y, window.Y),
	}
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// AnchorTopRight returns a rectangle of size (widthPx,heightPx) placed in the top-right of rect.
// The size is clamped to rect.
func AnchorTopRight(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	widthPx = min(max(widthPx, 0), rect.Dx())
	heightPx = min(max(heightPx, 0), rect.Dy())
	return image.Rect(rect.Max.X-widthPx, rect.Min.Y, rect.Max.X, rect.Min.Y+heightPx)
}

// Below returns a strip of heightPx directly under rect, with the same width.
func Below(rect image.Rectangle, gapPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	top := rect.Max.Y + max(gapPx, 0)
	return image.Rect(rect.Min.X, top, rect.Max.X, top+max(heightPx, 0))
}
