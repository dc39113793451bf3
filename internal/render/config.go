package render

import "image/color"

// Canvas geometry and colors shared by every surface.
const (
	Title = "bubblecam"

	CanvasWidth  = 300
	CanvasHeight = 300

	// BorderThickness is the width of the ring drawn around the feed.
	BorderThickness = 5
)

var (
	BorderColor = color.RGBA{R: 0x82, G: 0x57, B: 0xE5, A: 0xFF} // #8257e5
	ClearColor  = color.RGBA{}                                   // fully transparent

	// StatusColor is used for the optional status line on the framebuffer.
	StatusColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)
