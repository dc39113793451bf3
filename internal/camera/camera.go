// Package camera defines the frame source the widget renders from.
package camera

import (
	"errors"
	"image"
)

// Default capture settings, used when a field of Settings is zero.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Settings selects and configures a capture device.
type Settings struct {
	Device int // device index, e.g. 0 for /dev/video0
	Width  int // requested capture width in pixels
	Height int // requested capture height in pixels
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{Device: 0, Width: DefaultWidth, Height: DefaultHeight}
}

// WithDefaults fills zero fields from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	if s.Device < 0 {
		s.Device = 0
	}
	return s
}

// Camera is an opened, streaming capture device.
type Camera interface {
	// Resolution is the frame size reported by the device when it was opened.
	Resolution() image.Point
	// Frame blocks until the next frame is available. The returned image is
	// owned by the caller until the next call to Frame.
	Frame() (*image.RGBA, error)
	Close() error
}

var (
	ErrClosed  = errors.New("camera closed")
	ErrNoFrame = errors.New("camera delivered no frame")
)
