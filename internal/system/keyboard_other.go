//go:build !linux

package system

import "github.com/rook-computer/bubblecam/internal/input"

// NewEvdevKeyboard returns a source without events on platforms without evdev.
func NewEvdevKeyboard(l logger) input.Source {
	if l != nil {
		l.Infof("input", "evdev keyboard not available on this platform")
	}
	return input.NewNoopSource()
}
