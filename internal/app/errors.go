package app

import "errors"

var (
	// ErrClosed ends the event loop after the user closed the widget.
	ErrClosed = errors.New("widget closed")

	ErrCameraAcquisition = errors.New("camera acquisition failed")
	ErrFrameDelivery     = errors.New("camera frame delivery failed")
	ErrPresentation      = errors.New("presentation failed")
)
