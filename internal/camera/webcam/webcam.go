// Package webcam captures frames from a local video device through OpenCV.
package webcam

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/rook-computer/bubblecam/internal/camera"
)

// Webcam is a camera.Camera backed by a gocv VideoCapture.
type Webcam struct {
	capture    *gocv.VideoCapture
	bgr        gocv.Mat
	rgba       gocv.Mat
	resolution image.Point
	frame      *image.RGBA
}

// Open opens the device and starts streaming. The resolution reported by the
// driver after the requested size is applied becomes Resolution().
func Open(settings camera.Settings) (*Webcam, error) {
	settings = settings.WithDefaults()

	capture, err := gocv.OpenVideoCapture(settings.Device)
	if err != nil {
		return nil, fmt.Errorf("open video device %d: %w", settings.Device, err)
	}
	if !capture.IsOpened() {
		_ = capture.Close()
		return nil, fmt.Errorf("open video device %d: device not opened", settings.Device)
	}

	capture.Set(gocv.VideoCaptureFrameWidth, float64(settings.Width))
	capture.Set(gocv.VideoCaptureFrameHeight, float64(settings.Height))

	width := int(capture.Get(gocv.VideoCaptureFrameWidth))
	height := int(capture.Get(gocv.VideoCaptureFrameHeight))
	if width <= 0 || height <= 0 {
		_ = capture.Close()
		return nil, fmt.Errorf("video device %d reported resolution %dx%d", settings.Device, width, height)
	}

	return &Webcam{
		capture:    capture,
		bgr:        gocv.NewMat(),
		rgba:       gocv.NewMat(),
		resolution: image.Pt(width, height),
	}, nil
}

func (w *Webcam) Resolution() image.Point { return w.resolution }

// Frame reads the next frame and converts it from OpenCV's BGR layout to RGBA.
func (w *Webcam) Frame() (*image.RGBA, error) {
	if w.capture == nil {
		return nil, camera.ErrClosed
	}
	if ok := w.capture.Read(&w.bgr); !ok || w.bgr.Empty() {
		return nil, camera.ErrNoFrame
	}
	gocv.CvtColor(w.bgr, &w.rgba, gocv.ColorBGRToRGBA)

	cols, rows := w.rgba.Cols(), w.rgba.Rows()
	if w.rgba.Channels() != 4 || cols*rows == 0 {
		return nil, fmt.Errorf("convert frame: unexpected %dx%d mat with %d channels", cols, rows, w.rgba.Channels())
	}
	if w.frame == nil || w.frame.Rect.Dx() != cols || w.frame.Rect.Dy() != rows {
		w.frame = image.NewRGBA(image.Rect(0, 0, cols, rows))
	}
	data, err := w.rgba.DataPtrUint8()
	if err != nil {
		return nil, fmt.Errorf("read frame data: %w", err)
	}
	if len(data) < len(w.frame.Pix) {
		return nil, fmt.Errorf("read frame data: %d bytes, want %d", len(data), len(w.frame.Pix))
	}
	copy(w.frame.Pix, data)
	return w.frame, nil
}

func (w *Webcam) Close() error {
	if w.capture == nil {
		return nil
	}
	_ = w.bgr.Close()
	_ = w.rgba.Close()
	err := w.capture.Close()
	w.capture = nil
	return err
}
