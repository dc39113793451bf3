package app

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvBackend = "BUBBLECAM_BACKEND"
	EnvCamera  = "BUBBLECAM_CAMERA"
	EnvDevice  = "BUBBLECAM_DEVICE"
	EnvFB      = "BUBBLECAM_FB"
	EnvStatus  = "BUBBLECAM_STATUS"
)

// Backends the widget can be shown on.
const (
	BackendWindow   = "window"
	BackendFB       = "fb"
	BackendHeadless = "headless"
)

// Camera sources.
const (
	CameraWebcam  = "webcam"
	CameraPattern = "pattern"
)

// DefaultFrameInterval paces redraws on backends without their own tick.
const DefaultFrameInterval = time.Second / 30

// Config selects how the widget runs.
//
// The defaults are a desktop window on the first webcam. Environment
// variables override the defaults; main applies flags on top.
type Config struct {
	Backend    string
	Camera     string
	Device     int
	FBPath     string
	ShowStatus bool
}

func DefaultConfig() Config {
	return Config{Backend: BackendWindow, Camera: CameraWebcam, FBPath: "/dev/fb0"}
}

func DefaultConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if raw := os.Getenv(EnvBackend); raw != "" {
		cfg.Backend = raw
	}
	if raw := os.Getenv(EnvCamera); raw != "" {
		cfg.Camera = raw
	}
	if raw := os.Getenv(EnvFB); raw != "" {
		cfg.FBPath = raw
	}
	if raw := os.Getenv(EnvDevice); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be an integer (got %q): %w", EnvDevice, raw, err)
		}
		cfg.Device = parsed
	}
	if raw := os.Getenv(EnvStatus); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvStatus, raw, err)
		}
		cfg.ShowStatus = parsed
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendWindow, BackendFB, BackendHeadless:
	default:
		return fmt.Errorf("unknown backend %q (want %s, %s or %s)", c.Backend, BackendWindow, BackendFB, BackendHeadless)
	}
	switch c.Camera {
	case CameraWebcam, CameraPattern:
	default:
		return fmt.Errorf("unknown camera %q (want %s or %s)", c.Camera, CameraWebcam, CameraPattern)
	}
	if c.Device < 0 {
		return fmt.Errorf("device index must not be negative (got %d)", c.Device)
	}
	return nil
}
