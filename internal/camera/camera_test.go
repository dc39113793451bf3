package camera

import (
	"errors"
	"image"
	"testing"
)

func TestSettingsWithDefaults(t *testing.T) {
	got := Settings{Device: -3}.WithDefaults()
	want := Settings{Device: 0, Width: DefaultWidth, Height: DefaultHeight}
	if got != want {
		t.Errorf("WithDefaults() = %+v, want %+v", got, want)
	}

	custom := Settings{Device: 2, Width: 1280, Height: 720}
	if got := custom.WithDefaults(); got != custom {
		t.Errorf("WithDefaults() changed explicit settings: %+v", got)
	}
	if DefaultSettings() != want {
		t.Errorf("DefaultSettings() = %+v, want %+v", DefaultSettings(), want)
	}
}

func TestPatternFrame(t *testing.T) {
	p := NewPattern(64, 48)
	if p.Resolution() != image.Pt(64, 48) {
		t.Fatalf("Resolution() = %v, want (64,48)", p.Resolution())
	}

	frame, err := p.Frame()
	if err != nil {
		t.Fatalf("Frame() error: %v", err)
	}
	if frame.Bounds() != image.Rect(0, 0, 64, 48) {
		t.Fatalf("frame bounds = %v", frame.Bounds())
	}

	left := frame.RGBAAt(0, 5)
	right := frame.RGBAAt(63, 5)
	if left.R != 0 || right.R != 0xFF {
		t.Errorf("red ramp = %d..%d, want 0..255", left.R, right.R)
	}
	if c := frame.RGBAAt(32, 24); c.R != 0xFF || c.G != 0xFF || c.B != 0xFF {
		t.Errorf("center = %v, want white crosshair", c)
	}
	if c := frame.RGBAAt(5, 5); c.A != 0xFF {
		t.Errorf("alpha = %d, want 255", c.A)
	}

	next, _ := p.Frame()
	if next.RGBAAt(5, 5).B != 1 {
		t.Errorf("blue level after two frames = %d, want 1", next.RGBAAt(5, 5).B)
	}
}

func TestPatternClosed(t *testing.T) {
	p := NewPattern(8, 8)
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if _, err := p.Frame(); !errors.Is(err, ErrClosed) {
		t.Errorf("Frame() after Close error = %v, want ErrClosed", err)
	}
}

func TestPatternDegenerateSize(t *testing.T) {
	p := NewPattern(0, -5)
	if p.Resolution() != image.Pt(1, 1) {
		t.Errorf("Resolution() = %v, want (1,1)", p.Resolution())
	}
	if _, err := p.Frame(); err != nil {
		t.Errorf("Frame() error: %v", err)
	}
}
