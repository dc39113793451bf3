package layout

import (
	"image"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name                 string
		offset, axis, window int
		want                 int
	}{
		{"zero", 0, 640, 300, 0},
		{"inside", 100, 640, 300, 100},
		{"at ceiling", 340, 640, 300, 340},
		{"past ceiling", 1000, 640, 300, 340},
		{"negative", -5, 640, 300, 0},
		{"axis equals window", 12, 300, 300, 0},
		{"axis smaller than window", 50, 200, 300, 0},
		{"empty axis", 3, 0, 300, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.offset, tt.axis, tt.window); got != tt.want {
				t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.offset, tt.axis, tt.window, got, tt.want)
			}
		})
	}
}

func TestClampRange(t *testing.T) {
	const window = 300
	for axis := 0; axis <= 700; axis += 7 {
		limit := 0
		if axis > window {
			limit = axis - window
		}
		for offset := -20; offset <= axis+20; offset += 3 {
			got := Clamp(offset, axis, window)
			if got < 0 || got > limit {
				t.Fatalf("Clamp(%d, %d, %d) = %d, outside [0, %d]", offset, axis, window, got, limit)
			}
		}
	}
}

func TestClampPointUsesEachAxis(t *testing.T) {
	got := ClampPoint(image.Pt(500, 500), image.Pt(640, 480), image.Pt(300, 200))
	want := image.Pt(340, 280)
	if got != want {
		t.Errorf("ClampPoint = %v, want %v", got, want)
	}
}

func TestAnchorTopRight(t *testing.T) {
	rect := image.Rect(0, 0, 1920, 1080)
	got := AnchorTopRight(rect, 300, 300)
	want := image.Rect(1620, 0, 1920, 300)
	if got != want {
		t.Errorf("AnchorTopRight = %v, want %v", got, want)
	}

	small := image.Rect(0, 0, 100, 50)
	if got := AnchorTopRight(small, 300, 300); got != small {
		t.Errorf("AnchorTopRight(oversized) = %v, want %v", got, small)
	}
}

func TestInsetAndBelow(t *testing.T) {
	rect := Inset(image.Rect(0, 0, 100, 100), 10)
	if want := image.Rect(10, 10, 90, 90); rect != want {
		t.Errorf("Inset = %v, want %v", rect, want)
	}
	if got, want := Below(rect, 4, 20), image.Rect(10, 94, 90, 114); got != want {
		t.Errorf("Below = %v, want %v", got, want)
	}
	if got := Normalize(image.Rectangle{Min: image.Pt(5, 5), Max: image.Pt(1, 1)}); got != image.Rect(1, 1, 5, 5) {
		t.Errorf("Normalize = %v", got)
	}
}
