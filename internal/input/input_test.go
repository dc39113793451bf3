package input

import (
	"context"
	"testing"
)

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{Event{Kind: Redraw}, "redraw"},
		{Event{Kind: Close}, "close"},
		{Event{Kind: DragStart}, "drag"},
		{Press(KeyLeft), "key left"},
		{Press(KeyCenter), "key center"},
		{Resized(600, 400), "resize 600x400"},
		{Event{Kind: Kind(42)}, "kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNoopSourceClosesOnStop(t *testing.T) {
	src := NewNoopSource()
	if err := src.Start(context.Background()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := src.Stop(); err != nil {
		t.Fatalf("Stop() error: %v", err)
	}
	if _, ok := <-src.Events(); ok {
		t.Error("Events() should be closed after Stop()")
	}
}

func TestRepeats(t *testing.T) {
	var fired []int
	for tick := 0; tick <= 30; tick++ {
		if Repeats(tick) {
			fired = append(fired, tick)
		}
	}
	want := []int{1, 21, 24, 27, 30}
	if len(fired) != len(want) {
		t.Fatalf("Repeats fired on %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("Repeats fired on %v, want %v", fired, want)
		}
	}
}
