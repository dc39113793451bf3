// Package input describes the discrete events that drive the widget.
package input

import (
	"context"
	"fmt"
)

type Kind int

const (
	Redraw Kind = iota
	Close
	DragStart
	Resize
	KeyPress
)

func (k Kind) String() string {
	switch k {
	case Redraw:
		return "redraw"
	case Close:
		return "close"
	case DragStart:
		return "drag"
	case Resize:
		return "resize"
	case KeyPress:
		return "key"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyCenter
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyCenter:
		return "center"
	default:
		return "none"
	}
}

// Event is one input or timing signal. Key is set for KeyPress; Width and
// Height are set for Resize.
type Event struct {
	Kind   Kind
	Key    Key
	Width  int
	Height int
}

func (e Event) String() string {
	switch e.Kind {
	case KeyPress:
		return "key " + e.Key.String()
	case Resize:
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	default:
		return e.Kind.String()
	}
}

func Press(key Key) Event            { return Event{Kind: KeyPress, Key: key} }
func Resized(width, height int) Event { return Event{Kind: Resize, Width: width, Height: height} }

// Source produces events from a device. Events is closed after Stop.
type Source interface {
	Start(ctx context.Context) error
	Stop() error
	Events() <-chan Event
}

type NoopSource struct{ ch chan Event }

func NewNoopSource() *NoopSource { return &NoopSource{ch: make(chan Event)} }

func (n *NoopSource) Start(ctx context.Context) error { return nil }
func (n *NoopSource) Stop() error                     { close(n.ch); return nil }
func (n *NoopSource) Events() <-chan Event            { return n.ch }

// Key repeat timing, in update ticks.
const (
	RepeatDelay    = 18
	RepeatInterval = 3
)

// Repeats reports whether a key held for ticks update ticks should produce a
// KeyPress this tick: once on the first tick, then every RepeatInterval ticks
// after RepeatDelay.
func Repeats(ticks int) bool {
	return ticks == 1 || (ticks > RepeatDelay && (ticks-RepeatDelay)%RepeatInterval == 0)
}
