// Package window shows the canvas in a borderless, transparent, always-on-top
// desktop window.
package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rook-computer/bubblecam/internal/input"
	"github.com/rook-computer/bubblecam/internal/render"
)

var keymap = []struct {
	keys []ebiten.Key
	key  input.Key
}{
	{[]ebiten.Key{ebiten.KeyArrowLeft}, input.KeyLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight}, input.KeyRight},
	{[]ebiten.Key{ebiten.KeyArrowUp}, input.KeyUp},
	{[]ebiten.Key{ebiten.KeyArrowDown}, input.KeyDown},
	{[]ebiten.Key{ebiten.KeyHome, ebiten.KeyC}, input.KeyCenter},
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Window is a render.Surface and an ebiten.Game. Every event, including the
// per-tick redraw, is passed to Handler from ebiten's update loop.
type Window struct {
	Handler func(input.Event) error
	Logger  Logger

	canvas []byte
	img    *ebiten.Image
	clear  color.RGBA

	dragging   bool
	dragOrigin image.Point

	outside image.Point
}

func New() *Window {
	w := &Window{
		canvas: make([]byte, render.CanvasWidth*render.CanvasHeight*4),
		clear:  render.ClearColor,
	}
	return w
}

// Run opens the window and blocks until Handler returns an error or the
// window is closed by the system.
func (w *Window) Run() error {
	ebiten.SetWindowTitle(render.Title)
	ebiten.SetWindowSize(render.CanvasWidth, render.CanvasHeight)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(true)

	return ebiten.RunGameWithOptions(w, &ebiten.RunGameOptions{ScreenTransparent: true})
}

func (w *Window) Frame() []byte { return w.canvas }

func (w *Window) Present() error {
	if w.img == nil {
		w.img = ebiten.NewImage(render.CanvasWidth, render.CanvasHeight)
	}
	w.img.WritePixels(w.canvas)
	return nil
}

// ResizeSurface records the new window size; ebiten scales the logical canvas
// to it on its own.
func (w *Window) ResizeSurface(width, height int) error {
	w.outside = image.Pt(width, height)
	if w.Logger != nil {
		w.Logger.Infof("window", "surface resized to %dx%d", width, height)
	}
	return nil
}

func (w *Window) SetClearColor(c color.RGBA) {
	w.clear = c
	for i := 0; i+3 < len(w.canvas); i += 4 {
		w.canvas[i+0] = c.R
		w.canvas[i+1] = c.G
		w.canvas[i+2] = c.B
		w.canvas[i+3] = c.A
	}
}

// StartDrag moves the window with the cursor until the left button is released.
func (w *Window) StartDrag() error {
	x, y := ebiten.CursorPosition()
	w.dragging = true
	w.dragOrigin = image.Pt(x, y)
	return nil
}

func (w *Window) Update() error {
	for _, ev := range w.poll() {
		if err := w.Handler(ev); err != nil {
			return err
		}
	}
	w.drag()
	return w.Handler(input.Event{Kind: input.Redraw})
}

// poll collects this tick's events in dispatch order.
func (w *Window) poll() []input.Event {
	var events []input.Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, input.Event{Kind: input.Close})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, input.Event{Kind: input.DragStart})
	}
	if width, height := ebiten.WindowSize(); w.outside != (image.Point{}) && image.Pt(width, height) != w.outside {
		events = append(events, input.Resized(width, height))
	}
	for _, binding := range keymap {
		for _, k := range binding.keys {
			if input.Repeats(inpututil.KeyPressDuration(k)) {
				events = append(events, input.Press(binding.key))
				break
			}
		}
	}
	return events
}

func (w *Window) drag() {
	if !w.dragging {
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		w.dragging = false
		return
	}
	x, y := ebiten.CursorPosition()
	delta := image.Pt(x, y).Sub(w.dragOrigin)
	if delta == (image.Point{}) {
		return
	}
	wx, wy := ebiten.WindowPosition()
	ebiten.SetWindowPosition(wx+delta.X, wy+delta.Y)
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.img != nil {
		screen.DrawImage(w.img, nil)
	}
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w.outside == (image.Point{}) {
		w.outside = image.Pt(outsideWidth, outsideHeight)
	}
	return render.CanvasWidth, render.CanvasHeight
}
