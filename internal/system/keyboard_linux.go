//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/bubblecam/internal/input"
)

// EvdevKeyboard reads key presses from every /dev/input/event* device and
// turns them into input events. It only produces events; the consumer owns
// all state changes.
type EvdevKeyboard struct {
	Logger logger
	Glob   string

	events chan input.Event
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewEvdevKeyboard(l logger) *EvdevKeyboard {
	return &EvdevKeyboard{Logger: l, Glob: "/dev/input/event*", events: make(chan input.Event, 16)}
}

func (k *EvdevKeyboard) Events() <-chan input.Event { return k.events }

// Start spawns one reader per device. It is best-effort: without readable
// devices it logs and returns nil, and the widget simply gets no key events.
func (k *EvdevKeyboard) Start(ctx context.Context) error {
	paths, err := filepath.Glob(k.Glob)
	if err != nil || len(paths) == 0 {
		if k.Logger != nil {
			k.Logger.Infof("input", "no evdev devices found under %s", k.Glob)
		}
		return nil
	}

	readCtx, cancel := context.WithCancel(ctx)
	k.cancel = cancel
	tvSize := binary.Size(unix.Timeval{})

	for _, path := range paths {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			continue
		}
		k.wg.Add(1)
		go k.read(readCtx, os.NewFile(uintptr(fd), path), fd, tvSize)
	}
	return nil
}

func (k *EvdevKeyboard) read(ctx context.Context, f *os.File, fd, tvSize int) {
	defer k.wg.Done()
	defer func() { _ = f.Close() }()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		for _, ev := range decodeKeyEvents(buf[:n], tvSize) {
			select {
			case k.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Stop ends all readers and closes Events.
func (k *EvdevKeyboard) Stop() error {
	if k.cancel != nil {
		k.cancel()
	}
	k.wg.Wait()
	close(k.events)
	return nil
}
