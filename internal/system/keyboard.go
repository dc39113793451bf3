package system

import (
	"encoding/binary"

	"github.com/rook-computer/bubblecam/internal/input"
)

const (
	evKey = 0x01

	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

// Linux input-event-codes.h
const (
	keyEsc   = 1
	keyQ     = 16
	keyC     = 46
	keyF4    = 62
	keyHome  = 102
	keyUp    = 103
	keyLeft  = 105
	keyRight = 106
	keyDown  = 108
)

var evdevKeys = map[uint16]input.Event{
	keyLeft:  input.Press(input.KeyLeft),
	keyRight: input.Press(input.KeyRight),
	keyUp:    input.Press(input.KeyUp),
	keyDown:  input.Press(input.KeyDown),
	keyHome:  input.Press(input.KeyCenter),
	keyC:     input.Press(input.KeyCenter),
	keyEsc:   {Kind: input.Close},
	keyQ:     {Kind: input.Close},
	keyF4:    {Kind: input.Close},
}

// decodeKeyEvents parses a buffer of input_event records
// (timeval + u16 type + u16 code + s32 value) into widget events.
// Held keys repeat; Close is only produced on the initial press.
func decodeKeyEvents(buf []byte, timevalSize int) []input.Event {
	eventSize := timevalSize + 2 + 2 + 4
	var events []input.Event
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[timevalSize : timevalSize+2])
		code := binary.LittleEndian.Uint16(rec[timevalSize+2 : timevalSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[timevalSize+4 : timevalSize+8]))
		if typ != evKey || value == keyReleased {
			continue
		}
		ev, ok := evdevKeys[code]
		if !ok {
			continue
		}
		if ev.Kind == input.Close && value != keyPressed {
			continue
		}
		if value != keyPressed && value != keyRepeated {
			continue
		}
		events = append(events, ev)
	}
	return events
}
