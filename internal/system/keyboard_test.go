package system

import (
	"encoding/binary"
	"testing"

	"github.com/rook-computer/bubblecam/internal/input"
)

const testTimevalSize = 16

func record(typ, code uint16, value int32) []byte {
	rec := make([]byte, testTimevalSize+8)
	binary.LittleEndian.PutUint16(rec[testTimevalSize:], typ)
	binary.LittleEndian.PutUint16(rec[testTimevalSize+2:], code)
	binary.LittleEndian.PutUint32(rec[testTimevalSize+4:], uint32(value))
	return rec
}

func TestDecodeKeyEvents(t *testing.T) {
	var buf []byte
	buf = append(buf, record(evKey, keyLeft, keyPressed)...)
	buf = append(buf, record(0x00, 0, 0)...) // EV_SYN
	buf = append(buf, record(evKey, keyLeft, keyRepeated)...)
	buf = append(buf, record(evKey, keyLeft, keyReleased)...)
	buf = append(buf, record(evKey, keyHome, keyPressed)...)
	buf = append(buf, record(evKey, 30, keyPressed)...) // KEY_A is unmapped
	buf = append(buf, record(evKey, keyEsc, keyRepeated)...)
	buf = append(buf, record(evKey, keyF4, keyPressed)...)
	buf = append(buf, 0x01, 0x02) // trailing partial record

	got := decodeKeyEvents(buf, testTimevalSize)
	want := []input.Event{
		input.Press(input.KeyLeft),
		input.Press(input.KeyLeft),
		input.Press(input.KeyCenter),
		{Kind: input.Close},
	}
	if len(got) != len(want) {
		t.Fatalf("decodeKeyEvents() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecodeKeyEventsArrows(t *testing.T) {
	tests := []struct {
		code uint16
		want input.Key
	}{
		{keyLeft, input.KeyLeft},
		{keyRight, input.KeyRight},
		{keyUp, input.KeyUp},
		{keyDown, input.KeyDown},
		{keyC, input.KeyCenter},
	}
	for _, tt := range tests {
		got := decodeKeyEvents(record(evKey, tt.code, keyPressed), testTimevalSize)
		if len(got) != 1 || got[0] != input.Press(tt.want) {
			t.Errorf("code %d decoded to %v, want %v", tt.code, got, input.Press(tt.want))
		}
	}
}
