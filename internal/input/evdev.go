package input

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"log/slog"
	"os"
	"unicode"
)

// From linux/input-event-codes.h
const (
	evKey = 0x01

	keyUp    = 103
	keyLeft  = 105
	keyRight = 106
	keyDown  = 108
)

// Matches struct input_event on 64 bit linux
type keyEvent struct {
	Sec, Usec int64
	Type      uint16
	Code      uint16
	Value     int32
}

type Event struct {
	Pressed  bool
	Released bool
	//https://github.com/torvalds/linux/blob/master/include/uapi/linux/input-event-codes.h
	Code uint16
}

var letterCodes = map[rune]uint16{
	'1': 2, '2': 3, '3': 4, '4': 5, '5': 6, '6': 7, '7': 8, '8': 9, '9': 10, '0': 11,
	'-': 12, '=': 13,
	'q': 16, 'w': 17, 'e': 18, 'r': 19, 't': 20, 'y': 21, 'u': 22, 'i': 23, 'o': 24, 'p': 25,
	'[': 26, ']': 27,
	'a': 30, 's': 31, 'd': 32, 'f': 33, 'g': 34, 'h': 35, 'j': 36, 'k': 37, 'l': 38,
	';': 39, '\'': 40,
	'z': 44, 'x': 45, 'c': 46, 'v': 47, 'b': 48, 'n': 49, 'm': 50,
	',': 51, '.': 52, '/': 53,
	' ': 57,
}

// ReadInput streams key events from an evdev device until ctx is done
// or the device fails.
func ReadInput(ctx context.Context, device string, events chan<- Event) error {
	file, err := os.Open(device)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		file.Close()
	}()
	go func() {
		if err := readEvents(file, events); nil != err && ctx.Err() == nil {
			slog.Warn("unable to read keyboard input", "device", device, "err", err)
		}
	}()
	return nil
}

func readEvents(r io.Reader, events chan<- Event) error {
	var ev keyEvent
	for {
		err := binary.Read(r, binary.LittleEndian, &ev)
		if errors.Is(err, io.EOF) {
			return nil
		} else if nil != err {
			return err
		}
		if ev.Type != evKey {
			continue
		}
		events <- Event{
			Pressed:  ev.Value == 1,
			Released: ev.Value == 0,
			Code:     ev.Code,
		}
	}
}

// Tracker follows held keys from evdev events, which report releases.
type Tracker struct {
	lanes   map[uint16]int
	held    Lanes
	pressed Lanes
}

func NewTracker(keys KeyMap) *Tracker {
	t := &Tracker{lanes: map[uint16]int{
		keyLeft:  0,
		keyDown:  1,
		keyUp:    2,
		keyRight: 3,
	}}
	for i, r := range keys {
		if code, ok := letterCodes[unicode.ToLower(r)]; ok {
			t.lanes[code] = i
		}
	}
	return t
}

func (t *Tracker) Apply(ev Event) {
	lane, ok := t.lanes[ev.Code]
	if !ok {
		return
	}
	if ev.Pressed {
		if !t.held[lane] {
			t.pressed[lane] = true
		}
		t.held[lane] = true
	} else if ev.Released {
		t.held[lane] = false
	}
}

// Take returns the held keys and the keys pressed since the previous call.
func (t *Tracker) Take() (Lanes, Lanes) {
	pressed := t.pressed
	t.pressed = Lanes{}
	return t.held, pressed
}

// Drain applies every buffered event without blocking.
func (t *Tracker) Drain(events <-chan Event) {
	for {
		select {
		case ev := <-events:
			t.Apply(ev)
		default:
			return
		}
	}
}
