package input

import (
	"fmt"
	"time"

	"github.com/eiannone/keyboard"
)

var arrowLanes = map[keyboard.Key]int{
	keyboard.KeyArrowLeft:  0,
	keyboard.KeyArrowDown:  1,
	keyboard.KeyArrowUp:    2,
	keyboard.KeyArrowRight: 3,
}

// Apply folds one terminal key event into f and returns the lane it pressed, or -1.
func (m KeyMap) Apply(f *Frame, ev keyboard.KeyEvent) int {
	switch ev.Key {
	case keyboard.KeyArrowUp:
		f.Up = true
	case keyboard.KeyArrowDown:
		f.Down = true
	case keyboard.KeyEnter:
		f.Confirm = true
	case keyboard.KeyEsc:
		f.Back = true
	case keyboard.KeyCtrlC:
		f.Quit = true
	}

	lane, ok := arrowLanes[ev.Key]
	if !ok {
		lane = -1
		switch ev.Key {
		case 0:
			lane = m.Lane(ev.Rune)
		case keyboard.KeySpace:
			lane = m.Lane(' ')
		}
	}
	if lane >= 0 {
		f.Pressed[lane] = true
	}
	return lane
}

// Keyboard reads the terminal. Terminals report presses only, so held
// keys come from a Latch.
type Keyboard struct {
	events <-chan keyboard.KeyEvent
	keys   KeyMap
	latch  *Latch
}

func OpenKeyboard(keys KeyMap, hold time.Duration) (*Keyboard, error) {
	events, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	return NewKeyboard(events, keys, hold), nil
}

func NewKeyboard(events <-chan keyboard.KeyEvent, keys KeyMap, hold time.Duration) *Keyboard {
	return &Keyboard{events: events, keys: keys, latch: NewLatch(hold)}
}

// Poll drains the events that arrived since the last call without blocking.
func (k *Keyboard) Poll(now time.Time) Frame {
	var f Frame
	for {
		select {
		case ev, ok := <-k.events:
			if !ok {
				f.Quit = true
				f.Held = k.latch.Held(now)
				return f
			}
			if nil != ev.Err {
				continue
			}
			k.latch.Press(k.keys.Apply(&f, ev), now)
		default:
			f.Held = k.latch.Held(now)
			return f
		}
	}
}

func (k *Keyboard) Close() error {
	return keyboard.Close()
}
