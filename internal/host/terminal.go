package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"git.lost.host/meutraa/keys/internal/input"
	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("stdout is not a terminal")

// Terminal draws frames with truecolor half blocks and reads keys from
// the terminal, or from an evdev device when Events is set.
type Terminal struct {
	Keyboard *input.Keyboard
	Period   time.Duration

	// Optional evdev source, which reports releases
	Events  <-chan input.Event
	Tracker *input.Tracker

	out     *os.File
	encoder *Encoder
	buffer  strings.Builder
}

func NewTerminal(keyboard *input.Keyboard, period time.Duration) *Terminal {
	return &Terminal{
		Keyboard: keyboard,
		Period:   period,
		out:      os.Stdout,
		encoder:  NewEncoder(0, 0),
	}
}

// WithDevice reads lanes from an evdev event stream instead of the terminal.
func (t *Terminal) WithDevice(events <-chan input.Event, keys input.KeyMap) *Terminal {
	t.Events = events
	t.Tracker = input.NewTracker(keys)
	return t
}

func (t *Terminal) enter() {
	fmt.Fprintf(t.out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
}

func (t *Terminal) leave() {
	fmt.Fprintf(t.out, "%s%s%s",
		"\033[0m",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
}

// poll samples this frame's input.
func (t *Terminal) poll(ctx context.Context, now time.Time) input.Frame {
	in := t.Keyboard.Poll(now)
	if nil != t.Tracker {
		t.Tracker.Drain(t.Events)
		in.Held, in.Pressed = t.Tracker.Take()
	}
	if nil != ctx.Err() {
		in.Quit = true
	}
	return in
}

func (t *Terminal) Run(ctx context.Context, frame FrameFunc) error {
	fd := int(t.out.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}

	t.enter()
	defer t.leave()

	for {
		now := time.Now()
		deadline := now.Add(t.Period)

		b, cont := frame(t.poll(ctx, now))

		cols, rows, err := term.GetSize(fd)
		if nil != err {
			return fmt.Errorf("unable to get terminal size: %w", err)
		}
		t.encoder.Resize(cols, rows)
		t.encoder.Encode(&t.buffer, b)
		if err := t.flush(t.out); nil != err {
			return err
		}

		if !cont {
			return nil
		}
		time.Sleep(time.Until(deadline))
	}
}

func (t *Terminal) flush(w io.Writer) error {
	defer t.buffer.Reset()
	if t.buffer.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(w, t.buffer.String())
	return err
}
