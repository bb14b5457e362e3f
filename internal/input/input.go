package input

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"git.lost.host/meutraa/keys/internal/game"
)

var ErrKeys = errors.New("invalid lane keys")

const DefaultKeys = "dfjk"

type Lanes [game.Lanes]bool

// Frame is the input sampled once per frame. The zero value means no input.
type Frame struct {
	Held    Lanes // Keys down right now, for highlighting
	Pressed Lanes // Keys that went down since the last frame, for hitting

	Up, Down bool
	Confirm  bool
	Back     bool // Leave the current screen
	Quit     bool // Close everything
}

// KeyMap binds a rune to each lane, in addition to the arrow keys.
type KeyMap [game.Lanes]rune

func ParseKeys(s string) (KeyMap, error) {
	var m KeyMap
	if utf8.RuneCountInString(s) != game.Lanes {
		return m, fmt.Errorf("%w: %q needs %v keys", ErrKeys, s, game.Lanes)
	}
	i := 0
	for _, r := range s {
		for _, prev := range m[:i] {
			if prev == r {
				return m, fmt.Errorf("%w: %q repeats %q", ErrKeys, s, r)
			}
		}
		m[i] = r
		i++
	}
	return m, nil
}

// Lane returns the lane bound to r, or -1.
func (m KeyMap) Lane(r rune) int {
	for i, c := range m {
		if r == c {
			return i
		}
	}
	return -1
}
