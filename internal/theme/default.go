package theme

import "git.lost.host/meutraa/keys/internal/game"

type DefaultTheme struct{}

func (t *DefaultTheme) Note(lane int) uint32 {
	return noteColors[lane%len(noteColors)]
}

func (t *DefaultTheme) Held(lane int) uint32 {
	return 0xbc2ce4
}

func (t *DefaultTheme) Text() uint32 { return 0xffffff }
func (t *DefaultTheme) Debug() uint32 { return 0xaaaaaa }
func (t *DefaultTheme) Menu() uint32 { return 0xffaaaa }
func (t *DefaultTheme) Cursor() uint32 { return 0xaaffff }

func (t *DefaultTheme) Judgement(index int) uint32 {
	col, ok := judgementColors[index]
	if !ok {
		return 0xffffff
	}
	return col
}

var (
	noteColors = [game.Lanes]uint32{
		0xc5c8c6,
		0xc5c8c6,
		0xc5c8c6,
		0xc5c8c6,
	}
	judgementColors = map[int]uint32{
		0:         0x8abeb7, // Marvelous light blue
		1:         0xf0c674, // Perfect yellow
		2:         0xb5bd68, // Great green
		3:         0x81a2be, // Good blue
		game.Miss: 0xcc6666, // Miss red
	}
)
