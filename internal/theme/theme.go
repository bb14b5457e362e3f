package theme

// Colors are packed 0xRRGGBB
type Theme interface {
	Note(lane int) uint32
	Held(lane int) uint32
	Text() uint32
	Debug() uint32
	Menu() uint32
	Cursor() uint32
	Judgement(index int) uint32
}
