package game

type Judgement struct {
	Ms   uint32 // Upper bound (exclusive) of the absolute offset
	Name string
}

// Judgements are ordered tightest first, the last entry is the miss.
var Judgements = [...]Judgement{
	{Ms: 16, Name: "Marvelous"},
	{Ms: 40, Name: "Perfect"},
	{Ms: 73, Name: "Great"},
	{Ms: Window, Name: "Good"},
	{Name: "Miss"},
}

const Miss = len(Judgements) - 1

// Judge returns the index into Judgements for an absolute hit offset.
func Judge(offset uint32) int {
	for i := 0; i < Miss; i++ {
		if offset < Judgements[i].Ms {
			return i
		}
	}
	// Anything outside the window would have been a miss
	return Miss - 1
}
