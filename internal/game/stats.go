package game

import "fmt"

type Stats struct {
	Acc       float64 // Running mean of outcomes, 1 for a hit and 0 for a miss
	Score     uint32  // Sum of absolute hit offsets in ms
	Combo     uint32
	BestCombo uint32
	Notes     uint32 // Resolved notes so far

	Counts [len(Judgements)]uint32
}

func (s *Stats) hit(offset uint32) {
	s.Score += offset
	s.Combo++
	if s.Combo > s.BestCombo {
		s.BestCombo = s.Combo
	}
	s.Counts[Judge(offset)]++
	s.record(1)
}

func (s *Stats) miss() {
	s.Combo = 0
	s.Counts[Miss]++
	s.record(0)
}

func (s *Stats) record(outcome float64) {
	s.Notes++
	s.Acc += (outcome - s.Acc) / float64(s.Notes)
}

func (s Stats) String() string {
	return fmt.Sprintf("acc: %.2f\nscr: %v\ncmb: %v", s.Acc*100, s.Score, s.Combo)
}
