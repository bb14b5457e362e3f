package input

import (
	"time"

	"git.lost.host/meutraa/keys/internal/game"
)

// Latch approximates held keys for sources that only report presses.
// A lane stays held for the decay period after its last press.
type Latch struct {
	decay time.Duration
	last  [game.Lanes]time.Time
}

func NewLatch(decay time.Duration) *Latch {
	return &Latch{decay: decay}
}

func (l *Latch) Press(lane int, now time.Time) {
	if lane >= 0 && lane < len(l.last) {
		l.last[lane] = now
	}
}

func (l *Latch) Held(now time.Time) Lanes {
	var held Lanes
	for i, t := range l.last {
		held[i] = !t.IsZero() && now.Sub(t) < l.decay
	}
	return held
}
