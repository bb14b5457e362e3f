package engine

import (
	"time"

	"git.lost.host/meutraa/keys/internal/game"
)

// Session is the working set of one play. It owns a clone of the
// selected chart so the catalog is never mutated.
type Session struct {
	Chart *game.Chart
	Notes []*game.Note // Chart notes in time order
	Stats game.Stats
	Time  uint32 // ms since the session started

	start time.Time
	last  uint32
}

func newSession(chart *game.Chart, start time.Time) *Session {
	working := chart.Clone()
	return &Session{
		Chart: working,
		Notes: working.Ordered(),
		start: start,
	}
}

// advance samples the session clock and returns the ms since the previous frame.
func (s *Session) advance(now time.Time, offset time.Duration) uint32 {
	elapsed := now.Sub(s.start) - offset
	if elapsed < 0 {
		elapsed = 0
	}
	s.last, s.Time = s.Time, uint32(elapsed.Milliseconds())
	if s.Time < s.last {
		return 0
	}
	return s.Time - s.last
}

// Over reports whether the session has run past the chart's duration.
func (s *Session) Over() bool {
	return s.Time > s.Chart.Duration
}

// update resolves every note against this frame's presses and returns
// how many were hit.
func (s *Session) update(pressed [game.Lanes]bool) int {
	hits := 0
	for _, n := range s.Notes {
		if n.Update(&s.Stats, s.Time, pressed) {
			hits++
		}
	}
	return hits
}
