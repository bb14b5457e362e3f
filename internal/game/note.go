package game

import (
	"math"
)

const (
	Lanes  = 4    // Number of key columns
	Height = 720  // Playfield height in pixels, the distance a note travels
	Lead   = 1000 // How long before its time a note appears, in ms
	Window = 100  // Hit window either side of a note, in ms
)

type Note struct {
	Time uint32 `json:"time" yaml:"time"` // The time the note should be hit, ms from chart start
	Key  int    `json:"key" yaml:"key"`   // The lane, 0..Lanes

	// This is state
	hit bool // Resolved, either hit or missed
}

// Resolved reports whether the note has been hit or missed.
func (n *Note) Resolved() bool {
	return n.hit
}

// Position is the exact vertical position of the note at time t.
// It is Height when the note appears and 0 at the note's time.
func (n *Note) Position(t uint32) float64 {
	elapsed := float64(int64(t) - (int64(n.Time) - Lead))
	return Height - Height*elapsed/Lead
}

// HeightAt is the pixel row the note is drawn at for time t.
// Values outside [0, Height] are off the playfield.
func (n *Note) HeightAt(t uint32) int64 {
	return int64(math.Floor(n.Position(t)))
}

// Opens returns the first time the note can be hit.
func (n *Note) Opens() uint32 {
	if n.Time < Window {
		return 0
	}
	return n.Time - Window
}

// Update resolves the note against the keys pressed this frame.
// It returns true only when the note was hit on this call.
func (n *Note) Update(stats *Stats, t uint32, pressed [Lanes]bool) bool {
	if n.hit {
		return false
	}

	if t >= n.Opens() && t < n.Time+Window && n.Key >= 0 && n.Key < Lanes && pressed[n.Key] {
		n.hit = true
		stats.hit(offset(t, n.Time))
		return true
	}

	// The first frame past the note's time without a press misses it,
	// so a late press on any later frame finds nothing to hit
	if t > n.Time {
		n.hit = true
		stats.miss()
	}
	return false
}

func offset(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
