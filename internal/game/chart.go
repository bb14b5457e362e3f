package game

import (
	"errors"
	"fmt"
	"sort"
)

var ErrLane = errors.New("note lane out of range")

type Chart struct {
	Title    string `json:"title" yaml:"title"`
	Artist   string `json:"artist" yaml:"artist"`
	BPM      uint16 `json:"bpm" yaml:"bpm"`           // Informational
	Duration uint32 `json:"duration" yaml:"duration"` // Session length in ms
	Notes    []Note `json:"notes" yaml:"notes"`       // Source order, not necessarily sorted

	// Set by the loader, never part of the definition
	Filename string `json:"-" yaml:"-"`
	Audio    string `json:"-" yaml:"-"`
}

func (c *Chart) Validate() error {
	for i, n := range c.Notes {
		if n.Key < 0 || n.Key >= Lanes {
			return fmt.Errorf("note %d at %vms: %w: %d", i, n.Time, ErrLane, n.Key)
		}
	}
	return nil
}

// Clone returns a deep copy with every note unresolved.
func (c *Chart) Clone() *Chart {
	cc := *c
	cc.Notes = make([]Note, len(c.Notes))
	for i, n := range c.Notes {
		cc.Notes[i] = Note{Time: n.Time, Key: n.Key}
	}
	return &cc
}

// Ordered returns pointers to the notes sorted by time, ties keep source order.
func (c *Chart) Ordered() []*Note {
	notes := make([]*Note, len(c.Notes))
	for i := range c.Notes {
		notes[i] = &c.Notes[i]
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Time < notes[j].Time
	})
	return notes
}
