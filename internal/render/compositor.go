package render

import (
	"fmt"
	"strings"

	"git.lost.host/meutraa/keys/internal/game"
	"git.lost.host/meutraa/keys/internal/theme"
	"golang.org/x/image/font"
)

const (
	Width  = 1280
	Height = game.Height

	laneWidth = 80
	keyDepth  = 10 // Rows covered by a note or key rectangle
	hitLine   = 10 // Height held keys are drawn at
	badgeSize = 8  // Text scale for badges without an image
)

type MenuView struct {
	Titles   []string
	Selected int
}

type PlayView struct {
	Time  uint32 // Session time in ms
	Frame uint32 // ms since the previous frame
	Notes []*game.Note
	Held  [game.Lanes]bool
	Stats game.Stats
}

type SummaryView struct {
	Chart *game.Chart
	Stats game.Stats
	Grade game.Grade
}

// Compositor draws whole frames into its buffer. It keeps no state between frames.
type Compositor struct {
	Buffer *Buffer
	Face   font.Face
	Theme  theme.Theme
	Badges Badges
}

func NewCompositor(face font.Face, th theme.Theme, badges Badges) *Compositor {
	return &Compositor{
		Buffer: NewBuffer(Width, Height),
		Face:   face,
		Theme:  th,
		Badges: badges,
	}
}

// LaneBand returns the horizontal span [x0, x1) of a lane.
func LaneBand(lane int) (int, int) {
	x0 := Width/2 - 2*laneWidth + lane*laneWidth
	return x0, x0 + laneWidth
}

func (c *Compositor) text(x, y int, color uint32, s string) {
	DrawText(c.Buffer, c.Face, x, y, 1, color, s)
}

func (c *Compositor) key(lane int, height int64, color uint32) {
	x0, x1 := LaneBand(lane)
	y0, y1 := height-keyDepth, height
	if height < keyDepth {
		y0 = 0
	}
	if y1 > Height {
		y1 = Height
	}
	c.Buffer.Fill(x0, int(y0), x1, int(y1), color)
}

func (c *Compositor) Menu(v MenuView) *Buffer {
	c.Buffer.Clear()
	if len(v.Titles) == 0 {
		c.text(30, 20, c.Theme.Menu(), "no charts found")
		return c.Buffer
	}
	c.text(30, 20, c.Theme.Menu(), strings.Join(v.Titles, "\n"))
	c.text(10, 20, c.Theme.Cursor(), strings.Repeat("\n", v.Selected)+">")
	return c.Buffer
}

func (c *Compositor) Play(v PlayView) *Buffer {
	c.Buffer.Clear()
	c.text(Width/2-20, Height/2, c.Theme.Text(), v.Stats.String())
	c.text(0, 0, c.Theme.Debug(), fmt.Sprintf("%vms", v.Frame))

	for i, held := range v.Held {
		if held {
			c.key(i, hitLine, c.Theme.Held(i))
		}
	}

	for _, n := range v.Notes {
		if n.Resolved() || n.Key < 0 || n.Key >= game.Lanes {
			// Hit notes disappear, missed notes have already passed the line
			continue
		}
		h := n.HeightAt(v.Time)
		if h < 0 || h > Height {
			continue
		}
		c.key(n.Key, h, c.Theme.Note(n.Key))
	}
	return c.Buffer
}

func (c *Compositor) Summary(v SummaryView) *Buffer {
	c.Buffer.Clear()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%v - %v\n\naccuracy: %.2f%%\nscore: %v\nbest combo: %v\n",
		v.Chart.Title, v.Chart.Artist, v.Stats.Acc*100, v.Stats.Score, v.Stats.BestCombo)
	c.text(Width/2, Height/4, c.Theme.Text(), sb.String())

	// Judgement counts below the summary, one line each
	y := Height/4 + 7*LineHeight(c.Face)
	for i, j := range game.Judgements {
		c.text(Width/2, y, c.Theme.Judgement(i), fmt.Sprintf("%10v: %v", j.Name, v.Stats.Counts[i]))
		y += LineHeight(c.Face)
	}

	if img, ok := c.Badges[v.Grade]; ok {
		c.Buffer.Blit(Width/4, Height/4, img)
	} else {
		DrawText(c.Buffer, c.Face, Width/4, Height/4, badgeSize, c.Theme.Text(), string(v.Grade))
	}
	return c.Buffer
}
