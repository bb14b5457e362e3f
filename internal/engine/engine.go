package engine

import (
	"log/slog"
	"math"
	"time"

	"git.lost.host/meutraa/keys/internal/audio"
	"git.lost.host/meutraa/keys/internal/game"
	"git.lost.host/meutraa/keys/internal/input"
	"git.lost.host/meutraa/keys/internal/render"
)

type State int

const (
	Selecting State = iota
	Playing
	Ending
)

func (s State) String() string {
	switch s {
	case Selecting:
		return "selecting"
	case Playing:
		return "playing"
	case Ending:
		return "ending"
	}
	return "unknown"
}

type Option func(*Engine)

// WithOffset delays the session clock to make up for output latency.
func WithOffset(offset time.Duration) Option {
	return func(e *Engine) {
		e.offset = offset
	}
}

// Engine runs the chart select, play and summary screens one frame at a time.
type Engine struct {
	catalog    []*game.Chart
	titles     []string
	clock      Clock
	player     audio.Player
	compositor *render.Compositor
	offset     time.Duration

	state    State
	selected int
	session  *Session
	grade    game.Grade
}

func New(catalog []*game.Chart, clock Clock, player audio.Player, compositor *render.Compositor, opts ...Option) *Engine {
	titles := make([]string, len(catalog))
	for i, c := range catalog {
		titles[i] = c.Title
	}
	e := &Engine{
		catalog:    catalog,
		titles:     titles,
		clock:      clock,
		player:     player,
		compositor: compositor,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) State() State {
	return e.state
}

// Selected is the cursor position in the catalog.
func (e *Engine) Selected() int {
	return e.selected
}

// Session is the current play, nil while selecting.
func (e *Engine) Session() *Session {
	return e.session
}

// Grade is the grade of the last finished session.
func (e *Engine) Grade() game.Grade {
	return e.grade
}

// Frame advances one frame with this frame's input and returns the buffer
// to present. It returns false once the program should close.
func (e *Engine) Frame(in input.Frame) (*render.Buffer, bool) {
	if in.Quit {
		e.player.Stop()
		return e.compositor.Buffer, false
	}

	switch e.state {
	case Playing:
		return e.playing(in), true
	case Ending:
		return e.ending(in), true
	}
	return e.selecting(in)
}

func (e *Engine) menu() *render.Buffer {
	return e.compositor.Menu(render.MenuView{Titles: e.titles, Selected: e.selected})
}

func (e *Engine) selecting(in input.Frame) (*render.Buffer, bool) {
	if in.Back {
		return e.compositor.Buffer, false
	}
	if len(e.catalog) == 0 {
		return e.menu(), true
	}

	if in.Down && e.selected < len(e.catalog)-1 {
		e.selected++
	}
	if in.Up && e.selected > 0 {
		e.selected--
	}
	if in.Confirm {
		e.begin(e.catalog[e.selected])
		return e.playing(input.Frame{}), true
	}
	return e.menu(), true
}

func (e *Engine) begin(chart *game.Chart) {
	e.session = newSession(chart, e.clock.Now())
	e.state = Playing
	slog.Info("session started", "chart", chart.Title, "notes", len(chart.Notes), "duration", chart.Duration)

	if err := e.player.Play(chart.Audio); nil != err {
		slog.Warn("playing without music", "file", chart.Audio, "err", err)
	}
}

func (e *Engine) playing(in input.Frame) *render.Buffer {
	s := e.session
	frame := s.advance(e.clock.Now(), e.offset)
	if s.Over() || in.Back {
		return e.end()
	}

	for hits := s.update(in.Pressed); hits > 0; hits-- {
		e.player.Hit()
	}

	return e.compositor.Play(render.PlayView{
		Time:  s.Time,
		Frame: frame,
		Notes: s.Notes,
		Held:  in.Held,
		Stats: s.Stats,
	})
}

func (e *Engine) end() *render.Buffer {
	e.player.Stop()
	e.state = Ending

	stats := e.session.Stats
	grade, err := game.GradeFor(stats.Acc)
	if nil != err {
		slog.Warn("clamping accuracy", "err", err)
		grade, _ = game.GradeFor(clampAccuracy(stats.Acc))
	}
	e.grade = grade
	slog.Info("session ended",
		"chart", e.session.Chart.Title,
		"acc", stats.Acc,
		"score", stats.Score,
		"best_combo", stats.BestCombo,
		"notes", stats.Notes,
		"grade", grade,
	)
	return e.ending(input.Frame{})
}

func clampAccuracy(acc float64) float64 {
	if math.IsNaN(acc) {
		return 0
	}
	return math.Max(0, math.Min(1, acc))
}

func (e *Engine) ending(in input.Frame) *render.Buffer {
	if in.Confirm {
		e.state = Selecting
		e.session = nil
		return e.menu()
	}
	return e.compositor.Summary(render.SummaryView{
		Chart: e.session.Chart,
		Stats: e.session.Stats,
		Grade: e.grade,
	})
}
