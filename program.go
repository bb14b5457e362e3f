package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"git.lost.host/meutraa/keys/internal/audio"
	"git.lost.host/meutraa/keys/internal/catalog"
	"git.lost.host/meutraa/keys/internal/config"
	"git.lost.host/meutraa/keys/internal/engine"
	"git.lost.host/meutraa/keys/internal/game"
	"git.lost.host/meutraa/keys/internal/host"
	"git.lost.host/meutraa/keys/internal/input"
	"git.lost.host/meutraa/keys/internal/render"
	"git.lost.host/meutraa/keys/internal/theme"
)

// Program wires the configured pieces together and owns what must be closed.
type Program struct {
	Config *config.Config
	Charts []*game.Chart
	Player audio.Player
	Theme  theme.Theme

	closers []io.Closer
}

func NewProgram(args []string) (*Program, error) {
	return newProgram(args, nil)
}

// newProgram runs failed before the program's closers are released.
func newProgram(args []string, failed func(*Program)) (*Program, error) {
	c, err := config.Parse(args)
	if nil != err {
		return nil, err
	}
	p := &Program{Config: c, Theme: &theme.DefaultTheme{}}

	if err := p.openLog(); nil != err {
		return nil, err
	}

	p.Charts, err = catalog.Load(c.Directory)
	if nil != err {
		if nil != failed {
			failed(p)
		}
		p.Close()
		return nil, fmt.Errorf("unable to load charts: %w", err)
	}
	slog.Info("loaded catalog", "dir", c.Directory, "charts", len(p.Charts))
	return p, nil
}

func (p *Program) openLog() error {
	var w io.Writer = os.Stderr
	if p.Config.Log != "-" {
		f, err := os.OpenFile(p.Config.Log, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if nil != err {
			return fmt.Errorf("unable to open log: %w", err)
		}
		p.closers = append(p.closers, f)
		w = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, nil)))
	return nil
}

func (p *Program) openPlayer() error {
	if p.Config.Mute {
		p.Player = audio.Silent{}
		return nil
	}
	s, err := audio.NewSpeaker(filepath.Join(p.Config.Resources, "hitsound.wav"))
	if nil != err {
		return fmt.Errorf("unable to open audio: %w", err)
	}
	p.Player = s
	return nil
}

func (p *Program) openHost(ctx context.Context) (host.Host, error) {
	c := p.Config
	if c.Display == config.DisplayWindow {
		return host.NewWindow(c.Keys, c.TPS()), nil
	}

	kb, err := input.OpenKeyboard(c.Keys, c.Hold)
	if nil != err {
		return nil, err
	}
	p.closers = append(p.closers, kb)
	t := host.NewTerminal(kb, c.FramePeriod)
	if c.Device == "" {
		return t, nil
	}

	events := make(chan input.Event, 128)
	if err := input.ReadInput(ctx, c.Device, events); nil != err {
		return nil, fmt.Errorf("unable to open keyboard device: %w", err)
	}
	return t.WithDevice(events, c.Keys), nil
}

func (p *Program) Run(ctx context.Context) error {
	if p.Config.List {
		return catalog.Print(os.Stdout, p.Charts)
	}

	badges, err := render.LoadBadges(filepath.Join(p.Config.Resources, "grades"))
	if nil != err {
		return err
	}
	if err := p.openPlayer(); nil != err {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	h, err := p.openHost(ctx)
	if nil != err {
		return err
	}

	compositor := render.NewCompositor(render.DefaultFace, p.Theme, badges)
	e := engine.New(p.Charts, engine.SystemClock{}, p.Player, compositor, engine.WithOffset(p.Config.Offset))
	return h.Run(ctx, e.Frame)
}

func (p *Program) Close() {
	if nil != p.Player {
		p.Player.Stop()
	}
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i].Close(); nil != err {
			slog.Warn("unable to close", "err", err)
		}
	}
}
