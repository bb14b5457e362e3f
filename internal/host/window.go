package host

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"git.lost.host/meutraa/keys/internal/game"
	"git.lost.host/meutraa/keys/internal/input"
	"git.lost.host/meutraa/keys/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var arrowKeys = [game.Lanes]ebiten.Key{
	ebiten.KeyArrowLeft,
	ebiten.KeyArrowDown,
	ebiten.KeyArrowUp,
	ebiten.KeyArrowRight,
}

// Window presents frames in a desktop window at the compositor's size.
type Window struct {
	Keys input.KeyMap
	TPS  int
}

func NewWindow(keys input.KeyMap, tps int) *Window {
	return &Window{Keys: keys, TPS: tps}
}

// keyFor finds the physical key that types r on a US layout.
func keyFor(r rune) (ebiten.Key, bool) {
	name := strings.ToUpper(string(r))
	switch {
	case r == ' ':
		name = "Space"
	case unicode.IsDigit(r):
		name = "Digit" + name
	}
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

type window struct {
	ctx    context.Context
	frame  FrameFunc
	lanes  [game.Lanes][]ebiten.Key
	buffer *render.Buffer
	pixels []byte
}

func (w *Window) Run(ctx context.Context, frame FrameFunc) error {
	g := &window{ctx: ctx, frame: frame}
	for i, r := range w.Keys {
		g.lanes[i] = []ebiten.Key{arrowKeys[i]}
		if k, ok := keyFor(r); ok {
			g.lanes[i] = append(g.lanes[i], k)
		} else {
			slog.Warn("no window key for lane, arrows only", "lane", i, "key", string(r))
		}
	}

	ebiten.SetWindowSize(render.Width, render.Height)
	ebiten.SetWindowTitle("keys")
	ebiten.SetWindowClosingHandled(true)
	if w.TPS > 0 {
		ebiten.SetTPS(w.TPS)
	}
	return ebiten.RunGame(g)
}

func (g *window) input() input.Frame {
	var in input.Frame
	for i, keys := range g.lanes {
		for _, k := range keys {
			in.Held[i] = in.Held[i] || ebiten.IsKeyPressed(k)
			in.Pressed[i] = in.Pressed[i] || inpututil.IsKeyJustPressed(k)
		}
	}
	in.Up = inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)
	in.Down = inpututil.IsKeyJustPressed(ebiten.KeyArrowDown)
	in.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.Back = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.Quit = ebiten.IsWindowBeingClosed() || nil != g.ctx.Err()
	return in
}

func (g *window) Update() error {
	b, cont := g.frame(g.input())
	g.buffer = b
	if !cont {
		return ebiten.Termination
	}
	return nil
}

func (g *window) Draw(screen *ebiten.Image) {
	if nil == g.buffer {
		return
	}
	g.pixels = g.buffer.RGBA(g.pixels)
	screen.WritePixels(g.pixels)
}

func (g *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.Width, render.Height
}
