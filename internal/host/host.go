package host

import (
	"context"

	"git.lost.host/meutraa/keys/internal/input"
	"git.lost.host/meutraa/keys/internal/render"
)

// FrameFunc steps the game once and returns the frame to present.
// It returns false once the host should stop.
type FrameFunc func(in input.Frame) (*render.Buffer, bool)

// Host owns the display and the key source, calling a FrameFunc once per frame.
type Host interface {
	Run(ctx context.Context, frame FrameFunc) error
}
