package host

import (
	"strings"
	"testing"

	"git.lost.host/meutraa/keys/internal/render"
	"github.com/stretchr/testify/assert"
)

func TestEncodeFirstFrame(t *testing.T) {
	b := render.NewBuffer(4, 4)
	b.Fill(0, 0, 2, 2, 0xff0000)
	b.Fill(0, 2, 2, 4, 0x00ff00)

	var sb strings.Builder
	e := NewEncoder(2, 2)
	e.Encode(&sb, b)
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "\033[0m\033[2J"))
	assert.Contains(t, out, "\033[1;1H\033[38;2;255;0;0m\033[48;2;255;0;0m▀")
	assert.Contains(t, out, "\033[2;1H\033[38;2;0;255;0m\033[48;2;0;255;0m▀")
	assert.Contains(t, out, "\033[1;2H\033[38;2;0;0;0m\033[48;2;0;0;0m▀")
	assert.Equal(t, 4, strings.Count(out, "▀"))
	assert.True(t, strings.HasSuffix(out, "\033[0m"))
}

func TestEncodeOnlyChangedCells(t *testing.T) {
	b := render.NewBuffer(4, 4)
	e := NewEncoder(2, 2)

	var sb strings.Builder
	e.Encode(&sb, b)
	sb.Reset()

	e.Encode(&sb, b)
	assert.Empty(t, sb.String())

	b.Set(3, 3, 0x0000ff)
	e.Encode(&sb, b)
	assert.Equal(t, "\033[2;2H\033[38;2;0;0;0m\033[48;2;0;0;255m▀\033[0m", sb.String())
}

func TestEncodeResizeRedraws(t *testing.T) {
	b := render.NewBuffer(4, 4)
	e := NewEncoder(2, 2)

	var sb strings.Builder
	e.Encode(&sb, b)
	sb.Reset()

	e.Resize(2, 2)
	e.Encode(&sb, b)
	assert.Empty(t, sb.String())

	e.Resize(1, 1)
	e.Encode(&sb, b)
	assert.Equal(t, 1, strings.Count(sb.String(), "▀"))
	assert.Contains(t, sb.String(), "\033[2J")
}

func TestSampleKeepsBrightest(t *testing.T) {
	b := render.NewBuffer(8, 8)
	b.Set(5, 6, 0x202020)
	b.Set(1, 1, 0xc5c8c6)

	assert.Equal(t, uint32(0xc5c8c6), sample(b, 0, 0, 8, 8))
	assert.Equal(t, uint32(0x202020), sample(b, 4, 4, 8, 8))
	assert.Equal(t, uint32(0), sample(b, 0, 4, 4, 8))
}

func TestSpanNeverEmpty(t *testing.T) {
	lo, hi := span(3, 10, 4)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 2, hi)

	lo, hi = span(1, 2, 720)
	assert.Equal(t, 360, lo)
	assert.Equal(t, 720, hi)
}

func TestKeyFor(t *testing.T) {
	k, ok := keyFor('d')
	assert.True(t, ok)
	assert.Equal(t, "D", k.String())

	k, ok = keyFor('1')
	assert.True(t, ok)
	assert.Equal(t, "Digit1", k.String())

	k, ok = keyFor(' ')
	assert.True(t, ok)
	assert.Equal(t, "Space", k.String())
}
