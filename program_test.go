package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/keys/internal/audio"
	"git.lost.host/meutraa/keys/internal/input"
	"git.lost.host/meutraa/keys/internal/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func songs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	unit := filepath.Join(dir, "fixture")
	require.NoError(t, os.MkdirAll(unit, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(unit, "fixture.json"), testdata.JSON(), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(unit, "fixture.ogg"), nil, 0o644))
	return dir
}

func TestProgramList(t *testing.T) {
	log := filepath.Join(t.TempDir(), "keys.log")
	p, err := NewProgram([]string{songs(t), "--log", log, "--list", "--mute"})
	require.NoError(t, err)
	defer p.Close()

	require.Len(t, p.Charts, 1)
	assert.Equal(t, "Fixture", p.Charts[0].Title)
	assert.NoError(t, p.Run(context.Background()))

	// Listing never opens the audio device
	assert.Nil(t, p.Player)

	info, err := os.Stat(log)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestProgramMute(t *testing.T) {
	p, err := NewProgram([]string{songs(t), "--log=-", "--mute"})
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.openPlayer())
	assert.Equal(t, audio.Silent{}, p.Player)
}

func TestProgramMissingHitsound(t *testing.T) {
	p, err := NewProgram([]string{songs(t), "--log=-", "-R", t.TempDir()})
	require.NoError(t, err)
	defer p.Close()

	assert.Error(t, p.openPlayer())
}

func TestProgramBadArgs(t *testing.T) {
	_, err := NewProgram([]string{songs(t), "--log=-", "-k", "ab"})
	assert.ErrorIs(t, err, input.ErrKeys)

	_, err = NewProgram([]string{filepath.Join(t.TempDir(), "missing"), "--log=-"})
	assert.ErrorContains(t, err, "missing")
}

func TestProgramLogToStderr(t *testing.T) {
	p, err := NewProgram([]string{songs(t), "--log=-"})
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, "-", p.Config.Log)
	assert.Empty(t, p.closers)
}

func TestProgramClosesLogOnCatalogError(t *testing.T) {
	dir := songs(t)
	broken := filepath.Join(dir, "broken")
	require.NoError(t, os.MkdirAll(broken, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(broken, "broken.json"), []byte("{"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(broken, "broken.ogg"), nil, 0o644))

	var closed []io.Closer
	_, err := newProgram([]string{dir, "--log", filepath.Join(t.TempDir(), "keys.log")}, func(p *Program) {
		closed = p.closers
	})
	require.Error(t, err)
	require.Len(t, closed, 1)

	// Closing an already closed file reports it
	assert.ErrorIs(t, closed[0].Close(), os.ErrClosed)
}
