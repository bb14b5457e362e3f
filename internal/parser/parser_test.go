package parser

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.lost.host/meutraa/keys/internal/game"
	"git.lost.host/meutraa/keys/internal/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONParser(t *testing.T) {
	charts, err := (&JSONParser{}).Parse(bytes.NewReader(testdata.JSON()))
	require.NoError(t, err)
	require.Len(t, charts, 1)

	c := charts[0]
	assert.Equal(t, "Fixture", c.Title)
	assert.Equal(t, "Nobody", c.Artist)
	assert.Equal(t, uint16(120), c.BPM)
	assert.Equal(t, uint32(6000), c.Duration)
	require.Len(t, c.Notes, 7)
	assert.Equal(t, game.Note{Time: 1500, Key: 1}, c.Notes[1])
	assert.Empty(t, c.Filename)
}

func TestJSONParserIgnoresFilename(t *testing.T) {
	in := `{"title":"a","filename":"nope","bpm":1,"duration":10,"notes":[]}`
	charts, err := (&JSONParser{}).Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, charts[0].Filename)
}

func TestJSONParserErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":         `{"title":`,
		"negative time":  `{"notes":[{"time":-5,"key":0}]}`,
		"lane too large": `{"notes":[{"time":5,"key":4}]}`,
		"bpm overflow":   `{"bpm":70000}`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := (&JSONParser{}).Parse(strings.NewReader(in))
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestYAMLParser(t *testing.T) {
	in := `
title: Song
artist: Someone
bpm: 140
duration: 4000
notes:
  - {time: 1000, key: 3}
  - {time: 500, key: 0}
`
	charts, err := (&YAMLParser{}).Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, charts, 1)
	assert.Equal(t, "Song", charts[0].Title)
	assert.Equal(t, uint16(140), charts[0].BPM)
	assert.Equal(t, []game.Note{{Time: 1000, Key: 3}, {Time: 500, Key: 0}}, charts[0].Notes)

	_, err = (&YAMLParser{}).Parse(strings.NewReader("notes:\n  - {time: 1, key: 9}\n"))
	assert.ErrorIs(t, err, game.ErrLane)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "song.json")
	require.NoError(t, os.WriteFile(file, testdata.JSON(), 0o644))

	charts, err := ParseFile(file)
	require.NoError(t, err)
	assert.Len(t, charts, 1)

	_, err = ParseFile(filepath.Join(dir, "song.txt"))
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = ParseFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
