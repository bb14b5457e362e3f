package parser

import (
	"strings"
	"testing"

	"git.lost.host/meutraa/keys/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smChart = `#TITLE:Sample;
#ARTIST:Band;
#OFFSET:-0.5;
#BPMS:0.000=120.000,
4.000=60.000;
#NOTES:
     dance-single:
     :
     Easy:
     2:
     0,0,0,0,0:
1000
0100
0010
0001
,  // measure 2
2000
0000
M003
0000
;
#NOTES:
     dance-double:
     :
     Hard:
     9:
     0,0,0,0,0:
10000000
;
`

func TestSMParser(t *testing.T) {
	charts, err := (&SMParser{}).Parse(strings.NewReader(smChart))
	require.NoError(t, err)
	require.Len(t, charts, 1)

	c := charts[0]
	assert.Equal(t, "Sample [Easy]", c.Title)
	assert.Equal(t, "Band", c.Artist)
	assert.Equal(t, uint16(120), c.BPM)

	// 120 bpm is 500ms per quarter row, starting at the 500ms offset.
	// The second measure is at 60 bpm, the hold head lands at 2500ms.
	// The mine and tail are not notes.
	assert.Equal(t, []game.Note{
		{Time: 500, Key: 0},
		{Time: 1000, Key: 1},
		{Time: 1500, Key: 2},
		{Time: 2000, Key: 3},
		{Time: 2500, Key: 0},
	}, c.Notes)
	assert.Equal(t, uint32(2500+5000), c.Duration)
}

func TestSMParserDropsNegativeTimes(t *testing.T) {
	in := strings.Replace(smChart, "#OFFSET:-0.5;", "#OFFSET:0.75;", 1)
	charts, err := (&SMParser{}).Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.NotEmpty(t, charts[0].Notes)
	assert.Equal(t, game.Note{Time: 250, Key: 2}, charts[0].Notes[0])
}

func TestSMParserErrors(t *testing.T) {
	tests := map[string]string{
		"no bpm":     strings.Replace(smChart, "#BPMS:", "#NOPE:", 1),
		"bad bpm":    strings.Replace(smChart, "0.000=120.000", "0.000=fast", 1),
		"zero bpm":   strings.Replace(smChart, "0.000=120.000", "0.000=0", 1),
		"bad offset": strings.Replace(smChart, "-0.5", "soon", 1),
		"short":      "#BPMS:0=120;\n#NOTES:\n dance-single:\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := (&SMParser{}).Parse(strings.NewReader(in))
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}
