package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccuracyIsMeanOfOutcomes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		var stats Stats
		hits := 0
		n := 1 + rng.Intn(400)
		for i := 0; i < n; i++ {
			if rng.Intn(3) > 0 {
				stats.hit(uint32(rng.Intn(Window)))
				hits++
			} else {
				stats.miss()
			}
		}
		require.Equal(t, uint32(n), stats.Notes)
		assert.InDelta(t, float64(hits)/float64(n), stats.Acc, 1e-9)
		assert.GreaterOrEqual(t, stats.Acc, 0.0)
		assert.LessOrEqual(t, stats.Acc, 1.0)
	}
}

func TestBestComboMonotonic(t *testing.T) {
	var stats Stats
	outcomes := []bool{true, true, true, false, true, false, true, true, true, true, false}

	best := uint32(0)
	for _, o := range outcomes {
		if o {
			stats.hit(10)
		} else {
			stats.miss()
		}
		require.GreaterOrEqual(t, stats.BestCombo, best)
		require.GreaterOrEqual(t, stats.BestCombo, stats.Combo)
		best = stats.BestCombo
	}
	assert.Equal(t, uint32(4), stats.BestCombo)
	assert.Equal(t, uint32(0), stats.Combo)
}

func TestJudgementCounts(t *testing.T) {
	var stats Stats
	for _, off := range []uint32{0, 15, 16, 39, 40, 72, 73, 99} {
		stats.hit(off)
	}
	stats.miss()

	assert.Equal(t, [len(Judgements)]uint32{2, 2, 2, 2, 1}, stats.Counts)
	assert.Equal(t, uint32(0+15+16+39+40+72+73+99), stats.Score)
}

func TestStatsString(t *testing.T) {
	stats := Stats{Acc: 0.5, Score: 120, Combo: 3}
	assert.Equal(t, "acc: 50.00\nscr: 120\ncmb: 3", stats.String())
}
