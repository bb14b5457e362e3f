package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsIndependent(t *testing.T) {
	chart := &Chart{
		Title:    "t",
		Duration: 3000,
		Notes:    []Note{{Time: 1000, Key: 0}, {Time: 2000, Key: 1}},
		Filename: "song",
	}

	var stats Stats
	working := chart.Clone()
	require.True(t, working.Notes[0].Update(&stats, 1000, lane(0)))

	assert.True(t, working.Notes[0].Resolved())
	assert.False(t, chart.Notes[0].Resolved())
	assert.Equal(t, "song", working.Filename)

	again := working.Clone()
	assert.False(t, again.Notes[0].Resolved())
}

func TestOrdered(t *testing.T) {
	chart := &Chart{Notes: []Note{
		{Time: 3000, Key: 0},
		{Time: 1000, Key: 1},
		{Time: 1000, Key: 2},
		{Time: 2000, Key: 3},
	}}

	ordered := chart.Ordered()
	keys := []int{}
	for _, n := range ordered {
		keys = append(keys, n.Key)
	}
	assert.Equal(t, []int{1, 2, 3, 0}, keys)

	// Pointers share storage with the chart
	var stats Stats
	ordered[0].Update(&stats, 1000, lane(1))
	assert.True(t, chart.Notes[1].Resolved())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Chart{Notes: []Note{{Key: 0}, {Key: 3}}}).Validate())
	assert.ErrorIs(t, (&Chart{Notes: []Note{{Key: 4}}}).Validate(), ErrLane)
	assert.ErrorIs(t, (&Chart{Notes: []Note{{Key: -1}}}).Validate(), ErrLane)
}
