package detect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavescout/wavetrack-backend-go/internal/models"
)

func TestFilterByStability(t *testing.T) {
	candidates := []Candidate{
		{StartIndex: 0, EndIndex: 2, MemberIndices: []int{0, 1, 2}, Bearings: []float64{0, 5, 355}},
		{StartIndex: 5, EndIndex: 8, MemberIndices: []int{5, 6, 7, 8}, Bearings: []float64{0, 90, 180, 270}},
	}

	stable := FilterByStability(candidates, 25)
	require.Len(t, stable, 1)
	assert.Equal(t, 0, stable[0].StartIndex)

	// The survivor carries its circular stats.
	mean := stable[0].MeanDirectionDeg
	if mean > 180 {
		mean -= 360
	}
	assert.InDelta(t, 0, mean, 2)
	assert.Less(t, stable[0].DirectionStdDeg, 10.0)
}

func TestFilterByStabilityNoSamplesNeverRejected(t *testing.T) {
	candidates := []Candidate{
		{StartIndex: 0, EndIndex: 0, MemberIndices: []int{0}},
	}

	stable := FilterByStability(candidates, 1)
	require.Len(t, stable, 1)
	assert.True(t, math.IsNaN(stable[0].MeanDirectionDeg))
	assert.True(t, math.IsNaN(stable[0].DirectionStdDeg))
}

func TestFilterByDirection(t *testing.T) {
	dir := func(deg float64) *float64 { return &deg }

	waves := []models.Wave{
		{Ordinal: 1, MeanDirectionDeg: dir(10)},
		{Ordinal: 2, MeanDirectionDeg: dir(350)},
		{Ordinal: 3, MeanDirectionDeg: dir(120)},
		{Ordinal: 4, MeanDirectionDeg: nil},
	}

	// Target north with 20 degree tolerance: 10 and 350 are both 10-20
	// degrees away around the short arc; 120 and the undefined one go.
	kept, rejected := FilterByDirection(waves, 0, 20)
	require.Len(t, kept, 2)
	assert.Equal(t, 1, kept[0].Ordinal)
	assert.Equal(t, 2, kept[1].Ordinal)
	assert.Equal(t, 2, rejected)
}

func TestFilterByDirectionShortArc(t *testing.T) {
	dir := 350.0
	waves := []models.Wave{{Ordinal: 1, MeanDirectionDeg: &dir}}

	// angular distance (10, 350) is 20, not 340.
	kept, rejected := FilterByDirection(waves, 10, 20)
	assert.Len(t, kept, 1)
	assert.Zero(t, rejected)

	kept, rejected = FilterByDirection(waves, 10, 19)
	assert.Empty(t, kept)
	assert.Equal(t, 1, rejected)
}
