package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularMeanDegreesWrapsAroundNorth(t *testing.T) {
	// Bearings straddling north must average to ~0/360, not 180.
	mean := CircularMeanDegrees([]float64{10, 350})
	if mean > 180 {
		mean -= 360
	}
	assert.InDelta(t, 0, mean, 1e-9)
}

func TestCircularMeanDegreesEmpty(t *testing.T) {
	assert.True(t, math.IsNaN(CircularMeanDegrees(nil)))
}

func TestCircularStdDevDegrees(t *testing.T) {
	tests := []struct {
		name   string
		angles []float64
		check  func(t *testing.T, std float64)
	}{
		{
			name:   "tight cluster around north",
			angles: []float64{0, 5, 355},
			check: func(t *testing.T, std float64) {
				assert.Less(t, std, 10.0)
			},
		},
		{
			name:   "identical angles",
			angles: []float64{42, 42, 42},
			check: func(t *testing.T, std float64) {
				assert.InDelta(t, 0, std, 1e-6)
			},
		},
		{
			name:   "uniform spread",
			angles: []float64{0, 90, 180, 270},
			check: func(t *testing.T, std float64) {
				// R collapses to ~0; the clamp keeps the result finite
				// but very large.
				assert.False(t, math.IsNaN(std))
				assert.Greater(t, std, 100.0)
			},
		},
		{
			name:   "no samples",
			angles: nil,
			check: func(t *testing.T, std float64) {
				assert.True(t, math.IsNaN(std))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, CircularStdDevDegrees(tt.angles))
		})
	}
}

func TestAngularDistanceDegrees(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{10, 350, 20},
		{350, 10, 20},
		{0, 180, 180},
		{90, 90, 0},
		{0, 270, 90},
		{720, 10, 10},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, AngularDistanceDegrees(tt.a, tt.b), 1e-9,
			"AngularDistanceDegrees(%v, %v)", tt.a, tt.b)
	}
}

func TestMeanResultantLength(t *testing.T) {
	assert.InDelta(t, 1, MeanResultantLength([]float64{30, 30, 30}), 1e-9)
	assert.InDelta(t, 0, MeanResultantLength([]float64{0, 90, 180, 270}), 1e-9)
}
