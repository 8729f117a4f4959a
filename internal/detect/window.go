package detect

import (
	"math"

	"github.com/wavescout/wavetrack-backend-go/internal/models"
	"github.com/wavescout/wavetrack-backend-go/internal/stats"
)

// WindowStat summarizes the trailing speed window ending at a segment.
type WindowStat struct {
	MedianKmh float64
	StdDevKmh float64
}

// ComputeWindowStats computes, for every segment, the median and sample
// standard deviation of speed over the trailing window of segments whose
// cumulative elapsed time fits within windowSeconds.
//
// The window is bounded by wall-clock time, not segment count, and is
// maintained with two pointers so membership only ever moves forward.
// Segments without a valid elapsed time contribute zero span. A window
// with no finite speed values yields (0, 0).
func ComputeWindowStats(segments []models.Segment, windowSeconds float64) []WindowStat {
	n := len(segments)
	out := make([]WindowStat, n)
	if n == 0 {
		return out
	}

	span := func(i int) float64 {
		e := segments[i].ElapsedSeconds
		if math.IsNaN(e) || e < 0 {
			return 0
		}
		return e
	}

	left := 0
	total := 0.0
	speeds := make([]float64, 0, 64)

	for right := 0; right < n; right++ {
		total += span(right)
		for left < right && total > windowSeconds {
			total -= span(left)
			left++
		}

		speeds = speeds[:0]
		for i := left; i <= right; i++ {
			if v := segments[i].SpeedKmh; !math.IsNaN(v) && !math.IsInf(v, 0) {
				speeds = append(speeds, v)
			}
		}

		out[right] = WindowStat{
			MedianKmh: stats.Median(speeds),
			StdDevKmh: stats.SampleStdDev(speeds),
		}
	}

	return out
}
