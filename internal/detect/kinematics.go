// Package detect implements the wave detection pipeline: per-segment
// kinematics, adaptive local speed statistics, the wave segmenter state
// machine, direction filters and wave enrichment.
//
// Every stage is a pure function over its inputs; a detection run never
// mutates session data and never fails on degenerate GPS fixes. Missing
// timestamps and zero-length hops degrade to zero/undefined fields so a
// single bad point cannot abort a whole session.
package detect

import (
	"math"

	"github.com/wavescout/wavetrack-backend-go/internal/models"
	"github.com/wavescout/wavetrack-backend-go/internal/spatial"
)

// Hops shorter than this have no meaningful azimuth.
const degenerateDistanceMeters = 1e-6

// ComputeSegments derives the motion segment sequence from an ordered
// point sequence. A session with n points yields n-1 segments; fewer than
// two points yield nil.
func ComputeSegments(points []models.Point) []models.Segment {
	if len(points) < 2 {
		return nil
	}

	segments := make([]models.Segment, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]

		dist := spatial.HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)

		elapsed := math.NaN()
		if a.HasTime() && b.HasTime() {
			if d := b.Time.Sub(*a.Time).Seconds(); !math.IsNaN(d) && !math.IsInf(d, 0) {
				elapsed = d
			}
		}

		speed := 0.0
		if !math.IsNaN(elapsed) && elapsed > 0 {
			speed = dist / elapsed * 3.6
		}

		bearing := math.NaN()
		if dist > degenerateDistanceMeters {
			bearing = spatial.Bearing(a.Lat, a.Lon, b.Lat, b.Lon)
		}

		seg := models.Segment{
			Index:          i - 1,
			Start:          a,
			End:            b,
			DistanceMeters: dist,
			ElapsedSeconds: elapsed,
			SpeedKmh:       speed,
			BearingDeg:     bearing,
		}

		// First-difference acceleration over the previous segment's
		// elapsed time. Noisy by construction; feeds coloring only.
		if len(segments) > 0 {
			prev := segments[len(segments)-1]
			if prev.HasElapsed() {
				seg.AccelKmhPerSec = (seg.SpeedKmh - prev.SpeedKmh) / prev.ElapsedSeconds
			}
		}

		segments = append(segments, seg)
	}

	return segments
}
