package detect

import (
	"math"
	"sort"

	"github.com/wavescout/wavetrack-backend-go/internal/models"
	"github.com/wavescout/wavetrack-backend-go/internal/spatial"
)

// EnrichWaves expands every stable wave into a presentation-ready record:
// clean index range, geographic bounds, representative points, mean
// direction, average speed, peak location and the raw speed series.
func EnrichWaves(points []models.Point, segments []models.Segment, stable []StableWave) []models.Wave {
	waves := make([]models.Wave, 0, len(stable))
	for i, sw := range stable {
		w := enrichWave(points, segments, sw)
		w.Ordinal = i + 1
		waves = append(waves, w)
	}
	return waves
}

func enrichWave(points []models.Point, segments []models.Segment, sw StableWave) models.Wave {
	indices := dedupeSorted(sw.MemberIndices)
	startSeg := indices[0]
	endSeg := indices[len(indices)-1]

	// Member segments i..j cover points i..j+1 inclusive.
	slice := points[startSeg : endSeg+2]

	lats := make([]float64, len(slice))
	lons := make([]float64, len(slice))
	for i, p := range slice {
		lats[i] = p.Lat
		lons[i] = p.Lon
	}
	minLat, minLon, maxLat, maxLon := spatial.BoundingBox(lats, lons)

	w := models.Wave{
		StartSegmentIdx: startSeg,
		EndSegmentIdx:   endSeg,
		StartPointIdx:   startSeg,
		EndPointIdx:     endSeg + 1,
		Bounds:          models.Bounds{MinLat: minLat, MinLon: minLon, MaxLat: maxLat, MaxLon: maxLon},
		StartPoint:      slice[0],
		MidPoint:        slice[len(slice)/2],
		DistanceMeters:  sw.DistanceMeters,
		DurationSeconds: sw.DurationSeconds,
		PeakSpeedKmh:    sw.PeakSpeedKmh,
	}

	// Mean direction: circular mean of the collected samples, falling
	// back to the straight start->end bearing when none were collected.
	meanDir := sw.MeanDirectionDeg
	if math.IsNaN(meanDir) {
		first, last := slice[0], slice[len(slice)-1]
		meanDir = spatial.Bearing(first.Lat, first.Lon, last.Lat, last.Lon)
	}
	w.MeanDirectionDeg = &meanDir
	if !math.IsNaN(sw.DirectionStdDeg) {
		std := sw.DirectionStdDeg
		w.DirectionStdDeg = &std
	}

	if sw.DurationSeconds > 0 {
		avg := sw.DistanceMeters / sw.DurationSeconds * 3.6
		w.AvgSpeedKmh = &avg
	}

	w.SpeedSeriesKmh = make([]float64, 0, len(indices))
	peakIdx, peakOffset, peakSpeed := startSeg, 0, math.Inf(-1)
	for off, idx := range indices {
		speed := segments[idx].SpeedKmh
		w.SpeedSeriesKmh = append(w.SpeedSeriesKmh, speed)
		if speed > peakSpeed {
			peakSpeed = speed
			peakIdx = idx
			peakOffset = off
		}
	}
	w.PeakSegmentIdx = peakIdx
	w.PeakOffset = peakOffset

	if slice[0].HasTime() {
		t := *slice[0].Time
		w.StartTime = &t
	}

	return w
}

// BestWave returns the wave with the highest peak speed, ties broken by
// greater cumulative distance. Returns nil for an empty list.
func BestWave(waves []models.Wave) *models.Wave {
	var best *models.Wave
	for i := range waves {
		w := &waves[i]
		if best == nil ||
			w.PeakSpeedKmh > best.PeakSpeedKmh ||
			(w.PeakSpeedKmh == best.PeakSpeedKmh && w.DistanceMeters > best.DistanceMeters) {
			best = w
		}
	}
	return best
}

// ComputeSessionStats aggregates the whole session for summary reporting.
func ComputeSessionStats(segments []models.Segment, waves []models.Wave) models.SessionStats {
	var st models.SessionStats

	var totalDist, totalDur, maxSpeed float64
	for _, seg := range segments {
		totalDist += seg.DistanceMeters
		if seg.HasElapsed() {
			totalDur += seg.ElapsedSeconds
		}
		if seg.SpeedKmh > maxSpeed {
			maxSpeed = seg.SpeedKmh
		}
	}

	st.TotalDistanceMeters = totalDist
	st.TotalDurationSeconds = totalDur
	if totalDur > 0 {
		st.AverageKmh = totalDist / totalDur * 3.6
	}
	st.MaxKmh = maxSpeed
	st.WaveCount = len(waves)

	if best := BestWave(waves); best != nil {
		st.BestWave = &models.WaveSummary{
			Ordinal:         best.Ordinal,
			PeakSpeedKmh:    best.PeakSpeedKmh,
			DistanceMeters:  best.DistanceMeters,
			DurationSeconds: best.DurationSeconds,
		}
	}

	return st
}

func dedupeSorted(indices []int) []int {
	out := make([]int, len(indices))
	copy(out, indices)
	sort.Ints(out)

	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}
	return out[:n]
}
