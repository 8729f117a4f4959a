package detect

import (
	"github.com/wavescout/wavetrack-backend-go/internal/models"
)

// Candidate is the mutable accumulator for one wave under detection.
// Once emitted by the segmenter it is never mutated again.
type Candidate struct {
	StartIndex      int
	EndIndex        int
	MemberIndices   []int
	DistanceMeters  float64
	DurationSeconds float64
	PeakSpeedKmh    float64
	Bearings        []float64
}

// DetectWaves runs the segmenter state machine over the segment sequence
// and returns the raw candidate waves in order.
//
// A wave starts when a segment with valid elapsed time reaches the
// threshold. While active, over-threshold segments extend the wave and
// raise its peak. An under-threshold segment is still folded into the wave
// as long as speed has not decayed DropPercent below the peak; once it
// has, elapsed time accumulates in a grace timer and the wave closes when
// the timer reaches EndGraceSeconds. Candidates shorter than
// MinDurationSeconds are discarded on close.
//
// windowStats may be nil when adaptive mode is off.
func DetectWaves(segments []models.Segment, windowStats []WindowStat, cfg models.DetectionConfig) []Candidate {
	var (
		waves []Candidate
		cur   *Candidate
		grace float64
	)

	threshold := func(i int) float64 {
		t := cfg.FixedThresholdKmh
		if cfg.UseAdaptive && i < len(windowStats) {
			if adaptive := windowStats[i].MedianKmh + cfg.KSigma*windowStats[i].StdDevKmh; adaptive > t {
				t = adaptive
			}
		}
		return t
	}

	extend := func(seg models.Segment) {
		cur.EndIndex = seg.Index
		cur.MemberIndices = append(cur.MemberIndices, seg.Index)
		cur.DistanceMeters += seg.DistanceMeters
		if seg.HasElapsed() {
			cur.DurationSeconds += seg.ElapsedSeconds
		}
		if seg.HasBearing() {
			cur.Bearings = append(cur.Bearings, seg.BearingDeg)
		}
		if seg.SpeedKmh > cur.PeakSpeedKmh {
			cur.PeakSpeedKmh = seg.SpeedKmh
		}
		grace = 0
	}

	closeOut := func() {
		if cur == nil {
			return
		}
		if cur.DurationSeconds >= cfg.MinDurationSeconds && len(cur.MemberIndices) > 0 {
			waves = append(waves, *cur)
		}
		cur = nil
		grace = 0
	}

	for _, seg := range segments {
		if cur == nil {
			// A segment with no valid elapsed time can never start a wave.
			if seg.HasElapsed() && seg.SpeedKmh >= threshold(seg.Index) {
				cur = &Candidate{StartIndex: seg.Index, EndIndex: seg.Index}
				extend(seg)
			}
			continue
		}

		if seg.SpeedKmh >= threshold(seg.Index) {
			extend(seg)
			continue
		}

		dropPercent := 100.0
		if cur.PeakSpeedKmh > 0 {
			dropPercent = 100 * (1 - seg.SpeedKmh/cur.PeakSpeedKmh)
		}

		if dropPercent < cfg.DropPercent {
			// Wave tails are allowed to dip below the entry threshold
			// without ending the wave.
			extend(seg)
			continue
		}

		if seg.HasElapsed() {
			grace += seg.ElapsedSeconds
		}
		if grace >= cfg.EndGraceSeconds {
			closeOut()
		}
	}

	// Force-close at end of input, no grace required.
	closeOut()

	return waves
}
