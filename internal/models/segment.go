package models

import (
	"encoding/json"
	"math"
)

// Segment represents the motion between two consecutive track points.
// Segment i connects points i and i+1, so a session with n points yields
// n-1 segments.
//
// ElapsedSeconds is NaN when either endpoint is missing a timestamp or the
// timestamps are non-monotonic; BearingDeg is NaN when the two endpoints
// are too close for a meaningful azimuth. SpeedKmh and AccelKmhPerSec fall
// back to 0 instead of NaN so that downstream thresholding never divides
// by, or compares against, an undefined value.
type Segment struct {
	Index          int     `json:"index"`
	Start          Point   `json:"start"`
	End            Point   `json:"end"`
	DistanceMeters float64 `json:"distanceMeters"`
	ElapsedSeconds float64 `json:"elapsedSeconds"`
	SpeedKmh       float64 `json:"speedKmh"`
	BearingDeg     float64 `json:"bearingDeg"`
	AccelKmhPerSec float64 `json:"accelKmhPerSec"`
}

// HasElapsed reports whether the segment has a usable elapsed time.
func (s Segment) HasElapsed() bool {
	return !math.IsNaN(s.ElapsedSeconds) && s.ElapsedSeconds > 0
}

// HasBearing reports whether the segment has a defined travel direction.
func (s Segment) HasBearing() bool {
	return !math.IsNaN(s.BearingDeg)
}

// MarshalJSON encodes NaN-valued fields as null so the segment array stays
// valid JSON for the rendering collaborator.
func (s Segment) MarshalJSON() ([]byte, error) {
	type alias struct {
		Index          int      `json:"index"`
		Start          Point    `json:"start"`
		End            Point    `json:"end"`
		DistanceMeters float64  `json:"distanceMeters"`
		ElapsedSeconds *float64 `json:"elapsedSeconds"`
		SpeedKmh       float64  `json:"speedKmh"`
		BearingDeg     *float64 `json:"bearingDeg"`
		AccelKmhPerSec float64  `json:"accelKmhPerSec"`
	}

	a := alias{
		Index:          s.Index,
		Start:          s.Start,
		End:            s.End,
		DistanceMeters: s.DistanceMeters,
		SpeedKmh:       s.SpeedKmh,
		AccelKmhPerSec: s.AccelKmhPerSec,
	}
	if !math.IsNaN(s.ElapsedSeconds) {
		v := s.ElapsedSeconds
		a.ElapsedSeconds = &v
	}
	if !math.IsNaN(s.BearingDeg) {
		v := s.BearingDeg
		a.BearingDeg = &v
	}

	return json.Marshal(a)
}
