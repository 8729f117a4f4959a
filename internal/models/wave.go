package models

import "time"

// Bounds is the minimal axis-aligned lat/lon box covering a wave's points.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MinLon float64 `json:"minLon"`
	MaxLat float64 `json:"maxLat"`
	MaxLon float64 `json:"maxLon"`
}

// Wave is a detected, validated and enriched wave ride, ready for the
// table/map/export collaborators.
//
// Segment indices are inclusive; the corresponding point slice runs from
// StartPointIdx to EndPointIdx inclusive (one more point than segments).
// MeanDirectionDeg and DirectionStdDeg are nil when the wave collected no
// bearing samples; AvgSpeedKmh is nil when the cumulative duration is 0.
type Wave struct {
	Ordinal          int        `json:"ordinal"`
	StartSegmentIdx  int        `json:"startSegmentIdx"`
	EndSegmentIdx    int        `json:"endSegmentIdx"`
	StartPointIdx    int        `json:"startPointIdx"`
	EndPointIdx      int        `json:"endPointIdx"`
	Bounds           Bounds     `json:"bounds"`
	StartPoint       Point      `json:"startPoint"`
	MidPoint         Point      `json:"midPoint"`
	DistanceMeters   float64    `json:"distanceMeters"`
	DurationSeconds  float64    `json:"durationSeconds"`
	AvgSpeedKmh      *float64   `json:"avgSpeedKmh,omitempty"`
	PeakSpeedKmh     float64    `json:"peakSpeedKmh"`
	PeakSegmentIdx   int        `json:"peakSegmentIdx"`
	PeakOffset       int        `json:"peakOffset"`
	MeanDirectionDeg *float64   `json:"meanDirectionDeg,omitempty"`
	DirectionStdDeg  *float64   `json:"directionStdDeg,omitempty"`
	SpeedSeriesKmh   []float64  `json:"speedSeriesKmh"`
	StartTime        *time.Time `json:"startTime,omitempty"`
}

// WaveSummary is the compact best-wave record used in aggregate stats.
type WaveSummary struct {
	Ordinal         int     `json:"ordinal"`
	PeakSpeedKmh    float64 `json:"peakSpeedKmh"`
	DistanceMeters  float64 `json:"distanceMeters"`
	DurationSeconds float64 `json:"durationSeconds"`
}
