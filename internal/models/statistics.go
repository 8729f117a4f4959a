package models

// SessionStats aggregates a whole session for the summary panel.
type SessionStats struct {
	TotalDistanceMeters  float64      `json:"totalDistanceMeters"`
	TotalDurationSeconds float64      `json:"totalDurationSeconds"`
	AverageKmh           float64      `json:"averageKmh"`
	MaxKmh               float64      `json:"maxKmh"`
	WaveCount            int          `json:"waveCount"`
	BestWave             *WaveSummary `json:"bestWave,omitempty"`
}

// SessionResponse is the full detection result exposed to collaborators.
type SessionResponse struct {
	Name                string       `json:"name"`
	PointCount          int          `json:"pointCount"`
	SegmentCount        int          `json:"segmentCount"`
	WaveCount           int          `json:"waveCount"`
	RejectedByDirection int          `json:"rejectedByDirection"`
	Stats               SessionStats `json:"stats"`
}
