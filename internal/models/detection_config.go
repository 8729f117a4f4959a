package models

import "math"

// DetectionConfig holds all tunable parameters of a wave detection run.
//
// Out-of-range values are clamped by Normalize rather than rejected: a bad
// slider value from the UI collaborator should degrade the detection, not
// fail the request.
type DetectionConfig struct {
	// Entry threshold in km/h. In adaptive mode this is the floor below
	// which the adaptive threshold never drops.
	FixedThresholdKmh float64 `json:"fixedThresholdKmh"`

	// Minimum cumulative duration for a candidate to be emitted.
	MinDurationSeconds float64 `json:"minDurationSeconds"`

	// Adaptive thresholding: max(fixed, median + kSigma*stddev) over a
	// trailing time window of segment speeds.
	UseAdaptive   bool    `json:"useAdaptive"`
	WindowSeconds float64 `json:"windowSeconds"`
	KSigma        float64 `json:"kSigma"`

	// End-by-decay: a wave closes only after speed has dropped at least
	// DropPercent percent from the wave's peak for EndGraceSeconds.
	DropPercent     float64 `json:"dropPercent"`
	EndGraceSeconds float64 `json:"endGraceSeconds"`

	// Direction stability: waves whose bearing samples have a circular
	// standard deviation above this are discarded as meandering.
	DirectionStdMaxDegrees float64 `json:"directionStdMaxDegrees"`

	// Optional post-filter on the mean travel direction.
	DirectionFilterEnabled    bool    `json:"directionFilterEnabled"`
	TargetDirectionDegrees    float64 `json:"targetDirectionDegrees"`
	DirectionToleranceDegrees float64 `json:"directionToleranceDegrees"`
}

// DefaultDetectionConfig returns the parameter set used when the caller
// supplies nothing.
func DefaultDetectionConfig() DetectionConfig {
	return DetectionConfig{
		FixedThresholdKmh:         12,
		MinDurationSeconds:        4,
		UseAdaptive:               true,
		WindowSeconds:             60,
		KSigma:                    1.5,
		DropPercent:               55,
		EndGraceSeconds:           3,
		DirectionStdMaxDegrees:    30,
		DirectionFilterEnabled:    false,
		TargetDirectionDegrees:    0,
		DirectionToleranceDegrees: 45,
	}
}

// Normalize clamps every parameter into its valid range, defaulting
// non-finite values. It never returns an error.
func (c *DetectionConfig) Normalize() {
	def := DefaultDetectionConfig()

	c.FixedThresholdKmh = clampMin(c.FixedThresholdKmh, 0, def.FixedThresholdKmh)
	c.MinDurationSeconds = clampMin(c.MinDurationSeconds, 0, def.MinDurationSeconds)
	if !isFinite(c.WindowSeconds) || c.WindowSeconds <= 0 {
		c.WindowSeconds = def.WindowSeconds
	}
	c.KSigma = clampMin(c.KSigma, 0, def.KSigma)
	c.DropPercent = clampRange(c.DropPercent, 0, 100, def.DropPercent)
	c.EndGraceSeconds = clampMin(c.EndGraceSeconds, 0, def.EndGraceSeconds)
	c.DirectionStdMaxDegrees = clampRange(c.DirectionStdMaxDegrees, 0, 180, def.DirectionStdMaxDegrees)
	c.DirectionToleranceDegrees = clampRange(c.DirectionToleranceDegrees, 0, 180, def.DirectionToleranceDegrees)

	if !isFinite(c.TargetDirectionDegrees) {
		c.TargetDirectionDegrees = def.TargetDirectionDegrees
	} else {
		c.TargetDirectionDegrees = math.Mod(c.TargetDirectionDegrees, 360)
		if c.TargetDirectionDegrees < 0 {
			c.TargetDirectionDegrees += 360
		}
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampMin(v, min, def float64) float64 {
	if !isFinite(v) {
		return def
	}
	if v < min {
		return min
	}
	return v
}

func clampRange(v, min, max, def float64) float64 {
	if !isFinite(v) {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
