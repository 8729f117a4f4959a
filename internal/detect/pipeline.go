package detect

import (
	"fmt"

	"github.com/wavescout/wavetrack-backend-go/internal/models"
)

// Result is the output of one full detection run.
type Result struct {
	Segments            []models.Segment
	Waves               []models.Wave
	RejectedByDirection int
	Stats               models.SessionStats
}

// Run executes the full pipeline over an ordered point sequence:
// segments -> adaptive window stats -> candidate waves -> stability
// filter -> enrichment -> optional direction post-filter -> aggregates.
//
// Run is pure and idempotent: identical points and config always produce
// an identical result. The only error condition is an input with fewer
// than two points; every degenerate-data condition inside the pipeline
// resolves to safe defaults instead.
func Run(points []models.Point, cfg models.DetectionConfig) (*Result, error) {
	cfg.Normalize()

	if len(points) < 2 {
		return nil, fmt.Errorf("detect: need at least 2 points, got %d", len(points))
	}

	segments := ComputeSegments(points)

	var windowStats []WindowStat
	if cfg.UseAdaptive {
		windowStats = ComputeWindowStats(segments, cfg.WindowSeconds)
	}

	candidates := DetectWaves(segments, windowStats, cfg)
	stable := FilterByStability(candidates, cfg.DirectionStdMaxDegrees)
	waves := EnrichWaves(points, segments, stable)

	rejected := 0
	if cfg.DirectionFilterEnabled {
		waves, rejected = FilterByDirection(waves, cfg.TargetDirectionDegrees, cfg.DirectionToleranceDegrees)
	}

	return &Result{
		Segments:            segments,
		Waves:               waves,
		RejectedByDirection: rejected,
		Stats:               ComputeSessionStats(segments, waves),
	}, nil
}
