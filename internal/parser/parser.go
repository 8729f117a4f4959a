// Package parser turns uploaded GPX or CSV session files into an ordered
// point sequence for the detection pipeline.
//
// Parsing failures are surfaced as a single descriptive error and never
// partially load a session; individual malformed fixes are skipped so one
// bad row does not reject a whole recording.
package parser

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/wavescout/wavetrack-backend-go/internal/models"
)

// Parse decodes a session file by extension (.gpx or .csv) and returns its
// valid points in recorded order. At least two valid points are required.
func Parse(r io.Reader, filename string) ([]models.Point, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gpx":
		return ParseGPX(r)
	case ".csv":
		return ParseCSV(r)
	default:
		return nil, fmt.Errorf("unsupported file type %q (expected .gpx or .csv)", filepath.Ext(filename))
	}
}

// validPoint rejects fixes with non-finite or out-of-range coordinates.
func validPoint(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func requireMinPoints(points []models.Point) ([]models.Point, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("track contains %d valid points, need at least 2", len(points))
	}
	return points, nil
}
