package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/wavescout/wavetrack-backend-go/internal/models"
)

// ParseCSV parses a header-driven CSV export into an ordered point
// sequence. Recognized columns: lat/latitude, lon/lng/longitude,
// ele/elevation/altitude, time/timestamp (RFC3339 or unix seconds).
// Rows with unparseable coordinates are skipped.
func ParseCSV(r io.Reader) ([]models.Point, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	latCol, lonCol, eleCol, timeCol := -1, -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "lat", "latitude":
			latCol = i
		case "lon", "lng", "longitude":
			lonCol = i
		case "ele", "elevation", "altitude":
			eleCol = i
		case "time", "timestamp":
			timeCol = i
		}
	}
	if latCol < 0 || lonCol < 0 {
		return nil, fmt.Errorf("CSV header missing lat/lon columns")
	}

	var points []models.Point
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if latCol >= len(record) || lonCol >= len(record) {
			continue
		}

		lat, errLat := strconv.ParseFloat(strings.TrimSpace(record[latCol]), 64)
		lon, errLon := strconv.ParseFloat(strings.TrimSpace(record[lonCol]), 64)
		if errLat != nil || errLon != nil || !validPoint(lat, lon) {
			continue
		}

		p := models.Point{Lat: lat, Lon: lon}

		if eleCol >= 0 && eleCol < len(record) {
			if ele, err := strconv.ParseFloat(strings.TrimSpace(record[eleCol]), 64); err == nil {
				p.Elevation = &ele
			}
		}
		if timeCol >= 0 && timeCol < len(record) {
			if t, ok := parseTimestamp(strings.TrimSpace(record[timeCol])); ok {
				p.Time = &t
			}
		}

		points = append(points, p)
	}

	return requireMinPoints(points)
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil && unix > 0 {
		return time.Unix(unix, 0).UTC(), true
	}
	return time.Time{}, false
}
