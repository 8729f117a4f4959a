// Package export serializes a session and its detected waves back into a
// GPX document: one primary track with the full point sequence, plus one
// track per wave so external tools can show each ride separately.
package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/wavescout/wavetrack-backend-go/internal/models"
)

type gpxDoc struct {
	XMLName xml.Name   `xml:"gpx"`
	XMLNS   string     `xml:"xmlns,attr"`
	Version string     `xml:"version,attr"`
	Creator string     `xml:"creator,attr"`
	Tracks  []gpxTrack `xml:"trk"`
}

type gpxTrack struct {
	Name     string      `xml:"name"`
	Segments []gpxTrkSeg `xml:"trkseg"`
}

type gpxTrkSeg struct {
	Points []gpxTrkPt `xml:"trkpt"`
}

type gpxTrkPt struct {
	Lat       float64  `xml:"lat,attr"`
	Lon       float64  `xml:"lon,attr"`
	Elevation *float64 `xml:"ele,omitempty"`
	Time      string   `xml:"time,omitempty"`
}

// WriteGPX writes the session points as the primary track followed by one
// track per wave. Wave track names embed the ordinal, distance and peak
// speed. Timestamps are RFC3339 UTC.
func WriteGPX(w io.Writer, name string, points []models.Point, waves []models.Wave) error {
	doc := gpxDoc{
		XMLNS:   "http://www.topografix.com/GPX/1/1",
		Version: "1.1",
		Creator: "wavetrack",
	}

	if name == "" {
		name = "Session"
	}
	doc.Tracks = append(doc.Tracks, gpxTrack{
		Name:     name,
		Segments: []gpxTrkSeg{{Points: toTrkPts(points)}},
	})

	for _, wave := range waves {
		start, end := wave.StartPointIdx, wave.EndPointIdx
		if start < 0 || end >= len(points) || start > end {
			continue
		}
		doc.Tracks = append(doc.Tracks, gpxTrack{
			Name: fmt.Sprintf("Wave %d - %.0f m @ %.1f km/h",
				wave.Ordinal, wave.DistanceMeters, wave.PeakSpeedKmh),
			Segments: []gpxTrkSeg{{Points: toTrkPts(points[start : end+1])}},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode GPX: %w", err)
	}
	return enc.Flush()
}

func toTrkPts(points []models.Point) []gpxTrkPt {
	pts := make([]gpxTrkPt, 0, len(points))
	for _, p := range points {
		tp := gpxTrkPt{Lat: p.Lat, Lon: p.Lon, Elevation: p.Elevation}
		if p.HasTime() {
			tp.Time = p.Time.UTC().Format(time.RFC3339)
		}
		pts = append(pts, tp)
	}
	return pts
}
