package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/wavescout/wavetrack-backend-go/internal/models"
)

// gpxFile mirrors the subset of GPX 1.1 the detector needs. All tracks and
// track segments are flattened into one point sequence in document order.
type gpxFile struct {
	XMLName xml.Name   `xml:"gpx"`
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
	Lat       float64    `xml:"lat,attr"`
	Lon       float64    `xml:"lon,attr"`
	Elevation *float64   `xml:"ele"`
	Time      *time.Time `xml:"time"`
}

// ParseGPX parses a GPX document into an ordered point sequence.
func ParseGPX(r io.Reader) ([]models.Point, error) {
	var doc gpxFile
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse GPX: %w", err)
	}

	var points []models.Point
	for _, track := range doc.Tracks {
		for _, seg := range track.Segments {
			for _, pt := range seg.Points {
				if !validPoint(pt.Lat, pt.Lon) {
					continue
				}
				p := models.Point{
					Lat:       pt.Lat,
					Lon:       pt.Lon,
					Elevation: pt.Elevation,
				}
				if pt.Time != nil && !pt.Time.IsZero() {
					t := pt.Time.UTC()
					p.Time = &t
				}
				points = append(points, p)
			}
		}
	}

	return requireMinPoints(points)
}
