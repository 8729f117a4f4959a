package models

import "time"

// Point represents a single GPS fix from a recorded session.
// Elevation and Time are optional: a nil Time means the fix carried no
// usable timestamp and any segment touching it gets zero speed.
type Point struct {
	Lat       float64    `json:"lat"`
	Lon       float64    `json:"lon"`
	Elevation *float64   `json:"ele,omitempty"`
	Time      *time.Time `json:"time,omitempty"`
}

// HasTime reports whether the point carries a valid timestamp.
func (p Point) HasTime() bool {
	return p.Time != nil && !p.Time.IsZero()
}
