// Package geo holds the geographic primitives of a survey: validated
// points with latitude, longitude and altitude.
package geo

import (
	"encoding/json"
	"fmt"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ValidationError reports a coordinate outside of its allowed range.
type ValidationError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s out of range: %v not in [%v,%v]", e.Field, e.Value, e.Min, e.Max)
}

func checkLatitude(v float64) error {
	if v < MinLatitude || v > MaxLatitude {
		return &ValidationError{Field: "latitude", Value: v, Min: MinLatitude, Max: MaxLatitude}
	}
	return nil
}

func checkLongitude(v float64) error {
	if v < MinLongitude || v > MaxLongitude {
		return &ValidationError{Field: "longitude", Value: v, Min: MinLongitude, Max: MaxLongitude}
	}
	return nil
}

// Point is a surveyed position. Latitude and longitude are guaranteed
// to be within range once the point exists, altitude is unconstrained.
// The id is assigned when the point is added to a project.
type Point struct {
	id  int
	lat float64
	lon float64
	alt float64
}

// NewPoint creates a point after validating latitude and longitude.
func NewPoint(lat, lon, alt float64) (Point, error) {
	if err := checkLatitude(lat); err != nil {
		return Point{}, err
	}
	if err := checkLongitude(lon); err != nil {
		return Point{}, err
	}
	return Point{lat: lat, lon: lon, alt: alt}, nil
}

// MustNewPoint is NewPoint panicking on invalid coordinates, for use
// in tests and static initialization.
func MustNewPoint(lat, lon, alt float64) Point {
	p, err := NewPoint(lat, lon, alt)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Point) ID() int      { return p.id }
func (p Point) Lat() float64 { return p.lat }
func (p Point) Lon() float64 { return p.lon }
func (p Point) Alt() float64 { return p.alt }

func (p *Point) SetID(id int) { p.id = id }

// SetLat re-runs the same validation as NewPoint.
func (p *Point) SetLat(v float64) error {
	if err := checkLatitude(v); err != nil {
		return err
	}
	p.lat = v
	return nil
}

// SetLon re-runs the same validation as NewPoint.
func (p *Point) SetLon(v float64) error {
	if err := checkLongitude(v); err != nil {
		return err
	}
	p.lon = v
	return nil
}

func (p *Point) SetAlt(v float64) {
	p.alt = v
}

// Describer is the read contract shared by plain and measured points.
type Describer interface {
	Describe() string
}

// Describe renders the point for human consumption. Numbers are in
// shortest round-trip form, the convention used by all text output of
// this module.
func (p Point) Describe() string {
	return fmt.Sprintf("Lat: %v, Lon: %v, Alt: %v m", p.lat, p.lon, p.alt)
}

func (p Point) String() string {
	return fmt.Sprintf("[%v;%v;%v]", p.lat, p.lon, p.alt)
}

// ISO6709 renders the point in ISO 6709 Annex H string form.
func (p Point) ISO6709() string {
	return fmt.Sprintf("%+010.6f%+011.6f%+.3f/", p.lat, p.lon, p.alt)
}

type pointJSON struct {
	ID        int     `json:"id,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(pointJSON{
		ID:        p.id,
		Latitude:  p.lat,
		Longitude: p.lon,
		Altitude:  p.alt,
	})
}

func (p *Point) UnmarshalJSON(buf []byte) error {
	var data pointJSON
	if err := json.Unmarshal(buf, &data); err != nil {
		return err
	}
	if err := checkLatitude(data.Latitude); err != nil {
		return err
	}
	if err := checkLongitude(data.Longitude); err != nil {
		return err
	}
	p.id = data.ID
	p.lat = data.Latitude
	p.lon = data.Longitude
	p.alt = data.Altitude
	return nil
}
