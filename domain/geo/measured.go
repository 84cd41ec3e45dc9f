package geo

import "fmt"

// MeasuredPoint is a point together with the uncertainty of its
// measurement in meters. Precision carries no constraint, a negative
// value is stored as given.
type MeasuredPoint struct {
	Point
	Precision float64
}

// NewMeasuredPoint validates latitude and longitude exactly like
// NewPoint does.
func NewMeasuredPoint(lat, lon, alt, precision float64) (MeasuredPoint, error) {
	p, err := NewPoint(lat, lon, alt)
	if err != nil {
		return MeasuredPoint{}, err
	}
	return MeasuredPoint{Point: p, Precision: precision}, nil
}

func (m MeasuredPoint) Describe() string {
	return m.Point.Describe() + fmt.Sprintf(" (±%v m)", m.Precision)
}
