package export

import (
	"encoding/json"

	"github.com/Wagner-UFRRJ/agrimensura/domain/geo"
)

// JSON renders a pretty-printed array of objects with keys latitude,
// longitude and altitude, in that order.
type JSON struct{}

type jsonPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

func (JSON) Export(points []geo.Point) (string, error) {
	out := make([]jsonPoint, len(points))
	for i, p := range points {
		out[i] = jsonPoint{
			Latitude:  p.Lat(),
			Longitude: p.Lon(),
			Altitude:  p.Alt(),
		}
	}
	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func (JSON) Mime() string {
	return "application/json"
}
