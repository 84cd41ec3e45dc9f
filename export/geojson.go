package export

import (
	"encoding/json"

	"github.com/Wagner-UFRRJ/agrimensura/domain/geo"
)

// FeatureCollection is a minimal GeoJSON feature collection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Geometry   Geometry               `json:"geometry"`
}

type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [Lon, Lat, Alt]
}

// GeoJSON renders the point sequence as a FeatureCollection of Point
// features, in input order.
type GeoJSON struct{}

func (GeoJSON) Export(points []geo.Point) (string, error) {
	fc := FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, len(points)),
	}
	for i, p := range points {
		var properties map[string]interface{}
		if p.ID() != 0 {
			properties = map[string]interface{}{"id": p.ID()}
		}
		fc.Features[i] = Feature{
			Type:       "Feature",
			Properties: properties,
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{p.Lon(), p.Lat(), p.Alt()},
			},
		}
	}
	encoded, err := json.MarshalIndent(&fc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func (GeoJSON) Mime() string {
	return "application/geo+json"
}
