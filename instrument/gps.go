package instrument

import (
	"math"

	"github.com/Wagner-UFRRJ/agrimensura/domain/geo"
)

// earthRadius is the mean earth radius in meters of the spherical
// model used by GPS receivers.
const earthRadius = 6371000.0

// GPSReceiver measures great-circle distances on a spherical earth
// using the Haversine formula. Altitude does not enter the computation,
// a known limitation of the model.
type GPSReceiver struct {
	model string
}

func NewGPSReceiver(model string) GPSReceiver {
	return GPSReceiver{model: model}
}

func (g GPSReceiver) Model() string {
	return g.model
}

func (g GPSReceiver) MeasureDistance(a, b geo.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}
