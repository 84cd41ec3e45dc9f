package instrument

import (
	"math"

	"github.com/Wagner-UFRRJ/agrimensura/domain/geo"
)

// Degree-to-meter scale factors of the local planar approximation.
// Only reasonable for small areas away from the poles, this is not a
// true map projection.
const (
	metersPerDegreeLon = 111320.0
	metersPerDegreeLat = 110540.0
)

// TotalStation measures over a local planar approximation: degree
// differences are scaled to meters and combined with the altitude
// difference into a 3D Euclidean distance.
type TotalStation struct {
	model string
}

func NewTotalStation(model string) TotalStation {
	return TotalStation{model: model}
}

func (t TotalStation) Model() string {
	return t.model
}

func (t TotalStation) MeasureDistance(a, b geo.Point) float64 {
	dx := (b.Lon() - a.Lon()) * metersPerDegreeLon
	dy := (b.Lat() - a.Lat()) * metersPerDegreeLat
	dz := b.Alt() - a.Alt()
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// MeasureAzimuth returns the bearing in degrees from a to b, always
// within [0,360). True modulo is used so that negative raw angles from
// Atan2 normalize into the upper half of the circle.
func (t TotalStation) MeasureAzimuth(a, b geo.Point) float64 {
	dx := (b.Lon() - a.Lon()) * metersPerDegreeLon
	dy := (b.Lat() - a.Lat()) * metersPerDegreeLat
	deg := math.Atan2(dx, dy) * 180 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
