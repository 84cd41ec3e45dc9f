// Package instrument provides the distance measurement strategies used
// in a survey. Instruments are stateless beyond their model tag and can
// be exchanged freely.
package instrument

import (
	"fmt"

	"github.com/Wagner-UFRRJ/agrimensura/domain/geo"
)

// Instrument computes the distance in meters between two points. The
// result is a pure function of the coordinates and symmetric under
// argument swap.
type Instrument interface {
	Model() string
	MeasureDistance(a, b geo.Point) float64
}

// AzimuthMeasurer is implemented by instruments that can also measure
// the bearing from one point to another. Azimuths are directional and
// not symmetric.
type AzimuthMeasurer interface {
	MeasureAzimuth(a, b geo.Point) float64
}

// UnknownInstrument is returned by ForName for an unrecognized kind.
type UnknownInstrument string

func (err UnknownInstrument) Error() string {
	return fmt.Sprintf("Unknown instrument kind '%s'", string(err))
}

// ForName returns an instrument of the given kind carrying the given
// model tag. Recognized kinds are "gps" and "totalstation".
func ForName(kind, model string) (Instrument, error) {
	switch kind {
	case "gps":
		return NewGPSReceiver(model), nil
	case "totalstation":
		return NewTotalStation(model), nil
	default:
		return nil, UnknownInstrument(kind)
	}
}
