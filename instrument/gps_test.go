package instrument_test

import (
	"testing"

	"github.com/Wagner-UFRRJ/agrimensura/domain/geo"
	"github.com/Wagner-UFRRJ/agrimensura/instrument"
	"github.com/stretchr/testify/assert"
)

func TestHaversineSamePointIsZero(t *testing.T) {
	gps := instrument.NewGPSReceiver("Garmin GPSMAP 66")
	var points = []geo.Point{
		geo.MustNewPoint(0, 0, 0),
		geo.MustNewPoint(-22.765, -43.685, 33),
		geo.MustNewPoint(90, 180, -10),
	}
	for _, p := range points {
		assert.InDelta(t, 0, gps.MeasureDistance(p, p), 1e-9)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	gps := instrument.NewGPSReceiver("Garmin GPSMAP 66")
	var data = []struct {
		a, b geo.Point
	}{
		{geo.MustNewPoint(0, 0, 0), geo.MustNewPoint(0, 1, 0)},
		{geo.MustNewPoint(-22.765, -43.685, 33), geo.MustNewPoint(-22.9068, -43.1729, 2)},
		{geo.MustNewPoint(48.8566, 2.3522, 35), geo.MustNewPoint(-33.8688, 151.2093, 58)},
	}
	for _, tt := range data {
		assert.InDelta(t, gps.MeasureDistance(tt.a, tt.b), gps.MeasureDistance(tt.b, tt.a), 1e-9)
	}
}

// One degree of longitude at the equator spans R*pi/180 on the
// spherical model, about 111.195 km with R=6371km.
func TestHaversineOneDegreeAtEquator(t *testing.T) {
	gps := instrument.NewGPSReceiver("Garmin GPSMAP 66")
	d := gps.MeasureDistance(geo.MustNewPoint(0, 0, 0), geo.MustNewPoint(0, 1, 0))
	assert.InDelta(t, 111194.93, d, 0.01)
}

func TestHaversineIgnoresAltitude(t *testing.T) {
	gps := instrument.NewGPSReceiver("Garmin GPSMAP 66")
	a := geo.MustNewPoint(10, 10, 0)
	b := geo.MustNewPoint(10, 10, 2500)
	assert.InDelta(t, 0, gps.MeasureDistance(a, b), 1e-9)
}

func TestForName(t *testing.T) {
	gps, err := instrument.ForName("gps", "Trimble R12")
	assert.NoError(t, err)
	assert.Equal(t, "Trimble R12", gps.Model())

	ts, err := instrument.ForName("totalstation", "Leica TS16")
	assert.NoError(t, err)
	assert.Equal(t, "Leica TS16", ts.Model())
	_, ok := ts.(instrument.AzimuthMeasurer)
	assert.True(t, ok, "A total station measures azimuths")

	_, err = instrument.ForName("theodolite", "any")
	assert.Error(t, err)
}
