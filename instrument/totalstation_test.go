package instrument_test

import (
	"testing"

	"github.com/Wagner-UFRRJ/agrimensura/domain/geo"
	"github.com/Wagner-UFRRJ/agrimensura/instrument"
	"github.com/stretchr/testify/assert"
)

func TestPlanarDistanceVerticalOnly(t *testing.T) {
	ts := instrument.NewTotalStation("Leica TS16")
	a := geo.MustNewPoint(0, 0, 0)
	b := geo.MustNewPoint(0, 0, 10)
	assert.Equal(t, 10.0, ts.MeasureDistance(a, b))
}

func TestPlanarDistanceScaleFactors(t *testing.T) {
	ts := instrument.NewTotalStation("Leica TS16")
	origin := geo.MustNewPoint(0, 0, 0)
	assert.InDelta(t, 111320, ts.MeasureDistance(origin, geo.MustNewPoint(0, 1, 0)), 1e-6)
	assert.InDelta(t, 110540, ts.MeasureDistance(origin, geo.MustNewPoint(1, 0, 0)), 1e-6)
}

func TestPlanarDistanceSymmetry(t *testing.T) {
	ts := instrument.NewTotalStation("Leica TS16")
	a := geo.MustNewPoint(-22.9, -43.2, 12)
	b := geo.MustNewPoint(-22.91, -43.21, 74)
	assert.InDelta(t, ts.MeasureDistance(a, b), ts.MeasureDistance(b, a), 1e-9)
}

func TestAzimuthCardinalDirections(t *testing.T) {
	ts := instrument.NewTotalStation("Leica TS16")
	origin := geo.MustNewPoint(0, 0, 0)
	var data = []struct {
		name     string
		to       geo.Point
		expected float64
	}{
		{"north", geo.MustNewPoint(1, 0, 0), 0},
		{"east", geo.MustNewPoint(0, 1, 0), 90},
		{"south", geo.MustNewPoint(-1, 0, 0), 180},
		{"west", geo.MustNewPoint(0, -1, 0), 270},
	}
	for _, tt := range data {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ts.MeasureAzimuth(origin, tt.to), 1e-9)
		})
	}
}

// A target to the south-west yields a negative angle from Atan2, the
// normalization must bring it into [0,360).
func TestAzimuthNormalization(t *testing.T) {
	ts := instrument.NewTotalStation("Leica TS16")
	az := ts.MeasureAzimuth(geo.MustNewPoint(1, 1, 0), geo.MustNewPoint(0, 0, 0))
	assert.InDelta(t, 225.2014, az, 0.001)
}

func TestAzimuthAlwaysInRange(t *testing.T) {
	ts := instrument.NewTotalStation("Leica TS16")
	coords := []float64{-80, -45.5, -1, 0, 0.25, 30, 89}
	for _, latA := range coords {
		for _, lonA := range coords {
			for _, latB := range coords {
				for _, lonB := range coords {
					a := geo.MustNewPoint(latA, lonA, 0)
					b := geo.MustNewPoint(latB, lonB, 0)
					az := ts.MeasureAzimuth(a, b)
					if az < 0 || az >= 360 {
						t.Fatalf("Azimuth out of range for %s -> %s: %v", a, b, az)
					}
				}
			}
		}
	}
}
