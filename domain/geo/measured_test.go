package geo_test

import (
	"testing"

	"github.com/Wagner-UFRRJ/agrimensura/domain/geo"
	"github.com/stretchr/testify/assert"
)

func TestMeasuredPointDescribe(t *testing.T) {
	m, err := geo.NewMeasuredPoint(10.5, 20.25, 5, 0.02)
	if err != nil {
		t.Fatalf("Unexpected validation failure: %s", err)
	}
	assert.Equal(t, "Lat: 10.5, Lon: 20.25, Alt: 5 m (±0.02 m)", m.Describe())
}

func TestMeasuredPointValidation(t *testing.T) {
	_, err := geo.NewMeasuredPoint(100, 0, 0, 1)
	var verr *geo.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestMeasuredPointPrecisionUnconstrained(t *testing.T) {
	// precision carries no range check, negative values are kept as given
	m, err := geo.NewMeasuredPoint(0, 0, 0, -1)
	assert.NoError(t, err)
	assert.Equal(t, -1.0, m.Precision)
}

func TestDescriberContract(t *testing.T) {
	var points = []geo.Describer{
		geo.MustNewPoint(1, 2, 3),
		geo.MeasuredPoint{Point: geo.MustNewPoint(1, 2, 3), Precision: 0.5},
	}
	for _, d := range points {
		assert.NotEmpty(t, d.Describe())
	}
}
