package geo_test

import (
	"testing"

	"github.com/Wagner-UFRRJ/agrimensura/domain/geo"
	"github.com/stretchr/testify/assert"
)

func TestPointsAndRect(t *testing.T) {
	inside := geo.XY{0, 0}
	outside := geo.XY{2, 0}
	bounds := geo.Rect{-1, -1, 1, 2}
	assert.True(t, inside.In(bounds))
	assert.False(t, outside.In(bounds))
}

func TestBoundsOf(t *testing.T) {
	points := []geo.Point{
		geo.MustNewPoint(10, -20, 0),
		geo.MustNewPoint(-5, 30, 0),
		geo.MustNewPoint(2, 3, 0),
	}
	bounds := geo.BoundsOf(points)
	assert.Equal(t, geo.RectFrom(-20, -5, 30, 10), bounds)
	assert.Equal(t, 50.0, bounds.W())
	assert.Equal(t, 15.0, bounds.H())
}

func TestBoundsOfNoPoints(t *testing.T) {
	assert.Equal(t, geo.Rect{}, geo.BoundsOf(nil))
}
