package geo

import "math"

// Rect is a planar lat/lon bounding box as [x0, y0, x1, y1] with x
// along longitude and y along latitude.
type Rect [4]float64

func RectFrom(x0, y0, x1, y1 float64) Rect {
	return Rect{math.Min(x0, x1), math.Min(y0, y1), math.Max(x0, x1), math.Max(y0, y1)}
}

func (r Rect) W() float64 {
	return r[2] - r[0]
}

func (r Rect) H() float64 {
	return r[3] - r[1]
}

func (r Rect) X0() float64 {
	return r[0]
}

func (r Rect) Y0() float64 {
	return r[1]
}

func (r Rect) X1() float64 {
	return r[2]
}

func (r Rect) Y1() float64 {
	return r[3]
}

func (r Rect) Center() XY {
	return XY{(r[0] + r[2]) / 2, (r[1] + r[3]) / 2}
}

// Expand grows the rectangle by the given margin on every side.
func (r Rect) Expand(margin float64) Rect {
	return Rect{r[0] - margin, r[1] - margin, r[2] + margin, r[3] + margin}
}

// XY is a planar point, [lon, lat] when it represents coordinates.
type XY [2]float64

func (p XY) X() float64 {
	return p[0]
}

func (p XY) Y() float64 {
	return p[1]
}

func (p XY) In(r Rect) bool {
	return p[0] >= r[0] && p[0] < r[2] && p[1] >= r[1] && p[1] < r[3]
}

// BoundsOf returns the bounding box of the given points, with
// longitude on the x axis. The zero Rect is returned for no points.
func BoundsOf(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{points[0].Lon(), points[0].Lat(), points[0].Lon(), points[0].Lat()}
	for _, p := range points[1:] {
		r[0] = math.Min(r[0], p.Lon())
		r[1] = math.Min(r[1], p.Lat())
		r[2] = math.Max(r[2], p.Lon())
		r[3] = math.Max(r[3], p.Lat())
	}
	return r
}
