package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/Wagner-UFRRJ/agrimensura/domain/geo"
	svg "github.com/ajstarks/svgo"
)

var (
	strokeGrid = []string{`stroke="gray"`, `stroke-width="0.5%"`, `fill="none"`}
	strokeMark = []string{`stroke="red"`, `stroke-width="0.5%"`, `fill="none"`}
)

// SVG plots the point sequence on a lat/lon canvas, latitude growing
// upwards. Altitude is not represented.
type SVG struct{}

func (SVG) Export(points []geo.Point) (string, error) {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	bounds := geo.BoundsOf(points)
	margin := math.Max(bounds.W(), bounds.H()) * 0.05
	if margin == 0 {
		margin = 1
	}
	view := bounds.Expand(margin)

	// SVG y grows downwards, flip the canvas and mirror the viewBox
	// vertically so that paths can use latitudes directly
	canvas.Startpercent(100, 100, fmt.Sprintf(`viewBox="%f %f %f %f"`, view.X0(), -view.Y1(), view.W(), view.H()))
	canvas.Gtransform("scale(1,-1)")
	canvas.Path(rectPath(bounds), strokeGrid...)
	size := math.Max(view.W(), view.H()) / 50
	for _, p := range points {
		canvas.Path(crossPath(p, size), strokeMark...)
	}
	canvas.Gend()
	canvas.End()
	return buf.String(), nil
}

func (SVG) Mime() string {
	return "image/svg+xml"
}

func rectPath(bounds geo.Rect) string {
	return fmt.Sprintf("M %f %f l 0 %f l %f 0 l 0 %f Z", bounds.X0(), bounds.Y0(), bounds.H(), bounds.W(), -bounds.H())
}

func crossPath(p geo.Point, size float64) string {
	half := size / 2
	return fmt.Sprintf("M %f %f l %f 0 M %f %f l 0 %f",
		p.Lon()-half, p.Lat(), size,
		p.Lon(), p.Lat()-half, size)
}
