package export

import (
	"strconv"
	"strings"

	"github.com/Wagner-UFRRJ/agrimensura/domain/geo"
)

// CSV renders one line per point after a fixed header, every line
// terminated by a newline. Numbers are in shortest round-trip form.
type CSV struct{}

const csvHeader = "Latitude,Longitude,Altitude\n"

func (CSV) Export(points []geo.Point) (string, error) {
	var out strings.Builder
	out.WriteString(csvHeader)
	for _, p := range points {
		out.WriteString(formatFloat(p.Lat()))
		out.WriteByte(',')
		out.WriteString(formatFloat(p.Lon()))
		out.WriteByte(',')
		out.WriteString(formatFloat(p.Alt()))
		out.WriteByte('\n')
	}
	return out.String(), nil
}

func (CSV) Mime() string {
	return "text/csv"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
