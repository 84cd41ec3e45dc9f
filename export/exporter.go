// Package export serializes point sequences to text formats. Exporters
// are stateless and never mutate their input, the point order of the
// output always matches the input order.
package export

import (
	"fmt"

	"github.com/Wagner-UFRRJ/agrimensura/domain/geo"
)

type Exporter interface {
	Export(points []geo.Point) (string, error)

	// Mime returns the content type of the produced text
	Mime() string
}

// UnknownFormat is returned by ForFormat for an unrecognized name.
type UnknownFormat string

func (err UnknownFormat) Error() string {
	return fmt.Sprintf("Unknown export format '%s'", string(err))
}

// ForFormat returns the exporter for the given format name.
func ForFormat(name string) (Exporter, error) {
	switch name {
	case "csv":
		return CSV{}, nil
	case "json":
		return JSON{}, nil
	case "geojson":
		return GeoJSON{}, nil
	case "svg":
		return SVG{}, nil
	default:
		return nil, UnknownFormat(name)
	}
}
