// Package survey holds projects, ordered collections of surveyed
// points with the operations delegating to instrument and exporter
// strategies.
package survey

import (
	"encoding/json"
	"time"

	"github.com/Wagner-UFRRJ/agrimensura/domain/geo"
	"github.com/Wagner-UFRRJ/agrimensura/export"
	"github.com/Wagner-UFRRJ/agrimensura/instrument"
	"github.com/google/uuid"
)

const currentSchema = 1

// ProjectID is the unique identifier of a project
type ProjectID string

// Project owns an ordered sequence of points. Insertion order is
// significant and duplicates are allowed. A project is not safe for
// concurrent mutation, callers in concurrent hosts must serialize
// AddPoint themselves.
type Project struct {
	schema  uint
	ID      ProjectID
	Name    string
	Created time.Time

	points []geo.Point
}

func NewProject(name string) *Project {
	return &Project{
		ID:      ProjectID(uuid.NewString()),
		Name:    name,
		Created: time.Now(),
	}
}

// AddPoint appends a copy of the given point to the project. Points
// without an id receive their 1-based insertion ordinal. The stored
// point is returned.
func (p *Project) AddPoint(pt geo.Point) geo.Point {
	if pt.ID() == 0 {
		pt.SetID(len(p.points) + 1)
	}
	p.points = append(p.points, pt)
	return pt
}

// Points returns a snapshot of the point sequence in insertion order.
// Mutating the returned slice does not affect the project.
func (p *Project) Points() []geo.Point {
	points := make([]geo.Point, len(p.points))
	copy(points, p.points)
	return points
}

func (p *Project) Len() int {
	return len(p.points)
}

// Export serializes the full current point sequence with the given
// exporter.
func (p *Project) Export(e export.Exporter) (string, error) {
	return e.Export(p.points)
}

// Leg is one measured segment of a traverse.
type Leg struct {
	From     int      `json:"from"`
	To       int      `json:"to"`
	Distance float64  `json:"distance_m"`
	Azimuth  *float64 `json:"azimuth_deg,omitempty"`
}

// Traverse measures every consecutive pair of points with the given
// instrument. Azimuths are included when the instrument can measure
// them.
func (p *Project) Traverse(inst instrument.Instrument) []Leg {
	if len(p.points) < 2 {
		return nil
	}
	az, hasAzimuth := inst.(instrument.AzimuthMeasurer)
	legs := make([]Leg, 0, len(p.points)-1)
	for i := 1; i < len(p.points); i++ {
		a, b := p.points[i-1], p.points[i]
		leg := Leg{
			From:     a.ID(),
			To:       b.ID(),
			Distance: inst.MeasureDistance(a, b),
		}
		if hasAzimuth {
			bearing := az.MeasureAzimuth(a, b)
			leg.Azimuth = &bearing
		}
		legs = append(legs, leg)
	}
	return legs
}

func (p *Project) MarshalJSON() ([]byte, error) {
	out := struct {
		Schema  uint        `json:"schema"`
		ID      ProjectID   `json:"id"`
		Name    string      `json:"name"`
		Created int64       `json:"createdUN"`
		Points  []geo.Point `json:"points"`
	}{
		Schema:  currentSchema,
		ID:      p.ID,
		Name:    p.Name,
		Created: p.Created.UnixNano(),
		Points:  p.points,
	}
	return json.Marshal(&out)
}

func (p *Project) UnmarshalJSON(buf []byte) error {
	var data struct {
		Schema  uint        `json:"schema"`
		ID      ProjectID   `json:"id"`
		Name    string      `json:"name"`
		Created int64       `json:"createdUN"`
		Points  []geo.Point `json:"points"`
	}
	if err := json.Unmarshal(buf, &data); err != nil {
		return err
	}
	p.schema = data.Schema
	p.ID = data.ID
	p.Name = data.Name
	if data.Created != 0 {
		p.Created = time.Unix(data.Created/1e9, data.Created%1e9)
	}
	p.points = data.Points
	return nil
}
