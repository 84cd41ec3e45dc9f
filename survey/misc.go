package survey

import (
	"fmt"
	"math/rand"

	"github.com/Wagner-UFRRJ/agrimensura/domain/geo"
)

// RandomProject returns a project with the given number of random but
// valid points, for use in tests and benchmarks.
func RandomProject(points int) *Project {
	p := NewProject(fmt.Sprintf("survey-%08d", rand.Uint32()))
	for i := 0; i < points; i++ {
		p.AddPoint(geo.MustNewPoint(
			(rand.Float64()-0.5)*180,
			(rand.Float64()-0.5)*360,
			rand.Float64()*1000))
	}
	return p
}
