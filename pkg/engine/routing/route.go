package routing

import (
	da "github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/geo"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/util"
	"github.com/twpayne/go-polyline"
)

// RouteResult. Weight is in the unit of the weighting (seconds or meter), Distance in meter.
type RouteResult struct {
	Waypoints []da.Index
	Legs      []*Path
	Points    []geo.Coordinate
	Weight    float64
	Distance  float64
	weighting string
}

func (r *RouteResult) GetWeighting() string {
	return r.weighting
}

// TravelTimeMinutes. only meaningful for time based weightings.
func (r *RouteResult) TravelTimeMinutes() float64 {
	return util.SecondsToMinutes(r.Weight)
}

// Polyline. encoded polyline (precision 5) of the route geometry.
func (r *RouteResult) Polyline() string {
	coords := make([][]float64, len(r.Points))
	for i, p := range r.Points {
		coords[i] = []float64{p.Lat, p.Lon}
	}
	return string(polyline.EncodeCoords(coords))
}
