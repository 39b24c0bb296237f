package routing

import (
	"math"

	"github.com/golang/geo/s1"
	da "github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/geo"
)

// MarkDispreferredEdges. marks the edges around waypoint whose heading deviates from azimuth (radians) by more
// than tolerance. with incoming false the heading of leaving the waypoint is checked, with incoming true the
// heading of arriving at it. returns the number of edges marked. NoPreference marks nothing.
func MarkDispreferredEdges(graph *da.QueryGraph, waypoint da.Index, azimuth, tolerance float64, incoming bool) (int, error) {
	if err := ValidateAzimuth(azimuth); err != nil {
		return 0, err
	}
	if math.IsNaN(azimuth) {
		return 0, nil
	}

	preferred := s1.Angle(azimuth)
	maxDelta := s1.Angle(tolerance)
	from := graph.GetVertex(waypoint)
	fromCoord := geo.NewCoordinate(from.GetLat(), from.GetLon())

	markers := graph.GetMarkers()
	marked := 0
	graph.ForEdgesOf(waypoint, func(e da.EdgeState) {
		to := graph.GetVertex(e.GetAdjNode())
		heading := geo.Azimuth(fromCoord, geo.NewCoordinate(to.GetLat(), to.GetLon()))
		// e leaves the waypoint when traversed in its own direction, the opposite traversal arrives there.
		reverse := e.IsReversed()
		if incoming {
			heading = geo.ReverseAzimuth(heading)
			reverse = !reverse
		}
		if geo.AzimuthDelta(heading, preferred) > maxDelta {
			markers.Set(e.GetEdge(), reverse, true)
			marked++
		}
	})
	return marked, nil
}
