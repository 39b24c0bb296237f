package routing

import (
	da "github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/encoding"
)

// MarkStopoverTurns. set the stopover turn bit on every edge touching an intermediate waypoint. the bit goes into the
// flag overrides of the QueryGraph, so the stored graph is never changed. returns the number of marked edges.
func MarkStopoverTurns(graph *da.QueryGraph, encoder encoding.FlagEncoder, waypoints []da.Index) (int, error) {
	if len(waypoints) < 3 {
		return 0, nil
	}

	marked := make(map[da.Index]struct{})
	var err error
	for _, v := range waypoints[1 : len(waypoints)-1] {
		graph.ForEdgesOf(v, func(e da.EdgeState) {
			if err != nil {
				return
			}
			if _, ok := marked[e.GetEdge()]; ok {
				return
			}
			var flags uint64
			flags, err = encoder.SetBool(graph.GetEdgeFlags(e.GetEdge()), encoding.KeyStopoverTurn, true)
			if err != nil {
				return
			}
			graph.SetFlags(e.GetEdge(), flags)
			marked[e.GetEdge()] = struct{}{}
		})
		if err != nil {
			return len(marked), err
		}
	}
	return len(marked), nil
}
