package osmparser

import (
	"github.com/paulmach/osm"
)

type NodeType uint8

const (
	END_NODE NodeType = iota
	BETWEEN_NODE
	JUNCTION_NODE
)

type NodeCoord struct {
	lat float64
	lon float64
}

func NewNodeCoord(lat, lon float64) NodeCoord {
	return NodeCoord{lat, lon}
}

// osmWay. accepted way, flags already encoded by every encoder of the manager.
type osmWay struct {
	id    osm.WayID
	nodes []osm.NodeID
	flags uint64
}

var (
	//https://wiki.openstreetmap.org/wiki/Key:barrier
	// a barrier node with access=no splits the way into 2 disconnected graph edges.
	acceptedBarrierType = map[string]struct{}{
		"bollard":        struct{}{},
		"swing_gate":     struct{}{},
		"jersey_barrier": struct{}{},
		"lift_gate":      struct{}{},
		"block":          struct{}{},
		"gate":           struct{}{},
	}
)

func isBarrier(tags osm.Tags) bool {
	barrierType := tags.Find("barrier")
	if barrierType == "" || tags.Find("access") != "no" {
		return false
	}
	_, ok := acceptedBarrierType[barrierType]
	return ok
}
