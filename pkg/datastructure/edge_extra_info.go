package datastructure

import (
	"github.com/RoaringBitmap/roaring"
)

/*
----
edge extra info related section
----
*/

// EdgeBoolKey. boolean markers attached to an edge from outside of the flags word.
type EdgeBoolKey uint8

const (
	// DISPREFERRED_START_STOP_EDGE. leaving a start point / reaching a stop point through this edge (in the given
	// direction) goes against the preferred heading of the waypoint.
	DISPREFERRED_START_STOP_EDGE EdgeBoolKey = iota + 1
)

// EdgeMarkers. per direction edge id bitmaps.
// written before searching, read concurrently by searches afterwards.
type EdgeMarkers struct {
	forward *roaring.Bitmap
	reverse *roaring.Bitmap
}

func NewEdgeMarkers() *EdgeMarkers {
	return &EdgeMarkers{
		forward: roaring.New(),
		reverse: roaring.New(),
	}
}

func (m *EdgeMarkers) bitmap(reverse bool) *roaring.Bitmap {
	if reverse {
		return m.reverse
	}
	return m.forward
}

func (m *EdgeMarkers) Set(e Index, reverse, value bool) {
	if value {
		m.bitmap(reverse).Add(uint32(e))
	} else {
		m.bitmap(reverse).Remove(uint32(e))
	}
}

func (m *EdgeMarkers) Get(e Index, reverse bool) bool {
	return m.bitmap(reverse).Contains(uint32(e))
}

func (m *EdgeMarkers) Count() uint64 {
	return m.forward.GetCardinality() + m.reverse.GetCardinality()
}

func (m *EdgeMarkers) Clone() *EdgeMarkers {
	return &EdgeMarkers{
		forward: m.forward.Clone(),
		reverse: m.reverse.Clone(),
	}
}

// EdgeIteratorState. a directed traversal of an edge, as consumed by edge filters & weightings.
type EdgeIteratorState interface {
	GetEdge() Index
	GetBaseNode() Index
	GetAdjNode() Index
	GetDistance() float64
	GetFlags() uint64
	// IsReversed. true if the edge is traversed against its stored base->adj orientation.
	IsReversed() bool
	GetBool(key EdgeBoolKey, reverse bool, def bool) bool
}

type EdgeState struct {
	edge     *Edge
	reversed bool
	flags    uint64
	markers  *EdgeMarkers
}

func newEdgeState(edge *Edge, reversed bool, flags uint64, markers *EdgeMarkers) EdgeState {
	return EdgeState{edge: edge, reversed: reversed, flags: flags, markers: markers}
}

func (s EdgeState) GetEdge() Index {
	return s.edge.id
}

func (s EdgeState) GetBaseNode() Index {
	if s.reversed {
		return s.edge.adj
	}
	return s.edge.base
}

func (s EdgeState) GetAdjNode() Index {
	if s.reversed {
		return s.edge.base
	}
	return s.edge.adj
}

func (s EdgeState) GetDistance() float64 {
	return s.edge.dist
}

func (s EdgeState) GetFlags() uint64 {
	return s.flags
}

func (s EdgeState) IsReversed() bool {
	return s.reversed
}

// GetBool. reverse selects the travel direction relative to the stored orientation of the edge.
func (s EdgeState) GetBool(key EdgeBoolKey, reverse bool, def bool) bool {
	switch key {
	case DISPREFERRED_START_STOP_EDGE:
		if s.markers == nil {
			return def
		}
		return s.markers.Get(s.edge.id, reverse)
	default:
		return def
	}
}

// QueryGraph. per request view of a graph with its own copy of the edge markers and its own flag overrides, so
// marking edges for one request never leaks into searches of another request running on the same graph.
type QueryGraph struct {
	*Graph
	markers *EdgeMarkers
	flags   map[Index]uint64
}

func NewQueryGraph(g *Graph) *QueryGraph {
	return &QueryGraph{
		Graph:   g,
		markers: g.markers.Clone(),
		flags:   make(map[Index]uint64),
	}
}

func (q *QueryGraph) GetMarkers() *EdgeMarkers {
	return q.markers
}

// GetEdgeFlags. flags of edge e as this request sees them.
func (q *QueryGraph) GetEdgeFlags(e Index) uint64 {
	if flags, ok := q.flags[e]; ok {
		return flags
	}
	return q.Graph.edges[e].flags
}

// SetFlags. override the flags of edge e for this request only.
func (q *QueryGraph) SetFlags(e Index, flags uint64) {
	q.flags[e] = flags
}

func (q *QueryGraph) ForEdgesOf(u Index, handle func(e EdgeState)) {
	q.Graph.forEdgesOf(u, q.markers, q.flags, handle)
}

func (q *QueryGraph) GetEdgeState(e Index, base Index) (EdgeState, error) {
	s, err := q.Graph.GetEdgeState(e, base)
	if err != nil {
		return s, err
	}
	s.markers = q.markers
	s.flags = q.GetEdgeFlags(e)
	return s, nil
}
