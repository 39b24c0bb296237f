package datastructure

import (
	"fmt"
)

type Index uint32

const (
	INVALID_VERTEX_ID Index = 1<<32 - 1
)

type Vertex struct {
	lat float64
	lon float64
	id  Index
}

func NewVertex(lat, lon float64, id Index) Vertex {
	return Vertex{
		lat: lat,
		lon: lon,
		id:  id,
	}
}

func (v Vertex) GetID() Index {
	return v.id
}

func (v Vertex) GetLat() float64 {
	return v.lat
}

func (v Vertex) GetLon() float64 {
	return v.lon
}

// Edge. road segment stored once in base->adj orientation. flags keep both directions (access, speed).
type Edge struct {
	id    Index
	base  Index
	adj   Index
	dist  float64 // meter
	flags uint64
}

func (e *Edge) GetEdgeId() Index {
	return e.id
}

func (e *Edge) GetBase() Index {
	return e.base
}

func (e *Edge) GetAdj() Index {
	return e.adj
}

func (e *Edge) GetDistance() float64 {
	return e.dist
}

func (e *Edge) GetFlags() uint64 {
	return e.flags
}

// Graph. flags are written during import only, afterwards the graph is read-only and shared by all searches.
type Graph struct {
	vertices  []Vertex
	edges     []Edge
	adjacency [][]Index // vertex -> incident edge ids
	markers   *EdgeMarkers
	// comma separated encoder names the flags were written with
	encodedWith string
}

func NewGraph() *Graph {
	return &Graph{
		vertices:  make([]Vertex, 0),
		edges:     make([]Edge, 0),
		adjacency: make([][]Index, 0),
		markers:   NewEdgeMarkers(),
	}
}

func (g *Graph) AddVertex(lat, lon float64) Index {
	id := Index(len(g.vertices))
	g.vertices = append(g.vertices, NewVertex(lat, lon, id))
	g.adjacency = append(g.adjacency, make([]Index, 0, 2))
	return id
}

func (g *Graph) AddEdge(base, adj Index, dist float64, flags uint64) (Index, error) {
	if int(base) >= len(g.vertices) || int(adj) >= len(g.vertices) {
		return 0, fmt.Errorf("edge %d->%d: vertex out of range (%d vertices)", base, adj, len(g.vertices))
	}
	if dist < 0 {
		return 0, fmt.Errorf("edge %d->%d: negative distance %v", base, adj, dist)
	}
	id := Index(len(g.edges))
	g.edges = append(g.edges, Edge{id: id, base: base, adj: adj, dist: dist, flags: flags})
	g.adjacency[base] = append(g.adjacency[base], id)
	if adj != base {
		g.adjacency[adj] = append(g.adjacency[adj], id)
	}
	return id, nil
}

func (g *Graph) SetFlags(e Index, flags uint64) {
	g.edges[e].flags = flags
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *Graph) GetVertex(v Index) Vertex {
	return g.vertices[v]
}

func (g *Graph) GetEdge(e Index) *Edge {
	return &g.edges[e]
}

func (g *Graph) GetMarkers() *EdgeMarkers {
	return g.markers
}

func (g *Graph) SetEncodedWith(encoders string) {
	g.encodedWith = encoders
}

func (g *Graph) GetEncodedWith() string {
	return g.encodedWith
}

// GetEdgeState. view of edge e seen from vertex base.
func (g *Graph) GetEdgeState(e Index, base Index) (EdgeState, error) {
	edge := &g.edges[e]
	switch base {
	case edge.base:
		return newEdgeState(edge, false, edge.flags, g.markers), nil
	case edge.adj:
		return newEdgeState(edge, true, edge.flags, g.markers), nil
	default:
		return EdgeState{}, fmt.Errorf("vertex %d is not incident to edge %d", base, e)
	}
}

// ForEdgesOf. iterate the edges incident to u, each seen from u.
func (g *Graph) ForEdgesOf(u Index, handle func(e EdgeState)) {
	g.forEdgesOf(u, g.markers, nil, handle)
}

func (g *Graph) forEdgesOf(u Index, markers *EdgeMarkers, overrides map[Index]uint64, handle func(e EdgeState)) {
	for _, eId := range g.adjacency[u] {
		edge := &g.edges[eId]
		flags := edge.flags
		if f, ok := overrides[eId]; ok {
			flags = f
		}
		if edge.base == u {
			handle(newEdgeState(edge, false, flags, markers))
		}
		if edge.adj == u {
			// loops are reported in both orientations
			handle(newEdgeState(edge, true, flags, markers))
		}
	}
}
