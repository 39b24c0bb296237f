package spatialindex

import (
	"math"

	da "github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

const (
	// initial snapping radius in km, doubled until something is found or maxSnapRadius is passed.
	initialSnapRadius = 0.05
	maxSnapRadius     = 5.0
)

// Rtree. vertex index used to snap waypoints onto the graph.
type Rtree struct {
	tr *rtree.RTreeG[da.Index]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[da.Index]
	return &Rtree{
		tr: &tr,
	}
}

// Build. index every vertex that has at least one edge.
func (rt *Rtree) Build(graph *da.Graph, log *zap.Logger) {
	rt.BuildFiltered(graph, nil, log)
}

// BuildFiltered. like Build, restricted to the vertices keep accepts (nil keeps all).
func (rt *Rtree) BuildFiltered(graph *da.Graph, keep func(v da.Index) bool, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	indexed := 0
	for v := da.Index(0); v < da.Index(graph.NumberOfVertices()); v++ {
		if keep != nil && !keep(v) {
			continue
		}
		hasEdge := false
		graph.ForEdgesOf(v, func(e da.EdgeState) {
			hasEdge = true
		})
		if !hasEdge {
			continue
		}
		vertex := graph.GetVertex(v)
		p := [2]float64{vertex.GetLon(), vertex.GetLat()}
		rt.tr.Insert(p, p, v)
		indexed++
	}
	log.Info("R-tree spatial index built.", zap.Int("vertices", indexed))
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// SearchWithinRadius. vertices inside the bounding box of radius km around (qLat, qLon).
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []da.Index {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]da.Index, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data da.Index) bool {
			results = append(results, data)
			return true
		})
	return results
}

// Snap. nearest indexed vertex to (qLat, qLon) & its distance in meter. false if nothing is within maxSnapRadius.
func (rt *Rtree) Snap(graph *da.Graph, qLat, qLon float64) (da.Index, float64, bool) {
	q := geo.NewCoordinate(qLat, qLon)
	for radius := initialSnapRadius; radius <= maxSnapRadius; radius *= 2 {
		candidates := rt.SearchWithinRadius(qLat, qLon, radius)
		if len(candidates) == 0 {
			continue
		}

		best, bestDist := da.INVALID_VERTEX_ID, math.MaxFloat64
		for _, v := range candidates {
			vertex := graph.GetVertex(v)
			dist := geo.DistanceMeter(q, geo.NewCoordinate(vertex.GetLat(), vertex.GetLon()))
			if dist < bestDist {
				best, bestDist = v, dist
			}
		}
		return best, bestDist, true
	}
	return da.INVALID_VERTEX_ID, 0, false
}
