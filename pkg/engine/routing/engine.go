package routing

import (
	"context"
	"math"

	"github.com/lintang-b-s/navigatorx-stopover/pkg/costfunction"
	da "github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/encoding"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/geo"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/spatialindex"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/util"
	"go.uber.org/zap"
)

// RoutingEngine. answers route requests on a read-only graph. safe for concurrent use, every request works on its
// own QueryGraph.
type RoutingEngine struct {
	graph            *da.Graph
	em               *encoding.EncodingManager
	rtree            *spatialindex.Rtree
	weightingCfg     util.WeightingConfig
	headingTolerance float64
	logger           *zap.Logger
}

func NewRoutingEngine(graph *da.Graph, em *encoding.EncodingManager, rtree *spatialindex.Rtree,
	weightingCfg util.WeightingConfig, headingTolerance float64, logger *zap.Logger) *RoutingEngine {
	return &RoutingEngine{
		graph:            graph,
		em:               em,
		rtree:            rtree,
		weightingCfg:     weightingCfg,
		headingTolerance: headingTolerance,
		logger:           logger,
	}
}

func (re *RoutingEngine) GetGraph() *da.Graph {
	return re.graph
}

// Weighting. weighting for the vehicle & weighting name of a request, engine defaults when they are empty.
func (re *RoutingEngine) Weighting(req *RouteRequest) (costfunction.Weighting, error) {
	vehicle := req.GetVehicle()
	if vehicle == "" {
		vehicle = re.em.GetEncoders()[0].String()
	}
	encoder, err := re.em.GetEncoder(vehicle)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "vehicle %q", vehicle)
	}

	cfg := re.weightingCfg
	if req.GetWeighting() != "" {
		cfg.Name = req.GetWeighting()
	}
	return costfunction.NewWeighting(cfg, encoder)
}

// Route. one leg per consecutive waypoint pair. preferred directions mark the edges around their waypoint
// before any leg is searched.
func (re *RoutingEngine) Route(ctx context.Context, req *RouteRequest) (*RouteResult, error) {
	if err := req.Validate(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid route request")
	}

	weighting, err := re.Weighting(req)
	if err != nil {
		return nil, err
	}

	waypoints, err := re.snap(req.GetPoints())
	if err != nil {
		return nil, err
	}

	qg := da.NewQueryGraph(re.graph)
	if req.HasPreferredDirection() {
		if err := re.markPreferredDirections(qg, req, waypoints); err != nil {
			return nil, err
		}
	}

	if sw, ok := weighting.(*costfunction.StopoverDelayWeighting); ok && sw.GetMode() == costfunction.TURN_DELAY {
		marked, err := MarkStopoverTurns(qg, weighting.GetEncoder(), waypoints)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrInvalidConfig, "marking stopover turns with %s", weighting.String())
		}
		re.logger.Debug("stopover turns marked", zap.Int("edges", marked))
	}

	base := OutEdgeFilter(weighting.GetEncoder())
	result := &RouteResult{Waypoints: waypoints, weighting: weighting.String()}
	for i := 0; i+1 < len(waypoints); i++ {
		var filter EdgeFilter = base
		if req.IsPassThrough() && i > 0 {
			if prev := result.Legs[i-1]; len(prev.Edges) > 0 {
				filter = NewExcludeIdEdgeFilter(base, []da.Index{prev.Edges[len(prev.Edges)-1]})
			}
		}

		dijkstra := NewDijkstra(qg, weighting, filter)
		leg, err := dijkstra.ShortestPath(ctx, waypoints[i], waypoints[i+1])
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrNotFound, "leg %d", i)
		}
		re.logger.Debug("leg settled",
			zap.Int("leg", i),
			zap.Int("settledNodes", dijkstra.GetNumSettledNodes()))
		result.Legs = append(result.Legs, leg)
		result.Weight += leg.Weight
		result.Distance += leg.Distance
	}

	result.Points = re.legCoordinates(result.Legs)
	re.logger.Debug("route found",
		zap.Int("waypoints", len(waypoints)),
		zap.Float64("weight", result.Weight),
		zap.Float64("distance", result.Distance),
		zap.String("weighting", weighting.String()))
	return result, nil
}

func (re *RoutingEngine) snap(points []geo.Coordinate) ([]da.Index, error) {
	waypoints := make([]da.Index, len(points))
	for i, p := range points {
		v, _, ok := re.rtree.Snap(re.graph, p.Lat, p.Lon)
		if !ok {
			return nil, util.WrapErrorf(ErrSnapFailed, util.ErrNotFound, "waypoint #%d (%v, %v)", i, p.Lat, p.Lon)
		}
		waypoints[i] = v
	}
	return waypoints, nil
}

// markPreferredDirections. the start point checks leaving, the destination arriving, stopovers both.
func (re *RoutingEngine) markPreferredDirections(qg *da.QueryGraph, req *RouteRequest, waypoints []da.Index) error {
	last := len(waypoints) - 1
	directions := req.GetPreferredDirections()
	for i, v := range waypoints {
		azimuth := directions[i]
		if math.IsNaN(azimuth) {
			continue
		}
		if i < last {
			if _, err := MarkDispreferredEdges(qg, v, azimuth, re.headingTolerance, false); err != nil {
				return util.WrapErrorf(err, util.ErrBadParamInput, "waypoint #%d", i)
			}
		}
		if i > 0 {
			if _, err := MarkDispreferredEdges(qg, v, azimuth, re.headingTolerance, true); err != nil {
				return util.WrapErrorf(err, util.ErrBadParamInput, "waypoint #%d", i)
			}
		}
	}
	return nil
}

func (re *RoutingEngine) legCoordinates(legs []*Path) []geo.Coordinate {
	coords := make([]geo.Coordinate, 0)
	for i, leg := range legs {
		vertices := leg.Vertices
		if i > 0 && len(vertices) > 0 {
			// shared with the end of the previous leg
			vertices = vertices[1:]
		}
		for _, v := range vertices {
			vertex := re.graph.GetVertex(v)
			coords = append(coords, geo.NewCoordinate(vertex.GetLat(), vertex.GetLon()))
		}
	}
	return coords
}
