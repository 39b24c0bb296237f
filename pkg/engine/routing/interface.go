package routing

import (
	"context"

	da "github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
)

// RoutingGraph. what a search needs from the graph. implemented by *datastructure.Graph & *datastructure.QueryGraph.
type RoutingGraph interface {
	NumberOfVertices() int
	ForEdgesOf(u da.Index, handle func(e da.EdgeState))
}

// Router. one-to-one search between two vertices of a RoutingGraph.
type Router interface {
	ShortestPath(ctx context.Context, s, t da.Index) (*Path, error)
}

var (
	_ Router       = (*Dijkstra)(nil)
	_ RoutingGraph = (*da.Graph)(nil)
	_ RoutingGraph = (*da.QueryGraph)(nil)
)
