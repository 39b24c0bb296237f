package routing

import (
	"context"
	"fmt"
	"math"

	"github.com/lintang-b-s/navigatorx-stopover/pkg"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/costfunction"
	da "github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/util"
)

// Path. edges in travel order; Vertices has one more entry than Edges.
type Path struct {
	Weight   float64
	Distance float64
	Edges    []da.Index
	Vertices []da.Index
}

// Dijkstra. one-to-one forward search. every relaxation asks the filter first, then the weighting.
// not safe for concurrent use, create one per search.
type Dijkstra struct {
	graph     RoutingGraph
	weighting costfunction.Weighting
	filter    EdgeFilter

	pq         *da.MinHeap[da.Index]
	heapNodes  []*da.PriorityQueueNode[da.Index]
	dist       []float64
	parent     []da.Index
	parentEdge []da.Index
	edgeDist   []float64
	settled    []bool

	numSettledNodes int
}

func NewDijkstra(graph RoutingGraph, weighting costfunction.Weighting, filter EdgeFilter) *Dijkstra {
	return &Dijkstra{
		graph:     graph,
		weighting: weighting,
		filter:    filter,
		pq:        da.NewFourAryHeap[da.Index](),
	}
}

func (d *Dijkstra) GetNumSettledNodes() int {
	return d.numSettledNodes
}

func (d *Dijkstra) preallocate() {
	n := d.graph.NumberOfVertices()
	d.heapNodes = make([]*da.PriorityQueueNode[da.Index], n)
	d.dist = make([]float64, n)
	d.parent = make([]da.Index, n)
	d.parentEdge = make([]da.Index, n)
	d.edgeDist = make([]float64, n)
	d.settled = make([]bool, n)
	for i := range d.dist {
		d.dist[i] = math.Inf(1)
		d.parent[i] = da.INVALID_VERTEX_ID
		d.parentEdge[i] = pkg.NO_EDGE
	}
	d.pq.Clear()
	d.pq.Preallocate(n)
	d.numSettledNodes = 0
}

// ShortestPath. cheapest path from s to t. the first edge is weighted with pkg.NO_EDGE as previous edge, and so is
// the edge that reaches t, so both endpoints see the endpoint-only costs of the weighting.
func (d *Dijkstra) ShortestPath(ctx context.Context, s, t da.Index) (*Path, error) {
	n := d.graph.NumberOfVertices()
	if int(s) >= n || int(t) >= n {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "source %d or target %d out of range (%d vertices)", s, t, n)
	}

	d.preallocate()
	if s == t {
		return &Path{Vertices: []da.Index{s}}, nil
	}

	d.dist[s] = 0
	d.heapNodes[s] = da.NewPriorityQueueNode(0, s)
	d.pq.Insert(d.heapNodes[s])

	for !d.pq.IsEmpty() {
		if util.StopConcurrentOperation(ctx) {
			return nil, ctx.Err()
		}

		node, err := d.pq.ExtractMin()
		if err != nil {
			return nil, err
		}
		u := node.GetItem()
		d.settled[u] = true
		d.numSettledNodes++
		if u == t {
			return d.buildPath(s, t), nil
		}

		if err := d.relax(u, s, t); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: from %d to %d with %s", ErrNoPath, s, t, d.weighting.String())
}

func (d *Dijkstra) relax(u, s, t da.Index) error {
	prevEdge := d.parentEdge[u]
	var heapErr error
	d.graph.ForEdgesOf(u, func(e da.EdgeState) {
		v := e.GetAdjNode()
		if heapErr != nil || d.settled[v] || !d.filter.Accept(e) {
			return
		}

		prevOrNext := prevEdge
		if u == s || v == t {
			prevOrNext = pkg.NO_EDGE
		}
		w := d.weighting.CalcWeight(e, e.IsReversed(), prevOrNext)
		if math.IsInf(w, 1) {
			return
		}

		newDist := d.dist[u] + w
		if newDist >= d.dist[v] {
			return
		}

		d.dist[v] = newDist
		d.parent[v] = u
		d.parentEdge[v] = e.GetEdge()
		d.edgeDist[v] = e.GetDistance()
		if d.heapNodes[v] == nil {
			d.heapNodes[v] = da.NewPriorityQueueNode(newDist, v)
			d.pq.Insert(d.heapNodes[v])
		} else if err := d.pq.DecreaseKey(d.heapNodes[v], newDist); err != nil {
			heapErr = util.WrapErrorf(err, util.ErrInternalServerError, "decrease key of vertex %d", v)
		}
	})
	return heapErr
}

func (d *Dijkstra) buildPath(s, t da.Index) *Path {
	path := &Path{Weight: d.dist[t]}
	for v := t; v != s; v = d.parent[v] {
		path.Edges = append(path.Edges, d.parentEdge[v])
		path.Vertices = append(path.Vertices, v)
		path.Distance += d.edgeDist[v]
	}
	path.Vertices = append(path.Vertices, s)
	reverse(path.Edges)
	reverse(path.Vertices)
	return path
}

func reverse[T any](arr []T) {
	for i, j := 0, len(arr)-1; i < j; i, j = i+1, j-1 {
		arr[i], arr[j] = arr[j], arr[i]
	}
}
