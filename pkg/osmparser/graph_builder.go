package osmparser

import (
	da "github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

// BuildGraph. one vertex per way end / junction node, one edge per way segment between them, distance summed
// over the nodes in between. barrier nodes get a separate vertex on each side, so the segments don't connect.
func (p *OsmParser) BuildGraph() (*da.Graph, error) {
	graph := da.NewGraph()
	graph.SetEncodedWith(p.em.Descriptor())

	missing := 0
	for _, way := range p.ways {
		var (
			segStart  = da.INVALID_VERTEX_ID
			prevCoord NodeCoord
			dist      float64
		)
		for _, nodeID := range way.nodes {
			coord, ok := p.acceptedNodeMap[nodeID]
			if !ok {
				// node missing from the extract, the way is cut here
				missing++
				segStart = da.INVALID_VERTEX_ID
				continue
			}

			if segStart == da.INVALID_VERTEX_ID {
				if p.barrierNodes[nodeID] {
					segStart = graph.AddVertex(coord.lat, coord.lon)
				} else {
					segStart = p.vertexOf(graph, nodeID, coord)
				}
				prevCoord, dist = coord, 0
				continue
			}

			dist += segmentLength(prevCoord, coord)
			prevCoord = coord

			switch {
			case p.barrierNodes[nodeID]:
				end := graph.AddVertex(coord.lat, coord.lon)
				if _, err := graph.AddEdge(segStart, end, dist, way.flags); err != nil {
					return nil, err
				}
				segStart, dist = graph.AddVertex(coord.lat, coord.lon), 0
			case p.isTowerNode(nodeID):
				end := p.vertexOf(graph, nodeID, coord)
				if _, err := graph.AddEdge(segStart, end, dist, way.flags); err != nil {
					return nil, err
				}
				segStart, dist = end, 0
			}
		}
	}

	if missing > 0 {
		p.logger.Warn("way nodes missing from the map file", zap.Int("count", missing))
	}
	return graph, nil
}

func (p *OsmParser) vertexOf(graph *da.Graph, nodeID osm.NodeID, coord NodeCoord) da.Index {
	if v, ok := p.nodeIDMap[nodeID]; ok {
		return v
	}
	v := graph.AddVertex(coord.lat, coord.lon)
	p.nodeIDMap[nodeID] = v
	return v
}

// GetVertex. graph vertex of an osm node, false if the node is not a way end or junction.
func (p *OsmParser) GetVertex(nodeID osm.NodeID) (da.Index, bool) {
	v, ok := p.nodeIDMap[nodeID]
	return v, ok
}
