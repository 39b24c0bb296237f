package osmparser

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	da "github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/encoding"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/geo"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"go.uber.org/zap"
)

// ScannerFunc. opens an osm scanner over r.
type ScannerFunc func(ctx context.Context, r io.Reader) osm.Scanner

func PBFScanner(ctx context.Context, r io.Reader) osm.Scanner {
	return osmpbf.New(ctx, r, runtime.GOMAXPROCS(0))
}

func XMLScanner(ctx context.Context, r io.Reader) osm.Scanner {
	return osmxml.New(ctx, r)
}

// ScannerFor. xml for .osm files, pbf otherwise.
func ScannerFor(mapFile string) ScannerFunc {
	if strings.EqualFold(filepath.Ext(mapFile), ".osm") {
		return XMLScanner
	}
	return PBFScanner
}

type OsmParser struct {
	em     *encoding.EncodingManager
	logger *zap.Logger

	wayNodeMap      map[osm.NodeID]NodeType
	acceptedNodeMap map[osm.NodeID]NodeCoord
	barrierNodes    map[osm.NodeID]bool
	nodeIDMap       map[osm.NodeID]da.Index
	ways            []osmWay
}

func NewOsmParser(em *encoding.EncodingManager, logger *zap.Logger) *OsmParser {
	return &OsmParser{
		em:              em,
		logger:          logger,
		wayNodeMap:      make(map[osm.NodeID]NodeType),
		acceptedNodeMap: make(map[osm.NodeID]NodeCoord),
		barrierNodes:    make(map[osm.NodeID]bool),
		nodeIDMap:       make(map[osm.NodeID]da.Index),
		ways:            make([]osmWay, 0),
	}
}

// Parse. import an .osm.pbf (or .osm xml) file into a graph whose flags are written by every encoder of the manager.
func (p *OsmParser) Parse(ctx context.Context, mapFile string) (*da.Graph, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p.logger.Info("parsing openstreetmap file", zap.String("mapFile", mapFile), zap.String("encoders", p.em.String()))
	return p.ParseReader(ctx, f, ScannerFor(mapFile))
}

// ParseReader. two passes over r: ways first, then the coordinates of the nodes those ways use.
func (p *OsmParser) ParseReader(ctx context.Context, r io.ReadSeeker, newScanner ScannerFunc) (*da.Graph, error) {
	// must not be parallel
	scanner := newScanner(ctx, r)
	err := p.scanWays(ctx, scanner)
	scanner.Close()
	if err != nil {
		return nil, fmt.Errorf("scanning ways: %w", err)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	scanner = newScanner(ctx, r)
	err = p.scanNodes(ctx, scanner)
	scanner.Close()
	if err != nil {
		return nil, fmt.Errorf("scanning nodes: %w", err)
	}

	graph, err := p.BuildGraph()
	if err != nil {
		return nil, err
	}

	p.logger.Info("openstreetmap import done",
		zap.Int("ways", len(p.ways)),
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()))
	return graph, nil
}

func (p *OsmParser) scanWays(ctx context.Context, scanner osm.Scanner) error {
	countWays := 0
	for scanner.Scan() {
		if util.StopConcurrentOperation(ctx) {
			return ctx.Err()
		}

		way, ok := scanner.Object().(*osm.Way)
		if !ok || len(way.Nodes) < 2 {
			continue
		}
		if !p.em.AcceptWay(way.Tags) {
			continue
		}

		flags, err := p.em.HandleWayTags(way.Tags)
		if err != nil {
			p.logger.Warn("skipping way", zap.Int64("wayID", int64(way.ID)), zap.Error(err))
			continue
		}

		if (countWays+1)%50000 == 0 {
			p.logger.Sugar().Infof("scanning openstreetmap ways: %d...", countWays+1)
		}
		countWays++

		nodes := make([]osm.NodeID, len(way.Nodes))
		for i, node := range way.Nodes {
			nodes[i] = node.ID
			if _, ok := p.wayNodeMap[node.ID]; !ok {
				if i == 0 || i == len(way.Nodes)-1 {
					p.wayNodeMap[node.ID] = END_NODE
				} else {
					p.wayNodeMap[node.ID] = BETWEEN_NODE
				}
			} else {
				p.wayNodeMap[node.ID] = JUNCTION_NODE
			}
		}
		p.ways = append(p.ways, osmWay{id: way.ID, nodes: nodes, flags: flags})
	}
	return scanner.Err()
}

func (p *OsmParser) scanNodes(ctx context.Context, scanner osm.Scanner) error {
	countNodes := 0
	for scanner.Scan() {
		if util.StopConcurrentOperation(ctx) {
			return ctx.Err()
		}

		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if _, ok := p.wayNodeMap[node.ID]; !ok {
			continue
		}

		if (countNodes+1)%500000 == 0 {
			p.logger.Sugar().Infof("processing openstreetmap nodes: %d...", countNodes+1)
		}
		countNodes++

		p.acceptedNodeMap[node.ID] = NewNodeCoord(node.Lat, node.Lon)
		if isBarrier(node.Tags) {
			p.barrierNodes[node.ID] = true
		}
	}
	return scanner.Err()
}

func (p *OsmParser) isTowerNode(nodeID osm.NodeID) bool {
	t, ok := p.wayNodeMap[nodeID]
	return ok && t != BETWEEN_NODE
}

func segmentLength(a, b NodeCoord) float64 {
	return geo.CalculateHaversineDistance(a.lat, a.lon, b.lat, b.lon) * 1000
}
