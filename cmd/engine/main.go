package main

import (
	"context"
	"flag"
	"math"
	"os/signal"
	"syscall"
	"time"

	"github.com/lintang-b-s/navigatorx-stopover/pkg/concurrent"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/encoding"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/engine/routing"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/geo"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/logger"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/spatialindex"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	numQueries   = flag.Int("n", 100, "number of random route queries")
	numStopovers = flag.Int("stopovers", 1, "stopovers per query")
	seed         = flag.Uint64("seed", 42, "random seed for the queries")
	passThrough  = flag.Bool("pass_through", false, "no u-turn at stopovers")
)

type queryResult struct {
	id       int
	res      *routing.RouteResult
	err      error
	duration time.Duration
}

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := util.ReadConfig(); err != nil {
		logger.Fatal("reading config", zap.Error(err))
	}
	cfg, err := util.LoadConfig()
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}

	logger.Info("Reading graph from ", zap.String("graphFile", cfg.Engine.GraphFile))
	graph, err := datastructure.ReadGraph(cfg.Engine.GraphFile)
	if err != nil {
		logger.Fatal("reading graph", zap.Error(err))
	}
	if graph.NumberOfVertices() == 0 {
		logger.Fatal("empty graph", zap.String("graphFile", cfg.Engine.GraphFile))
	}

	// the bit layout must be rebuilt exactly as the preprocessor defined it
	em, err := encoding.NewEncodingManagerFromDescriptor(logger, graph.GetEncodedWith())
	if err != nil {
		logger.Fatal("building encoders", zap.Error(err))
	}
	if err := em.CheckOptions(encoding.OptionsFromConfig(cfg.Encoder)); err != nil {
		logger.Fatal("encoder config does not match the graph", zap.Error(err))
	}

	// snap only onto the biggest strongly connected subnetwork of the default vehicle, so every pair of
	// waypoints is connected
	outEdges := routing.OutEdgeFilter(em.GetEncoders()[0])
	comp, sizes := graph.RunKosaraju(func(e datastructure.EdgeState) bool { return outEdges.Accept(e) })
	largest := datastructure.LargestComponent(sizes)
	logger.Info("subnetworks",
		zap.Int("count", len(sizes)),
		zap.Int("largest", sizes[largest]),
		zap.String("filter", outEdges.String()))

	rtree := spatialindex.NewRtree()
	rtree.BuildFiltered(graph, func(v datastructure.Index) bool { return comp[v] == largest }, logger)
	engine := routing.NewRoutingEngine(graph, em, rtree, cfg.Weighting, cfg.Engine.HeadingTolerance, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	requests := randomRequests(graph, *numQueries, *numStopovers, *seed)
	wp := concurrent.NewWorkerPool[int, queryResult](cfg.Engine.Workers, len(requests))
	wp.Start(ctx, func(ctx context.Context, id int) queryResult {
		start := time.Now()
		res, err := engine.Route(ctx, requests[id])
		return queryResult{id: id, res: res, err: err, duration: time.Since(start)}
	})
	for id := range requests {
		wp.AddJob(id)
	}
	wp.Close()
	if err := wp.Wait(); err != nil {
		logger.Warn("queries interrupted", zap.Error(err))
	}

	var (
		found, failed int
		totalTime     time.Duration
	)
	for r := range wp.CollectResults() {
		totalTime += r.duration
		if r.err != nil {
			failed++
			logger.Debug("query failed", zap.Int("id", r.id), zap.Error(r.err))
			continue
		}
		found++
		logger.Debug("query done",
			zap.Int("id", r.id),
			zap.Float64("travelTimeMinutes", util.RoundFloat(r.res.TravelTimeMinutes(), 2)),
			zap.Float64("distance", util.RoundFloat(r.res.Distance, 2)),
			zap.String("polyline", r.res.Polyline()))
	}

	avg := time.Duration(0)
	if found+failed > 0 {
		avg = totalTime / time.Duration(found+failed)
	}
	logger.Info("queries done",
		zap.Int("found", found),
		zap.Int("failed", failed),
		zap.Duration("avgQueryTime", avg),
		zap.String("encoders", em.String()))
}

// randomRequests. waypoints on random vertices, each stopover with a random preferred direction.
func randomRequests(graph *datastructure.Graph, n, stopovers int, seed uint64) []*routing.RouteRequest {
	rng := rand.New(rand.NewSource(seed))
	numV := graph.NumberOfVertices()
	requests := make([]*routing.RouteRequest, 0, n)
	if numV == 0 {
		return requests
	}

	randomPoint := func() geo.Coordinate {
		v := graph.GetVertex(datastructure.Index(rng.Intn(numV)))
		return geo.NewCoordinate(v.GetLat(), v.GetLon())
	}

	for i := 0; i < n; i++ {
		req := routing.NewRouteRequest().SetPassThrough(*passThrough)
		_ = req.AddPoint(randomPoint(), routing.NoPreference)
		for j := 0; j < stopovers; j++ {
			_ = req.AddPoint(randomPoint(), rng.Float64()*2*math.Pi)
		}
		_ = req.AddPoint(randomPoint(), routing.NoPreference)
		requests = append(requests, req)
	}
	return requests
}
