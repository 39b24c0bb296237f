package main

import (
	"context"
	"flag"
	"strings"

	"github.com/lintang-b-s/navigatorx-stopover/pkg/encoding"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/logger"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/osmparser"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/util"
	"go.uber.org/zap"
)

var (
	mapFile   = flag.String("f", "", "openstreetmap file (.osm.pbf or .osm), defaults to engine.osmFile")
	graphFile = flag.String("o", "", "output graph file, defaults to engine.graphFile")
)

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
	if *mapFile == "" {
		*mapFile = cfg.Engine.OsmFile
	}
	if *graphFile == "" {
		*graphFile = cfg.Engine.GraphFile
	}
	if *mapFile == "" {
		logger.Fatal("no openstreetmap file, use -f or engine.osmFile")
	}

	profiles := strings.Split(cfg.Encoder.Profile, ",")
	em, err := encoding.NewEncodingManagerFor(logger, encoding.OptionsFromConfig(cfg.Encoder), profiles...)
	if err != nil {
		logger.Fatal("building encoders", zap.Error(err))
	}

	osmParser := osmparser.NewOsmParser(em, logger)
	graph, err := osmParser.Parse(context.Background(), *mapFile)
	if err != nil {
		logger.Fatal("parsing openstreetmap file", zap.Error(err))
	}

	if bb := graph.GetBoundingBox(); bb != nil {
		minLat, minLon := bb.GetMinCoord()
		maxLat, maxLon := bb.GetMaxCoord()
		logger.Info("graph bounding box",
			zap.Float64("minLat", minLat), zap.Float64("minLon", minLon),
			zap.Float64("maxLat", maxLat), zap.Float64("maxLon", maxLon))
	}

	if err := graph.WriteGraph(*graphFile); err != nil {
		logger.Fatal("writing graph", zap.Error(err))
	}
	logger.Info("Preprocessing completed successfully.",
		zap.String("graphFile", *graphFile),
		zap.Int("usedBits", em.GetUsedBits()))
}
