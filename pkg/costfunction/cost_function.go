package costfunction

import (
	"fmt"

	da "github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/encoding"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/util"
)

type EdgeAttributes interface {
	GetEdge() da.Index
	GetDistance() float64
	GetFlags() uint64
	GetBool(key da.EdgeBoolKey, reverse bool, def bool) bool
}

// Weighting. turns an edge traversal into a non-negative cost, +Inf if the edge can't be traversed.
// implementations are immutable & safe to share between concurrent searches.
type Weighting interface {
	// CalcWeight. prevOrNextEdgeId is the previous edge (forward search) or the next edge (backward search),
	// pkg.NO_EDGE when the edge touches a start/stop/via point.
	CalcWeight(e EdgeAttributes, reverse bool, prevOrNextEdgeId da.Index) float64
	// GetMinWeight. lower bound of the cost of traveling distance meters.
	GetMinWeight(distance float64) float64
	GetEncoder() encoding.FlagEncoder
	String() string
}

const (
	FASTEST  = "fastest"
	SHORTEST = "shortest"
	STOPOVER = "stopover"
)

// NewWeighting. weighting named in the config, on top of encoder.
func NewWeighting(cfg util.WeightingConfig, encoder encoding.FlagEncoder) (Weighting, error) {
	switch cfg.Name {
	case FASTEST:
		return NewFastestWeighting(encoder), nil
	case SHORTEST:
		return NewShortestWeighting(encoder), nil
	case STOPOVER:
		mode, err := ParseDelayMode(cfg.Mode)
		if err != nil {
			return nil, err
		}
		return NewStopoverDelayWeighting(encoder, mode, cfg.Penalty)
	default:
		return nil, util.WrapErrorf(nil, util.ErrInvalidConfig, "unknown weighting %q", cfg.Name)
	}
}

func weightingName(name string, encoder encoding.FlagEncoder) string {
	return fmt.Sprintf("%s|%s", name, encoder.String())
}
