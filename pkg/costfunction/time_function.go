package costfunction

import (
	"math"

	"github.com/lintang-b-s/navigatorx-stopover/pkg"
	da "github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/encoding"
)

// FastestWeighting. travel time in seconds.
type FastestWeighting struct {
	encoder  encoding.FlagEncoder
	maxSpeed float64
}

func NewFastestWeighting(encoder encoding.FlagEncoder) *FastestWeighting {
	return &FastestWeighting{
		encoder:  encoder,
		maxSpeed: encoder.GetMaxSpeed(),
	}
}

func (fw *FastestWeighting) CalcWeight(e EdgeAttributes, reverse bool, prevOrNextEdgeId da.Index) float64 {
	speed := fw.encoder.GetSpeed(e.GetFlags(), reverse)
	if speed == 0 {
		return math.Inf(1)
	}
	return e.GetDistance() / speed * pkg.SPEED_CONV
}

func (fw *FastestWeighting) GetMinWeight(distance float64) float64 {
	if fw.maxSpeed == 0 {
		return 0
	}
	return distance / fw.maxSpeed * pkg.SPEED_CONV
}

func (fw *FastestWeighting) GetEncoder() encoding.FlagEncoder {
	return fw.encoder
}

func (fw *FastestWeighting) String() string {
	return weightingName(FASTEST, fw.encoder)
}

// ShortestWeighting. distance in meter, only direction access matters.
type ShortestWeighting struct {
	encoder encoding.FlagEncoder
}

func NewShortestWeighting(encoder encoding.FlagEncoder) *ShortestWeighting {
	return &ShortestWeighting{encoder: encoder}
}

func (sw *ShortestWeighting) CalcWeight(e EdgeAttributes, reverse bool, prevOrNextEdgeId da.Index) float64 {
	if sw.encoder.GetSpeed(e.GetFlags(), reverse) == 0 {
		return math.Inf(1)
	}
	return e.GetDistance()
}

func (sw *ShortestWeighting) GetMinWeight(distance float64) float64 {
	return distance
}

func (sw *ShortestWeighting) GetEncoder() encoding.FlagEncoder {
	return sw.encoder
}

func (sw *ShortestWeighting) String() string {
	return weightingName(SHORTEST, sw.encoder)
}
