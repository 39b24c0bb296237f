package costfunction

import (
	"errors"
	"fmt"
	"math"

	"github.com/lintang-b-s/navigatorx-stopover/pkg"
	da "github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/encoding"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/util"
)

// DelayMode. which extra delay a StopoverDelayWeighting adds on top of the travel time.
type DelayMode uint8

const (
	// ENDPOINT_PENALTY. edges touching a start/stop/via point that are marked as dispreferred for the travel
	// direction get the penalty.
	ENDPOINT_PENALTY DelayMode = iota
	// TURN_DELAY. every traversal of an edge whose stopover turn bit is set gets the penalty.
	TURN_DELAY
)

func (m DelayMode) String() string {
	switch m {
	case ENDPOINT_PENALTY:
		return "endpoint"
	case TURN_DELAY:
		return "turn_delay"
	default:
		return fmt.Sprintf("delay_mode(%d)", uint8(m))
	}
}

func ParseDelayMode(s string) (DelayMode, error) {
	switch s {
	case "", "endpoint":
		return ENDPOINT_PENALTY, nil
	case "turn_delay":
		return TURN_DELAY, nil
	default:
		return 0, util.WrapErrorf(nil, util.ErrInvalidConfig, "unknown delay mode %q", s)
	}
}

// StopoverDelayWeighting. fastest travel time + a constant penalty (seconds) chosen by DelayMode.
type StopoverDelayWeighting struct {
	fastest *FastestWeighting
	mode    DelayMode
	penalty float64
}

func NewStopoverDelayWeighting(encoder encoding.FlagEncoder, mode DelayMode, penalty float64) (*StopoverDelayWeighting, error) {
	if penalty < 0 || math.IsNaN(penalty) || math.IsInf(penalty, 0) {
		return nil, util.WrapErrorf(nil, util.ErrInvalidConfig, "penalty must be a finite non-negative number, got %v", penalty)
	}
	switch mode {
	case ENDPOINT_PENALTY:
	case TURN_DELAY:
		if _, err := encoder.IsBool(0, encoding.KeyStopoverTurn); err != nil {
			if errors.Is(err, encoding.ErrUnknownKey) {
				return nil, util.WrapErrorf(err, util.ErrInvalidConfig,
					"turn delay needs an encoder with the stopover turn bit, %s has none", encoder.String())
			}
			return nil, err
		}
	default:
		return nil, util.WrapErrorf(nil, util.ErrInvalidConfig, "unknown delay mode %d", mode)
	}

	return &StopoverDelayWeighting{
		fastest: NewFastestWeighting(encoder),
		mode:    mode,
		penalty: penalty,
	}, nil
}

func (sw *StopoverDelayWeighting) CalcWeight(e EdgeAttributes, reverse bool, prevOrNextEdgeId da.Index) float64 {
	time := sw.fastest.CalcWeight(e, reverse, prevOrNextEdgeId)
	if math.IsInf(time, 1) {
		return time
	}

	switch sw.mode {
	case ENDPOINT_PENALTY:
		if prevOrNextEdgeId == pkg.NO_EDGE && e.GetBool(da.DISPREFERRED_START_STOP_EDGE, reverse, false) {
			time += sw.penalty
		}
	case TURN_DELAY:
		// key support checked in the constructor
		if stopover, _ := sw.fastest.encoder.IsBool(e.GetFlags(), encoding.KeyStopoverTurn); stopover {
			time += sw.penalty
		}
	}
	return time
}

func (sw *StopoverDelayWeighting) GetMinWeight(distance float64) float64 {
	return sw.fastest.GetMinWeight(distance)
}

func (sw *StopoverDelayWeighting) GetEncoder() encoding.FlagEncoder {
	return sw.fastest.encoder
}

func (sw *StopoverDelayWeighting) GetMode() DelayMode {
	return sw.mode
}

func (sw *StopoverDelayWeighting) GetPenalty() float64 {
	return sw.penalty
}

func (sw *StopoverDelayWeighting) String() string {
	return weightingName(fmt.Sprintf("fastest_stopover_delay(%s)", sw.mode), sw.fastest.encoder)
}
