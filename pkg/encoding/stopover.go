package encoding

import (
	"github.com/paulmach/osm"
)

// StopoverEncoder. extends a base encoder with one bit marking an edge as a stopover-adjacent turn.
// the bit is allocated after all base fields, every other key goes to the base.
type StopoverEncoder struct {
	base         FlagEncoder
	stopoverTurn BoolField
	defined      bool
}

func NewStopoverEncoder(base FlagEncoder) *StopoverEncoder {
	return &StopoverEncoder{base: base}
}

func (s *StopoverEncoder) Base() FlagEncoder {
	return s.base
}

func (s *StopoverEncoder) DefineWayBits(shift int) (int, error) {
	shift, err := s.base.DefineWayBits(shift)
	if err != nil {
		return shift, err
	}
	s.stopoverTurn, shift, err = NewBoolField(shift)
	if err != nil {
		return shift, err
	}
	s.defined = true
	return shift, nil
}

func (s *StopoverEncoder) DefineTurnBits(shift int) (int, error) {
	return s.base.DefineTurnBits(shift)
}

func (s *StopoverEncoder) SetBool(flags uint64, key BoolKey, value bool) (uint64, error) {
	if key != KeyStopoverTurn {
		return s.base.SetBool(flags, key, value)
	}
	if !s.defined {
		return flags, ErrBitsNotDefined
	}
	return s.stopoverTurn.Set(flags, value), nil
}

func (s *StopoverEncoder) IsBool(flags uint64, key BoolKey) (bool, error) {
	if key != KeyStopoverTurn {
		return s.base.IsBool(flags, key)
	}
	return s.stopoverTurn.Get(flags), nil
}

func (s *StopoverEncoder) GetSpeed(flags uint64, reverse bool) float64 {
	return s.base.GetSpeed(flags, reverse)
}

func (s *StopoverEncoder) SetSpeed(flags uint64, reverse bool, kmh float64) (uint64, error) {
	return s.base.SetSpeed(flags, reverse, kmh)
}

func (s *StopoverEncoder) GetMaxSpeed() float64 {
	return s.base.GetMaxSpeed()
}

func (s *StopoverEncoder) IsAccessible(flags uint64, reverse bool) bool {
	return s.base.IsAccessible(flags, reverse)
}

func (s *StopoverEncoder) SetAccess(flags uint64, forward, backward bool) (uint64, error) {
	return s.base.SetAccess(flags, forward, backward)
}

func (s *StopoverEncoder) SupportsTurnCosts() bool {
	return s.base.SupportsTurnCosts()
}

func (s *StopoverEncoder) GetTurnFlags(restricted bool, costs float64) (uint64, error) {
	return s.base.GetTurnFlags(restricted, costs)
}

func (s *StopoverEncoder) IsTurnRestricted(turnFlags uint64) bool {
	return s.base.IsTurnRestricted(turnFlags)
}

func (s *StopoverEncoder) GetTurnCost(turnFlags uint64) float64 {
	return s.base.GetTurnCost(turnFlags)
}

func (s *StopoverEncoder) AcceptWay(tags osm.Tags) bool {
	return s.base.AcceptWay(tags)
}

// HandleWayTags. the stopover bit is never set from osm data, it is marked per request.
func (s *StopoverEncoder) HandleWayTags(tags osm.Tags) (uint64, error) {
	return s.base.HandleWayTags(tags)
}

func (s *StopoverEncoder) GetOptions() Options {
	return s.base.GetOptions()
}

func (s *StopoverEncoder) String() string {
	return s.base.String() + "_stopover"
}
