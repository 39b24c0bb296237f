package encoding

import (
	"github.com/paulmach/osm"
)

// MotorcycleEncoder. car chain + a reverse speed field, so both directions of an edge can have different speeds
// (maxspeed:forward / maxspeed:backward).
type MotorcycleEncoder struct {
	car          *CarEncoder
	reverseSpeed SpeedField
	defined      bool
}

func NewMotorcycleEncoder(opts Options) (*MotorcycleEncoder, error) {
	car, err := NewCarEncoder(opts)
	if err != nil {
		return nil, err
	}
	return &MotorcycleEncoder{car: car}, nil
}

func (m *MotorcycleEncoder) DefineWayBits(shift int) (int, error) {
	shift, err := m.car.DefineWayBits(shift)
	if err != nil {
		return shift, err
	}
	m.reverseSpeed, shift, err = NewSpeedField(shift, m.car.speedBits, m.car.speedFactor)
	if err != nil {
		return shift, err
	}
	m.defined = true
	return shift, nil
}

func (m *MotorcycleEncoder) DefineTurnBits(shift int) (int, error) {
	return m.car.DefineTurnBits(shift)
}

func (m *MotorcycleEncoder) GetSpeed(flags uint64, reverse bool) float64 {
	if !reverse {
		return m.car.GetSpeed(flags, false)
	}
	if !m.car.IsAccessible(flags, true) {
		return 0
	}
	return m.reverseSpeed.Get(flags)
}

func (m *MotorcycleEncoder) SetSpeed(flags uint64, reverse bool, kmh float64) (uint64, error) {
	if !reverse {
		return m.car.SetSpeed(flags, false, kmh)
	}
	if !m.defined {
		return flags, ErrBitsNotDefined
	}
	return m.reverseSpeed.Set(flags, kmh)
}

func (m *MotorcycleEncoder) GetMaxSpeed() float64 {
	return m.car.GetMaxSpeed()
}

func (m *MotorcycleEncoder) IsAccessible(flags uint64, reverse bool) bool {
	return m.car.IsAccessible(flags, reverse)
}

func (m *MotorcycleEncoder) SetAccess(flags uint64, forward, backward bool) (uint64, error) {
	return m.car.SetAccess(flags, forward, backward)
}

func (m *MotorcycleEncoder) SetBool(flags uint64, key BoolKey, value bool) (uint64, error) {
	return m.car.SetBool(flags, key, value)
}

func (m *MotorcycleEncoder) IsBool(flags uint64, key BoolKey) (bool, error) {
	return m.car.IsBool(flags, key)
}

func (m *MotorcycleEncoder) SupportsTurnCosts() bool {
	return m.car.SupportsTurnCosts()
}

func (m *MotorcycleEncoder) GetTurnFlags(restricted bool, costs float64) (uint64, error) {
	return m.car.GetTurnFlags(restricted, costs)
}

func (m *MotorcycleEncoder) IsTurnRestricted(turnFlags uint64) bool {
	return m.car.IsTurnRestricted(turnFlags)
}

func (m *MotorcycleEncoder) GetTurnCost(turnFlags uint64) float64 {
	return m.car.GetTurnCost(turnFlags)
}

func (m *MotorcycleEncoder) AcceptWay(tags osm.Tags) bool {
	return m.car.AcceptWay(tags)
}

func (m *MotorcycleEncoder) HandleWayTags(tags osm.Tags) (uint64, error) {
	if !m.AcceptWay(tags) {
		return 0, nil
	}
	flags, err := m.car.wayAccessFlags(tags)
	if err != nil {
		return 0, err
	}
	flags, err = m.car.speed.Set(flags, m.car.waySpeed(tags, "maxspeed:forward"))
	if err != nil {
		return 0, err
	}
	return m.reverseSpeed.Set(flags, m.car.waySpeed(tags, "maxspeed:backward"))
}

func (m *MotorcycleEncoder) GetOptions() Options {
	return m.car.GetOptions()
}

func (m *MotorcycleEncoder) String() string {
	return MOTORCYCLE
}
