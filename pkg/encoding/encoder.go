package encoding

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/navigatorx-stopover/pkg/util"
	"github.com/paulmach/osm"
)

var (
	ErrUnknownKey      = errors.New("unknown key")
	ErrUnknownProfile  = errors.New("unknown vehicle profile")
	ErrBitsNotDefined  = errors.New("encoder bits not defined")
	ErrBitsAlreadyUsed = errors.New("encoder bits already defined")
	ErrInvalidTurnCost = errors.New("invalid turn cost")
)

// BoolKey. boolean attributes an encoder chain may store in the flags word.
type BoolKey uint16

const (
	KeyRoundabout BoolKey = iota + 1
	KeyStopoverTurn
)

func (k BoolKey) String() string {
	switch k {
	case KeyRoundabout:
		return "roundabout"
	case KeyStopoverTurn:
		return "stopover_turn"
	default:
		return fmt.Sprintf("key(%d)", uint16(k))
	}
}

// FlagEncoder. encodes & decodes the attributes of one vehicle profile into the edge flags word.
// DefineWayBits must run (through an EncodingManager) before any setter is used.
type FlagEncoder interface {
	// DefineWayBits. allocate the encoder fields starting at shift, base encoder first.
	DefineWayBits(shift int) (int, error)
	// DefineTurnBits. allocate turn cost fields in the separate turn flags word.
	DefineTurnBits(shift int) (int, error)

	GetSpeed(flags uint64, reverse bool) float64
	SetSpeed(flags uint64, reverse bool, kmh float64) (uint64, error)
	GetMaxSpeed() float64

	IsAccessible(flags uint64, reverse bool) bool
	SetAccess(flags uint64, forward, backward bool) (uint64, error)

	SetBool(flags uint64, key BoolKey, value bool) (uint64, error)
	IsBool(flags uint64, key BoolKey) (bool, error)

	SupportsTurnCosts() bool
	GetTurnFlags(restricted bool, costs float64) (uint64, error)
	IsTurnRestricted(turnFlags uint64) bool
	GetTurnCost(turnFlags uint64) float64

	AcceptWay(tags osm.Tags) bool
	HandleWayTags(tags osm.Tags) (uint64, error)

	// GetOptions. the options the encoder was built with. they decide the bit layout together with the profile.
	GetOptions() Options
	String() string
}

type Options struct {
	SpeedBits   int     `validate:"min=1,max=31"`
	SpeedFactor float64 `validate:"gt=0"`
	TurnCosts   bool
	BlockFords  bool
}

func DefaultOptions() Options {
	return Options{
		SpeedBits:   5,
		SpeedFactor: 5,
		TurnCosts:   false,
		BlockFords:  true,
	}
}

func OptionsFromConfig(cfg util.EncoderConfig) Options {
	return Options{
		SpeedBits:   cfg.SpeedBits,
		SpeedFactor: cfg.SpeedFactor,
		TurnCosts:   cfg.TurnCosts,
		BlockFords:  cfg.BlockFords,
	}
}

func (o Options) validate() error {
	return util.ValidateStruct(o)
}

const (
	CAR                 = "car"
	CAR_STOPOVER        = "car_stopover"
	MOTORCYCLE          = "motorcycle"
	MOTORCYCLE_STOPOVER = "motorcycle_stopover"
)

// New. build the encoder chain of a vehicle profile. bits are not defined yet.
func New(profile string, opts Options) (FlagEncoder, error) {
	switch profile {
	case CAR:
		return NewCarEncoder(opts)
	case CAR_STOPOVER:
		car, err := NewCarEncoder(opts)
		if err != nil {
			return nil, err
		}
		return NewStopoverEncoder(car), nil
	case MOTORCYCLE:
		return NewMotorcycleEncoder(opts)
	case MOTORCYCLE_STOPOVER:
		mc, err := NewMotorcycleEncoder(opts)
		if err != nil {
			return nil, err
		}
		return NewStopoverEncoder(mc), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, profile)
	}
}
