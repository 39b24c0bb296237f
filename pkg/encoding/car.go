package encoding

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/lintang-b-s/navigatorx-stopover/pkg"
	"github.com/paulmach/osm"
)

const carMaxTurnCosts = 3

// CarEncoder. symmetric speed car profile. the reverse direction reuses the forward speed field.
type CarEncoder struct {
	root *rootEncoder
	opts Options

	speedBits    int
	speedFactor  float64
	maxTurnCosts int
	blockFords   bool

	speed SpeedField

	turnCost       IntField
	turnRestricted BoolField
	turnDefined    bool
}

func NewCarEncoder(opts Options) (*CarEncoder, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	maxTurnCosts := 0
	if opts.TurnCosts {
		maxTurnCosts = carMaxTurnCosts
	}
	return &CarEncoder{
		root:         newRootEncoder(),
		opts:         opts,
		speedBits:    opts.SpeedBits,
		speedFactor:  opts.SpeedFactor,
		maxTurnCosts: maxTurnCosts,
		blockFords:   opts.BlockFords,
	}, nil
}

func (c *CarEncoder) DefineWayBits(shift int) (int, error) {
	shift, err := c.root.DefineWayBits(shift)
	if err != nil {
		return shift, err
	}
	c.speed, shift, err = NewSpeedField(shift, c.speedBits, c.speedFactor)
	if err != nil {
		return shift, err
	}
	return shift, nil
}

func (c *CarEncoder) DefineTurnBits(shift int) (int, error) {
	if c.maxTurnCosts == 0 {
		return shift, nil
	}
	var err error
	if c.turnRestricted, shift, err = NewBoolField(shift); err != nil {
		return shift, err
	}
	costBits := bits.Len(uint(c.maxTurnCosts))
	if c.turnCost, shift, err = NewIntField(shift, costBits); err != nil {
		return shift, err
	}
	c.turnDefined = true
	return shift, nil
}

func (c *CarEncoder) GetSpeed(flags uint64, reverse bool) float64 {
	if !c.root.IsAccessible(flags, reverse) {
		return 0
	}
	return c.speed.Get(flags)
}

func (c *CarEncoder) SetSpeed(flags uint64, reverse bool, kmh float64) (uint64, error) {
	if !c.root.defined {
		return flags, ErrBitsNotDefined
	}
	return c.speed.Set(flags, kmh)
}

func (c *CarEncoder) GetMaxSpeed() float64 {
	return c.speed.MaxSpeed()
}

func (c *CarEncoder) IsAccessible(flags uint64, reverse bool) bool {
	return c.root.IsAccessible(flags, reverse)
}

func (c *CarEncoder) SetAccess(flags uint64, forward, backward bool) (uint64, error) {
	return c.root.SetAccess(flags, forward, backward)
}

func (c *CarEncoder) SetBool(flags uint64, key BoolKey, value bool) (uint64, error) {
	return c.root.SetBool(flags, key, value)
}

func (c *CarEncoder) IsBool(flags uint64, key BoolKey) (bool, error) {
	return c.root.IsBool(flags, key)
}

func (c *CarEncoder) SupportsTurnCosts() bool {
	return c.maxTurnCosts > 0
}

func (c *CarEncoder) GetTurnFlags(restricted bool, costs float64) (uint64, error) {
	if c.maxTurnCosts == 0 {
		return 0, nil
	}
	if !c.turnDefined {
		return 0, ErrBitsNotDefined
	}
	if restricted {
		return c.turnRestricted.Set(0, true), nil
	}
	if costs < 0 || math.IsNaN(costs) || costs > float64(c.maxTurnCosts) {
		return 0, fmt.Errorf("%w: turn cost %v, max %d", ErrValueTooLarge, costs, c.maxTurnCosts)
	}
	if costs != math.Trunc(costs) {
		return 0, fmt.Errorf("%w: turn cost %v is not a whole number", ErrInvalidTurnCost, costs)
	}
	return c.turnCost.Set(0, uint64(costs))
}

func (c *CarEncoder) IsTurnRestricted(turnFlags uint64) bool {
	if c.maxTurnCosts == 0 {
		return false
	}
	return c.turnRestricted.Get(turnFlags)
}

func (c *CarEncoder) GetTurnCost(turnFlags uint64) float64 {
	if c.maxTurnCosts == 0 {
		return 0
	}
	if c.turnRestricted.Get(turnFlags) {
		return math.Inf(1)
	}
	return float64(c.turnCost.Get(turnFlags))
}

func (c *CarEncoder) AcceptWay(tags osm.Tags) bool {
	highway := tags.Find("highway")
	if highway == "" {
		return false
	}
	if isFord(tags) && c.blockFords {
		return false
	}
	if _, ok := pkg.DefaultCarSpeed[pkg.GetHighwayType(highway)]; !ok {
		return false
	}
	return !carAccessRestricted(tags)
}

// wayAccessFlags. access + roundabout bits of a way.
func (c *CarEncoder) wayAccessFlags(tags osm.Tags) (uint64, error) {
	forward, backward := onewayDirection(tags)
	flags, err := c.root.SetAccess(0, forward, backward)
	if err != nil {
		return 0, err
	}
	return c.root.SetBool(flags, KeyRoundabout, isRoundabout(tags))
}

// waySpeed. highway class speed, lowered to the (nerfed) maxspeed tag when present.
func (c *CarEncoder) waySpeed(tags osm.Tags, maxSpeedKey string) float64 {
	speed := pkg.DefaultCarSpeed[pkg.GetHighwayType(tags.Find("highway"))]
	maxSpeed := parseSpeed(tags.Find(maxSpeedKey))
	if maxSpeed < 0 && maxSpeedKey != "maxspeed" {
		maxSpeed = parseSpeed(tags.Find("maxspeed"))
	}
	if maxSpeed > 0 {
		speed = maxSpeed * maxSpeedNerf
	}
	return math.Min(speed, c.GetMaxSpeed())
}

func (c *CarEncoder) HandleWayTags(tags osm.Tags) (uint64, error) {
	if !c.AcceptWay(tags) {
		return 0, nil
	}
	flags, err := c.wayAccessFlags(tags)
	if err != nil {
		return 0, err
	}
	return c.speed.Set(flags, c.waySpeed(tags, "maxspeed"))
}

func (c *CarEncoder) GetOptions() Options {
	return c.opts
}

func (c *CarEncoder) String() string {
	return CAR
}
