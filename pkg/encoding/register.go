package encoding

import (
	"errors"
	"fmt"
	"math"
)

// RegisterWidth. width of the per-edge flags word (and of the turn flags word).
const RegisterWidth = 64

var (
	ErrRegisterOverflow = errors.New("flag register overflow")
	ErrInvalidWidth     = errors.New("invalid field width")
	ErrInvalidSpeed     = errors.New("invalid speed")
	ErrValueTooLarge    = errors.New("value does not fit into field")
)

// Allocate. reserve width bits starting at nextFreeBit. returns the field mask and the cursor for the next field.
func Allocate(nextFreeBit, width int) (uint64, int, error) {
	if width <= 0 {
		return 0, nextFreeBit, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if nextFreeBit < 0 || nextFreeBit+width > RegisterWidth {
		return 0, nextFreeBit, fmt.Errorf("%w: %d bits requested at bit %d, register has %d bits",
			ErrRegisterOverflow, width, nextFreeBit, RegisterWidth)
	}

	mask := (uint64(1)<<uint(width) - 1) << uint(nextFreeBit)
	return mask, nextFreeBit + width, nil
}

type BoolField struct {
	mask uint64
}

func NewBoolField(shift int) (BoolField, int, error) {
	mask, next, err := Allocate(shift, 1)
	if err != nil {
		return BoolField{}, shift, err
	}
	return BoolField{mask: mask}, next, nil
}

func (f BoolField) Set(flags uint64, value bool) uint64 {
	if value {
		return flags | f.mask
	}
	return flags &^ f.mask
}

func (f BoolField) Get(flags uint64) bool {
	return flags&f.mask != 0
}

func (f BoolField) Mask() uint64 {
	return f.mask
}

// IntField. unsigned integer stored in bits [shift, shift+bits).
type IntField struct {
	shift    int
	bits     int
	mask     uint64
	maxValue uint64
}

func NewIntField(shift, bits int) (IntField, int, error) {
	mask, next, err := Allocate(shift, bits)
	if err != nil {
		return IntField{}, shift, err
	}
	return IntField{
		shift:    shift,
		bits:     bits,
		mask:     mask,
		maxValue: mask >> uint(shift),
	}, next, nil
}

func (f IntField) Set(flags uint64, value uint64) (uint64, error) {
	if value > f.maxValue {
		return flags, fmt.Errorf("%w: %d > %d", ErrValueTooLarge, value, f.maxValue)
	}
	return (flags &^ f.mask) | (value << uint(f.shift)), nil
}

func (f IntField) Get(flags uint64) uint64 {
	return (flags & f.mask) >> uint(f.shift)
}

func (f IntField) Mask() uint64 {
	return f.mask
}

func (f IntField) MaxValue() uint64 {
	return f.maxValue
}

// SpeedField. speed in km/h quantized to buckets of factor km/h.
type SpeedField struct {
	IntField
	factor float64
}

func NewSpeedField(shift, bits int, factor float64) (SpeedField, int, error) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return SpeedField{}, shift, fmt.Errorf("%w: speed factor %v", ErrInvalidSpeed, factor)
	}
	f, next, err := NewIntField(shift, bits)
	if err != nil {
		return SpeedField{}, shift, err
	}
	return SpeedField{IntField: f, factor: factor}, next, nil
}

// Set. speeds above the max representable speed are clamped to the max bucket.
func (f SpeedField) Set(flags uint64, kmh float64) (uint64, error) {
	if kmh < 0 || math.IsNaN(kmh) {
		return flags, fmt.Errorf("%w: %v km/h", ErrInvalidSpeed, kmh)
	}
	bucket := math.Round(kmh / f.factor)
	if bucket > float64(f.maxValue) {
		bucket = float64(f.maxValue)
	}
	return f.IntField.Set(flags, uint64(bucket))
}

func (f SpeedField) Get(flags uint64) float64 {
	return float64(f.IntField.Get(flags)) * f.factor
}

func (f SpeedField) Factor() float64 {
	return f.factor
}

func (f SpeedField) MaxSpeed() float64 {
	return float64(f.maxValue) * f.factor
}
