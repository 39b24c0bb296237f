package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate(t *testing.T) {
	testCases := []struct {
		name     string
		shift    int
		width    int
		wantMask uint64
		wantNext int
		wantErr  error
	}{
		{name: "first bit", shift: 0, width: 1, wantMask: 0b1, wantNext: 1},
		{name: "after base", shift: 3, width: 5, wantMask: 0b11111000, wantNext: 8},
		{name: "whole register", shift: 0, width: 64, wantMask: math.MaxUint64, wantNext: 64},
		{name: "last bit", shift: 63, width: 1, wantMask: 1 << 63, wantNext: 64},
		{name: "overflow", shift: 60, width: 5, wantErr: ErrRegisterOverflow},
		{name: "full register", shift: 64, width: 1, wantErr: ErrRegisterOverflow},
		{name: "zero width", shift: 0, width: 0, wantErr: ErrInvalidWidth},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			mask, next, err := Allocate(tt.shift, tt.width)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.shift, next)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMask, mask)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestBoolField(t *testing.T) {
	f, next, err := NewBoolField(7)
	require.NoError(t, err)
	assert.Equal(t, 8, next)

	flags := uint64(0b1010101)
	set := f.Set(flags, true)
	assert.True(t, f.Get(set))
	assert.Equal(t, flags, set&^f.Mask())

	cleared := f.Set(set, false)
	assert.False(t, f.Get(cleared))
	assert.Equal(t, flags, cleared)
}

func TestIntFieldTooLarge(t *testing.T) {
	f, _, err := NewIntField(2, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), f.MaxValue())

	flags, err := f.Set(0, 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), f.Get(flags))
	assert.Equal(t, uint64(5<<2), flags)

	_, err = f.Set(0, 8)
	assert.ErrorIs(t, err, ErrValueTooLarge)
}

func TestSpeedFieldScenarioA(t *testing.T) {
	f, next, err := NewSpeedField(0, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, next)
	assert.Equal(t, 155.0, f.MaxSpeed())

	flags, err := f.Set(0, 50)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, f.Get(flags), 5.0)
}

func TestSpeedFieldRoundTrip(t *testing.T) {
	testCases := []struct {
		name   string
		shift  int
		bits   int
		factor float64
	}{
		{name: "car default", shift: 3, bits: 5, factor: 5},
		{name: "fine grained", shift: 10, bits: 8, factor: 1},
		{name: "half km/h", shift: 40, bits: 10, factor: 0.5},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			f, _, err := NewSpeedField(tt.shift, tt.bits, tt.factor)
			require.NoError(t, err)

			for s := 0.0; s <= f.MaxSpeed(); s += tt.factor / 4 {
				flags, err := f.Set(0, s)
				require.NoError(t, err)
				assert.LessOrEqual(t, math.Abs(f.Get(flags)-s), tt.factor, "speed %v", s)
				assert.Zero(t, flags&^f.Mask())
			}
		})
	}
}

func TestSpeedFieldClampAndInvalid(t *testing.T) {
	f, _, err := NewSpeedField(0, 5, 5)
	require.NoError(t, err)

	flags, err := f.Set(0, 400)
	require.NoError(t, err)
	assert.Equal(t, f.MaxSpeed(), f.Get(flags))

	_, err = f.Set(0, -1)
	assert.ErrorIs(t, err, ErrInvalidSpeed)
	_, err = f.Set(0, math.NaN())
	assert.ErrorIs(t, err, ErrInvalidSpeed)

	_, _, err = NewSpeedField(0, 5, 0)
	assert.ErrorIs(t, err, ErrInvalidSpeed)
}
