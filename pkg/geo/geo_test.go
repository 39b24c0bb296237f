package geo

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
)

func TestBearingTo(t *testing.T) {
	testCases := []struct {
		name string
		to   Coordinate
		want float64
	}{
		{name: "north", to: NewCoordinate(1, 0), want: 0},
		{name: "east", to: NewCoordinate(0, 1), want: 90},
		{name: "south", to: NewCoordinate(-1, 0), want: 180},
		{name: "west", to: NewCoordinate(0, -1), want: 270},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := BearingTo(0, 0, tt.to.Lat, tt.to.Lon)
			assert.InDelta(t, tt.want, got, 1e-6)
			assert.InDelta(t, tt.want*math.Pi/180, Azimuth(NewCoordinate(0, 0), tt.to).Radians(), 1e-6)
		})
	}
}

func TestAzimuthDelta(t *testing.T) {
	testCases := []struct {
		name string
		a, b float64
		want float64
	}{
		{name: "same", a: 1, b: 1, want: 0},
		{name: "across north", a: 0.1, b: 2*math.Pi - 0.1, want: 0.2},
		{name: "opposite", a: 0, b: math.Pi, want: math.Pi},
		{name: "quarter", a: math.Pi / 2, b: math.Pi, want: math.Pi / 2},
		{name: "full turn", a: 0, b: 2 * math.Pi, want: 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := AzimuthDelta(s1.Angle(tt.a), s1.Angle(tt.b))
			assert.InDelta(t, tt.want, got.Radians(), 1e-9)
			assert.InDelta(t, got.Radians(), AzimuthDelta(s1.Angle(tt.b), s1.Angle(tt.a)).Radians(), 1e-9)
		})
	}

	assert.InDelta(t, 3*math.Pi/2, ReverseAzimuth(s1.Angle(math.Pi/2)).Radians(), 1e-9)
	assert.InDelta(t, math.Pi/2, ReverseAzimuth(s1.Angle(3*math.Pi/2)).Radians(), 1e-9)
}

func TestDistance(t *testing.T) {
	a := NewCoordinate(-7.7956, 110.3695)
	b := NewCoordinate(-7.7829, 110.3671)

	km := CalculateHaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)
	assert.InDelta(t, km*1000, DistanceMeter(a, b), 1.0)
	assert.InDelta(t, 111195.0, DistanceMeter(NewCoordinate(0, 0), NewCoordinate(1, 0)), 5.0)

	assert.True(t, a.IsValid())
	assert.False(t, NewCoordinate(91, 0).IsValid())
	assert.False(t, NewCoordinate(0, 181).IsValid())
}

func TestGetDestinationPoint(t *testing.T) {
	lat, lon := GetDestinationPoint(0, 0, 90, 111.195)
	assert.InDelta(t, 0.0, lat, 1e-6)
	assert.InDelta(t, 1.0, lon, 1e-3)

	lat, lon = GetDestinationPoint(0, 179.5, 90, 111.195)
	assert.InDelta(t, 0.0, lat, 1e-6)
	assert.InDelta(t, -179.5, lon, 1e-3)
}
