package geo

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/util"
)

/*
BearingTo. initial bearing (degree, clockwise from north, [0,360)) of the great circle from p1 to p2.
https://www.movable-type.co.uk/scripts/latlong.html
*/
func BearingTo(p1Lat, p1Lon, p2Lat, p2Lon float64) float64 {
	dLon := util.DegreeToRadians(p2Lon - p1Lon)

	lat1 := util.DegreeToRadians(p1Lat)
	lat2 := util.DegreeToRadians(p2Lat)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Mod(util.RadiansToDegree(math.Atan2(y, x))+360, 360.0)
}

// Azimuth. BearingTo as an s1.Angle in [0, 2π).
func Azimuth(from, to Coordinate) s1.Angle {
	return s1.Angle(util.DegreeToRadians(BearingTo(from.Lat, from.Lon, to.Lat, to.Lon)))
}

// AzimuthDelta. smallest absolute difference of two azimuths, in [0, π].
func AzimuthDelta(a, b s1.Angle) s1.Angle {
	d := math.Mod(math.Abs(a.Radians()-b.Radians()), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return s1.Angle(d)
}

// ReverseAzimuth. the opposite heading, in [0, 2π).
func ReverseAzimuth(a s1.Angle) s1.Angle {
	return s1.Angle(math.Mod(a.Radians()+math.Pi, 2*math.Pi))
}
