package pkg

import "math"

const (
	// SPEED_CONV converts meter / (km/h) into seconds.
	SPEED_CONV = 3.6

	// NO_EDGE marks a relaxation without previous (forward search) or next (backward search) edge,
	// i.e. the edge touches a start/stop/via point.
	NO_EDGE = math.MaxUint32

	DEFAULT_DIRECTION_PENALTY_SECOND = 300.0

	// max deviation between preferred azimuth & edge bearing before the edge gets dispreferred
	DEFAULT_HEADING_TOLERANCE = math.Pi / 4
)

type OsmHighwayType uint8

// enum buat osm highway buat routing: https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
const (
	MOTORWAY       OsmHighwayType = 0
	TRUNK          OsmHighwayType = 1
	PRIMARY        OsmHighwayType = 2
	SECONDARY      OsmHighwayType = 3
	TERTIARY       OsmHighwayType = 4
	RESIDENTIAL    OsmHighwayType = 5
	SERVICE        OsmHighwayType = 6
	UNCLASSIFIED   OsmHighwayType = 7
	MOTORWAY_LINK  OsmHighwayType = 8
	TRUNK_LINK     OsmHighwayType = 9
	PRIMARY_LINK   OsmHighwayType = 10
	SECONDARY_LINK OsmHighwayType = 11
	TERTIARY_LINK  OsmHighwayType = 12
	LIVING_STREET  OsmHighwayType = 13
	ROAD           OsmHighwayType = 14
	TRACK          OsmHighwayType = 15
	MOTORROAD      OsmHighwayType = 16
	UNKNOWN        OsmHighwayType = 17
)

func GetHighwayType(roadType string) OsmHighwayType {
	switch roadType {
	case "motorway":
		return MOTORWAY
	case "trunk":
		return TRUNK
	case "primary":
		return PRIMARY
	case "secondary":
		return SECONDARY
	case "tertiary":
		return TERTIARY
	case "unclassified":
		return UNCLASSIFIED
	case "residential":
		return RESIDENTIAL
	case "service":
		return SERVICE
	case "motorway_link":
		return MOTORWAY_LINK
	case "trunk_link":
		return TRUNK_LINK
	case "primary_link":
		return PRIMARY_LINK
	case "secondary_link":
		return SECONDARY_LINK
	case "tertiary_link":
		return TERTIARY_LINK
	case "living_street":
		return LIVING_STREET
	case "road":
		return ROAD
	case "track":
		return TRACK
	case "motorroad":
		return MOTORROAD
	default:
		return UNKNOWN
	}
}

// default car speed (km/h) per highway class, used when a way has no usable maxspeed tag
var DefaultCarSpeed = map[OsmHighwayType]float64{
	MOTORWAY:       100,
	MOTORWAY_LINK:  70,
	MOTORROAD:      90,
	TRUNK:          70,
	TRUNK_LINK:     65,
	PRIMARY:        65,
	PRIMARY_LINK:   60,
	SECONDARY:      60,
	SECONDARY_LINK: 50,
	TERTIARY:       50,
	TERTIARY_LINK:  40,
	UNCLASSIFIED:   30,
	RESIDENTIAL:    30,
	LIVING_STREET:  5,
	SERVICE:        20,
	ROAD:           20,
	TRACK:          15,
}
