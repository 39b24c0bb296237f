package encoding

import (
	"strconv"
	"strings"

	"github.com/lintang-b-s/navigatorx-stopover/pkg"
	"github.com/paulmach/osm"
)

var (
	restrictedValues = map[string]struct{}{
		"private":      {},
		"agricultural": {},
		"forestry":     {},
		"no":           {},
		"restricted":   {},
		"delivery":     {},
		"military":     {},
		"emergency":    {},
	}

	// most specific first
	carRestrictions = []string{"motorcar", "motor_vehicle", "vehicle", "access"}
)

const (
	// osm maxspeed tags are legal limits, real traffic is a bit slower
	maxSpeedNerf = 0.9
	mphToKmh     = 1.609344
)

// parseSpeed. parse an osm maxspeed value ("50", "30 mph", "none"). returns -1 if unusable.
func parseSpeed(str string) float64 {
	str = strings.TrimSpace(strings.ToLower(str))
	if str == "" {
		return -1
	}
	if str == "none" {
		return 140
	}
	if idx := strings.IndexByte(str, ';'); idx >= 0 {
		str = strings.TrimSpace(str[:idx])
	}

	factor := 1.0
	switch {
	case strings.HasSuffix(str, "mph"):
		str = strings.TrimSpace(strings.TrimSuffix(str, "mph"))
		factor = mphToKmh
	case strings.HasSuffix(str, "km/h"):
		str = strings.TrimSpace(strings.TrimSuffix(str, "km/h"))
	case strings.HasSuffix(str, "kmh"):
		str = strings.TrimSpace(strings.TrimSuffix(str, "kmh"))
	}

	val, err := strconv.ParseFloat(str, 64)
	if err != nil || val <= 0 {
		return -1
	}
	return val * factor
}

func isFord(tags osm.Tags) bool {
	return tags.Find("highway") == "ford" || tags.Find("ford") == "yes"
}

// carAccessRestricted. the most specific access tag present decides.
func carAccessRestricted(tags osm.Tags) bool {
	for _, key := range carRestrictions {
		val := tags.Find(key)
		if val == "" {
			continue
		}
		_, restricted := restrictedValues[val]
		return restricted
	}
	return false
}

func isRoundabout(tags osm.Tags) bool {
	junction := tags.Find("junction")
	return junction == "roundabout" || junction == "circular"
}

// onewayDirection. (forward, backward) access of a way.
func onewayDirection(tags osm.Tags) (bool, bool) {
	switch tags.Find("oneway") {
	case "yes", "true", "1":
		return true, false
	case "-1", "reverse":
		return false, true
	}
	if isRoundabout(tags) {
		return true, false
	}
	switch pkg.GetHighwayType(tags.Find("highway")) {
	case pkg.MOTORWAY, pkg.MOTORWAY_LINK:
		if tags.Find("oneway") != "no" {
			return true, false
		}
	}
	return true, true
}
