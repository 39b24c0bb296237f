package routing

import "errors"

const (
	DIJKSTRA = "dijkstra"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown routing algorithm")
	ErrNoPath           = errors.New("no path found")
	ErrSnapFailed       = errors.New("waypoint could not be snapped onto the road network")
)
