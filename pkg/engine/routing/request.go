package routing

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/lintang-b-s/navigatorx-stopover/pkg/geo"
)

var (
	ErrInvalidAzimuth = errors.New("azimuth must be within [0, 2π] or NoPreference")
	ErrOutOfRange     = errors.New("waypoint position out of range")
	ErrSizeMismatch   = errors.New("number of preferred directions must match number of waypoints")
	ErrTooFewPoints   = errors.New("route request needs at least two waypoints")
	ErrInvalidPoint   = errors.New("invalid waypoint coordinate")
)

// NoPreference. azimuth sentinel of a waypoint without a preferred direction.
var NoPreference = math.NaN()

// ValidateAzimuth. ok for NoPreference and for 0 <= v <= 2π, both bounds inclusive.
func ValidateAzimuth(v float64) error {
	if math.IsNaN(v) || (v >= 0 && v <= 2*math.Pi) {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidAzimuth, v)
}

// RouteRequest. ordered waypoints (start, stopovers, destination), each with an optional preferred azimuth in
// radians clockwise from north. points & preferredDirections always have the same length.
type RouteRequest struct {
	points              []geo.Coordinate
	preferredDirections []float64
	vehicle             string
	weighting           string
	algorithm           string
	passThrough         bool
}

func NewRouteRequest(points ...geo.Coordinate) *RouteRequest {
	req := &RouteRequest{
		points:              make([]geo.Coordinate, 0, len(points)),
		preferredDirections: make([]float64, 0, len(points)),
		algorithm:           DIJKSTRA,
	}
	for _, p := range points {
		req.points = append(req.points, p)
		req.preferredDirections = append(req.preferredDirections, NoPreference)
	}
	return req
}

// AddPoint. append a waypoint with its preferred direction (NoPreference for none).
func (r *RouteRequest) AddPoint(p geo.Coordinate, direction float64) error {
	if err := ValidateAzimuth(direction); err != nil {
		return err
	}
	r.points = append(r.points, p)
	r.preferredDirections = append(r.preferredDirections, direction)
	return nil
}

func (r *RouteRequest) GetPoints() []geo.Coordinate {
	return slices.Clone(r.points)
}

func (r *RouteRequest) NumberOfPoints() int {
	return len(r.points)
}

// SetPreferredDirection. pos counts from the end when negative (-1 is the last waypoint).
func (r *RouteRequest) SetPreferredDirection(direction float64, pos int) error {
	if err := ValidateAzimuth(direction); err != nil {
		return err
	}
	idx, err := r.index(pos)
	if err != nil {
		return err
	}
	r.preferredDirections[idx] = direction
	return nil
}

// index. waypoint index of pos, negative positions count from the end.
func (r *RouteRequest) index(pos int) (int, error) {
	n := len(r.points)
	if pos >= n || -pos > n {
		return 0, fmt.Errorf("%w: position %d with %d waypoints", ErrOutOfRange, pos, n)
	}
	if pos < 0 {
		pos += n
	}
	return pos, nil
}

// SetPreferredDirections. one entry per waypoint. nothing is changed if any entry is invalid.
func (r *RouteRequest) SetPreferredDirections(directions []float64) error {
	if len(directions) != len(r.points) {
		return fmt.Errorf("%w: got %d directions for %d waypoints", ErrSizeMismatch, len(directions), len(r.points))
	}
	for _, d := range directions {
		if err := ValidateAzimuth(d); err != nil {
			return err
		}
	}
	r.preferredDirections = slices.Clone(directions)
	return nil
}

// GetPreferredDirection. same positions as SetPreferredDirection.
func (r *RouteRequest) GetPreferredDirection(pos int) (float64, error) {
	idx, err := r.index(pos)
	if err != nil {
		return NoPreference, err
	}
	return r.preferredDirections[idx], nil
}

func (r *RouteRequest) GetPreferredDirections() []float64 {
	return slices.Clone(r.preferredDirections)
}

func (r *RouteRequest) HasPreferredDirection() bool {
	for _, d := range r.preferredDirections {
		if !math.IsNaN(d) {
			return true
		}
	}
	return false
}

func (r *RouteRequest) SetVehicle(vehicle string) *RouteRequest {
	r.vehicle = vehicle
	return r
}

func (r *RouteRequest) GetVehicle() string {
	return r.vehicle
}

func (r *RouteRequest) SetWeighting(weighting string) *RouteRequest {
	r.weighting = weighting
	return r
}

func (r *RouteRequest) GetWeighting() string {
	return r.weighting
}

func (r *RouteRequest) SetAlgorithm(algorithm string) *RouteRequest {
	r.algorithm = algorithm
	return r
}

func (r *RouteRequest) GetAlgorithm() string {
	return r.algorithm
}

// SetPassThrough. forbid leaving a stopover through the edge it was reached by (no u-turn at stopovers).
func (r *RouteRequest) SetPassThrough(passThrough bool) *RouteRequest {
	r.passThrough = passThrough
	return r
}

func (r *RouteRequest) IsPassThrough() bool {
	return r.passThrough
}

// Validate. checks done before snapping the waypoints onto the graph.
func (r *RouteRequest) Validate() error {
	if len(r.points) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewPoints, len(r.points))
	}
	for i, p := range r.points {
		if !p.IsValid() {
			return fmt.Errorf("%w: #%d (%v, %v)", ErrInvalidPoint, i, p.Lat, p.Lon)
		}
	}
	switch r.algorithm {
	case DIJKSTRA, "":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, r.algorithm)
	}
	return nil
}
