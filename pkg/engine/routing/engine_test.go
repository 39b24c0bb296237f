package routing

import (
	"context"
	"math"
	"testing"

	"github.com/lintang-b-s/navigatorx-stopover/pkg/costfunction"
	da "github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/encoding"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/geo"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/spatialindex"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine(t *testing.T, n *testNetwork) *RoutingEngine {
	t.Helper()
	return newTestEngineWith(t, n, util.WeightingConfig{Name: costfunction.STOPOVER, Mode: "endpoint", Penalty: 300})
}

func newTestEngineWith(t *testing.T, n *testNetwork, cfg util.WeightingConfig) *RoutingEngine {
	t.Helper()
	rt := spatialindex.NewRtree()
	rt.Build(n.graph, zap.NewNop())
	return NewRoutingEngine(n.graph, n.em, rt, cfg, math.Pi/4, zap.NewNop())
}

func (n *testNetwork) coord(name string) geo.Coordinate {
	v := n.graph.GetVertex(n.v[name])
	return geo.NewCoordinate(v.GetLat(), v.GetLon())
}

func TestRoute(t *testing.T) {
	n := defaultNetwork(t)
	re := newTestEngine(t, n)

	testCases := []struct {
		name         string
		req          func() *RouteRequest
		wantVertices []string
		wantLegs     int
		wantDistance float64
	}{
		{
			name:         "direct",
			req:          func() *RouteRequest { return NewRouteRequest(n.coord("B"), n.coord("C")) },
			wantVertices: []string{"B", "C"},
			wantLegs:     1,
			wantDistance: 111,
		},
		{
			name: "leave heading west",
			req: func() *RouteRequest {
				req := NewRouteRequest(n.coord("B"), n.coord("C"))
				require.NoError(t, req.SetPreferredDirection(3*math.Pi/2, 0))
				return req
			},
			wantVertices: []string{"B", "A", "D", "C"},
			wantLegs:     1,
			wantDistance: 425,
		},
		{
			name: "heading that agrees with the direct edge",
			req: func() *RouteRequest {
				req := NewRouteRequest(n.coord("B"), n.coord("C"))
				require.NoError(t, req.SetPreferredDirections([]float64{math.Pi / 2, math.Pi / 2}))
				return req
			},
			wantVertices: []string{"B", "C"},
			wantLegs:     1,
			wantDistance: 111,
		},
		{
			name:         "stopover",
			req:          func() *RouteRequest { return NewRouteRequest(n.coord("A"), n.coord("B"), n.coord("C")) },
			wantVertices: []string{"A", "B", "C"},
			wantLegs:     2,
			wantDistance: 222,
		},
		{
			name:         "back and forth",
			req:          func() *RouteRequest { return NewRouteRequest(n.coord("A"), n.coord("B"), n.coord("A")) },
			wantVertices: []string{"A", "B", "A"},
			wantLegs:     2,
			wantDistance: 222,
		},
		{
			name: "back and forth passing through",
			req: func() *RouteRequest {
				return NewRouteRequest(n.coord("A"), n.coord("B"), n.coord("A")).SetPassThrough(true)
			},
			wantVertices: []string{"A", "B", "C", "D", "A"},
			wantLegs:     2,
			wantDistance: 536,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := re.Route(context.Background(), tt.req())
			require.NoError(t, err)

			want := make([]geo.Coordinate, len(tt.wantVertices))
			for i, name := range tt.wantVertices {
				want[i] = n.coord(name)
			}
			assert.Equal(t, want, res.Points)
			assert.Len(t, res.Legs, tt.wantLegs)
			assert.InDelta(t, tt.wantDistance, res.Distance, 1e-9)
			assert.InDelta(t, tt.wantDistance*0.06, res.Weight, 1e-9)
			assert.InDelta(t, res.Weight/60, res.TravelTimeMinutes(), 1e-9)
			assert.NotEmpty(t, res.Polyline())
			assert.Equal(t, "fastest_stopover_delay(endpoint)|car_stopover", res.GetWeighting())
		})
	}

	// the heading of one request never leaks into the next
	assert.Equal(t, uint64(0), n.graph.GetMarkers().Count())
}

func TestRouteTurnDelayAtStopover(t *testing.T) {
	n := defaultNetwork(t)
	re := newTestEngineWith(t, n, util.WeightingConfig{Name: costfunction.STOPOVER, Mode: "turn_delay", Penalty: 30})

	testCases := []struct {
		name       string
		req        *RouteRequest
		wantWeight float64
	}{
		{
			name:       "no stopover",
			req:        NewRouteRequest(n.coord("B"), n.coord("C")),
			wantWeight: 111 * 0.06,
		},
		{
			// A-B arrives on and B-C leaves over an edge touching the stopover
			name:       "stopover at B",
			req:        NewRouteRequest(n.coord("A"), n.coord("B"), n.coord("C")),
			wantWeight: 222*0.06 + 2*30,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := re.Route(context.Background(), tt.req)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantWeight, res.Weight, 1e-9)
			assert.Equal(t, "fastest_stopover_delay(turn_delay)|car_stopover", res.GetWeighting())
		})
	}

	// the stored flags are left alone
	for _, e := range n.edgeIds("BA", "BC") {
		on, err := n.encoder.IsBool(n.graph.GetEdge(e).GetFlags(), encoding.KeyStopoverTurn)
		require.NoError(t, err)
		assert.False(t, on)
	}
}

func TestMarkStopoverTurns(t *testing.T) {
	n := defaultNetwork(t)
	qg := da.NewQueryGraph(n.graph)

	marked, err := MarkStopoverTurns(qg, n.encoder, n.ids("A", "C"))
	require.NoError(t, err)
	assert.Equal(t, 0, marked)

	marked, err = MarkStopoverTurns(qg, n.encoder, n.ids("A", "B", "D", "C"))
	require.NoError(t, err)
	// BA, BC around B plus AD, DC around D
	assert.Equal(t, 4, marked)
	for _, e := range n.edgeIds("BA", "BC", "AD", "DC") {
		on, err := n.encoder.IsBool(qg.GetEdgeFlags(e), encoding.KeyStopoverTurn)
		require.NoError(t, err)
		assert.True(t, on)
		assert.True(t, n.encoder.IsAccessible(qg.GetEdgeFlags(e), false))
	}

	car, err := encoding.New(encoding.CAR, encoding.DefaultOptions())
	require.NoError(t, err)
	_, err = car.DefineWayBits(0)
	require.NoError(t, err)
	_, err = MarkStopoverTurns(da.NewQueryGraph(n.graph), car, n.ids("A", "B", "C"))
	assert.ErrorIs(t, err, encoding.ErrUnknownKey)
}

func TestRouteWeightingOverride(t *testing.T) {
	n := defaultNetwork(t)
	re := newTestEngine(t, n)

	req := NewRouteRequest(n.coord("B"), n.coord("C")).SetWeighting(costfunction.SHORTEST).SetVehicle(encoding.CAR_STOPOVER)
	res, err := re.Route(context.Background(), req)
	require.NoError(t, err)
	assert.InDelta(t, 111.0, res.Weight, 1e-9)
	assert.Equal(t, "shortest|car_stopover", res.GetWeighting())
}

func TestRouteErrors(t *testing.T) {
	n := defaultNetwork(t)
	re := newTestEngine(t, n)

	testCases := []struct {
		name     string
		req      *RouteRequest
		wantErrs []error
	}{
		{
			name:     "single point",
			req:      NewRouteRequest(n.coord("A")),
			wantErrs: []error{util.ErrBadParamInput, ErrTooFewPoints},
		},
		{
			name:     "far away",
			req:      NewRouteRequest(n.coord("A"), geo.NewCoordinate(-6.2, 106.8)),
			wantErrs: []error{util.ErrNotFound, ErrSnapFailed},
		},
		{
			name:     "unknown vehicle",
			req:      NewRouteRequest(n.coord("A"), n.coord("C")).SetVehicle("bike"),
			wantErrs: []error{util.ErrBadParamInput, encoding.ErrUnknownProfile},
		},
		{
			name:     "unknown weighting",
			req:      NewRouteRequest(n.coord("A"), n.coord("C")).SetWeighting("curvy"),
			wantErrs: []error{util.ErrInvalidConfig},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := re.Route(context.Background(), tt.req)
			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}
