package routing

import (
	"testing"

	da "github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stopover/pkg/encoding"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type roadDef struct {
	from, to          string
	dist              float64
	forward, backward bool
	speed             float64
	stopoverTurn      bool
}

func twoWay(from, to string, dist float64) roadDef {
	return roadDef{from: from, to: to, dist: dist, forward: true, backward: true, speed: 60}
}

type testNetwork struct {
	graph   *da.Graph
	em      *encoding.EncodingManager
	encoder encoding.FlagEncoder
	v       map[string]da.Index
	e       map[string]da.Index
}

/*
buildTestNetwork. small network around the equator, ~111 m between neighbouring grid points.

	      D (0.001, 0.001)
	     / \
	    A - B - C
	(0,0)   (0,0.001)  (0,0.002)
*/
func buildTestNetwork(t *testing.T, edges ...roadDef) *testNetwork {
	t.Helper()
	em, err := encoding.NewEncodingManagerFor(zap.NewNop(), encoding.DefaultOptions(), encoding.CAR_STOPOVER)
	require.NoError(t, err)
	enc, err := em.GetEncoder(encoding.CAR_STOPOVER)
	require.NoError(t, err)

	g := da.NewGraph()
	n := &testNetwork{graph: g, em: em, encoder: enc, v: map[string]da.Index{}, e: map[string]da.Index{}}
	n.v["A"] = g.AddVertex(0, 0)
	n.v["B"] = g.AddVertex(0, 0.001)
	n.v["C"] = g.AddVertex(0, 0.002)
	n.v["D"] = g.AddVertex(0.001, 0.001)
	n.v["X"] = g.AddVertex(0.01, 0.01) // unconnected

	for _, def := range edges {
		flags, err := enc.SetAccess(0, def.forward, def.backward)
		require.NoError(t, err)
		flags, err = enc.SetSpeed(flags, false, def.speed)
		require.NoError(t, err)
		flags, err = enc.SetBool(flags, encoding.KeyStopoverTurn, def.stopoverTurn)
		require.NoError(t, err)
		id, err := g.AddEdge(n.v[def.from], n.v[def.to], def.dist, flags)
		require.NoError(t, err)
		n.e[def.from+def.to] = id
	}
	g.SetEncodedWith(em.Descriptor())
	return n
}

// defaultNetwork. direct B-C plus a detour B-A-D-C.
func defaultNetwork(t *testing.T) *testNetwork {
	return buildTestNetwork(t,
		twoWay("B", "C", 111),
		twoWay("B", "A", 111),
		twoWay("A", "D", 157),
		twoWay("D", "C", 157),
	)
}

func (n *testNetwork) ids(names ...string) []da.Index {
	out := make([]da.Index, len(names))
	for i, name := range names {
		out[i] = n.v[name]
	}
	return out
}

func (n *testNetwork) edgeIds(names ...string) []da.Index {
	out := make([]da.Index, len(names))
	for i, name := range names {
		out[i] = n.e[name]
	}
	return out
}
