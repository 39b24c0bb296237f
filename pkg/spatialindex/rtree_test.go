package spatialindex

import (
	"testing"

	da "github.com/lintang-b-s/navigatorx-stopover/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRtreeSnap(t *testing.T) {
	g := da.NewGraph()
	a := g.AddVertex(-7.7700, 110.3700)
	b := g.AddVertex(-7.7710, 110.3700)
	c := g.AddVertex(-7.7720, 110.3700)
	g.AddVertex(-7.7705, 110.3700) // isolated, never snapped to
	_, err := g.AddEdge(a, b, 111, 0)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, 111, 0)
	require.NoError(t, err)

	rt := NewRtree()
	rt.Build(g, zap.NewNop())
	assert.Equal(t, 3, rt.Len())

	testCases := []struct {
		name     string
		lat, lon float64
		want     da.Index
		found    bool
	}{
		{name: "on a vertex", lat: -7.7710, lon: 110.3700, want: b, found: true},
		{name: "close to a", lat: -7.77045, lon: 110.37001, want: a, found: true},
		{name: "a bit east of c", lat: -7.7720, lon: 110.3710, want: c, found: true},
		{name: "too far", lat: -6.2, lon: 106.8, want: da.INVALID_VERTEX_ID, found: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			v, dist, ok := rt.Snap(g, tt.lat, tt.lon)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, v)
			if ok {
				assert.GreaterOrEqual(t, dist, 0.0)
			}
		})
	}
}

func TestRtreeBuildFiltered(t *testing.T) {
	g := da.NewGraph()
	a := g.AddVertex(-7.7700, 110.3700)
	b := g.AddVertex(-7.7710, 110.3700)
	_, err := g.AddEdge(a, b, 111, 0)
	require.NoError(t, err)

	rt := NewRtree()
	rt.BuildFiltered(g, func(v da.Index) bool { return v != a }, zap.NewNop())
	assert.Equal(t, 1, rt.Len())

	v, _, ok := rt.Snap(g, -7.7700, 110.3700)
	require.True(t, ok)
	assert.Equal(t, b, v)
}
