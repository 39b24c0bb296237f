package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunKosaraju(t *testing.T) {
	g := NewGraph()
	for i := 0; i < 6; i++ {
		g.AddVertex(0, float64(i)*0.001)
	}
	// 0 <-> 1 <-> 2 two way, 2 -> 3 one way, 3 <-> 4, 5 isolated
	oneway := map[Index]bool{}
	add := func(u, v Index, isOneway bool) {
		id, err := g.AddEdge(u, v, 10, 0)
		require.NoError(t, err)
		oneway[id] = isOneway
	}
	add(0, 1, false)
	add(1, 2, false)
	add(2, 3, true)
	add(3, 4, false)

	accept := func(e EdgeState) bool {
		return !oneway[e.GetEdge()] || !e.IsReversed()
	}
	comp, sizes := g.RunKosaraju(accept)

	assert.Len(t, sizes, 3)
	assert.Equal(t, comp[0], comp[1])
	assert.Equal(t, comp[1], comp[2])
	assert.Equal(t, comp[3], comp[4])
	assert.NotEqual(t, comp[2], comp[3])
	assert.NotEqual(t, comp[4], comp[5])

	largest := LargestComponent(sizes)
	assert.Equal(t, comp[0], largest)
	assert.Equal(t, 3, sizes[largest])

	// every edge usable both ways: one component plus the isolated vertex
	comp, sizes = g.RunKosaraju(func(e EdgeState) bool { return true })
	assert.Len(t, sizes, 2)
	assert.Equal(t, comp[0], comp[4])
}
