package datastructure

// RunKosaraju. strongly connected components following only the edge traversals accepted by accept (edge seen from
// the vertex it leaves). returns the component id of every vertex and the size of every component.
func (g *Graph) RunKosaraju(accept func(e EdgeState) bool) ([]Index, []int) {
	n := g.NumberOfVertices()
	out := make([][]Index, n)
	in := make([][]Index, n)
	for u := Index(0); u < Index(n); u++ {
		g.ForEdgesOf(u, func(e EdgeState) {
			if !accept(e) {
				return
			}
			v := e.GetAdjNode()
			out[u] = append(out[u], v)
			in[v] = append(in[v], u)
		})
	}

	order := make([]Index, 0, n)
	visited := make([]bool, n)
	for v := Index(0); v < Index(n); v++ {
		if !visited[v] {
			order = dfs(v, out, visited, order)
		}
	}

	// reset visited
	visited = make([]bool, n)
	comp := make([]Index, n)
	sizes := make([]int, 0, 10)
	component := make([]Index, 0, 10)
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if visited[v] {
			continue
		}
		component = dfs(v, in, visited, component[:0])
		id := Index(len(sizes))
		for _, u := range component {
			comp[u] = id
		}
		sizes = append(sizes, len(component))
	}
	return comp, sizes
}

// dfs. iterative, appends the vertices reached from s in post-order.
func dfs(s Index, adj [][]Index, visited []bool, output []Index) []Index {
	type frame struct {
		v    Index
		next int
	}
	visited[s] = true
	stack := []frame{{v: s}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(adj[top.v]) {
			w := adj[top.v][top.next]
			top.next++
			if !visited[w] {
				visited[w] = true
				stack = append(stack, frame{v: w})
			}
			continue
		}
		output = append(output, top.v)
		stack = stack[:len(stack)-1]
	}
	return output
}

// LargestComponent. id of the biggest component returned by RunKosaraju.
func LargestComponent(sizes []int) Index {
	best := 0
	for i, size := range sizes {
		if size > sizes[best] {
			best = i
		}
	}
	return Index(best)
}
