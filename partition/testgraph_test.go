package partition

// adjGraph is a minimal in-package Graph implementation used only by
// this package's own tests and benchmarks, so they do not need to
// import the graphset package (which itself imports partition).
type adjGraph struct {
	n   int
	adj [][]int
}

func newAdjGraph(n int, edges [][2]int) *adjGraph {
	g := &adjGraph{n: n, adj: make([][]int, n)}
	for _, e := range edges {
		g.adj[e[0]] = append(g.adj[e[0]], e[1])
		g.adj[e[1]] = append(g.adj[e[1]], e[0])
	}
	return g
}

func (g *adjGraph) NodeCount() int { return g.n }

func (g *adjGraph) Neighbors(i int) []int { return g.adj[i] }

func (g *adjGraph) Edges() []Edge {
	var out []Edge
	for u := 0; u < g.n; u++ {
		for _, v := range g.adj[u] {
			if v > u {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	return out
}
