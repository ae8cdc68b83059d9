package graphkey

import "github.com/jaxan-go/graphkey/partition"

// adjGraph is a minimal partition.Graph implementation used only by this
// package's own tests.
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

func (g *adjGraph) Edges() []partition.Edge {
	var out []partition.Edge
	for u := 0; u < g.n; u++ {
		for _, v := range g.adj[u] {
			if v > u {
				out = append(out, partition.Edge{U: u, V: v})
			}
		}
	}
	return out
}

// permute returns the graph obtained by relabeling node i of g as perm[i].
func (g *adjGraph) permute(perm []int) *adjGraph {
	out := &adjGraph{n: g.n, adj: make([][]int, g.n)}
	for u := 0; u < g.n; u++ {
		for _, v := range g.adj[u] {
			out.adj[perm[u]] = append(out.adj[perm[u]], perm[v])
		}
	}
	return out
}
