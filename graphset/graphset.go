// Package graphset provides a concrete, mutable undirected graph
// container and an adapter from gonum's graph types to the minimal
// contract the graphkey core requires, so neither needs to know about
// the other's representation.
package graphset

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/jaxan-go/graphkey/partition"
)

// Graph is a mutable undirected graph backed by
// gonum.org/v1/gonum/graph/simple.UndirectedGraph, satisfying
// partition.Graph directly so it can be handed straight to
// graphkey.New.
type Graph struct {
	g *simple.UndirectedGraph
	n int
}

// New constructs an empty graph over nodes [0, n).
func New(n int) *Graph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	return &Graph{g: g, n: n}
}

// AddEdge inserts an undirected edge between u and v. Panics if either
// node index is out of range.
func (s *Graph) AddEdge(u, v int) {
	if u < 0 || u >= s.n || v < 0 || v >= s.n {
		panic("graphset: AddEdge called with a node index out of range")
	}
	s.g.SetEdge(simple.Edge{F: simple.Node(int64(u)), T: simple.Node(int64(v))})
}

// NodeCount implements partition.Graph.
func (s *Graph) NodeCount() int { return s.n }

// Neighbors implements partition.Graph.
func (s *Graph) Neighbors(i int) []int {
	it := s.g.From(int64(i))
	out := make([]int, 0, it.Len())
	for it.Next() {
		out = append(out, int(it.Node().ID()))
	}
	return out
}

// Edges implements partition.Graph.
func (s *Graph) Edges() []partition.Edge {
	it := s.g.Edges()
	var out []partition.Edge
	for it.Next() {
		e := it.Edge()
		out = append(out, partition.Edge{U: int(e.From().ID()), V: int(e.To().ID())})
	}
	return out
}

// Underlying returns the wrapped gonum graph, for callers that want to
// run other gonum algorithms over the same data.
func (s *Graph) Underlying() *simple.UndirectedGraph { return s.g }

// Adapt wraps any gonum graph.Graph whose node IDs form a dense range
// [0, N) into the partition.Graph contract, without copying adjacency
// data. Most gonum graph constructors (simple.UndirectedGraph,
// graphs/gen generators) produce exactly such dense-ID graphs.
func Adapt(g graph.Graph) partition.Graph {
	return &adapted{g: g, n: g.Nodes().Len()}
}

type adapted struct {
	g graph.Graph
	n int
}

func (a *adapted) NodeCount() int { return a.n }

func (a *adapted) Neighbors(i int) []int {
	it := a.g.From(int64(i))
	out := make([]int, 0, it.Len())
	for it.Next() {
		out = append(out, int(it.Node().ID()))
	}
	return out
}

func (a *adapted) Edges() []partition.Edge {
	nodes := graph.NodesOf(a.g.Nodes())
	var out []partition.Edge
	for _, u := range nodes {
		uid := u.ID()
		neighbors := graph.NodesOf(a.g.From(uid))
		for _, v := range neighbors {
			if v.ID() > uid {
				out = append(out, partition.Edge{U: int(uid), V: int(v.ID())})
			}
		}
	}
	return out
}
