// Package gen provides random-graph and permutation generators used by
// the CLI harness and by the property-style tests that exercise the
// canonical-labeling engine against random input, mirroring the
// benchmark-graph construction in the reference implementation's
// command-line driver.
package gen

import (
	"math/rand"

	gonumgen "gonum.org/v1/gonum/graph/graphs/gen"

	"github.com/jaxan-go/graphkey/graphset"
)

// GNP builds an Erdos-Renyi G(n, p) random undirected graph: each of the
// n*(n-1)/2 possible edges is present independently with probability p.
func GNP(n int, p float64, rng *rand.Rand) *graphset.Graph {
	g := graphset.New(n)
	if err := gonumgen.Gnp(g.Underlying(), n, p, rng); err != nil {
		panic("gen: " + err.Error())
	}
	return g
}

// Permute returns a copy of g with its nodes relabeled by perm: node i in
// g becomes node perm[i] in the result. perm must be a permutation of
// [0, g.NodeCount()).
func Permute(g *graphset.Graph, perm []int) *graphset.Graph {
	n := g.NodeCount()
	if len(perm) != n {
		panic("gen: Permute called with a permutation of the wrong length")
	}
	out := graphset.New(n)
	for _, e := range g.Edges() {
		out.AddEdge(perm[e.U], perm[e.V])
	}
	return out
}

// RandomPermutation returns a uniformly random permutation of [0, n).
func RandomPermutation(n int, rng *rand.Rand) []int {
	return rng.Perm(n)
}

// MutateOneEdge returns a copy of g with exactly one edge flipped: if
// (u, v) was present it is removed, otherwise it is added. Used to build
// the P2 distinguishability scenario (perturb one edge, expect a
// different key).
func MutateOneEdge(g *graphset.Graph, u, v int) *graphset.Graph {
	out := graphset.New(g.NodeCount())
	has := false
	for _, e := range g.Edges() {
		if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
			has = true
			continue
		}
		out.AddEdge(e.U, e.V)
	}
	if !has {
		out.AddEdge(u, v)
	}
	return out
}
