// Package isocheck provides a small, independent isomorphism checker used
// to cross-validate the canonical-labeling engine in tests and by the
// command-line harness's "bench" subcommand. It is deliberately not
// shared code with partition/graphkey: agreement between the two is only
// a meaningful check if neither can hide the other's bugs.
package isocheck

import "github.com/jaxan-go/graphkey/partition"

// Isomorphic reports whether a and b are isomorphic, searched by
// degree-sequence-pruned backtracking over candidate node mappings. This
// is exponential in the worst case and intended for the small graphs
// exercised by tests and ad hoc CLI comparisons, not as a replacement for
// the canonical-labeling engine.
func Isomorphic(a, b partition.Graph) bool {
	n := a.NodeCount()
	if n != b.NodeCount() {
		return false
	}

	degA := degrees(a)
	degB := degrees(b)
	sortedA := append([]int(nil), degA...)
	sortedB := append([]int(nil), degB...)
	sortInts(sortedA)
	sortInts(sortedB)
	for i := range sortedA {
		if sortedA[i] != sortedB[i] {
			return false
		}
	}

	adjA := adjacencySets(a)
	adjB := adjacencySets(b)

	mapping := make([]int, n)
	for i := range mapping {
		mapping[i] = -1
	}
	used := make([]bool, n)

	// order[k] is the k-th node of a to assign, chosen by descending
	// degree so that constraints bite as early as possible.
	order := orderByDegreeDesc(degA)

	return search(0, order, mapping, used, degA, degB, adjA, adjB)
}

func search(k int, order []int, mapping []int, used []bool, degA, degB []int, adjA, adjB []map[int]bool) bool {
	if k == len(order) {
		return true
	}

	u := order[k]
	for v := 0; v < len(degB); v++ {
		if used[v] || degA[u] != degB[v] {
			continue
		}
		if !consistent(u, v, mapping, adjA, adjB) {
			continue
		}

		mapping[u] = v
		used[v] = true
		if search(k+1, order, mapping, used, degA, degB, adjA, adjB) {
			return true
		}
		mapping[u] = -1
		used[v] = false
	}
	return false
}

// consistent reports whether mapping u -> v agrees with every edge among
// already-assigned nodes.
func consistent(u, v int, mapping []int, adjA, adjB []map[int]bool) bool {
	for w, mv := range mapping {
		if mv == -1 || w == u {
			continue
		}
		if adjA[u][w] != adjB[v][mv] {
			return false
		}
	}
	return true
}

func degrees(g partition.Graph) []int {
	n := g.NodeCount()
	d := make([]int, n)
	for i := 0; i < n; i++ {
		d[i] = len(g.Neighbors(i))
	}
	return d
}

func adjacencySets(g partition.Graph) []map[int]bool {
	n := g.NodeCount()
	adj := make([]map[int]bool, n)
	for i := 0; i < n; i++ {
		adj[i] = make(map[int]bool, len(g.Neighbors(i)))
		for _, j := range g.Neighbors(i) {
			adj[i][j] = true
		}
	}
	return adj
}

func orderByDegreeDesc(deg []int) []int {
	order := make([]int, len(deg))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && deg[order[j]] > deg[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
