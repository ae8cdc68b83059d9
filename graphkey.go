package graphkey

import (
	"encoding/binary"

	"github.com/jaxan-go/graphkey/partition"
)

// GraphKey is the canonical label of a graph: a byte sequence such that
// two graphs are isomorphic if and only if their keys compare equal.
// Being a plain string under the hood, it is directly usable as a map
// key and with ==, so isomorphism checks and deduplication fall out of
// Go's built-in comparable semantics rather than a bespoke hash type.
type GraphKey string

// Descriptor decodes the key back into the integer sequence produced by
// the descriptor formula. Mainly for debugging and for tests that assert
// against concrete descriptor values.
func (k GraphKey) Descriptor() []int {
	raw := []byte(k)
	out := make([]int, 0, len(raw)/8)
	for i := 0; i+8 <= len(raw); i += 8 {
		out = append(out, int(binary.BigEndian.Uint64(raw[i:i+8])))
	}
	return out
}

func encodeKey(descriptor []int) GraphKey {
	buf := make([]byte, 8*len(descriptor))
	for i, v := range descriptor {
		binary.BigEndian.PutUint64(buf[i*8:], uint64(v))
	}
	return GraphKey(buf)
}

// New computes the canonical label of g.
//
// It builds the uniform partition, refines it once, and returns
// immediately if that already leaves a discrete partition. Otherwise it
// runs the individualization search tree and takes the lexicographically
// maximum descriptor over every discrete leaf tied for the best pruning
// invariant.
//
// A graph with zero nodes is the one EmptyGraph special case: it returns
// the empty key directly rather than the descriptor formula's [0].
func New(g partition.Graph) GraphKey {
	n := g.NodeCount()
	if n == 0 {
		return GraphKey("")
	}

	p := partition.New(n)
	partition.Refine(p, g)

	if p.IsDiscrete() {
		return encodeKey(partition.Descriptor(p, g))
	}

	leaves := search(p, g)

	best := partition.Descriptor(leaves[0], g)
	for _, leaf := range leaves[1:] {
		d := partition.Descriptor(leaf, g)
		if compareIntSlices(d, best) > 0 {
			best = d
		}
	}
	return encodeKey(best)
}

func compareIntSlices(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
