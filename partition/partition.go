// Package partition can be used to construct the coarsest refinement of a partition P of a set N of
// integers [0, n) with respect to the adjacency relation of a graph.
//
// A colouring is represented as an arena of cells plus index maps — colour to cell, node to cell,
// node to colour — rather than the reference-counted, interior-mutable cell handles a naive port
// from a language with a borrow checker would reach for. Every cell, once created, keeps its index
// for the lifetime of the partition: splits only ever append, never insert, so a cell index is a
// stable, copyable identifier.
package partition

import (
	"fmt"
	"sort"
)

// cell is a non-empty set of node indices sharing a colour.
type cell struct {
	color   int
	members map[int]struct{}
}

// Partition is a colouring of the node set [0, size). Cells are insertion-ordered in the cells
// slice; they are created by New (one cell), Individualize (splits a cell in two), and Refine's
// internal use of SplitCell (splits a cell into its degree-sorted buckets).
type Partition struct {
	size int

	cells       []cell
	colorOfCell map[int]int

	cellOfNode  []int
	colorOfNode []int
}

// New constructs the uniform partition: one cell of colour 0 holding every node in [0, n). n == 0
// is a degenerate but valid partition with zero cells, vacuously discrete.
func New(n int) *Partition {
	p := &Partition{
		size:        n,
		colorOfCell: make(map[int]int, n),
		cellOfNode:  make([]int, n),
		colorOfNode: make([]int, n),
	}
	if n == 0 {
		return p
	}
	members := make(map[int]struct{}, n)
	for i := 0; i < n; i++ {
		members[i] = struct{}{}
	}
	p.cells = append(p.cells, cell{color: 0, members: members})
	p.colorOfCell[0] = 0
	return p
}

// Clone returns a deep copy, independent of the receiver. Each search tree branch clones the
// partition of its parent before mutating it.
func (p *Partition) Clone() *Partition {
	np := &Partition{
		size:        p.size,
		cells:       make([]cell, len(p.cells)),
		colorOfCell: make(map[int]int, len(p.colorOfCell)),
		cellOfNode:  append([]int(nil), p.cellOfNode...),
		colorOfNode: append([]int(nil), p.colorOfNode...),
	}
	for i, c := range p.cells {
		members := make(map[int]struct{}, len(c.members))
		for n := range c.members {
			members[n] = struct{}{}
		}
		np.cells[i] = cell{color: c.color, members: members}
	}
	for c, idx := range p.colorOfCell {
		np.colorOfCell[c] = idx
	}
	return np
}

// Size returns N, the number of nodes.
func (p *Partition) Size() int { return p.size }

// CellCount returns the current number of cells.
func (p *Partition) CellCount() int { return len(p.cells) }

// IsDiscrete reports whether every cell is a singleton, i.e. whether the number of cells equals
// the number of nodes.
func (p *Partition) IsDiscrete() bool { return len(p.cells) == p.size }

// CellColor returns the colour of the cell at idx.
func (p *Partition) CellColor(idx int) int { return p.cells[idx].color }

// CellSize returns the number of members of the cell at idx.
func (p *Partition) CellSize(idx int) int { return len(p.cells[idx].members) }

// CellMembers returns the node indices in the cell at idx, sorted ascending. Sorting here —
// rather than in the hot refinement loop — keeps the internal map representation free to iterate
// in whatever order is fastest, while every order-sensitive consumer (child selection, descriptor
// emission, debug output) sees a deterministic sequence.
func (p *Partition) CellMembers(idx int) []int {
	c := p.cells[idx]
	out := make([]int, 0, len(c.members))
	for n := range c.members {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// ColorOfNode returns the colour currently assigned to node n.
func (p *Partition) ColorOfNode(n int) int { return p.colorOfNode[n] }

// CellOfNode returns the cell index currently holding node n.
func (p *Partition) CellOfNode(n int) int { return p.cellOfNode[n] }

// ColorIndex returns the index of the cell currently holding colour c. This is the O(1)
// equivalent of the reference implementation's binary search over a colour-sorted cell list: the
// arena model keeps an explicit colour-to-index map instead of maintaining sort order, so the
// lookup never has to scan.
func (p *Partition) ColorIndex(c int) int {
	idx, ok := p.colorOfCell[c]
	if !ok {
		panic(fmt.Sprintf("partition: no cell with colour %d", c))
	}
	return idx
}

// SelectTargetCell returns the index of the first non-singleton cell in insertion order. This is
// the "first non-singleton" branching policy: deterministic, and permutation-equivariant because
// insertion order is itself a function of the (permutation-invariant) refinement history.
//
// Panics if the partition is discrete — selecting a branch cell from a discrete partition is a
// precondition violation, not a recoverable error.
func (p *Partition) SelectTargetCell() int {
	for i, c := range p.cells {
		if len(c.members) > 1 {
			return i
		}
	}
	panic("partition: SelectTargetCell called on a discrete partition")
}

// Individualize extracts node from the cell at cellIdx into its own new singleton cell, which is
// appended to the partition and keeps the cell's old colour. The remaining members of the
// original cell shift up to colour old+1. This ordering — singleton keeps the low colour — is
// required for the resulting trace to be label-independent: the smallest node index that gets
// individualized always receives the smallest fresh colour.
//
// Returns the new colour of the original cell's residual, old+1.
func (p *Partition) Individualize(cellIdx, node int) int {
	c := &p.cells[cellIdx]
	if len(c.members) <= 1 {
		panic("partition: Individualize called on a singleton cell")
	}
	if _, ok := c.members[node]; !ok {
		panic("partition: Individualize called with node not in cell")
	}

	oldColor := c.color
	newColor := oldColor + 1

	delete(c.members, node)
	c.color = newColor
	for n := range c.members {
		p.colorOfNode[n] = newColor
	}

	singleton := cell{color: oldColor, members: map[int]struct{}{node: {}}}
	p.cells = append(p.cells, singleton)
	newIdx := len(p.cells) - 1

	p.colorOfCell[newColor] = cellIdx
	p.colorOfCell[oldColor] = newIdx

	p.cellOfNode[node] = newIdx
	p.colorOfNode[node] = oldColor

	return newColor
}

// SplitCell extracts the given subset of the cell at cellIdx into a new cell that keeps the old
// colour; the residual (remaining members) takes colour old+len(subset). Returns the residual's
// new colour.
//
// Used by Refine to bucket a cell by neighbour-degree; callers requesting an ascending-degree
// split sequence get the convention documented on Refine: each split shifts the still-unsplit
// residual's colour upward by the size of the part just extracted.
func (p *Partition) SplitCell(cellIdx int, subset []int) int {
	c := &p.cells[cellIdx]
	if len(subset) == 0 {
		panic("partition: SplitCell called with an empty subset")
	}
	if len(subset) >= len(c.members) {
		panic("partition: SplitCell called with a subset that is not proper")
	}

	oldColor := c.color
	members := make(map[int]struct{}, len(subset))
	for _, n := range subset {
		if _, ok := c.members[n]; !ok {
			panic("partition: SplitCell called with a node outside the cell")
		}
		members[n] = struct{}{}
	}

	for n := range members {
		delete(c.members, n)
	}
	residualColor := oldColor + len(subset)
	c.color = residualColor
	for n := range c.members {
		p.colorOfNode[n] = residualColor
	}

	newCell := cell{color: oldColor, members: members}
	p.cells = append(p.cells, newCell)
	newIdx := len(p.cells) - 1

	p.colorOfCell[residualColor] = cellIdx
	p.colorOfCell[oldColor] = newIdx

	for n := range members {
		p.cellOfNode[n] = newIdx
		p.colorOfNode[n] = oldColor
	}

	return residualColor
}

// DebugString renders the cells, their colours, and the node-to-colour vector. Not on any hot
// path: it exists for test failure messages, in place of the reference implementation's
// direct-to-stdout cell dump. The CLI harness does not print it.
func (p *Partition) DebugString() string {
	s := fmt.Sprintf("partition(size=%d, cells=%d)\n", p.size, len(p.cells))
	for i, c := range p.cells {
		s += fmt.Sprintf("  cell %d (color=%d): %v\n", i, c.color, p.CellMembers(i))
	}
	s += fmt.Sprintf("  node colours: %v\n", p.colorOfNode)
	return s
}
