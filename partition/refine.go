package partition

import (
	"container/heap"
	"sort"
)

// colorQueue is a min-priority queue of colours, used by Refine to
// always process the smallest remaining colour next. Pushes of a
// colour already pending are dropped rather than queued twice: since
// a colour is cleared from the pending set as soon as it is popped, a
// colour can still be re-queued later under a different cell identity
// (splits reuse small integers), but never sits in the heap twice at
// once. This is the "deduplicate repeated entries" rule.
type colorQueue struct {
	heap   intHeap
	queued map[int]bool
}

func newColorQueue() *colorQueue {
	return &colorQueue{queued: make(map[int]bool)}
}

func (q *colorQueue) push(c int) {
	if q.queued[c] {
		return
	}
	q.queued[c] = true
	heap.Push(&q.heap, c)
}

// pop returns the smallest queued colour and whether one was available.
func (q *colorQueue) pop() (int, bool) {
	if q.heap.Len() == 0 {
		return 0, false
	}
	c := heap.Pop(&q.heap).(int)
	delete(q.queued, c)
	return c, true
}

type intHeap []int

func (h intHeap) Len() int            { return len(h) }
func (h intHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Refine mutates p into the coarsest equitable partition reachable from
// its current state under g's adjacency relation, and returns the
// trace: the ordered sequence of colours created by splits, in the
// order they were created.
//
// The algorithm processes colours smallest-first from a priority
// queue seeded with every current colour, and for each popped colour's
// cell computes neighbour degree counts, then buckets and splits every
// touched non-singleton cell by degree — touched cells visited in
// ascending colour order, buckets split off in ascending degree order.
// This combination of smallest-first colour processing and ascending
// bucket order is what makes the trace permutation-invariant: relabel
// the graph's nodes by any permutation σ and Refine produces exactly
// σ(trace) on the relabeled partition.
//
// The residual (highest-degree) bucket of a split cell is never
// itself recorded in the trace, only pushed back onto the queue if it
// remains non-singleton — matching the reference implementation.
func Refine(p *Partition, g Graph) []int {
	var trace []int

	q := newColorQueue()
	for c := range p.colorOfCell {
		q.push(c)
	}

	for {
		studiedColor, ok := q.pop()
		if !ok {
			break
		}

		studiedCellIdx := p.ColorIndex(studiedColor)
		degree := make(map[int]int)
		touchedColors := make(map[int]struct{})

		for _, u := range p.CellMembers(studiedCellIdx) {
			for _, v := range g.Neighbors(u) {
				degree[v]++
				touchedColors[p.ColorOfNode(v)] = struct{}{}
			}
		}

		ordered := make([]int, 0, len(touchedColors))
		for c := range touchedColors {
			ordered = append(ordered, c)
		}
		sort.Ints(ordered)

		for _, color := range ordered {
			idx := p.ColorIndex(color)
			if p.CellSize(idx) == 1 {
				continue
			}

			buckets := make(map[int][]int)
			for _, u := range p.CellMembers(idx) {
				d := degree[u] // zero value if absent, matching the spec
				buckets[d] = append(buckets[d], u)
			}
			if len(buckets) == 1 {
				continue
			}

			degrees := make([]int, 0, len(buckets))
			for d := range buckets {
				degrees = append(degrees, d)
			}
			sort.Ints(degrees)
			lastDegree := degrees[len(degrees)-1]
			degrees = degrees[:len(degrees)-1]

			cellIdx := idx
			curColor := color
			for _, d := range degrees {
				members := buckets[d]
				newColor := p.SplitCell(cellIdx, members)
				// The extracted cell keeps curColor (the colour this
				// split started from); that identity, not the shifted
				// residual, is what must re-enter W so the new cell
				// gets its own turn as a studied cell.
				if len(members) > 1 {
					q.push(curColor)
				}
				trace = append(trace, newColor)
				curColor = newColor
				cellIdx = p.ColorIndex(newColor)
			}

			if last := buckets[lastDegree]; len(last) > 1 {
				q.push(curColor)
			}
		}
	}

	return trace
}
