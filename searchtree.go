package graphkey

import "github.com/jaxan-go/graphkey/partition"

// chainStep is one position along a pre-descended experimental path: the
// partition reached, the Kdim it produced, and (if not yet discrete) the
// target cell and its still-unexplored siblings at that position.
type chainStep struct {
	p        *partition.Partition
	kdim     partition.Kdim
	target   int
	children []int
}

// treeNode is one frontier entry of the breadth-first search: a
// partition together with the remaining members of its own target cell
// still to individualize, plus any precomputed-but-not-yet-revealed
// continuation of its experimental path.
type treeNode struct {
	p        *partition.Partition
	target   int
	children []int
	chain    []chainStep
}

// buildChain eagerly descends from start (whose own Kdim is startKdim)
// by repeatedly choosing a target cell and individualizing its largest
// remaining member, refining after each step, until a discrete partition
// is reached. The returned steps are in descent order; each step records
// the siblings left unexplored at that position so they can be expanded
// independently once the step surfaces to the frontier.
func buildChain(start *partition.Partition, startKdim partition.Kdim, g partition.Graph) []chainStep {
	var chain []chainStep
	cur := start
	curKdim := startKdim

	for {
		if cur.IsDiscrete() {
			chain = append(chain, chainStep{p: cur, kdim: curKdim, target: -1})
			return chain
		}

		target := cur.SelectTargetCell()
		members := cur.CellMembers(target) // ascending
		v := members[len(members)-1]
		siblings := append([]int(nil), members[:len(members)-1]...)
		chain = append(chain, chainStep{p: cur, kdim: curKdim, target: target, children: siblings})

		next := cur.Clone()
		newColor := next.Individualize(target, v)
		trace := partition.Refine(next, g)
		curKdim = partition.Kdim{CellCount: next.CellCount(), Trace: prependColor(newColor, trace)}
		cur = next
	}
}

func prependColor(c int, trace []int) []int {
	out := make([]int, 0, 1+len(trace))
	out = append(out, c)
	return append(out, trace...)
}

func promote(step chainStep, rest []chainStep) *treeNode {
	return &treeNode{
		p:        step.p,
		target:   step.target,
		children: append([]int(nil), step.children...),
		chain:    rest,
	}
}

// search runs the breadth-first individualization tree rooted at root (an
// already-once-refined, non-discrete partition) and returns every
// discrete partition tied for the best Kdim at the terminating level.
//
// Every level tracks a single best-so-far Kdim shared across the whole
// frontier. Each node first reveals one step of any precomputed
// experimental path it carries (comparing that step's Kdim against the
// level's best), then individualizes its own remaining target-cell
// members one at a time, eagerly pre-descending each new branch to a
// discrete leaf and revealing only the branch's first step this level —
// the rest of that descent is carried forward and revealed level by
// level, exactly mirroring how far a plain breadth-first walk would have
// gotten, while still paying for the descent only once.
func search(root *partition.Partition, g partition.Graph) []*partition.Partition {
	target := root.SelectTargetCell()
	frontier := []*treeNode{{
		p:        root,
		target:   target,
		children: append([]int(nil), root.CellMembers(target)...),
	}}

	for {
		var next []*treeNode
		best := partition.Kdim{}
		leafFound := false

		consider := func(kdim partition.Kdim, n *treeNode, discrete bool) {
			switch kdim.Compare(best) {
			case 1:
				next = []*treeNode{n}
				best = kdim
			case 0:
				next = append(next, n)
			default:
				return
			}
			if discrete {
				leafFound = true
			}
		}

		for _, node := range frontier {
			if len(node.chain) > 0 {
				step := node.chain[0]
				rest := node.chain[1:]
				consider(step.kdim, promote(step, rest), step.p.IsDiscrete())
			}

			for len(node.children) > 0 {
				v := node.children[len(node.children)-1]
				node.children = node.children[:len(node.children)-1]

				branch := node.p.Clone()
				newColor := branch.Individualize(node.target, v)
				trace := partition.Refine(branch, g)
				kdim := partition.Kdim{CellCount: branch.CellCount(), Trace: prependColor(newColor, trace)}

				if kdim.Less(best) {
					continue
				}

				chain := buildChain(branch, kdim, g)
				step := chain[0]
				consider(step.kdim, promote(step, chain[1:]), step.p.IsDiscrete())
			}
		}

		if len(next) == 0 {
			panic("graphkey: search tree exhausted without reaching a discrete partition")
		}

		if leafFound {
			var leaves []*partition.Partition
			for _, n := range next {
				if n.p.IsDiscrete() {
					leaves = append(leaves, n.p)
				}
			}
			return leaves
		}

		frontier = next
	}
}
