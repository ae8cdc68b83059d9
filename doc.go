// Package graphkey computes canonical labels for finite, undirected,
// unlabeled graphs via individualization-refinement: two graphs produce
// equal keys if and only if they are isomorphic.
//
// The algorithm lives in three layers. partition maintains an equitable
// colouring of a graph's nodes and refines it to the coarsest partition
// reachable from a starting state. This package's search tree branches
// on non-discrete partitions by individualizing cell members, pruning
// branches with the partition package's Kdim invariant, and serializes
// every surviving discrete leaf into a descriptor; the maximum
// descriptor over all leaves is the GraphKey.
package graphkey
