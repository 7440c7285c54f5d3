package huffle

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// BuildTree builds a Huffman tree from leaf Nodes, one per distinct Symbol,
// and returns its root.  It takes ownership of the leaves.
//
// The two lightest nodes are merged repeatedly; the first one removed
// becomes the left child.  Ties on weight are broken by rank: leaves rank by
// Symbol (lowest first) and all leaves rank before all internal nodes, which
// rank among themselves in the order they were created.  The resulting tree
// therefore depends only on the multiset of (Symbol, weight) pairs, never on
// the order of the input slice.
//
// A single leaf is returned as-is.  Zero leaves fail with ErrEmptyAlphabet.
//
func BuildTree(leaves []*Node) (*Node, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyAlphabet
	}

	// Step 1: build a minheap.

	list := make([]rankedNode, len(leaves))
	for index, leaf := range leaves {
		assert.Assertf(leaf != nil && leaf.IsLeaf(), "BuildTree: input %d is not a leaf", index)
		list[index] = rankedNode{node: leaf, rank: uint64(uint32(leaf.Symbol))}
	}
	h := nodeHeap{list}
	h.Init()

	// Step 2: pop two, merge, push the merged node back.
	//
	// Synthetic ranks start above every possible Symbol, so that a leaf
	// always wins a tie against an internal node.

	nextSyntheticRank := uint64(MaxSymbol) + 1
	for h.Len() > 1 {
		a := heap.Pop(&h).(rankedNode)
		b := heap.Pop(&h).(rankedNode)
		heap.Push(&h, rankedNode{node: NewInternal(a.node, b.node), rank: nextSyntheticRank})
		nextSyntheticRank++
	}

	root := heap.Pop(&h).(rankedNode)
	return root.node, nil
}

// BuildTreeFromFrequencies is shorthand for BuildTree(ft.Leaves()).
func BuildTreeFromFrequencies(ft FrequencyTable) (*Node, error) {
	return BuildTree(ft.Leaves())
}

// type rankedNode + type nodeHeap {{{

type rankedNode struct {
	node *Node
	rank uint64
}

type nodeHeap struct {
	list []rankedNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.rank < b.rank
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(rankedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = rankedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
