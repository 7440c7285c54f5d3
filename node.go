package huffle

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Node is one node of a Huffman tree.  A Node is either a leaf (Symbol set,
// no children) or internal (Symbol is InvalidSymbol, both children set).
// Every child is owned by exactly one parent.
type Node struct {
	// Weight is the symbol's occurrence count for a leaf, or the sum of
	// the children's weights for an internal node.
	Weight uint64

	// Symbol is the payload of a leaf.
	Symbol Symbol

	Left  *Node
	Right *Node
}

// NewLeaf constructs a leaf Node.
func NewLeaf(symbol Symbol, weight uint64) *Node {
	assert.Assertf(symbol.IsValid(), "invalid leaf symbol %d", symbol)
	return &Node{Weight: weight, Symbol: symbol}
}

// NewInternal constructs an internal Node that takes ownership of both
// children.  Its weight is the (saturating) sum of theirs.
func NewInternal(left, right *Node) *Node {
	assert.Assertf(left != nil, "left child is nil")
	assert.Assertf(right != nil, "right child is nil")
	assert.Assertf(left != right, "left and right child are the same node")
	return &Node{
		Weight: saturatingAdd(left.Weight, right.Weight),
		Symbol: InvalidSymbol,
		Left:   left,
		Right:  right,
	}
}

// IsLeaf returns true iff this Node holds a Symbol.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Equal returns true iff both trees have the same shape and the same leaf
// symbols.  Weights are not compared, since they do not survive
// serialization.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.IsLeaf() || other.IsLeaf() {
		return n.IsLeaf() && other.IsLeaf() && n.Symbol == other.Symbol
	}
	return n.Left.Equal(other.Left) && n.Right.Equal(other.Right)
}

// Leaves returns the leaves of this tree, left to right.
func (n *Node) Leaves() []*Node {
	var out []*Node
	stack := []*Node{n}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.IsLeaf() {
			out = append(out, top)
			continue
		}
		stack = append(stack, top.Right, top.Left)
	}
	return out
}

// Dump writes a programmer-readable, indented rendering of this tree to the
// given writer.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	n.dump(&buf, 0)
	return buf.WriteTo(w)
}

func (n *Node) dump(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteByte('\t')
	}
	if n.IsLeaf() {
		fmt.Fprintf(buf, "Leaf(%s, %d)\n", strconv.QuoteRune(rune(n.Symbol)), n.Weight)
		return
	}
	fmt.Fprintf(buf, "Node(%d)\n", n.Weight)
	n.Left.dump(buf, depth+1)
	n.Right.dump(buf, depth+1)
}
