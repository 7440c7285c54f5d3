package huffle

import (
	"fmt"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
)

// Header tokens.  A leaf is written as LeafMarker followed by its Symbol; an
// internal node is written as its left subtree, its right subtree, and then
// MergeMarker.
const (
	LeafMarker  = '0'
	MergeMarker = '1'
)

// HeaderString is the serialized form of a Huffman tree, in UTF-8.
//
// The rune following a LeafMarker is always payload, so payload Symbols '0'
// and '1' need no escaping: markers are recognized by position, never by
// value.  UTF-8 never places the bytes of '0' or '1' inside a multi-byte
// sequence.
type HeaderString string

// SerializeTree writes the tree rooted at root as a HeaderString.
func SerializeTree(root *Node) HeaderString {
	assert.Assertf(root != nil, "SerializeTree: root is nil")

	// Post-order walk: the same explicit stack and x counter as
	// GenerateCodeTable, but emitting a MergeMarker when leaving an
	// internal node.

	type stackItem struct {
		node *Node
		x    byte
	}

	var buf []byte
	emitLeaf := func(n *Node) {
		assert.Assertf(n.Symbol.IsValid(), "SerializeTree: invalid leaf symbol %d", n.Symbol)
		buf = append(buf, LeafMarker)
		buf = utf8.AppendRune(buf, rune(n.Symbol))
	}

	if root.IsLeaf() {
		emitLeaf(root)
		return HeaderString(buf)
	}

	stack := []stackItem{{node: root}}
	visit := func(child *Node) {
		if child.IsLeaf() {
			emitLeaf(child)
			return
		}
		stack = append(stack, stackItem{node: child})
	}

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			visit(top.node.Left)
		case 1:
			visit(top.node.Right)
		case 2:
			buf = append(buf, MergeMarker)
			stack = stack[:len(stack)-1]
		}
	}
	return HeaderString(buf)
}

// DeserializeTree rebuilds a tree from a HeaderString.  Each LeafMarker and
// its payload push a new leaf; each MergeMarker pops two nodes, the later
// one becoming the right child, and pushes their parent.  Exactly one node
// must remain at the end.
//
// The rebuilt leaves have weight 0, since weights are not serialized.
//
// Any malformation fails with ErrCorruptHeader.
//
func DeserializeTree(header HeaderString) (*Node, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: empty header", ErrCorruptHeader)
	}
	if !utf8.ValidString(string(header)) {
		return nil, fmt.Errorf("%w: header is not valid UTF-8", ErrCorruptHeader)
	}

	var stack []*Node
	seen := make(map[Symbol]struct{})
	str := string(header)
	for i := 0; i < len(str); {
		token, size := utf8.DecodeRuneInString(str[i:])
		switch token {
		case LeafMarker:
			if i+size >= len(str) {
				return nil, fmt.Errorf("%w: leaf marker at offset %d has no payload", ErrCorruptHeader, i)
			}
			payload, payloadSize := utf8.DecodeRuneInString(str[i+size:])
			symbol := Symbol(payload)
			if _, found := seen[symbol]; found {
				return nil, fmt.Errorf("%w: duplicate leaf %q at offset %d", ErrCorruptHeader, payload, i)
			}
			seen[symbol] = struct{}{}
			stack = append(stack, NewLeaf(symbol, 0))
			i += size + payloadSize

		case MergeMarker:
			n := len(stack)
			if n < 2 {
				return nil, fmt.Errorf("%w: merge marker at offset %d with %d nodes on the stack", ErrCorruptHeader, i, n)
			}
			left, right := stack[n-2], stack[n-1]
			stack[n-1] = nil
			stack = stack[:n-2]
			stack = append(stack, NewInternal(left, right))
			i += size

		default:
			return nil, fmt.Errorf("%w: unexpected token %q at offset %d", ErrCorruptHeader, token, i)
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d nodes left over", ErrCorruptHeader, len(stack))
	}
	return stack[0], nil
}
