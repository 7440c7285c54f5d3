package huffle

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// CodeTable maps each Symbol to its Code.
type CodeTable map[Symbol]Code

// GenerateCodeTable walks the tree rooted at root, appending a 0 bit for
// each step to the left and a 1 bit for each step to the right, and records
// the path to every leaf.
//
// A tree consisting of a single leaf has no path at all.  That leaf is
// assigned the 1-bit code "0" instead, so that every code consumes at least
// one bit of input when decoding.
//
// Trees deeper than MaxCodeSize fail with ErrCodeTooLong.
//
func GenerateCodeTable(root *Node) (CodeTable, error) {
	if root == nil {
		return nil, ErrEmptyAlphabet
	}

	if root.IsLeaf() {
		return CodeTable{root.Symbol: MakeCode(1, 0)}, nil
	}

	// Walk the tree with an explicit stack, tracking for each item where
	// we are in the walk:
	//   x=0 → We just arrived at this node for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// The path to the top item is the Code of the top item.

	type stackItem struct {
		node *Node
		code Code
		x    byte
	}

	table := make(CodeTable)
	stack := make([]stackItem, 0, MaxCodeSize)
	stack = append(stack, stackItem{node: root})

	processChild := func(child *Node, code Code) error {
		if child.IsLeaf() {
			if _, found := table[child.Symbol]; !found {
				table[child.Symbol] = code
			}
			return nil
		}
		if code.Size >= MaxCodeSize {
			return fmt.Errorf("%w: tree is deeper than %d levels", ErrCodeTooLong, MaxCodeSize)
		}
		stack = append(stack, stackItem{node: child, code: code})
		return nil
	}

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		var err error
		switch x {
		case 0:
			err = processChild(top.node.Left, top.code.Append(false))
		case 1:
			err = processChild(top.node.Right, top.code.Append(true))
		case 2:
			stack = stack[:len(stack)-1]
		}
		if err != nil {
			return nil, err
		}
	}
	return table, nil
}

// Symbols returns the keys of this table in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(ct))
	for symbol := range ct {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsPrefixFree returns true iff no Code in this table is a prefix of
// another, and no two Symbols share a Code.
func (ct CodeTable) IsPrefixFree() bool {
	seen := make(map[Code]struct{}, len(ct))
	for _, hc := range ct {
		if _, found := seen[hc]; found {
			return false
		}
		seen[hc] = struct{}{}
	}

	// Look up every proper prefix of every code: O(n × MaxCodeSize).
	for hc := range seen {
		for size := byte(0); size < hc.Size; size++ {
			prefix := Code{Size: size, Bits: hc.Bits >> (hc.Size - size)}
			if _, found := seen[prefix]; found {
				return false
			}
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of this table to the
// given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", strconv.QuoteRune(rune(symbol)), ct[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	as, ab := a.Size, a.Bits
	bs, bb := b.Size, b.Bits
	if as != bs {
		return as < bs
	}
	return ab < bb
}

var _ sort.Interface = byCode(nil)

// }}}
