package huffle

import (
	"errors"
	"strings"
	"testing"

	icza "github.com/icza/huffman"
)

func TestBuildTree_Empty(t *testing.T) {
	root, err := BuildTree(nil)
	if !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("expected ErrEmptyAlphabet, got %v", err)
	}
	if root != nil {
		t.Errorf("expected nil root, got %v", root)
	}
}

func TestBuildTree_SingleLeaf(t *testing.T) {
	leaf := NewLeaf('z', 4)
	root, err := BuildTree([]*Node{leaf})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if root != leaf {
		t.Errorf("expected the leaf itself to be the root")
	}
}

func TestBuildTree_Scenario(t *testing.T) {
	ft, err := CountFrequencies("aaab", nil)
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}
	if ft['a'] != 3 || ft['b'] != 1 || len(ft) != 2 {
		t.Fatalf("wrong frequencies: %v", ft)
	}

	root, err := BuildTreeFromFrequencies(ft)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if root.Weight != 4 {
		t.Errorf("expected root weight 4, got %d", root.Weight)
	}
	if !root.Left.IsLeaf() || root.Left.Symbol != 'b' || root.Left.Weight != 1 {
		t.Errorf("wrong left child: %+v", root.Left)
	}
	if !root.Right.IsLeaf() || root.Right.Symbol != 'a' || root.Right.Weight != 3 {
		t.Errorf("wrong right child: %+v", root.Right)
	}
}

func TestBuildTree_Dump(t *testing.T) {
	ft := FrequencyTable{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45}
	root, err := BuildTreeFromFrequencies(ft)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Node(100)\n",
		"\tLeaf('f', 45)\n",
		"\tNode(55)\n",
		"\t\tNode(25)\n",
		"\t\t\tLeaf('c', 12)\n",
		"\t\t\tLeaf('d', 13)\n",
		"\t\tNode(30)\n",
		"\t\t\tNode(14)\n",
		"\t\t\t\tLeaf('a', 5)\n",
		"\t\t\t\tLeaf('b', 9)\n",
		"\t\t\tLeaf('e', 16)\n",
	}, "")

	var buf strings.Builder
	_, _ = root.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_TieBreak(t *testing.T) {
	// All weights equal: only the rank decides the shape.
	forward := []*Node{NewLeaf('a', 1), NewLeaf('b', 1), NewLeaf('c', 1), NewLeaf('d', 1)}
	backward := []*Node{NewLeaf('d', 1), NewLeaf('c', 1), NewLeaf('b', 1), NewLeaf('a', 1)}

	rootA, err := BuildTree(forward)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	rootB, err := BuildTree(backward)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if !rootA.Equal(rootB) {
		t.Errorf("tree shape depends on input order")
	}

	expect := HeaderString("0a0b10c0d11")
	if actual := SerializeTree(rootA); actual != expect {
		t.Errorf("wrong shape:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestBuildTree_Deterministic(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog, again and again"
	ft, err := CountFrequencies(text, nil)
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}

	var first HeaderString
	for i := 0; i < 20; i++ {
		root, err := BuildTreeFromFrequencies(ft)
		if err != nil {
			t.Fatalf("BuildTree failed: %v", err)
		}
		header := SerializeTree(root)
		if i == 0 {
			first = header
		} else if header != first {
			t.Fatalf("run %d built a different tree:\n\texpect: %s\n\tactual: %s", i, first, header)
		}
	}
}

// TestBuildTree_Optimal checks the weighted path length against an
// independent Huffman implementation.  Tie-breaks may give different
// shapes, but every Huffman tree has the same minimal cost.
func TestBuildTree_Optimal(t *testing.T) {
	inputs := []string{
		"aaab",
		"abracadabra",
		"mississippi river",
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
		"ααβγγγδδδδ€€€€€",
	}
	for _, text := range inputs {
		t.Run(text, func(t *testing.T) {
			ft, err := CountFrequencies(text, nil)
			if err != nil {
				t.Fatalf("CountFrequencies failed: %v", err)
			}

			root, err := BuildTreeFromFrequencies(ft)
			if err != nil {
				t.Fatalf("BuildTree failed: %v", err)
			}
			table, err := GenerateCodeTable(root)
			if err != nil {
				t.Fatalf("GenerateCodeTable failed: %v", err)
			}
			var actual uint64
			for symbol, hc := range table {
				actual += ft[symbol] * uint64(hc.Size)
			}

			leaves := make([]*icza.Node, 0, len(ft))
			for symbol, count := range ft {
				leaves = append(leaves, &icza.Node{Value: icza.ValueType(symbol), Count: int(count)})
			}
			// Build reorders its argument and reuses it for internal
			// nodes, so keep our own copy of the leaves.
			all := append([]*icza.Node(nil), leaves...)
			icza.Build(leaves)
			var expect uint64
			for _, leaf := range all {
				_, size := leaf.Code()
				expect += uint64(leaf.Count) * uint64(size)
			}

			if expect != actual {
				t.Errorf("weighted path length is not minimal:\n\texpect: %d\n\tactual: %d", expect, actual)
			}
		})
	}
}
