package huffpack

import (
	"testing"
)

// sameShape reports whether two trees have identical leaf values at
// identical path positions.
func sameShape(a, b *Node) bool {
	if a.Leaf() != b.Leaf() {
		return false
	}
	if a.Leaf() {
		return a.Value == b.Value
	}
	return sameShape(a.Left, b.Left) && sameShape(a.Right, b.Right)
}

func countLeaves(n *Node) int {
	if n.Leaf() {
		return 1
	}
	return countLeaves(n.Left) + countLeaves(n.Right)
}

func TestBuildTree(t *testing.T) {
	var ft FrequencyTable
	ft['a'] = 3
	ft['b'] = 1
	ft[PseudoEOF] = 1

	root := BuildTree(&ft)

	// Ties break by insertion order: 'b' and PseudoEOF merge first, with
	// 'b' on the left, then that subtree merges under 'a'.
	if root.Leaf() || root.Weight != 5 {
		t.Fatalf("wrong root: leaf=%v weight=%d", root.Leaf(), root.Weight)
	}
	if !root.Right.Leaf() || root.Right.Value != 'a' {
		t.Errorf("expected leaf 'a' at path 1, got %+v", root.Right)
	}
	if !root.Left.Left.Leaf() || root.Left.Left.Value != 'b' {
		t.Errorf("expected leaf 'b' at path 00, got %+v", root.Left.Left)
	}
	if !root.Left.Right.Leaf() || root.Left.Right.Value != PseudoEOF {
		t.Errorf("expected PseudoEOF leaf at path 01, got %+v", root.Left.Right)
	}
}

func TestBuildTreeSingleSymbol(t *testing.T) {
	var ft FrequencyTable
	ft['b'] = 4
	ft[PseudoEOF] = 1

	root := BuildTree(&ft)
	if root.Leaf() {
		t.Fatal("root must not be a leaf")
	}
	if countLeaves(root) != 2 {
		t.Errorf("expected 2 leaves, got %d", countLeaves(root))
	}
	if !root.Left.Leaf() || root.Left.Value != PseudoEOF {
		t.Errorf("expected PseudoEOF leaf at path 0, got %+v", root.Left)
	}
	if !root.Right.Leaf() || root.Right.Value != 'b' {
		t.Errorf("expected leaf 'b' at path 1, got %+v", root.Right)
	}
}

func TestBuildTreeEmptyInput(t *testing.T) {
	var ft FrequencyTable
	ft[PseudoEOF] = 1

	root := BuildTree(&ft)
	if root.Leaf() {
		t.Fatal("root must not be a leaf, even with no input symbols")
	}
	if countLeaves(root) != 2 {
		t.Errorf("expected 2 leaves, got %d", countLeaves(root))
	}
	if !root.Right.Leaf() || root.Right.Value != PseudoEOF {
		t.Errorf("PseudoEOF must still be encodable, got %+v at path 1", root.Right)
	}
}

func TestBuildTreeDeterministic(t *testing.T) {
	var ft FrequencyTable
	for symbol := Symbol(0); symbol < 256; symbol++ {
		ft[symbol] = uint32(symbol%7) + 1
	}
	ft[PseudoEOF] = 1

	first := BuildTree(&ft)
	second := BuildTree(&ft)
	if !sameShape(first, second) {
		t.Error("building twice from the same table produced different trees")
	}
}
