package huffpack

import (
	"container/heap"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman coding tree.  Interior nodes have both
// children non-nil and Value == InvalidSymbol; leaves have both children nil
// and a valid Value.
type Node struct {
	Value  Symbol
	Weight uint32
	Left   *Node
	Right  *Node
}

// Leaf reports whether n is a leaf.
func (n *Node) Leaf() bool {
	return n.Left == nil
}

// BuildTree constructs the Huffman coding tree for the given frequency
// table: one leaf per symbol with a positive count, repeatedly merging the
// two lowest-weight subtrees until a single root remains.  The first of the
// two removed subtrees becomes the left child.
//
// Ties on weight break by insertion order: leaves in ascending symbol order
// first, then merged nodes in creation order.  This makes the tree, and
// therefore the compressed output, byte-identical across runs.
func BuildTree(ft *FrequencyTable) *Node {
	var h nodeHeap
	for symbol := Symbol(0); symbol < AlphabetSize; symbol++ {
		if weight := ft[symbol]; weight != 0 {
			h.list = append(h.list, nodeAndSeq{&Node{Value: symbol, Weight: weight}, len(h.list)})
		}
	}
	assert.Assertf(len(h.list) != 0, "frequency table has no positive counts")

	// An empty input leaves PseudoEOF as the only leaf, which would give
	// the terminator a zero-length code.  Pad with a zero-weight leaf so
	// the tree always has at least two.
	if len(h.list) == 1 {
		h.list = append(h.list, nodeAndSeq{&Node{Value: 0, Weight: 0}, 1})
	}

	h.Init()
	seq := h.Len()
	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)

		// Compute the combined weight using saturating addition
		weight := a.node.Weight + b.node.Weight
		if weight < a.node.Weight {
			weight = math.MaxUint32
		}

		parent := &Node{
			Value:  InvalidSymbol,
			Weight: weight,
			Left:   a.node,
			Right:  b.node,
		}
		heap.Push(&h, nodeAndSeq{parent, seq})
		seq++
	}
	return heap.Pop(&h).(nodeAndSeq).node
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  int
}

type nodeHeap struct {
	list []nodeAndSeq
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
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
