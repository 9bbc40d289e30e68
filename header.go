package huffpack

import (
	"fmt"

	"github.com/icza/bitio"
)

// leafValueBits is the fixed width of a leaf's symbol value in the header,
// wide enough for 0..256 inclusive.
const leafValueBits = 9

// WriteTree writes the pre-order serialization of the tree rooted at n: each
// interior node is a single 0 bit followed by its left then right subtrees,
// and each leaf is a single 1 bit followed by its 9-bit symbol value.
func WriteTree(w *bitio.Writer, n *Node) error {
	if n.Leaf() {
		if err := w.WriteBits(1, 1); err != nil {
			return err
		}
		return w.WriteBits(uint64(n.Value), leafValueBits)
	}
	if err := w.WriteBits(0, 1); err != nil {
		return err
	}
	if err := WriteTree(w, n.Left); err != nil {
		return err
	}
	return WriteTree(w, n.Right)
}

// ReadTree reconstructs a coding tree from its pre-order serialization.
// Weights are not part of the wire format and are left zero.  End of input
// mid-tree reports ErrTruncatedHeader.
//
// Recursion depth is bounded by the number of bits consumed, and for any
// tree written by WriteTree it is at most the alphabet size.
func ReadTree(r *bitio.Reader) (*Node, error) {
	bit, err := r.ReadBits(1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
	}
	if bit == 1 {
		value, err := r.ReadBits(leafValueBits)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
		}
		return &Node{Value: Symbol(value)}, nil
	}
	left, err := ReadTree(r)
	if err != nil {
		return nil, err
	}
	right, err := ReadTree(r)
	if err != nil {
		return nil, err
	}
	return &Node{Value: InvalidSymbol, Left: left, Right: right}, nil
}
