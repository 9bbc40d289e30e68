package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its Code.  Symbols absent from the tree have
// a zero-size Code.
type CodeTable [AlphabetSize]Code

// BuildCodeTable walks the tree rooted at root and assigns each leaf the
// code spelled by its root-to-leaf path, 0 for left and 1 for right.  The
// codes are prefix-free because symbols occur only at leaves.
//
// BuildTree never returns a bare leaf, so every assigned code has at least
// one bit.  Code values are 64 bits wide; with 32-bit saturating counts no
// reachable leaf is deeper than that.
func BuildCodeTable(root *Node) *CodeTable {
	assert.Assertf(root != nil, "nil tree root")
	var table CodeTable
	table.populate(root, Code{})
	return &table
}

func (table *CodeTable) populate(n *Node, path Code) {
	if n.Leaf() {
		table[n.Value] = path
		return
	}
	table.populate(n.Left, path.Appended(0))
	table.populate(n.Right, path.Appended(1))
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (table *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for symbol := Symbol(0); symbol < AlphabetSize; symbol++ {
		hc := table[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
