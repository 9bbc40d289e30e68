package huffpack

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Magic numbers recognized at the start of a compressed stream.
const (
	// MagicTree marks a stream whose header is a serialized coding tree.
	// Every stream produced by Compress starts with it.
	MagicTree = 0xFACE8201

	// MagicLegacy is an older marker, still accepted by Decompress but
	// never produced.
	MagicLegacy = 0xFACE8200
)

var (
	// ErrBadMagic means the stream does not start with a recognized magic
	// number.
	ErrBadMagic = errors.New("huffpack: bad magic number")

	// ErrTruncatedHeader means the stream ended, or became inconsistent,
	// while the tree header was being read.
	ErrTruncatedHeader = errors.New("huffpack: malformed or truncated tree header")

	// ErrMissingTerminator means the stream ended before the PseudoEOF
	// code was decoded.
	ErrMissingTerminator = errors.New("huffpack: stream ends before pseudo-EOF terminator")
)

// Compress reads src twice, once to count byte frequencies and once to
// encode, and writes the compressed stream to dst: the magic number, the
// serialized coding tree, the code for each input byte in order, and finally
// the code for PseudoEOF.  The bit writer is closed on every exit path, so a
// trailing partial byte is always flushed, zero-padded on the low side.
//
// Compression has no failure path on well-formed input; the pinned PseudoEOF
// count guarantees a valid tree for any src, including an empty one.
func Compress(dst io.Writer, src io.ReadSeeker) error {
	ft, err := CountFrequencies(bitio.NewReader(src))
	if err != nil {
		return err
	}
	root := BuildTree(ft)
	codes := BuildCodeTable(root)

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return err
	}

	w := bitio.NewWriter(dst)
	if err := encode(w, root, codes, bitio.NewReader(src)); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func encode(w *bitio.Writer, root *Node, codes *CodeTable, r *bitio.Reader) error {
	if err := w.WriteBits(MagicTree, 32); err != nil {
		return err
	}
	if err := WriteTree(w, root); err != nil {
		return err
	}
	for {
		u, err := r.ReadBits(8)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		// The table covers every byte seen during the counting pass, so
		// codes[u] always has a nonzero size here.
		hc := codes[u]
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return err
		}
	}
	hc := codes[PseudoEOF]
	return w.WriteBits(hc.Bits, hc.Size)
}

// Decompress reverses Compress.  It validates the magic number, rebuilds the
// coding tree from the header, then walks the tree one bit at a time, 0
// descending left and 1 descending right, emitting one byte per leaf until
// the PseudoEOF leaf is reached.
//
// Failures are reported as ErrBadMagic, ErrTruncatedHeader, or
// ErrMissingTerminator, possibly wrapped with detail.
func Decompress(dst io.Writer, src io.Reader) error {
	r := bitio.NewReader(src)

	magic, err := r.ReadBits(32)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadMagic, err)
	}
	if magic != MagicTree && magic != MagicLegacy {
		return fmt.Errorf("%w: 0x%08X", ErrBadMagic, magic)
	}

	root, err := ReadTree(r)
	if err != nil {
		return err
	}
	if root.Leaf() {
		// A bare-leaf tree encodes nothing, not even the terminator;
		// Compress never writes one.
		return fmt.Errorf("%w: tree has no interior node", ErrTruncatedHeader)
	}
	return decode(dst, root, r)
}

func decode(dst io.Writer, root *Node, r *bitio.Reader) error {
	buf := make([]byte, 0, 4096)
	node := root
	for {
		bit, err := r.ReadBits(1)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMissingTerminator, err)
		}
		if bit == 0 {
			node = node.Left
		} else {
			node = node.Right
		}
		if !node.Leaf() {
			continue
		}
		if node.Value == PseudoEOF {
			_, err := dst.Write(buf)
			return err
		}
		buf = append(buf, byte(node.Value))
		if len(buf) == cap(buf) {
			if _, err := dst.Write(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
		node = root
	}
}
