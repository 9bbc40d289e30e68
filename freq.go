package huffpack

import (
	"io"
	"math"

	"github.com/icza/bitio"
)

// FrequencyTable counts occurrences per Symbol.  FrequencyTable[PseudoEOF]
// is always exactly 1.
type FrequencyTable [AlphabetSize]uint32

// CountFrequencies reads 8-bit units from r until end of input and tallies
// one count per byte value.  An empty input yields a table whose only
// positive entry is PseudoEOF.  The caller owns rewinding the underlying
// stream for the encoding pass.
func CountFrequencies(r *bitio.Reader) (*FrequencyTable, error) {
	var ft FrequencyTable
	ft[PseudoEOF] = 1
	for {
		u, err := r.ReadBits(8)
		if err == io.EOF {
			return &ft, nil
		}
		if err != nil {
			return nil, err
		}
		// Counts saturate rather than wrap.  A wrapped count of 0 would
		// drop the symbol's leaf from the tree it appears in.
		if ft[u] != math.MaxUint32 {
			ft[u]++
		}
	}
}
