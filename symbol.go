package huffpack

// Symbol represents a symbol in the compressor's alphabet: the byte values 0
// through 255, plus the pseudo-EOF marker.  Negative symbols are not valid.
type Symbol int32

// AlphabetSize is the number of symbols in the alphabet.
const AlphabetSize = 257

// PseudoEOF is the reserved symbol whose code terminates every compressed
// stream.  It never occurs in the input, but its frequency is pinned to 1 so
// that every coding tree has a leaf for it.
const PseudoEOF = Symbol(256)

// InvalidSymbol marks the interior nodes of a coding tree, which carry no
// symbol of their own.
const InvalidSymbol = Symbol(-1)
