// Package huffpack implements a lossless byte-stream compressor based on
// Huffman coding with an explicit pseudo-EOF terminator.
//
// The compressed wire format is, bit for bit:
//
//     [32 bits] magic number 0xFACE8201
//     [tree]    pre-order serialization of the coding tree
//     [payload] the Huffman code for each input byte, in input order
//     [1 code]  the Huffman code for PseudoEOF
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
