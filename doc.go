// Package huffman implements a self-contained Huffman text codec.  Text is
// compressed into an Artifact holding the symbol frequency table and a packed,
// byte-aligned bitstream; the decoder rebuilds the identical tree from the
// table alone and walks it bit by bit.
//
// The packed buffer starts with one header byte recording how many zero bits
// were appended to reach a byte boundary (0 .. 7).  Bits are stored most
// significant first.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     D. A. Huffman, "A Method for the Construction of Minimum-Redundancy
//     Codes", Proceedings of the IRE, 1952.
//
package huffman
