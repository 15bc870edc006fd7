package huffman

// Symbol represents one byte of source text.
type Symbol byte

// NumSymbols is the size of the Symbol alphabet.
const NumSymbols = 256
