package huffman

import (
	"bytes"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Encoder packs text with the Huffman code derived from one FrequencyTable.
type Encoder struct {
	freq  FrequencyTable
	root  Node
	codes CodeTable
}

// Init initializes this Encoder from the given FrequencyTable, building the
// tree and its CodeTable.  The table must cover every symbol of the text
// later passed to Encode.
//
func (e *Encoder) Init(freq FrequencyTable) {
	root := BuildTree(freq)
	*e = Encoder{
		freq:  freq,
		root:  root,
		codes: GenerateCodes(root),
	}
}

// Encode packs text into a padded, byte-aligned buffer.  See Pack.
func (e Encoder) Encode(text []byte) ([]byte, error) {
	return Pack(text, e.codes)
}

// Tree returns the Huffman tree.  It is nil for an empty FrequencyTable.
func (e Encoder) Tree() Node {
	return e.root
}

// Codes returns the CodeTable.
func (e Encoder) Codes() CodeTable {
	return e.codes
}

// Frequencies returns the FrequencyTable this Encoder was initialized with.
func (e Encoder) Frequencies() FrequencyTable {
	return e.freq
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	return e.codes.Dump(w)
}

// GenerateCodes assigns a Code to every leaf of the tree: descending left
// appends a 0 bit, descending right a 1 bit.  A tree that is a lone *Leaf
// has no branches, so its symbol gets the 1-bit code "0".  A nil tree yields
// an empty CodeTable.
//
func GenerateCodes(root Node) CodeTable {
	codes := make(CodeTable)
	if root == nil {
		return codes
	}
	if leaf, ok := root.(*Leaf); ok {
		codes[leaf.Symbol] = MakeCode(1, 0)
		return codes
	}

	// Walk the tree with an explicit stack.  The right child is pushed
	// first so the left subtree is finished before the right one starts.

	type stackItem struct {
		node Node
		code Code
	}

	stack := make([]stackItem, 0, 2*maxBitsPerCode)
	stack = append(stack, stackItem{root, Code{}})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch node := top.node.(type) {
		case *Leaf:
			codes[node.Symbol] = top.code
		case *Internal:
			stack = append(stack,
				stackItem{node.Right, top.code.Append(1)},
				stackItem{node.Left, top.code.Append(0)})
		}
	}
	return codes
}

// Pack concatenates the codes of every symbol of text, appends zero bits up
// to a byte boundary, and prepends one header byte holding the number of
// padding bits.  Bits are written most significant first.
//
// If text holds a symbol absent from codes, Pack returns a
// *SymbolNotCodedError and no buffer.
//
func Pack(text []byte, codes CodeTable) ([]byte, error) {
	var numBits int
	for index, b := range text {
		hc, found := codes[Symbol(b)]
		if !found {
			return nil, &SymbolNotCodedError{Symbol: Symbol(b), Offset: index}
		}
		numBits += int(hc.Size)
	}

	padding := paddingFor(numBits)
	expectLen := 1 + (numBits+int(padding))/8

	var buf bytes.Buffer
	buf.Grow(expectLen)

	w := bitio.NewWriter(&buf)
	if err := w.WriteByte(padding); err != nil {
		return nil, err
	}
	for _, b := range text {
		hc := codes[Symbol(b)]
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, err
		}
	}

	// Close flushes the partial last byte, filling it with zero bits.
	if err := w.Close(); err != nil {
		return nil, err
	}

	assert.Assertf(buf.Len() == expectLen, "Pack: wrote %d bytes, expected %d", buf.Len(), expectLen)
	return buf.Bytes(), nil
}
