package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode is the longest Code representable in Code.Bits.  Reaching it
// takes a frequency table totalling more than 2.7e13 symbols.
const maxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit is the most
	// significant of the Size low bits; all higher bits are zero.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one bit.  A zero bit selects the left
// child of a tree node, a one bit the right child.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "Code.Append: code already %d bits long", hc.Size)
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | uint64(bit&1)}
}

// HasPrefix reports whether prefix is a prefix of this Code.  Every Code has
// itself as a prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

// CodeTable maps each coded Symbol to its Code.
type CodeTable map[Symbol]Code

// Lookup returns the Code for symbol, or false if symbol is not coded.
func (ct CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc, found := ct[symbol]
	return hc, found
}

// MinSize is the bit length of the shortest Code in the table.
func (ct CodeTable) MinSize() byte {
	var minSize byte
	for _, hc := range ct {
		if minSize == 0 || hc.Size < minSize {
			minSize = hc.Size
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest Code in the table.
func (ct CodeTable) MaxSize() byte {
	var maxSize byte
	for _, hc := range ct {
		if hc.Size > maxSize {
			maxSize = hc.Size
		}
	}
	return maxSize
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer, one Symbol per line in ascending order.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.MaxSize())
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc, found := ct[Symbol(symbol)]
		if !found {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", formatSymbol(Symbol(symbol)), hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// formatSymbol renders a Symbol as a Go-style quoted byte.
func formatSymbol(symbol Symbol) string {
	if symbol >= 0x80 {
		return fmt.Sprintf("'\\x%02x'", byte(symbol))
	}
	return strconv.QuoteRune(rune(symbol))
}
