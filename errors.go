package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound is returned when the source text or artifact does
	// not exist.
	ErrInputNotFound = errors.New("huffman: input not found")

	// ErrInputEncoding is returned when the source text holds a symbol
	// outside the supported alphabet.
	ErrInputEncoding = errors.New("huffman: input contains unsupported symbols")

	// ErrArtifactCorrupt is returned when a serialized Artifact is
	// truncated, malformed, or otherwise unreadable.
	ErrArtifactCorrupt = errors.New("huffman: artifact corrupt")

	// ErrSymbolNotCoded is returned when text contains a symbol that has no
	// entry in the CodeTable it is being packed with.
	ErrSymbolNotCoded = errors.New("huffman: symbol not coded")

	// ErrDecodeStreamInconsistent is returned when a packed bitstream does
	// not resolve to a valid sequence of leaves of its tree.
	ErrDecodeStreamInconsistent = errors.New("huffman: decode stream inconsistent")
)

// SymbolNotCodedError reports the first symbol of a text that is missing
// from a CodeTable.  It matches ErrSymbolNotCoded under errors.Is.
type SymbolNotCodedError struct {
	Symbol Symbol
	Offset int
}

func (err *SymbolNotCodedError) Error() string {
	return fmt.Sprintf("%v: %s at offset %d", ErrSymbolNotCoded, formatSymbol(err.Symbol), err.Offset)
}

// Unwrap returns ErrSymbolNotCoded.
func (err *SymbolNotCodedError) Unwrap() error {
	return ErrSymbolNotCoded
}

func inconsistentf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrDecodeStreamInconsistent}, args...)...)
}

func corruptf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrArtifactCorrupt}, args...)...)
}
