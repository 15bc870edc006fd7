package huffman

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"io"
)

// Artifact is the self-contained result of compressing one text: the
// FrequencyTable needed to rebuild the tree and the packed buffer.
type Artifact struct {
	Frequencies FrequencyTable
	Packed      []byte
}

// artifactMagic starts every serialized Artifact; the last byte is the
// format version.
var artifactMagic = [4]byte{'H', 'U', 'F', 1}

// Compress runs the whole encode pipeline on text.  Empty text yields an
// Artifact with an empty table and an empty buffer.
func Compress(text []byte) (Artifact, error) {
	if len(text) == 0 {
		return Artifact{Frequencies: FrequencyTable{}, Packed: []byte{}}, nil
	}

	var e Encoder
	e.Init(CountFrequencies(text))
	packed, err := e.Encode(text)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Frequencies: e.Frequencies(), Packed: packed}, nil
}

// Decompress reverses Compress.  An Artifact with an empty table decodes to
// empty text without rebuilding a tree; it must not carry packed data.
func Decompress(a Artifact) ([]byte, error) {
	if len(a.Frequencies) == 0 {
		if len(a.Packed) != 0 {
			return nil, inconsistentf("%d packed bytes with an empty frequency table", len(a.Packed))
		}
		return []byte{}, nil
	}

	var d Decoder
	d.Init(a.Frequencies)
	return d.Decode(a.Packed)
}

// IsEmpty reports whether the Artifact encodes empty text.
func (a Artifact) IsEmpty() bool {
	return len(a.Frequencies) == 0
}

// Tree rebuilds the Huffman tree of this Artifact.
func (a Artifact) Tree() Node {
	return BuildTree(a.Frequencies)
}

// MarshalBinary serializes the Artifact:
//
//     "HUF" 0x01                      magic and version
//     uvarint                         number of table entries
//     (byte, uvarint) per entry       symbol and count, ascending by symbol
//     uvarint                         length of the packed buffer
//     bytes                           packed buffer
//
func (a Artifact) MarshalBinary() ([]byte, error) {
	symbols := a.Frequencies.Symbols()

	var scratch [binary.MaxVarintLen64]byte
	var buf bytes.Buffer
	buf.Grow(len(artifactMagic) + binary.MaxVarintLen64*(2+len(symbols)) + len(symbols) + len(a.Packed))

	buf.Write(artifactMagic[:])
	buf.Write(scratch[:binary.PutUvarint(scratch[:], uint64(len(symbols)))])
	for _, symbol := range symbols {
		buf.WriteByte(byte(symbol))
		buf.Write(scratch[:binary.PutUvarint(scratch[:], a.Frequencies[symbol])])
	}
	buf.Write(scratch[:binary.PutUvarint(scratch[:], uint64(len(a.Packed)))])
	buf.Write(a.Packed)
	return buf.Bytes(), nil
}

// UnmarshalBinary parses a buffer written by MarshalBinary.  Any deviation
// from the format is reported as ErrArtifactCorrupt.
func (a *Artifact) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)

	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return corruptf("reading magic: %w", err)
	}
	if !bytes.Equal(magic[:3], artifactMagic[:3]) {
		return corruptf("bad magic %q", magic[:3])
	}
	if magic[3] != artifactMagic[3] {
		return corruptf("unsupported version %d", magic[3])
	}

	numEntries, err := binary.ReadUvarint(r)
	if err != nil {
		return corruptf("reading table size: %w", err)
	}
	if numEntries > NumSymbols {
		return corruptf("table size %d exceeds %d", numEntries, NumSymbols)
	}

	freq := make(FrequencyTable, numEntries)
	last := -1
	var total uint64
	for i := uint64(0); i < numEntries; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return corruptf("reading symbol of entry %d: %w", i, err)
		}
		if int(b) <= last {
			return corruptf("entry %d: symbol %s out of order", i, formatSymbol(Symbol(b)))
		}
		last = int(b)

		count, err := binary.ReadUvarint(r)
		if err != nil {
			return corruptf("reading count of entry %d: %w", i, err)
		}
		if count == 0 {
			return corruptf("entry %d: zero count for symbol %s", i, formatSymbol(Symbol(b)))
		}
		if total+count < total {
			return corruptf("entry %d: counts overflow", i)
		}
		total += count
		freq[Symbol(b)] = count
	}

	packedLen, err := binary.ReadUvarint(r)
	if err != nil {
		return corruptf("reading packed length: %w", err)
	}
	if packedLen > uint64(r.Len()) {
		return corruptf("packed length %d exceeds remaining %d bytes", packedLen, r.Len())
	}
	packed := make([]byte, packedLen)
	if _, err := io.ReadFull(r, packed); err != nil {
		return corruptf("reading packed data: %w", err)
	}
	if r.Len() != 0 {
		return corruptf("%d trailing bytes", r.Len())
	}

	*a = Artifact{Frequencies: freq, Packed: packed}
	return nil
}

var (
	_ encoding.BinaryMarshaler   = Artifact{}
	_ encoding.BinaryUnmarshaler = (*Artifact)(nil)
)
