package huffman

import (
	"bytes"
	"strings"

	"github.com/icza/bitio"
)

// Bitstream is an unpacked Huffman payload: Len bits read most significant
// first from Bytes.
type Bitstream struct {
	Bytes []byte
	Len   int
}

// String returns the bits as a string of '0' and '1'.
func (bs Bitstream) String() string {
	var sb strings.Builder
	sb.Grow(bs.Len)
	for i := 0; i < bs.Len; i++ {
		if bs.Bytes[i/8]&(0x80>>uint(i%8)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Decoder decodes packed buffers produced with the Huffman code of one
// FrequencyTable.
type Decoder struct {
	root Node
}

// Init initializes this Decoder by rebuilding the tree for freq.  Given the
// same table, the tree is identical to the one the Encoder used.
func (d *Decoder) Init(freq FrequencyTable) {
	*d = Decoder{root: BuildTree(freq)}
}

// Decode unpacks buf and decodes it.  See Unpack and Decode.
func (d Decoder) Decode(buf []byte) ([]byte, error) {
	payload, err := Unpack(buf)
	if err != nil {
		return nil, err
	}
	return Decode(payload, d.root)
}

// Tree returns the rebuilt Huffman tree.  It is nil for an empty
// FrequencyTable.
func (d Decoder) Tree() Node {
	return d.root
}

// Unpack reverses the padding applied by Pack.  The first byte of buf is the
// number of padding bits (0 .. 7) at the end of the remaining bytes; they are
// stripped from the returned Bitstream.
//
// An empty buf means "no data" and yields an empty Bitstream.  A header out
// of range, padding longer than the payload, or non-zero padding bits are
// reported as ErrDecodeStreamInconsistent.
//
func Unpack(buf []byte) (Bitstream, error) {
	if len(buf) == 0 {
		return Bitstream{}, nil
	}

	padding := buf[0]
	if padding > 7 {
		return Bitstream{}, inconsistentf("padding header %d out of range [0, 7]", padding)
	}

	payload := buf[1:]
	numBits := 8*len(payload) - int(padding)
	if numBits < 0 {
		return Bitstream{}, inconsistentf("padding header %d with an empty payload", padding)
	}
	if padding != 0 {
		mask := byte(1)<<padding - 1
		if payload[len(payload)-1]&mask != 0 {
			return Bitstream{}, inconsistentf("non-zero padding bits")
		}
	}
	return Bitstream{Bytes: payload, Len: numBits}, nil
}

// Decode recovers the original text from payload by walking the tree: a 0
// bit descends left, a 1 bit descends right, and reaching a leaf emits its
// symbol and restarts at the root.
//
// A tree that is a lone *Leaf has no branches; every bit of the payload is
// one "0" code for that symbol.  A nil tree only accepts an empty payload.
//
// The number of decoded symbols must equal the frequency of the root, i.e.
// the length of the text the tree was built from.  Any payload that ends in
// the middle of a code, descends into a missing child, or decodes to the
// wrong number of symbols is reported as ErrDecodeStreamInconsistent.
//
func Decode(payload Bitstream, root Node) ([]byte, error) {
	if payload.Len < 0 || payload.Len > 8*len(payload.Bytes) {
		return nil, inconsistentf("bit length %d does not fit in %d bytes", payload.Len, len(payload.Bytes))
	}

	var top *Internal
	switch tree := root.(type) {
	case nil:
		if payload.Len != 0 {
			return nil, inconsistentf("%d payload bits with an empty tree", payload.Len)
		}
		return []byte{}, nil
	case *Leaf:
		return decodeSingle(payload, tree)
	case *Internal:
		top = tree
	default:
		return nil, inconsistentf("unknown node type %T", root)
	}

	expect := top.Freq()
	capacity := payload.Len
	if uint64(capacity) > expect {
		capacity = int(expect)
	}
	out := make([]byte, 0, capacity)

	r := bitio.NewReader(bytes.NewReader(payload.Bytes))
	cur := top
	for i := 0; i < payload.Len; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, inconsistentf("reading bit %d: %v", i, err)
		}

		next := cur.Left
		if bit {
			next = cur.Right
		}

		switch node := next.(type) {
		case *Leaf:
			out = append(out, byte(node.Symbol))
			cur = top
		case *Internal:
			cur = node
		default:
			return nil, inconsistentf("bit %d leads to a dead end after %d symbols", i, len(out))
		}
	}

	if cur != top {
		return nil, inconsistentf("payload ends inside a code after %d symbols", len(out))
	}
	if uint64(len(out)) != expect {
		return nil, inconsistentf("decoded %d symbols, frequency table expects %d", len(out), expect)
	}
	return out, nil
}

func decodeSingle(payload Bitstream, leaf *Leaf) ([]byte, error) {
	r := bitio.NewReader(bytes.NewReader(payload.Bytes))
	for i := 0; i < payload.Len; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, inconsistentf("reading bit %d: %v", i, err)
		}
		if bit {
			return nil, inconsistentf("bit %d is 1 in a single-symbol stream", i)
		}
	}

	if uint64(payload.Len) != leaf.Count {
		return nil, inconsistentf("decoded %d symbols, frequency table expects %d", payload.Len, leaf.Count)
	}
	return bytes.Repeat([]byte{byte(leaf.Symbol)}, payload.Len), nil
}
