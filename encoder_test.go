package huffman

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestEncoder(t *testing.T) {
	var e Encoder
	e.Init(CountFrequencies([]byte("abracadabra")))

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 3\n",
		"\tEncode('a') = \"0\"\n",
		"\tEncode('b') = \"110\"\n",
		"\tEncode('c') = \"100\"\n",
		"\tEncode('d') = \"101\"\n",
		"\tEncode('r') = \"111\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	expectPacked := []byte{0x01, 0x6e, 0x8a, 0xdc}
	actualPacked, err := e.Encode([]byte("abracadabra"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(expectPacked, actualPacked) {
		t.Errorf("wrong packed bytes:\n\texpect: %#v\n\tactual: %#v", expectPacked, actualPacked)
	}
}

func TestGenerateCodes_Sizes(t *testing.T) {
	freq := FrequencyTable{0: 5, 1: 9, 2: 12, 3: 13, 4: 16, 5: 45}
	codes := GenerateCodes(BuildTree(freq))

	expect := CodeTable{
		0: MakeCode(4, 0xc),
		1: MakeCode(4, 0xd),
		2: MakeCode(3, 0x4),
		3: MakeCode(3, 0x5),
		4: MakeCode(3, 0x7),
		5: MakeCode(1, 0x0),
	}
	if len(codes) != len(expect) {
		t.Fatalf("expected %d codes, got %d", len(expect), len(codes))
	}
	for symbol, hc := range expect {
		if codes[symbol] != hc {
			t.Errorf("symbol %d: expected %v, got %v", symbol, hc, codes[symbol])
		}
	}
}

func TestGenerateCodes_SingleSymbol(t *testing.T) {
	codes := GenerateCodes(BuildTree(CountFrequencies([]byte("aaaa"))))
	if len(codes) != 1 {
		t.Fatalf("expected 1 code, got %d", len(codes))
	}
	if hc := codes['a']; hc.String() != `"0"` {
		t.Errorf("expected code \"0\" for 'a', got %v", hc)
	}
}

func TestGenerateCodes_Empty(t *testing.T) {
	codes := GenerateCodes(nil)
	if len(codes) != 0 {
		t.Errorf("expected empty table, got %v", codes)
	}
}

func TestGenerateCodes_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5a025ca11825a5e7))

	tables := []FrequencyTable{
		{'a': 1, 'b': 1},
		{'a': 3, 'b': 2, 'c': 1},
		CountFrequencies([]byte("abracadabra")),
		CountFrequencies([]byte("full cycle test: encode then decode")),
	}
	for i := 0; i < 10; i++ {
		freq := FrequencyTable{0: 1, NumSymbols - 1: 1}
		numSymbols := 2 + rng.Intn(NumSymbols-1)
		for j := 0; j < numSymbols; j++ {
			freq[Symbol(rng.Intn(NumSymbols))] = uint64(1 + rng.Intn(1000))
		}
		tables = append(tables, freq)
	}

	for index, freq := range tables {
		codes := GenerateCodes(BuildTree(freq))
		if len(codes) != len(freq) {
			t.Errorf("table %d: expected %d codes, got %d", index, len(freq), len(codes))
		}

		// Kraft equality: a full binary tree uses every code point.
		var kraft float64
		for _, hc := range codes {
			kraft += 1 / float64(uint64(1)<<hc.Size)
		}
		if kraft != 1 {
			t.Errorf("table %d: Kraft sum %v, expected 1", index, kraft)
		}

		for a, ha := range codes {
			for b, hb := range codes {
				if a != b && ha.HasPrefix(hb) {
					t.Errorf("table %d: code %v of %d has prefix %v of %d", index, ha, a, hb, b)
				}
			}
		}
	}
}

func TestPack_Alignment(t *testing.T) {
	texts := []string{
		"a",
		"ab",
		"aaaa",
		"abracadabra",
		"mississippi river",
		strings.Repeat("the quick brown fox jumps over the lazy dog. ", 7),
	}
	for _, text := range texts {
		codes := GenerateCodes(BuildTree(CountFrequencies([]byte(text))))
		packed, err := Pack([]byte(text), codes)
		if err != nil {
			t.Fatalf("%q: Pack failed: %v", text, err)
		}

		var numBits int
		for _, b := range []byte(text) {
			numBits += int(codes[Symbol(b)].Size)
		}

		padding := int(packed[0])
		if padding < 0 || padding > 7 {
			t.Errorf("%q: padding %d out of range", text, padding)
		}
		if (numBits+padding)%8 != 0 {
			t.Errorf("%q: %d bits + %d padding not byte aligned", text, numBits, padding)
		}
		if expectLen := 1 + (numBits+padding)/8; len(packed) != expectLen {
			t.Errorf("%q: expected %d bytes, got %d", text, expectLen, len(packed))
		}
	}
}

func TestPack_SingleSymbol(t *testing.T) {
	packed, err := Pack([]byte("aaaa"), CodeTable{'a': MakeCode(1, 0)})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	expect := []byte{0x04, 0x00}
	if !bytes.Equal(expect, packed) {
		t.Errorf("wrong packed bytes:\n\texpect: %#v\n\tactual: %#v", expect, packed)
	}
}

func TestPack_Empty(t *testing.T) {
	packed, err := Pack(nil, CodeTable{})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	expect := []byte{0x00}
	if !bytes.Equal(expect, packed) {
		t.Errorf("wrong packed bytes:\n\texpect: %#v\n\tactual: %#v", expect, packed)
	}
}

func TestPack_SymbolNotCoded(t *testing.T) {
	codes := GenerateCodes(BuildTree(CountFrequencies([]byte("abc"))))
	packed, err := Pack([]byte("abcz"), codes)
	if err == nil {
		t.Fatalf("expected error, got %#v", packed)
	}
	if !errors.Is(err, ErrSymbolNotCoded) {
		t.Errorf("expected ErrSymbolNotCoded, got %v", err)
	}

	var notCoded *SymbolNotCodedError
	if !errors.As(err, &notCoded) {
		t.Fatalf("expected *SymbolNotCodedError, got %T", err)
	}
	if notCoded.Symbol != 'z' || notCoded.Offset != 3 {
		t.Errorf("wrong error detail: %+v", *notCoded)
	}
}
