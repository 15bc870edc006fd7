package huffman

import (
	"strings"
	"testing"
)

func TestRenderTree(t *testing.T) {
	expect := strings.Join([]string{
		"│           ┌── ('r', 2)\n",
		"│       ┌── (INT, 4)\n",
		"│       │   └── ('b', 2)\n",
		"│   ┌── (INT, 6)\n",
		"│   │   │   ┌── ('d', 1)\n",
		"│   │   └── (INT, 2)\n",
		"│   │       └── ('c', 1)\n",
		"└── (INT, 11)\n",
		"    └── ('a', 5)\n",
	}, "")

	var buf strings.Builder
	if err := RenderTree(&buf, BuildTree(CountFrequencies([]byte("abracadabra")))); err != nil {
		t.Fatalf("RenderTree failed: %v", err)
	}
	if actual := buf.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestRenderTree_Leaf(t *testing.T) {
	type testRow struct {
		name   string
		freq   FrequencyTable
		expect string
	}

	testData := [...]testRow{
		{"empty", FrequencyTable{}, ""},
		{"printable", FrequencyTable{'a': 4}, "└── ('a', 4)\n"},
		{"newline", FrequencyTable{'\n': 2}, "└── ('\\n', 2)\n"},
		{"high-byte", FrequencyTable{0xe9: 1}, "└── ('\\xe9', 1)\n"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var buf strings.Builder
			if err := RenderTree(&buf, BuildTree(row.freq)); err != nil {
				t.Fatalf("RenderTree failed: %v", err)
			}
			if actual := buf.String(); row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}
