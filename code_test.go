package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc     Code
		expect string
	}

	testData := [...]testRow{
		{Code{}, `""`},
		{MakeCode(1, 0), `"0"`},
		{MakeCode(3, 0x6), `"110"`},
		{MakeCode(4, 0x1), `"0001"`},
	}
	for _, row := range testData {
		actual := row.hc.String()
		if actual != row.expect {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

func TestCode_Append(t *testing.T) {
	hc := Code{}.Append(1).Append(0).Append(1)
	expect := MakeCode(3, 0x5)
	if hc != expect {
		t.Errorf("wrong code:\n\texpect: %v\n\tactual: %v", expect, hc)
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		hc     Code
		prefix Code
		expect bool
	}

	testData := [...]testRow{
		{MakeCode(3, 0x6), Code{}, true},
		{MakeCode(3, 0x6), MakeCode(1, 0x1), true},
		{MakeCode(3, 0x6), MakeCode(2, 0x3), true},
		{MakeCode(3, 0x6), MakeCode(3, 0x6), true},
		{MakeCode(3, 0x6), MakeCode(1, 0x0), false},
		{MakeCode(3, 0x6), MakeCode(2, 0x2), false},
		{MakeCode(1, 0x1), MakeCode(3, 0x6), false},
	}
	for _, row := range testData {
		t.Run(row.hc.String()+"/"+row.prefix.String(), func(t *testing.T) {
			actual := row.hc.HasPrefix(row.prefix)
			if actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}
