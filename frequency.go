package huffman

// FrequencyTable maps each distinct Symbol of a text to its number of
// occurrences.  A table built by CountFrequencies never holds a zero count.
//
// Iteration order of the map is unspecified; code that needs a stable order
// uses Symbols.
//
type FrequencyTable map[Symbol]uint64

// CountFrequencies scans text and returns its FrequencyTable.  Empty text
// yields an empty table.
func CountFrequencies(text []byte) FrequencyTable {
	var counts [NumSymbols]uint64
	for _, b := range text {
		counts[b]++
	}

	freq := make(FrequencyTable)
	for symbol, count := range counts {
		if count != 0 {
			freq[Symbol(symbol)] = count
		}
	}
	return freq
}

// Total returns the sum of all counts, i.e. the length of the source text.
func (freq FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range freq {
		total += count
	}
	return total
}

// Symbols returns the symbols present in the table in ascending order.
func (freq FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(freq))
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if _, found := freq[Symbol(symbol)]; found {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// Equal reports whether both tables hold the same counts.
func (freq FrequencyTable) Equal(other FrequencyTable) bool {
	if len(freq) != len(other) {
		return false
	}
	for symbol, count := range freq {
		if otherCount, found := other[symbol]; !found || otherCount != count {
			return false
		}
	}
	return true
}
