package huffman

// paddingFor returns the number of zero bits needed to bring n bits up to a
// byte boundary.
func paddingFor(n int) byte {
	return byte((8 - n%8) % 8)
}
