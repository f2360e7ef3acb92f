package leb128

// SizeUnsigned returns the length in bytes of the canonical encoding of v.
func SizeUnsigned[T Unsigned](v T) int {
	n := 1
	for v >>= 7; v != 0; v >>= 7 {
		n++
	}

	return n
}

// SizeSigned returns the length in bytes of the canonical signed encoding of v.
func SizeSigned[T Signed](v T) int {
	n := 1
	for {
		b := v & payloadMask
		v >>= 7
		if (v == 0 && b&signBit == 0) || (v == -1 && b&signBit != 0) {
			return n
		}
		n++
	}
}
