// Package wide provides the 128-bit accumulator used by the buffered LEB128 decoder.
//
// Go has no native 128-bit integer, so the accumulator is a pair of uint64 words
// holding a two's-complement value. Bits shifted past position 127 are discarded,
// matching the behavior of a native 128-bit shift.
package wide

// Bits is the width of Uint128 in bits.
const Bits = 128

// Uint128 is a 128-bit value stored as high and low 64-bit words.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// OrShifted returns u with v<<shift OR-ed in. Bits that land at or above
// position 128 are dropped.
func (u Uint128) OrShifted(v uint64, shift uint) Uint128 {
	switch {
	case shift >= Bits:
		return u
	case shift >= 64:
		u.Hi |= v << (shift - 64)
	default:
		u.Lo |= v << shift
		if shift > 0 {
			u.Hi |= v >> (64 - shift)
		}
	}

	return u
}

// Or returns the bitwise OR of u and v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// OnesFrom returns a value with every bit at position >= shift set.
// This is the two's-complement sign-extension mask for a value whose
// lowest shift bits have been filled.
func OnesFrom(shift uint) Uint128 {
	if shift >= Bits {
		return Uint128{}
	}
	if shift >= 64 {
		return Uint128{Hi: ^uint64(0) << (shift - 64)}
	}

	return Uint128{Hi: ^uint64(0), Lo: ^uint64(0) << shift}
}

// FitsUnsigned reports whether u, read as an unsigned number, fits in bits bits.
// bits must be in the range 1..64.
func (u Uint128) FitsUnsigned(bits uint) bool {
	if u.Hi != 0 {
		return false
	}
	if bits >= 64 {
		return true
	}

	return u.Lo>>bits == 0
}

// FitsSigned reports whether u, read as a two's-complement signed number,
// fits in a signed integer of bits bits. bits must be in the range 1..64.
func (u Uint128) FitsSigned(bits uint) bool {
	lo := int64(u.Lo) //nolint:gosec
	if u.Hi != uint64(lo>>63) { //nolint:gosec
		return false
	}
	if bits >= 64 {
		return true
	}

	top := lo >> (bits - 1)

	return top == 0 || top == -1
}
