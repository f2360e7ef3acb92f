package leb128

import (
	"fmt"
	"io"
)

// ReadUnsigned reads one unsigned LEB128 value from r, one byte at a time.
//
// The value is accumulated at the exact width of T. Once fewer than 7 bits of T
// remain, the next byte must terminate the value and must not set any payload
// bit beyond the remaining bits. A multi-byte encoding that ends in a redundant
// zero group is rejected as well.
//
// Parameters:
//   - r: Byte source. Exactly the bytes of one encoded value are consumed.
//
// Returns:
//   - T: Decoded value (zero on error)
//   - error: ErrMalformed (wrapped) or *IOError
func ReadUnsigned[T Unsigned](r io.ByteReader) (T, error) {
	width := bitWidth[T]()

	var (
		result T
		shift  uint
	)

	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, readError(err, shift > 0)
		}

		payload := b & payloadMask
		if remaining := width - shift; remaining < 7 {
			if b&continuationBit != 0 {
				return 0, fmt.Errorf("%w: more than %d bytes", ErrMalformed, shift/7+1)
			}
			if payload>>remaining != 0 {
				return 0, fmt.Errorf("%w: value exceeds %d bits", ErrMalformed, width)
			}
		}

		result |= T(payload) << shift

		if b&continuationBit == 0 {
			if shift > 0 && b == 0 {
				return 0, fmt.Errorf("%w: non-canonical trailing zero byte", ErrMalformed)
			}

			return result, nil
		}

		shift += 7
	}
}

// ReadSigned reads one signed LEB128 value from r, one byte at a time.
//
// In the last partial group, every payload bit from the sign bit of T upward must
// match bit 6 of the byte: all clear for a non-negative value, all set for a
// negative one. A multi-byte encoding whose last byte only repeats the sign of
// the previous byte (0x00 after a clear bit 6, 0x7f after a set bit 6) is
// rejected as non-canonical.
//
// Parameters:
//   - r: Byte source. Exactly the bytes of one encoded value are consumed.
//
// Returns:
//   - T: Decoded value (zero on error)
//   - error: ErrMalformed (wrapped) or *IOError
func ReadSigned[T Signed](r io.ByteReader) (T, error) {
	width := bitWidth[T]()

	var (
		result T
		shift  uint
		prev   byte
	)

	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, readError(err, shift > 0)
		}

		payload := b & payloadMask
		if remaining := width - shift; remaining < 7 {
			if b&continuationBit != 0 {
				return 0, fmt.Errorf("%w: more than %d bytes", ErrMalformed, shift/7+1)
			}

			// Bits remaining-1..6: the sign bit of T and the padding above it.
			high := byte(payloadMask) &^ (byte(1)<<(remaining-1) - 1)

			want := byte(0)
			if payload&signBit != 0 {
				want = high
			}
			if payload&high != want {
				return 0, fmt.Errorf("%w: value exceeds %d bits", ErrMalformed, width)
			}
		}

		result |= T(payload) << shift

		if b&continuationBit == 0 {
			if shift > 0 && ((b == 0 && prev&signBit == 0) || (b == payloadMask && prev&signBit != 0)) {
				return 0, fmt.Errorf("%w: non-canonical trailing sign byte", ErrMalformed)
			}

			if payload&signBit != 0 {
				result |= T(-1) << (shift + 7)
			}

			return result, nil
		}

		prev = b
		shift += 7
	}
}
